package media

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ardnew/softsd/pkg"
)

// Framebuffer is an in-memory RGB565 Display. It fills each window from
// the bottom row up, the way the panel scans BMP data.
type Framebuffer struct {
	w, h int
	pix  []byte
	win  Rect
	next int
}

// NewFramebuffer creates a w×h framebuffer cleared to black.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{w: w, h: h, pix: make([]byte, w*h*2)}
}

// Bounds returns the full framebuffer rectangle.
func (f *Framebuffer) Bounds() Rect {
	return Rect{W: f.w, H: f.h}
}

// SetWindow selects the region filled by subsequent WritePixels calls.
func (f *Framebuffer) SetWindow(r Rect) error {
	if r.Empty() || r.X < 0 || r.Y < 0 || r.X+r.W > f.w || r.Y+r.H > f.h {
		return fmt.Errorf("media: %w: window %+v outside %dx%d", pkg.ErrInvalidParameter, r, f.w, f.h)
	}
	f.win = r
	f.next = 0
	return nil
}

// WritePixels stores big-endian RGB565 pixels at the window cursor.
func (f *Framebuffer) WritePixels(p []byte) error {
	if len(p)%2 != 0 {
		return fmt.Errorf("media: %w: odd pixel data length %d", pkg.ErrInvalidParameter, len(p))
	}
	for i := 0; i < len(p); i += 2 {
		row := f.next / f.win.W
		if row >= f.win.H {
			return fmt.Errorf("media: %w: window %+v overflow", pkg.ErrBufferTooSmall, f.win)
		}
		x := f.win.X + f.next%f.win.W
		y := f.win.Y + f.win.H - 1 - row
		o := (y*f.w + x) * 2
		f.pix[o], f.pix[o+1] = p[i], p[i+1]
		f.next++
	}
	return nil
}

// At returns the RGB565 pixel at x, y.
func (f *Framebuffer) At(x, y int) (hi, lo byte) {
	o := (y*f.w + x) * 2
	return f.pix[o], f.pix[o+1]
}

// Image expands the framebuffer to 8-bit RGBA.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	for y := range f.h {
		for x := range f.w {
			hi, lo := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: hi & 0xF8,
				G: (hi&0x07)<<5 | (lo>>5)<<2,
				B: lo << 3,
				A: 0xFF,
			})
		}
	}
	return img
}
