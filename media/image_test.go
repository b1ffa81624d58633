package media

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/pkg"
)

// testImage returns an opaque image whose colors survive RGB565.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{
				R: byte(x*8) & 0xF8,
				G: byte(y*12) & 0xFC,
				B: byte((x+y)*8) & 0xF8,
				A: 0xFF,
			})
		}
	}
	return img
}

func encodeBMP(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("bmp.Encode() error = %v", err)
	}
	return buf.Bytes()
}

type abortAfter struct{ rows, calls int }

func (a *abortAfter) abort() bool {
	a.calls++
	return a.calls > a.rows
}

func TestDrawImage(t *testing.T) {
	c, bus, store := newCard(t)

	// 37 pixels wide pads each row and spans several blocks.
	src := testImage(37, 20)
	store.Put(100, encodeBMP(t, src))

	fb := NewFramebuffer(40, 24)
	win := Rect{X: 2, Y: 3, W: 37, H: 20}
	if err := DrawImage(c, 100, win, fb, nil); err != nil {
		t.Fatalf("DrawImage() error = %v", err)
	}
	if c.Streaming() || bus.Selected() {
		t.Error("stream left open after DrawImage")
	}

	got := fb.Image()
	for y := range 20 {
		for x := range 37 {
			if g, w := got.RGBAAt(x+2, y+3), src.RGBAAt(x, y); g != w {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, g, w)
			}
		}
	}
	if g := got.RGBAAt(0, 0); g != (color.RGBA{A: 0xFF}) {
		t.Errorf("pixel outside window = %v, want black", g)
	}

	// The round trip through the framebuffer decodes as a BMP again.
	out := encodeBMP(t, got)
	if _, err := bmp.Decode(bytes.NewReader(out)); err != nil {
		t.Errorf("bmp.Decode() error = %v", err)
	}
}

func TestImageSize(t *testing.T) {
	c, _, store := newCard(t)
	store.Put(100, encodeBMP(t, testImage(37, 20)))
	store.Put(200, encodeBMP(t, image.NewGray(image.Rect(0, 0, 4, 4))))

	w, h, err := ImageSize(c, 100)
	if err != nil || w != 37 || h != 20 {
		t.Errorf("ImageSize() = %d, %d, %v, want 37, 20, nil", w, h, err)
	}
	if _, _, err := ImageSize(c, 200); !errors.Is(err, pkg.ErrNotSupported) {
		t.Errorf("ImageSize(8-bit) error = %v, want %v", err, pkg.ErrNotSupported)
	}
	if c.Streaming() {
		t.Error("stream left open after ImageSize")
	}
}

func TestDrawImageAbsent(t *testing.T) {
	c, bus, _ := newCard(t)
	fb := NewFramebuffer(8, 8)
	before := len(bus.Commands())

	if err := DrawImage(c, 0, Rect{W: 8, H: 8}, fb, nil); err != nil {
		t.Fatalf("DrawImage(0) error = %v", err)
	}
	if got := len(bus.Commands()); got != before {
		t.Errorf("DrawImage(0) sent %d commands, want 0", got-before)
	}
}

func TestDrawImageAbort(t *testing.T) {
	c, _, store := newCard(t)
	store.Put(100, encodeBMP(t, testImage(16, 16)))
	fb := NewFramebuffer(16, 16)

	a := &abortAfter{rows: 4}
	if err := DrawImage(c, 100, Rect{W: 16, H: 16}, fb, a.abort); err != nil {
		t.Fatalf("DrawImage() error = %v", err)
	}
	if c.Streaming() {
		t.Error("stream left open after abort")
	}
	if fb.next != 4*16 {
		t.Errorf("pixels written = %d, want %d", fb.next, 4*16)
	}

	// The card is usable after an early stop.
	var b card.Block
	if err := c.ReadBlock(100, &b); err != nil {
		t.Errorf("ReadBlock() after abort error = %v", err)
	}
}

func TestDrawImageNotBitmap(t *testing.T) {
	c, _, store := newCard(t)
	store.Put(100, []byte("RIFF not a bitmap"))

	err := DrawImage(c, 100, Rect{W: 4, H: 4}, NewFramebuffer(4, 4), nil)
	if !errors.Is(err, pkg.ErrProtocol) {
		t.Errorf("DrawImage() error = %v, want %v", err, pkg.ErrProtocol)
	}
	if c.Streaming() {
		t.Error("stream left open after error")
	}
}

func TestDrawImageDisplayError(t *testing.T) {
	c, _, store := newCard(t)
	store.Put(100, encodeBMP(t, testImage(8, 8)))

	err := DrawImage(c, 100, Rect{W: 8, H: 8}, NewFramebuffer(4, 4), nil)
	if !errors.Is(err, pkg.ErrInvalidParameter) {
		t.Errorf("DrawImage() error = %v, want %v", err, pkg.ErrInvalidParameter)
	}
	if c.Streaming() {
		t.Error("stream left open after error")
	}
}

func TestDrawImageNotInitialized(t *testing.T) {
	c := card.New(floating{}, card.DefaultConfig())
	err := DrawImage(c, 100, Rect{W: 4, H: 4}, NewFramebuffer(4, 4), nil)
	if !errors.Is(err, pkg.ErrNotInitialized) {
		t.Errorf("DrawImage() error = %v, want %v", err, pkg.ErrNotInitialized)
	}
}
