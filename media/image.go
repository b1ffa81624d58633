package media

import (
	"encoding/binary"
	"fmt"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/pkg"
)

// BMP file header layout.
const (
	bmpHeaderSize    = 14
	bmpOffsetField   = 0x0A
	bmpWidthField    = 0x12
	bmpHeightField   = 0x16
	bmpBitsField     = 0x1C
	bmpInfoEnd       = 0x1E
	bmpBytesPerPixel = 3
)

// Rect is a display window in pixels.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether r has no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Display receives RGB565 pixels, high byte first.
//
// Rows arrive in BMP file order, bottom row first; a display scans its
// window from the bottom up.
type Display interface {
	SetWindow(r Rect) error
	WritePixels(p []byte) error
}

// Source opens streams on a card.
type Source interface {
	StartStream(addr card.BlockAddress, blocks uint32) (*card.Stream, error)
}

// RGB565 packs 8-bit color components into a big-endian RGB565 pixel.
func RGB565(r, g, b byte) (hi, lo byte) {
	hi = r&0xF8 | g>>5
	lo = (g&0x1C)<<3 | b>>3
	return hi, lo
}

// rowStride returns the size of one padded 24-bit BMP row.
func rowStride(w int) int {
	return (w*bmpBytesPerPixel + 3) &^ 3
}

// ImageSize reads the pixel dimensions from the BMP header at addr. Only
// bottom-up 24-bit bitmaps are supported.
func ImageSize(src Source, addr card.BlockAddress) (w, h int, err error) {
	s, err := src.StartStream(addr, 1)
	if err != nil {
		return 0, 0, fmt.Errorf("media: image at block %d: %w", addr, err)
	}
	var hdr [bmpInfoEnd]byte
	_, err = s.Read(hdr[:])
	if serr := s.Stop(); err == nil {
		err = serr
	}
	if err != nil {
		return 0, 0, fmt.Errorf("media: image header: %w", err)
	}
	if hdr[0] != 'B' || hdr[1] != 'M' {
		return 0, 0, fmt.Errorf("media: %w: no bitmap at block %d", pkg.ErrProtocol, addr)
	}
	w = int(int32(binary.LittleEndian.Uint32(hdr[bmpWidthField:])))
	h = int(int32(binary.LittleEndian.Uint32(hdr[bmpHeightField:])))
	bits := binary.LittleEndian.Uint16(hdr[bmpBitsField:])
	if w <= 0 || h <= 0 || bits != bmpBytesPerPixel*8 {
		return 0, 0, fmt.Errorf("media: %w: %dx%d %d-bit bitmap", pkg.ErrNotSupported, w, h, bits)
	}
	return w, h, nil
}

// DrawImage streams the 24-bit BMP at addr into window r of d. Address 0
// means the file is absent and nothing is drawn. abort is polled once per
// row; when it returns true drawing stops early without error. The stream
// is always stopped before DrawImage returns.
func DrawImage(src Source, addr card.BlockAddress, r Rect, d Display, abort func() bool) (err error) {
	if addr == 0 || r.Empty() {
		return nil
	}

	stride := rowStride(r.W)
	blocks := uint32((bmpHeaderSize + stride*r.H + card.BlockSize - 1) / card.BlockSize)
	s, err := src.StartStream(addr, blocks)
	if err != nil {
		return fmt.Errorf("media: image at block %d: %w", addr, err)
	}
	defer func() {
		if serr := s.Stop(); err == nil {
			err = serr
		}
	}()

	var hdr [bmpHeaderSize]byte
	if _, err := s.Read(hdr[:]); err != nil {
		return fmt.Errorf("media: image header: %w", err)
	}
	if hdr[0] != 'B' || hdr[1] != 'M' {
		return fmt.Errorf("media: %w: no bitmap at block %d", pkg.ErrProtocol, addr)
	}
	offset := binary.LittleEndian.Uint32(hdr[bmpOffsetField:])
	if offset < bmpHeaderSize {
		return fmt.Errorf("media: %w: pixel offset %d", pkg.ErrProtocol, offset)
	}
	if err := s.Skip(int(offset - bmpHeaderSize)); err != nil {
		return fmt.Errorf("media: image pixels: %w", err)
	}

	if err := d.SetWindow(r); err != nil {
		return fmt.Errorf("media: set window: %w", err)
	}

	row := make([]byte, stride)
	px := make([]byte, r.W*2)
	for y := range r.H {
		if abort != nil && abort() {
			pkg.LogDebug(pkg.ComponentMedia, "image aborted", "block", uint32(addr), "row", y)
			return nil
		}
		if _, err := s.Read(row); err != nil {
			return fmt.Errorf("media: image row %d: %w", y, err)
		}
		for x := range r.W {
			bgr := row[x*bmpBytesPerPixel:]
			px[x*2], px[x*2+1] = RGB565(bgr[2], bgr[1], bgr[0])
		}
		if err := d.WritePixels(px); err != nil {
			return fmt.Errorf("media: write pixels: %w", err)
		}
	}
	return nil
}
