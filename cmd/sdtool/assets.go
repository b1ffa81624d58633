package main

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/bmp"

	"github.com/ardnew/softsd/index"
)

// Demo asset parameters.
const (
	demoImageWidth  = 64
	demoImageHeight = 48
	demoSampleRate  = 8000
	demoToneHz      = 440
	bmpPixelOffset  = 54
	wavHeaderSize   = 44
)

// demoImage renders a gradient test card and stamps ident at the start of
// the pixel data so the provisioning scan finds it in the first block.
func demoImage(ident index.Identifier, tint byte) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, demoImageWidth, demoImageHeight))
	for y := range demoImageHeight {
		for x := range demoImageWidth {
			img.SetRGBA(x, y, color.RGBA{
				R: byte(x * 255 / demoImageWidth),
				G: byte(y * 255 / demoImageHeight),
				B: tint,
				A: 0xFF,
			})
		}
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		return nil, err
	}
	b := buf.Bytes()
	copy(b[bmpPixelOffset:], ident[:])
	return b, nil
}

// demoAudio returns an 8-bit mono WAV tone of the given length with ident
// stamped over the first samples.
func demoAudio(ident index.Identifier, seconds float64) []byte {
	n := int(seconds * demoSampleRate)
	b := make([]byte, wavHeaderSize+n)
	copy(b[0:], "RIFF")
	binary.LittleEndian.PutUint32(b[4:], uint32(36+n))
	copy(b[8:], "WAVEfmt ")
	binary.LittleEndian.PutUint32(b[16:], 16)
	binary.LittleEndian.PutUint16(b[20:], 1) // PCM
	binary.LittleEndian.PutUint16(b[22:], 1)
	binary.LittleEndian.PutUint32(b[24:], demoSampleRate)
	binary.LittleEndian.PutUint32(b[28:], demoSampleRate)
	binary.LittleEndian.PutUint16(b[32:], 1)
	binary.LittleEndian.PutUint16(b[34:], 8)
	copy(b[36:], "data")
	binary.LittleEndian.PutUint32(b[40:], uint32(n))

	for i := range n {
		v := math.Sin(2 * math.Pi * demoToneHz * float64(i) / demoSampleRate)
		b[wavHeaderSize+i] = byte(128 + 100*v)
	}
	copy(b[wavHeaderSize:], ident[:])
	return b
}

// demoAssets builds a small set of files covering both kinds.
func demoAssets(catalog index.Catalog) ([]asset, error) {
	var assets []asset
	for i, id := range []index.ID{index.CompanyImage, index.HomescreenImage, index.CompanyAudio, index.IntroAudio} {
		e, ok := catalog.Entry(id)
		if !ok {
			continue
		}
		var data []byte
		switch e.Kind {
		case index.KindImage:
			var err error
			if data, err = demoImage(e.Identifier, byte(i*60)); err != nil {
				return nil, err
			}
		case index.KindAudio:
			data = demoAudio(e.Identifier, 0.5+float64(i)*0.25)
		}
		assets = append(assets, asset{id: id, data: data})
	}
	return assets, nil
}
