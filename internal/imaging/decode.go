// Package imaging decodes encoded image bytes into tightly packed,
// non-premultiplied RGBA8 pixel buffers ready for GPU upload.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Registered decode formats. PNG and JPEG come from the standard
	// library; WebP, BMP and TIFF from golang.org/x/image.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode errors.
var (
	// ErrEmptyData is returned when the input is empty.
	ErrEmptyData = errors.New("imaging: empty data")

	// ErrZeroSize is returned when a decoded image has a zero dimension.
	ErrZeroSize = errors.New("imaging: zero-sized image")
)

// Image is a decoded RGBA8 pixel buffer with a tight stride of Width*4.
type Image struct {
	Pix    []byte
	Width  int
	Height int
}

// Decode decodes encoded image bytes, auto-detecting the format among the
// registered set, and converts to RGBA8.
func Decode(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}
	return fromStd(img)
}

// fromStd converts a standard library image to a tight RGBA8 buffer.
// NRGBA and RGBA inputs take a row-copy fast path; everything else goes
// through the generic color model.
func fromStd(img image.Image) (*Image, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrZeroSize
	}

	out := &Image{Pix: make([]byte, w*h*4), Width: w, Height: h}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := range h {
			copy(out.row(y), src.Pix[y*src.Stride:y*src.Stride+w*4])
		}
		return out, nil

	case *image.RGBA:
		for y := range h {
			copy(out.row(y), src.Pix[y*src.Stride:y*src.Stride+w*4])
		}
		return out, nil
	}

	for y := range h {
		row := out.row(y)
		for x := range w {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA() returns 16-bit values; shift to 8-bit.
			row[x*4] = byte(r >> 8)
			row[x*4+1] = byte(g >> 8)
			row[x*4+2] = byte(b >> 8)
			row[x*4+3] = byte(a >> 8)
		}
	}
	return out, nil
}

// row returns the pixel slice for row y.
func (m *Image) row(y int) []byte {
	start := y * m.Width * 4
	return m.Pix[start : start+m.Width*4]
}

// Tile produces a w×h image by repeating src. Used to size the fallback
// pattern to an arbitrary destination, e.g. a texture-array layer whose own
// content failed to decode.
func Tile(src *Image, w, h int) *Image {
	out := &Image{Pix: make([]byte, w*h*4), Width: w, Height: h}
	for y := 0; y < h; y++ {
		srcRow := src.row(y % src.Height)
		dstRow := out.row(y)
		for x := 0; x < w; x++ {
			sx := (x % src.Width) * 4
			copy(dstRow[x*4:x*4+4], srcRow[sx:sx+4])
		}
	}
	return out
}
