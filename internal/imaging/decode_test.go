package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestDecode_PNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	img, err := Decode(encodePNG(t, src))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", img.Width, img.Height)
	}
	if len(img.Pix) != 3*2*4 {
		t.Fatalf("len(Pix) = %d, want %d", len(img.Pix), 3*2*4)
	}
	if img.Pix[0] != 10 || img.Pix[1] != 20 || img.Pix[2] != 30 || img.Pix[3] != 255 {
		t.Errorf("pixel (0,0) = %v", img.Pix[0:4])
	}
	// Non-premultiplied alpha survives the round trip.
	off := (1*3 + 2) * 4
	if img.Pix[off+3] != 128 {
		t.Errorf("alpha at (2,1) = %d, want 128", img.Pix[off+3])
	}
}

func TestDecode_JPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			src.SetRGBA(x, y, color.RGBA{R: 120, G: 120, B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("jpeg.Encode failed: %v", err)
	}

	img, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Width != 8 || img.Height != 8 {
		t.Errorf("size = %dx%d, want 8x8", img.Width, img.Height)
	}
	// JPEG is lossy and YCbCr-encoded, so only sanity-check the alpha.
	if img.Pix[3] != 255 {
		t.Errorf("alpha = %d, want 255", img.Pix[3])
	}
}

func TestDecode_Gray(t *testing.T) {
	// Gray has no fast path; exercises the generic color-model conversion.
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(0, 0, color.Gray{Y: 77})

	img, err := Decode(encodePNG(t, src))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Pix[0] != 77 || img.Pix[1] != 77 || img.Pix[2] != 77 {
		t.Errorf("pixel (0,0) = %v, want gray 77", img.Pix[0:3])
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("Decode(nil) = %v, want ErrEmptyData", err)
	}
	if _, err := Decode([]byte("definitely not an image")); err == nil {
		t.Error("Decode of garbage succeeded")
	}
}

func TestTile(t *testing.T) {
	// A 2x2 source with four distinct pixels, tiled to 5x3.
	src := &Image{Width: 2, Height: 2, Pix: []byte{
		1, 1, 1, 1, 2, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 4,
	}}

	out := Tile(src, 5, 3)
	if out.Width != 5 || out.Height != 3 {
		t.Fatalf("size = %dx%d, want 5x3", out.Width, out.Height)
	}
	at := func(x, y int) byte { return out.Pix[(y*5+x)*4] }
	tests := []struct {
		x, y int
		want byte
	}{
		{0, 0, 1}, {1, 0, 2}, {2, 0, 1}, {4, 0, 1},
		{0, 1, 3}, {1, 1, 4}, {3, 1, 4},
		{0, 2, 1}, {4, 2, 1},
	}
	for _, tt := range tests {
		if got := at(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}
