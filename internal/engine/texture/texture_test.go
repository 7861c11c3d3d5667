package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func TestDecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(3, 1, color.NRGBA{G: 255, A: 128})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}

	got, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if got.Bounds().Dx() != 4 || got.Bounds().Dy() != 2 {
		t.Errorf("decoded size = %dx%d, want 4x2", got.Bounds().Dx(), got.Bounds().Dy())
	}

	r, _, _, a := got.At(0, 0).RGBA()
	if r>>8 != 255 || a>>8 != 255 {
		t.Errorf("pixel (0,0) = r %d a %d, want r 255 a 255", r>>8, a>>8)
	}

	// Semi-transparent pixel survives with its alpha.
	_, _, _, a = got.At(3, 1).RGBA()
	if a>>8 != 128 {
		t.Errorf("pixel (3,1) alpha = %d, want 128", a>>8)
	}
}

func TestDecodeBMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(1, 1, color.RGBA{B: 200, A: 255})

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("encoding test bmp: %v", err)
	}

	got, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	_, _, b, _ := got.At(1, 1).RGBA()
	if b>>8 != 200 {
		t.Errorf("pixel (1,1) blue = %d, want 200", b>>8)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected error for garbage data")
	}
}
