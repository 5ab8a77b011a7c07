package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"iconforge/internal/errors"

	"github.com/ftrvxmtrx/tga"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestSupported(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"photo.png", true},
		{"photo.PNG", true},
		{"photo.jpeg", true},
		{"shot.jpg", true},
		{"old.bmp", true},
		{"anim.gif", true},
		{"tex.tga", true},
		{"pic.webp", true},
		{"app.ico", true},
		{"doc.txt", false},
		{"archive.zip", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.name); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClampRadius(t *testing.T) {
	tests := []struct {
		radius, w, h, want int
	}{
		{0, 100, 100, 0},
		{-5, 100, 100, 0},
		{10, 100, 100, 10},
		{512, 100, 100, 50},
		{512, 100, 60, 30},
		{512, 60, 100, 30},
		{50, 100, 100, 50},
	}
	for _, tt := range tests {
		if got := ClampRadius(tt.radius, tt.w, tt.h); got != tt.want {
			t.Errorf("ClampRadius(%d, %d, %d) = %d, want %d", tt.radius, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRoundCorners(t *testing.T) {
	img := solid(64, 64, color.NRGBA{R: 255, A: 255})
	out := Round(img, 16)

	if _, _, _, a := out.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner pixel alpha = %d, want 0", a)
	}
	if _, _, _, a := out.At(63, 63).RGBA(); a != 0 {
		t.Errorf("corner pixel alpha = %d, want 0", a)
	}
	if _, _, _, a := out.At(32, 32).RGBA(); a != 0xffff {
		t.Errorf("center pixel alpha = %d, want 0xffff", a)
	}
	if _, _, _, a := out.At(32, 0).RGBA(); a != 0xffff {
		t.Errorf("top edge midpoint alpha = %d, want 0xffff", a)
	}
}

func TestRoundZeroRadius(t *testing.T) {
	img := solid(32, 32, color.NRGBA{G: 255, A: 255})
	if out := Round(img, 0); out != img {
		t.Error("Round with radius 0 should return the input unchanged")
	}
}

func TestRoundPreservesTransparency(t *testing.T) {
	img := solid(64, 64, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(32, 32, color.NRGBA{})
	out := Round(img, 8)
	if _, _, _, a := out.At(32, 32).RGBA(); a != 0 {
		t.Errorf("transparent source pixel alpha = %d, want 0", a)
	}
}

func TestScaleSquare(t *testing.T) {
	img := solid(100, 100, color.NRGBA{R: 255, A: 255})
	out := Scale(img, 32)
	if b := out.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("bounds = %v, want 32x32", b)
	}
	if _, _, _, a := out.At(16, 16).RGBA(); a == 0 {
		t.Error("center pixel should be opaque")
	}
}

func TestScaleAspectFit(t *testing.T) {
	// A wide image must be letterboxed with transparent bands.
	img := solid(200, 100, color.NRGBA{R: 255, A: 255})
	out := Scale(img, 64)
	if b := out.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("bounds = %v, want 64x64", b)
	}
	if _, _, _, a := out.At(32, 2).RGBA(); a != 0 {
		t.Error("letterbox band should be transparent")
	}
	if _, _, _, a := out.At(32, 32).RGBA(); a == 0 {
		t.Error("center pixel should be opaque")
	}
}

func TestFitPreview(t *testing.T) {
	tests := []struct {
		w, h, max, wantW, wantH int
	}{
		{100, 100, 256, 100, 100},
		{512, 512, 256, 256, 256},
		{512, 256, 256, 256, 128},
		{100, 400, 200, 50, 200},
	}
	for _, tt := range tests {
		out := FitPreview(solid(tt.w, tt.h, color.NRGBA{A: 255}), tt.max)
		b := out.Bounds()
		if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("FitPreview(%dx%d, %d) = %dx%d, want %dx%d",
				tt.w, tt.h, tt.max, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
		}
	}
}

func TestDecodeReaderPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(10, 10, color.NRGBA{R: 1, G: 2, B: 3, A: 255})); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeReader(&buf, "test.png")
	if err != nil {
		t.Fatalf("DecodeReader: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("bounds = %v, want 10x10", b)
	}
	if c := img.NRGBAAt(5, 5); c != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("pixel = %v", c)
	}
}

func TestDecodeReaderTGAFallback(t *testing.T) {
	var buf bytes.Buffer
	if err := tga.Encode(&buf, solid(8, 8, color.NRGBA{R: 200, A: 255})); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeReader(&buf, "texture.tga")
	if err != nil {
		t.Fatalf("DecodeReader: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 8x8", b)
	}
}

func TestDecodeReaderGarbage(t *testing.T) {
	_, err := DecodeReader(bytes.NewReader([]byte("not an image at all")), "bad.png")
	if err == nil {
		t.Fatal("expected error for non-image data")
	}
	var derr *errors.DecodeError
	if !errors.As(err, &derr) {
		t.Errorf("error type = %T, want *DecodeError", err)
	}
}

func TestToNRGBAPassthrough(t *testing.T) {
	img := solid(4, 4, color.NRGBA{A: 255})
	if ToNRGBA(img) != img {
		t.Error("NRGBA at origin should pass through unchanged")
	}
}

func TestToNRGBAConverts(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 2, 6, 6))
	src.Set(3, 3, color.RGBA{R: 255, A: 255})
	out := ToNRGBA(src)
	if b := out.Bounds(); b.Min != (image.Point{}) || b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("bounds = %v, want 4x4 at origin", b)
	}
	if c := out.NRGBAAt(1, 1); c.R != 255 || c.A != 255 {
		t.Errorf("pixel = %v, want red", c)
	}
}
