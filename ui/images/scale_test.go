package images

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestEncodePNG_RoundTrips(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 6))
	data := EncodePNG(src)
	if len(data) == 0 {
		t.Fatalf("empty PNG data")
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("unexpected decoded size %v", b)
	}
}

func TestEncodePNG_NilImage(t *testing.T) {
	if data := EncodePNG(nil); data != nil {
		t.Fatalf("expected nil for nil image")
	}
}

func TestScaleDisplay_ExactSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	dst := ScaleDisplay(src, 40, 20)
	if b := dst.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Fatalf("expected 40x20, got %v", b)
	}
}

func TestScaleDisplay_ClampsDegenerateTarget(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	dst := ScaleDisplay(src, 0, -3)
	if b := dst.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Fatalf("expected 1x1, got %v", b)
	}
}

func TestFitPreview_SmallSourceUntouched(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 30, 20))
	if out := FitPreview(src, 100, 100); out != image.Image(src) {
		t.Fatalf("small source must be returned unchanged")
	}
}

func TestFitPreview_ShrinksPreservingAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	out := FitPreview(src, 100, 100)
	b := out.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("expected 100x50 preview, got %v", b)
	}
}
