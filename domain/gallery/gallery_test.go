package gallery

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
)

func TestNew_EmptyFails(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyGallery) {
		t.Fatalf("expected ErrEmptyGallery, got %v", err)
	}
}

func TestGallery_NavigationWraps(t *testing.T) {
	g, err := New([]string{"a.jpg", "b.jpg", "c.jpg"})
	if err != nil {
		t.Fatal(err)
	}
	if g.Current() != "a.jpg" || g.Len() != 3 {
		t.Fatalf("unexpected initial state: %s len=%d", g.Current(), g.Len())
	}
	if g.Next() != "b.jpg" || g.Next() != "c.jpg" {
		t.Fatalf("forward navigation broken")
	}
	if g.Next() != "a.jpg" {
		t.Fatalf("expected wrap to first image, got %s", g.Current())
	}
	if g.Prev() != "c.jpg" {
		t.Fatalf("expected wrap to last image, got %s", g.Current())
	}
	if g.Index() != 2 {
		t.Fatalf("unexpected index %d", g.Index())
	}
}

func TestSaveCrop_NamesByStemAndTimestamp(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})
	now := time.Date(2024, 5, 17, 13, 37, 42, 0, time.UTC)
	path, err := SaveCrop(img, "/photos/holiday.jpeg", dir, "20060102-150405", now)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if filepath.Base(path) != "holiday_crop_20240517-133742.png" {
		t.Fatalf("unexpected crop name %s", filepath.Base(path))
	}
	loaded, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("reading crop back failed: %v", err)
	}
	if b := loaded.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("unexpected saved size %v", b)
	}
}

func TestSaveCrop_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "crops")
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	path, err := SaveCrop(img, "x.png", dir, "20060102-150405", time.Now())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Fatalf("crop written outside output dir: %s", path)
	}
}
