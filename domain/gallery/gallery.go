// Package gallery manages the ordered set of images of a cropping session
// and the persistence of accepted crops.
package gallery

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// ErrEmptyGallery is returned when a gallery is created without images.
var ErrEmptyGallery = errors.New("gallery: no images")

// Gallery navigates an ordered list of image paths. Navigation wraps around.
type Gallery struct {
	paths []string
	idx   int
}

// New returns a Gallery over the given paths.
func New(paths []string) (*Gallery, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyGallery
	}
	return &Gallery{paths: append([]string(nil), paths...)}, nil
}

// Len returns the number of images.
func (g *Gallery) Len() int { return len(g.paths) }

// Index returns the position of the current image.
func (g *Gallery) Index() int { return g.idx }

// Current returns the path of the current image.
func (g *Gallery) Current() string { return g.paths[g.idx] }

// Next advances to the following image, wrapping at the end.
func (g *Gallery) Next() string {
	g.idx = (g.idx + 1) % len(g.paths)
	return g.paths[g.idx]
}

// Prev steps back to the preceding image, wrapping at the start.
func (g *Gallery) Prev() string {
	g.idx = (g.idx - 1 + len(g.paths)) % len(g.paths)
	return g.paths[g.idx]
}

// Open decodes the current image, honoring EXIF orientation.
func (g *Gallery) Open() (image.Image, error) {
	return imaging.Open(g.Current(), imaging.AutoOrientation(true))
}
