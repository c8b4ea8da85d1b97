// Package viewport maps between canvas coordinates of the letterboxed display
// and native pixel coordinates of the source image.
package viewport

import (
	"github.com/luphord/blitzcrop-go/domain/geometry"
)

// Viewport is a stateless bidirectional mapper parameterized by the current
// canvas size and the native image size. The image is scaled to fit the
// canvas preserving aspect ratio and centered, leaving margins on one axis.
type Viewport struct {
	CanvasW, CanvasH int
	ImageW, ImageH   int
}

// FitSize returns the displayed image size inside the canvas: the aspect
// ratio is preserved, at least one dimension matches its canvas bound, and
// both are truncated to whole pixels.
func (v Viewport) FitSize() (iw, ih int) {
	ar := float64(v.ImageW) / float64(v.ImageH)
	if ar >= float64(v.CanvasW)/float64(v.CanvasH) {
		// Image is wider than the canvas: width-limited.
		iw, ih = v.CanvasW, int(float64(v.CanvasW)/ar)
	} else {
		iw, ih = int(float64(v.CanvasH)*ar), v.CanvasH
	}
	// Extreme aspect ratios can truncate a dimension to zero; keep both
	// positive so Scale and the coordinate maps stay finite.
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}
	return iw, ih
}

// Origin returns the canvas position of the displayed image's upper left
// corner (the centering offset).
func (v Viewport) Origin() geometry.Point {
	iw, ih := v.FitSize()
	return geometry.Canvas(float64(v.CanvasW-iw)/2, float64(v.CanvasH-ih)/2)
}

// Scale returns the factor from displayed pixels to native image pixels.
func (v Viewport) Scale() float64 {
	iw, _ := v.FitSize()
	return float64(v.ImageW) / float64(iw)
}

// CanvasToImage maps a canvas-space point to image space: subtract the
// centering offset, then scale from the fitted size up to native size.
// The map is affine and invertible up to the integer truncation of FitSize.
func (v Viewport) CanvasToImage(p geometry.Point) geometry.Point {
	iw, ih := v.FitSize()
	rel := p.Sub(v.Origin())
	return geometry.Image(
		rel.X/float64(iw)*float64(v.ImageW),
		rel.Y/float64(ih)*float64(v.ImageH),
	)
}

// ImageToCanvas maps an image-space point back onto the canvas.
func (v Viewport) ImageToCanvas(p geometry.Point) geometry.Point {
	iw, ih := v.FitSize()
	origin := v.Origin()
	return geometry.Canvas(
		origin.X+p.X/float64(v.ImageW)*float64(iw),
		origin.Y+p.Y/float64(v.ImageH)*float64(ih),
	)
}
