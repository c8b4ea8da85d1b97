// Package crop turns a finalized canvas-space selection rectangle into an
// upright pixel buffer at native image resolution.
package crop

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/disintegration/imaging"

	"github.com/luphord/blitzcrop-go/domain/geometry"
	"github.com/luphord/blitzcrop-go/domain/viewport"
)

// ErrEmptyCropRegion is returned when the selection maps to a zero- or
// negative-area region of the source image.
var ErrEmptyCropRegion = errors.New("crop: selection maps to an empty image region")

// Extractor runs the crop/rotate/trim pipeline. It is stateless apart from
// its logger; Extract is a pure function of its arguments.
//
// The trim step assumes the selection was produced by the Thales gesture
// construction, i.e. has true right angles. Arbitrary quadrilaterals are not
// supported.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor returns an Extractor.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract cuts the content of the rotated selection rectangle out of src and
// returns it upright. sel is in canvas space; canvasW/canvasH describe the
// canvas the selection was made on, so the letterbox mapping can be inverted.
func (e *Extractor) Extract(sel geometry.Rect, src image.Image, canvasW, canvasH int) (image.Image, error) {
	if sel.Space() != geometry.SpaceCanvas {
		return nil, fmt.Errorf("crop: selection must be canvas-space, got %s", sel.Space())
	}
	srcBounds := src.Bounds()
	vp := viewport.Viewport{
		CanvasW: canvasW, CanvasH: canvasH,
		ImageW: srcBounds.Dx(), ImageH: srcBounds.Dy(),
	}

	// Step 1: crop the axis-aligned bounds of the selection, mapped to
	// image space.
	bb := sel.AxisAlignedBounds()
	min := vp.CanvasToImage(bb.LeftUpper)
	max := vp.CanvasToImage(bb.RightLower)
	box := image.Rect(
		int(math.Floor(min.X)), int(math.Floor(min.Y)),
		int(math.Ceil(max.X)), int(math.Ceil(max.Y)),
	).Intersect(image.Rect(0, 0, srcBounds.Dx(), srcBounds.Dy()))
	if box.Dx() <= 0 || box.Dy() <= 0 {
		return nil, fmt.Errorf("mapping %v to source %dx%d: %w",
			bb, srcBounds.Dx(), srcBounds.Dy(), ErrEmptyCropRegion)
	}
	buf := imaging.Crop(src, box)

	// Step 2: rotate the buffer so the selection content becomes upright.
	// The selection angle is already sign-corrected for y-down screen
	// coordinates; imaging rotates counter-clockwise for positive degrees,
	// so cancelling the selection's rotation means negating it.
	alpha := sel.RotationAngle()
	upright := buf
	if alpha != 0 {
		upright = imaging.Rotate(buf, -alpha*180/math.Pi, color.Transparent)
	}

	// Step 3: trim the expansion margins. Inset offsets are canvas-pixel
	// quantities; scale them to image pixels by the display ratio.
	insX, insY := sel.InsetOffsets()
	scale := vp.Scale()
	trimX := int(math.Round(math.Abs(insX) * scale))
	trimY := int(math.Round(math.Abs(insY) * scale))
	ub := upright.Bounds()
	inner := image.Rect(ub.Min.X+trimX, ub.Min.Y+trimY, ub.Max.X-trimX, ub.Max.Y-trimY)
	if inner.Dx() <= 0 || inner.Dy() <= 0 {
		return nil, fmt.Errorf("trimming %dx%d by (%d, %d): %w",
			ub.Dx(), ub.Dy(), trimX, trimY, ErrEmptyCropRegion)
	}
	out := imaging.Crop(upright, inner)

	if e.logger != nil {
		e.logger.Info("crop extracted",
			"angle_deg", alpha*180/math.Pi,
			"box", box.String(),
			"width", out.Bounds().Dx(),
			"height", out.Bounds().Dy(),
		)
	}
	return out, nil
}
