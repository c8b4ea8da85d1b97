// Package render composites the live gesture overlay (constraint circle,
// projected point, preview rectangle) into the displayed frame. The canvas
// widget shows plain bitmaps, so overlays are drawn in software.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/luphord/blitzcrop-go/domain/geometry"
)

// Overlay describes the gesture geometry to draw, in canvas space relative
// to the frame's origin. Nil members are skipped.
type Overlay struct {
	Circle    *geometry.Circle
	Rectangle *geometry.Rect
	Projected *geometry.Point

	CircleColor    color.Color
	RectangleColor color.Color
	ProjectedColor color.Color
}

// Compose draws the overlay onto a copy of base and returns it.
func Compose(base image.Image, ov Overlay) *image.RGBA {
	b := base.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), base, b.Min, draw.Src)
	if ov.Circle != nil && ov.Circle.Radius > 0 {
		drawCircle(out, ov.Circle.Center.X, ov.Circle.Center.Y, ov.Circle.Radius, pick(ov.CircleColor, color.RGBA{R: 255, A: 255}))
	}
	if ov.Rectangle != nil {
		drawPolygon(out, ov.Rectangle.Corners(), pick(ov.RectangleColor, color.RGBA{B: 255, A: 255}))
	}
	if ov.Projected != nil {
		drawDot(out, ov.Projected.X, ov.Projected.Y, 4, pick(ov.ProjectedColor, color.RGBA{R: 255, G: 255, A: 255}))
	}
	return out
}

func pick(c color.Color, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}

func set(img *image.RGBA, x, y int, c color.Color) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

// drawLine steps along the major axis, one pixel per step.
func drawLine(img *image.RGBA, x0, y0, x1, y1 float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		set(img, int(math.Round(x0)), int(math.Round(y0)), c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		set(img, int(math.Round(x0+t*dx)), int(math.Round(y0+t*dy)), c)
	}
}

func drawPolygon(img *image.RGBA, corners [4]geometry.Point, c color.Color) {
	for i := range corners {
		p, q := corners[i], corners[(i+1)%4]
		drawLine(img, p.X, p.Y, q.X, q.Y, c)
	}
}

func drawCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	// Step fine enough that adjacent samples are at most a pixel apart.
	steps := int(math.Ceil(2 * math.Pi * r))
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		set(img, int(math.Round(cx+r*math.Cos(a))), int(math.Round(cy+r*math.Sin(a))), c)
	}
}

func drawDot(img *image.RGBA, cx, cy float64, r int, c color.Color) {
	x0, y0 := int(math.Round(cx)), int(math.Round(cy))
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				set(img, x0+x, y0+y, c)
			}
		}
	}
}
