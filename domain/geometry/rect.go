package geometry

import (
	"fmt"
	"math"
)

// Rect is a possibly rotated rectangle given by its four corners in fixed
// cyclic order. All corners share one coordinate space; construction panics
// otherwise. The derived operations assume true right angles, which the
// Thales selection construction guarantees.
type Rect struct {
	LeftUpper, RightUpper, RightLower, LeftLower Point
}

// NewRect builds a Rect from its four corners. Panics when the corners do not
// share a single coordinate space.
func NewRect(lu, ru, rl, ll Point) Rect {
	if ru.Space != lu.Space || rl.Space != lu.Space || ll.Space != lu.Space {
		panic(fmt.Sprintf("geometry: rectangle corners span multiple spaces: %s %s %s %s", lu, ru, rl, ll))
	}
	return Rect{LeftUpper: lu, RightUpper: ru, RightLower: rl, LeftLower: ll}
}

// axisAligned builds an upright Rect from two opposite corners.
func axisAligned(min, max Point) Rect {
	return NewRect(
		min,
		Point{X: max.X, Y: min.Y, Space: min.Space},
		max,
		Point{X: min.X, Y: max.Y, Space: min.Space},
	)
}

// Space returns the coordinate space shared by all corners.
func (r Rect) Space() Space { return r.LeftUpper.Space }

// Corners returns the four corners in cyclic order.
func (r Rect) Corners() [4]Point {
	return [4]Point{r.LeftUpper, r.RightUpper, r.RightLower, r.LeftLower}
}

// RotationAngle returns the angle by which the rectangle is rotated: the
// signed angle of its upper edge against the horizontal. Rotating the content
// by the negated angle makes it upright.
func (r Rect) RotationAngle() float64 {
	return r.LeftUpper.RotationAngle(r.RightUpper)
}

// AxisAlignedBounds returns the smallest upright rectangle containing r.
func (r Rect) AxisAlignedBounds() Rect {
	minX, minY := r.LeftUpper.X, r.LeftUpper.Y
	maxX, maxY := minX, minY
	for _, c := range r.Corners() {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	return axisAligned(
		Point{X: minX, Y: minY, Space: r.Space()},
		Point{X: maxX, Y: maxY, Space: r.Space()},
	)
}

// Width returns the length of the upper edge.
func (r Rect) Width() float64 { return r.RightUpper.Sub(r.LeftUpper).Mag() }

// Height returns the length of the left edge.
func (r Rect) Height() float64 { return r.LeftLower.Sub(r.LeftUpper).Mag() }

// Area returns the area of the rectangle.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// InsetOffsets returns the horizontal and vertical margins between the rotated
// rectangle and its axis-aligned bounds, derived from the edge projections and
// the rotation angle. Exact only for true right-angle rectangles. For an
// upright rectangle both offsets are zero.
func (r Rect) InsetOffsets() (dx, dy float64) {
	alpha := r.RotationAngle()
	dUpperY := r.RightUpper.Y - r.LeftUpper.Y
	dLowerY := r.LeftUpper.Y - r.LeftLower.Y
	return dLowerY * math.Sin(alpha), dUpperY * math.Cos(alpha)
}

// Remap applies a point mapping to all four corners, producing the rectangle
// in the mapping's target space.
func (r Rect) Remap(f func(Point) Point) Rect {
	return NewRect(f(r.LeftUpper), f(r.RightUpper), f(r.RightLower), f(r.LeftLower))
}
