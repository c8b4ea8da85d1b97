package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Space tags a Point with the coordinate system it lives in. Canvas points are
// positions on the displayed, letterboxed widget; Image points are native pixel
// positions of the source image. Arithmetic across spaces is a programmer error.
type Space int

const (
	SpaceCanvas Space = iota
	SpaceImage
)

func (s Space) String() string {
	switch s {
	case SpaceCanvas:
		return "canvas"
	case SpaceImage:
		return "image"
	default:
		return "unknown"
	}
}

// ErrDegenerateCircle is returned when a point cannot be projected because the
// constraint circle has no extent (point coincides with the center).
var ErrDegenerateCircle = errors.New("geometry: degenerate circle")

// Point is an immutable 2D vector tagged with its coordinate space.
// Screen convention applies: y grows downwards.
type Point struct {
	X, Y  float64
	Space Space
}

// Canvas returns a canvas-space point.
func Canvas(x, y float64) Point { return Point{X: x, Y: y, Space: SpaceCanvas} }

// Image returns an image-space point.
func Image(x, y float64) Point { return Point{X: x, Y: y, Space: SpaceImage} }

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)@%s", p.X, p.Y, p.Space)
}

// sameSpace panics when q lives in a different space than p. Mixing canvas
// pixels with image pixels silently is the highest-risk bug class in the
// cropping pipeline, so the mismatch fails fast.
func (p Point) sameSpace(op string, q Point) {
	if p.Space != q.Space {
		panic(fmt.Sprintf("geometry: %s of %s point and %s point", op, p.Space, q.Space))
	}
}

// Add returns p + q. Panics if the points live in different spaces.
func (p Point) Add(q Point) Point {
	p.sameSpace("addition", q)
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Space: p.Space}
}

// Sub returns p - q. Panics if the points live in different spaces.
func (p Point) Sub(q Point) Point {
	p.sameSpace("subtraction", q)
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Space: p.Space}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k, Space: p.Space}
}

// Neg returns -p.
func (p Point) Neg() Point { return p.Scale(-1) }

// Mag returns the euclidean length of p as a vector from the origin.
func (p Point) Mag() float64 { return math.Hypot(p.X, p.Y) }

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return p.Add(q.Sub(p).Scale(0.5))
}

// InvertThrough reflects p through center (central inversion / point
// reflection): 2*center - p. Applying it twice yields p again.
func (p Point) InvertThrough(center Point) Point {
	p.sameSpace("inversion", center)
	return Point{X: 2*center.X - p.X, Y: 2*center.Y - p.Y, Space: p.Space}
}

// ProjectToCircle returns the point on the circle of the given center and
// radius that lies on the ray from center through p. Returns
// ErrDegenerateCircle when p coincides with the center, since the ray is then
// undefined.
func (p Point) ProjectToCircle(center Point, radius float64) (Point, error) {
	d := p.Sub(center)
	mag := d.Mag()
	if mag == 0 {
		return Point{}, fmt.Errorf("project %s onto circle around itself: %w", p, ErrDegenerateCircle)
	}
	return center.Add(d.Scale(radius / mag)), nil
}

// RotationAngle returns the signed angle in radians of the segment p->q
// relative to the horizontal. Screen y grows downwards, so the sign is flipped
// against the usual math convention: a segment rising to the right yields a
// positive angle. A vertical segment yields ±π/2 depending on direction.
func (p Point) RotationAngle(q Point) float64 {
	p.sameSpace("rotation angle", q)
	dx, dy := q.X-p.X, q.Y-p.Y
	if dx == 0 {
		if dy > 0 {
			return -math.Pi / 2
		}
		return math.Pi / 2
	}
	return -math.Atan2(dy, dx)
}
