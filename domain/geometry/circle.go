package geometry

// Circle is a constraint circle used by the Thales selection gesture.
type Circle struct {
	Center Point
	Radius float64
}

// CircleFromDiameter returns the circle whose diameter is the segment p-q.
// p == q yields a zero-radius circle; callers must treat that as degenerate.
func CircleFromDiameter(p, q Point) Circle {
	center := p.Midpoint(q)
	return Circle{Center: center, Radius: center.Sub(p).Mag()}
}

// BoundingBox returns the axis-aligned rectangle enclosing the circle,
// suitable for oval drawing primitives that take two corners.
func (c Circle) BoundingBox() Rect {
	min := c.Center.Add(Point{X: -c.Radius, Y: -c.Radius, Space: c.Center.Space})
	max := c.Center.Add(Point{X: c.Radius, Y: c.Radius, Space: c.Center.Space})
	return axisAligned(min, max)
}
