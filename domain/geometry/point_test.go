package geometry

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < eps }

func TestPoint_AddSub(t *testing.T) {
	p := Canvas(3, 4)
	q := Canvas(1, -2)
	sum := p.Add(q)
	if sum.X != 4 || sum.Y != 2 || sum.Space != SpaceCanvas {
		t.Fatalf("unexpected sum %v", sum)
	}
	diff := p.Sub(q)
	if diff.X != 2 || diff.Y != 6 {
		t.Fatalf("unexpected diff %v", diff)
	}
}

func TestPoint_ScaleNeg(t *testing.T) {
	p := Canvas(3, -4)
	n := p.Neg()
	if n.X != -3 || n.Y != 4 || n.Space != SpaceCanvas {
		t.Fatalf("unexpected negation %v", n)
	}
	if back := n.Neg(); back != p {
		t.Fatalf("double negation of %v gave %v", p, back)
	}
	if s := Image(1.5, 2).Scale(2); s.X != 3 || s.Y != 4 || s.Space != SpaceImage {
		t.Fatalf("unexpected scale %v", s)
	}
}

func TestPoint_SpaceMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on canvas+image addition")
		}
	}()
	_ = Canvas(1, 1).Add(Image(1, 1))
}

func TestPoint_InvertThroughIsInvolution(t *testing.T) {
	cases := []struct{ px, py, cx, cy float64 }{
		{0, 0, 0, 0},
		{10, 20, 5, 5},
		{-3.5, 7.25, 100, -42},
		{1e6, -1e6, 0.5, 0.5},
	}
	for _, c := range cases {
		p := Canvas(c.px, c.py)
		center := Canvas(c.cx, c.cy)
		back := p.InvertThrough(center).InvertThrough(center)
		if !almostEqual(back.X, p.X) || !almostEqual(back.Y, p.Y) {
			t.Fatalf("double inversion of %v through %v gave %v", p, center, back)
		}
	}
}

func TestPoint_InvertThrough(t *testing.T) {
	got := Canvas(100, 0).InvertThrough(Canvas(50, 50))
	if !almostEqual(got.X, 0) || !almostEqual(got.Y, 100) {
		t.Fatalf("expected (0,100), got %v", got)
	}
}

func TestPoint_ProjectToCircleDistance(t *testing.T) {
	center := Canvas(50, 50)
	const radius = 70.5
	pts := []Point{
		Canvas(0, 0),
		Canvas(100, 0),
		Canvas(50, 51),
		Canvas(-300, 200),
		Canvas(50.001, 50),
	}
	for _, p := range pts {
		proj, err := p.ProjectToCircle(center, radius)
		if err != nil {
			t.Fatalf("projection of %v failed: %v", p, err)
		}
		if d := proj.Sub(center).Mag(); !almostEqual(d, radius) {
			t.Fatalf("projected %v to %v, distance %g want %g", p, proj, d, radius)
		}
	}
}

func TestPoint_ProjectToCircleDegenerate(t *testing.T) {
	center := Canvas(50, 50)
	_, err := center.ProjectToCircle(center, 10)
	if !errors.Is(err, ErrDegenerateCircle) {
		t.Fatalf("expected ErrDegenerateCircle, got %v", err)
	}
}

func TestPoint_RotationAngle(t *testing.T) {
	deg := func(rad float64) float64 { return rad * 180 / math.Pi }
	cases := []struct {
		from, to Point
		want     float64 // degrees
	}{
		{Canvas(100, 100), Canvas(200, 100), 0},
		{Canvas(100, 100), Canvas(200, 200), -45},
		{Canvas(100, 100), Canvas(200, 0), 45},
		{Canvas(100, 100), Canvas(100, 200), -90},
		{Canvas(100, 100), Canvas(100, 0), 90},
	}
	for _, c := range cases {
		if got := deg(c.from.RotationAngle(c.to)); !almostEqual(got, c.want) {
			t.Fatalf("angle %v->%v = %g deg, want %g", c.from, c.to, got, c.want)
		}
	}
}

func TestPoint_Midpoint(t *testing.T) {
	m := Canvas(0, 0).Midpoint(Canvas(100, 50))
	if !almostEqual(m.X, 50) || !almostEqual(m.Y, 25) {
		t.Fatalf("unexpected midpoint %v", m)
	}
}

func TestCircleFromDiameter_BoundingBox(t *testing.T) {
	// Degenerate diameter yields a degenerate box.
	c := CircleFromDiameter(Canvas(0, 0), Canvas(0, 0))
	if c.Radius != 0 {
		t.Fatalf("expected zero radius, got %g", c.Radius)
	}
	bb := c.BoundingBox()
	if bb.LeftUpper.X != 0 || bb.LeftUpper.Y != 0 || bb.RightLower.X != 0 || bb.RightLower.Y != 0 {
		t.Fatalf("expected collapsed bounding box, got %+v", bb)
	}

	// Vertical diameter of length 100.
	c = CircleFromDiameter(Canvas(50, 0), Canvas(50, 100))
	bb = c.BoundingBox()
	if !almostEqual(bb.LeftUpper.X, 0) || !almostEqual(bb.LeftUpper.Y, 0) ||
		!almostEqual(bb.RightLower.X, 100) || !almostEqual(bb.RightLower.Y, 100) {
		t.Fatalf("expected (0,0)-(100,100), got %+v", bb)
	}

	// Any rotated diameter of the same circle yields the same box.
	for _, phi := range []float64{0, 0.3, math.Pi / 4, 1.2, math.Pi - 0.01} {
		p := Canvas(50*(1+math.Cos(phi)), 50*(1+math.Sin(phi)))
		q := Canvas(50*(1+math.Cos(phi+math.Pi)), 50*(1+math.Sin(phi+math.Pi)))
		bb := CircleFromDiameter(p, q).BoundingBox()
		if !almostEqual(bb.LeftUpper.X, 0) || !almostEqual(bb.LeftUpper.Y, 0) ||
			!almostEqual(bb.RightLower.X, 100) || !almostEqual(bb.RightLower.Y, 100) {
			t.Fatalf("phi=%g: expected (0,0)-(100,100), got %+v", phi, bb)
		}
	}
}
