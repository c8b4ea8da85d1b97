// Package selection derives arbitrarily rotated, exactly rectangular crop
// selections from two unconstrained pointer gestures.
//
// A press anchors one corner, a drag fixes the opposite corner, and the two
// span the diameter of a constraint circle. Every subsequent mouse move is
// projected onto that circle; by Thales' theorem the projected point and its
// central inversion complete a true rectangle for any pointer position. The
// next press finalizes the selection and anchors the following one.
package selection

import (
	"log/slog"

	"github.com/luphord/blitzcrop-go/domain/geometry"
)

// Machine is the selection state machine for one canvas. It is synchronous
// and single-threaded: pointer events arrive in delivery order on the UI
// event thread and run to completion. One instance per active canvas.
type Machine struct {
	state    State
	anchor   geometry.Point // lu: first pressed corner
	opposite geometry.Point // rl: dragged opposite corner
	circle   geometry.Circle
	project  geometry.Point
	preview  geometry.Rect

	hasPreview bool
	finalized  *geometry.Rect

	listeners []Listener
	logger    *slog.Logger
}

// NewMachine returns a Machine in StateIdle.
func NewMachine(logger *slog.Logger) *Machine {
	return &Machine{state: StateIdle, logger: logger}
}

// AddListener registers a callback for finalized selections.
func (m *Machine) AddListener(l Listener) {
	if l != nil {
		m.listeners = append(m.listeners, l)
	}
}

// Current returns the machine's state.
func (m *Machine) Current() State { return m.state }

// Press finalizes a pending preview, if any, and anchors a new selection at
// (x, y). Finalization is emitted exactly once, synchronously, before the
// state resets. A zero-area preview is dropped without emission. Any earlier
// finalized rectangle still waiting in TryTakeFinalized is discarded.
func (m *Machine) Press(x, y float64) {
	// A press dismisses a finalized rectangle nobody pulled yet; only a
	// finalization happening right now may replace it.
	m.finalized = nil
	if m.state == StatePreviewing && m.hasPreview {
		m.finalize(m.preview)
	}
	m.anchor = geometry.Canvas(x, y)
	m.circle = geometry.Circle{}
	m.hasPreview = false
	m.state = StateAnchored
	if m.logger != nil {
		m.logger.Debug("selection anchored", "x", x, "y", y)
	}
}

// Drag fixes the corner opposite the anchor at (x, y). The segment between
// them becomes the diameter of the constraint circle. A drag onto the anchor
// itself leaves the machine anchored: a zero-radius circle cannot constrain
// a rectangle.
func (m *Machine) Drag(x, y float64) {
	if m.state == StateIdle {
		return
	}
	m.opposite = geometry.Canvas(x, y)
	m.circle = geometry.CircleFromDiameter(m.anchor, m.opposite)
	m.hasPreview = false
	if m.circle.Radius > 0 {
		m.state = StatePreviewing
	} else {
		m.state = StateAnchored
	}
}

// Move updates the live preview rectangle from the pointer position (x, y)
// via the Thales construction. Ignored outside StatePreviewing and for
// pointer positions coinciding with the circle center.
func (m *Machine) Move(x, y float64) {
	if m.state != StatePreviewing || m.circle.Radius <= 0 {
		return
	}
	corner1, err := geometry.Canvas(x, y).ProjectToCircle(m.circle.Center, m.circle.Radius)
	if err != nil {
		// Pointer sits exactly on the circle center; keep the last preview.
		return
	}
	corner2 := corner1.InvertThrough(m.circle.Center)
	m.project = corner1
	m.preview = geometry.NewRect(m.anchor, corner1, m.opposite, corner2)
	m.hasPreview = true
}

// Resize is a no-op for the selection: canvas-space coordinates of the
// gesture stay valid; only their mapping to image space depends on the
// canvas size, which the extractor receives separately.
func (m *Machine) Resize(width, height int) {
	if m.logger != nil {
		m.logger.Debug("canvas resized", "width", width, "height", height)
	}
}

// ConstraintCircle returns the live constraint circle while one exists.
func (m *Machine) ConstraintCircle() (geometry.Circle, bool) {
	if m.state != StatePreviewing {
		return geometry.Circle{}, false
	}
	return m.circle, true
}

// ProjectedPoint returns the pointer's projection onto the constraint circle.
func (m *Machine) ProjectedPoint() (geometry.Point, bool) {
	if m.state != StatePreviewing || !m.hasPreview {
		return geometry.Point{}, false
	}
	return m.project, true
}

// PreviewRect returns the live preview rectangle while one exists.
func (m *Machine) PreviewRect() (geometry.Rect, bool) {
	if m.state != StatePreviewing || !m.hasPreview {
		return geometry.Rect{}, false
	}
	return m.preview, true
}

// TryTakeFinalized returns the most recent finalized rectangle once. It is
// the pull-based alternative to AddListener.
func (m *Machine) TryTakeFinalized() (geometry.Rect, bool) {
	if m.finalized == nil {
		return geometry.Rect{}, false
	}
	r := *m.finalized
	m.finalized = nil
	return r, true
}

func (m *Machine) finalize(r geometry.Rect) {
	if r.Area() == 0 {
		if m.logger != nil {
			m.logger.Debug("dropping zero-area selection")
		}
		return
	}
	m.state = StateFinalized
	m.finalized = &r
	if m.logger != nil {
		m.logger.Info("selection finalized", "angle", r.RotationAngle(), "area", r.Area())
	}
	for _, l := range m.listeners {
		l(r)
	}
}

// Ensure contract satisfaction.
var _ MachineContract = (*Machine)(nil)
