package selection

import (
	"github.com/luphord/blitzcrop-go/domain/geometry"
)

// State enumerates the finite states of the crop gesture.
type State int

const (
	// StateIdle is the initial state: no anchor has been placed yet.
	StateIdle State = iota
	// StateAnchored holds after a press placed the first corner.
	StateAnchored
	// StatePreviewing holds once a drag fixed the constraint circle; mouse
	// moves now shape a live rectangle preview.
	StatePreviewing
	// StateFinalized holds after a press completed a selection; the next
	// press re-anchors.
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnchored:
		return "anchored"
	case StatePreviewing:
		return "previewing"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Listener is called synchronously with each finalized selection rectangle,
// before the machine re-anchors on the triggering press.
type Listener func(geometry.Rect)

// PointerEvents is the abstract input surface consumed by the machine. All
// coordinates are canvas-space pixel positions.
type PointerEvents interface {
	Press(x, y float64)
	Drag(x, y float64)
	Move(x, y float64)
	Resize(width, height int)
}

// PreviewSource exposes the live gesture geometry for the display driver to
// render; the machine itself never draws.
type PreviewSource interface {
	ConstraintCircle() (geometry.Circle, bool)
	ProjectedPoint() (geometry.Point, bool)
	PreviewRect() (geometry.Rect, bool)
}

// FinalizedSource is the pull-based complement to Listener callbacks.
type FinalizedSource interface {
	TryTakeFinalized() (geometry.Rect, bool)
}

// MachineContract aggregates the machine's surfaces for dependency injection.
type MachineContract interface {
	PointerEvents
	PreviewSource
	FinalizedSource
	Current() State
	AddListener(Listener)
}
