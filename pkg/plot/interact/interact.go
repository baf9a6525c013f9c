// Package interact wires pointer events into a plot's hint state.
//
// Hosts that own an event loop (a TUI, a WASM shell, a native view)
// wrap their pointer events in the Msg union and thread them through
// State.Update together with the plot's shared Meta. The state machine
// has two states: idle (nothing hovered) and hovering (a snapped data
// x-value is recorded). Repeated moves that snap to the same x report
// no change, so hosts can skip redundant redraws.
package interact

import "github.com/plotline/plotline/pkg/plot"

// Msg is the tagged union of events the hint state machine consumes.
type Msg interface {
	isMsg()
}

// MouseMove carries a pointer position in document pixel coordinates.
type MouseMove struct {
	X float64
	Y float64
}

func (MouseMove) isMsg() {}

// MouseLeave signals that the pointer left the plot.
type MouseLeave struct{}

func (MouseLeave) isMsg() {}

// Wrapped carries a consumer-provided message through the union
// untouched. It never changes the hint state; it exists so hosts can
// funnel their whole message stream through one Update call.
type Wrapped struct {
	Msg any
}

func (Wrapped) isMsg() {}

// State is the hint state: idle when no x-value is recorded. The zero
// value is idle. States are small immutable records; Update returns a
// fresh copy instead of mutating in place.
type State struct {
	hovered  float64
	hovering bool
}

// Hovered returns the snapped data x-value, and false while idle.
func (s State) Hovered() (float64, bool) {
	return s.hovered, s.hovering
}

// Update applies a message and returns the next state. The changed
// result reports whether the state actually transitioned; identical
// consecutive positions and messages while idle report false.
func (s State) Update(m *plot.Meta, msg Msg) (next State, changed bool) {
	switch msg := msg.(type) {
	case MouseMove:
		nearest, ok := m.NearestX(m.FromSVGX(msg.X))
		if !ok {
			return s, false
		}
		if s.hovering && s.hovered == nearest {
			return s, false
		}
		return State{hovered: nearest, hovering: true}, true
	case MouseLeave:
		if !s.hovering {
			return s, false
		}
		return State{}, true
	default:
		return s, false
	}
}

// Values gathers the per-series y-values at the hovered x, in element
// order, nil entries marking series without an exact match. It
// returns nil while idle.
func (s State) Values(m *plot.Meta) [][]float64 {
	if !s.hovering {
		return nil
	}
	return m.ValuesAt(s.hovered)
}
