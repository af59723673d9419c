// Package gesture turns pointer events into live shape previews. A gesture
// snapshots the surface on pointer-down and, on every move, restores that
// snapshot before drawing the current shape so only one preview is visible.
package gesture

import (
	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/shapes"
)

// StyleSource supplies the current tool selection. It is read once per event.
type StyleSource interface {
	Style() shapes.Style
}

// StyleFunc adapts a function to StyleSource.
type StyleFunc func() shapes.Style

func (f StyleFunc) Style() shapes.Style { return f() }

// FixedStyle is a StyleSource that never changes.
type FixedStyle shapes.Style

func (f FixedStyle) Style() shapes.Style { return shapes.Style(f) }

// Machine tracks the single in-progress gesture. It is not safe for
// concurrent use; hosts deliver events from one goroutine.
type Machine struct {
	surface canvas.Surface
	styles  StyleSource

	active   bool
	anchor   canvas.Point
	snapshot canvas.Snapshot
}

// New creates an idle Machine drawing onto surface.
func New(surface canvas.Surface, styles StyleSource) *Machine {
	return &Machine{surface: surface, styles: styles}
}

// Active reports whether a gesture is in progress.
func (m *Machine) Active() bool { return m.active }

// Anchor returns the pointer-down position of the current gesture.
func (m *Machine) Anchor() (canvas.Point, bool) { return m.anchor, m.active }

// Surface returns the surface the machine draws on.
func (m *Machine) Surface() canvas.Surface { return m.surface }

// PointerDown starts a gesture at p.
func (m *Machine) PointerDown(p canvas.Point) {
	st := m.styles.Style()
	m.active = true
	m.anchor = p
	m.surface.BeginPath()
	m.surface.SetLineWidth(st.Width)
	m.surface.SetStrokeColor(st.Color)
	m.surface.SetFillColor(st.Color)
	m.snapshot = m.surface.Snapshot()
}

// PointerMove redraws the preview for the pointer at p. It does nothing
// unless a gesture is active.
func (m *Machine) PointerMove(p canvas.Point) {
	if !m.active {
		return
	}
	st := m.styles.Style()
	m.surface.Restore(m.snapshot)
	shapes.Draw(m.surface, st.Tool, m.anchor, p, st)
}

// PointerUp ends the gesture and releases its snapshot.
func (m *Machine) PointerUp() {
	m.active = false
	m.snapshot = nil
}
