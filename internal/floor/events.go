package floor

import (
	"math"

	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/interact"
)

// clickSlop is the pointer travel in screen pixels below which a press still counts as a click.
const clickSlop = 3

// EventManager is the interaction strategy installed into a floor.
type EventManager interface {
	HandlePointer(ev interact.PointerEvent)
	HandleTouch(ev interact.TouchEvent)
	HandleKey(ev interact.KeyEvent)
}

// baseEvents distinguishes clicks from drags and drives wheel and touch zoom. It is
// shared by both modes.
type baseEvents struct {
	floor *Floor

	down          bool
	hasMouseMoved bool
	downAt        core.Point // screen
	last          core.Point // screen
	target        core.Element
	startElement  core.Table // live mode only

	// pointer is the owning manager's HandlePointer; a single finger is fed through it.
	pointer func(interact.PointerEvent)
	finger  int
	tapping bool
}

func newBaseEvents(f *Floor) baseEvents {
	return baseEvents{floor: f}
}

func (b *baseEvents) HandlePointer(ev interact.PointerEvent) {
	switch ev.Kind {
	case interact.PointerWheel:
		b.floor.zoom.Wheel(ev.ScrollY, ev.X, ev.Y)
	case interact.PointerDoubleClick:
		b.floor.emitDoubleClick(b.floor.ToScene(ev.X, ev.Y))
	case interact.PointerDown:
		b.pointerDown(ev)
	case interact.PointerMove:
		if b.pointerMove(ev) && b.target == nil {
			b.pan(ev)
		}
	case interact.PointerUp:
		if b.down {
			b.pointerUp(ev)
		}
	case interact.PointerCancel:
		b.reset()
	}
}

// HandleTouch drives pinch zoom and, while exactly one finger is down, the same
// press/move/release path as the mouse. A second finger cancels the pending press.
func (b *baseEvents) HandleTouch(ev interact.TouchEvent) {
	t := b.floor.touch
	pe := interact.PointerEvent{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case interact.TouchStart:
		t.Start(ev.ID, ev.X, ev.Y)
		switch {
		case t.Active() == 1:
			b.finger, b.tapping = ev.ID, true
			pe.Kind = interact.PointerDown
			b.dispatch(pe)
		case b.tapping:
			b.tapping = false
			pe.Kind = interact.PointerCancel
			b.dispatch(pe)
		}
	case interact.TouchMove:
		if b.tapping && ev.ID == b.finger {
			t.Track(ev.ID, ev.X, ev.Y)
			pe.Kind = interact.PointerMove
			b.dispatch(pe)
			return
		}
		t.Move(ev.ID, ev.X, ev.Y, b.floor.HasSelection())
	case interact.TouchEnd:
		t.End(ev.ID)
		if b.tapping && ev.ID == b.finger {
			b.tapping = false
			pe.Kind = interact.PointerUp
			b.dispatch(pe)
		}
	}
}

func (b *baseEvents) dispatch(ev interact.PointerEvent) {
	if b.pointer != nil {
		b.pointer(ev)
		return
	}
	b.HandlePointer(ev)
}

func (b *baseEvents) HandleKey(interact.KeyEvent) {}

// pointerDown records the press and the element under it.
func (b *baseEvents) pointerDown(ev interact.PointerEvent) {
	b.down = true
	b.hasMouseMoved = false
	b.downAt = core.Point{X: ev.X, Y: ev.Y}
	b.last = b.downAt
	b.target = b.floor.ElementAt(b.floor.ToScene(ev.X, ev.Y))
	b.startElement = nil
	if b.floor.mode == ModeLive {
		if t, ok := b.target.(core.Table); ok {
			b.startElement = t
		}
	}
}

// pointerMove tracks travel while pressed. It reports whether the press is active.
func (b *baseEvents) pointerMove(ev interact.PointerEvent) bool {
	if !b.down {
		return false
	}
	if math.Hypot(ev.X-b.downAt.X, ev.Y-b.downAt.Y) > clickSlop {
		b.hasMouseMoved = true
	}
	return true
}

// pan drags the view; the zoom controller refuses when nothing is zoomed or something is selected.
func (b *baseEvents) pan(ev interact.PointerEvent) {
	dx, dy := ev.X-b.last.X, ev.Y-b.last.Y
	b.last = core.Point{X: ev.X, Y: ev.Y}
	b.floor.zoom.Pan(dx, dy, b.floor.HasSelection())
}

// pointerUp raises a click when the pointer stayed put, otherwise the live-mode
// table-to-table gesture when released over a different table.
func (b *baseEvents) pointerUp(ev interact.PointerEvent) {
	defer b.reset()
	if !b.hasMouseMoved {
		b.floor.emitClick(b.target)
		return
	}
	if b.startElement == nil {
		return
	}
	to, ok := b.floor.ElementAt(b.floor.ToScene(ev.X, ev.Y)).(core.Table)
	if ok && to.ID() != b.startElement.ID() {
		b.floor.emitTableToTable(b.startElement, to)
	}
}

func (b *baseEvents) reset() {
	b.down = false
	b.hasMouseMoved = false
	b.target = nil
	b.startElement = nil
}

// viewerEvents only raises semantic events; nothing in the scene is mutated.
type viewerEvents struct {
	baseEvents
}

func newViewerEvents(f *Floor) *viewerEvents {
	v := &viewerEvents{baseEvents: newBaseEvents(f)}
	v.pointer = v.HandlePointer
	return v
}

// HandleKey aborts an in-progress press on Escape so no click or drop follows.
func (v *viewerEvents) HandleKey(ev interact.KeyEvent) {
	if ev.Name == interact.KeyEscape {
		v.reset()
	}
}
