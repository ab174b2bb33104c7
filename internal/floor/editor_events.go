package floor

import (
	"math"

	"go.uber.org/zap"

	"github.com/elektrokombinacija/floorplan/internal/command"
	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/grid"
	"github.com/elektrokombinacija/floorplan/internal/interact"
)

// Handle geometry in screen pixels.
const (
	handleRadius       = 8
	rotateHandleOffset = 30
	minScale           = 0.1
	scaleEpsilon       = 1e-6
)

type transform int

const (
	transformNone transform = iota
	transformMove
	transformScale
	transformRotate
)

func (t transform) String() string {
	return [...]string{"none", "move", "scale", "rotate"}[t]
}

// editorEvents adds selection, transforms, snapping and history on top of the
// click/drag logic of baseEvents.
type editorEvents struct {
	baseEvents
	snapper *grid.Snapper

	kind        transform
	moving      []core.Element
	before      map[core.ElementID]core.Geometry
	wasSelected bool
}

func newEditorEvents(f *Floor, snapper *grid.Snapper) *editorEvents {
	e := &editorEvents{baseEvents: newBaseEvents(f), snapper: snapper}
	e.pointer = e.HandlePointer
	return e
}

func (e *editorEvents) HandlePointer(ev interact.PointerEvent) {
	switch ev.Kind {
	case interact.PointerDown:
		e.pointerDown(ev)
		e.begin(ev)
	case interact.PointerMove:
		if !e.pointerMove(ev) {
			return
		}
		switch {
		case e.kind != transformNone:
			if e.hasMouseMoved {
				e.apply(ev)
			}
		case e.target == nil:
			e.pan(ev)
		}
	case interact.PointerUp:
		if !e.down {
			return
		}
		defer e.end()
		if e.kind != transformNone && e.hasMouseMoved {
			e.commit()
			e.reset()
			return
		}
		if !e.hasMouseMoved && ev.Ctrl && e.wasSelected && e.target != nil {
			e.floor.deselect(e.target.ID())
			e.floor.render()
		}
		e.pointerUp(ev)
	case interact.PointerCancel:
		e.cancel()
	default:
		e.baseEvents.HandlePointer(ev)
	}
}

// HandleKey runs history, delete and design keys. While a press is active only
// Escape is honoured, so history never changes under an uncommitted transform.
func (e *editorEvents) HandleKey(ev interact.KeyEvent) {
	if e.down {
		if ev.Name == interact.KeyEscape {
			e.cancel()
		}
		return
	}
	h := e.floor.history
	switch {
	case ev.Name == interact.KeyEscape:
		e.cancel()
	case ev.Ctrl && (ev.Name == interact.KeyY || (ev.Name == interact.KeyZ && ev.Shift)):
		h.Redo()
	case ev.Ctrl && ev.Name == interact.KeyZ:
		h.Undo()
	case ev.Name == interact.KeyDelete || ev.Name == interact.KeyBackspace:
		e.deleteSelection()
	case ev.Name == interact.KeyB && !ev.Ctrl:
		e.cycleBarDesign()
	}
}

// begin decides what a press grabs: a handle of the single selected element, an
// element (selecting it), or empty space (clearing the selection unless Ctrl is held).
func (e *editorEvents) begin(ev interact.PointerEvent) {
	f := e.floor
	p := f.ToScene(ev.X, ev.Y)
	if el := f.handleOwner(); el != nil {
		l := el.Locks()
		switch {
		case !l.Rotation && f.hitHandle(f.RotateHandle(el), p):
			e.kind = transformRotate
		case !(l.ScalingX && l.ScalingY) && f.hitHandle(f.ScaleHandle(el), p):
			e.kind = transformScale
		}
		if e.kind != transformNone {
			e.target = el
			e.snapshot(el)
			return
		}
	}

	if e.target == nil {
		if !ev.Ctrl {
			f.ClearSelection()
		}
		return
	}
	id := e.target.ID()
	e.wasSelected = f.IsSelected(id)
	e.kind = transformMove
	if ev.Ctrl {
		f.Select(id, true)
		e.snapshot(f.Selected()...)
		return
	}
	f.Select(id, false)
	e.snapshot(e.target)
}

func (e *editorEvents) snapshot(elements ...core.Element) {
	e.moving = elements
	e.before = make(map[core.ElementID]core.Geometry, len(elements))
	for _, el := range elements {
		e.before[el.ID()] = el.Geometry()
	}
}

// apply updates the live geometry of the grabbed elements.
func (e *editorEvents) apply(ev interact.PointerEvent) {
	f := e.floor
	cur := f.ToScene(ev.X, ev.Y)
	switch e.kind {
	case transformMove:
		d := cur.Sub(f.ToScene(e.downAt.X, e.downAt.Y))
		for _, el := range e.moving {
			g := e.before[el.ID()]
			l := el.Locks()
			if !l.MovementX {
				g.Left += d.X
			}
			if !l.MovementY {
				g.Top += d.Y
			}
			el.SetGeometry(g)
		}
	case transformScale:
		el := e.moving[0]
		g := e.before[el.ID()]
		local := g.ToLocal(cur)
		sx := math.Max(minScale, local.X/g.ScaledWidth())
		sy := math.Max(minScale, local.Y/g.ScaledHeight())
		if core.IsRound(el) {
			s := math.Max(sx, sy)
			sx, sy = s, s
		}
		l := el.Locks()
		if !l.ScalingX {
			g.ScaleX *= sx
		}
		if !l.ScalingY {
			g.ScaleY *= sy
		}
		el.SetGeometry(g)
		el.OnScaling()
	case transformRotate:
		el := e.moving[0]
		g := e.before[el.ID()]
		c := g.Center()
		g.Angle = math.Atan2(cur.Y-c.Y, cur.X-c.X)*180/math.Pi + 90
		el.SetGeometry(g)
	}
}

// commit snaps the transformed elements and records the change in history.
func (e *editorEvents) commit() {
	f := e.floor
	switch e.kind {
	case transformMove:
		var moves []command.Move
		for _, el := range e.moving {
			g := el.Geometry()
			g.Left, g.Top = e.snapper.Position(g.Left, g.Top)
			el.SetGeometry(g)
			from := e.before[el.ID()].Position()
			if from != g.Position() {
				moves = append(moves, command.Move{ID: el.ID(), From: from, To: g.Position()})
			}
		}
		if len(moves) > 0 {
			f.history.Execute(command.NewMoveCommand(f, moves...))
		}
	case transformScale:
		el := e.moving[0]
		g := e.snapSize(el)
		el.SetGeometry(g)
		if before := e.before[el.ID()]; before != g {
			f.history.Execute(command.NewResizeCommand(f, el.ID(), before, g))
		}
	case transformRotate:
		el := e.moving[0]
		g := el.Geometry()
		g.Angle = e.snapper.Angle(g.Angle)
		el.SetGeometry(g)
		if before := e.before[el.ID()]; before != g {
			f.history.Execute(command.NewRotateCommand(f, el.ID(), before, g))
		}
	}
	f.logger.Debug("transform committed", zap.Stringer("kind", e.kind), zap.Int("elements", len(e.moving)))
}

// snapSize folds the live scale into the element's dimensions, quantizing every
// scaled axis. Round tables stay circular; thin decor keeps its thickness step.
func (e *editorEvents) snapSize(el core.Element) core.Geometry {
	g := el.Geometry()
	w, h := g.ScaledWidth(), g.ScaledHeight()
	if core.IsRound(el) {
		d := e.snapper.Size(math.Max(w, h))
		w, h = d, d
	} else {
		dw, dh := e.floor.factory.DefaultSize(el.Tag())
		if math.Abs(g.ScaleX-1) > scaleEpsilon {
			w = e.snapper.SizeFor(w, dw)
		}
		if math.Abs(g.ScaleY-1) > scaleEpsilon {
			h = e.snapper.SizeFor(h, dh)
		}
	}
	g.Width, g.Height = w, h
	g.ScaleX, g.ScaleY = 1, 1
	g.Left, g.Top = e.snapper.Position(g.Left, g.Top)
	return g
}

// cancel restores the geometry captured when the transform began.
func (e *editorEvents) cancel() {
	for _, el := range e.moving {
		el.SetGeometry(e.before[el.ID()])
	}
	e.end()
	e.reset()
}

func (e *editorEvents) end() {
	e.kind = transformNone
	e.moving = nil
	e.before = nil
	e.wasSelected = false
}

func (e *editorEvents) deleteSelection() {
	selected := e.floor.Selected()
	if len(selected) == 0 {
		return
	}
	ids := make([]core.ElementID, len(selected))
	for i, el := range selected {
		ids[i] = el.ID()
	}
	e.floor.history.Execute(command.NewRemoveCommand(e.floor, ids...))
}

func (e *editorEvents) cycleBarDesign() {
	for _, el := range e.floor.Selected() {
		if bar, ok := el.(*core.Bar); ok {
			bar.NextDesign()
		}
	}
}

// handleOwner returns the element whose handles are active: the only selected element.
func (f *Floor) handleOwner() core.Element {
	if f.mode != ModeEditor {
		return nil
	}
	selected := f.Selected()
	if len(selected) != 1 {
		return nil
	}
	return selected[0]
}

// ScaleHandle returns the scene position of an element's resize handle (bottom-right corner).
func (f *Floor) ScaleHandle(el core.Element) core.Point {
	g := el.Geometry()
	return g.FromLocal(core.Point{X: g.ScaledWidth(), Y: g.ScaledHeight()})
}

// RotateHandle returns the scene position of an element's rotation handle, above its top centre.
func (f *Floor) RotateHandle(el core.Element) core.Point {
	g := el.Geometry()
	return g.FromLocal(core.Point{X: g.ScaledWidth() / 2, Y: -rotateHandleOffset / f.view.Zoom})
}

// HandlesVisible reports whether the resize and rotate handles of el should be drawn.
func (f *Floor) HandlesVisible(el core.Element) bool {
	owner := f.handleOwner()
	return owner != nil && owner.ID() == el.ID()
}

func (f *Floor) hitHandle(handle, p core.Point) bool {
	return math.Hypot(p.X-handle.X, p.Y-handle.Y) <= handleRadius/f.view.Zoom
}
