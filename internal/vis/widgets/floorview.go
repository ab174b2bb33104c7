// Package widgets provides Gio UI widgets for the floor visualizer.
package widgets

import (
	"image"
	"image/color"
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/floorplan/internal/floor"
	"github.com/elektrokombinacija/floorplan/internal/interact"
	"github.com/elektrokombinacija/floorplan/internal/vis/draw"
)

// Double click detection window.
const (
	doubleClickTime   = 300 * time.Millisecond
	doubleClickRadius = 6
	clickSlop         = 3
)

// FloorView is the drawing surface of a floor. It implements floor.Canvas and
// translates Gio pointer events into the engine's host-neutral events.
type FloorView struct {
	floor      *floor.Floor
	selected   color.NRGBA
	invalidate func()
	size       image.Point

	pressPos       f32.Point
	lastRelease    time.Duration
	lastReleasePos f32.Point
	clickArmed     bool
}

// NewFloorView creates an empty view; Attach binds it to a floor once constructed.
func NewFloorView(selected color.NRGBA) *FloorView {
	return &FloorView{selected: selected}
}

// RequestRender asks the window for a new frame.
func (v *FloorView) RequestRender() {
	if v.invalidate != nil {
		v.invalidate()
	}
}

// SetInvalidator installs the window's invalidate function.
func (v *FloorView) SetInvalidator(fn func()) { v.invalidate = fn }

// Attach binds the view to the floor it draws.
func (v *FloorView) Attach(f *floor.Floor) { v.floor = f }

// Layout renders the floor.
func (v *FloorView) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	paint.Fill(gtx.Ops, color.NRGBA{R: 25, G: 28, B: 32, A: 255})
	if v.floor == nil {
		return layout.Dimensions{Size: bounds}
	}
	if bounds != v.size {
		v.size = bounds
		v.floor.Resize(float64(bounds.X), float64(bounds.Y))
	}

	v.handlePointerEvents(gtx)

	view := v.floor.Viewport()
	draw.DrawFloor(gtx, view)
	if o := v.floor.Overlay(); o != nil && o.Visible() {
		draw.DrawGrid(gtx, view, o.Lines(), draw.ColorGrid)
	}
	for _, el := range v.floor.Elements() {
		draw.DrawElement(gtx, el, view, v.floor.IsSelected(el.ID()), v.selected)
		draw.DrawCaption(gtx, th, el, view)
	}
	for _, el := range v.floor.Selected() {
		if v.floor.HandlesVisible(el) {
			draw.DrawHandles(gtx, el, view, v.floor.ScaleHandle(el), v.floor.RotateHandle(el))
		}
	}

	return layout.Dimensions{Size: bounds}
}

func (v *FloorView) handlePointerEvents(gtx layout.Context) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, v)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  v,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -1000, Max: 1000},
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			v.handlePointerEvent(pe)
		}
	}
}

func (v *FloorView) handlePointerEvent(ev pointer.Event) {
	if ev.Source == pointer.Touch {
		v.handleTouch(ev)
		return
	}

	pe := interact.PointerEvent{
		X:     float64(ev.Position.X),
		Y:     float64(ev.Position.Y),
		Ctrl:  ev.Modifiers.Contain(key.ModShortcut),
		Shift: ev.Modifiers.Contain(key.ModShift),
	}
	switch ev.Kind {
	case pointer.Press:
		if !ev.Buttons.Contain(pointer.ButtonPrimary) {
			return
		}
		pe.Kind = interact.PointerDown
		v.pressPos = ev.Position
	case pointer.Drag:
		pe.Kind = interact.PointerMove
	case pointer.Release:
		pe.Kind = interact.PointerUp
	case pointer.Cancel:
		pe.Kind = interact.PointerCancel
	case pointer.Scroll:
		pe.Kind = interact.PointerWheel
		pe.ScrollY = float64(ev.Scroll.Y)
	default:
		return
	}
	v.floor.HandlePointer(pe)

	if pe.Kind == interact.PointerUp && v.isDoubleClick(ev) {
		pe.Kind = interact.PointerDoubleClick
		v.floor.HandlePointer(pe)
	}
}

// isDoubleClick reports whether a release completes a double click: two click
// releases close in time and space. A detected double click, or a release that
// ends a drag, disarms until the next click.
func (v *FloorView) isDoubleClick(ev pointer.Event) bool {
	if m := ev.Position.Sub(v.pressPos); math.Hypot(float64(m.X), float64(m.Y)) > clickSlop {
		v.clickArmed = false
		return false
	}
	d := ev.Position.Sub(v.lastReleasePos)
	double := v.clickArmed &&
		ev.Time-v.lastRelease <= doubleClickTime &&
		math.Hypot(float64(d.X), float64(d.Y)) <= doubleClickRadius
	v.lastRelease = ev.Time
	v.lastReleasePos = ev.Position
	v.clickArmed = !double
	return double
}

func (v *FloorView) handleTouch(ev pointer.Event) {
	te := interact.TouchEvent{
		ID: int(ev.PointerID),
		X:  float64(ev.Position.X),
		Y:  float64(ev.Position.Y),
	}
	switch ev.Kind {
	case pointer.Press:
		te.Kind = interact.TouchStart
	case pointer.Drag:
		te.Kind = interact.TouchMove
	case pointer.Release, pointer.Cancel:
		te.Kind = interact.TouchEnd
	default:
		return
	}
	v.floor.HandleTouch(te)
}
