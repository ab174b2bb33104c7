package widgets

import (
	"image/color"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/floor"
	"github.com/elektrokombinacija/floorplan/internal/serial"
)

func newView(t *testing.T, opts func(*floor.Options)) (*FloorView, *floor.Editor) {
	t.Helper()
	tbl, err := core.NewRectTable(0, 0, 100, 50, "T1")
	require.NoError(t, err)

	view := NewFloorView(color.NRGBA{A: 255})
	o := floor.Options{
		Canvas:          view,
		Document:        serial.Export([]core.Element{tbl}, 1000, 1000).Document("f", "Hall"),
		ContainerWidth:  1000,
		ContainerHeight: 1000,
	}
	if opts != nil {
		opts(&o)
	}
	e, err := floor.NewEditor(o)
	require.NoError(t, err)
	view.Attach(e.Floor)
	return view, e
}

func press(x, y float32, at time.Duration) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonPrimary, Position: f32.Pt(x, y), Time: at}
}

func release(x, y float32, at time.Duration) pointer.Event {
	return pointer.Event{Kind: pointer.Release, Source: pointer.Mouse, Position: f32.Pt(x, y), Time: at}
}

func TestRequestRenderInvalidates(t *testing.T) {
	view, _ := newView(t, nil)
	calls := 0
	view.SetInvalidator(func() { calls++ })
	view.RequestRender()
	assert.Equal(t, 1, calls)
}

func TestDoubleClickDetection(t *testing.T) {
	var doubles []core.Point
	view, _ := newView(t, func(o *floor.Options) {
		o.OnDoubleClick = func(_ *floor.Floor, p core.Point) { doubles = append(doubles, p) }
	})

	for _, ev := range []pointer.Event{
		press(500, 500, 0), release(500, 500, 50*time.Millisecond),
		press(502, 501, 150*time.Millisecond), release(502, 501, 200*time.Millisecond),
		// Third click right after a double starts a new sequence.
		press(502, 501, 250*time.Millisecond), release(502, 501, 300*time.Millisecond),
		// Too slow.
		press(502, 501, 900*time.Millisecond), release(502, 501, 950*time.Millisecond),
		// Too far.
		press(700, 700, time.Second), release(700, 700, 1100*time.Millisecond),
	} {
		view.handlePointerEvent(ev)
	}

	require.Len(t, doubles, 1)
	assert.Equal(t, core.Point{X: 502, Y: 501}, doubles[0])
}

func TestPointerTranslation(t *testing.T) {
	var clicked core.Element
	view, e := newView(t, func(o *floor.Options) {
		o.OnElementClicked = func(_ *floor.Floor, el core.Element) { clicked = el }
	})

	// Secondary button presses are ignored.
	view.handlePointerEvent(pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonSecondary, Position: f32.Pt(50, 25)})
	assert.False(t, e.HasSelection())

	view.handlePointerEvent(press(50, 25, 0))
	view.handlePointerEvent(release(50, 25, time.Millisecond))
	require.NotNil(t, clicked)
	assert.True(t, e.HasSelection())

	view.handlePointerEvent(pointer.Event{Kind: pointer.Scroll, Source: pointer.Mouse, Position: f32.Pt(500, 500), Scroll: f32.Pt(0, -20)})
	assert.Equal(t, 1, e.Zoom().Step())

	view.handlePointerEvent(pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonPrimary, Position: f32.Pt(800, 800), Modifiers: key.ModShortcut})
	view.handlePointerEvent(release(800, 800, time.Second))
	assert.True(t, e.HasSelection(), "shortcut-click on empty space keeps the selection")
}

func TestTouchTranslation(t *testing.T) {
	view, e := newView(t, nil)
	touch := func(kind pointer.Kind, id pointer.ID, x float32) {
		view.handlePointerEvent(pointer.Event{Kind: kind, Source: pointer.Touch, PointerID: id, Position: f32.Pt(x, 500)})
	}

	touch(pointer.Press, 1, 400)
	touch(pointer.Press, 2, 600)
	touch(pointer.Drag, 2, 700)
	assert.Equal(t, 1, e.Zoom().Step())
	touch(pointer.Release, 2, 700)
	touch(pointer.Cancel, 1, 400)
}

func TestStatusBarSummary(t *testing.T) {
	_, e := newView(t, nil)
	s := NewStatusBar(e.Floor)
	s.SetMessage("saved")

	assert.Equal(t, "Hall  [EDITOR]  1000x1000  zoom 0/10  tables 1 (free 1)  selected 0", s.Summary())
	assert.Equal(t, "saved", s.Message())
}

func TestPaletteCoversAllTags(t *testing.T) {
	for _, tag := range core.AllTags() {
		assert.NotEmpty(t, paletteLabels[tag], tag)
	}
}

func TestDragReleaseDoesNotArmDoubleClick(t *testing.T) {
	var doubles int
	view, _ := newView(t, func(o *floor.Options) {
		o.OnDoubleClick = func(*floor.Floor, core.Point) { doubles++ }
	})

	view.handlePointerEvent(press(500, 500, 0))
	view.handlePointerEvent(pointer.Event{Kind: pointer.Drag, Source: pointer.Mouse, Buttons: pointer.ButtonPrimary, Position: f32.Pt(600, 500), Time: 20 * time.Millisecond})
	view.handlePointerEvent(release(600, 500, 50*time.Millisecond))
	view.handlePointerEvent(press(600, 500, 150*time.Millisecond))
	view.handlePointerEvent(release(600, 500, 200*time.Millisecond))
	assert.Zero(t, doubles, "a drag release followed by a click is not a double click")

	view.handlePointerEvent(press(600, 500, 250*time.Millisecond))
	view.handlePointerEvent(release(600, 500, 300*time.Millisecond))
	assert.Equal(t, 1, doubles)
}
