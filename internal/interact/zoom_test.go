package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T) (*ZoomController, *int) {
	t.Helper()
	changes := 0
	view := NewViewport(500, 500, 1000, 1000)
	return NewZoomController(view, ZoomConfig{MaxSteps: 4, StepFactor: 2, WheelDeadZone: 4}, func() { changes++ }), &changes
}

func TestViewportFitScale(t *testing.T) {
	v := NewViewport(500, 0, 1000, 800)
	assert.Equal(t, 0.5, v.FitScale())
	assert.Equal(t, 0.5, v.Zoom)
	assert.Equal(t, 400.0, v.VisibleHeight())

	x, y := v.WorldToScreen(100, 200)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 100.0, y)
	wx, wy := v.ScreenToWorld(x, y)
	assert.Equal(t, 100.0, wx)
	assert.Equal(t, 200.0, wy)
}

func TestZoomBounds(t *testing.T) {
	z, _ := newController(t)

	for i := 0; i < 10; i++ {
		z.ZoomInCenter()
	}
	assert.Equal(t, 4, z.Step())
	assert.InDelta(t, 0.5*16, z.Viewport().Zoom, 1e-9)
	assert.False(t, z.ZoomIn(0, 0))

	resets := 0
	z.OnReset(func() { resets++ })
	for i := 0; i < 10; i++ {
		z.ZoomOutCenter()
	}
	assert.Equal(t, 0, z.Step())
	assert.Equal(t, 1, resets)
	assert.Equal(t, 0.5, z.Viewport().Zoom, "no residual scale after reset")
	assert.Equal(t, 0.0, z.Viewport().OffsetX)
	assert.Equal(t, 0.0, z.Viewport().OffsetY)
}

func TestZoomKeepsAnchor(t *testing.T) {
	z, _ := newController(t)
	v := z.Viewport()

	wx, wy := v.ScreenToWorld(200, 300)
	require.True(t, z.ZoomIn(200, 300))
	sx, sy := v.WorldToScreen(wx, wy)
	assert.InDelta(t, 200, sx, 1e-9)
	assert.InDelta(t, 300, sy, 1e-9)
}

func TestZoomClampsAtCorner(t *testing.T) {
	z, _ := newController(t)
	v := z.Viewport()

	// Zooming at the top-left corner must not expose space outside the floor.
	z.ZoomIn(0, 0)
	assert.Equal(t, 0.0, v.OffsetX)
	assert.Equal(t, 0.0, v.OffsetY)

	z.ZoomIn(500, 500)
	assert.GreaterOrEqual(t, v.OffsetX, v.ContainerWidth-v.FloorWidth*v.Zoom)
	assert.LessOrEqual(t, v.OffsetX, 0.0)
}

func TestWheelDeadZone(t *testing.T) {
	z, changes := newController(t)

	assert.False(t, z.Wheel(2, 10, 10))
	assert.Equal(t, 0, *changes)
	assert.True(t, z.Wheel(-10, 10, 10))
	assert.Equal(t, 1, z.Step())
	assert.True(t, z.Wheel(10, 10, 10))
	assert.Equal(t, 0, z.Step())
	assert.False(t, z.Wheel(10, 10, 10), "cannot go below step 0")
}

func TestPanRules(t *testing.T) {
	z, _ := newController(t)
	v := z.Viewport()

	assert.False(t, z.Pan(-50, -50, false), "no pan at fitted scale")

	z.ZoomIn(0, 0)
	assert.False(t, z.Pan(-50, -50, true), "no pan while an element is selected")
	assert.True(t, z.Pan(-50, -50, false))
	assert.Equal(t, -50.0, v.OffsetX)

	// Content is 1000px wide in a 500px container: offset is clamped to -500.
	z.Pan(-5000, -5000, false)
	assert.Equal(t, -500.0, v.OffsetX)
	assert.Equal(t, -500.0, v.OffsetY)
	z.Pan(5000, 5000, false)
	assert.Equal(t, 0.0, v.OffsetX)
	assert.Equal(t, 0.0, v.OffsetY)
}

func TestViewportResizeKeepsRelativeZoom(t *testing.T) {
	z, _ := newController(t)
	z.ZoomIn(0, 0)
	v := z.Viewport()
	v.Resize(1000, 1000, 1000, 1000)
	assert.Equal(t, 2.0, v.Zoom)
}
