package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPinchZoom(t *testing.T) {
	z, _ := newController(t)
	tc := NewTouchController(z)

	tc.Start(1, 100, 100)
	tc.Start(2, 200, 100)
	assert.True(t, tc.Pinching())

	// Fingers spread: zoom in.
	assert.True(t, tc.Move(2, 250, 100, false))
	assert.Equal(t, 1, z.Step())

	// Fingers close: zoom out back to step 0 (reset).
	assert.True(t, tc.Move(2, 150, 100, false))
	assert.Equal(t, 0, z.Step())

	// Same distance: nothing.
	assert.False(t, tc.Move(1, 100, 100, false))
}

func TestPinchEndsWithOneFinger(t *testing.T) {
	z, _ := newController(t)
	tc := NewTouchController(z)

	tc.Start(1, 100, 100)
	tc.Start(2, 200, 100)
	tc.End(2)
	assert.False(t, tc.Pinching())
	assert.Equal(t, 1, tc.Active())

	// Remaining finger pans; not zoomed so nothing happens.
	assert.False(t, tc.Move(1, 50, 50, false))
	assert.Equal(t, 0, z.Step())

	// Unknown ids are ignored.
	assert.False(t, tc.Move(7, 0, 0, false))
	tc.End(7)
	assert.Equal(t, 1, tc.Active())
}

func TestSingleFingerPan(t *testing.T) {
	z, _ := newController(t)
	z.ZoomIn(0, 0)
	tc := NewTouchController(z)

	tc.Start(1, 300, 300)
	assert.True(t, tc.Move(1, 280, 290, false))
	assert.Equal(t, -20.0, z.Viewport().OffsetX)
	assert.Equal(t, -10.0, z.Viewport().OffsetY)

	assert.False(t, tc.Move(1, 200, 200, true), "selected element blocks pan")
}

func TestTrackFeedsLaterPinch(t *testing.T) {
	z, _ := newController(t)
	tc := NewTouchController(z)

	tc.Start(1, 100, 100)
	tc.Track(1, 0, 100)
	tc.Track(9, 500, 500)
	assert.Equal(t, 0, z.Step(), "tracking never zooms or pans")

	// Distance is measured from the tracked position: 200 -> 300.
	tc.Start(2, 200, 100)
	assert.True(t, tc.Move(2, 300, 100, false))
	assert.Equal(t, 1, z.Step())
}
