package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometryRoundTripLocal(t *testing.T) {
	g := Geometry{Left: 100, Top: 50, Width: 80, Height: 40, Angle: 30, ScaleX: 1, ScaleY: 1}
	p := Point{X: 130, Y: 75}
	back := g.FromLocal(g.ToLocal(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestGeometryContainsRotated(t *testing.T) {
	g := Geometry{Left: 0, Top: 0, Width: 100, Height: 10, ScaleX: 1, ScaleY: 1}
	assert.True(t, g.ContainsBox(Point{90, 5}))

	g.Angle = 90
	// Rotated around centre (50, 5): now spans y in [-45, 55].
	assert.False(t, g.ContainsBox(Point{90, 5}))
	assert.True(t, g.ContainsBox(Point{50, 50}))

	b := g.Bounds()
	assert.InDelta(t, 45, b.MinX, 1e-9)
	assert.InDelta(t, -45, b.MinY, 1e-9)
}

func TestGeometryScaled(t *testing.T) {
	g := Geometry{Width: 100, Height: 50}
	assert.Equal(t, 100.0, g.ScaledWidth())
	g.ScaleX = 1.5
	assert.Equal(t, 150.0, g.ScaledWidth())
	assert.Equal(t, Point{X: 75, Y: 25}, g.Center())
}
