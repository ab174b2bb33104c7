package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/serial"
)

func params() FloorParams {
	return FloorParams{
		Seed: 7, Width: 1500, Height: 1000, Resolution: 25,
		Tables: 12, RoundRatio: 0.5, Rotated: 0.5, Sofas: 2,
		Stage: true, Bar: true, Walls: true,
	}
}

func TestGenerateFloorRevives(t *testing.T) {
	doc, err := generateFloor(params())
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	elements, err := serial.DefaultRegistry().Import(doc.Scene)
	require.NoError(t, err)

	tables := core.Tables(elements)
	require.Len(t, tables, 12)
	labels := make(map[string]bool)
	for _, tbl := range tables {
		labels[tbl.Label()] = true
	}
	assert.Len(t, labels, 12, "labels are unique")
	assert.True(t, labels["T1"])
	assert.True(t, labels["T12"])

	for _, el := range elements {
		b := el.Geometry().Bounds()
		if el.Geometry().Angle == 0 {
			assert.GreaterOrEqual(t, b.MinX, 0.0, el.Tag())
			assert.LessOrEqual(t, b.MaxX, 1500.0, el.Tag())
			assert.LessOrEqual(t, b.MaxY, 1000.0, el.Tag())
		}
	}
}

func TestGenerateFloorDeterministic(t *testing.T) {
	a, err := generateFloor(params())
	require.NoError(t, err)
	b, err := generateFloor(params())
	require.NoError(t, err)

	require.Equal(t, len(a.Scene.Objects), len(b.Scene.Objects))
	for i := range a.Scene.Objects {
		x, y := a.Scene.Objects[i], b.Scene.Objects[i]
		x.ID, y.ID = "", ""
		assert.Equal(t, x, y)
	}
	assert.Equal(t, a.Name, b.Name)
}

func TestGenerateFloorStopsWhenFull(t *testing.T) {
	p := params()
	p.Height = 400
	p.Stage = false
	p.Tables = 500
	doc, err := generateFloor(p)
	require.NoError(t, err)

	elements, err := serial.DefaultRegistry().Import(doc.Scene)
	require.NoError(t, err)
	assert.Less(t, len(core.Tables(elements)), 500)
	assert.NotEmpty(t, core.Tables(elements))
}
