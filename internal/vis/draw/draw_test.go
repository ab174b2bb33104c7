package draw

import (
	"image/color"
	"math"
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/interact"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#e8e1d4", color.NRGBA{R: 0xe8, G: 0xe1, B: 0xd4, A: 255}, false},
		{"5fb36b", color.NRGBA{R: 0x5f, G: 0xb3, B: 0x6b, A: 255}, false},
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#12345", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexOrFallsBack(t *testing.T) {
	assert.Equal(t, ColorFallback, HexOr("nope", ColorFallback))
}

func TestOutline(t *testing.T) {
	table, err := core.NewRectTable(10, 20, 100, 50, "T1")
	require.NoError(t, err)
	pts := Outline(table)
	require.Len(t, pts, 4)
	assert.Equal(t, core.Point{X: 10, Y: 20}, pts[0])
	assert.Equal(t, core.Point{X: 110, Y: 70}, pts[2])

	round, err := core.NewRoundTable(0, 0, 50, "R1")
	require.NoError(t, err)
	for _, p := range Outline(round) {
		assert.InDelta(t, 50, math.Hypot(p.X-50, p.Y-50), 1e-9)
	}

	assert.Len(t, Outline(core.NewSofa(0, 0, 100, 50)), 20)
}

func TestRoundedRectStaysInBox(t *testing.T) {
	pts := roundedRect(100, 40, 8, 4)
	assert.Len(t, pts, 20)
	for _, p := range pts {
		assert.InDelta(t, 50, p.X, 50+1e-9)
		assert.InDelta(t, 20, p.Y, 20+1e-9)
	}
}

func TestCaptionLayoutCancelsLiveScale(t *testing.T) {
	table, err := core.NewRectTable(0, 0, 100, 50, "T1")
	require.NoError(t, err)
	g := table.Geometry()
	g.ScaleX = 2
	table.SetGeometry(g)
	table.OnScaling()

	view := interact.NewViewport(1000, 1000, 1000, 1000)
	tsx, tsy := table.TextScale()
	require.Equal(t, 0.5, tsx)
	m, box, size := captionLayout(table.Geometry(), tsx, tsy, view)

	assert.Equal(t, 14.0, size)
	assert.Equal(t, 200, box.X)

	// One caption pixel stays one screen pixel on both axes.
	o := m.Transform(f32.Pt(0, 0))
	dx := m.Transform(f32.Pt(1, 0)).Sub(o)
	dy := m.Transform(f32.Pt(0, 1)).Sub(o)
	assert.InDelta(t, 1, dx.X, 1e-5)
	assert.InDelta(t, 1, dy.Y, 1e-5)

	// The box spans the scaled element horizontally.
	right := m.Transform(f32.Pt(float32(box.X), 0))
	assert.InDelta(t, 0, o.X, 1e-4)
	assert.InDelta(t, 200, right.X, 1e-4)

	// Without the counter-scale the text would be stretched.
	m, _, _ = captionLayout(table.Geometry(), 1, 1, view)
	assert.InDelta(t, 2, m.Transform(f32.Pt(1, 0)).Sub(m.Transform(f32.Pt(0, 0))).X, 1e-5)
}
