package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayToggle(t *testing.T) {
	redraws := 0
	o := NewOverlay(100, 50, 25, func() { redraws++ })
	assert.False(t, o.Visible())
	assert.Empty(t, o.Lines())

	assert.True(t, o.Toggle())
	// 5 vertical (0..100) + 3 horizontal (0..50).
	require.Len(t, o.Lines(), 8)
	assert.Equal(t, Line{X1: 100, Y1: 0, X2: 100, Y2: 50}, o.Lines()[4])

	assert.False(t, o.Toggle())
	assert.Empty(t, o.Lines())
	assert.Equal(t, 2, redraws)
}

func TestOverlayResize(t *testing.T) {
	o := NewOverlay(100, 100, 50, nil)
	o.Resize(200, 100)
	assert.Empty(t, o.Lines(), "hidden grid stays empty")

	o.Draw()
	o.Resize(100, 50)
	assert.Len(t, o.Lines(), 3+2)
	assert.Equal(t, 50.0, o.Resolution())
}
