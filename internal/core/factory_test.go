package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreatesEveryTag(t *testing.T) {
	f := NewFactory(25)
	for _, tag := range AllTags() {
		opts, err := NewOptions(tag, 100, 50, "T1")
		require.NoError(t, err)

		el, err := f.Create(opts)
		require.NoError(t, err, tag)
		assert.Equal(t, tag, el.Tag())

		g := el.Geometry()
		assert.Equal(t, 100.0, g.Left)
		assert.Equal(t, 50.0, g.Top)
		w, h := f.DefaultSize(tag)
		assert.Equal(t, w, g.Width)
		assert.Equal(t, h, g.Height)
		assert.NotEmpty(t, el.ID())
	}
}

func TestFactoryTableWithoutLabel(t *testing.T) {
	f := NewFactory(25)

	el, err := f.Create(RectTableOptions{X: 10, Y: 10})
	require.ErrorIs(t, err, ErrMissingLabel)
	assert.Nil(t, el)
	assert.EqualError(t, err, "cannot create a table without a label")

	el, err = f.Create(RoundTableOptions{X: 10, Y: 10})
	require.ErrorIs(t, err, ErrMissingLabel)
	assert.Nil(t, el)
}

func TestFactoryDecorIgnoresLabel(t *testing.T) {
	el, err := NewFactory(25).Create(WallOptions{X: 0, Y: 0})
	require.NoError(t, err)
	_, isTable := el.(Table)
	assert.False(t, isTable)
}

func TestNewOptionsUnknownTag(t *testing.T) {
	_, err := NewOptions(Tag("piano"), 0, 0, "")
	require.ErrorIs(t, err, ErrUnknownTag)
}

func TestRoundTableRadius(t *testing.T) {
	el, err := NewFactory(25).Create(RoundTableOptions{X: 0, Y: 0, Label: "R1"})
	require.NoError(t, err)
	rt, ok := el.(*RoundTable)
	require.True(t, ok)
	assert.Equal(t, 25.0, rt.Radius())
	assert.True(t, IsRound(el))
}
