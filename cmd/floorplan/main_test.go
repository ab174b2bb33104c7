package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/serial"
)

func writeFloor(t *testing.T) string {
	t.Helper()
	t1, err := core.NewRectTable(101, 24, 100, 50, "T1")
	require.NoError(t, err)
	t2, err := core.NewRoundTable(200, 0, 25, "T1")
	require.NoError(t, err)
	wall, err := core.NewFactory(25).Create(core.WallOptions{X: 0, Y: 300})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hall.json")
	doc := serial.Export([]core.Element{t1, t2, wall}, 800, 600).Document("hall-1", "Hall")
	require.NoError(t, serial.WriteFile(path, doc))
	return path
}

func TestRunInfo(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	var out bytes.Buffer
	require.NoError(t, run([]string{"info", writeFloor(t)}, &out, zap.New(obs)))

	assert.Contains(t, out.String(), "Floor:    Hall (hall-1)")
	assert.Contains(t, out.String(), "Size:     800x600")
	assert.Contains(t, out.String(), "Elements: 3")
	assert.Contains(t, out.String(), "Tables:   2 (free 2)")
	assert.Equal(t, 1, logs.FilterMessage("duplicate table labels").Len())
}

func TestRunLabels(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"labels", writeFloor(t)}, &out, zap.NewNop()))
	assert.Equal(t, "T1\nT1\n", out.String())
}

func TestRunSVG(t *testing.T) {
	path := writeFloor(t)
	var out bytes.Buffer
	require.NoError(t, run([]string{"svg", "-grid", path}, &out, zap.NewNop()))
	assert.Contains(t, out.String(), "<title>Hall</title>")
	// 800/25+1 vertical and 600/25+1 horizontal lines
	assert.Equal(t, 33+25, strings.Count(out.String(), "<line"))

	svgPath := filepath.Join(t.TempDir(), "hall.svg")
	require.NoError(t, run([]string{"svg", "-o", svgPath, path}, &out, zap.NewNop()))
	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<line")
}

func TestRunNormalize(t *testing.T) {
	path := writeFloor(t)
	out := filepath.Join(t.TempDir(), "normalized.json")
	require.NoError(t, run([]string{"normalize", "-o", out, path}, &bytes.Buffer{}, zap.NewNop()))

	doc, err := serial.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hall-1", doc.ID)
	assert.Len(t, doc.Scene.Objects, 3)
	assert.Equal(t, serial.SceneVersion, doc.Scene.Version)
	assert.Equal(t, 100.0, doc.Scene.Objects[0].Left)
	assert.Equal(t, 25.0, doc.Scene.Objects[0].Top)
	assert.Equal(t, 200.0, doc.Scene.Objects[1].Left)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"no document", []string{"info"}},
		{"unknown flag", []string{"info", "-x", "a.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, run(tt.args, &bytes.Buffer{}, zap.NewNop()), errUsage)
		})
	}

	assert.ErrorIs(t, run([]string{"bogus", writeFloor(t)}, &bytes.Buffer{}, zap.NewNop()), errUsage)
	assert.Error(t, run([]string{"info", "missing.json"}, &bytes.Buffer{}, zap.NewNop()))
}
