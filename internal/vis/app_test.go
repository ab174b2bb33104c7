package vis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/io/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/interact"
	"github.com/elektrokombinacija/floorplan/internal/serial"
)

func writeDoc(t *testing.T, elements ...core.Element) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hall.json")
	doc := serial.Export(elements, 1000, 800).Document("hall-1", "Hall")
	require.NoError(t, serial.WriteFile(path, doc))
	return path
}

func table(t *testing.T, x float64, label string) core.Element {
	t.Helper()
	tbl, err := core.NewRectTable(x, 0, 100, 50, label)
	require.NoError(t, err)
	return tbl
}

func TestNewAppMissingFileStartsBlank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrace.json")
	a, err := NewApp(Options{DocPath: path})
	require.NoError(t, err)

	assert.Equal(t, "terrace", a.Floor().Name())
	assert.Equal(t, float64(DefaultFloorWidth), a.Floor().Width())
	assert.Empty(t, a.Floor().Elements())

	require.NoError(t, a.save())
	doc, err := serial.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, a.Floor().ID(), doc.ID)
}

func TestNewAppRejectsBrokenDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 0}`), 0o644))
	_, err := NewApp(Options{DocPath: path})
	assert.ErrorIs(t, err, serial.ErrInvalidDimensions)
}

func TestSaveWithoutPath(t *testing.T) {
	a, err := NewApp(Options{})
	require.NoError(t, err)
	assert.Error(t, a.save())
	assert.Equal(t, "floor.svg", a.svgPath())
}

func TestEditorDoubleClickAddsTable(t *testing.T) {
	a, err := NewApp(Options{DocPath: writeDoc(t, table(t, 0, "T1"))})
	require.NoError(t, err)
	f := a.Floor()

	a.doubleClicked(f, core.Point{X: 50, Y: 25})
	assert.Len(t, f.Elements(), 1, "occupied spot")

	a.doubleClicked(f, core.Point{X: 301, Y: 199})
	tbl, ok := f.GetTableByLabel("T2")
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 300, Y: 200}, tbl.Geometry().Position())
	assert.Equal(t, "Added table T2", a.status.Message())
}

func TestLiveTableToTableMovesReservation(t *testing.T) {
	a, err := NewApp(Options{DocPath: writeDoc(t, table(t, 0, "A"), table(t, 200, "B")), Live: true})
	require.NoError(t, err)
	f := a.Floor()
	from, _ := f.GetTableByLabel("A")
	to, _ := f.GetTableByLabel("B")

	a.tableToTable(f, from, to)
	assert.Equal(t, "Table A has no reservation", a.status.Message())

	r := &core.Reservation{ID: "r1", GuestName: "Ana", Guests: 3, Confirmed: true}
	f.SetReservationOnTable(from, r)
	a.tableToTable(f, from, to)
	assert.Nil(t, from.Reservation())
	assert.Same(t, r, to.Reservation())
	assert.Equal(t, f.Palette().Confirmed, to.Fill())
	assert.Equal(t, f.Palette().Free, from.Fill())

	f.SetReservationOnTable(from, &core.Reservation{ID: "r2"})
	a.tableToTable(f, from, to)
	assert.Equal(t, "Table B is already reserved", a.status.Message())

	a.elementClicked(f, to)
	assert.Equal(t, "Table B: reserved for Ana (3)", a.status.Message())
	a.doubleClicked(f, core.Point{X: 600, Y: 600})
	assert.Len(t, f.Elements(), 2)
}

func TestLiveClickReservesAndConfirms(t *testing.T) {
	a, err := NewApp(Options{DocPath: writeDoc(t, table(t, 0, "A"), table(t, 200, "B")), Live: true})
	require.NoError(t, err)
	f := a.Floor()
	tbl, _ := f.GetTableByLabel("A")
	p := f.Palette()

	a.elementClicked(f, tbl)
	r := tbl.Reservation()
	require.NotNil(t, r)
	assert.NotEmpty(t, r.ID)
	assert.False(t, r.Confirmed)
	assert.Equal(t, p.Pending, tbl.Fill())
	assert.Equal(t, "Table A: reserved for Walk-in (2), pending", a.status.Message())

	a.elementClicked(f, tbl)
	assert.True(t, tbl.Reservation().Confirmed)
	assert.Equal(t, p.Confirmed, tbl.Fill())

	a.elementClicked(f, tbl)
	assert.Same(t, r, tbl.Reservation())
	assert.Equal(t, "Table A: reserved for Walk-in (2)", a.status.Message())
	assert.Len(t, f.GetFreeTables(), 1)

	other, _ := f.GetTableByLabel("B")
	a.tableToTable(f, tbl, other)
	assert.Same(t, r, other.Reservation())
	assert.Len(t, f.GetFreeTables(), 1)
}

func TestEditorClickOnlyDescribes(t *testing.T) {
	a, err := NewApp(Options{DocPath: writeDoc(t, table(t, 0, "A"))})
	require.NoError(t, err)
	f := a.Floor()
	tbl, _ := f.GetTableByLabel("A")

	a.elementClicked(f, tbl)
	assert.Nil(t, tbl.Reservation())
	assert.Equal(t, "Table A: free", a.status.Message())
}

func TestExportSVG(t *testing.T) {
	path := writeDoc(t, table(t, 0, "T1"))
	a, err := NewApp(Options{DocPath: path})
	require.NoError(t, err)

	require.NoError(t, a.exportSVG())
	data, err := os.ReadFile(strings.TrimSuffix(path, ".json") + ".svg")
	require.NoError(t, err)
	assert.Contains(t, string(data), "T1")
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in   key.Event
		want interact.KeyEvent
	}{
		{key.Event{Name: key.NameDeleteForward}, interact.KeyEvent{Name: interact.KeyDelete}},
		{key.Event{Name: key.NameDeleteBackward}, interact.KeyEvent{Name: interact.KeyBackspace}},
		{key.Event{Name: key.NameEscape}, interact.KeyEvent{Name: interact.KeyEscape}},
		{key.Event{Name: "Z", Modifiers: key.ModShortcut}, interact.KeyEvent{Name: interact.KeyZ, Ctrl: true}},
		{key.Event{Name: "Z", Modifiers: key.ModShortcut | key.ModShift}, interact.KeyEvent{Name: interact.KeyZ, Ctrl: true, Shift: true}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, translateKey(tt.in), string(tt.in.Name))
	}
}

func TestKeyShortcuts(t *testing.T) {
	a, err := NewApp(Options{DocPath: writeDoc(t, table(t, 0, "T1"))})
	require.NoError(t, err)
	f := a.Floor()

	a.handleKeyEvent(key.Event{Name: "+"})
	assert.Equal(t, 1, f.Zoom().Step())
	a.handleKeyEvent(key.Event{Name: "R"})
	assert.Equal(t, 0, f.Zoom().Step())

	a.doubleClicked(f, core.Point{X: 500, Y: 500})
	require.Len(t, f.Elements(), 2)
	a.handleKeyEvent(key.Event{Name: "Z", Modifiers: key.ModShortcut})
	assert.Len(t, f.Elements(), 1)
}
