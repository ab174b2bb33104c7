package vis

import (
	"gioui.org/io/key"

	"github.com/elektrokombinacija/floorplan/internal/interact"
)

// translateKey maps a Gio key press onto the engine's key names. Keys the engine does
// not understand are passed through by name.
func translateKey(e key.Event) interact.KeyEvent {
	name := string(e.Name)
	switch e.Name {
	case key.NameDeleteForward:
		name = interact.KeyDelete
	case key.NameDeleteBackward:
		name = interact.KeyBackspace
	case key.NameEscape:
		name = interact.KeyEscape
	}
	return interact.KeyEvent{
		Name:  name,
		Ctrl:  e.Modifiers.Contain(key.ModShortcut),
		Shift: e.Modifiers.Contain(key.ModShift),
	}
}
