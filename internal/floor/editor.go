package floor

import (
	"github.com/elektrokombinacija/floorplan/internal/command"
	"github.com/elektrokombinacija/floorplan/internal/grid"
)

// Editor is a floor in EDITOR mode: elements are free to move, a grid is drawn and
// every structural or geometric change goes through the undo history.
type Editor struct {
	*Floor
}

// NewEditor loads a floor document for editing.
func NewEditor(opts Options) (*Editor, error) {
	f, err := newFloor(opts, ModeEditor, EditorLocks)
	if err != nil {
		return nil, err
	}
	f.history = command.NewInvoker(f.logger)
	f.history.OnChange(f.render)
	f.overlay = grid.NewOverlay(f.width, f.height, f.cfg.Grid.Resolution, f.render)
	f.events = newEditorEvents(f, f.cfg.Snapper())
	if err := f.load(opts.Document.Scene); err != nil {
		return nil, err
	}
	if show := f.cfg.Grid.ShowOnStart; show == nil || *show {
		f.overlay.Draw()
	}
	f.finish()
	return &Editor{Floor: f}, nil
}

// History exposes the undo/redo stacks, e.g. for enabling toolbar buttons.
func (e *Editor) History() *command.Invoker { return e.history }

// Undo reverts the most recent change.
func (e *Editor) Undo() bool { return e.history.Undo() }

// Redo reapplies the most recently undone change.
func (e *Editor) Redo() bool { return e.history.Redo() }

// CanUndo reports whether there is something to undo.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether there is something to redo.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// ToggleGridVisibility shows or hides the grid and reports the new state.
func (e *Editor) ToggleGridVisibility() bool { return e.overlay.Toggle() }
