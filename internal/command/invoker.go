// Package command implements undoable scene edits and the undo/redo history.
package command

import "go.uber.org/zap"

// Command is an undoable unit of edit history. It holds just enough state to reverse itself.
type Command interface {
	Execute()
	Undo()
	Description() string
}

// Invoker owns the undo and redo stacks (most recent last).
type Invoker struct {
	undoStack []Command
	redoStack []Command
	listeners []func()
	logger    *zap.Logger
}

// NewInvoker creates an empty history.
func NewInvoker(logger *zap.Logger) *Invoker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{
		undoStack: make([]Command, 0),
		redoStack: make([]Command, 0),
		logger:    logger,
	}
}

// OnChange registers a listener called after every stack change.
func (i *Invoker) OnChange(fn func()) {
	i.listeners = append(i.listeners, fn)
}

// Execute performs a command and adds it to the undo stack.
func (i *Invoker) Execute(cmd Command) {
	cmd.Execute()
	i.undoStack = append(i.undoStack, cmd)
	i.redoStack = i.redoStack[:0] // new history branch
	i.logger.Debug("command executed", zap.String("command", cmd.Description()), zap.Int("undo_depth", len(i.undoStack)))
	i.emit()
}

// Undo reverts the last command. It reports false when there was nothing to undo.
func (i *Invoker) Undo() bool {
	if len(i.undoStack) == 0 {
		return false
	}
	cmd := i.undoStack[len(i.undoStack)-1]
	i.undoStack = i.undoStack[:len(i.undoStack)-1]
	cmd.Undo()
	i.redoStack = append(i.redoStack, cmd)
	i.logger.Debug("command undone", zap.String("command", cmd.Description()))
	i.emit()
	return true
}

// Redo re-applies the last undone command. It reports false when there was nothing to redo.
func (i *Invoker) Redo() bool {
	if len(i.redoStack) == 0 {
		return false
	}
	cmd := i.redoStack[len(i.redoStack)-1]
	i.redoStack = i.redoStack[:len(i.redoStack)-1]
	cmd.Execute()
	i.undoStack = append(i.undoStack, cmd)
	i.logger.Debug("command redone", zap.String("command", cmd.Description()))
	i.emit()
	return true
}

// CanUndo returns true if there are commands to undo.
func (i *Invoker) CanUndo() bool {
	return len(i.undoStack) > 0
}

// CanRedo returns true if there are commands to redo.
func (i *Invoker) CanRedo() bool {
	return len(i.redoStack) > 0
}

// Clear empties both stacks, e.g. when another floor is loaded.
func (i *Invoker) Clear() {
	i.undoStack = i.undoStack[:0]
	i.redoStack = i.redoStack[:0]
	i.emit()
}

func (i *Invoker) emit() {
	for _, fn := range i.listeners {
		fn()
	}
}
