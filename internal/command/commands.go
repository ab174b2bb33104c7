package command

import (
	"fmt"

	"github.com/elektrokombinacija/floorplan/internal/core"
)

// Scene is the element collection commands operate on.
type Scene interface {
	Element(id core.ElementID) (core.Element, bool)
	// Insert places el at index; an out-of-range index appends.
	Insert(el core.Element, index int)
	// Remove drops an element and reports where it was.
	Remove(id core.ElementID) (core.Element, int, bool)
}

// Move is the position change of one element.
type Move struct {
	ID       core.ElementID
	From, To core.Point
}

// MoveCommand moves one or more elements; a group drag is a single command.
type MoveCommand struct {
	scene Scene
	Moves []Move
}

// NewMoveCommand creates a move command.
func NewMoveCommand(scene Scene, moves ...Move) *MoveCommand {
	return &MoveCommand{scene: scene, Moves: moves}
}

func (c *MoveCommand) Execute() {
	for _, m := range c.Moves {
		c.place(m.ID, m.To)
	}
}

func (c *MoveCommand) Undo() {
	for _, m := range c.Moves {
		c.place(m.ID, m.From)
	}
}

func (c *MoveCommand) place(id core.ElementID, p core.Point) {
	el, ok := c.scene.Element(id)
	if !ok {
		return
	}
	g := el.Geometry()
	g.Left, g.Top = p.X, p.Y
	el.SetGeometry(g)
}

func (c *MoveCommand) Description() string {
	if len(c.Moves) == 1 {
		return "Move element"
	}
	return fmt.Sprintf("Move %d elements", len(c.Moves))
}

// Change is the full geometry change of one element.
type Change struct {
	ID     core.ElementID
	Before core.Geometry
	After  core.Geometry
}

// TransformCommand restores whole geometries; resize and rotate are built on it.
type TransformCommand struct {
	scene   Scene
	kind    string
	Changes []Change
}

// NewResizeCommand records a resize of one element.
func NewResizeCommand(scene Scene, id core.ElementID, before, after core.Geometry) *TransformCommand {
	return &TransformCommand{scene: scene, kind: "Resize", Changes: []Change{{ID: id, Before: before, After: after}}}
}

// NewRotateCommand records a rotation of one element.
func NewRotateCommand(scene Scene, id core.ElementID, before, after core.Geometry) *TransformCommand {
	return &TransformCommand{scene: scene, kind: "Rotate", Changes: []Change{{ID: id, Before: before, After: after}}}
}

func (c *TransformCommand) Execute() {
	for _, ch := range c.Changes {
		if el, ok := c.scene.Element(ch.ID); ok {
			el.SetGeometry(ch.After)
		}
	}
}

func (c *TransformCommand) Undo() {
	for _, ch := range c.Changes {
		if el, ok := c.scene.Element(ch.ID); ok {
			el.SetGeometry(ch.Before)
		}
	}
}

func (c *TransformCommand) Description() string {
	return c.kind + " element"
}

// AddCommand inserts a new element.
type AddCommand struct {
	scene   Scene
	Element core.Element
	index   int
}

// NewAddCommand creates a command that appends el to the scene.
func NewAddCommand(scene Scene, el core.Element) *AddCommand {
	return &AddCommand{scene: scene, Element: el, index: -1}
}

func (c *AddCommand) Execute() {
	c.scene.Insert(c.Element, c.index)
}

func (c *AddCommand) Undo() {
	if _, idx, ok := c.scene.Remove(c.Element.ID()); ok {
		c.index = idx
	}
}

func (c *AddCommand) Description() string {
	return fmt.Sprintf("Add %s", c.Element.Tag())
}

type removed struct {
	el    core.Element
	index int
}

// RemoveCommand deletes elements, remembering their stacking position.
type RemoveCommand struct {
	scene   Scene
	IDs     []core.ElementID
	removed []removed
}

// NewRemoveCommand creates a command removing the given elements.
func NewRemoveCommand(scene Scene, ids ...core.ElementID) *RemoveCommand {
	return &RemoveCommand{scene: scene, IDs: ids}
}

func (c *RemoveCommand) Execute() {
	c.removed = c.removed[:0]
	for _, id := range c.IDs {
		if el, idx, ok := c.scene.Remove(id); ok {
			c.removed = append(c.removed, removed{el: el, index: idx})
		}
	}
}

func (c *RemoveCommand) Undo() {
	for i := len(c.removed) - 1; i >= 0; i-- {
		c.scene.Insert(c.removed[i].el, c.removed[i].index)
	}
}

func (c *RemoveCommand) Description() string {
	if len(c.IDs) == 1 {
		return "Remove element"
	}
	return fmt.Sprintf("Remove %d elements", len(c.IDs))
}
