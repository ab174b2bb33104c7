// Package serial converts floor scenes to and from their portable document form.
package serial

import (
	"errors"
	"fmt"

	"github.com/elektrokombinacija/floorplan/internal/core"
)

// ErrUnknownTag is returned when a document node has no registered reviver.
var ErrUnknownTag = errors.New("no reviver registered for element type")

// Reviver rebuilds a typed element from its serialized node.
type Reviver func(core.Serialized) (core.Element, error)

// Registry maps element tags to revivers.
type Registry struct {
	revivers map[core.Tag]Reviver
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{revivers: make(map[core.Tag]Reviver)}
}

// DefaultRegistry returns a registry populated with every built-in element.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(core.TagRectTable, core.RectTableFromSerialized)
	r.Register(core.TagRoundTable, core.RoundTableFromSerialized)
	r.Register(core.TagWall, core.WallFromSerialized)
	r.Register(core.TagSofa, core.SofaFromSerialized)
	r.Register(core.TagSingleSofa, core.SingleSofaFromSerialized)
	r.Register(core.TagDJBooth, core.DJBoothFromSerialized)
	r.Register(core.TagStage, core.StageFromSerialized)
	r.Register(core.TagBar, core.BarFromSerialized)
	return r
}

// Register installs (or replaces) the reviver for a tag.
func (r *Registry) Register(tag core.Tag, fn Reviver) {
	r.revivers[tag] = fn
}

// Lookup returns the reviver for a tag.
func (r *Registry) Lookup(tag core.Tag) (Reviver, bool) {
	fn, ok := r.revivers[tag]
	return fn, ok
}

// Revive rebuilds one element.
func (r *Registry) Revive(s core.Serialized) (core.Element, error) {
	fn, ok := r.Lookup(s.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, s.Type)
	}
	return fn(s)
}

// Import revives every node of a scene in order. A nil scene yields no elements.
func (r *Registry) Import(scene *Scene) ([]core.Element, error) {
	if scene == nil {
		return nil, nil
	}
	elements := make([]core.Element, 0, len(scene.Objects))
	for i, node := range scene.Objects {
		el, err := r.Revive(node)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		elements = append(elements, el)
	}
	return elements, nil
}
