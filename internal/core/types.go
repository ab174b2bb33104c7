// Package core defines the floor-plan scene model: elements, their geometry and the factory.
package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrMissingLabel is returned when a table is created without a label.
	ErrMissingLabel = errors.New("cannot create a table without a label")
	// ErrUnknownTag is returned for a tag outside the element enumeration.
	ErrUnknownTag = errors.New("unknown element tag")
)

// Tag discriminates element variants. It is also the "type" field of a serialized node.
type Tag string

const (
	TagRectTable  Tag = "rectTable"
	TagRoundTable Tag = "roundTable"
	TagWall       Tag = "wall"
	TagSofa       Tag = "sofa"
	TagSingleSofa Tag = "singleSofa"
	TagDJBooth    Tag = "djBooth"
	TagStage      Tag = "stage"
	TagBar        Tag = "bar"
)

// AllTags returns every element tag in palette order.
func AllTags() []Tag {
	return []Tag{TagRectTable, TagRoundTable, TagWall, TagSofa, TagSingleSofa, TagDJBooth, TagStage, TagBar}
}

// IsTable reports whether elements with this tag carry a label and a reservation.
func (t Tag) IsTable() bool {
	return t == TagRectTable || t == TagRoundTable
}

// Valid reports whether t is one of the known tags.
func (t Tag) Valid() bool {
	for _, known := range AllTags() {
		if t == known {
			return true
		}
	}
	return false
}

// ParseTag converts a string into a Tag.
func ParseTag(s string) (Tag, error) {
	t := Tag(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTag, s)
	}
	return t, nil
}

// ElementID identifies an element within one floor.
type ElementID string

// NewElementID returns a fresh random identifier.
func NewElementID() ElementID {
	return ElementID(uuid.NewString())
}

// Locks are the movement/scaling restrictions applied to an element by its floor.
type Locks struct {
	MovementX bool
	MovementY bool
	ScalingX  bool
	ScalingY  bool
	Rotation  bool
}

// Unlocked lets an element be moved, scaled and rotated freely.
var Unlocked = Locks{}

// Locked freezes every geometric property.
var Locked = Locks{MovementX: true, MovementY: true, ScalingX: true, ScalingY: true, Rotation: true}
