package serial

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/elektrokombinacija/floorplan/internal/core"
)

// SceneVersion is written into every exported scene.
const SceneVersion = "1"

// ErrInvalidDimensions is returned for documents without a positive width and height.
var ErrInvalidDimensions = errors.New("floor width and height must be positive")

// Scene is the serialized element list.
type Scene struct {
	Version string            `json:"version"`
	Objects []core.Serialized `json:"objects"`
}

// Exported is the result of exporting a floor: the scene paired with its dimensions.
type Exported struct {
	JSON   Scene   `json:"json"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FloorDocument is the persisted unit handed to and received from the storage collaborator.
type FloorDocument struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Scene  *Scene  `json:"json,omitempty"`
}

// NewDocument creates an empty floor document with a fresh id.
func NewDocument(name string, width, height float64) *FloorDocument {
	return &FloorDocument{
		ID:     uuid.NewString(),
		Name:   name,
		Width:  width,
		Height: height,
		Scene:  &Scene{Version: SceneVersion, Objects: []core.Serialized{}},
	}
}

// Export serializes elements in stacking order.
func Export(elements []core.Element, width, height float64) Exported {
	objects := make([]core.Serialized, 0, len(elements))
	for _, el := range elements {
		objects = append(objects, el.ToSerializable())
	}
	return Exported{
		JSON:   Scene{Version: SceneVersion, Objects: objects},
		Width:  width,
		Height: height,
	}
}

// Document wraps an export into a floor document with the given identity.
func (e Exported) Document(id, name string) *FloorDocument {
	scene := e.JSON
	return &FloorDocument{ID: id, Name: name, Width: e.Width, Height: e.Height, Scene: &scene}
}

// Validate checks the document-level invariants.
func (d *FloorDocument) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: got %vx%v", ErrInvalidDimensions, d.Width, d.Height)
	}
	return nil
}

// Encode marshals a document as indented JSON.
func Encode(d *FloorDocument) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Decode unmarshals and validates a document.
func Decode(data []byte) (*FloorDocument, error) {
	var d FloorDocument
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse floor document: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadFile loads a document from disk.
func ReadFile(path string) (*FloorDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read floor document: %w", err)
	}
	return Decode(data)
}

// WriteFile stores a document on disk.
func WriteFile(path string, d *FloorDocument) error {
	data, err := Encode(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
