package core

import "fmt"

// Default table colour before any reservation paint is applied.
const DefaultTableFill = "#e8e1d4"

// Table is an element that carries a label and an optional reservation.
// The label is the join key against external reservation data.
type Table interface {
	Element
	Caption
	Label() string
	SetLabel(label string) error
	Reservation() *Reservation
	SetReservation(r *Reservation)
}

type table struct {
	base
	caption
	reservation *Reservation
}

func newTable(b base, label string) (table, error) {
	if label == "" {
		return table{}, ErrMissingLabel
	}
	t := table{base: b, caption: newCaption(label)}
	t.counterScale(t.geom)
	return t, nil
}

func (t *table) Label() string { return t.text }

func (t *table) SetLabel(label string) error {
	if label == "" {
		return ErrMissingLabel
	}
	t.text = label
	t.requestRedraw()
	return nil
}

func (t *table) Text() string { return t.text }

func (t *table) TextScale() (float64, float64) { return t.scaleX, t.scaleY }

func (t *table) OnScaling() {
	t.counterScale(t.geom)
	t.requestRedraw()
}

func (t *table) SetGeometry(g Geometry) {
	t.geom = g.Normalized()
	t.counterScale(t.geom)
	t.requestRedraw()
}

func (t *table) Reservation() *Reservation { return t.reservation }

func (t *table) SetReservation(r *Reservation) { t.reservation = r }

func (t *table) serializable() Serialized {
	s := t.base.serializable()
	s.Label = t.text
	return s
}

// RectTable is a rectangular table.
type RectTable struct {
	table
}

// NewRectTable creates a rectangular table with its top-left corner at (x, y).
func NewRectTable(x, y, width, height float64, label string) (*RectTable, error) {
	t, err := newTable(newBase(TagRectTable, x, y, width, height, DefaultTableFill), label)
	if err != nil {
		return nil, err
	}
	return &RectTable{table: t}, nil
}

// RectTableFromSerialized revives a rectangular table.
func RectTableFromSerialized(s Serialized) (Element, error) {
	t, err := newTable(baseFromSerialized(s), s.Label)
	if err != nil {
		return nil, fmt.Errorf("rect table %s: %w", s.ID, err)
	}
	return &RectTable{table: t}, nil
}

func (t *RectTable) ToSerializable() Serialized {
	return t.serializable()
}

// RoundTable is a circular table; its box is 2*radius on each side.
type RoundTable struct {
	table
}

// NewRoundTable creates a round table whose bounding box starts at (x, y).
func NewRoundTable(x, y, radius float64, label string) (*RoundTable, error) {
	t, err := newTable(newBase(TagRoundTable, x, y, 2*radius, 2*radius, DefaultTableFill), label)
	if err != nil {
		return nil, err
	}
	return &RoundTable{table: t}, nil
}

// RoundTableFromSerialized revives a round table. Radius wins over width/height when present.
func RoundTableFromSerialized(s Serialized) (Element, error) {
	if s.Radius > 0 {
		s.Width, s.Height = 2*s.Radius, 2*s.Radius
	}
	t, err := newTable(baseFromSerialized(s), s.Label)
	if err != nil {
		return nil, fmt.Errorf("round table %s: %w", s.ID, err)
	}
	return &RoundTable{table: t}, nil
}

// Radius returns the unscaled radius.
func (t *RoundTable) Radius() float64 {
	return t.geom.Width / 2
}

// Contains tests against the (possibly scaled) ellipse.
func (t *RoundTable) Contains(p Point) bool {
	l := t.geom.ToLocal(p)
	rx, ry := t.geom.ScaledWidth()/2, t.geom.ScaledHeight()/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx, dy := (l.X-rx)/rx, (l.Y-ry)/ry
	return dx*dx+dy*dy <= 1+1e-9
}

func (t *RoundTable) ToSerializable() Serialized {
	s := t.serializable()
	s.Radius = t.Radius()
	return s
}

// IsRound reports whether the element should be drawn as a circle.
func IsRound(el Element) bool {
	_, ok := el.(*RoundTable)
	return ok
}

// Tables filters the tables out of a list of elements, keeping order.
func Tables(elements []Element) []Table {
	var out []Table
	for _, el := range elements {
		if t, ok := el.(Table); ok {
			out = append(out, t)
		}
	}
	return out
}
