package core

// Element is a positioned node of the floor scene.
type Element interface {
	ID() ElementID
	Tag() Tag

	Geometry() Geometry
	SetGeometry(g Geometry)
	// Contains reports whether a scene point hits the element.
	Contains(p Point) bool
	// OnScaling is called on every scaling step of an in-progress resize.
	OnScaling()

	BaseFill() string
	SetBaseFill(color string)
	// Fill is the displayed colour: an override when set, otherwise the base fill.
	Fill() string
	SetFill(color string)

	Locks() Locks
	// ApplyLocks is reserved for the owning floor's lock policy.
	ApplyLocks(l Locks)

	// OnRedraw installs the callback used to ask the owner for a redraw.
	OnRedraw(fn func())

	ToSerializable() Serialized
}

type base struct {
	id       ElementID
	tag      Tag
	geom     Geometry
	baseFill string
	fill     string
	locks    Locks
	redraw   func()
}

func newBase(tag Tag, x, y, w, h float64, fill string) base {
	return base{
		id:       NewElementID(),
		tag:      tag,
		geom:     Geometry{Left: x, Top: y, Width: w, Height: h, ScaleX: 1, ScaleY: 1},
		baseFill: fill,
	}
}

func baseFromSerialized(s Serialized) base {
	id := ElementID(s.ID)
	if id == "" {
		id = NewElementID()
	}
	return base{
		id:  id,
		tag: s.Type,
		geom: Geometry{
			Left: s.Left, Top: s.Top,
			Width: s.Width, Height: s.Height,
			Angle:  s.Angle,
			ScaleX: s.ScaleX, ScaleY: s.ScaleY,
		}.Normalized(),
		baseFill: s.Fill,
	}
}

func (b *base) ID() ElementID      { return b.id }
func (b *base) Tag() Tag           { return b.tag }
func (b *base) Geometry() Geometry { return b.geom }

func (b *base) SetGeometry(g Geometry) {
	b.geom = g.Normalized()
	b.requestRedraw()
}

func (b *base) Contains(p Point) bool {
	return b.geom.ContainsBox(p)
}

func (b *base) OnScaling() {}

func (b *base) BaseFill() string { return b.baseFill }

func (b *base) SetBaseFill(color string) {
	b.baseFill = color
	b.requestRedraw()
}

func (b *base) Fill() string {
	if b.fill != "" {
		return b.fill
	}
	return b.baseFill
}

func (b *base) SetFill(color string) {
	b.fill = color
	b.requestRedraw()
}

func (b *base) Locks() Locks { return b.locks }

func (b *base) ApplyLocks(l Locks) { b.locks = l }

func (b *base) OnRedraw(fn func()) { b.redraw = fn }

func (b *base) requestRedraw() {
	if b.redraw != nil {
		b.redraw()
	}
}

func (b *base) serializable() Serialized {
	return Serialized{
		Type:   b.tag,
		ID:     string(b.id),
		Left:   b.geom.Left,
		Top:    b.geom.Top,
		Width:  b.geom.Width,
		Height: b.geom.Height,
		Angle:  b.geom.Angle,
		ScaleX: b.geom.ScaleX,
		ScaleY: b.geom.ScaleY,
		Fill:   b.baseFill,
	}
}

// caption is the centred text of a group-composed element. Its scale is kept at the
// inverse of the group scale so the text never distorts while the group is resized.
type caption struct {
	text   string
	scaleX float64
	scaleY float64
}

func newCaption(text string) caption {
	return caption{text: text, scaleX: 1, scaleY: 1}
}

func (c *caption) counterScale(g Geometry) {
	g = g.Normalized()
	c.scaleX = 1 / g.ScaleX
	c.scaleY = 1 / g.ScaleY
}

// Caption is implemented by elements that render centred text.
type Caption interface {
	Text() string
	// TextScale is the inverse of the element's current scale.
	TextScale() (x, y float64)
}
