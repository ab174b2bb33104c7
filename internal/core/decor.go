package core

// Base fills of the decorative elements.
const (
	WallFill   = "#4a4a4a"
	SofaFill   = "#8c6f5a"
	DJFill     = "#2d3a5c"
	StageFill  = "#5c2d3a"
	BarFill    = "#6b4f2a"
	BarDesigns = 3
)

// Wall is a plain structural block.
type Wall struct {
	base
}

// NewWall creates a wall with its top-left corner at (x, y).
func NewWall(x, y, width, height float64) *Wall {
	return &Wall{base: newBase(TagWall, x, y, width, height, WallFill)}
}

// WallFromSerialized revives a wall.
func WallFromSerialized(s Serialized) (Element, error) {
	return &Wall{base: baseFromSerialized(s)}, nil
}

func (w *Wall) ToSerializable() Serialized { return w.serializable() }

// Sofa is a multi-seat sofa.
type Sofa struct {
	base
}

// NewSofa creates a sofa with its top-left corner at (x, y).
func NewSofa(x, y, width, height float64) *Sofa {
	return &Sofa{base: newBase(TagSofa, x, y, width, height, SofaFill)}
}

// SofaFromSerialized revives a sofa.
func SofaFromSerialized(s Serialized) (Element, error) {
	return &Sofa{base: baseFromSerialized(s)}, nil
}

func (s *Sofa) ToSerializable() Serialized { return s.serializable() }

// SingleSofa is an armchair.
type SingleSofa struct {
	base
}

// NewSingleSofa creates a single sofa with its top-left corner at (x, y).
func NewSingleSofa(x, y, width, height float64) *SingleSofa {
	return &SingleSofa{base: newBase(TagSingleSofa, x, y, width, height, SofaFill)}
}

// SingleSofaFromSerialized revives a single sofa.
func SingleSofaFromSerialized(s Serialized) (Element, error) {
	return &SingleSofa{base: baseFromSerialized(s)}, nil
}

func (s *SingleSofa) ToSerializable() Serialized { return s.serializable() }

// captioned is a decorative block with a fixed caption.
type captioned struct {
	base
	caption
}

func newCaptioned(b base, text string) captioned {
	c := captioned{base: b, caption: newCaption(text)}
	c.counterScale(c.geom)
	return c
}

func (c *captioned) Text() string { return c.text }

func (c *captioned) TextScale() (float64, float64) { return c.scaleX, c.scaleY }

func (c *captioned) OnScaling() {
	c.counterScale(c.geom)
	c.requestRedraw()
}

func (c *captioned) SetGeometry(g Geometry) {
	c.geom = g.Normalized()
	c.counterScale(c.geom)
	c.requestRedraw()
}

// DJBooth is the DJ booth.
type DJBooth struct {
	captioned
}

// NewDJBooth creates a DJ booth with its top-left corner at (x, y).
func NewDJBooth(x, y, width, height float64) *DJBooth {
	return &DJBooth{captioned: newCaptioned(newBase(TagDJBooth, x, y, width, height, DJFill), "DJ")}
}

// DJBoothFromSerialized revives a DJ booth.
func DJBoothFromSerialized(s Serialized) (Element, error) {
	return &DJBooth{captioned: newCaptioned(baseFromSerialized(s), "DJ")}, nil
}

func (d *DJBooth) ToSerializable() Serialized { return d.serializable() }

// Stage is the performance stage.
type Stage struct {
	captioned
}

// NewStage creates a stage with its top-left corner at (x, y).
func NewStage(x, y, width, height float64) *Stage {
	return &Stage{captioned: newCaptioned(newBase(TagStage, x, y, width, height, StageFill), "STAGE")}
}

// StageFromSerialized revives a stage.
func StageFromSerialized(s Serialized) (Element, error) {
	return &Stage{captioned: newCaptioned(baseFromSerialized(s), "STAGE")}, nil
}

func (st *Stage) ToSerializable() Serialized { return st.serializable() }

// Bar is the bar counter. It renders one of BarDesigns visual designs; the selected
// design is persisted so a reopened document shows the same variant.
type Bar struct {
	captioned
	design int
}

// NewBar creates a bar with its top-left corner at (x, y) showing design 0.
func NewBar(x, y, width, height float64) *Bar {
	return &Bar{captioned: newCaptioned(newBase(TagBar, x, y, width, height, BarFill), "BAR")}
}

// BarFromSerialized revives a bar including its design index.
func BarFromSerialized(s Serialized) (Element, error) {
	b := &Bar{captioned: newCaptioned(baseFromSerialized(s), "BAR")}
	if s.Design != nil {
		b.SetDesign(*s.Design)
	}
	return b, nil
}

// Design returns the active design index.
func (b *Bar) Design() int { return b.design }

// SetDesign selects a design; out-of-range values wrap.
func (b *Bar) SetDesign(i int) {
	b.design = ((i % BarDesigns) + BarDesigns) % BarDesigns
	b.requestRedraw()
}

// NextDesign cycles to the next design.
func (b *Bar) NextDesign() {
	b.SetDesign(b.design + 1)
}

func (b *Bar) ToSerializable() Serialized {
	s := b.serializable()
	d := b.design
	s.Design = &d
	return s
}
