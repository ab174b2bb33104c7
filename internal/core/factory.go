package core

import "fmt"

// Options describes an element to create. The set of implementations is closed:
// one struct per tag.
type Options interface {
	Tag() Tag
	Position() Point
	isOptions()
}

// RectTableOptions creates a rectangular table. Label is required.
type RectTableOptions struct {
	X, Y  float64
	Label string
}

// RoundTableOptions creates a round table. Label is required.
type RoundTableOptions struct {
	X, Y  float64
	Label string
}

// WallOptions creates a wall.
type WallOptions struct{ X, Y float64 }

// SofaOptions creates a sofa.
type SofaOptions struct{ X, Y float64 }

// SingleSofaOptions creates a single sofa.
type SingleSofaOptions struct{ X, Y float64 }

// DJBoothOptions creates a DJ booth.
type DJBoothOptions struct{ X, Y float64 }

// StageOptions creates a stage.
type StageOptions struct{ X, Y float64 }

// BarOptions creates a bar.
type BarOptions struct{ X, Y float64 }

func (o RectTableOptions) Tag() Tag         { return TagRectTable }
func (o RoundTableOptions) Tag() Tag        { return TagRoundTable }
func (o WallOptions) Tag() Tag              { return TagWall }
func (o SofaOptions) Tag() Tag              { return TagSofa }
func (o SingleSofaOptions) Tag() Tag        { return TagSingleSofa }
func (o DJBoothOptions) Tag() Tag           { return TagDJBooth }
func (o StageOptions) Tag() Tag             { return TagStage }
func (o BarOptions) Tag() Tag               { return TagBar }
func (o RectTableOptions) Position() Point  { return Point{o.X, o.Y} }
func (o RoundTableOptions) Position() Point { return Point{o.X, o.Y} }
func (o WallOptions) Position() Point       { return Point{o.X, o.Y} }
func (o SofaOptions) Position() Point       { return Point{o.X, o.Y} }
func (o SingleSofaOptions) Position() Point { return Point{o.X, o.Y} }
func (o DJBoothOptions) Position() Point    { return Point{o.X, o.Y} }
func (o StageOptions) Position() Point      { return Point{o.X, o.Y} }
func (o BarOptions) Position() Point        { return Point{o.X, o.Y} }
func (RectTableOptions) isOptions()         {}
func (RoundTableOptions) isOptions()        {}
func (WallOptions) isOptions()              {}
func (SofaOptions) isOptions()              {}
func (SingleSofaOptions) isOptions()        {}
func (DJBoothOptions) isOptions()           {}
func (StageOptions) isOptions()             {}
func (BarOptions) isOptions()               {}

// NewOptions builds the options struct for a tag. Used where the tag is only known
// at runtime (toolbar buttons, generated documents).
func NewOptions(tag Tag, x, y float64, label string) (Options, error) {
	switch tag {
	case TagRectTable:
		return RectTableOptions{X: x, Y: y, Label: label}, nil
	case TagRoundTable:
		return RoundTableOptions{X: x, Y: y, Label: label}, nil
	case TagWall:
		return WallOptions{X: x, Y: y}, nil
	case TagSofa:
		return SofaOptions{X: x, Y: y}, nil
	case TagSingleSofa:
		return SingleSofaOptions{X: x, Y: y}, nil
	case TagDJBooth:
		return DJBoothOptions{X: x, Y: y}, nil
	case TagStage:
		return StageOptions{X: x, Y: y}, nil
	case TagBar:
		return BarOptions{X: x, Y: y}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
}

// Factory creates elements sized in multiples of the grid resolution.
type Factory struct {
	Resolution float64
}

// NewFactory creates a factory for the given grid resolution.
func NewFactory(resolution float64) *Factory {
	if resolution <= 0 {
		resolution = 25
	}
	return &Factory{Resolution: resolution}
}

// DefaultSize returns the initial width and height of a tag.
func (f *Factory) DefaultSize(tag Tag) (w, h float64) {
	r := f.Resolution
	switch tag {
	case TagRectTable:
		return 4 * r, 2 * r
	case TagRoundTable:
		return 2 * r, 2 * r
	case TagWall:
		return 8 * r, r / 2
	case TagSofa:
		return 4 * r, 2 * r
	case TagSingleSofa:
		return 2 * r, 2 * r
	case TagDJBooth:
		return 4 * r, 2 * r
	case TagStage:
		return 12 * r, 6 * r
	case TagBar:
		return 8 * r, 2 * r
	}
	return r, r
}

// Create builds an element positioned at the options' (x, y).
func (f *Factory) Create(opts Options) (Element, error) {
	w, h := f.DefaultSize(opts.Tag())
	switch o := opts.(type) {
	case RectTableOptions:
		t, err := NewRectTable(o.X, o.Y, w, h, o.Label)
		if err != nil {
			return nil, err
		}
		return t, nil
	case RoundTableOptions:
		t, err := NewRoundTable(o.X, o.Y, w/2, o.Label)
		if err != nil {
			return nil, err
		}
		return t, nil
	case WallOptions:
		return NewWall(o.X, o.Y, w, h), nil
	case SofaOptions:
		return NewSofa(o.X, o.Y, w, h), nil
	case SingleSofaOptions:
		return NewSingleSofa(o.X, o.Y, w, h), nil
	case DJBoothOptions:
		return NewDJBooth(o.X, o.Y, w, h), nil
	case StageOptions:
		return NewStage(o.X, o.Y, w, h), nil
	case BarOptions:
		return NewBar(o.X, o.Y, w, h), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownTag, opts)
}
