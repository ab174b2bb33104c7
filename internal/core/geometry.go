package core

import "math"

// Point is a position in scene units.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether the point lies inside the rect (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Width of the rect.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height of the rect.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Geometry is the placement of an element. Left/Top is the unrotated top-left corner;
// rotation is applied around the centre of the scaled box. ScaleX/ScaleY are the live
// scale factors of an in-progress resize and are folded back into Width/Height on commit.
type Geometry struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
	Angle  float64 // degrees, clockwise
	ScaleX float64
	ScaleY float64
}

// Normalized returns g with zero scale factors replaced by 1.
func (g Geometry) Normalized() Geometry {
	if g.ScaleX == 0 {
		g.ScaleX = 1
	}
	if g.ScaleY == 0 {
		g.ScaleY = 1
	}
	return g
}

// ScaledWidth is the rendered width.
func (g Geometry) ScaledWidth() float64 {
	return g.Width * g.Normalized().ScaleX
}

// ScaledHeight is the rendered height.
func (g Geometry) ScaledHeight() float64 {
	return g.Height * g.Normalized().ScaleY
}

// Position returns the top-left corner.
func (g Geometry) Position() Point {
	return Point{X: g.Left, Y: g.Top}
}

// Center returns the rotation centre.
func (g Geometry) Center() Point {
	return Point{X: g.Left + g.ScaledWidth()/2, Y: g.Top + g.ScaledHeight()/2}
}

// ToLocal maps a scene point into the element's unrotated frame, relative to its top-left.
func (g Geometry) ToLocal(p Point) Point {
	c := g.Center()
	rad := -g.Angle * math.Pi / 180
	dx, dy := p.X-c.X, p.Y-c.Y
	rx := dx*math.Cos(rad) - dy*math.Sin(rad)
	ry := dx*math.Sin(rad) + dy*math.Cos(rad)
	return Point{X: rx + g.ScaledWidth()/2, Y: ry + g.ScaledHeight()/2}
}

// FromLocal maps a point in the element's unrotated frame back into scene space.
func (g Geometry) FromLocal(p Point) Point {
	c := g.Center()
	rad := g.Angle * math.Pi / 180
	dx, dy := p.X-g.ScaledWidth()/2, p.Y-g.ScaledHeight()/2
	return Point{
		X: c.X + dx*math.Cos(rad) - dy*math.Sin(rad),
		Y: c.Y + dx*math.Sin(rad) + dy*math.Cos(rad),
	}
}

// Corners returns the four rotated corners, clockwise from top-left.
func (g Geometry) Corners() [4]Point {
	w, h := g.ScaledWidth(), g.ScaledHeight()
	return [4]Point{
		g.FromLocal(Point{0, 0}),
		g.FromLocal(Point{w, 0}),
		g.FromLocal(Point{w, h}),
		g.FromLocal(Point{0, h}),
	}
}

// Bounds returns the axis-aligned box enclosing the rotated element.
func (g Geometry) Bounds() Rect {
	corners := g.Corners()
	r := Rect{MinX: corners[0].X, MinY: corners[0].Y, MaxX: corners[0].X, MaxY: corners[0].Y}
	for _, c := range corners[1:] {
		r.MinX = math.Min(r.MinX, c.X)
		r.MinY = math.Min(r.MinY, c.Y)
		r.MaxX = math.Max(r.MaxX, c.X)
		r.MaxY = math.Max(r.MaxY, c.Y)
	}
	return r
}

// ContainsBox reports whether p lies inside the rotated box.
func (g Geometry) ContainsBox(p Point) bool {
	l := g.ToLocal(p)
	return l.X >= 0 && l.X <= g.ScaledWidth() && l.Y >= 0 && l.Y <= g.ScaledHeight()
}
