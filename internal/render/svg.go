// Package render draws floor scenes outside the interactive host.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/grid"
)

// Shape is the outline used to draw an element.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeEllipse
	ShapeRounded
)

// ShapeOf maps an element tag to its outline.
func ShapeOf(tag core.Tag) Shape {
	switch tag {
	case core.TagRoundTable:
		return ShapeEllipse
	case core.TagSofa, core.TagSingleSofa, core.TagBar:
		return ShapeRounded
	default:
		return ShapeRect
	}
}

// BarStroke returns the outline dash pattern of a bar design; empty means solid.
func BarStroke(design int) string {
	switch design % core.BarDesigns {
	case 1:
		return "8,4"
	case 2:
		return "2,3"
	default:
		return ""
	}
}

// SVGOptions controls an SVG export.
type SVGOptions struct {
	Scale float64     // output pixels per scene unit, 0 means 1
	Grid  []grid.Line // optional background grid
	Title string
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SVG writes the elements, in stacking order, as an SVG document of the floor's size.
func SVG(w io.Writer, elements []core.Element, width, height float64, opts SVGOptions) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: invalid floor size %vx%v", width, height)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	px := func(v float64) int { return int(math.Round(v * scale)) }

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(px(width), px(height))
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Rect(0, 0, px(width), px(height), "fill:#ffffff")

	for _, l := range opts.Grid {
		canvas.Line(px(l.X1), px(l.Y1), px(l.X2), px(l.Y2), "stroke:#dcdcdc;stroke-width:1")
	}

	for _, el := range elements {
		g := el.Geometry()
		c := g.Center()
		w, h := g.ScaledWidth(), g.ScaledHeight()
		x, y := g.Left, g.Top

		canvas.Gtransform(fmt.Sprintf("rotate(%g,%d,%d)", g.Angle, px(c.X), px(c.Y)))
		style := fmt.Sprintf("fill:%s;stroke:#333333;stroke-width:1", el.Fill())
		if bar, ok := el.(*core.Bar); ok {
			if dash := BarStroke(bar.Design()); dash != "" {
				style += ";stroke-dasharray:" + dash
			}
		}
		switch ShapeOf(el.Tag()) {
		case ShapeEllipse:
			canvas.Ellipse(px(c.X), px(c.Y), px(w/2), px(h/2), style)
		case ShapeRounded:
			r := px(math.Min(w, h) / 5)
			canvas.Roundrect(px(x), px(y), px(w), px(h), r, r, style)
		default:
			canvas.Rect(px(x), px(y), px(w), px(h), style)
		}
		if lbl, ok := el.(core.Caption); ok && lbl.Text() != "" {
			size := math.Max(8, math.Min(h*0.4, 14)) * scale
			canvas.Text(px(c.X), px(c.Y)+int(size/3), lbl.Text(),
				fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%.0fpx;fill:#222222", size))
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}
