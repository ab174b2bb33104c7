// Package draw provides rendering functions for the floor visualizer.
package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/grid"
	"github.com/elektrokombinacija/floorplan/internal/interact"
	"github.com/elektrokombinacija/floorplan/internal/render"
)

// Colors for scene chrome
var (
	ColorFloor     = color.NRGBA{R: 250, G: 250, B: 248, A: 255}
	ColorGrid      = color.NRGBA{R: 220, G: 222, B: 225, A: 255}
	ColorOutline   = color.NRGBA{R: 60, G: 60, B: 64, A: 255}
	ColorCaption   = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	ColorFallback  = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	ColorHandle    = color.NRGBA{R: 80, G: 130, B: 180, A: 255}
	ColorBarStripe = color.NRGBA{R: 255, G: 255, B: 255, A: 160}
)

// Outline returns the element's outline in scene units, following its rotation.
func Outline(el core.Element) []core.Point {
	g := el.Geometry()
	w, h := g.ScaledWidth(), g.ScaledHeight()
	var local []core.Point
	switch render.ShapeOf(el.Tag()) {
	case render.ShapeEllipse:
		local = ellipse(w/2, h/2, w/2, h/2, 32)
	case render.ShapeRounded:
		local = roundedRect(w, h, math.Min(w, h)/5, 4)
	default:
		local = []core.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
	}
	out := make([]core.Point, len(local))
	for i, p := range local {
		out[i] = g.FromLocal(p)
	}
	return out
}

// DrawFloor paints the floor area.
func DrawFloor(gtx layout.Context, view *interact.Viewport) {
	fillPolygon(gtx, toScreen(view, []core.Point{
		{X: 0, Y: 0},
		{X: view.FloorWidth, Y: 0},
		{X: view.FloorWidth, Y: view.FloorHeight},
		{X: 0, Y: view.FloorHeight},
	}), ColorFloor)
}

// DrawGrid draws the overlay's lines.
func DrawGrid(gtx layout.Context, view *interact.Viewport, lines []grid.Line, col color.NRGBA) {
	for _, l := range lines {
		x1, y1 := view.WorldToScreen(l.X1, l.Y1)
		x2, y2 := view.WorldToScreen(l.X2, l.Y2)
		drawLine(gtx, float32(x1), float32(y1), float32(x2), float32(y2), 1, col)
	}
}

// DrawElement fills and outlines an element. Selected elements get a highlighted outline.
func DrawElement(gtx layout.Context, el core.Element, view *interact.Viewport, selected bool, selectedCol color.NRGBA) {
	pts := toScreen(view, Outline(el))
	fillPolygon(gtx, pts, HexOr(el.Fill(), ColorFallback))

	if bar, ok := el.(*core.Bar); ok {
		drawBarStripes(gtx, bar, view)
	}

	outline, width := ColorOutline, float32(1)
	if selected {
		outline, width = selectedCol, 3
	}
	strokePolygon(gtx, pts, width, outline)
}

// drawBarStripes marks the bar design with stripes along the long side.
func drawBarStripes(gtx layout.Context, bar *core.Bar, view *interact.Viewport) {
	g := bar.Geometry()
	w, h := g.ScaledWidth(), g.ScaledHeight()
	n := bar.Design()
	for i := 1; i <= n; i++ {
		y := h * float64(i) / float64(n+1)
		a := g.FromLocal(core.Point{X: h / 4, Y: y})
		b := g.FromLocal(core.Point{X: w - h/4, Y: y})
		pts := toScreen(view, []core.Point{a, b})
		drawLine(gtx, pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, 2, ColorBarStripe)
	}
}

// DrawCaption renders the element's centred text inside the element's frame. The
// frame carries the live resize scale; the caption's counter-scale cancels it so the
// text keeps its proportions while the box follows the element.
func DrawCaption(gtx layout.Context, th *material.Theme, el core.Element, view *interact.Viewport) {
	c, ok := el.(core.Caption)
	if !ok || c.Text() == "" {
		return
	}
	tsx, tsy := c.TextScale()
	m, box, size := captionLayout(el.Geometry(), tsx, tsy, view)
	if box.X <= 0 || box.Y <= 0 {
		return
	}

	defer op.Affine(m).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(box)
	lbl := material.Label(th, unit.Sp(float32(size)), c.Text())
	lbl.Alignment = text.Middle
	lbl.Color = ColorCaption
	lbl.MaxLines = 1
	layout.Center.Layout(gtx, lbl.Layout)
}

// captionLayout returns the transform from caption pixels to the screen, the caption
// box in caption pixels and the font size. Caption pixels are scene units after the
// counter-scale: the box is centred on the element, scaled by the element's live
// scale and the zoom, rotated, then moved to the element's screen centre.
func captionLayout(g core.Geometry, tsx, tsy float64, view *interact.Viewport) (f32.Affine2D, image.Point, float64) {
	g = g.Normalized()
	if tsx <= 0 || tsy <= 0 {
		tsx, tsy = 1, 1
	}
	size := math.Max(8, math.Min(g.ScaledHeight()*0.4, 14))
	w := g.ScaledWidth() / (g.ScaleX * tsx)
	h := size * 1.6
	box := image.Pt(int(math.Ceil(w)), int(math.Ceil(h)))

	center := g.Center()
	sx, sy := view.WorldToScreen(center.X, center.Y)
	m := f32.Affine2D{}.
		Offset(f32.Pt(-float32(box.X)/2, -float32(box.Y)/2)).
		Scale(f32.Point{}, f32.Pt(float32(tsx), float32(tsy))).
		Scale(f32.Point{}, f32.Pt(float32(g.ScaleX*view.Zoom), float32(g.ScaleY*view.Zoom))).
		Rotate(f32.Point{}, float32(g.Angle*math.Pi/180)).
		Offset(f32.Pt(float32(sx), float32(sy)))
	return m, box, size
}

// DrawHandles draws the resize handle and the rotation handle with its stem.
func DrawHandles(gtx layout.Context, el core.Element, view *interact.Viewport, scale, rotate core.Point) {
	g := el.Geometry()
	top := g.FromLocal(core.Point{X: g.ScaledWidth() / 2, Y: 0})
	pts := toScreen(view, []core.Point{scale, rotate, top})

	drawLine(gtx, pts[2].X, pts[2].Y, pts[1].X, pts[1].Y, 1, ColorHandle)
	drawSquare(gtx, pts[0].X, pts[0].Y, 10, ColorHandle)
	drawFilledCircle(gtx, pts[1].X, pts[1].Y, 6, ColorHandle)
}
