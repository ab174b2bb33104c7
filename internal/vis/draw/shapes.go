package draw

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/interact"
)

// toScreen converts scene points into screen points.
func toScreen(view *interact.Viewport, pts []core.Point) []f32.Point {
	out := make([]f32.Point, len(pts))
	for i, p := range pts {
		x, y := view.WorldToScreen(p.X, p.Y)
		out[i] = f32.Pt(float32(x), float32(y))
	}
	return out
}

func fillPolygon(gtx layout.Context, pts []f32.Point, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(pts[0])
	for _, p := range pts[1:] {
		path.LineTo(p)
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func strokePolygon(gtx layout.Context, pts []f32.Point, width float32, col color.NRGBA) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		drawLine(gtx, a.X, a.Y, b.X, b.Y, width, col)
	}
}

func drawLine(gtx layout.Context, x1, y1, x2, y2, width float32, col color.NRGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}

	dx /= length
	dy /= length
	px := -dy * width / 2
	py := dx * width / 2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(cx+radius, cy))

	segments := 12
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawSquare(gtx layout.Context, cx, cy, size float32, col color.NRGBA) {
	half := size / 2
	fillPolygon(gtx, []f32.Point{
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
		{X: cx - half, Y: cy + half},
	}, col)
}

// ellipse approximates an ellipse centred at (cx, cy).
func ellipse(cx, cy, rx, ry float64, segments int) []core.Point {
	pts := make([]core.Point, segments)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / float64(segments)
		pts[i] = core.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}

// roundedRect approximates a w x h box with corner radius r, clockwise from the top-left arc.
func roundedRect(w, h, r float64, arcSegments int) []core.Point {
	corners := []struct {
		cx, cy, from float64
	}{
		{r, r, math.Pi},
		{w - r, r, 1.5 * math.Pi},
		{w - r, h - r, 0},
		{r, h - r, 0.5 * math.Pi},
	}
	var pts []core.Point
	for _, c := range corners {
		for i := 0; i <= arcSegments; i++ {
			a := c.from + float64(i)*(math.Pi/2)/float64(arcSegments)
			pts = append(pts, core.Point{X: c.cx + r*math.Cos(a), Y: c.cy + r*math.Sin(a)})
		}
	}
	return pts
}
