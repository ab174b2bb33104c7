package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/floorplan/internal/floor"
)

// StatusBar shows the floor name, zoom level, table counts and the last message.
type StatusBar struct {
	floor   *floor.Floor
	message string
}

// NewStatusBar creates a new status bar.
func NewStatusBar(f *floor.Floor) *StatusBar {
	return &StatusBar{floor: f}
}

// SetMessage replaces the message shown on the right.
func (s *StatusBar) SetMessage(msg string) { s.message = msg }

// Message returns the current message.
func (s *StatusBar) Message() string { return s.message }

// Summary is the left-hand status text.
func (s *StatusBar) Summary() string {
	f := s.floor
	z := f.Zoom()
	return fmt.Sprintf("%s  [%s]  %.0fx%.0f  zoom %d/%d  tables %d (free %d)  selected %d",
		f.Name(), f.Mode(), f.Width(), f.Height(), z.Step(), z.MaxSteps(),
		len(f.GetTables()), len(f.GetFreeTables()), len(f.Selected()))
}

// Layout renders the status bar.
func (s *StatusBar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := gtx.Dp(unit.Dp(28))

	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 35, G: 38, B: 42, A: 255}, clip.Rect(rect).Op())

	summary := material.Label(th, 12, s.Summary())
	summary.Color = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	summary.Alignment = text.Start

	msg := material.Label(th, 12, s.message)
	msg.Color = color.NRGBA{R: 150, G: 180, B: 200, A: 255}
	msg.Alignment = text.End

	gtx.Constraints.Max.Y = height
	layout.Inset{Top: unit.Dp(6), Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(summary.Layout),
			layout.Rigid(msg.Layout),
		)
	})

	return layout.Dimensions{Size: image.Point{X: gtx.Constraints.Max.X, Y: height}}
}
