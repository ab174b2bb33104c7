package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/floor"
)

// Actions are the application-level commands the toolbar triggers.
type Actions struct {
	Save      func()
	ExportSVG func()
	Notify    func(msg string)
}

// paletteLabels are the short captions of the add-element buttons.
var paletteLabels = map[core.Tag]string{
	core.TagRectTable:  "Table",
	core.TagRoundTable: "Round",
	core.TagWall:       "Wall",
	core.TagSofa:       "Sofa",
	core.TagSingleSofa: "Seat",
	core.TagDJBooth:    "DJ",
	core.TagStage:      "Stage",
	core.TagBar:        "Bar",
}

// Toolbar provides control buttons.
type Toolbar struct {
	floor   *floor.Floor
	editor  *floor.Editor // nil in live mode
	actions Actions

	// Element palette, one button per tag
	addBtns map[core.Tag]*widget.Clickable

	// Undo/redo
	undoBtn widget.Clickable
	redoBtn widget.Clickable
	gridBtn widget.Clickable

	// Zoom
	zoomInBtn  widget.Clickable
	zoomOutBtn widget.Clickable
	resetBtn   widget.Clickable

	// Output
	saveBtn  widget.Clickable
	svgBtn   widget.Clickable
	clearBtn widget.Clickable
}

// NewToolbar creates a new toolbar. editor is nil for a live floor.
func NewToolbar(f *floor.Floor, editor *floor.Editor, actions Actions) *Toolbar {
	t := &Toolbar{
		floor:   f,
		editor:  editor,
		actions: actions,
		addBtns: make(map[core.Tag]*widget.Clickable),
	}
	for _, tag := range core.AllTags() {
		t.addBtns[tag] = new(widget.Clickable)
	}
	return t
}

// Layout renders the toolbar.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := gtx.Dp(unit.Dp(44))

	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	t.handleClicks(gtx)

	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		children := []layout.FlexChild{}
		if t.editor != nil {
			children = append(children,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return t.layoutPalette(gtx, th)
				}),
				layout.Rigid(t.layoutSeparator),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return t.layoutEditControls(gtx, th)
				}),
				layout.Rigid(t.layoutSeparator),
			)
		}
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutZoomControls(gtx, th)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.layoutOutputControls(gtx, th)
			}),
		)
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

func (t *Toolbar) layoutPalette(gtx layout.Context, th *material.Theme) layout.Dimensions {
	var children []layout.FlexChild
	for i, tag := range core.AllTags() {
		if i > 0 {
			children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout))
		}
		btn, label := t.addBtns[tag], paletteLabels[tag]
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, btn, label, false)
		}))
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
}

func (t *Toolbar) layoutEditControls(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.undoBtn, "<-", false)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.redoBtn, "->", false)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.gridBtn, "#", t.floor.Overlay().Visible())
		}),
	)
}

func (t *Toolbar) layoutZoomControls(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.zoomOutBtn, "-", false)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.zoomInBtn, "+", false)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(2)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.resetBtn, "[]", false)
		}),
	)
}

func (t *Toolbar) layoutOutputControls(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if t.editor != nil {
				return t.buttonBase(gtx, th, &t.saveBtn, "Save", false)
			}
			return t.buttonBase(gtx, th, &t.clearBtn, "Free all", false)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return t.buttonBase(gtx, th, &t.svgBtn, "SVG", false)
		}),
	)
}

func (t *Toolbar) layoutSeparator(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		rect := image.Rect(0, 0, 1, 24)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(rect).Op())
		return layout.Dimensions{Size: image.Point{X: 1, Y: 24}}
	})
}

func (t *Toolbar) buttonBase(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, active bool) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if active {
		bg = color.NRGBA{R: 80, G: 130, B: 180, A: 255}
	}
	if btn.Hovered() {
		bg.R = minU8(bg.R+15, 255)
		bg.G = minU8(bg.G+15, 255)
		bg.B = minU8(bg.B+15, 255)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			}),
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: gtx.Dp(unit.Dp(32)), Y: gtx.Dp(unit.Dp(28))}
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						label := material.Label(th, 12, text)
						label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
						return label.Layout(gtx)
					})
				})
			}),
		)
	})
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	// Palette: new elements land at the centre of the visible area
	for _, tag := range core.AllTags() {
		for t.addBtns[tag].Clicked(gtx) {
			view := t.floor.Viewport()
			at := t.floor.ToScene(view.ContainerWidth/2, view.VisibleHeight()/2)
			if _, err := t.floor.AddElementAt(tag, at); err != nil && t.actions.Notify != nil {
				t.actions.Notify(err.Error())
			}
		}
	}

	// Undo/redo
	for t.undoBtn.Clicked(gtx) {
		t.editor.Undo()
	}
	for t.redoBtn.Clicked(gtx) {
		t.editor.Redo()
	}
	for t.gridBtn.Clicked(gtx) {
		t.editor.ToggleGridVisibility()
	}

	// Zoom
	for t.zoomInBtn.Clicked(gtx) {
		t.floor.ZoomIn()
	}
	for t.zoomOutBtn.Clicked(gtx) {
		t.floor.ZoomOut()
	}
	for t.resetBtn.Clicked(gtx) {
		t.floor.ResetZoom()
	}

	// Output
	for t.saveBtn.Clicked(gtx) {
		if t.actions.Save != nil {
			t.actions.Save()
		}
	}
	for t.svgBtn.Clicked(gtx) {
		if t.actions.ExportSVG != nil {
			t.actions.ExportSVG()
		}
	}
	for t.clearBtn.Clicked(gtx) {
		t.floor.ClearAllReservations()
	}
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
