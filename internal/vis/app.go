// Package vis implements a Gio-based floor-plan editor and live viewer.
package vis

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/floorplan/internal/config"
	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/floor"
	"github.com/elektrokombinacija/floorplan/internal/render"
	"github.com/elektrokombinacija/floorplan/internal/serial"
	"github.com/elektrokombinacija/floorplan/internal/vis/draw"
	"github.com/elektrokombinacija/floorplan/internal/vis/widgets"
)

// Size of the floor created when the document path does not exist yet.
const (
	DefaultFloorWidth  = 1500
	DefaultFloorHeight = 1000
)

// Party size of a reservation created by clicking a free table in live mode.
const walkInGuests = 2

// Options configures the application.
type Options struct {
	DocPath string
	Live    bool
	Config  *config.Config
	Logger  *zap.Logger
}

// App is the main visualization application.
type App struct {
	floor   *floor.Floor
	editor  *floor.Editor // nil in live mode
	theme   *material.Theme
	view    *widgets.FloorView
	toolbar *widgets.Toolbar
	status  *widgets.StatusBar

	docPath string
	logger  *zap.Logger
}

// NewApp loads the document at opts.DocPath, or starts a blank floor when it does not exist.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := loadDocument(opts.DocPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		theme:   material.NewTheme(),
		view:    widgets.NewFloorView(draw.HexOr(cfg.Palette.Selected, draw.ColorHandle)),
		docPath: opts.DocPath,
		logger:  logger,
	}
	fo := floor.Options{
		Canvas:           a.view,
		Document:         doc,
		ContainerWidth:   float64(cfg.Window.Width),
		ContainerHeight:  float64(cfg.Window.Height),
		OnElementClicked: a.elementClicked,
		OnDoubleClick:    a.doubleClicked,
		OnTableToTable:   a.tableToTable,
		Config:           cfg,
		Logger:           logger,
	}
	if opts.Live {
		v, err := floor.NewViewer(fo)
		if err != nil {
			return nil, err
		}
		a.floor = v.Floor
	} else {
		e, err := floor.NewEditor(fo)
		if err != nil {
			return nil, err
		}
		a.editor = e
		a.floor = e.Floor
	}
	a.view.Attach(a.floor)
	a.toolbar = widgets.NewToolbar(a.floor, a.editor, widgets.Actions{
		Save:      func() { a.notifyErr(a.save()) },
		ExportSVG: func() { a.notifyErr(a.exportSVG()) },
		Notify:    a.notify,
	})
	a.status = widgets.NewStatusBar(a.floor)
	logger.Info("floor opened",
		zap.String("floor_id", a.floor.ID()),
		zap.Stringer("mode", a.floor.Mode()),
		zap.Int("elements", len(a.floor.Elements())))
	return a, nil
}

func loadDocument(path string) (*serial.FloorDocument, error) {
	if path == "" {
		return serial.NewDocument("Untitled", DefaultFloorWidth, DefaultFloorHeight), nil
	}
	doc, err := serial.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return serial.NewDocument(name, DefaultFloorWidth, DefaultFloorHeight), nil
	}
	return doc, err
}

// Floor returns the scene core driven by the application.
func (a *App) Floor() *floor.Floor { return a.floor }

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	a.view.SetInvalidator(w.Invalidate)

	// Event filters for keyboard input
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Optional: key.ModShortcut | key.ModShift})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			// Request focus for keyboard input
			event.Op(gtx.Ops, tag)
			gtx.Execute(key.FocusCmd{Tag: tag})

			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	ctrl := e.Modifiers.Contain(key.ModShortcut)
	switch {
	case ctrl && e.Name == "S":
		a.notifyErr(a.save())
	case ctrl && e.Name == "E":
		a.notifyErr(a.exportSVG())
	case !ctrl && e.Name == "R":
		a.floor.ResetZoom()
	case !ctrl && (e.Name == "+" || e.Name == "="):
		a.floor.ZoomIn()
	case !ctrl && e.Name == "-":
		a.floor.ZoomOut()
	default:
		a.floor.HandleKey(translateKey(e))
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.view.Layout(gtx, a.theme)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.status.Layout(gtx, a.theme)
		}),
	)
}

func (a *App) elementClicked(f *floor.Floor, el core.Element) {
	switch el := el.(type) {
	case nil:
		a.notify("")
	case core.Table:
		if a.editor == nil {
			a.toggleReservation(f, el)
			return
		}
		a.notify(describeTable(el))
	default:
		a.notify(string(el.Tag()))
	}
}

// toggleReservation is the live-mode walk-in flow: a free table gets a pending
// reservation, a pending one is confirmed, a confirmed one is only described.
func (a *App) toggleReservation(f *floor.Floor, t core.Table) {
	r := t.Reservation()
	switch {
	case r == nil:
		r = &core.Reservation{ID: uuid.NewString(), GuestName: "Walk-in", Guests: walkInGuests}
		f.SetReservationOnTable(t, r)
		a.logger.Info("reservation created", zap.String("reservation_id", r.ID), zap.String("table", t.Label()))
	case !r.Confirmed:
		r.Confirmed = true
		f.SetReservationOnTable(t, r)
		a.logger.Info("reservation confirmed", zap.String("reservation_id", r.ID), zap.String("table", t.Label()))
	}
	a.notify(describeTable(t))
}

func describeTable(t core.Table) string {
	state := "free"
	if r := t.Reservation(); r != nil {
		state = fmt.Sprintf("reserved for %s (%d)", r.GuestName, r.Guests)
		if !r.Confirmed {
			state += ", pending"
		}
	}
	return fmt.Sprintf("Table %s: %s", t.Label(), state)
}

// doubleClicked places a new table on empty space in the editor.
func (a *App) doubleClicked(f *floor.Floor, at core.Point) {
	if a.editor == nil || f.ElementAt(at) != nil {
		return
	}
	el, err := f.AddElementAt(core.TagRectTable, at)
	if err != nil {
		a.notifyErr(err)
		return
	}
	a.notify("Added table " + el.(core.Table).Label())
}

// tableToTable moves a reservation from one table onto a free one.
func (a *App) tableToTable(f *floor.Floor, from, to core.Table) {
	r := from.Reservation()
	switch {
	case r == nil:
		a.notify(fmt.Sprintf("Table %s has no reservation", from.Label()))
	case to.Reservation() != nil:
		a.notify(fmt.Sprintf("Table %s is already reserved", to.Label()))
	default:
		f.SetReservationOnTable(to, r)
		f.SetReservationOnTable(from, nil)
		a.logger.Info("reservation moved",
			zap.String("reservation_id", r.ID),
			zap.String("from", from.Label()),
			zap.String("to", to.Label()))
		a.notify(fmt.Sprintf("Moved %s from %s to %s", r.GuestName, from.Label(), to.Label()))
	}
}

func (a *App) save() error {
	if a.docPath == "" {
		return errors.New("no document path to save to")
	}
	if err := serial.WriteFile(a.docPath, a.floor.Document()); err != nil {
		return fmt.Errorf("failed to save floor: %w", err)
	}
	a.logger.Info("floor saved", zap.String("path", a.docPath))
	a.notify("Saved " + a.docPath)
	return nil
}

func (a *App) svgPath() string {
	if a.docPath == "" {
		return "floor.svg"
	}
	return strings.TrimSuffix(a.docPath, filepath.Ext(a.docPath)) + ".svg"
}

func (a *App) exportSVG() error {
	path := a.svgPath()
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create svg: %w", err)
	}
	defer f.Close()

	err = render.SVG(f, a.floor.Elements(), a.floor.Width(), a.floor.Height(), render.SVGOptions{Title: a.floor.Name()})
	if err != nil {
		return fmt.Errorf("failed to export svg: %w", err)
	}
	a.logger.Info("floor exported", zap.String("path", path))
	a.notify("Exported " + path)
	return nil
}

func (a *App) notify(msg string) {
	a.status.SetMessage(msg)
	a.view.RequestRender()
}

func (a *App) notifyErr(err error) {
	if err == nil {
		return
	}
	a.logger.Warn("action failed", zap.Error(err))
	a.notify(err.Error())
}
