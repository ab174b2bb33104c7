// Package floor is the scene core: it owns the element collection, the viewport and the
// interaction wiring of one floor layout. Editor and Viewer are thin configurations of it.
package floor

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/elektrokombinacija/floorplan/internal/command"
	"github.com/elektrokombinacija/floorplan/internal/config"
	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/grid"
	"github.com/elektrokombinacija/floorplan/internal/interact"
	"github.com/elektrokombinacija/floorplan/internal/serial"
)

var (
	// ErrNoCanvas is returned when a floor is constructed without a drawing surface.
	ErrNoCanvas = errors.New("floor: no canvas to render into")
	// ErrNoDocument is returned when a floor is constructed without a floor document.
	ErrNoDocument = errors.New("floor: no floor document")
)

// Mode is the operating mode of a floor.
type Mode int

const (
	ModeEditor Mode = iota
	ModeLive
)

func (m Mode) String() string {
	return [...]string{"EDITOR", "LIVE"}[m]
}

// Canvas is the host drawing surface. RequestRender asks for a synchronous redraw.
type Canvas interface {
	RequestRender()
}

// LockPolicy derives an element's locks from the floor's mode.
type LockPolicy func(core.Element) core.Locks

// EditorLocks leaves every element free.
func EditorLocks(core.Element) core.Locks { return core.Unlocked }

// ViewerLocks freezes every element.
func ViewerLocks(core.Element) core.Locks { return core.Locked }

// Handlers consumed by external business logic.
type (
	ClickHandler        func(f *Floor, el core.Element) // el is nil for clicks on empty space
	DoubleClickHandler  func(f *Floor, at core.Point)
	TableToTableHandler func(f *Floor, from, to core.Table)
)

// Options configures a floor.
type Options struct {
	Canvas          Canvas
	Document        *serial.FloorDocument
	ContainerWidth  float64
	ContainerHeight float64

	OnElementClicked ClickHandler
	OnDoubleClick    DoubleClickHandler
	OnTableToTable   TableToTableHandler
	OnRendered       func(f *Floor)

	Config   *config.Config
	Registry *serial.Registry
	Logger   *zap.Logger
}

// Floor is the scene core.
type Floor struct {
	id     string
	name   string
	mode   Mode
	canvas Canvas
	width  float64
	height float64

	elements  []core.Element
	selection []core.ElementID

	cfg      *config.Config
	factory  *core.Factory
	registry *serial.Registry
	palette  core.Palette
	locks    LockPolicy
	events   EventManager
	history  *command.Invoker // editor only
	overlay  *grid.Overlay    // editor only

	view  *interact.Viewport
	zoom  *interact.ZoomController
	touch *interact.TouchController

	opts   Options
	logger *zap.Logger
}

func newFloor(opts Options, mode Mode, locks LockPolicy) (*Floor, error) {
	if opts.Canvas == nil {
		return nil, ErrNoCanvas
	}
	if opts.Document == nil {
		return nil, ErrNoDocument
	}
	if err := opts.Document.Validate(); err != nil {
		return nil, err
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	registry := opts.Registry
	if registry == nil {
		registry = serial.DefaultRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	doc := opts.Document
	f := &Floor{
		id:       doc.ID,
		name:     doc.Name,
		mode:     mode,
		canvas:   opts.Canvas,
		width:    doc.Width,
		height:   doc.Height,
		cfg:      cfg,
		factory:  core.NewFactory(cfg.Grid.Resolution),
		registry: registry,
		palette:  cfg.TablePalette(),
		locks:    locks,
		opts:     opts,
		logger:   logger.With(zap.String("floor_id", doc.ID), zap.Stringer("mode", mode)),
	}
	f.view = interact.NewViewport(opts.ContainerWidth, opts.ContainerHeight, doc.Width, doc.Height)
	f.zoom = interact.NewZoomController(f.view, cfg.ZoomSettings(), f.render)
	f.touch = interact.NewTouchController(f.zoom)
	return f, nil
}

// load revives the document's scene into the element collection.
func (f *Floor) load(scene *serial.Scene) error {
	elements, err := f.registry.Import(scene)
	if err != nil {
		return fmt.Errorf("failed to load floor %s: %w", f.id, err)
	}
	seen := make(map[string]bool)
	for _, el := range elements {
		if t, ok := el.(core.Table); ok {
			if seen[t.Label()] {
				f.logger.Warn("duplicate table label", zap.String("label", t.Label()))
			}
			seen[t.Label()] = true
		}
		f.attach(el)
		f.elements = append(f.elements, el)
	}
	f.logger.Debug("floor loaded", zap.Int("elements", len(elements)))
	return nil
}

// finish renders the initial scene and raises the rendered event.
func (f *Floor) finish() {
	f.render()
	if f.opts.OnRendered != nil {
		f.opts.OnRendered(f)
	}
}

func (f *Floor) attach(el core.Element) {
	el.ApplyLocks(f.locks(el))
	el.OnRedraw(f.render)
}

func (f *Floor) render() {
	f.canvas.RequestRender()
}

// ID returns the floor document id.
func (f *Floor) ID() string { return f.id }

// Name returns the floor display name.
func (f *Floor) Name() string { return f.name }

// Mode returns the operating mode.
func (f *Floor) Mode() Mode { return f.mode }

// Width returns the floor width in scene units.
func (f *Floor) Width() float64 { return f.width }

// Height returns the floor height in scene units.
func (f *Floor) Height() float64 { return f.height }

// Scale is the fitted scale: container width over floor width.
func (f *Floor) Scale() float64 { return f.view.FitScale() }

// Viewport returns the current view transformation.
func (f *Floor) Viewport() *interact.Viewport { return f.view }

// Zoom returns the zoom controller.
func (f *Floor) Zoom() *interact.ZoomController { return f.zoom }

// Overlay returns the grid overlay; nil in live mode.
func (f *Floor) Overlay() *grid.Overlay { return f.overlay }

// Palette returns the reservation palette.
func (f *Floor) Palette() core.Palette { return f.palette }

// Config returns the active configuration.
func (f *Floor) Config() *config.Config { return f.cfg }

// Elements returns the elements in stacking order (bottom first).
func (f *Floor) Elements() []core.Element {
	out := make([]core.Element, len(f.elements))
	copy(out, f.elements)
	return out
}

// Element finds an element by id.
func (f *Floor) Element(id core.ElementID) (core.Element, bool) {
	for _, el := range f.elements {
		if el.ID() == id {
			return el, true
		}
	}
	return nil, false
}

// Insert places an element at index without recording history; out-of-range appends.
func (f *Floor) Insert(el core.Element, index int) {
	f.attach(el)
	if index < 0 || index >= len(f.elements) {
		f.elements = append(f.elements, el)
	} else {
		f.elements = append(f.elements[:index], append([]core.Element{el}, f.elements[index:]...)...)
	}
	f.logger.Debug("element inserted", zap.String("id", string(el.ID())), zap.String("tag", string(el.Tag())))
	f.render()
}

// Remove drops an element without recording history.
func (f *Floor) Remove(id core.ElementID) (core.Element, int, bool) {
	for i, el := range f.elements {
		if el.ID() != id {
			continue
		}
		f.elements = append(f.elements[:i], f.elements[i+1:]...)
		f.deselect(id)
		el.OnRedraw(nil)
		f.logger.Debug("element removed", zap.String("id", string(id)), zap.String("tag", string(el.Tag())))
		f.render()
		return el, i, true
	}
	return nil, -1, false
}

// AddElement builds an element with the factory and appends it. In the editor the
// addition is undoable.
func (f *Floor) AddElement(opts core.Options) (core.Element, error) {
	el, err := f.factory.Create(opts)
	if err != nil {
		return nil, err
	}
	if f.history != nil {
		f.history.Execute(command.NewAddCommand(f, el))
	} else {
		f.Insert(el, -1)
	}
	return el, nil
}

// AddElementAt adds an element of the given tag with its top-left corner at a scene
// point snapped to the grid. Tables receive the next free "T<n>" label.
func (f *Floor) AddElementAt(tag core.Tag, at core.Point) (core.Element, error) {
	label := ""
	if tag.IsTable() {
		label = f.NextTableLabel("T")
	}
	x, y := f.cfg.Snapper().Position(at.X, at.Y)
	opts, err := core.NewOptions(tag, x, y, label)
	if err != nil {
		return nil, err
	}
	return f.AddElement(opts)
}

// NextTableLabel returns prefix followed by the smallest positive number not yet used
// as a table label.
func (f *Floor) NextTableLabel(prefix string) string {
	used := make(map[string]bool)
	for _, t := range f.GetTables() {
		used[t.Label()] = true
	}
	for n := 1; ; n++ {
		if label := prefix + strconv.Itoa(n); !used[label] {
			return label
		}
	}
}

// RemoveElement removes an element by id. In the editor the removal is undoable.
func (f *Floor) RemoveElement(id core.ElementID) bool {
	if _, ok := f.Element(id); !ok {
		return false
	}
	if f.history != nil {
		f.history.Execute(command.NewRemoveCommand(f, id))
	} else {
		f.Remove(id)
	}
	return true
}

// UpdateDimensions resizes the floor, recomputes the scale and redraws the grid.
func (f *Floor) UpdateDimensions(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %vx%v", serial.ErrInvalidDimensions, width, height)
	}
	f.width, f.height = width, height
	f.view.Resize(f.view.ContainerWidth, f.view.ContainerHeight, width, height)
	if f.overlay != nil {
		f.overlay.Resize(width, height)
	}
	f.logger.Debug("dimensions updated", zap.Float64("width", width), zap.Float64("height", height))
	f.render()
	return nil
}

// Resize adapts the floor to a new container size.
func (f *Floor) Resize(containerWidth, containerHeight float64) {
	f.view.Resize(containerWidth, containerHeight, f.width, f.height)
	f.render()
}

// ElementAt returns the topmost element under a scene point.
func (f *Floor) ElementAt(p core.Point) core.Element {
	for i := len(f.elements) - 1; i >= 0; i-- {
		if f.elements[i].Contains(p) {
			return f.elements[i]
		}
	}
	return nil
}

// ToScene converts canvas pixels into scene units.
func (f *Floor) ToScene(x, y float64) core.Point {
	wx, wy := f.view.ScreenToWorld(x, y)
	return core.Point{X: wx, Y: wy}
}

// GetTables returns all tables in stacking order.
func (f *Floor) GetTables() []core.Table {
	return core.Tables(f.elements)
}

// HasTables reports whether the floor has at least one table.
func (f *Floor) HasTables() bool {
	for _, el := range f.elements {
		if _, ok := el.(core.Table); ok {
			return true
		}
	}
	return false
}

// GetFreeTables returns the tables without a reservation.
func (f *Floor) GetFreeTables() []core.Table {
	var out []core.Table
	for _, t := range f.GetTables() {
		if t.Reservation() == nil {
			out = append(out, t)
		}
	}
	return out
}

// GetTableByLabel returns the first table with the given label.
func (f *Floor) GetTableByLabel(label string) (core.Table, bool) {
	for _, el := range f.elements {
		if t, ok := el.(core.Table); ok && t.Label() == label {
			return t, true
		}
	}
	return nil, false
}

// ExtractAllTableLabels returns every table label in stacking order.
func (f *Floor) ExtractAllTableLabels() []string {
	var labels []string
	for _, t := range f.GetTables() {
		labels = append(labels, t.Label())
	}
	return labels
}

// SetReservationOnTable stores a reservation reference on a table and repaints it.
// A nil reservation marks the table free.
func (f *Floor) SetReservationOnTable(t core.Table, r *core.Reservation) {
	if t == nil {
		return
	}
	t.SetReservation(r)
	t.SetFill(core.DetermineTableColor(r, f.palette))
}

// ClearAllReservations resets every table to the unreserved colour.
func (f *Floor) ClearAllReservations() {
	for _, t := range f.GetTables() {
		f.SetReservationOnTable(t, nil)
	}
}

// Export serializes the current scene together with the floor's dimensions.
func (f *Floor) Export() serial.Exported {
	return serial.Export(f.elements, f.width, f.height)
}

// Document exports the floor as a complete floor document.
func (f *Floor) Document() *serial.FloorDocument {
	return f.Export().Document(f.id, f.name)
}

// ZoomIn magnifies one step around the container centre.
func (f *Floor) ZoomIn() bool { return f.zoom.ZoomInCenter() }

// ZoomOut shrinks one step around the container centre.
func (f *Floor) ZoomOut() bool { return f.zoom.ZoomOutCenter() }

// ResetZoom restores the fitted view.
func (f *Floor) ResetZoom() { f.zoom.ResetZoom() }

// HandlePointer feeds a pointer event to the installed event manager.
func (f *Floor) HandlePointer(ev interact.PointerEvent) { f.events.HandlePointer(ev) }

// HandleTouch feeds a touch event to the installed event manager.
func (f *Floor) HandleTouch(ev interact.TouchEvent) { f.events.HandleTouch(ev) }

// HandleKey feeds a key event to the installed event manager.
func (f *Floor) HandleKey(ev interact.KeyEvent) { f.events.HandleKey(ev) }

// Selected returns the selected elements in selection order.
func (f *Floor) Selected() []core.Element {
	var out []core.Element
	for _, id := range f.selection {
		if el, ok := f.Element(id); ok {
			out = append(out, el)
		}
	}
	return out
}

// IsSelected reports whether an element is selected.
func (f *Floor) IsSelected(id core.ElementID) bool {
	for _, s := range f.selection {
		if s == id {
			return true
		}
	}
	return false
}

// HasSelection reports whether any element is selected.
func (f *Floor) HasSelection() bool {
	return len(f.Selected()) > 0
}

// Select selects an element; additive keeps the current selection.
func (f *Floor) Select(id core.ElementID, additive bool) {
	if !additive {
		f.selection = f.selection[:0]
	}
	if !f.IsSelected(id) {
		f.selection = append(f.selection, id)
	}
	f.render()
}

// ClearSelection deselects everything.
func (f *Floor) ClearSelection() {
	if len(f.selection) == 0 {
		return
	}
	f.selection = f.selection[:0]
	f.render()
}

func (f *Floor) deselect(id core.ElementID) {
	for i, s := range f.selection {
		if s == id {
			f.selection = append(f.selection[:i], f.selection[i+1:]...)
			return
		}
	}
}

func (f *Floor) emitClick(el core.Element) {
	if f.opts.OnElementClicked != nil {
		f.opts.OnElementClicked(f, el)
	}
}

func (f *Floor) emitDoubleClick(at core.Point) {
	if f.opts.OnDoubleClick != nil {
		f.opts.OnDoubleClick(f, at)
	}
}

func (f *Floor) emitTableToTable(from, to core.Table) {
	f.logger.Debug("table to table", zap.String("from", from.Label()), zap.String("to", to.Label()))
	if f.opts.OnTableToTable != nil {
		f.opts.OnTableToTable(f, from, to)
	}
}
