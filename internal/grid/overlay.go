package grid

// Line is one grid line in scene units.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Overlay is the background reference grid sized to the floor.
type Overlay struct {
	resolution float64
	width      float64
	height     float64
	visible    bool
	lines      []Line
	redraw     func()
}

// NewOverlay creates a hidden grid for a floor of the given size.
func NewOverlay(width, height, resolution float64, redraw func()) *Overlay {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	return &Overlay{
		resolution: resolution,
		width:      width,
		height:     height,
		redraw:     redraw,
	}
}

// Draw computes the grid lines and shows the grid.
func (o *Overlay) Draw() {
	o.lines = o.lines[:0]
	for x := 0.0; x <= o.width; x += o.resolution {
		o.lines = append(o.lines, Line{X1: x, Y1: 0, X2: x, Y2: o.height})
	}
	for y := 0.0; y <= o.height; y += o.resolution {
		o.lines = append(o.lines, Line{X1: 0, Y1: y, X2: o.width, Y2: y})
	}
	o.visible = true
	o.requestRedraw()
}

// Clear hides the grid and drops its lines.
func (o *Overlay) Clear() {
	o.lines = nil
	o.visible = false
	o.requestRedraw()
}

// Toggle flips visibility and returns the new state.
func (o *Overlay) Toggle() bool {
	if o.visible {
		o.Clear()
	} else {
		o.Draw()
	}
	return o.visible
}

// Resize changes the covered area, redrawing when visible.
func (o *Overlay) Resize(width, height float64) {
	o.width, o.height = width, height
	if o.visible {
		o.Draw()
	}
}

// Visible reports whether the grid is shown.
func (o *Overlay) Visible() bool { return o.visible }

// Lines returns the current grid lines; empty when hidden.
func (o *Overlay) Lines() []Line { return o.lines }

// Resolution returns the grid spacing.
func (o *Overlay) Resolution() float64 { return o.resolution }

func (o *Overlay) requestRedraw() {
	if o.redraw != nil {
		o.redraw()
	}
}
