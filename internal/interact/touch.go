package interact

import "math"

type touchPoint struct {
	id   int
	x, y float64
}

// TouchController turns touch sequences into pinch zoom and single-finger pan.
type TouchController struct {
	zoom     *ZoomController
	touches  []touchPoint
	prevDist float64
}

// NewTouchController creates a controller driving the given zoom controller.
func NewTouchController(zoom *ZoomController) *TouchController {
	return &TouchController{zoom: zoom}
}

// Active returns the number of fingers currently down.
func (t *TouchController) Active() int { return len(t.touches) }

// Pinching reports whether two or more fingers are down.
func (t *TouchController) Pinching() bool { return len(t.touches) >= 2 }

// Start registers a new finger.
func (t *TouchController) Start(id int, x, y float64) {
	t.touches = append(t.touches, touchPoint{id: id, x: x, y: y})
	t.prevDist = 0
	if len(t.touches) == 2 {
		t.prevDist = t.distance()
	}
}

// Move updates a finger. Two fingers pinch-zoom around their midpoint; one finger
// pans. It reports whether the view changed.
func (t *TouchController) Move(id int, x, y float64, hasSelection bool) bool {
	i := t.index(id)
	if i < 0 {
		return false
	}
	dx, dy := x-t.touches[i].x, y-t.touches[i].y
	t.touches[i].x, t.touches[i].y = x, y

	switch len(t.touches) {
	case 1:
		return t.zoom.Pan(dx, dy, hasSelection)
	case 2:
		return t.pinch()
	default:
		return false
	}
}

// Track records a finger's position without panning or zooming. Used while the
// finger drives an element press instead of the view.
func (t *TouchController) Track(id int, x, y float64) {
	if i := t.index(id); i >= 0 {
		t.touches[i].x, t.touches[i].y = x, y
	}
}

// End removes a finger. Pinch state is dropped; the remaining finger starts fresh.
func (t *TouchController) End(id int) {
	i := t.index(id)
	if i < 0 {
		return
	}
	t.touches = append(t.touches[:i], t.touches[i+1:]...)
	t.prevDist = 0
}

func (t *TouchController) pinch() bool {
	dist := t.distance()
	prev := t.prevDist
	t.prevDist = dist
	if prev <= 0 || dist <= 0 {
		return false
	}
	mx := (t.touches[0].x + t.touches[1].x) / 2
	my := (t.touches[0].y + t.touches[1].y) / 2
	ratio := dist / prev
	switch {
	case ratio > 1:
		return t.zoom.ZoomIn(mx, my)
	case ratio < 1:
		return t.zoom.ZoomOut(mx, my)
	}
	return false
}

func (t *TouchController) distance() float64 {
	if len(t.touches) < 2 {
		return 0
	}
	return math.Hypot(t.touches[1].x-t.touches[0].x, t.touches[1].y-t.touches[0].y)
}

func (t *TouchController) index(id int) int {
	for i, tp := range t.touches {
		if tp.id == id {
			return i
		}
	}
	return -1
}
