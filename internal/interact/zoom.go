// Package interact handles zooming and panning of the floor viewport and the
// host-neutral input events fed to the event managers.
package interact

import "math"

// Viewport manages the view transformation (pan and zoom) of a floor inside its container.
type Viewport struct {
	ContainerWidth  float64 // screen pixels
	ContainerHeight float64 // screen pixels, 0 means "as tall as the fitted floor"
	FloorWidth      float64 // scene units
	FloorHeight     float64 // scene units

	Zoom    float64 // screen pixels per scene unit
	OffsetX float64 // pan offset in screen pixels
	OffsetY float64
}

// NewViewport creates a viewport fitted to the container width.
func NewViewport(containerW, containerH, floorW, floorH float64) *Viewport {
	v := &Viewport{
		ContainerWidth:  containerW,
		ContainerHeight: containerH,
		FloorWidth:      floorW,
		FloorHeight:     floorH,
	}
	v.Zoom = v.FitScale()
	return v
}

// FitScale is the initial scale: containerWidth / floorWidth.
func (v *Viewport) FitScale() float64 {
	if v.FloorWidth <= 0 || v.ContainerWidth <= 0 {
		return 1
	}
	return v.ContainerWidth / v.FloorWidth
}

// VisibleHeight is the container height used for clamping.
func (v *Viewport) VisibleHeight() float64 {
	if v.ContainerHeight > 0 {
		return v.ContainerHeight
	}
	return v.FloorHeight * v.FitScale()
}

// WorldToScreen converts scene coordinates to screen coordinates.
func (v *Viewport) WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	screenX = worldX*v.Zoom + v.OffsetX
	screenY = worldY*v.Zoom + v.OffsetY
	return
}

// ScreenToWorld converts screen coordinates to scene coordinates.
func (v *Viewport) ScreenToWorld(screenX, screenY float64) (worldX, worldY float64) {
	worldX = (screenX - v.OffsetX) / v.Zoom
	worldY = (screenY - v.OffsetY) / v.Zoom
	return
}

// Zoomed reports whether the view is magnified beyond the fitted scale.
func (v *Viewport) Zoomed() bool {
	return v.Zoom > v.FitScale()+1e-9
}

// Clamp keeps the visible area inside the floor's bounding box.
func (v *Viewport) Clamp() {
	v.OffsetX = clampOffset(v.OffsetX, v.FloorWidth*v.Zoom, v.ContainerWidth)
	v.OffsetY = clampOffset(v.OffsetY, v.FloorHeight*v.Zoom, v.VisibleHeight())
}

func clampOffset(offset, content, visible float64) float64 {
	if content <= visible {
		return 0
	}
	return math.Max(visible-content, math.Min(0, offset))
}

// Reset restores the fitted, unpanned view.
func (v *Viewport) Reset() {
	v.Zoom = v.FitScale()
	v.OffsetX = 0
	v.OffsetY = 0
}

// Resize changes the container or floor size and re-clamps. The zoom level relative
// to the fitted scale is preserved.
func (v *Viewport) Resize(containerW, containerH, floorW, floorH float64) {
	rel := v.Zoom / v.FitScale()
	v.ContainerWidth, v.ContainerHeight = containerW, containerH
	v.FloorWidth, v.FloorHeight = floorW, floorH
	v.Zoom = v.FitScale() * rel
	v.Clamp()
}

// ZoomConfig bounds the zoom controller.
type ZoomConfig struct {
	MaxSteps      int     // step counter range is 0..MaxSteps
	StepFactor    float64 // scale multiplier per step
	WheelDeadZone float64 // wheel deltas smaller than this are ignored
}

// DefaultZoomConfig is used when no configuration is supplied.
var DefaultZoomConfig = ZoomConfig{MaxSteps: 10, StepFactor: 1.1, WheelDeadZone: 4}

// ZoomController changes the viewport scale in bounded steps.
type ZoomController struct {
	view     *Viewport
	cfg      ZoomConfig
	step     int
	onChange func()
	onReset  func()
}

// NewZoomController creates a controller at step 0 (fitted scale).
func NewZoomController(view *Viewport, cfg ZoomConfig, onChange func()) *ZoomController {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultZoomConfig.MaxSteps
	}
	if cfg.StepFactor <= 1 {
		cfg.StepFactor = DefaultZoomConfig.StepFactor
	}
	return &ZoomController{view: view, cfg: cfg, onChange: onChange}
}

// OnReset registers a hook fired whenever the zoom is reset.
func (z *ZoomController) OnReset(fn func()) { z.onReset = fn }

// Step returns the current step counter.
func (z *ZoomController) Step() int { return z.step }

// MaxSteps returns the upper step bound.
func (z *ZoomController) MaxSteps() int { return z.cfg.MaxSteps }

// Viewport returns the controlled viewport.
func (z *ZoomController) Viewport() *Viewport { return z.view }

// ZoomIn magnifies one step around a screen anchor. It reports whether anything changed.
func (z *ZoomController) ZoomIn(anchorX, anchorY float64) bool {
	if z.step >= z.cfg.MaxSteps {
		return false
	}
	z.step++
	z.zoomAt(anchorX, anchorY)
	return true
}

// ZoomOut shrinks one step around a screen anchor. Reaching step 0 resets the view
// exactly instead of leaving a residual scale.
func (z *ZoomController) ZoomOut(anchorX, anchorY float64) bool {
	if z.step <= 0 {
		return false
	}
	z.step--
	if z.step == 0 {
		z.ResetZoom()
		return true
	}
	z.zoomAt(anchorX, anchorY)
	return true
}

// ZoomInCenter zooms in around the centre of the container.
func (z *ZoomController) ZoomInCenter() bool {
	return z.ZoomIn(z.view.ContainerWidth/2, z.view.VisibleHeight()/2)
}

// ZoomOutCenter zooms out around the centre of the container.
func (z *ZoomController) ZoomOutCenter() bool {
	return z.ZoomOut(z.view.ContainerWidth/2, z.view.VisibleHeight()/2)
}

// ResetZoom returns to step 0 and the fitted, unpanned view.
func (z *ZoomController) ResetZoom() {
	z.step = 0
	z.view.Reset()
	if z.onReset != nil {
		z.onReset()
	}
	z.changed()
}

// Wheel handles one wheel tick. Negative deltas zoom in.
func (z *ZoomController) Wheel(deltaY, x, y float64) bool {
	if math.Abs(deltaY) < z.cfg.WheelDeadZone || deltaY == 0 {
		return false
	}
	if deltaY < 0 {
		return z.ZoomIn(x, y)
	}
	return z.ZoomOut(x, y)
}

// Pan moves the view by a screen delta. Panning is only allowed while zoomed in and
// when no element is selected, so it never fights with dragging an element.
func (z *ZoomController) Pan(dx, dy float64, hasSelection bool) bool {
	if hasSelection || !z.view.Zoomed() {
		return false
	}
	z.view.OffsetX += dx
	z.view.OffsetY += dy
	z.view.Clamp()
	z.changed()
	return true
}

func (z *ZoomController) zoomAt(anchorX, anchorY float64) {
	// Keep the world point under the anchor fixed.
	worldX, worldY := z.view.ScreenToWorld(anchorX, anchorY)
	z.view.Zoom = z.view.FitScale() * math.Pow(z.cfg.StepFactor, float64(z.step))
	newX, newY := z.view.WorldToScreen(worldX, worldY)
	z.view.OffsetX += anchorX - newX
	z.view.OffsetY += anchorY - newY
	z.view.Clamp()
	z.changed()
}

func (z *ZoomController) changed() {
	if z.onChange != nil {
		z.onChange()
	}
}
