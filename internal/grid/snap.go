// Package grid implements the reference grid overlay and snap-to-grid quantization.
package grid

import "math"

// Snapping defaults.
const (
	DefaultResolution     = 25
	DefaultSnapRange      = 2
	DefaultAngleStep      = 45
	DefaultAngleThreshold = 5
)

// Snapper quantizes geometry after a transform is committed.
type Snapper struct {
	Resolution     float64 // grid spacing
	SnapRange      float64 // max distance to a grid line that still snaps
	AngleStep      float64 // rotation snaps to multiples of this
	AngleThreshold float64 // max distance to an angle multiple that still snaps
	MinDimension   float64 // resized width/height never go below this
}

// NewSnapper returns a snapper with the default tolerances for a resolution.
func NewSnapper(resolution float64) *Snapper {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	return &Snapper{
		Resolution:     resolution,
		SnapRange:      DefaultSnapRange,
		AngleStep:      DefaultAngleStep,
		AngleThreshold: DefaultAngleThreshold,
		MinDimension:   resolution,
	}
}

// Coord snaps one coordinate to the nearest grid line when within SnapRange.
func (s *Snapper) Coord(v float64) float64 {
	res := s.Resolution
	if res <= 0 {
		return v
	}
	r := math.Mod(v, res)
	if r < 0 {
		r += res
	}
	switch {
	case r <= s.SnapRange:
		return v - r
	case res-r <= s.SnapRange:
		return v + (res - r)
	default:
		return v
	}
}

// Angle snaps a rotation to the nearest AngleStep multiple when within AngleThreshold.
// The result is normalized into [0, 360).
func (s *Snapper) Angle(deg float64) float64 {
	if s.AngleStep > 0 {
		nearest := math.Round(deg/s.AngleStep) * s.AngleStep
		if math.Abs(deg-nearest) <= s.AngleThreshold {
			deg = nearest
		}
	}
	return normalizeAngle(deg)
}

// Size quantizes a dimension to the nearest multiple of Resolution, floored at MinDimension.
func (s *Snapper) Size(v float64) float64 {
	q := v
	if s.Resolution > 0 {
		q = math.Round(v/s.Resolution) * s.Resolution
	}
	if q < s.MinDimension {
		q = s.MinDimension
	}
	return q
}

// SizeFor quantizes a dimension whose natural size is natural. Axes thinner than
// MinDimension (a wall's thickness) step in multiples of their natural size and never
// drop below it; every other axis behaves like Size.
func (s *Snapper) SizeFor(v, natural float64) float64 {
	if natural <= 0 || natural >= s.MinDimension {
		return s.Size(v)
	}
	q := math.Round(v/natural) * natural
	if q < natural {
		q = natural
	}
	return q
}

// Position snaps both axes of a point independently.
func (s *Snapper) Position(x, y float64) (float64, float64) {
	return s.Coord(x), s.Coord(y)
}

func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
