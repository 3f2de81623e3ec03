package viewport

import (
	"math"

	"github.com/genricoloni/mediastage/internal/domain"
)

const (
	MinZoom = 0.5
	MaxZoom = 2.0

	zoomOutStep = 0.9
	zoomInStep  = 1.1
)

// Viewport is the zoom-only rendering transform of the canvas surface.
// It never touches item geometry, drag math, or hit-testing, which all stay in canvas space.
type Viewport struct {
	zoom float64
}

// New returns a viewport at 1:1
func New() *Viewport {
	return &Viewport{zoom: 1}
}

// Factor returns the current zoom factor
func (v *Viewport) Factor() float64 {
	return v.zoom
}

// Zoom applies a wheel step. Without the modifier the wheel is plain scrolling and is ignored.
// Positive deltaY (scroll down) zooms out, negative zooms in. Returns whether the factor changed.
func (v *Viewport) Zoom(deltaY float64, modifier bool) bool {
	if !modifier || deltaY == 0 || math.IsNaN(deltaY) {
		return false
	}

	step := zoomInStep
	if deltaY > 0 {
		step = zoomOutStep
	}

	prev := v.zoom
	v.zoom = math.Min(math.Max(MinZoom, v.zoom*step), MaxZoom)
	return v.zoom != prev
}

// Reset returns to 1:1
func (v *Viewport) Reset() {
	v.zoom = 1
}

// Project maps a canvas point onto a rendered surface of the given size.
// The surface scales about its centre.
func (v *Viewport) Project(p domain.Point, surface domain.ScreenResolution) domain.Point {
	cx := float64(surface.Width) / 2
	cy := float64(surface.Height) / 2
	return domain.Point{
		X: cx + (p.X-cx)*v.zoom,
		Y: cy + (p.Y-cy)*v.zoom,
	}
}

// ProjectSize scales a canvas size onto the rendered surface
func (v *Viewport) ProjectSize(s domain.Size) domain.Size {
	return domain.Size{Width: s.Width * v.zoom, Height: s.Height * v.zoom}
}
