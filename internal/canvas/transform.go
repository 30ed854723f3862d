package canvas

import "github.com/hajimehoshi/ebiten/v2"

// Transform owns the viewport pan offset and zoom factor. Pan is the
// screen-space position of the world origin in pixels; zoom is the uniform
// world-to-screen scale. Zoom stays within [minZoom, maxZoom] after every
// mutation; pan is unbounded.
type Transform struct {
	panX, panY float64
	zoom       float64
	minZoom    float64
	maxZoom    float64
}

// NewTransform starts at pan (0,0) with the initial zoom clamped into range.
func NewTransform(cfg Config) *Transform {
	return &Transform{
		zoom:    clamp(cfg.InitialZoom, cfg.MinZoom, cfg.MaxZoom),
		minZoom: cfg.MinZoom,
		maxZoom: cfg.MaxZoom,
	}
}

// Pan returns the current pan offset in screen pixels.
func (t *Transform) Pan() (x, y float64) { return t.panX, t.panY }

// Zoom returns the current world-to-screen scale factor.
func (t *Transform) Zoom() float64 { return t.zoom }

// ApplyPan translates the view by a screen-space delta. The world is
// unbounded, so there is nothing to clamp.
func (t *Transform) ApplyPan(dx, dy float64) {
	t.panX += dx
	t.panY += dy
}

// ApplyZoomAt scales the zoom by factor while keeping the world point under
// the screen point (sx, sy) visually fixed. The cursor position is converted
// to world space with the old zoom, then pan is recomputed so the same world
// point maps back to the cursor under the new zoom. When the factor pushes
// past a bound the clamped zoom equals the old one and the recomputed pan is
// a fixed point, so repeated calls at a bound change nothing.
func (t *Transform) ApplyZoomAt(sx, sy, factor float64) {
	newZoom := clamp(t.zoom*factor, t.minZoom, t.maxZoom)
	wx := (sx - t.panX) / t.zoom
	wy := (sy - t.panY) / t.zoom
	t.panX = sx - wx*newZoom
	t.panY = sy - wy*newZoom
	t.zoom = newZoom
}

// ScreenToWorld maps a screen pixel to world coordinates under the current
// transform.
func (t *Transform) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return (sx - t.panX) / t.zoom, (sy - t.panY) / t.zoom
}

// WorldToScreen maps a world point to screen pixels under the current
// transform.
func (t *Transform) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx*t.zoom + t.panX, wy*t.zoom + t.panY
}

// Reset restores pan (0,0) and the given zoom, clamped into range.
func (t *Transform) Reset(zoom float64) {
	t.panX, t.panY = 0, 0
	t.zoom = clamp(zoom, t.minZoom, t.maxZoom)
}

// GeoM returns the affine transform for the item layer: uniform scale about
// the top-left origin, then translate by pan.
func (t *Transform) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(t.zoom, t.zoom)
	m.Translate(t.panX, t.panY)
	return m
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
