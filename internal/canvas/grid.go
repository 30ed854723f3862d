package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// GridSpec is the screen-space tiling of the two grid tiers for the current
// pan/zoom: line pitch and the phase offset of the first line on each axis.
type GridSpec struct {
	CellPitch  float64
	BigPitch   float64
	OffsetX    float64
	OffsetY    float64
	BigOffsetX float64
	BigOffsetY float64
}

// ProjectGrid derives the tiling parameters from the current view. Pure
// function of (pan, zoom, cell sizes); callers recompute it after every
// event rather than caching.
func ProjectGrid(panX, panY, zoom, cellSize, bigCellSize float64) GridSpec {
	cellPitch := cellSize * zoom
	bigPitch := bigCellSize * zoom
	return GridSpec{
		CellPitch:  cellPitch,
		BigPitch:   bigPitch,
		OffsetX:    phase(panX, cellPitch),
		OffsetY:    phase(panY, cellPitch),
		BigOffsetX: phase(panX, bigPitch),
		BigOffsetY: phase(panY, bigPitch),
	}
}

// phase maps a pan offset into [0, pitch) with a Euclidean modulus. Pan
// goes negative as soon as the view moves right or down, and a plain
// remainder would return a negative phase there, misaligning the tiling.
func phase(pan, pitch float64) float64 {
	return math.Mod(math.Mod(pan, pitch)+pitch, pitch)
}

var (
	fineLineColor   = color.RGBA{R: 44, G: 47, B: 54, A: 255}
	coarseLineColor = colornames.Dimgray
)

// DrawGrid paints both grid tiers across the full destination image, fine
// lines first so the coarse tier reads on top.
func DrawGrid(dst *ebiten.Image, spec GridSpec) {
	w := float32(dst.Bounds().Dx())
	h := float32(dst.Bounds().Dy())
	drawTier(dst, w, h, spec.CellPitch, spec.OffsetX, spec.OffsetY, fineLineColor)
	drawTier(dst, w, h, spec.BigPitch, spec.BigOffsetX, spec.BigOffsetY, coarseLineColor)
}

func drawTier(dst *ebiten.Image, w, h float32, pitch, offX, offY float64, col color.Color) {
	if pitch <= 0 {
		return
	}
	for x := offX; x <= float64(w); x += pitch {
		vector.StrokeLine(dst, float32(x), 0, float32(x), h, 1.0, col, false)
	}
	for y := offY; y <= float64(h); y += pitch {
		vector.StrokeLine(dst, 0, float32(y), w, float32(y), 1.0, col, false)
	}
}
