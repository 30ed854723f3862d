package canvas

import (
	"fmt"
	"image/color"
	"math"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Ebiten has a single mouse, so drags carry a fixed pointer id.
const mousePointerID = 0

// markerRadius is the item dot radius in world pixels.
const markerRadius = 5.0

var backgroundColor = color.RGBA{R: 24, G: 26, B: 30, A: 255}

// Widget is the interactive canvas: an infinite two-tier grid with
// world-positioned items on top, drag-to-pan and wheel zoom anchored at the
// cursor. It implements ebiten.Game; all state mutation happens inside
// Update, and Draw only reads.
type Widget struct {
	cfg     Config
	tf      *Transform
	gesture *Gesture
	items   []Item

	width   int
	height  int
	showHUD bool

	// Pre-rendered item dot, blitted through the view transform. Built on
	// first Draw so tests can construct a Widget without a graphics context.
	marker *ebiten.Image
}

// New validates the config and builds a widget over the given item feed.
// The items slice is read-only to the widget and must stay valid for its
// lifetime.
func New(cfg Config, items []Item, width, height int) (*Widget, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tf := NewTransform(cfg)
	return &Widget{
		cfg:     cfg,
		tf:      tf,
		gesture: NewGesture(tf, NopCapturer{}),
		items:   items,
		width:   width,
		height:  height,
		showHUD: cfg.ShowHUD,
	}, nil
}

// Transform exposes the view state for external readers (renderers, HUDs).
func (w *Widget) Transform() *Transform { return w.tf }

func (w *Widget) Update() error {
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	// Drag to pan: left mouse button.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// NopCapturer never fails, so the error is structural only.
		_ = w.gesture.PointerDown(mousePointerID, fx, fy)
	}
	w.gesture.PointerMove(fx, fy)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		w.gesture.PointerUp()
	}
	// No release event arrives if focus is lost mid-drag; cancel instead.
	if !ebiten.IsFocused() {
		w.gesture.PointerCancel()
	}

	// Wheel zoom at the cursor. Ebiten reports scroll-up as positive; the
	// gesture expects positive to mean "away from user", so negate.
	if _, wy := ebiten.Wheel(); wy != 0 {
		w.gesture.Wheel(fx, fy, -wy)
	}

	// H: toggle HUD. R: reset view. C: copy view state.
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		w.showHUD = !w.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.tf.Reset(w.cfg.InitialZoom)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		// Best effort: a headless or clipboard-less session is not an error
		// worth stopping the game loop for.
		_ = clipboard.WriteAll(w.HUDLine())
	}
	return nil
}

func (w *Widget) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	panX, panY := w.tf.Pan()
	spec := ProjectGrid(panX, panY, w.tf.Zoom(), w.cfg.CellSize, w.cfg.BigCellSize)
	DrawGrid(screen, spec)

	w.drawItems(screen)

	if w.showHUD {
		ebitenutil.DebugPrintAt(screen, w.HUDLine(), 6, 6)
	}
}

func (w *Widget) drawItems(screen *ebiten.Image) {
	if w.marker == nil {
		w.marker = newMarkerImage()
	}
	view := w.tf.GeoM()
	for i := range w.items {
		it := &w.items[i]
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(it.X-markerRadius, it.Y-markerRadius)
		op.GeoM.Concat(view)
		screen.DrawImage(w.marker, &op)

		if it.Label != "" {
			// Labels stay at native size; only their anchor follows the zoom.
			sx, sy := w.tf.WorldToScreen(it.X, it.Y)
			lx := int(sx + markerRadius*w.tf.Zoom()) + 4
			ly := int(sy) - 6
			ebitenutil.DebugPrintAt(screen, it.Label, lx, ly)
		}
	}
}

func newMarkerImage() *ebiten.Image {
	d := int(markerRadius * 2)
	img := ebiten.NewImage(d, d)
	vector.FillCircle(img, markerRadius, markerRadius, markerRadius, colornames.Orange, true)
	return img
}

// HUDLine formats the view state: rounded pan and the zoom to two decimals.
func (w *Widget) HUDLine() string {
	panX, panY := w.tf.Pan()
	return fmt.Sprintf("x: %d, y: %d • %.2fz",
		int(math.Round(panX)), int(math.Round(panY)), w.tf.Zoom())
}

func (w *Widget) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
