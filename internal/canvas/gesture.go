package canvas

// Wheel zoom steps are fixed per tick; the delta magnitude only picks the
// direction. Scaling by the delta changes the zoom feel, so don't.
const (
	zoomInStep  = 1.1
	zoomOutStep = 0.9
)

// PointerCapturer scopes delivery of pointer events to the widget for the
// duration of a drag, so the drag survives the cursor leaving the widget
// bounds. Release may fail when the capture was already lost; callers treat
// that as recoverable.
type PointerCapturer interface {
	Capture(pointerID int) error
	Release(pointerID int) error
}

// NopCapturer is for hosts whose input system captures implicitly. Ebiten
// keeps delivering mouse state to a focused window regardless of cursor
// position, so the desktop widget uses this.
type NopCapturer struct{}

func (NopCapturer) Capture(int) error { return nil }
func (NopCapturer) Release(int) error { return nil }

// Gesture turns raw pointer and wheel events into pan/zoom mutations on a
// Transform. It is a two-state machine, idle and dragging, with wheel zoom
// orthogonal to both. Events are processed synchronously one at a time;
// there is no queuing.
type Gesture struct {
	tf  *Transform
	cap PointerCapturer

	dragging  bool
	pointerID int
	lastX     float64
	lastY     float64
}

func NewGesture(tf *Transform, cap PointerCapturer) *Gesture {
	if cap == nil {
		cap = NopCapturer{}
	}
	return &Gesture{tf: tf, cap: cap}
}

// Dragging reports whether a drag is in flight.
func (g *Gesture) Dragging() bool { return g.dragging }

// PointerDown starts a drag at the given screen position and captures the
// pointer. A second down while already dragging is ignored: one active
// pointer at a time.
func (g *Gesture) PointerDown(id int, x, y float64) error {
	if g.dragging {
		return nil
	}
	if err := g.cap.Capture(id); err != nil {
		return err
	}
	g.dragging = true
	g.pointerID = id
	g.lastX, g.lastY = x, y
	return nil
}

// PointerMove pans by the delta from the last recorded position. Moves
// while idle have no effect.
func (g *Gesture) PointerMove(x, y float64) {
	if !g.dragging {
		return
	}
	g.tf.ApplyPan(x-g.lastX, y-g.lastY)
	g.lastX, g.lastY = x, y
}

// PointerUp ends the drag and releases the capture.
func (g *Gesture) PointerUp() { g.endDrag() }

// PointerCancel ends the drag the same way PointerUp does. The pan applied
// so far stays applied.
func (g *Gesture) PointerCancel() { g.endDrag() }

func (g *Gesture) endDrag() {
	if !g.dragging {
		return
	}
	// The capture may already be gone (window lost it first); not an error.
	_ = g.cap.Release(g.pointerID)
	g.dragging = false
	g.lastX, g.lastY = 0, 0
}

// Wheel zooms at the cursor position. Positive delta means the wheel moved
// away from the user and zooms out; negative zooms in. Works the same
// whether or not a drag is in flight.
func (g *Gesture) Wheel(x, y, delta float64) {
	if delta == 0 {
		return
	}
	factor := zoomInStep
	if delta > 0 {
		factor = zoomOutStep
	}
	g.tf.ApplyZoomAt(x, y, factor)
}
