package canvas

import (
	"errors"
	"testing"
)

// recordingCapturer counts capture/release calls and can be told to fail
// releases, mimicking a capture the window already lost.
type recordingCapturer struct {
	captures   int
	releases   int
	lastID     int
	releaseErr error
}

func (c *recordingCapturer) Capture(id int) error {
	c.captures++
	c.lastID = id
	return nil
}

func (c *recordingCapturer) Release(id int) error {
	c.releases++
	return c.releaseErr
}

func TestGesture_DragRoundTrip(t *testing.T) {
	tf := testTransform()
	cap := &recordingCapturer{}
	g := NewGesture(tf, cap)

	if err := g.PointerDown(1, 50, 50); err != nil {
		t.Fatalf("pointer down: %v", err)
	}
	g.PointerMove(70, 65)
	g.PointerUp()

	px, py := tf.Pan()
	if px != 20 || py != 15 {
		t.Fatalf("pan = (%v,%v), want (20,15)", px, py)
	}
	if cap.captures != 1 || cap.releases != 1 || cap.lastID != 1 {
		t.Fatalf("capture/release = %d/%d id=%d, want 1/1 id=1",
			cap.captures, cap.releases, cap.lastID)
	}

	// A move after release must not pan again.
	g.PointerMove(200, 200)
	px, py = tf.Pan()
	if px != 20 || py != 15 {
		t.Fatalf("move while idle changed pan to (%v,%v)", px, py)
	}
}

func TestGesture_MoveWhileIdleIsNoOp(t *testing.T) {
	tf := testTransform()
	g := NewGesture(tf, nil)

	g.PointerMove(300, 400)
	if px, py := tf.Pan(); px != 0 || py != 0 {
		t.Fatalf("pan = (%v,%v), want (0,0)", px, py)
	}
	if g.Dragging() {
		t.Fatal("gesture should still be idle")
	}
}

func TestGesture_IncrementalMovesAccumulateOnce(t *testing.T) {
	tf := testTransform()
	g := NewGesture(tf, nil)

	g.PointerDown(0, 10, 10)
	g.PointerMove(15, 10)
	g.PointerMove(15, 10) // repeated position, zero delta
	g.PointerMove(25, 30)
	g.PointerUp()

	px, py := tf.Pan()
	if px != 15 || py != 20 {
		t.Fatalf("pan = (%v,%v), want (15,20)", px, py)
	}
}

func TestGesture_CancelEndsDragKeepingPan(t *testing.T) {
	tf := testTransform()
	cap := &recordingCapturer{}
	g := NewGesture(tf, cap)

	g.PointerDown(7, 0, 0)
	g.PointerMove(12, -8)
	g.PointerCancel()

	if g.Dragging() {
		t.Fatal("cancel should return to idle")
	}
	if cap.releases != 1 {
		t.Fatalf("releases = %d, want 1", cap.releases)
	}
	px, py := tf.Pan()
	if px != 12 || py != -8 {
		t.Fatalf("pan = (%v,%v), want (12,-8)", px, py)
	}
}

func TestGesture_ReleaseFailureIsSwallowed(t *testing.T) {
	tf := testTransform()
	cap := &recordingCapturer{releaseErr: errors.New("capture already lost")}
	g := NewGesture(tf, cap)

	g.PointerDown(2, 5, 5)
	g.PointerUp() // must not panic or stay dragging
	if g.Dragging() {
		t.Fatal("gesture stuck in dragging after failed release")
	}

	// And the machine is usable again afterwards.
	g.PointerDown(2, 0, 0)
	g.PointerMove(4, 4)
	if px, py := tf.Pan(); px != 4 || py != 4 {
		t.Fatalf("pan = (%v,%v), want (4,4)", px, py)
	}
}

func TestGesture_SecondDownWhileDraggingIgnored(t *testing.T) {
	tf := testTransform()
	cap := &recordingCapturer{}
	g := NewGesture(tf, cap)

	g.PointerDown(1, 10, 10)
	g.PointerDown(2, 500, 500) // single active pointer: ignored
	g.PointerMove(20, 10)

	if px, py := tf.Pan(); px != 10 || py != 0 {
		t.Fatalf("pan = (%v,%v), want (10,0) measured from the first down", px, py)
	}
	if cap.captures != 1 {
		t.Fatalf("captures = %d, want 1", cap.captures)
	}
}

func TestGesture_UpWhileIdleIsNoOp(t *testing.T) {
	cap := &recordingCapturer{}
	g := NewGesture(testTransform(), cap)
	g.PointerUp()
	g.PointerCancel()
	if cap.releases != 0 {
		t.Fatalf("releases = %d, want 0", cap.releases)
	}
}

func TestGesture_WheelSteps(t *testing.T) {
	tf := testTransform()
	g := NewGesture(tf, nil)

	g.Wheel(100, 100, 3) // away from user, magnitude irrelevant
	if !almostEqual(tf.Zoom(), 0.9) {
		t.Fatalf("zoom = %v, want 0.9 after zoom-out tick", tf.Zoom())
	}
	g.Wheel(100, 100, -0.25) // toward user
	if !almostEqual(tf.Zoom(), 0.9*1.1) {
		t.Fatalf("zoom = %v, want %v after zoom-in tick", tf.Zoom(), 0.9*1.1)
	}
	g.Wheel(100, 100, 0) // no tick
	if !almostEqual(tf.Zoom(), 0.9*1.1) {
		t.Fatalf("zoom = %v changed on zero delta", tf.Zoom())
	}
}

func TestGesture_WheelDuringDrag(t *testing.T) {
	tf := testTransform()
	g := NewGesture(tf, nil)

	g.PointerDown(0, 100, 100)
	g.Wheel(100, 100, -1)
	if !g.Dragging() {
		t.Fatal("wheel must not end the drag")
	}
	if !almostEqual(tf.Zoom(), 1.1) {
		t.Fatalf("zoom = %v, want 1.1", tf.Zoom())
	}

	// Drag deltas still apply on top of the zoom-adjusted pan.
	px, py := tf.Pan()
	g.PointerMove(110, 100)
	gx, gy := tf.Pan()
	if !almostEqual(gx, px+10) || !almostEqual(gy, py) {
		t.Fatalf("pan = (%v,%v), want (%v,%v)", gx, gy, px+10, py)
	}
}
