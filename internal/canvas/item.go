package canvas

// Item is an externally supplied marker positioned in world space. The
// engine never mutates items; it only projects X/Y through the current
// transform when drawing.
type Item struct {
	ID    string
	X     float64
	Y     float64
	Label string
}
