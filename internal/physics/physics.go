// Package physics provides the axis-aligned geometry used for collision detection.
package physics

// Rect is an axis-aligned bounding box. X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle with the given top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects reports whether two rectangles overlap.
// Rectangles that only share an edge do not overlap.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}
