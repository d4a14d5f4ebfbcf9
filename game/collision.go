// File: game/collision.go
package game

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Overlaps reports whether the interiors of r and other intersect.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.Left() < other.Right() &&
		other.Left() < r.Right() &&
		r.Top() < other.Bottom() &&
		other.Top() < r.Bottom()
}
