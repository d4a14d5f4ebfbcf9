// File: game/collision_test.go
package game

import (
	"testing"
)

func TestRect_Overlaps(t *testing.T) {
	paddle := Rect{X: 20, Y: 250, Width: 15, Height: 100}

	testCases := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"inside", Rect{X: 25, Y: 300, Width: 15, Height: 15}, true},
		{"partial from the right", Rect{X: 34, Y: 260, Width: 15, Height: 15}, true},
		{"partial from above", Rect{X: 22, Y: 240, Width: 15, Height: 15}, true},
		{"touching right edge", Rect{X: 35, Y: 300, Width: 15, Height: 15}, false},
		{"touching left edge", Rect{X: 5, Y: 300, Width: 15, Height: 15}, false},
		{"touching top edge", Rect{X: 25, Y: 235, Width: 15, Height: 15}, false},
		{"touching bottom edge", Rect{X: 25, Y: 350, Width: 15, Height: 15}, false},
		{"far away", Rect{X: 400, Y: 300, Width: 15, Height: 15}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := paddle.Overlaps(tc.other); got != tc.expected {
				t.Errorf("Overlaps(%+v) = %v, want %v", tc.other, got, tc.expected)
			}
			if got := tc.other.Overlaps(paddle); got != tc.expected {
				t.Errorf("Overlaps is not symmetric for %+v", tc.other)
			}
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Left() != 10 || r.Right() != 40 || r.Top() != 20 || r.Bottom() != 60 {
		t.Errorf("unexpected edges for %+v", r)
	}
	if r.CenterX() != 25 || r.CenterY() != 40 {
		t.Errorf("unexpected center (%v, %v)", r.CenterX(), r.CenterY())
	}
}
