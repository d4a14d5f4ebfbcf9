// File: game/paddle.go
package game

import (
	"fmt"

	"github.com/lguibr/pongai/utils"
)

// Paddle is a vertically movable rectangle on one side of the field.
type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`
	Score  int     `json:"score"`
	Side   string  `json:"side"`

	worldHeight float64
}

// NewPaddle places a paddle at the vertical center of its side.
// The left paddle sits PaddleInset from the left wall, the right one mirrors it.
func NewPaddle(world utils.WorldConfig, side string) *Paddle {
	var x float64
	switch side {
	case utils.SideLeft:
		x = world.PaddleInset
	case utils.SideRight:
		x = world.Width - world.PaddleInset - world.PaddleWidth
	default:
		panic(fmt.Sprintf("NewPaddle: unknown side %q", side))
	}

	return &Paddle{
		X:           x,
		Y:           utils.CenteredOffset(world.Height, world.PaddleHeight),
		Width:       world.PaddleWidth,
		Height:      world.PaddleHeight,
		Speed:       world.PaddleSpeed,
		Side:        side,
		worldHeight: world.Height,
	}
}

// Move shifts the paddle by one step in the given direction and keeps it
// inside [0, worldHeight-Height].
func (p *Paddle) Move(action Action) {
	mustBeValid(action, "Paddle.Move")

	switch action {
	case ActionUp:
		p.Y = utils.Clamp(p.Y-p.Speed, 0, p.worldHeight-p.Height)
	case ActionDown:
		p.Y = utils.Clamp(p.Y+p.Speed, 0, p.worldHeight-p.Height)
	}
}

// Centerline is the vertical center of the paddle.
func (p *Paddle) Centerline() float64 {
	return p.Y + p.Height/2
}

// Rect is the paddle bounding box used for collision queries.
func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}
