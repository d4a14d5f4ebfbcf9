// File: game/ball.go
package game

import (
	"math"

	"github.com/lguibr/pongai/utils"
)

// Ball is a square that travels with a constant velocity between bounces.
type Ball struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	SpeedX   float64 `json:"speedX"`
	SpeedY   float64 `json:"speedY"`
	MaxSpeed float64 `json:"maxSpeed"`

	baseSpeed      float64
	speedUp        float64
	maxBounceAngle float64
	worldWidth     float64
	worldHeight    float64
	rng            utils.RandomSource
}

// NewBall creates a ball at the center of the world with a random diagonal velocity.
func NewBall(world utils.WorldConfig, rng utils.RandomSource) *Ball {
	if rng == nil {
		panic("NewBall: random source cannot be nil")
	}
	b := &Ball{
		Size:           world.BallSize,
		MaxSpeed:       world.BallMaxSpeed,
		baseSpeed:      world.BallBaseSpeed,
		speedUp:        world.BallSpeedUp,
		maxBounceAngle: world.MaxBounceAngle,
		worldWidth:     world.Width,
		worldHeight:    world.Height,
		rng:            rng,
	}
	b.Reset()
	return b
}

// Move advances the ball by its velocity. Position is not clamped: leaving
// the field horizontally is how a point is scored.
func (b *Ball) Move() {
	b.X += b.SpeedX
	b.Y += b.SpeedY
}

// BounceOffWalls flips the vertical speed while the ball touches the top or
// bottom wall. It reports whether a flip happened.
func (b *Ball) BounceOffWalls() bool {
	rect := b.Rect()
	if rect.Top() <= 0 || rect.Bottom() >= b.worldHeight {
		b.SpeedY = -b.SpeedY
		return true
	}
	return false
}

// Intersects reports whether the ball and the paddle overlap. Touching edges do not count.
func (b *Ball) Intersects(p *Paddle) bool {
	return b.Rect().Overlaps(p.Rect())
}

// BounceOffPaddle sends the ball back away from the paddle when they overlap.
// The horizontal speed grows by the speed-up factor first, then the vertical
// speed is derived from the new horizontal speed and the hit offset:
// a hit at the paddle center leaves the ball flat, a hit at the tip deflects
// it by up to the max bounce angle. Both axes are capped at MaxSpeed.
func (b *Ball) BounceOffPaddle(p *Paddle) bool {
	if !b.Intersects(p) {
		return false
	}

	relativeIntersect := p.Centerline() - b.Rect().CenterY()
	normalized := relativeIntersect / (p.Height / 2)
	bounceAngle := normalized * b.maxBounceAngle

	if b.X < b.worldWidth/2 {
		b.SpeedX = math.Abs(b.SpeedX) * b.speedUp
	} else {
		b.SpeedX = -math.Abs(b.SpeedX) * b.speedUp
	}
	b.SpeedY = -b.SpeedX * math.Sin(bounceAngle)

	b.SpeedX = utils.ClampMagnitude(b.SpeedX, b.MaxSpeed)
	b.SpeedY = utils.ClampMagnitude(b.SpeedY, b.MaxSpeed)
	return true
}

// Reset re-centers the ball and gives each axis an independent random sign.
func (b *Ball) Reset() {
	b.X = utils.CenteredOffset(b.worldWidth, b.Size)
	b.Y = utils.CenteredOffset(b.worldHeight, b.Size)
	b.SpeedX = b.baseSpeed * utils.RandomSign(b.rng)
	b.SpeedY = b.baseSpeed * utils.RandomSign(b.rng)
}

// Position returns the top-left corner of the ball.
func (b *Ball) Position() (float64, float64) {
	return b.X, b.Y
}

// Rect is the ball bounding box used for collision queries.
func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Size, Height: b.Size}
}
