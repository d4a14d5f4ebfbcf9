// File: game/controller.go
package game

import (
	"github.com/lguibr/pongai/utils"
	"github.com/pkg/errors"
)

// Controller picks the next action for one paddle from the latest observation.
type Controller interface {
	ChooseAction(obs Observation) Action
}

// ControllerFunc adapts a plain function to the Controller interface.
type ControllerFunc func(obs Observation) Action

func (f ControllerFunc) ChooseAction(obs Observation) Action { return f(obs) }

// RandomController ignores the observation and picks uniformly among the three actions.
type RandomController struct {
	rng utils.RandomSource
}

func NewRandomController(rng utils.RandomSource) *RandomController {
	if rng == nil {
		rng = utils.NewRandomSource()
	}
	return &RandomController{rng: rng}
}

func (c *RandomController) ChooseAction(Observation) Action {
	return Action(c.rng.Intn(3) - 1)
}

// TrackingController moves its paddle toward the ball's vertical center and
// holds still inside a dead zone so it does not jitter around the target.
type TrackingController struct {
	Side       string
	DeadZone   float64 // Normalized distance treated as aligned
	BallOffset float64 // Normalized half ball size, turns ball top into ball center
}

func NewTrackingController(world utils.WorldConfig, side string) *TrackingController {
	return &TrackingController{
		Side:       side,
		DeadZone:   world.PaddleSpeed / world.Height,
		BallOffset: world.BallSize / 2 / world.Height,
	}
}

func (c *TrackingController) ChooseAction(obs Observation) Action {
	paddle := obs[ObsRightPaddle]
	if c.Side == utils.SideLeft {
		paddle = obs[ObsLeftPaddle]
	}

	diff := obs[ObsBallY] + c.BallOffset - paddle
	switch {
	case diff < -c.DeadZone:
		return ActionUp
	case diff > c.DeadZone:
		return ActionDown
	}
	return ActionStay
}

// NewController builds a named controller for the given side.
func NewController(name string, world utils.WorldConfig, side string, rng utils.RandomSource) (Controller, error) {
	switch name {
	case utils.ControllerRandom:
		return NewRandomController(rng), nil
	case utils.ControllerTracking:
		return NewTrackingController(world, side), nil
	}
	return nil, errors.Errorf("unknown controller %q", name)
}
