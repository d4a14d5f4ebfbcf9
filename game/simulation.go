// File: game/simulation.go
package game

import (
	"github.com/lguibr/pongai/utils"
)

// Simulation owns the two paddles and the ball and advances them one step at a time.
// It has no internal locking: all calls must come from one goroutine.
type Simulation struct {
	Left  *Paddle
	Right *Paddle
	Ball  *Ball

	world           utils.WorldConfig
	termination     TerminationPolicy
	terminated      bool
	lastObservation Observation
	steps           int64
}

// Option configures a Simulation at construction.
type Option func(*Simulation)

// WithTermination replaces the default NeverTerminate policy.
func WithTermination(policy TerminationPolicy) Option {
	return func(s *Simulation) {
		if policy != nil {
			s.termination = policy
		}
	}
}

// NewSimulation creates centered paddles and a centered ball with zero scores.
// The rng drives every ball serve; opts may swap the termination policy.
func NewSimulation(world utils.WorldConfig, rng utils.RandomSource, opts ...Option) *Simulation {
	s := &Simulation{
		Left:        NewPaddle(world, utils.SideLeft),
		Right:       NewPaddle(world, utils.SideRight),
		Ball:        NewBall(world, rng),
		world:       world,
		termination: NeverTerminate{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastObservation = s.Observe()
	return s
}

// Step applies one action per paddle, moves the ball, resolves bounces and
// scoring, and returns the new observation.
// Reward is +1 when the left side scores, -1 when the right side scores.
func (s *Simulation) Step(left, right Action) StepResult {
	mustBeValid(left, "Simulation.Step left")
	mustBeValid(right, "Simulation.Step right")

	s.Left.Move(left)
	s.Right.Move(right)

	s.Ball.Move()
	s.Ball.BounceOffWalls()
	s.Ball.BounceOffPaddle(s.Left)
	s.Ball.BounceOffPaddle(s.Right)

	reward := 0
	ball := s.Ball.Rect()
	if ball.Left() <= 0 {
		s.Right.Score++
		s.Ball.Reset()
		reward = -1
	} else if ball.Right() >= s.world.Width {
		s.Left.Score++
		s.Ball.Reset()
		reward = 1
	}

	s.steps++
	s.terminated = s.termination.Terminated(s)
	s.lastObservation = s.Observe()

	return StepResult{
		Observation: s.lastObservation,
		Reward:      reward,
		Terminated:  s.terminated,
	}
}

// Observe builds the observation vector from the current state.
func (s *Simulation) Observe() Observation {
	return Observation{
		ObsLeftPaddle:  s.Left.Centerline() / s.world.Height,
		ObsRightPaddle: s.Right.Centerline() / s.world.Height,
		ObsBallX:       s.Ball.X / s.world.Width,
		ObsBallY:       s.Ball.Y / s.world.Height,
		ObsBallSpeedX:  s.Ball.SpeedX / s.Ball.MaxSpeed,
		ObsBallSpeedY:  s.Ball.SpeedY / s.Ball.MaxSpeed,
	}
}

// LastObservation is the observation returned by the latest Step, or the
// initial one before any step.
func (s *Simulation) LastObservation() Observation { return s.lastObservation }

func (s *Simulation) Scores() (left, right int) { return s.Left.Score, s.Right.Score }

func (s *Simulation) Steps() int64 { return s.steps }

func (s *Simulation) Terminated() bool { return s.terminated }

func (s *Simulation) World() utils.WorldConfig { return s.world }

// Leader returns the side with the higher score, or "" on a tie.
func (s *Simulation) Leader() string {
	left, right := s.Scores()
	switch {
	case left > right:
		return utils.SideLeft
	case right > left:
		return utils.SideRight
	}
	return ""
}

func (s *Simulation) Snapshot() Snapshot {
	left, right := s.Scores()
	return Snapshot{
		Width:      s.world.Width,
		Height:     s.world.Height,
		Left:       EntityState{Rect: s.Left.Rect()},
		Right:      EntityState{Rect: s.Right.Rect()},
		Ball:       EntityState{Rect: s.Ball.Rect(), SpeedX: s.Ball.SpeedX, SpeedY: s.Ball.SpeedY},
		LeftScore:  left,
		RightScore: right,
		Steps:      s.steps,
		Terminated: s.terminated,
	}
}
