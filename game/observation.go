// File: game/observation.go
package game

// Observation indices, in wire order.
const (
	ObsLeftPaddle = iota
	ObsRightPaddle
	ObsBallX
	ObsBallY
	ObsBallSpeedX
	ObsBallSpeedY

	ObservationSize
)

// Observation is the normalized world state handed to controllers:
// paddle centers and ball position over the world size, ball speed over MaxSpeed.
type Observation [ObservationSize]float64

// StepResult is what a driver receives after each Simulation.Step.
type StepResult struct {
	Observation Observation `json:"observation"`
	Reward      int         `json:"reward"` // +1 left scored, -1 right scored, 0 otherwise
	Terminated  bool        `json:"terminated"`
}

// EntityState is a read-only copy of one entity's rectangle and velocity.
type EntityState struct {
	Rect
	SpeedX float64 `json:"speedX,omitempty"`
	SpeedY float64 `json:"speedY,omitempty"`
}

// Snapshot is an immutable copy of the world, safe to hand to other goroutines.
type Snapshot struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Left       EntityState `json:"left"`
	Right      EntityState `json:"right"`
	Ball       EntityState `json:"ball"`
	LeftScore  int         `json:"leftScore"`
	RightScore int         `json:"rightScore"`
	Steps      int64       `json:"steps"`
	Terminated bool        `json:"terminated"`
}
