// File: utils/config.go
package utils

import (
	"math"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// WorldConfig holds the fixed rules of the world: dimensions and physics.
// It is copied into every entity at construction and never mutated afterwards.
type WorldConfig struct {
	// Field
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Paddles
	PaddleWidth  float64 `json:"paddleWidth"`
	PaddleHeight float64 `json:"paddleHeight"`
	PaddleSpeed  float64 `json:"paddleSpeed"` // Vertical distance per step
	PaddleInset  float64 `json:"paddleInset"` // Distance between a paddle and its goal line

	// Ball
	BallSize       float64 `json:"ballSize"`
	BallBaseSpeed  float64 `json:"ballBaseSpeed"`  // Per-axis speed at spawn and after every point
	BallMaxSpeed   float64 `json:"ballMaxSpeed"`   // Per-axis hard cap after a paddle hit
	BallSpeedUp    float64 `json:"ballSpeedUp"`    // Horizontal multiplier applied on each paddle hit
	MaxBounceAngle float64 `json:"maxBounceAngle"` // Radians, deflection for a hit at the paddle tip
}

// Config holds all configurable parameters of the process.
// World is not read from config files: the rules are fixed.
type Config struct {
	World WorldConfig `json:"world" toml:"-"`

	// Transport
	Address          string `json:"address" toml:"address"`
	SubscriberBuffer int    `json:"subscriberBuffer" toml:"subscriber_buffer"` // Per-connection outbound queue

	// Timing
	TickPeriod time.Duration `json:"tickPeriod" toml:"tick_period"` // Time between simulation steps

	// Agent
	AgentEnabled bool   `json:"agentEnabled" toml:"agent_enabled"` // Agent drives AgentSide at start
	AgentSide    string `json:"agentSide" toml:"agent_side"`       // "left" or "right"
	Controller   string `json:"controller" toml:"controller"`      // "random" or "tracking"

	// Episodes
	WinningScore         int  `json:"winningScore" toml:"winning_score"`                   // 0 disables termination
	RestartOnTermination bool `json:"restartOnTermination" toml:"restart_on_termination"` // Start a new episode after game over

	// Rendering
	RenderScale     int `json:"renderScale" toml:"render_scale"`         // World units per rendered cell
	ASCIIResolution int `json:"asciiResolution" toml:"ascii_resolution"` // Columns of the ASCII frame
	ASCIIEvery      int `json:"asciiEvery" toml:"ascii_every"`           // Ticks between ASCII frames
}

// DefaultWorld returns the fixed world rules.
func DefaultWorld() WorldConfig {
	return WorldConfig{
		Width:  800,
		Height: 600,

		PaddleWidth:  15,
		PaddleHeight: 100,
		PaddleSpeed:  5,
		PaddleInset:  20,

		BallSize:       15,
		BallBaseSpeed:  5,
		BallMaxSpeed:   15,
		BallSpeedUp:    1.1,
		MaxBounceAngle: 5 * math.Pi / 12, // 75 degrees
	}
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		World: DefaultWorld(),

		Address:          DefaultAddress,
		SubscriberBuffer: 64,

		TickPeriod: time.Second / DefaultFPS,

		AgentEnabled: true,
		AgentSide:    SideRight,
		Controller:   ControllerRandom,

		WinningScore:         0,
		RestartOnTermination: true,

		RenderScale:     10, // 80x60 cells
		ASCIIResolution: 80,
		ASCIIEvery:      4,
	}
}

// LoadConfig decodes a TOML file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "could not decode config file (%s)", path)
	}
	cfg.World = DefaultWorld()

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config file (%s)", path)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used to run a simulation.
func (c Config) Validate() error {
	if c.Address == "" {
		return errors.New("address must not be empty")
	}
	if c.TickPeriod <= 0 {
		return errors.Errorf("tick period must be positive, got %s", c.TickPeriod)
	}
	if c.AgentSide != SideLeft && c.AgentSide != SideRight {
		return errors.Errorf("agent side must be %q or %q, got %q", SideLeft, SideRight, c.AgentSide)
	}
	if c.Controller != ControllerRandom && c.Controller != ControllerTracking {
		return errors.Errorf("unknown controller %q", c.Controller)
	}
	if c.WinningScore < 0 {
		return errors.Errorf("winning score must be >= 0, got %d", c.WinningScore)
	}
	if c.SubscriberBuffer <= 0 {
		return errors.Errorf("subscriber buffer must be positive, got %d", c.SubscriberBuffer)
	}
	if c.RenderScale <= 0 || c.ASCIIResolution <= 0 || c.ASCIIEvery <= 0 {
		return errors.New("render scale, ascii resolution and ascii frequency must be positive")
	}
	return nil
}
