// File: game/termination.go
package game

// TerminationPolicy decides after every step whether the episode is over.
type TerminationPolicy interface {
	Terminated(sim *Simulation) bool
}

// NeverTerminate keeps the episode running forever. It is the default.
type NeverTerminate struct{}

func (NeverTerminate) Terminated(*Simulation) bool { return false }

// ScoreThreshold ends the episode once either side reaches Points.
type ScoreThreshold struct {
	Points int
}

func (s ScoreThreshold) Terminated(sim *Simulation) bool {
	left, right := sim.Scores()
	return left >= s.Points || right >= s.Points
}

// NewTerminationPolicy returns ScoreThreshold for a positive winning score
// and NeverTerminate otherwise.
func NewTerminationPolicy(winningScore int) TerminationPolicy {
	if winningScore > 0 {
		return ScoreThreshold{Points: winningScore}
	}
	return NeverTerminate{}
}
