// File: game/test_utils.go
package game

import (
	"testing"
	"time"

	"github.com/lguibr/pongai/bollywood"
	"github.com/lguibr/pongai/utils"
)

// NewTestConfig returns defaults with a tick period long enough that tests
// drive the SimulationActor with explicit GameTick messages.
func NewTestConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.TickPeriod = time.Hour
	cfg.AgentEnabled = false
	return cfg
}

// AskState fetches the SimulationActor state, failing the test on error.
func AskState(t *testing.T, engine *bollywood.Engine, pid *bollywood.PID) StateResponse {
	t.Helper()
	reply, err := engine.Ask(pid, GetStateRequest{}, time.Second)
	if err != nil {
		t.Fatalf("GetStateRequest failed: %v", err)
	}
	state, ok := reply.(StateResponse)
	if !ok {
		t.Fatalf("unexpected reply type %T", reply)
	}
	return state
}

// WaitForCondition polls condition until it holds or timeout expires.
func WaitForCondition(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return condition()
}
