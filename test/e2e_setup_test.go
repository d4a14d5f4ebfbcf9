// File: test/e2e_setup_test.go
package test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/pongai/bollywood"
	"github.com/lguibr/pongai/game"
	"github.com/lguibr/pongai/server"
	"github.com/lguibr/pongai/utils"
	"github.com/stretchr/testify/require"
)

// E2ESetupResult holds the results of the setup function.
type E2ESetupResult struct {
	Engine        *bollywood.Engine
	SimulationPID *bollywood.PID
	App           *server.Server
	Server        *httptest.Server
	BaseURL       string
	WsURL         string
	Origin        string
	Cfg           utils.Config
}

// SetupE2ETest starts an engine, a ticking SimulationActor and a test HTTP server.
func SetupE2ETest(t *testing.T, cfg utils.Config, controller game.Controller) E2ESetupResult {
	t.Helper()

	engine := bollywood.NewEngine()
	simulationPID := engine.Spawn(bollywood.NewProps(game.NewSimulationActorProducer(engine, cfg, controller, utils.NewSeededSource(1))))
	require.NotNil(t, simulationPID, "SimulationActor PID should not be nil")

	app := server.New(engine, simulationPID, cfg)
	s := httptest.NewServer(app.Router())

	return E2ESetupResult{
		Engine:        engine,
		SimulationPID: simulationPID,
		App:           app,
		Server:        s,
		BaseURL:       s.URL,
		WsURL:         "ws" + strings.TrimPrefix(s.URL, "http"),
		Origin:        "http://localhost/", // Standard origin for local tests
		Cfg:           cfg,
	}
}

// TeardownE2ETest closes sockets, the server and the engine.
func TeardownE2ETest(t *testing.T, setupResult E2ESetupResult, shutdownTimeout time.Duration) {
	t.Helper()
	if setupResult.App != nil {
		setupResult.App.CloseAll()
	}
	if setupResult.Server != nil {
		setupResult.Server.Close()
	}
	if setupResult.Engine != nil {
		setupResult.Engine.Shutdown(shutdownTimeout)
	}
}

// fastConfig ticks quickly so end-to-end tests see many steps per second.
func fastConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.TickPeriod = 2 * time.Millisecond
	cfg.AgentEnabled = false
	cfg.SubscriberBuffer = 256
	return cfg
}
