package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/pongai/bollywood"
	"github.com/lguibr/pongai/game"
	"github.com/lguibr/pongai/server"
	"github.com/lguibr/pongai/utils"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := utils.LoadEnv(); err != nil {
		utils.Fail("%v", err)
		os.Exit(1)
	}
	cfg, err := utils.LoadConfig(utils.ConfigPathFromEnv())
	if err != nil {
		utils.Fail("%v", err)
		os.Exit(1)
	}
	if cfg, err = utils.ApplyEnv(cfg); err != nil {
		utils.Fail("%v", err)
		os.Exit(1)
	}

	// Shared by the controller and the simulation.
	rng := utils.NewLockedSource(utils.NewRandomSource())
	controller, err := game.NewController(cfg.Controller, cfg.World, cfg.AgentSide, rng)
	if err != nil {
		utils.Fail("%v", err)
		os.Exit(1)
	}

	engine := bollywood.NewEngine()
	simulationPID := engine.Spawn(bollywood.NewProps(game.NewSimulationActorProducer(engine, cfg, controller, rng)))
	if simulationPID == nil {
		utils.Fail("failed to spawn the simulation actor")
		os.Exit(1)
	}

	srv := server.New(engine, simulationPID, cfg)
	httpServer := &http.Server{
		Addr:    cfg.Address,
		Handler: srv.Router(),
	}

	go func() {
		utils.Banner("Pongai listening on %s (controller %s on %s, agent %v)", cfg.Address, cfg.Controller, cfg.AgentSide, cfg.AgentEnabled)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Fail("server stopped: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	utils.Banner("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// Websocket handlers are hijacked and outlive Shutdown; close them explicitly.
	srv.CloseAll()
	if err := httpServer.Shutdown(ctx); err != nil {
		utils.Warn("http shutdown: %v", err)
	}
	engine.Shutdown(shutdownTimeout)
	utils.Banner("Bye.")
}
