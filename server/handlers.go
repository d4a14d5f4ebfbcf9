// File: server/handlers.go
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/lguibr/pongai/game"
	"github.com/lguibr/pongai/utils"
	"github.com/pkg/errors"
	"golang.org/x/net/websocket"
)

// HandleGetState provides the current simulation state via HTTP GET by querying the SimulationActor.
func (s *Server) HandleGetState() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				fmt.Printf("PANIC recovered in HandleGetState: %v\nStack trace:\n%s\n", rec, string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		state, err := s.askState()
		if err != nil {
			fmt.Printf("HandleGetState: %v\n", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}

// HandleHealth reports whether the SimulationActor answers.
func (s *Server) HandleHealth() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.askState(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// HandleSubscribe streams StepUpdate and GameOver messages as JSON.
func (s *Server) HandleSubscribe() func(w http.ResponseWriter, r *http.Request) {
	return s.upgrade(newJSONEncoder)
}

// HandleASCII streams rendered ASCII frames for terminal clients.
func (s *Server) HandleASCII() func(w http.ResponseWriter, r *http.Request) {
	return s.upgrade(func(ws *websocket.Conn) sessionEncoder {
		return newASCIIEncoder(ws, s.canvas, s.cfg.ASCIIResolution, s.cfg.ASCIIEvery)
	})
}

// upgrade validates the side before switching protocols, so a bad request gets a plain 400.
func (s *Server) upgrade(newEncoder func(ws *websocket.Conn) sessionEncoder) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		side, err := parseSide(r.URL.Query().Get("side"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		websocket.Handler(func(ws *websocket.Conn) {
			s.runSession(ws, side, newEncoder(ws))
		}).ServeHTTP(w, r)
	}
}

func (s *Server) askState() (game.StateResponse, error) {
	reply, err := s.engine.Ask(s.simulationPID, game.GetStateRequest{}, askTimeout)
	if err != nil {
		return game.StateResponse{}, errors.Wrap(err, "could not query simulation")
	}
	state, ok := reply.(game.StateResponse)
	if !ok {
		return game.StateResponse{}, errors.Errorf("unexpected state reply %T", reply)
	}
	return state, nil
}

// parseSide defaults to spectator when no side is requested.
func parseSide(side string) (string, error) {
	switch side {
	case "":
		return utils.SideSpectator, nil
	case utils.SideLeft, utils.SideRight, utils.SideSpectator:
		return side, nil
	}
	return "", errors.Errorf("unknown side %q", side)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fmt.Println("Error writing HTTP response:", err)
	}
}
