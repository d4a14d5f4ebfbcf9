package server

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/lguibr/pongai/bollywood"
	"github.com/lguibr/pongai/game"
	"github.com/lguibr/pongai/utils"
	"golang.org/x/net/websocket"
)

// askTimeout bounds every request/reply exchange with the SimulationActor.
const askTimeout = 2 * time.Second

// Server exposes one SimulationActor over HTTP and WebSocket.
type Server struct {
	engine        *bollywood.Engine
	simulationPID *bollywood.PID
	cfg           utils.Config
	canvas        *game.Canvas
	idleTimeout   time.Duration

	mu    sync.Mutex
	conns map[*websocket.Conn]string // Open connection -> session id
}

func New(engine *bollywood.Engine, simulationPID *bollywood.PID, cfg utils.Config) *Server {
	return &Server{
		engine:        engine,
		simulationPID: simulationPID,
		cfg:           cfg,
		canvas:        game.NewCanvas(cfg.World, cfg.RenderScale),
		idleTimeout:   readTimeout,
		conns:         make(map[*websocket.Conn]string),
	}
}

// Router wires every route and wraps them with an Apache combined access log.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", s.HandleGetState()).Methods(http.MethodGet)
	router.HandleFunc("/health", s.HandleHealth()).Methods(http.MethodGet)
	router.HandleFunc("/subscribe", s.HandleSubscribe()).Methods(http.MethodGet)
	router.HandleFunc("/ascii", s.HandleASCII()).Methods(http.MethodGet)
	return handlers.CombinedLoggingHandler(os.Stdout, router)
}

func (s *Server) openConnection(ws *websocket.Conn, sessionID string) {
	s.mu.Lock()
	s.conns[ws] = sessionID
	s.mu.Unlock()
}

func (s *Server) closeConnection(ws *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, ws)
	s.mu.Unlock()
	_ = ws.Close()
}

// Connections returns the number of open WebSocket sessions.
func (s *Server) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// CloseAll closes every open WebSocket. Their read loops exit and clean up.
func (s *Server) CloseAll() {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for ws := range s.conns {
		conns = append(conns, ws)
	}
	s.mu.Unlock()

	if len(conns) > 0 {
		fmt.Printf("Server: Closing %d open connections.\n", len(conns))
	}
	for _, ws := range conns {
		_ = ws.Close()
	}
}
