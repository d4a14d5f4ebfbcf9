package server

import (
	"fmt"
	"io"
	"net"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/pongai/game"
	"github.com/lguibr/pongai/render"
	"github.com/lguibr/pongai/utils"
	"github.com/pkg/errors"
	"golang.org/x/net/websocket"
)

// readTimeout closes sessions that neither sent a command nor received an
// update for that long. Every delivered update pushes the deadline back, so
// spectators stay connected while the simulation runs.
const readTimeout = 90 * time.Second

// sessionEncoder writes outbound messages of one session in its wire format.
type sessionEncoder interface {
	Assigned(msg game.SessionAssigned) error
	Encode(msg interface{}) error
}

// runSession registers the connection with the SimulationActor, forwards
// inbound commands and streams updates until either side hangs up.
func (s *Server) runSession(ws *websocket.Conn, side string, encoder sessionEncoder) {
	sessionID := uuid.NewString()
	connAddr := "unknown"
	if ws.Request() != nil {
		connAddr = ws.Request().RemoteAddr
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in session %s (%s): %v\nStack trace:\n%s\n", sessionID, connAddr, r, string(debug.Stack()))
		}
		s.closeConnection(ws)
	}()

	updates := make(chan interface{}, s.cfg.SubscriberBuffer)
	if _, err := s.engine.Ask(s.simulationPID, game.Subscribe{ID: sessionID, Updates: updates}, askTimeout); err != nil {
		fmt.Printf("Session %s (%s): %v\n", sessionID, connAddr, errors.Wrap(err, "could not subscribe"))
		return
	}
	s.openConnection(ws, sessionID)
	fmt.Printf("Session %s (%s): Connected as %s.\n", sessionID, connAddr, side)

	defer func() {
		if side != utils.SideSpectator {
			s.engine.Send(s.simulationPID, game.SetPaddleAction{Side: side, Action: game.ActionStay}, nil)
		}
		s.engine.Send(s.simulationPID, game.Unsubscribe{ID: sessionID}, nil)
		fmt.Printf("Session %s (%s): Disconnected.\n", sessionID, connAddr)
	}()

	if err := encoder.Assigned(game.NewSessionAssigned(sessionID, side)); err != nil {
		fmt.Printf("Session %s (%s): %v\n", sessionID, connAddr, errors.Wrap(err, "could not send session assignment"))
		return
	}

	done := make(chan struct{})
	writeLoopExited := make(chan struct{})
	go s.writeLoop(ws, sessionID, encoder, updates, done, writeLoopExited)

	s.readLoop(ws, sessionID, side)

	close(done)
	_ = ws.Close()
	<-writeLoopExited
}

// writeLoop is the only writer of ws once the session is assigned.
func (s *Server) writeLoop(ws *websocket.Conn, sessionID string, encoder sessionEncoder, updates <-chan interface{}, done <-chan struct{}, exited chan<- struct{}) {
	defer close(exited)
	for {
		select {
		case <-done:
			return
		case msg := <-updates:
			if err := encoder.Encode(msg); err != nil {
				if !isClosedErr(err) {
					fmt.Printf("Session %s: Failed to write update: %v\n", sessionID, err)
				}
				// Unblocks the read loop.
				_ = ws.Close()
				return
			}
			s.extendDeadline(ws)
		}
	}
}

// readLoop turns inbound ClientCommands into SimulationActor messages.
// Invalid commands are logged and skipped.
func (s *Server) readLoop(ws *websocket.Conn, sessionID, side string) {
	for {
		s.extendDeadline(ws)
		var command game.ClientCommand
		err := websocket.JSON.Receive(ws, &command)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				fmt.Printf("Session %s: Idle for %v. Assuming disconnect.\n", sessionID, s.idleTimeout)
			} else if !isClosedErr(err) {
				fmt.Printf("Session %s: Error receiving: %v\n", sessionID, err)
			}
			return
		}

		msg, err := command.ToActorMessage(side)
		if err != nil {
			fmt.Printf("Session %s: Ignoring command %+v: %v\n", sessionID, command, err)
			continue
		}
		s.engine.Send(s.simulationPID, msg, nil)
	}
}

// extendDeadline is safe to call from the write loop while readLoop is blocked.
func (s *Server) extendDeadline(ws *websocket.Conn) {
	_ = ws.SetReadDeadline(time.Now().Add(s.idleTimeout))
}

func isClosedErr(err error) bool {
	if err == io.EOF {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "use of closed network connection") ||
		strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset by peer") ||
		strings.Contains(errStr, "EOF")
}

// jsonEncoder sends every message as a JSON text frame.
type jsonEncoder struct {
	ws *websocket.Conn
}

func newJSONEncoder(ws *websocket.Conn) sessionEncoder {
	return &jsonEncoder{ws: ws}
}

func (e *jsonEncoder) Assigned(msg game.SessionAssigned) error {
	return websocket.JSON.Send(e.ws, msg)
}

func (e *jsonEncoder) Encode(msg interface{}) error {
	return websocket.JSON.Send(e.ws, msg)
}

// asciiEncoder renders one frame every `every` steps and prints game over as text.
type asciiEncoder struct {
	ws         *websocket.Conn
	canvas     *game.Canvas
	resolution int
	every      int64
}

func newASCIIEncoder(ws *websocket.Conn, canvas *game.Canvas, resolution, every int) sessionEncoder {
	if every <= 0 {
		every = 1
	}
	return &asciiEncoder{ws: ws, canvas: canvas, resolution: resolution, every: int64(every)}
}

func (e *asciiEncoder) Assigned(msg game.SessionAssigned) error {
	return websocket.Message.Send(e.ws, fmt.Sprintf("session %s, playing %s\n", msg.SessionID, msg.Side))
}

func (e *asciiEncoder) Encode(msg interface{}) error {
	switch m := msg.(type) {
	case game.StepUpdate:
		if m.Step%e.every != 0 {
			return nil
		}
		return websocket.Message.Send(e.ws, render.Frame(e.canvas, m, e.resolution))
	case game.GameOver:
		winner := m.Winner
		if winner == "" {
			winner = "nobody"
		}
		return websocket.Message.Send(e.ws, fmt.Sprintf("GAME OVER episode %d: %d-%d, %s wins\n", m.Episode, m.LeftScore, m.RightScore, winner))
	}
	return nil
}
