// File: test/helpers_test.go
package test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/pongai/game"
	"golang.org/x/net/websocket"
)

// ReadWsJSONMessage reads a JSON message from the WebSocket with a timeout.
func ReadWsJSONMessage(t *testing.T, ws *websocket.Conn, timeout time.Duration, v interface{}) error {
	t.Helper()
	if ws == nil {
		return errors.New("websocket connection is nil")
	}

	if err := ws.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		if errors.Is(err, net.ErrClosed) || strings.Contains(err.Error(), "use of closed network connection") {
			return io.EOF
		}
		return fmt.Errorf("failed to set read deadline: %w", err)
	}
	err := websocket.JSON.Receive(ws, v)
	_ = ws.SetReadDeadline(time.Time{})
	return err
}

// ReadServerMessage reads and decodes the next StepUpdate, GameOver or SessionAssigned.
func ReadServerMessage(t *testing.T, ws *websocket.Conn, timeout time.Duration) (interface{}, error) {
	t.Helper()
	var raw json.RawMessage
	if err := ReadWsJSONMessage(t, ws, timeout, &raw); err != nil {
		return nil, err
	}
	return game.DecodeServerMessage(raw)
}

// waitForUpdate reads messages until a StepUpdate satisfies condition.
// GameOver messages are passed to onGameOver when it is not nil.
func waitForUpdate(t *testing.T, ws *websocket.Conn, timeout time.Duration, condition func(game.StepUpdate) bool, onGameOver func(game.GameOver)) (game.StepUpdate, bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var last game.StepUpdate
	for time.Now().Before(deadline) {
		msg, err := ReadServerMessage(t, ws, time.Second)
		if err != nil {
			t.Logf("Error reading while waiting for update: %v", err)
			return last, false
		}
		switch m := msg.(type) {
		case game.StepUpdate:
			last = m
			if condition(m) {
				return m, true
			}
		case game.GameOver:
			if onGameOver != nil {
				onGameOver(m)
			}
		}
	}
	t.Logf("Timeout waiting for update condition after %v", timeout)
	return last, false
}
