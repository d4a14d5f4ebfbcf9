package bollywood

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type recordingActor struct {
	mu       sync.Mutex
	received []interface{}
}

func (a *recordingActor) Receive(ctx Context) {
	a.mu.Lock()
	a.received = append(a.received, ctx.Message())
	a.mu.Unlock()

	switch msg := ctx.Message().(type) {
	case string:
		if msg == "ping" {
			ctx.Reply("pong")
		}
		if msg == "boom" {
			panic("boom")
		}
	case int:
		ctx.Reply(msg * 2)
	}
}

func (a *recordingActor) messages() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]interface{}, len(a.received))
	copy(out, a.received)
	return out
}

func waitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
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

func TestEngine_SpawnDeliversStartedThenMessages(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	actor := &recordingActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	if pid == nil {
		t.Fatal("Spawn returned nil PID")
	}
	engine.Send(pid, "hello", nil)

	ok := waitFor(t, time.Second, func() bool { return len(actor.messages()) >= 2 })
	if !ok {
		t.Fatalf("expected 2 messages, got %v", actor.messages())
	}
	msgs := actor.messages()
	if _, isStarted := msgs[0].(Started); !isStarted {
		t.Errorf("first message should be Started, got %T", msgs[0])
	}
	if msgs[1] != "hello" {
		t.Errorf("second message = %v, want hello", msgs[1])
	}
}

func TestEngine_Ask(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(NewProps(func() Actor { return &recordingActor{} }))

	reply, err := engine.Ask(pid, 21, 500*time.Millisecond)
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if reply != 42 {
		t.Errorf("Ask reply = %v, want 42", reply)
	}

	reply, err = engine.Ask(pid, "ping", 500*time.Millisecond)
	if err != nil || reply != "pong" {
		t.Errorf("Ask(ping) = %v, %v; want pong, nil", reply, err)
	}
}

func TestEngine_AskTimeout(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(NewProps(func() Actor { return &recordingActor{} }))
	_, err := engine.Ask(pid, "no reply", 30*time.Millisecond)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}

func TestEngine_AskUnknownActor(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	_, err := engine.Ask(&PID{ID: "actor-404"}, 1, 30*time.Millisecond)
	if !errors.Is(err, ErrActorNotFound) {
		t.Errorf("expected ErrActorNotFound, got %v", err)
	}
}

func TestEngine_AskPanicRepliesWithError(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(NewProps(func() Actor { return &recordingActor{} }))
	_, err := engine.Ask(pid, "boom", 500*time.Millisecond)
	if err == nil {
		t.Fatal("expected an error reply after panic")
	}

	// The actor survives a panicking Receive.
	reply, err := engine.Ask(pid, 2, 500*time.Millisecond)
	if err != nil || reply != 4 {
		t.Errorf("Ask after panic = %v, %v; want 4, nil", reply, err)
	}
}

func TestEngine_StopDeliversStoppingAndStopped(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	actor := &recordingActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	waitFor(t, time.Second, func() bool { return len(actor.messages()) >= 1 })

	engine.Stop(pid)
	ok := waitFor(t, time.Second, func() bool { return engine.Count() == 0 })
	if !ok {
		t.Fatal("actor was not removed after Stop")
	}

	var sawStopping, sawStopped bool
	for _, msg := range actor.messages() {
		switch msg.(type) {
		case Stopping:
			sawStopping = true
		case Stopped:
			sawStopped = true
		}
	}
	if !sawStopping || !sawStopped {
		t.Errorf("expected Stopping and Stopped, got %v", actor.messages())
	}

	// Messages to a stopped actor are dropped silently.
	engine.Send(pid, "late", nil)
}

func TestEngine_ShutdownRejectsNewWork(t *testing.T) {
	engine := NewEngine()
	engine.Spawn(NewProps(func() Actor { return &recordingActor{} }))
	engine.Shutdown(time.Second)

	if engine.Count() != 0 {
		t.Errorf("Count() = %d after shutdown, want 0", engine.Count())
	}
	if pid := engine.Spawn(NewProps(func() Actor { return &recordingActor{} })); pid != nil {
		t.Errorf("Spawn after shutdown should return nil")
	}
	if _, err := engine.Ask(&PID{ID: "actor-1"}, 1, time.Millisecond); !errors.Is(err, ErrEngineStopping) {
		t.Errorf("Ask after shutdown = %v, want ErrEngineStopping", err)
	}
}

func TestProps_WithMailboxSize(t *testing.T) {
	props := NewProps(func() Actor { return &recordingActor{} }).WithMailboxSize(4)
	if props.mailboxSize != 4 {
		t.Errorf("mailboxSize = %d, want 4", props.mailboxSize)
	}
	props.WithMailboxSize(0)
	if props.mailboxSize != 4 {
		t.Errorf("non-positive size should be ignored")
	}
}

func TestNewProps_PanicsOnNilProducer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewProps(nil) should panic")
		}
	}()
	NewProps(nil)
}
