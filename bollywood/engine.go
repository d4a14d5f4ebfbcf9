package bollywood

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrTimeout is returned by Ask when no reply arrives in time.
	ErrTimeout = errors.New("bollywood: ask timed out")
	// ErrActorNotFound is returned by Ask when the target is not running.
	ErrActorNotFound = errors.New("bollywood: actor not found")
	// ErrEngineStopping is returned by Ask once Shutdown has begun.
	ErrEngineStopping = errors.New("bollywood: engine is stopping")
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter     uint64
	requestCounter uint64
	actors         map[string]*process
	mu             sync.RWMutex // Protects the actors map
	stopping       atomic.Bool  // Indicates if the engine is shutting down
}

// NewEngine creates a new actor engine.
func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

func (e *Engine) nextRequestID() string {
	id := atomic.AddUint64(&e.requestCounter, 1)
	return fmt.Sprintf("req-%d", id)
}

// Spawn creates and starts a new actor based on the provided Props.
// It returns nil once the engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		fmt.Println("Engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()

	e.Send(pid, Started{}, nil)

	return pid
}

func (e *Engine) lookup(pid *PID) (*process, bool) {
	if pid == nil {
		return nil, false
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	return proc, ok
}

// Send delivers a message to the actor identified by the PID.
// Messages to unknown actors are dropped.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}
	if proc, ok := e.lookup(pid); ok {
		proc.deliver(&messageEnvelope{Sender: sender, Message: message})
	}
}

// Ask sends a message and waits for the receiver to call Context.Reply.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	if e.stopping.Load() {
		return nil, ErrEngineStopping
	}
	proc, ok := e.lookup(pid)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActorNotFound, pid)
	}

	replyCh := make(chan interface{}, 1)
	proc.deliver(&messageEnvelope{
		Message:   message,
		RequestID: e.nextRequestID(),
		replyCh:   replyCh,
	})

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case reply := <-replyCh:
		if err, isErr := reply.(error); isErr {
			return nil, err
		}
		return reply, nil
	case <-timer.C:
		return nil, fmt.Errorf("%w after %v waiting on %s", ErrTimeout, timeout, pid)
	}
}

// Stop requests an actor to stop processing messages and shut down.
// It sends the Stopping message and also directly signals the actor's stop channel.
func (e *Engine) Stop(pid *PID) {
	proc, ok := e.lookup(pid)
	if !ok {
		return
	}
	e.Send(pid, Stopping{}, nil)
	proc.signalStop()
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Count returns the number of running actors.
func (e *Engine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.actors)
}

// Shutdown stops all actors and waits for them to terminate gracefully.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		fmt.Println("Engine already shutting down")
		return
	}
	fmt.Println("Engine shutdown initiated...")

	e.mu.RLock()
	pidsToStop := make([]*PID, 0, len(e.actors))
	for _, proc := range e.actors {
		pidsToStop = append(pidsToStop, proc.pid)
	}
	e.mu.RUnlock()

	fmt.Printf("Stopping %d actors...\n", len(pidsToStop))
	for _, pid := range pidsToStop {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if e.Count() == 0 {
			fmt.Println("All actors stopped.")
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	e.mu.Lock()
	if remaining := len(e.actors); remaining > 0 {
		fmt.Printf("Engine shutdown timeout: %d actors did not stop gracefully.\n", remaining)
		e.actors = make(map[string]*process)
	}
	e.mu.Unlock()

	fmt.Println("Engine shutdown complete.")
}
