package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox and run loop.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	mailbox  chan *messageEnvelope
	props    *Props
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	size := props.mailboxSize
	if size <= 0 {
		size = defaultMailboxSize
	}
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, size),
		stopCh:  make(chan struct{}),
	}
}

func (p *process) signalStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// deliver enqueues an envelope without blocking; a full mailbox drops it.
func (p *process) deliver(envelope *messageEnvelope) {
	if p.stopped.Load() && !isSystemMessage(envelope.Message) {
		return
	}
	select {
	case p.mailbox <- envelope:
	default:
		fmt.Printf("Actor %s mailbox full, dropping message type %T\n", p.pid.ID, envelope.Message)
	}
}

func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			func() {
				defer func() {
					if r := recover(); r != nil {
						fmt.Printf("Actor %s panicked during Stopped processing: %v\n", p.pid.ID, r)
					}
				}()
				p.invokeReceive(&messageEnvelope{Message: Stopped{}})
			}()
		}
		p.engine.remove(p.pid)
	}()

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked: %v\nStack trace:\n%s\n", p.pid.ID, r, string(debug.Stack()))
			p.stopped.Store(true)
			p.signalStop()
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("Actor %s producer returned nil actor", p.pid.ID))
	}

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				p.invokeReceive(&messageEnvelope{Message: Stopping{}})
			}
			return

		case envelope := <-p.mailbox:
			switch envelope.Message.(type) {
			case Stopping:
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(envelope)
					p.signalStop()
				}
			case Stopped:
				// Delivered by the deferred shutdown path only.
			default:
				if p.stopped.Load() {
					continue
				}
				p.invokeReceive(envelope)
			}
		}
	}
}

// invokeReceive calls the actor's Receive method within a protected context.
// A panicking Receive is logged and, for an Ask, answered with an error.
func (p *process) invokeReceive(envelope *messageEnvelope) {
	ctx := &context{
		engine:    p.engine,
		self:      p.pid,
		sender:    envelope.Sender,
		message:   envelope.Message,
		requestID: envelope.RequestID,
		replyCh:   envelope.replyCh,
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked during Receive(%T): %v\nStack trace:\n%s\n", p.pid.ID, envelope.Message, r, string(debug.Stack()))
			ctx.Reply(fmt.Errorf("actor %s panicked: %v", p.pid.ID, r))
		}
	}()
	p.actor.Receive(ctx)
}
