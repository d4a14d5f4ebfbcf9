// File: game/simulation_actor.go
package game

import (
	"fmt"
	"time"

	"github.com/lguibr/pongai/bollywood"
	"github.com/lguibr/pongai/utils"
	"github.com/pkg/errors"
)

// SimulationActor drives a Simulation from its own mailbox, so every Step is
// serialized. Humans hold an action per side, the agent side asks the
// Controller instead while agent control is on.
type SimulationActor struct {
	cfg        utils.Config
	engine     *bollywood.Engine
	rng        utils.RandomSource
	controller Controller

	sim          *Simulation
	episode      int
	agentEnabled bool
	actions      map[string]Action
	subscribers  map[string]chan<- interface{}

	selfPID      *bollywood.PID
	ticker       *time.Ticker
	stopTickerCh chan struct{}
}

// NewSimulationActorProducer creates a producer for the SimulationActor.
// A nil controller falls back to a RandomController, a nil rng to a time-seeded one.
func NewSimulationActorProducer(engine *bollywood.Engine, cfg utils.Config, controller Controller, rng utils.RandomSource) bollywood.Producer {
	return func() bollywood.Actor {
		if rng == nil {
			rng = utils.NewRandomSource()
		}
		if controller == nil {
			controller = NewRandomController(rng)
		}
		a := &SimulationActor{
			cfg:          cfg,
			engine:       engine,
			rng:          rng,
			controller:   controller,
			agentEnabled: cfg.AgentEnabled,
			actions: map[string]Action{
				utils.SideLeft:  ActionStay,
				utils.SideRight: ActionStay,
			},
			subscribers: make(map[string]chan<- interface{}),
		}
		a.newEpisode()
		return a
	}
}

// Receive is the main message handler for the SimulationActor.
func (a *SimulationActor) Receive(ctx bollywood.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}
	if a.engine == nil {
		a.engine = ctx.Engine()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		fmt.Printf("SimulationActor %s: Started. Episode %d, agent on %s (%v), human on %s.\n", a.selfPID, a.episode, a.cfg.AgentSide, a.agentEnabled, utils.OppositeSide(a.cfg.AgentSide))
		a.startTicker()

	case *GameTick, GameTick:
		a.tick()

	case SetPaddleAction:
		if err := a.setAction(msg); err != nil {
			fmt.Printf("SimulationActor %s: Ignoring paddle action: %v\n", a.selfPID, err)
			ctx.Reply(err)
			return
		}
		ctx.Reply(true)

	case ToggleAgent:
		a.agentEnabled = !a.agentEnabled
		fmt.Printf("SimulationActor %s: Agent control on %s is now %v.\n", a.selfPID, a.cfg.AgentSide, a.agentEnabled)
		ctx.Reply(a.agentEnabled)

	case ResetEpisode:
		a.newEpisode()
		a.startTicker()
		fmt.Printf("SimulationActor %s: Episode reset, now %d.\n", a.selfPID, a.episode)
		ctx.Reply(a.episode)

	case Subscribe:
		if msg.Updates == nil || msg.ID == "" {
			fmt.Printf("SimulationActor %s: Ignoring subscription without id or channel.\n", a.selfPID)
			ctx.Reply(errors.New("subscription needs an id and an updates channel"))
			return
		}
		a.subscribers[msg.ID] = msg.Updates
		ctx.Reply(true)

	case Unsubscribe:
		delete(a.subscribers, msg.ID)
		ctx.Reply(true)

	case GetStateRequest:
		ctx.Reply(a.state())

	case bollywood.Stopping:
		fmt.Printf("SimulationActor %s: Stopping after %d steps of episode %d.\n", a.selfPID, a.sim.Steps(), a.episode)
		a.stopTicker()

	case bollywood.Stopped:
		a.subscribers = make(map[string]chan<- interface{})

	default:
		fmt.Printf("SimulationActor %s: Received unknown message type: %T\n", a.selfPID, msg)
	}
}

func (a *SimulationActor) tick() {
	if a.sim.Terminated() {
		return
	}

	left, right := a.resolveActions()
	result := a.sim.Step(left, right)
	a.broadcast(NewStepUpdate(a.episode, result, a.agentEnabled, a.sim.Snapshot()))

	if !result.Terminated {
		return
	}

	over := NewGameOver(a.episode, a.sim)
	fmt.Printf("SimulationActor %s: Episode %d over after %d steps, %d-%d.\n", a.selfPID, a.episode, over.Steps, over.LeftScore, over.RightScore)
	a.broadcast(over)

	if a.cfg.RestartOnTermination {
		a.newEpisode()
		return
	}
	a.stopTicker()
}

// resolveActions returns the held human actions, with the agent side
// replaced by the controller's choice when agent control is on.
func (a *SimulationActor) resolveActions() (Action, Action) {
	left, right := a.actions[utils.SideLeft], a.actions[utils.SideRight]
	if !a.agentEnabled {
		return left, right
	}

	action := a.controller.ChooseAction(a.sim.LastObservation())
	if !action.Valid() {
		fmt.Printf("SimulationActor %s: Controller returned invalid action %d, using stay.\n", a.selfPID, int8(action))
		action = ActionStay
	}
	if a.cfg.AgentSide == utils.SideLeft {
		return action, right
	}
	return left, action
}

func (a *SimulationActor) setAction(msg SetPaddleAction) error {
	if msg.Side != utils.SideLeft && msg.Side != utils.SideRight {
		return errors.Errorf("unknown side %q", msg.Side)
	}
	if !msg.Action.Valid() {
		return errors.Wrapf(ErrInvalidAction, "side %s", msg.Side)
	}
	a.actions[msg.Side] = msg.Action
	return nil
}

func (a *SimulationActor) newEpisode() {
	a.episode++
	a.sim = NewSimulation(a.cfg.World, a.rng, WithTermination(NewTerminationPolicy(a.cfg.WinningScore)))
}

func (a *SimulationActor) state() StateResponse {
	return StateResponse{
		Episode:      a.episode,
		AgentEnabled: a.agentEnabled,
		AgentSide:    a.cfg.AgentSide,
		Subscribers:  len(a.subscribers),
		Observation:  a.sim.LastObservation(),
		Snapshot:     a.sim.Snapshot(),
	}
}

// broadcast never blocks the simulation: a subscriber that is not keeping up misses updates.
func (a *SimulationActor) broadcast(msg interface{}) {
	for id, updates := range a.subscribers {
		select {
		case updates <- msg:
		default:
			if _, isGameOver := msg.(GameOver); isGameOver {
				fmt.Printf("SimulationActor %s: Subscriber %s is full, dropped game over.\n", a.selfPID, id)
			}
		}
	}
}

func (a *SimulationActor) startTicker() {
	if a.ticker != nil || a.engine == nil || a.selfPID == nil {
		return
	}
	a.ticker = time.NewTicker(a.cfg.TickPeriod)
	a.stopTickerCh = make(chan struct{})

	tickerCh, stopCh := a.ticker.C, a.stopTickerCh
	engine, self := a.engine, a.selfPID
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case <-tickerCh:
				engine.Send(self, &GameTick{}, nil)
			}
		}
	}()
}

func (a *SimulationActor) stopTicker() {
	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	close(a.stopTickerCh)
	a.ticker = nil
}
