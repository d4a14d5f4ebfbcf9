// File: game/messages.go
package game

// --- Message Header ---
// Used for identifying message types after unmarshalling from JSON
type MessageHeader struct {
	MessageType string `json:"messageType"`
}

const (
	MessageTypeStepUpdate      = "stepUpdate"
	MessageTypeGameOver        = "gameOver"
	MessageTypeSessionAssigned = "sessionAssigned"
)

// Commands a client may send besides a direction.
const (
	CommandToggleAgent = "toggleAgent"
	CommandReset       = "reset"
)

// --- WebSocket Messages (Client <-> Server) ---

// StepUpdate is broadcast to subscribers after every simulation step.
type StepUpdate struct {
	MessageType  string      `json:"messageType"` // "stepUpdate"
	Episode      int         `json:"episode"`
	Step         int64       `json:"step"`
	Observation  Observation `json:"observation"`
	Reward       int         `json:"reward"`
	Terminated   bool        `json:"terminated"`
	AgentEnabled bool        `json:"agentEnabled"`
	Snapshot     Snapshot    `json:"snapshot"`
}

// GameOver is broadcast once when an episode terminates.
type GameOver struct {
	MessageType string `json:"messageType"` // "gameOver"
	Episode     int    `json:"episode"`
	LeftScore   int    `json:"leftScore"`
	RightScore  int    `json:"rightScore"`
	Winner      string `json:"winner"` // "" on a tie
	Steps       int64  `json:"steps"`
}

// SessionAssigned is the first message a client receives after connecting.
type SessionAssigned struct {
	MessageType string `json:"messageType"` // "sessionAssigned"
	SessionID   string `json:"sessionId"`
	Side        string `json:"side"`
}

// ClientCommand is the only message a client sends.
// Direction is one of ArrowUp, ArrowDown or None; Command is toggleAgent or reset.
type ClientCommand struct {
	Direction string `json:"direction,omitempty"`
	Command   string `json:"command,omitempty"`
}

func NewStepUpdate(episode int, result StepResult, agentEnabled bool, snapshot Snapshot) StepUpdate {
	return StepUpdate{
		MessageType:  MessageTypeStepUpdate,
		Episode:      episode,
		Step:         snapshot.Steps,
		Observation:  result.Observation,
		Reward:       result.Reward,
		Terminated:   result.Terminated,
		AgentEnabled: agentEnabled,
		Snapshot:     snapshot,
	}
}

func NewGameOver(episode int, sim *Simulation) GameOver {
	left, right := sim.Scores()
	return GameOver{
		MessageType: MessageTypeGameOver,
		Episode:     episode,
		LeftScore:   left,
		RightScore:  right,
		Winner:      sim.Leader(),
		Steps:       sim.Steps(),
	}
}

func NewSessionAssigned(sessionID, side string) SessionAssigned {
	return SessionAssigned{
		MessageType: MessageTypeSessionAssigned,
		SessionID:   sessionID,
		Side:        side,
	}
}

// --- Actor Messages (Internal Communication) ---

// GameTick signals the SimulationActor to advance one step.
type GameTick struct{}

// SetPaddleAction holds an action for a side until the next SetPaddleAction.
type SetPaddleAction struct {
	Side   string
	Action Action
}

// ToggleAgent switches the agent side between controller and human input.
type ToggleAgent struct{}

// ResetEpisode discards the running simulation and starts a new episode.
type ResetEpisode struct{}

// Subscribe registers a channel that receives StepUpdate and GameOver values.
// Sends are non-blocking: a full channel misses updates.
type Subscribe struct {
	ID      string
	Updates chan<- interface{}
}

// Unsubscribe removes a subscriber. The channel is not closed.
type Unsubscribe struct {
	ID string
}

// GetStateRequest asks the SimulationActor for its current state (used via Ask).
type GetStateRequest struct{}

// StateResponse is the reply to GetStateRequest.
type StateResponse struct {
	Episode      int         `json:"episode"`
	AgentEnabled bool        `json:"agentEnabled"`
	AgentSide    string      `json:"agentSide"`
	Subscribers  int         `json:"subscribers"`
	Observation  Observation `json:"observation"`
	Snapshot     Snapshot    `json:"snapshot"`
}
