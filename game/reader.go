// File: game/reader.go
package game

import (
	"encoding/json"

	"github.com/lguibr/pongai/utils"
	"github.com/pkg/errors"
)

// DecodeServerMessage reads the messageType header and decodes the payload
// into StepUpdate, GameOver or SessionAssigned.
func DecodeServerMessage(data []byte) (interface{}, error) {
	var header MessageHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, errors.Wrap(err, "could not read message header")
	}

	var target interface{}
	switch header.MessageType {
	case MessageTypeStepUpdate:
		target = &StepUpdate{}
	case MessageTypeGameOver:
		target = &GameOver{}
	case MessageTypeSessionAssigned:
		target = &SessionAssigned{}
	default:
		return nil, errors.Errorf("unknown message type %q", header.MessageType)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return nil, errors.Wrapf(err, "could not decode %s", header.MessageType)
	}

	switch msg := target.(type) {
	case *StepUpdate:
		return *msg, nil
	case *GameOver:
		return *msg, nil
	default:
		return *target.(*SessionAssigned), nil
	}
}

// ToActorMessage converts a client command into the message the
// SimulationActor understands for the given side. Spectators may only
// toggle the agent or reset; their directions are rejected.
func (c ClientCommand) ToActorMessage(side string) (interface{}, error) {
	switch c.Command {
	case CommandToggleAgent:
		return ToggleAgent{}, nil
	case CommandReset:
		return ResetEpisode{}, nil
	case "":
	default:
		return nil, errors.Errorf("unknown command %q", c.Command)
	}

	action, err := ActionFromDirection(c.Direction)
	if err != nil {
		return nil, err
	}
	if side != utils.SideLeft && side != utils.SideRight {
		return nil, errors.Errorf("side %q cannot move a paddle", side)
	}
	return SetPaddleAction{Side: side, Action: action}, nil
}
