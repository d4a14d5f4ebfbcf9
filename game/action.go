// File: game/action.go
package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Action is the discrete command applied to one paddle for one step.
type Action int8

const (
	ActionUp   Action = -1
	ActionStay Action = 0
	ActionDown Action = 1
)

// Direction strings sent by clients, same vocabulary as the arrow keys.
const (
	DirectionUp   = "ArrowUp"
	DirectionDown = "ArrowDown"
	DirectionNone = "None"
)

// ErrInvalidAction is returned when untrusted input does not map to an Action.
var ErrInvalidAction = errors.New("invalid action")

func (a Action) Valid() bool {
	return a >= ActionUp && a <= ActionDown
}

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionStay:
		return "stay"
	case ActionDown:
		return "down"
	}
	return fmt.Sprintf("Action(%d)", int8(a))
}

// ParseAction converts a raw integer into an Action.
func ParseAction(value int) (Action, error) {
	action := Action(value)
	if value < int(ActionUp) || value > int(ActionDown) {
		return ActionStay, errors.Wrapf(ErrInvalidAction, "value %d", value)
	}
	return action, nil
}

// ActionFromDirection maps a client direction string to an Action.
// An empty direction is treated as None.
func ActionFromDirection(direction string) (Action, error) {
	switch direction {
	case DirectionUp:
		return ActionUp, nil
	case DirectionDown:
		return ActionDown, nil
	case DirectionNone, "":
		return ActionStay, nil
	}
	return ActionStay, errors.Wrapf(ErrInvalidAction, "direction %q", direction)
}

// mustBeValid panics on an out-of-range action. Callers inside the
// simulation treat a bad action as a programming error.
func mustBeValid(action Action, caller string) {
	if !action.Valid() {
		panic(fmt.Sprintf("%s: invalid action %d, want one of -1, 0, 1", caller, int8(action)))
	}
}
