// File: game/action_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	testCases := []struct {
		value    int
		expected Action
		wantErr  bool
	}{
		{-1, ActionUp, false},
		{0, ActionStay, false},
		{1, ActionDown, false},
		{2, ActionStay, true},
		{-2, ActionStay, true},
		{300, ActionStay, true},
	}

	for _, tc := range testCases {
		action, err := ParseAction(tc.value)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidAction, "value %d", tc.value)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, action)
	}
}

func TestActionFromDirection(t *testing.T) {
	testCases := []struct {
		direction string
		expected  Action
		wantErr   bool
	}{
		{DirectionUp, ActionUp, false},
		{DirectionDown, ActionDown, false},
		{DirectionNone, ActionStay, false},
		{"", ActionStay, false},
		{"ArrowLeft", ActionStay, true},
		{"up", ActionStay, true},
	}

	for _, tc := range testCases {
		t.Run(tc.direction, func(t *testing.T) {
			action, err := ActionFromDirection(tc.direction)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAction)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, action)
		})
	}
}

func TestAction_ValidAndString(t *testing.T) {
	assert.True(t, ActionUp.Valid())
	assert.True(t, ActionStay.Valid())
	assert.True(t, ActionDown.Valid())
	assert.False(t, Action(2).Valid())
	assert.False(t, Action(-2).Valid())

	assert.Equal(t, "up", ActionUp.String())
	assert.Equal(t, "stay", ActionStay.String())
	assert.Equal(t, "down", ActionDown.String())
	assert.Equal(t, "Action(7)", Action(7).String())
}
