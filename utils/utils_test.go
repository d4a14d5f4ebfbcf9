package utils

import (
	"fmt"
	"testing"
)

// AssertPanics runs f and reports whether it panicked, with the recovered value as error.
func AssertPanics(t *testing.T, f func(), message string) (panics bool, err error) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			panics = true
			err = fmt.Errorf("%s: %v", message, r)
		}
	}()
	f()
	return false, nil
}

func TestClamp(t *testing.T) {
	testCases := []struct {
		value, low, high float64
		expected         float64
		name             string
	}{
		{5, 0, 10, 5, "inside"},
		{-5, 0, 10, 0, "below"},
		{15, 0, 10, 10, "above"},
		{0, 0, 10, 0, "on lower edge"},
		{10, 0, 10, 10, "on upper edge"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.value, tc.low, tc.high); got != tc.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.value, tc.low, tc.high, got, tc.expected)
			}
		})
	}
}

func TestSign(t *testing.T) {
	testCases := map[float64]float64{
		-3: -1,
		0:  1,
		7:  1,
	}
	for input, expected := range testCases {
		if got := Sign(input); got != expected {
			t.Errorf("Sign(%v) = %v, want %v", input, got, expected)
		}
	}
}

func TestClampMagnitude(t *testing.T) {
	testCases := []struct {
		value, limit, expected float64
		name                   string
	}{
		{16.5, 15, 15, "positive over limit"},
		{-16.5, 15, -15, "negative over limit"},
		{14.9, 15, 14.9, "under limit"},
		{-15, 15, -15, "exactly at limit"},
		{0, 15, 0, "zero"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampMagnitude(tc.value, tc.limit); got != tc.expected {
				t.Errorf("ClampMagnitude(%v, %v) = %v, want %v", tc.value, tc.limit, got, tc.expected)
			}
		})
	}
}

func TestCenteredOffset(t *testing.T) {
	if got := CenteredOffset(600, 100); got != 250 {
		t.Errorf("CenteredOffset(600, 100) = %v, want 250", got)
	}
	if got := CenteredOffset(800, 15); got != 392.5 {
		t.Errorf("CenteredOffset(800, 15) = %v, want 392.5", got)
	}
}

func TestOppositeSide(t *testing.T) {
	if OppositeSide(SideLeft) != SideRight {
		t.Errorf("OppositeSide(left) should be right")
	}
	if OppositeSide(SideRight) != SideLeft {
		t.Errorf("OppositeSide(right) should be left")
	}
}

func TestAssertPanics(t *testing.T) {
	panics, err := AssertPanics(t, func() { panic("boom") }, "expected")
	if !panics || err == nil {
		t.Errorf("AssertPanics should detect a panic")
	}
	panics, err = AssertPanics(t, func() {}, "")
	if panics || err != nil {
		t.Errorf("AssertPanics reported a panic for a function that returned normally")
	}
}
