package utils

import "math"

// Clamp bounds value to [low, high].
func Clamp(value, low, high float64) float64 {
	return math.Max(low, math.Min(high, value))
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(value float64) float64 {
	if value < 0 {
		return -1
	}
	return 1
}

// ClampMagnitude caps |value| at limit while keeping its sign.
func ClampMagnitude(value, limit float64) float64 {
	if math.Abs(value) > limit {
		return limit * Sign(value)
	}
	return value
}

// CenteredOffset returns the coordinate that centers a span of size inside total.
func CenteredOffset(total, size float64) float64 {
	return total/2 - size/2
}

func OppositeSide(side string) string {
	if side == SideLeft {
		return SideRight
	}
	return SideLeft
}
