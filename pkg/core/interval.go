package core

import "math"

// Interval is a range of ray parameters bounding valid intersections.
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns the extent of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether t lies within the closed interval
func (i Interval) Contains(t float64) bool {
	return i.Min <= t && t <= i.Max
}

// Surrounds reports whether t lies strictly within the interval
func (i Interval) Surrounds(t float64) bool {
	return i.Min < t && t < i.Max
}

// Clamp limits t to the interval's bounds
func (i Interval) Clamp(t float64) float64 {
	if t < i.Min {
		return i.Min
	}
	if t > i.Max {
		return i.Max
	}
	return t
}

var (
	// EmptyInterval contains no values
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

	// UniverseInterval contains every value
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

	// Forward covers everything in front of a ray origin
	Forward = Interval{Min: 0, Max: math.Inf(1)}

	// ForwardEps excludes t near zero so a scattered ray restarting at a
	// surface does not re-hit that surface (shadow acne).
	ForwardEps = Interval{Min: 0.001, Max: math.Inf(1)}
)
