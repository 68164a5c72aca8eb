package core

import "math"

// Interval represents a numeric range [Min, Max]
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval returns the empty interval (+inf, -inf)
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// UniverseInterval returns the all-containing interval (-inf, +inf)
func UniverseInterval() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Contains reports whether value lies in the closed interval
func (i Interval) Contains(value float64) bool {
	return i.Min <= value && value <= i.Max
}

// Surrounds reports whether value lies strictly inside the interval
func (i Interval) Surrounds(value float64) bool {
	return i.Min < value && value < i.Max
}

// Combine returns the union of the bounding intervals
func (i Interval) Combine(other Interval) Interval {
	return Interval{
		Min: math.Min(i.Min, other.Min),
		Max: math.Max(i.Max, other.Max),
	}
}

// Expand returns the interval padded by padding on both sides
func (i Interval) Expand(padding float64) Interval {
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Size returns the extent of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Clamp returns value limited to the interval
func (i Interval) Clamp(value float64) float64 {
	if value < i.Min {
		return i.Min
	}
	if value > i.Max {
		return i.Max
	}
	return value
}
