package core

import (
	"math"
	"testing"
)

func TestInterval_ContainsSurrounds(t *testing.T) {
	interval := NewInterval(1, 5)

	tests := []struct {
		name      string
		value     float64
		contains  bool
		surrounds bool
	}{
		{"below", 0.5, false, false},
		{"lower bound", 1, true, false},
		{"inside", 3, true, true},
		{"upper bound", 5, true, false},
		{"above", 5.5, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interval.Contains(tt.value); got != tt.contains {
				t.Errorf("Contains(%v) = %v, want %v", tt.value, got, tt.contains)
			}
			if got := interval.Surrounds(tt.value); got != tt.surrounds {
				t.Errorf("Surrounds(%v) = %v, want %v", tt.value, got, tt.surrounds)
			}
		})
	}
}

func TestInterval_Combine(t *testing.T) {
	a := NewInterval(0, 2)
	b := NewInterval(1, 5)
	c := NewInterval(-3, -1)

	// Commutative
	if a.Combine(b) != b.Combine(a) {
		t.Errorf("combine not commutative: %v vs %v", a.Combine(b), b.Combine(a))
	}

	// Associative
	if a.Combine(b).Combine(c) != a.Combine(b.Combine(c)) {
		t.Errorf("combine not associative")
	}

	// Union spans both inputs
	union := a.Combine(c)
	if union.Min != -3 || union.Max != 2 {
		t.Errorf("expected [-3,2], got %v", union)
	}

	// Empty is the identity
	if got := a.Combine(EmptyInterval()); got != a {
		t.Errorf("combine with empty changed interval: %v", got)
	}
}

func TestInterval_Expand(t *testing.T) {
	expanded := NewInterval(1, 3).Expand(0.5)
	if expanded.Min != 0.5 || expanded.Max != 3.5 {
		t.Errorf("expected [0.5,3.5], got %v", expanded)
	}
}

func TestInterval_Clamp(t *testing.T) {
	interval := NewInterval(0, 1)

	tests := []struct {
		value, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{2, 1},
	}

	for _, tt := range tests {
		if got := interval.Clamp(tt.value); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestInterval_EmptyUniverse(t *testing.T) {
	if EmptyInterval().Contains(0) {
		t.Error("empty interval should contain nothing")
	}
	if !UniverseInterval().Contains(math.MaxFloat64) || !UniverseInterval().Contains(-math.MaxFloat64) {
		t.Error("universe interval should contain everything")
	}
}
