package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	i := NewInterval(0, 1)

	tests := []struct {
		x         float64
		contains  bool
		surrounds bool
	}{
		{-0.5, false, false},
		{0, true, false},
		{0.5, true, true},
		{1, true, false},
		{1.5, false, false},
	}

	for _, tt := range tests {
		if got := i.Contains(tt.x); got != tt.contains {
			t.Errorf("Contains(%f): expected %t, got %t", tt.x, tt.contains, got)
		}
		if got := i.Surrounds(tt.x); got != tt.surrounds {
			t.Errorf("Surrounds(%f): expected %t, got %t", tt.x, tt.surrounds, got)
		}
	}
}

func TestInterval_EmptyAndUniverse(t *testing.T) {
	empty := EmptyInterval()
	if !empty.IsEmpty() {
		t.Error("Expected empty interval to be empty")
	}
	if empty.Contains(0) {
		t.Error("Empty interval should contain nothing")
	}

	universe := UniverseInterval()
	if !universe.Contains(1e300) || !universe.Contains(-1e300) {
		t.Error("Universe interval should contain every finite value")
	}

	i := NewInterval(-2, 3)
	if u := IntervalUnion(empty, i); u != i {
		t.Errorf("Union with empty interval should be identity, got %v", u)
	}
}

func TestInterval_SizeAndExpand(t *testing.T) {
	i := NewInterval(1, 4)
	if i.Size() != 3 {
		t.Errorf("Expected size 3, got %f", i.Size())
	}
	e := i.Expand(2)
	if e.Min != 0 || e.Max != 5 {
		t.Errorf("Expected [0, 5], got [%f, %f]", e.Min, e.Max)
	}
}

func TestInterval_Union(t *testing.T) {
	u := IntervalUnion(NewInterval(0, 1), NewInterval(3, 5))
	if u.Min != 0 || u.Max != 5 {
		t.Errorf("Expected [0, 5], got [%f, %f]", u.Min, u.Max)
	}
	if IntervalUnion(NewInterval(3, 5), NewInterval(0, 1)) != u {
		t.Error("Union should be order independent")
	}
}

func TestInterval_ClampIdempotent(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	i := NewInterval(-1, 2)

	values := []float64{math.Inf(-1), math.Inf(1), -1, 2, 0, -1e9, 1e9}
	for n := 0; n < 1000; n++ {
		values = append(values, (random.Float64()-0.5)*20)
	}

	for _, x := range values {
		once := i.Clamp(x)
		if twice := i.Clamp(once); twice != once {
			t.Errorf("Clamp not idempotent for %f: %f then %f", x, once, twice)
		}
		if !i.Contains(once) {
			t.Errorf("Clamp(%f) = %f lies outside [%f, %f]", x, once, i.Min, i.Max)
		}
	}
}
