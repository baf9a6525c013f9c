package scale

import (
	"math"
	"testing"
)

func approxEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestDeltaTicks(t *testing.T) {
	s := Compute(100, nil, nil, 0, 0, Bounds{}, []float64{0, 10})

	tests := []struct {
		name  string
		delta float64
		want  []float64
	}{
		{"unit steps", 2, []float64{0, 2, 4, 6, 8, 10}},
		{"offset start", 3, []float64{0, 3, 6, 9}},
		{"zero delta yields none", 0, nil},
		{"negative delta yields none", -1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ticks(s, Delta(tt.delta))
			if !approxEqual(got, tt.want) {
				t.Errorf("Ticks(Delta(%v)) = %v, want %v", tt.delta, got, tt.want)
			}
		})
	}
}

func TestDeltaTicksNegativeRange(t *testing.T) {
	s := Compute(100, nil, nil, 0, 0, Bounds{}, []float64{-7, 7})
	got := Ticks(s, Delta(5))
	want := []float64{-5, 0, 5}
	if !approxEqual(got, want) {
		t.Errorf("Ticks = %v, want %v", got, want)
	}
}

func TestCountTicks(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		count  int
		want   []float64
	}{
		{"decade", []float64{0, 10}, 5, []float64{0, 2, 4, 6, 8, 10}},
		{"fifties", []float64{0, 100}, 4, []float64{0, 50, 100}},
		{"zero count yields none", []float64{0, 10}, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Compute(100, nil, nil, 0, 0, Bounds{}, tt.values)
			got := Ticks(s, Count(tt.count))
			if !approxEqual(got, tt.want) {
				t.Errorf("Ticks(Count(%d)) = %v, want %v", tt.count, got, tt.want)
			}
		})
	}
}

func TestListTicks(t *testing.T) {
	s := Compute(100, nil, nil, 0, 0, Bounds{}, []float64{0, 10})

	got := Ticks(s, List(-5, 0, 3, 7, 10, 12))
	want := []float64{0, 3, 7, 10}
	if !approxEqual(got, want) {
		t.Errorf("Ticks(List) = %v, want %v", got, want)
	}
}

func TestFuncTicks(t *testing.T) {
	s := Compute(100, nil, nil, 0, 0, Bounds{}, []float64{0, 10})

	got := Ticks(s, Func(func(s Scale) []float64 {
		return []float64{s.Lowest, s.Highest}
	}))
	want := []float64{0, 10}
	if !approxEqual(got, want) {
		t.Errorf("Ticks(Func) = %v, want %v", got, want)
	}
}

func TestNilStrategyDefaults(t *testing.T) {
	s := Compute(100, nil, nil, 0, 0, Bounds{}, []float64{0, 10})
	got := Ticks(s, nil)
	if len(got) == 0 {
		t.Fatal("Ticks(nil) produced no ticks, want a default tick set")
	}
}
