package scale

import (
	"math"
	"testing"
)

func TestComputeMinMax(t *testing.T) {
	tests := []struct {
		name        string
		values      []float64
		bounds      Bounds
		wantLowest  float64
		wantHighest float64
	}{
		{
			name:        "plain values",
			values:      []float64{3, -1, 7, 4},
			wantLowest:  -1,
			wantHighest: 7,
		},
		{
			name:        "forced zero baseline below data",
			values:      []float64{10, 20},
			bounds:      Bounds{Lower: Bound(0)},
			wantLowest:  0,
			wantHighest: 20,
		},
		{
			name:        "forced bound inside data is ignored",
			values:      []float64{-5, 20},
			bounds:      Bounds{Lower: Bound(0)},
			wantLowest:  -5,
			wantHighest: 20,
		},
		{
			name:        "forced upper bound above data",
			values:      []float64{1, 2},
			bounds:      Bounds{Upper: Bound(3.5)},
			wantLowest:  1,
			wantHighest: 3.5,
		},
		{
			name:        "empty values degrade to unit interval",
			values:      nil,
			wantLowest:  0,
			wantHighest: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Compute(100, nil, nil, 0, 0, tt.bounds, tt.values)
			if s.Lowest != tt.wantLowest {
				t.Errorf("Lowest = %v, want %v", s.Lowest, tt.wantLowest)
			}
			if s.Highest != tt.wantHighest {
				t.Errorf("Highest = %v, want %v", s.Highest, tt.wantHighest)
			}
			if s.Range != s.Highest-s.Lowest {
				t.Errorf("Range = %v, want %v", s.Range, s.Highest-s.Lowest)
			}
		})
	}
}

func TestComputeDegenerateRange(t *testing.T) {
	// All values equal: the scale must not have a zero range.
	s := Compute(100, nil, nil, 0, 0, Bounds{}, []float64{5, 5, 5})
	if s.Range == 0 {
		t.Fatal("Range = 0 for all-equal values, want non-degenerate fallback")
	}
	if s.Lowest != 5 {
		t.Errorf("Lowest = %v, want 5", s.Lowest)
	}
	px := s.Pixel(5)
	if math.IsNaN(px) || math.IsInf(px, 0) {
		t.Errorf("Pixel(5) = %v, want finite", px)
	}
}

func TestComputeAdjustments(t *testing.T) {
	widen := func(v float64) float64 { return v - 2 }
	raise := func(v float64) float64 { return v + 3 }

	s := Compute(100, widen, raise, 0, 0, Bounds{}, []float64{10, 20})
	if s.Lowest != 8 {
		t.Errorf("Lowest = %v, want 8", s.Lowest)
	}
	if s.Highest != 23 {
		t.Errorf("Highest = %v, want 23", s.Highest)
	}
}

func TestPixelValueRoundTrip(t *testing.T) {
	scales := []Scale{
		Compute(200, nil, nil, 0, 0, Bounds{}, []float64{0, 10}),
		Compute(340, nil, nil, 20, 40, Bounds{}, []float64{-3, 17}),
		Compute(75, nil, nil, 5, 5, Bounds{Lower: Bound(0)}, []float64{2, 9}),
	}

	values := []float64{-3, 0, 0.5, 2, 9, 10, 17}
	for _, s := range scales {
		for _, v := range values {
			got := s.Value(s.Pixel(v))
			if math.Abs(got-v) > 1e-9 {
				t.Errorf("Value(Pixel(%v)) = %v on scale %+v", v, got, s)
			}
		}
	}
}

func TestPixelEdges(t *testing.T) {
	s := Compute(100, nil, nil, 10, 20, Bounds{}, []float64{0, 7})

	if got := s.Pixel(0); got != 10 {
		t.Errorf("Pixel(lowest) = %v, want lower offset 10", got)
	}
	if got := s.Pixel(7); got != 80 {
		t.Errorf("Pixel(highest) = %v, want length-upper offset 80", got)
	}
}

func TestProject(t *testing.T) {
	s := Compute(100, nil, nil, 0, 0, Bounds{}, []float64{0, 10})
	if got := s.Project(1); got != 10 {
		t.Errorf("Project(1) = %v, want 10", got)
	}
}

func TestClamp(t *testing.T) {
	s := Compute(100, nil, nil, 0, 0, Bounds{}, []float64{2, 8})

	tests := []struct {
		in   float64
		want float64
	}{
		{0, 2},
		{5, 5},
		{11, 8},
	}
	for _, tt := range tests {
		if got := s.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBoundsMerge(t *testing.T) {
	a := Bounds{Lower: Bound(0)}
	b := Bounds{Lower: Bound(-2), Upper: Bound(5)}

	got := a.Merge(b)
	if got.Lower == nil || *got.Lower != -2 {
		t.Errorf("merged Lower = %v, want -2", got.Lower)
	}
	if got.Upper == nil || *got.Upper != 5 {
		t.Errorf("merged Upper = %v, want 5", got.Upper)
	}
}
