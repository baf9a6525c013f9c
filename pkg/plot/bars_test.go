package plot

import (
	"math"
	"strings"
	"testing"
)

var barGroups = [][]float64{{1, 2}, {3, 4}, {5, 6}}

// barsMeta builds a plot whose inner frame is exactly 130px wide:
// slots at x=1..3 plus half-slot bounds give an x-range of 3 units.
func barsMeta(opts ...BarsOption) (*barsElement, *Meta) {
	allOpts := append([]BarsOption{BarFills("#111", "#222")}, opts...)
	e := Bars(barGroups, allOpts...).(*barsElement)
	m := New([]Element{e}, Size(130, 100), WithMargin(0, 0, 0, 0), ID("t")).Meta()
	return e, m
}

func TestBarWidthAuto(t *testing.T) {
	e, m := barsMeta()

	// 130px inner width over 3 groups x 2 styles.
	want := 130.0 / 6
	if got := e.barWidth(m); math.Abs(got-want) > 1e-9 {
		t.Errorf("barWidth = %v, want auto width %v", got, want)
	}
}

func TestBarWidthPolicies(t *testing.T) {
	auto := 130.0 / 6

	tests := []struct {
		name string
		opt  BarsOption
		want float64
	}{
		{"fixed cap above auto keeps auto", BarMaxWidth(FixedWidth(30)), auto},
		{"fixed cap below auto clamps", BarMaxWidth(FixedWidth(20)), 20},
		{"percentage of auto", BarMaxWidth(PercentageWidth(50)), auto / 2},
		{"percentage above 100 clamps to auto", BarMaxWidth(PercentageWidth(150)), auto},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := barsMeta(tt.opt)
			if got := e.barWidth(m); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("barWidth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBarsSyntheticXBounds(t *testing.T) {
	_, m := barsMeta()

	if m.X.Lowest != 0.5 {
		t.Errorf("X.Lowest = %v, want half slot before first group", m.X.Lowest)
	}
	if m.X.Highest != 3.5 {
		t.Errorf("X.Highest = %v, want half slot after last group", m.X.Highest)
	}
}

func TestBarsForceZeroBaseline(t *testing.T) {
	e := Bars([][]float64{{10}, {20}}).(*barsElement)
	m := New([]Element{e}, ID("t")).Meta()
	if m.Y.Lowest > 0 {
		t.Errorf("Y.Lowest = %v, want <= 0", m.Y.Lowest)
	}
}

func TestBarsStackByYMatchesX(t *testing.T) {
	// StackByY is declared but renders identically to StackByX.
	render := func(s StackBy) string {
		return string(Render([]Element{
			Bars(barGroups, BarFills("#111", "#222"), BarStackBy(s)),
		}, Size(130, 100), WithMargin(0, 0, 0, 0), ID("t")))
	}
	if render(StackByX) != render(StackByY) {
		t.Error("StackByY rendering differs from StackByX")
	}
}

func TestBarsSeriesValues(t *testing.T) {
	e := Bars(barGroups).(*barsElement)
	xs, ys := e.seriesValues()

	wantXs := []float64{1, 1, 2, 2, 3, 3}
	wantYs := []float64{1, 2, 3, 4, 5, 6}
	for i := range wantXs {
		if xs[i] != wantXs[i] || ys[i] != wantYs[i] {
			t.Fatalf("seriesValues = (%v, %v), want (%v, %v)", xs, ys, wantXs, wantYs)
		}
	}
}

func TestBarsEmptyGroups(t *testing.T) {
	svg := string(Render([]Element{Bars(nil)}, ID("t")))
	if strings.Contains(svg, "<rect") {
		t.Error("empty bars rendered rects")
	}
}

func TestBarWidthZeroGuard(t *testing.T) {
	e := Bars(nil).(*barsElement)
	m := New([]Element{Line(Pts(0, 0, 1, 1))}, ID("t")).Meta()
	if got := e.barWidth(m); got <= 0 || math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("barWidth with no groups = %v, want positive finite fallback", got)
	}
}
