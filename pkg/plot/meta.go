package plot

import (
	"math"
	"sort"

	"github.com/plotline/plotline/pkg/plot/scale"
)

// Meta is the complete per-render layout context shared by all
// elements of one plot. It is derived once per render pass and never
// mutated afterwards; every element draws against the same instance so
// the coordinate transforms agree pixel-for-pixel.
type Meta struct {
	ID     string
	Width  float64
	Height float64

	// X and Y are the computed per-axis scales.
	X scale.Scale
	Y scale.Scale

	// XTicks and YTicks are the tick value lists derived from the
	// first axis or grid element per orientation.
	XTicks []float64
	YTicks []float64

	marginLeft float64
	marginTop  float64

	// allX is the sorted union of every series' x-values, used for
	// nearest-neighbor hint snapping.
	allX []float64

	series []seriesData
}

// seriesData records the raw values of one series for hint lookups.
type seriesData struct {
	xs []float64
	ys []float64
}

// ToSVG forward-transforms a data point to absolute SVG document
// coordinates. The y axis is flipped: larger data values map to
// smaller pixel y.
func (m *Meta) ToSVG(x, y float64) (px, py float64) {
	return m.ToSVGX(x), m.ToSVGY(y)
}

// ToSVGX maps a data x-value to a document x-coordinate.
func (m *Meta) ToSVGX(x float64) float64 {
	return m.marginLeft + m.X.Pixel(x)
}

// ToSVGY maps a data y-value to a document y-coordinate.
func (m *Meta) ToSVGY(y float64) float64 {
	return m.marginTop + m.Y.Length - m.Y.Pixel(y)
}

// FromSVG is the exact algebraic inverse of ToSVG.
func (m *Meta) FromSVG(px, py float64) (x, y float64) {
	return m.FromSVGX(px), m.FromSVGY(py)
}

// FromSVGX maps a document x-coordinate back to a data x-value.
func (m *Meta) FromSVGX(px float64) float64 {
	return m.X.Value(px - m.marginLeft)
}

// FromSVGY maps a document y-coordinate back to a data y-value.
func (m *Meta) FromSVGY(py float64) float64 {
	return m.Y.Value(m.Y.Length - (py - m.marginTop))
}

// Left, Right, Top and Bottom are the document coordinates of the
// inner plot frame (the area inside the margins). Grid lines span
// these bounds.
func (m *Meta) Left() float64   { return m.marginLeft }
func (m *Meta) Right() float64  { return m.marginLeft + m.X.Length }
func (m *Meta) Top() float64    { return m.marginTop }
func (m *Meta) Bottom() float64 { return m.marginTop + m.Y.Length }

// XAxisCrossing is the document y-coordinate at which the x-axis
// baseline sits: where y=0 maps, clamped into the visible range.
func (m *Meta) XAxisCrossing() float64 {
	return m.ToSVGY(m.Y.Clamp(0))
}

// YAxisCrossing is the document x-coordinate at which the y-axis
// baseline sits.
func (m *Meta) YAxisCrossing() float64 {
	return m.ToSVGX(m.X.Clamp(0))
}

// NearestX snaps a data x-value to the nearest x present in any
// series. It reports false when the plot has no series values at all.
func (m *Meta) NearestX(x float64) (float64, bool) {
	if len(m.allX) == 0 {
		return 0, false
	}
	i := sort.SearchFloat64s(m.allX, x)
	if i == 0 {
		return m.allX[0], true
	}
	if i == len(m.allX) {
		return m.allX[len(m.allX)-1], true
	}
	lo, hi := m.allX[i-1], m.allX[i]
	if x-lo <= hi-x {
		return lo, true
	}
	return hi, true
}

// ValuesAt gathers the y-values each series holds at exactly the given
// x-value. The result has one entry per value-carrying element, in
// element order; entries are nil for series without an exact match.
// Lookup is exact equality, not interpolation.
func (m *Meta) ValuesAt(x float64) [][]float64 {
	out := make([][]float64, len(m.series))
	for i, s := range m.series {
		for j, sx := range s.xs {
			if sx == x {
				out[i] = append(out[i], s.ys[j])
			}
		}
	}
	return out
}

// buildMeta scans the elements for raw values, forced bounds and tick
// configurations and derives the shared layout context.
func buildMeta(cfg config, elements []Element) *Meta {
	var xs, ys []float64
	var xBounds, yBounds scale.Bounds
	var series []seriesData

	for _, el := range elements {
		if vs, ok := el.(valueSource); ok {
			ex, ey := vs.seriesValues()
			xs = append(xs, ex...)
			ys = append(ys, ey...)
			series = append(series, seriesData{xs: ex, ys: ey})
		}
		if bs, ok := el.(boundsSource); ok {
			bx, by := bs.scaleBounds()
			xBounds = xBounds.Merge(bx)
			yBounds = yBounds.Merge(by)
		}
	}

	xLength := math.Max(cfg.width-cfg.margin.Left-cfg.margin.Right, 1)
	yLength := math.Max(cfg.height-cfg.margin.Top-cfg.margin.Bottom, 1)

	m := &Meta{
		ID:         cfg.id,
		Width:      cfg.width,
		Height:     cfg.height,
		marginLeft: cfg.margin.Left,
		marginTop:  cfg.margin.Top,
		X: scale.Compute(xLength, cfg.rangeLowest, cfg.rangeHighest,
			cfg.paddingX.Lower, cfg.paddingX.Upper, xBounds, xs),
		Y: scale.Compute(yLength, cfg.domainLowest, cfg.domainHighest,
			cfg.paddingY.Lower, cfg.paddingY.Upper, yBounds, ys),
		series: series,
	}

	m.allX = sortedUnion(series)
	m.XTicks, m.YTicks = deriveTicks(m, elements)
	return m
}

// deriveTicks resolves the tick value lists from the first tick source
// per orientation. Later axis or grid elements never affect the
// shared tick lists.
func deriveTicks(m *Meta, elements []Element) (xTicks, yTicks []float64) {
	var xStrategy, yStrategy scale.Strategy
	haveX, haveY := false, false
	for _, el := range elements {
		ts, ok := el.(tickSource)
		if !ok {
			continue
		}
		switch orient, st := ts.tickInfo(); orient {
		case OrientationX:
			if !haveX {
				xStrategy, haveX = st, true
			}
		case OrientationY:
			if !haveY {
				yStrategy, haveY = st, true
			}
		}
	}
	if haveX {
		xTicks = scale.Ticks(m.X, xStrategy)
	}
	if haveY {
		yTicks = scale.Ticks(m.Y, yStrategy)
	}
	return xTicks, yTicks
}

func sortedUnion(series []seriesData) []float64 {
	seen := make(map[float64]struct{})
	var union []float64
	for _, s := range series {
		for _, x := range s.xs {
			if _, ok := seen[x]; ok {
				continue
			}
			seen[x] = struct{}{}
			union = append(union, x)
		}
	}
	sort.Float64s(union)
	return union
}
