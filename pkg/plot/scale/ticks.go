package scale

import "math"

// tickEps absorbs accumulated floating point error when stepping
// through tick positions, so the highest tick is not dropped.
const tickEps = 1e-9

// Strategy produces the ordered tick values for a scale.
// Implementations are created with Delta, Count, List or Func.
type Strategy interface {
	values(s Scale) []float64
}

type deltaStrategy struct{ delta float64 }

// Delta places a tick at every multiple of delta inside the visible
// range. Non-positive deltas yield no ticks.
func Delta(delta float64) Strategy { return deltaStrategy{delta} }

func (st deltaStrategy) values(s Scale) []float64 {
	if st.delta <= 0 {
		return nil
	}
	var ticks []float64
	start := math.Ceil(s.Lowest/st.delta) * st.delta
	for v := start; v <= s.Highest+tickEps; v += st.delta {
		ticks = append(ticks, v)
	}
	return ticks
}

type countStrategy struct{ count int }

// Count aims for approximately count ticks at "nice" values, choosing
// a 1/2/5 step at the appropriate power of ten.
func Count(count int) Strategy { return countStrategy{count} }

func (st countStrategy) values(s Scale) []float64 {
	if st.count <= 0 {
		return nil
	}
	return deltaStrategy{niceDelta(s.Range, st.count)}.values(s)
}

type listStrategy struct{ ticks []float64 }

// List uses the given values verbatim, filtered to the visible range.
func List(ticks ...float64) Strategy {
	out := make([]float64, len(ticks))
	copy(out, ticks)
	return listStrategy{out}
}

func (st listStrategy) values(s Scale) []float64 {
	var ticks []float64
	for _, v := range st.ticks {
		if s.Contains(v) {
			ticks = append(ticks, v)
		}
	}
	return ticks
}

type funcStrategy struct{ fn func(Scale) []float64 }

// Func delegates tick computation to a caller-supplied function.
func Func(fn func(Scale) []float64) Strategy { return funcStrategy{fn} }

func (st funcStrategy) values(s Scale) []float64 {
	if st.fn == nil {
		return nil
	}
	return st.fn(s)
}

// Ticks computes the ordered tick values for s using the strategy.
// A nil strategy defaults to roughly ten nice ticks.
func Ticks(s Scale, st Strategy) []float64 {
	if st == nil {
		st = Count(10)
	}
	return st.values(s)
}

// niceDelta picks the smallest step from the 1/2/5 series whose tick
// count does not exceed the requested count.
func niceDelta(span float64, count int) float64 {
	raw := span / float64(count)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
