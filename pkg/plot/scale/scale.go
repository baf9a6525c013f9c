// Package scale converts data-value ranges into pixel-space scales.
//
// A Scale describes one axis: the lowest and highest visible data
// values, the pixel length available for drawing, and the pixel
// offsets reserved at each edge. Scales are computed fresh for every
// render pass and never mutated afterwards, so the forward and inverse
// transforms derived from them stay consistent for the whole pass.
package scale

import "math"

// fallbackSpan is substituted when all input values are equal, so a
// degenerate data range never produces a division by zero downstream.
const fallbackSpan = 1.0

// Adjust transforms an axis boundary value. Plots use a pair of these
// to widen or clamp the computed domain/range, e.g. func(l float64)
// float64 { return math.Min(l, 0) } to always include zero.
type Adjust func(float64) float64

// Identity returns its argument unchanged. It is the default boundary
// adjustment on both ends of both axes.
func Identity(v float64) float64 { return v }

// Bounds holds forced minimum/maximum values contributed by series
// types regardless of the raw data extremes. Area and bar series force
// a zero baseline into the y bounds; bars contribute half-slot margins
// on x. A nil field means no forced bound on that end.
type Bounds struct {
	Lower *float64
	Upper *float64
}

// Merge combines two bounds, keeping the wider extreme on each end.
func (b Bounds) Merge(other Bounds) Bounds {
	out := b
	if other.Lower != nil && (out.Lower == nil || *other.Lower < *out.Lower) {
		out.Lower = other.Lower
	}
	if other.Upper != nil && (out.Upper == nil || *other.Upper > *out.Upper) {
		out.Upper = other.Upper
	}
	return out
}

// Bound is a convenience constructor for a forced bound value.
func Bound(v float64) *float64 { return &v }

// Offset is the pixel padding reserved at the lower and upper edge of
// an axis. Data values map into the remaining inner span.
type Offset struct {
	Lower float64
	Upper float64
}

// Scale holds the derived mapping parameters for one axis.
// Range is always Highest-Lowest and always positive; degenerate
// inputs are widened by fallbackSpan during Compute.
type Scale struct {
	Lowest  float64
	Highest float64
	Range   float64
	Length  float64
	Offset  Offset
}

// Compute derives a Scale from raw axis values.
//
// The lowest and highest raw values (or the forced bounds, whichever
// are wider) are passed through the user adjustment functions to
// produce the final visible extremes. Empty input with no forced
// bounds degrades to the unit interval rather than an error: the
// result is a trivial but safe scale.
func Compute(length float64, toLowest, toHighest Adjust, padLower, padUpper float64, bounds Bounds, values []float64) Scale {
	if toLowest == nil {
		toLowest = Identity
	}
	if toHighest == nil {
		toHighest = Identity
	}

	lo, hi, ok := minMax(values)
	if !ok {
		lo, hi = 0, 1
		if bounds.Lower != nil || bounds.Upper != nil {
			lo, hi = 0, 0
		}
	}
	if bounds.Lower != nil && *bounds.Lower < lo {
		lo = *bounds.Lower
	}
	if bounds.Upper != nil && *bounds.Upper > hi {
		hi = *bounds.Upper
	}

	lowest := toLowest(lo)
	highest := toHighest(hi)
	if highest < lowest {
		lowest, highest = highest, lowest
	}
	if highest == lowest {
		highest = lowest + fallbackSpan
	}

	return Scale{
		Lowest:  lowest,
		Highest: highest,
		Range:   highest - lowest,
		Length:  length,
		Offset:  Offset{Lower: padLower, Upper: padUpper},
	}
}

// inner is the pixel span left for data after edge offsets, guarded
// against non-positive spans from oversized padding.
func (s Scale) inner() float64 {
	span := s.Length - s.Offset.Lower - s.Offset.Upper
	if span <= 0 {
		return fallbackSpan
	}
	return span
}

// Pixel maps a data value to a pixel position along the axis, measured
// from the lower edge. The lowest visible value lands on Offset.Lower,
// the highest on Length-Offset.Upper.
func (s Scale) Pixel(v float64) float64 {
	return s.Offset.Lower + (v-s.Lowest)/s.Range*s.inner()
}

// Value is the exact algebraic inverse of Pixel.
func (s Scale) Value(px float64) float64 {
	return (px-s.Offset.Lower)*s.Range/s.inner() + s.Lowest
}

// Project converts a span in data units to a pixel distance. It is
// used for widths (e.g. bar slots) where no edge translation applies.
func (s Scale) Project(span float64) float64 {
	return span / s.Range * s.inner()
}

// Contains reports whether v lies within the visible range.
func (s Scale) Contains(v float64) bool {
	return v >= s.Lowest && v <= s.Highest
}

// Clamp restricts v to the visible range. Axis renderers use it to
// place the baseline at the crossing value without leaving the frame.
func (s Scale) Clamp(v float64) float64 {
	return math.Max(s.Lowest, math.Min(s.Highest, v))
}

func minMax(values []float64) (lo, hi float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, true
}
