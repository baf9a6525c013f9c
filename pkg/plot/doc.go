// Package plot composes declarative chart descriptions into SVG.
//
// A plot is an ordered list of elements (series, axes, grids, hints,
// custom views) rendered against one shared layout context (the Meta).
// The Meta is derived exactly once per render pass by scanning every
// element for raw values and forced bounds; all coordinate transforms
// are closures over that single Meta, which keeps every element
// pixel-aligned with every other.
//
// Construction follows a functional-options idiom on two levels:
// plot-level options (size, margins, padding, domain/range
// adjustments) and per-element style options, each folded
// left-to-right over a default configuration, later options winning
// on conflicting fields.
//
//	svg := plot.Render(
//	    []plot.Element{
//	        plot.Line(points, plot.Stroke("#e4595c")),
//	        plot.XAxis(),
//	        plot.YAxis(plot.AxisTicks(scale.Count(5))),
//	    },
//	    plot.Size(640, 360),
//	)
//
// Malformed or missing configuration never produces an error: inputs
// degrade to safe defaults (empty data yields a trivial scale, zero
// divisors are guarded by fallback spans).
package plot
