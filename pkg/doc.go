// Package pkg provides the core libraries for plotline chart rendering.
//
// # Overview
//
// Plotline composes declarative chart descriptions into standalone SVG
// documents. The pkg directory is organized into these areas:
//
//  1. [plot] - The rendering core (scales, series, axes, hints)
//  2. [chartfile] - Declarative TOML chart descriptions
//  3. [pipeline] - Orchestration (load → compose → render)
//  4. [cache] - Render cache for the documentation server
//  5. [errors], [observability], [buildinfo] - Cross-cutting support
//
// # Architecture
//
// The typical data flow through plotline:
//
//	Chart description (TOML) or plot.Element values
//	         ↓
//	    [plot/scale] package (bounds, scales, ticks)
//	         ↓
//	    [plot] package (shared layout + element drawing)
//	         ↓
//	    SVG output
//
// # Quick Start
//
// Render a chart directly from code:
//
//	svg := plot.Render([]plot.Element{
//	    plot.Line(plot.Pts(0, 1, 1, 3, 2, 2)),
//	    plot.XAxis(),
//	    plot.YAxis(),
//	})
package pkg
