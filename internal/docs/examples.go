// Package docs holds the example gallery behind the documentation
// server and the demo command. Each example pairs a builder with the
// Go source a reader would write to get the same chart, so the pages
// can show live output and code side by side.
package docs

import (
	"math/rand"

	"github.com/plotline/plotline/pkg/plot"
	"github.com/plotline/plotline/pkg/plot/scale"
)

// Example is one gallery entry. Build produces the chart for a given
// random seed so pages can regenerate their sample data on refresh.
type Example struct {
	Name    string
	Title   string
	Summary string
	Source  string
	Build   func(seed int64) ([]plot.Element, []plot.Option)
}

// All returns the gallery in display order.
func All() []Example {
	return registry
}

// Lookup finds an example by URL name.
func Lookup(name string) (Example, bool) {
	for _, ex := range registry {
		if ex.Name == name {
			return ex, true
		}
	}
	return Example{}, false
}

// Walk generates n points of a bounded random walk starting at zero.
// The same seed always produces the same walk.
func Walk(seed int64, n int) []plot.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]plot.Point, n)
	y := 0.0
	for i := range pts {
		y += rng.Float64()*10 - 5
		pts[i] = plot.Point{X: float64(i), Y: y}
	}
	return pts
}

// groups generates bar groups with values in [1, 10).
func groups(seed int64, n, size int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	gs := make([][]float64, n)
	for i := range gs {
		g := make([]float64, size)
		for j := range g {
			g[j] = 1 + rng.Float64()*9
		}
		gs[i] = g
	}
	return gs
}

var registry = []Example{
	{
		Name:    "line",
		Title:   "Line chart",
		Summary: "A single line series with default axes.",
		Source: `plot.Render([]plot.Element{
	plot.Line(points),
	plot.XAxis(),
	plot.YAxis(),
})`,
		Build: func(seed int64) ([]plot.Element, []plot.Option) {
			return []plot.Element{
				plot.Line(Walk(seed, 30)),
				plot.XAxis(),
				plot.YAxis(),
			}, nil
		},
	},
	{
		Name:    "smooth",
		Title:   "Smooth interpolation",
		Summary: "Monotone cubic interpolation keeps the curve inside the data.",
		Source: `plot.Render([]plot.Element{
	plot.Line(points, plot.Smooth(), plot.Stroke("#e4595c")),
	plot.XAxis(),
	plot.YAxis(),
})`,
		Build: func(seed int64) ([]plot.Element, []plot.Option) {
			return []plot.Element{
				plot.Line(Walk(seed, 15), plot.Smooth(), plot.Stroke("#e4595c")),
				plot.XAxis(),
				plot.YAxis(),
			}, nil
		},
	},
	{
		Name:    "area",
		Title:   "Area chart",
		Summary: "Area series always include the zero baseline.",
		Source: `plot.Render([]plot.Element{
	plot.Area(points, plot.Smooth()),
	plot.XAxis(),
	plot.YAxis(),
})`,
		Build: func(seed int64) ([]plot.Element, []plot.Option) {
			return []plot.Element{
				plot.Area(Walk(seed, 30), plot.Smooth()),
				plot.XAxis(),
				plot.YAxis(),
			}, nil
		},
	},
	{
		Name:    "scatter",
		Title:   "Scatter plot",
		Summary: "Individual points without a connecting line.",
		Source: `plot.Render([]plot.Element{
	plot.Scatter(points, plot.Radius(5)),
	plot.XAxis(),
	plot.YAxis(),
})`,
		Build: func(seed int64) ([]plot.Element, []plot.Option) {
			return []plot.Element{
				plot.Scatter(Walk(seed, 25), plot.Radius(5)),
				plot.XAxis(),
				plot.YAxis(),
			}, nil
		},
	},
	{
		Name:    "bars",
		Title:   "Grouped bars",
		Summary: "Bar groups occupy integer slots; widths adapt to the group count.",
		Source: `plot.Render([]plot.Element{
	plot.Bars(groups, plot.BarMaxWidth(plot.PercentageWidth(75))),
	plot.XAxis(plot.AxisTicks(scale.Delta(1))),
	plot.YAxis(),
})`,
		Build: func(seed int64) ([]plot.Element, []plot.Option) {
			return []plot.Element{
				plot.Bars(groups(seed, 5, 2), plot.BarMaxWidth(plot.PercentageWidth(75))),
				plot.XAxis(plot.AxisTicks(scale.Delta(1))),
				plot.YAxis(),
			}, nil
		},
	},
	{
		Name:    "grid",
		Title:   "Grid lines",
		Summary: "Grids draw below series and share tick positions with the axes.",
		Source: `plot.Render([]plot.Element{
	plot.YGrid(plot.AxisTicks(scale.Count(5))),
	plot.Line(points),
	plot.XAxis(),
	plot.YAxis(plot.AxisTicks(scale.Count(5))),
})`,
		Build: func(seed int64) ([]plot.Element, []plot.Option) {
			return []plot.Element{
				plot.YGrid(plot.AxisTicks(scale.Count(5))),
				plot.Line(Walk(seed, 30)),
				plot.XAxis(),
				plot.YAxis(plot.AxisTicks(scale.Count(5))),
			}, nil
		},
	},
	{
		Name:    "hint",
		Title:   "Hover hint",
		Summary: "Move the cursor over the chart to see values at the nearest x.",
		Source: `plot.Render([]plot.Element{
	plot.Line(points),
	plot.Scatter(points, plot.Radius(3)),
	plot.XAxis(),
	plot.YAxis(),
	plot.Hint(),
})`,
		Build: func(seed int64) ([]plot.Element, []plot.Option) {
			pts := Walk(seed, 20)
			return []plot.Element{
				plot.Line(pts),
				plot.Scatter(pts, plot.Radius(3)),
				plot.XAxis(),
				plot.YAxis(),
				plot.Hint(),
			}, nil
		},
	},
}
