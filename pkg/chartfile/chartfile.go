// Package chartfile loads declarative TOML chart descriptions and
// builds plot elements from them. It is the input format of the
// render command:
//
//	title = "Monthly visitors"
//
//	[plot]
//	width = 640
//	height = 360
//
//	[[series]]
//	type = "line"
//	stroke = "#e4595c"
//	smooth = true
//	points = [[0, 12], [1, 17], [2, 9]]
//
//	[xaxis]
//	ticks = { delta = 1 }
//
//	[yaxis]
//	ticks = { count = 5 }
//
// Unlike the rendering core, decoding reports structured errors for
// unknown series types and malformed input instead of degrading
// silently.
package chartfile

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/plotline/plotline/pkg/errors"
	"github.com/plotline/plotline/pkg/plot"
	"github.com/plotline/plotline/pkg/plot/scale"
)

// File is a decoded chart description.
type File struct {
	Title  string     `toml:"title"`
	Plot   PlotConfig `toml:"plot"`
	Series []Series   `toml:"series"`
	XAxis  *Axis      `toml:"xaxis"`
	YAxis  *Axis      `toml:"yaxis"`
	XGrid  *Axis      `toml:"xgrid"`
	YGrid  *Axis      `toml:"ygrid"`
	Hint   bool       `toml:"hint"`
}

// PlotConfig holds the plot-level options.
type PlotConfig struct {
	Width   float64   `toml:"width"`
	Height  float64   `toml:"height"`
	Margin  []float64 `toml:"margin"`  // top, right, bottom, left
	Padding []float64 `toml:"padding"` // lower, upper (y-axis pixels)
	ID      string    `toml:"id"`
	Classes []string  `toml:"classes"`
}

// Series is one data series entry. Type selects the variant; the
// remaining fields apply where the variant supports them.
type Series struct {
	Type        string      `toml:"type"` // line | area | scatter | bars
	Points      [][]float64 `toml:"points"`
	Groups      [][]float64 `toml:"groups"`
	Stroke      string      `toml:"stroke"`
	StrokeWidth float64     `toml:"stroke_width"`
	Fill        string      `toml:"fill"`
	Fills       []string    `toml:"fills"`
	Opacity     float64     `toml:"opacity"`
	Radius      float64     `toml:"radius"`
	Smooth      bool        `toml:"smooth"`
	MaxWidth    *MaxWidth   `toml:"max_width"`
	Classes     []string    `toml:"classes"`
}

// MaxWidth is the bar width clamping policy. Exactly one field should
// be set; fixed wins when both are.
type MaxWidth struct {
	Fixed      float64 `toml:"fixed"`
	Percentage float64 `toml:"percentage"`
}

// Axis configures an axis or grid element.
type Axis struct {
	Ticks *TickConfig `toml:"ticks"`
	At    *float64    `toml:"at"`
	Color string      `toml:"color"`
}

// TickConfig selects a tick strategy. Exactly one field should be
// set; delta wins over count, count over values.
type TickConfig struct {
	Delta  float64   `toml:"delta"`
	Count  int       `toml:"count"`
	Values []float64 `toml:"values"`
}

// Load reads and parses a chart file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "reading chart file %s", path)
	}
	return Parse(data)
}

// Parse decodes a chart description.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decoding chart file")
	}
	for i, s := range f.Series {
		switch s.Type {
		case "line", "area", "scatter", "bars":
		case "":
			return nil, errors.New(errors.ErrCodeInvalidSeries, "series %d is missing a type", i)
		default:
			return nil, errors.New(errors.ErrCodeInvalidSeries, "series %d has unknown type %q", i, s.Type)
		}
	}
	return &f, nil
}

// Build assembles the plot elements and options described by the
// file. Grid and hint layers come first so series draw above them and
// the hint layer is lifted to the top by the composer.
func (f *File) Build() ([]plot.Element, []plot.Option) {
	var elements []plot.Element

	if f.XGrid != nil {
		elements = append(elements, plot.XGrid(axisOptions(f.XGrid)...))
	}
	if f.YGrid != nil {
		elements = append(elements, plot.YGrid(axisOptions(f.YGrid)...))
	}
	for _, s := range f.Series {
		elements = append(elements, s.element())
	}
	if f.XAxis != nil {
		elements = append(elements, plot.XAxis(axisOptions(f.XAxis)...))
	}
	if f.YAxis != nil {
		elements = append(elements, plot.YAxis(axisOptions(f.YAxis)...))
	}
	if f.Hint {
		elements = append(elements, plot.Hint())
	}

	return elements, f.Plot.options()
}

func (c PlotConfig) options() []plot.Option {
	var opts []plot.Option
	if c.Width > 0 && c.Height > 0 {
		opts = append(opts, plot.Size(c.Width, c.Height))
	}
	if len(c.Margin) == 4 {
		opts = append(opts, plot.WithMargin(c.Margin[0], c.Margin[1], c.Margin[2], c.Margin[3]))
	}
	if len(c.Padding) == 2 {
		opts = append(opts, plot.Padding(c.Padding[0], c.Padding[1]))
	}
	if c.ID != "" {
		opts = append(opts, plot.ID(c.ID))
	}
	if len(c.Classes) > 0 {
		opts = append(opts, plot.Class(c.Classes...))
	}
	return opts
}

func (s Series) element() plot.Element {
	switch s.Type {
	case "bars":
		var opts []plot.BarsOption
		if len(s.Fills) > 0 {
			opts = append(opts, plot.BarFills(s.Fills...))
		}
		if s.MaxWidth != nil {
			opts = append(opts, plot.BarMaxWidth(s.MaxWidth.policy()))
		}
		if len(s.Classes) > 0 {
			opts = append(opts, plot.BarsClass(s.Classes...))
		}
		return plot.Bars(s.Groups, opts...)
	case "area":
		return plot.Area(s.points(), s.seriesOptions()...)
	case "scatter":
		return plot.Scatter(s.points(), s.seriesOptions()...)
	default:
		return plot.Line(s.points(), s.seriesOptions()...)
	}
}

func (s Series) points() []plot.Point {
	pts := make([]plot.Point, 0, len(s.Points))
	for _, p := range s.Points {
		if len(p) < 2 {
			continue
		}
		pts = append(pts, plot.Point{X: p[0], Y: p[1]})
	}
	return pts
}

func (s Series) seriesOptions() []plot.SeriesOption {
	var opts []plot.SeriesOption
	if s.Stroke != "" {
		opts = append(opts, plot.Stroke(s.Stroke))
	}
	if s.StrokeWidth > 0 {
		opts = append(opts, plot.StrokeWidth(s.StrokeWidth))
	}
	if s.Fill != "" {
		opts = append(opts, plot.Fill(s.Fill))
	}
	if s.Opacity > 0 {
		opts = append(opts, plot.Opacity(s.Opacity))
	}
	if s.Radius > 0 {
		opts = append(opts, plot.Radius(s.Radius))
	}
	if s.Smooth {
		opts = append(opts, plot.Smooth())
	}
	if len(s.Classes) > 0 {
		opts = append(opts, plot.SeriesClass(s.Classes...))
	}
	return opts
}

func (w MaxWidth) policy() plot.MaxBarWidth {
	if w.Fixed > 0 {
		return plot.FixedWidth(w.Fixed)
	}
	if w.Percentage > 0 {
		return plot.PercentageWidth(w.Percentage)
	}
	return plot.MaxBarWidth{}
}

func axisOptions(a *Axis) []plot.AxisOption {
	var opts []plot.AxisOption
	if a.Ticks != nil {
		opts = append(opts, plot.AxisTicks(a.Ticks.strategy()))
	}
	if a.At != nil {
		opts = append(opts, plot.AxisAt(*a.At))
	}
	if a.Color != "" {
		opts = append(opts, plot.AxisStroke(a.Color))
	}
	return opts
}

func (t TickConfig) strategy() scale.Strategy {
	switch {
	case t.Delta > 0:
		return scale.Delta(t.Delta)
	case t.Count > 0:
		return scale.Count(t.Count)
	case len(t.Values) > 0:
		return scale.List(t.Values...)
	default:
		return nil
	}
}
