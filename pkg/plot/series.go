package plot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/plotline/plotline/pkg/plot/scale"
)

// Interpolation selects how line and area paths connect their points.
type Interpolation int

const (
	// NoInterpolation connects points with straight segments.
	NoInterpolation Interpolation = iota
	// Monotone connects points with a smooth spline that stays
	// visually faithful to the data direction.
	Monotone
)

// seriesConfig is the shared style bag for line, area and scatter
// series. Unset fields fall back to per-variant defaults at draw
// time; there is no validation beyond last-write-wins.
type seriesConfig struct {
	stroke        string
	strokeWidth   float64
	fill          string
	opacity       float64
	radius        float64
	interpolation Interpolation
	classes       []string
}

// SeriesOption mutates a series style configuration.
type SeriesOption func(*seriesConfig)

// Stroke sets the stroke color.
func Stroke(color string) SeriesOption {
	return func(c *seriesConfig) { c.stroke = color }
}

// StrokeWidth sets the stroke width in pixels.
func StrokeWidth(w float64) SeriesOption {
	return func(c *seriesConfig) { c.strokeWidth = w }
}

// Fill sets the fill color.
func Fill(color string) SeriesOption {
	return func(c *seriesConfig) { c.fill = color }
}

// Opacity sets the element opacity (0 to 1).
func Opacity(o float64) SeriesOption {
	return func(c *seriesConfig) { c.opacity = o }
}

// Radius sets the point radius for scatter series.
func Radius(r float64) SeriesOption {
	return func(c *seriesConfig) { c.radius = r }
}

// Interpolate sets the path interpolation mode.
func Interpolate(mode Interpolation) SeriesOption {
	return func(c *seriesConfig) { c.interpolation = mode }
}

// Smooth is shorthand for Interpolate(Monotone).
func Smooth() SeriesOption {
	return Interpolate(Monotone)
}

// SeriesClass appends class names to the series element.
func SeriesClass(names ...string) SeriesOption {
	return func(c *seriesConfig) { c.classes = append(c.classes, names...) }
}

func foldSeries(defaults seriesConfig, opts []SeriesOption) seriesConfig {
	cfg := defaults
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type seriesKind int

const (
	kindLine seriesKind = iota
	kindArea
	kindScatter
)

type seriesElement struct {
	kind   seriesKind
	cfg    seriesConfig
	points []Point
}

// Line plots the points as a connected path.
func Line(points []Point, opts ...SeriesOption) Element {
	return &seriesElement{
		kind:   kindLine,
		cfg:    foldSeries(seriesConfig{stroke: "#5b8def", strokeWidth: 1.5, fill: "none"}, opts),
		points: points,
	}
}

// Area plots the points as a path closed down to the zero baseline.
// The series forces y=0 into the axis bounds even when all data lies
// on one side of it.
func Area(points []Point, opts ...SeriesOption) Element {
	return &seriesElement{
		kind:   kindArea,
		cfg:    foldSeries(seriesConfig{stroke: "#5b8def", strokeWidth: 1, fill: "#cfdffb"}, opts),
		points: points,
	}
}

// Scatter plots one circle per point.
func Scatter(points []Point, opts ...SeriesOption) Element {
	return &seriesElement{
		kind:   kindScatter,
		cfg:    foldSeries(seriesConfig{fill: "#5b8def", radius: 3.5}, opts),
		points: points,
	}
}

func (e *seriesElement) seriesValues() (xs, ys []float64) {
	xs = make([]float64, len(e.points))
	ys = make([]float64, len(e.points))
	for i, p := range e.points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func (e *seriesElement) scaleBounds() (x, y scale.Bounds) {
	if e.kind == kindArea {
		// The closed baseline must be visible regardless of the
		// data extremes.
		y = scale.Bounds{Lower: scale.Bound(0), Upper: scale.Bound(0)}
	}
	return x, y
}

func (e *seriesElement) draw(m *Meta, buf *bytes.Buffer) {
	if len(e.points) == 0 {
		return
	}
	switch e.kind {
	case kindLine:
		e.drawLine(m, buf)
	case kindArea:
		e.drawArea(m, buf)
	case kindScatter:
		e.drawScatter(m, buf)
	}
}

func (e *seriesElement) drawLine(m *Meta, buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <path class=%q d=%q fill="none" stroke=%q stroke-width="%s"%s/>`+"\n",
		classAttr("plot-line", e.cfg.classes),
		pathData(m, e.points, e.cfg.interpolation),
		e.cfg.stroke, ftoa(e.cfg.strokeWidth), opacityAttr(e.cfg.opacity))
}

func (e *seriesElement) drawArea(m *Meta, buf *bytes.Buffer) {
	baseline := m.ToSVGY(m.Y.Clamp(0))
	first := m.ToSVGX(e.points[0].X)
	last := m.ToSVGX(e.points[len(e.points)-1].X)

	var d strings.Builder
	fmt.Fprintf(&d, "M %s,%s L", ftoa(first), ftoa(baseline))
	d.WriteString(strings.TrimPrefix(pathData(m, e.points, e.cfg.interpolation), "M"))
	fmt.Fprintf(&d, " L %s,%s Z", ftoa(last), ftoa(baseline))

	fmt.Fprintf(buf, `  <path class=%q d=%q fill=%q stroke=%q stroke-width="%s"%s/>`+"\n",
		classAttr("plot-area", e.cfg.classes), d.String(),
		e.cfg.fill, e.cfg.stroke, ftoa(e.cfg.strokeWidth), opacityAttr(e.cfg.opacity))
}

func (e *seriesElement) drawScatter(m *Meta, buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <g class=%q>`+"\n", classAttr("plot-scatter", e.cfg.classes))
	for _, p := range e.points {
		px, py := m.ToSVG(p.X, p.Y)
		fmt.Fprintf(buf, `    <circle cx="%s" cy="%s" r="%s" fill=%q%s/>`+"\n",
			ftoa(px), ftoa(py), ftoa(e.cfg.radius), e.cfg.fill, opacityAttr(e.cfg.opacity))
	}
	buf.WriteString("  </g>\n")
}

func opacityAttr(o float64) string {
	if o <= 0 || o >= 1 {
		return ""
	}
	return fmt.Sprintf(` opacity="%s"`, ftoa(o))
}

// pathData builds the SVG path through the points in pixel space.
// Monotone interpolation emits a Catmull-Rom derived cubic spline.
func pathData(m *Meta, points []Point, mode Interpolation) string {
	px := make([][2]float64, len(points))
	for i, p := range points {
		px[i][0], px[i][1] = m.ToSVG(p.X, p.Y)
	}

	var d strings.Builder
	fmt.Fprintf(&d, "M %s,%s", ftoa(px[0][0]), ftoa(px[0][1]))
	if mode == NoInterpolation || len(px) < 3 {
		for _, p := range px[1:] {
			fmt.Fprintf(&d, " L %s,%s", ftoa(p[0]), ftoa(p[1]))
		}
		return d.String()
	}

	at := func(i int) [2]float64 {
		if i < 0 {
			return px[0]
		}
		if i >= len(px) {
			return px[len(px)-1]
		}
		return px[i]
	}
	for i := 0; i < len(px)-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		c1x := p1[0] + (p2[0]-p0[0])/6
		c1y := p1[1] + (p2[1]-p0[1])/6
		c2x := p2[0] - (p3[0]-p1[0])/6
		c2y := p2[1] - (p3[1]-p1[1])/6
		fmt.Fprintf(&d, " C %s,%s %s,%s %s,%s",
			ftoa(c1x), ftoa(c1y), ftoa(c2x), ftoa(c2y), ftoa(p2[0]), ftoa(p2[1]))
	}
	return d.String()
}
