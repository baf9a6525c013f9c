package plot

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/plotline/plotline/pkg/plot/scale"
)

// LabelFunc renders a tick value as label text.
type LabelFunc func(v float64) string

func defaultLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type axisConfig struct {
	ticks   scale.Strategy
	label   LabelFunc
	at      *float64
	stroke  string
	classes []string
}

// AxisOption mutates an axis or grid configuration.
type AxisOption func(*axisConfig)

// AxisTicks sets the tick value strategy. Only the first axis or grid
// element per orientation contributes the shared tick list; tick
// strategies on later elements are ignored.
func AxisTicks(st scale.Strategy) AxisOption {
	return func(c *axisConfig) { c.ticks = st }
}

// AxisLabel sets the tick label renderer.
func AxisLabel(f LabelFunc) AxisOption {
	return func(c *axisConfig) { c.label = f }
}

// AxisAt sets the value on the opposite axis where the baseline
// crosses. The default is zero, clamped into the visible range.
func AxisAt(v float64) AxisOption {
	return func(c *axisConfig) { c.at = &v }
}

// AxisStroke sets the baseline and tick mark color.
func AxisStroke(color string) AxisOption {
	return func(c *axisConfig) { c.stroke = color }
}

// AxisClass appends class names to the axis or grid group.
func AxisClass(names ...string) AxisOption {
	return func(c *axisConfig) { c.classes = append(c.classes, names...) }
}

func foldAxis(defaults axisConfig, opts []AxisOption) axisConfig {
	cfg := defaults
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

const tickLength = 5

// axisView flips which scale is treated as primary so one renderer
// serves both orientations.
type axisView struct {
	m      *Meta
	orient Orientation
}

// place maps a (position along primary axis, position on secondary
// axis) pair to document coordinates.
func (v axisView) place(along, cross float64) (x, y float64) {
	if v.orient == OrientationX {
		return along, cross
	}
	return cross, along
}

// ticks returns the shared tick list for the primary axis.
func (v axisView) ticks() []float64 {
	if v.orient == OrientationX {
		return v.m.XTicks
	}
	return v.m.YTicks
}

// pixel maps a primary-axis data value to its document coordinate.
func (v axisView) pixel(t float64) float64 {
	if v.orient == OrientationX {
		return v.m.ToSVGX(t)
	}
	return v.m.ToSVGY(t)
}

// crossing is the document coordinate on the secondary axis where the
// baseline sits.
func (v axisView) crossing(at *float64) float64 {
	if v.orient == OrientationX {
		if at != nil {
			return v.m.ToSVGY(v.m.Y.Clamp(*at))
		}
		return v.m.XAxisCrossing()
	}
	if at != nil {
		return v.m.ToSVGX(v.m.X.Clamp(*at))
	}
	return v.m.YAxisCrossing()
}

// span is the primary-axis pixel extent of the frame.
func (v axisView) span() (lo, hi float64) {
	if v.orient == OrientationX {
		return v.m.Left(), v.m.Right()
	}
	return v.m.Top(), v.m.Bottom()
}

// crossSpan is the secondary-axis pixel extent, used by grids.
func (v axisView) crossSpan() (lo, hi float64) {
	if v.orient == OrientationX {
		return v.m.Top(), v.m.Bottom()
	}
	return v.m.Left(), v.m.Right()
}

type axisElement struct {
	orient Orientation
	cfg    axisConfig
}

// XAxis draws the horizontal axis: a baseline at the y-crossing, tick
// marks, and per-tick labels.
func XAxis(opts ...AxisOption) Element {
	return &axisElement{orient: OrientationX, cfg: foldAxis(axisConfig{stroke: "#9b9b9b", label: defaultLabel}, opts)}
}

// YAxis draws the vertical axis.
func YAxis(opts ...AxisOption) Element {
	return &axisElement{orient: OrientationY, cfg: foldAxis(axisConfig{stroke: "#9b9b9b", label: defaultLabel}, opts)}
}

func (e *axisElement) tickInfo() (Orientation, scale.Strategy) {
	return e.orient, e.cfg.ticks
}

func (e *axisElement) draw(m *Meta, buf *bytes.Buffer) {
	v := axisView{m: m, orient: e.orient}
	cross := v.crossing(e.cfg.at)
	lo, hi := v.span()

	base := "plot-axis plot-axis-x"
	if e.orient == OrientationY {
		base = "plot-axis plot-axis-y"
	}
	fmt.Fprintf(buf, `  <g class=%q>`+"\n", classAttr(base, e.cfg.classes))

	x1, y1 := v.place(lo, cross)
	x2, y2 := v.place(hi, cross)
	fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke=%q/>`+"\n",
		ftoa(x1), ftoa(y1), ftoa(x2), ftoa(y2), e.cfg.stroke)

	for _, t := range v.ticks() {
		e.drawTick(v, buf, t, cross)
	}
	buf.WriteString("  </g>\n")
}

func (e *axisElement) drawTick(v axisView, buf *bytes.Buffer, t, cross float64) {
	along := v.pixel(t)

	// Tick marks extend below the x-axis and left of the y-axis.
	markEnd := cross + tickLength
	if e.orient == OrientationY {
		markEnd = cross - tickLength
	}
	x1, y1 := v.place(along, cross)
	x2, y2 := v.place(along, markEnd)
	fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke=%q/>`+"\n",
		ftoa(x1), ftoa(y1), ftoa(x2), ftoa(y2), e.cfg.stroke)

	if e.cfg.label == nil {
		return
	}
	label := e.cfg.label(t)
	if label == "" {
		return
	}
	if e.orient == OrientationX {
		tx, ty := v.place(along, cross+tickLength+12)
		fmt.Fprintf(buf, `    <text x="%s" y="%s" text-anchor="middle" font-size="11">%s</text>`+"\n",
			ftoa(tx), ftoa(ty), escapeText(label))
	} else {
		tx, ty := v.place(along, cross-tickLength-4)
		fmt.Fprintf(buf, `    <text x="%s" y="%s" text-anchor="end" dominant-baseline="middle" font-size="11">%s</text>`+"\n",
			ftoa(tx), ftoa(ty), escapeText(label))
	}
}

type gridElement struct {
	orient Orientation
	cfg    axisConfig
}

// XGrid draws one vertical line per x-tick, spanning the y range of
// the frame.
func XGrid(opts ...AxisOption) Element {
	return &gridElement{orient: OrientationX, cfg: foldAxis(axisConfig{stroke: "#e3e5e6"}, opts)}
}

// YGrid draws one horizontal line per y-tick.
func YGrid(opts ...AxisOption) Element {
	return &gridElement{orient: OrientationY, cfg: foldAxis(axisConfig{stroke: "#e3e5e6"}, opts)}
}

func (e *gridElement) tickInfo() (Orientation, scale.Strategy) {
	return e.orient, e.cfg.ticks
}

func (e *gridElement) draw(m *Meta, buf *bytes.Buffer) {
	v := axisView{m: m, orient: e.orient}
	lo, hi := v.crossSpan()

	base := "plot-grid plot-grid-x"
	if e.orient == OrientationY {
		base = "plot-grid plot-grid-y"
	}
	fmt.Fprintf(buf, `  <g class=%q>`+"\n", classAttr(base, e.cfg.classes))
	for _, t := range v.ticks() {
		along := v.pixel(t)
		x1, y1 := v.place(along, lo)
		x2, y2 := v.place(along, hi)
		fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke=%q/>`+"\n",
			ftoa(x1), ftoa(y1), ftoa(x2), ftoa(y2), e.cfg.stroke)
	}
	buf.WriteString("  </g>\n")
}
