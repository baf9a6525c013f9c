package plot

import (
	"bytes"
	"fmt"
	"math"

	"github.com/plotline/plotline/pkg/plot/scale"
)

// MaxBarWidth is the clamping policy for auto-computed bar widths.
// The zero value applies no clamp (the auto width is used as-is).
type MaxBarWidth struct {
	fixed      float64
	percentage float64
}

// FixedWidth caps bars at an absolute pixel width.
func FixedWidth(px float64) MaxBarWidth {
	return MaxBarWidth{fixed: px}
}

// PercentageWidth scales bars to the given percentage of the auto
// width. Values above 100 are treated as 100.
func PercentageWidth(p float64) MaxBarWidth {
	return MaxBarWidth{percentage: math.Min(p, 100)}
}

// apply clamps the auto-computed width according to the policy.
func (w MaxBarWidth) apply(auto float64) float64 {
	switch {
	case w.fixed > 0:
		return math.Min(auto, w.fixed)
	case w.percentage > 0:
		return auto * w.percentage / 100
	default:
		return auto
	}
}

// StackBy selects the bar stacking orientation. Only X (bars of one
// group placed side by side along the x-axis) has distinct rendering;
// Y is accepted but currently renders identically, mirroring the
// declared-but-unimplemented upstream behavior.
type StackBy int

const (
	StackByX StackBy = iota
	StackByY
)

type barsConfig struct {
	fills    []string
	stroke   string
	maxWidth MaxBarWidth
	stackBy  StackBy
	classes  []string
}

// BarsOption mutates a bars style configuration.
type BarsOption func(*barsConfig)

// BarFills sets the fill color of each parallel series within a
// group. The number of fills determines the number of bars drawn per
// group; groups with fewer values leave the remaining slots empty.
func BarFills(colors ...string) BarsOption {
	return func(c *barsConfig) { c.fills = colors }
}

// BarStroke sets the outline color of every bar.
func BarStroke(color string) BarsOption {
	return func(c *barsConfig) { c.stroke = color }
}

// BarMaxWidth sets the width clamping policy.
func BarMaxWidth(w MaxBarWidth) BarsOption {
	return func(c *barsConfig) { c.maxWidth = w }
}

// BarStackBy sets the stacking orientation.
func BarStackBy(s StackBy) BarsOption {
	return func(c *barsConfig) { c.stackBy = s }
}

// BarsClass appends class names to the bars group element.
func BarsClass(names ...string) BarsOption {
	return func(c *barsConfig) { c.classes = append(c.classes, names...) }
}

type barsElement struct {
	cfg    barsConfig
	groups [][]float64
}

// Bars plots grouped bar series. Each group holds the parallel series
// values at one x slot; slots sit at x = 1..len(groups). Bars force a
// zero baseline into the y bounds and extend the x bounds by half a
// slot on each side so axis padding accounts for bar width.
func Bars(groups [][]float64, opts ...BarsOption) Element {
	cfg := barsConfig{fills: []string{"#5b8def", "#e4595c", "#f2c94c"}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &barsElement{cfg: cfg, groups: groups}
}

// styleCount is the number of bars drawn per group: the configured
// fill count, or the widest group when no fills were configured.
func (e *barsElement) styleCount() int {
	n := len(e.cfg.fills)
	for _, g := range e.groups {
		if len(g) > n {
			n = len(g)
		}
	}
	if n == 0 {
		n = 1
	}
	return n
}

func (e *barsElement) seriesValues() (xs, ys []float64) {
	for i, g := range e.groups {
		x := float64(i + 1)
		for _, v := range g {
			xs = append(xs, x)
			ys = append(ys, v)
		}
	}
	return xs, ys
}

func (e *barsElement) scaleBounds() (x, y scale.Bounds) {
	y = scale.Bounds{Lower: scale.Bound(0), Upper: scale.Bound(0)}
	if n := len(e.groups); n > 0 {
		// Synthetic half-slot points keep the outermost bars
		// inside the frame.
		x = scale.Bounds{Lower: scale.Bound(0.5), Upper: scale.Bound(float64(n) + 0.5)}
	}
	return x, y
}

// barWidth computes the clamped per-bar pixel width: the inner axis
// width divided among all groups and styles, then run through the
// max-width policy. Zero group or style counts fall back to a unit
// width instead of dividing by zero.
func (e *barsElement) barWidth(m *Meta) float64 {
	groups := len(e.groups)
	styles := e.styleCount()
	if groups == 0 || styles == 0 {
		return 1
	}
	auto := m.X.Project(m.X.Range) / float64(groups*styles)
	return e.cfg.maxWidth.apply(auto)
}

func (e *barsElement) draw(m *Meta, buf *bytes.Buffer) {
	if len(e.groups) == 0 {
		return
	}
	width := e.barWidth(m)
	styles := e.styleCount()
	baseline := m.ToSVGY(m.Y.Clamp(0))

	fmt.Fprintf(buf, `  <g class=%q>`+"\n", classAttr("plot-bars", e.cfg.classes))
	for i, g := range e.groups {
		center := m.ToSVGX(float64(i + 1))
		start := center - width*float64(styles)/2
		for j, v := range g {
			if j >= styles {
				break
			}
			top := m.ToSVGY(v)
			y := math.Min(top, baseline)
			h := math.Abs(baseline - top)
			fmt.Fprintf(buf, `    <rect x="%s" y="%s" width="%s" height="%s" fill=%q%s/>`+"\n",
				ftoa(start+width*float64(j)), ftoa(y), ftoa(width), ftoa(h),
				e.fill(j), strokeAttr(e.cfg.stroke))
		}
	}
	buf.WriteString("  </g>\n")
}

func (e *barsElement) fill(j int) string {
	if len(e.cfg.fills) == 0 {
		return "#5b8def"
	}
	return e.cfg.fills[j%len(e.cfg.fills)]
}

func strokeAttr(color string) string {
	if color == "" {
		return ""
	}
	return fmt.Sprintf(" stroke=%q", color)
}
