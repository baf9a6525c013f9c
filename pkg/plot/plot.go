package plot

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"github.com/plotline/plotline/pkg/plot/scale"
)

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 647.0
	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 440.0
)

// Margin is the pixel space reserved outside the plot frame.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// config is the plot-level configuration, built by folding Options
// over these defaults. Later options win on conflicting fields.
type config struct {
	width         float64
	height        float64
	margin        Margin
	paddingX      scale.Offset
	paddingY      scale.Offset
	domainLowest  scale.Adjust
	domainHighest scale.Adjust
	rangeLowest   scale.Adjust
	rangeHighest  scale.Adjust
	id            string
	classes       []string
	style         string
}

func defaultConfig() config {
	return config{
		width:  DefaultWidth,
		height: DefaultHeight,
		margin: Margin{Top: 20, Right: 40, Bottom: 20, Left: 40},
	}
}

// Option mutates the plot-level configuration.
type Option func(*config)

// Size sets the viewport width and height in pixels.
func Size(width, height float64) Option {
	return func(c *config) { c.width, c.height = width, height }
}

// WithMargin sets the pixel margins around the plot frame.
func WithMargin(top, right, bottom, left float64) Option {
	return func(c *config) {
		c.margin = Margin{Top: top, Right: right, Bottom: bottom, Left: left}
	}
}

// Padding reserves pixel space inside the frame at the lower and upper
// edge of the y-axis, keeping extreme points clear of the border.
func Padding(lower, upper float64) Option {
	return func(c *config) { c.paddingY = scale.Offset{Lower: lower, Upper: upper} }
}

// PaddingX reserves pixel space at the left and right edge of the
// x-axis.
func PaddingX(lower, upper float64) Option {
	return func(c *config) { c.paddingX = scale.Offset{Lower: lower, Upper: upper} }
}

// DomainLowest adjusts the computed lower bound of the y-axis.
func DomainLowest(f scale.Adjust) Option {
	return func(c *config) { c.domainLowest = f }
}

// DomainHighest adjusts the computed upper bound of the y-axis.
func DomainHighest(f scale.Adjust) Option {
	return func(c *config) { c.domainHighest = f }
}

// RangeLowest adjusts the computed lower bound of the x-axis.
func RangeLowest(f scale.Adjust) Option {
	return func(c *config) { c.rangeLowest = f }
}

// RangeHighest adjusts the computed upper bound of the x-axis.
func RangeHighest(f scale.Adjust) Option {
	return func(c *config) { c.rangeHighest = f }
}

// ID sets the id attribute of the root SVG element. When unset, a
// generated "plot-<uuid>" id is used so embedded interaction scripts
// can address the right document node.
func ID(id string) Option {
	return func(c *config) { c.id = id }
}

// Class appends class names to the root SVG element.
func Class(names ...string) Option {
	return func(c *config) { c.classes = append(c.classes, names...) }
}

// Style sets an inline style attribute on the root SVG element.
func Style(style string) Option {
	return func(c *config) { c.style = style }
}

// Plot is a composed chart: a configuration plus an ordered element
// list. The shared Meta is derived lazily on first use and reused for
// every subsequent query and render.
type Plot struct {
	cfg      config
	elements []Element
	meta     *Meta
}

// New builds a Plot from elements and options.
func New(elements []Element, opts ...Option) *Plot {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == "" {
		cfg.id = "plot-" + uuid.NewString()[:8]
	}
	return &Plot{cfg: cfg, elements: elements}
}

// Meta returns the shared layout context, computing it on first call.
func (p *Plot) Meta() *Meta {
	if p.meta == nil {
		p.meta = buildMeta(p.cfg, p.elements)
	}
	return p.meta
}

// SVG renders the plot into one composed SVG document. Every element
// draws against the same Meta; hint layers are emitted above the
// vector layer so tooltips sit on top.
func (p *Plot) SVG() []byte {
	m := p.Meta()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" id=%q class=%q viewBox="0 0 %s %s" width="%.0f" height="%.0f"`,
		m.ID, classAttr("plot", p.cfg.classes), ftoa(m.Width), ftoa(m.Height), m.Width, m.Height)
	if p.cfg.style != "" {
		fmt.Fprintf(&buf, ` style=%q`, p.cfg.style)
	}
	buf.WriteString(">\n")

	var hints []*hintElement
	for _, el := range p.elements {
		if h, ok := el.(*hintElement); ok {
			hints = append(hints, h)
			continue
		}
		el.draw(m, &buf)
	}
	for _, h := range hints {
		h.draw(m, &buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// Render composes elements with the given options and returns the SVG
// document. It is the single-call entry point for static output.
func Render(elements []Element, opts ...Option) []byte {
	return New(elements, opts...).SVG()
}
