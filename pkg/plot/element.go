package plot

import (
	"bytes"

	"github.com/plotline/plotline/pkg/plot/scale"
)

// Point is a single data coordinate. It has no identity beyond its
// position.
type Point struct {
	X float64
	Y float64
}

// Pts is a convenience constructor for a point list from interleaved
// x,y pairs. An odd trailing value is ignored.
func Pts(xy ...float64) []Point {
	pts := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, Point{X: xy[i], Y: xy[i+1]})
	}
	return pts
}

// Orientation selects which axis an element treats as primary.
// Y-oriented axis and grid renderers consume a flipped view of the
// shared Meta instead of duplicating the rendering logic.
type Orientation int

const (
	OrientationX Orientation = iota
	OrientationY
)

// Element is one renderable component of a plot. Implementations are
// created with the Line, Area, Scatter, Bars, XAxis, YAxis, XGrid,
// YGrid, Hint and Custom constructors.
type Element interface {
	draw(m *Meta, buf *bytes.Buffer)
}

// valueSource is implemented by elements that contribute raw data
// values to the scale computation.
type valueSource interface {
	seriesValues() (xs, ys []float64)
}

// boundsSource is implemented by elements that force internal bounds
// onto an axis (zero baselines, bar slot margins).
type boundsSource interface {
	scaleBounds() (x, y scale.Bounds)
}

// tickSource is implemented by axis and grid elements. Only the first
// tick source per orientation contributes the tick values stored on
// the Meta; later ones are silently ignored (single source of truth,
// kept from the original behavior).
type tickSource interface {
	tickInfo() (Orientation, scale.Strategy)
}

// customElement renders a caller-supplied view against the shared
// Meta. The returned markup is inserted verbatim into the SVG layer.
type customElement struct {
	view func(m *Meta) string
}

// Custom wraps a user view function as an element. A nil view renders
// nothing.
func Custom(view func(m *Meta) string) Element {
	return &customElement{view: view}
}

func (e *customElement) draw(m *Meta, buf *bytes.Buffer) {
	if e.view == nil {
		return
	}
	buf.WriteString(e.view(m))
}
