package plot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const hintCSS = `
    .plot-hint { pointer-events: none; transition: opacity 0.15s ease; }
    .plot-hint[visibility="hidden"] { opacity: 0; }
    .plot-hint[visibility="visible"] { opacity: 1; }`

// hintJS drives the embedded tooltip: mouse moves snap to the nearest
// x slot by pixel distance and reposition the flag line; repeated
// moves over the same slot are ignored so the DOM is only touched on
// actual transitions. Mouse leave hides the layer again.
const hintJS = `
    (function() {
      const svg = document.getElementById('%s');
      if (!svg) return;
      const hint = svg.querySelector('.plot-hint');
      const line = hint.querySelector('.plot-hint-line');
      const text = hint.querySelector('.plot-hint-text');
      const slots = %s;
      let current = -1;
      svg.addEventListener('mousemove', (e) => {
        if (slots.length === 0) return;
        const rect = svg.getBoundingClientRect();
        const px = (e.clientX - rect.left) * (svg.viewBox.baseVal.width / rect.width);
        let best = 0;
        for (let i = 1; i < slots.length; i++) {
          if (Math.abs(slots[i].px - px) < Math.abs(slots[best].px - px)) best = i;
        }
        if (best === current) return;
        current = best;
        line.setAttribute('x1', slots[best].px);
        line.setAttribute('x2', slots[best].px);
        text.setAttribute('x', slots[best].px + 6);
        text.textContent = slots[best].label;
        hint.setAttribute('visibility', 'visible');
      });
      svg.addEventListener('mouseleave', () => {
        current = -1;
        hint.setAttribute('visibility', 'hidden');
      });
    })();`

// HintFormat renders the tooltip text for a hovered x-value and the
// per-series y-values found there (nil entries mean no exact match).
type HintFormat func(x float64, values [][]float64) string

func defaultHintFormat(x float64, values [][]float64) string {
	var parts []string
	for _, vs := range values {
		for _, v := range vs {
			parts = append(parts, ftoa(v))
		}
	}
	if len(parts) == 0 {
		return ftoa(x)
	}
	return ftoa(x) + ": " + strings.Join(parts, ", ")
}

type hintConfig struct {
	stroke  string
	format  HintFormat
	classes []string
}

// HintOption mutates a hint configuration.
type HintOption func(*hintConfig)

// HintStroke sets the color of the vertical flag line.
func HintStroke(color string) HintOption {
	return func(c *hintConfig) { c.stroke = color }
}

// HintFormatter sets the tooltip text renderer.
func HintFormatter(f HintFormat) HintOption {
	return func(c *hintConfig) { c.format = f }
}

// HintClass appends class names to the hint layer.
func HintClass(names ...string) HintOption {
	return func(c *hintConfig) { c.classes = append(c.classes, names...) }
}

type hintElement struct {
	cfg hintConfig
}

// Hint adds an interactive tooltip layer: in a web view, moving the
// pointer over the plot snaps to the nearest data x-value and shows
// the y-values of every series at that x. The layer is emitted above
// the vector layer regardless of its position in the element list.
func Hint(opts ...HintOption) Element {
	cfg := hintConfig{stroke: "#9b9b9b", format: defaultHintFormat}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &hintElement{cfg: cfg}
}

// hintSlot is the per-x-value payload embedded into the document for
// the interaction script.
type hintSlot struct {
	X     float64 `json:"x"`
	Px    float64 `json:"px"`
	Label string  `json:"label"`
}

func (e *hintElement) draw(m *Meta, buf *bytes.Buffer) {
	slots := make([]hintSlot, 0, len(m.allX))
	format := e.cfg.format
	if format == nil {
		format = defaultHintFormat
	}
	for _, x := range m.allX {
		slots = append(slots, hintSlot{
			X:     x,
			Px:    m.ToSVGX(x),
			Label: format(x, m.ValuesAt(x)),
		})
	}
	payload, err := json.Marshal(slots)
	if err != nil {
		return
	}

	fmt.Fprintf(buf, `  <g class=%q visibility="hidden">`+"\n", classAttr("plot-hint", e.cfg.classes))
	fmt.Fprintf(buf, `    <line class="plot-hint-line" x1="0" x2="0" y1="%s" y2="%s" stroke=%q stroke-dasharray="3 3"/>`+"\n",
		ftoa(m.Top()), ftoa(m.Bottom()), e.cfg.stroke)
	fmt.Fprintf(buf, `    <text class="plot-hint-text" x="0" y="%s" font-size="11"></text>`+"\n",
		ftoa(m.Top()+12))
	buf.WriteString("  </g>\n")
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", hintCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n",
		fmt.Sprintf(hintJS, m.ID, payload))
}
