package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/plotline/plotline/internal/docs"
	"github.com/plotline/plotline/pkg/plot"
	"github.com/plotline/plotline/pkg/plot/interact"
)

const (
	demoPoints   = 40              // sample points per walk
	demoInterval = 5 * time.Second // sample data regeneration interval
)

// sparkLevels are the eight block characters used for the terminal
// sparkline, lowest to highest.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// newDemoCmd creates the demo command: an interactive terminal
// walkthrough of the hover hint state machine. Arrow keys move the
// hover cursor across the data, escape leaves the plot, and the
// sample data regenerates itself periodically.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Explore the hover hint in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newDemoModel(time.Now().UnixNano()))
			_, err := p.Run()
			return err
		},
	}
}

// regenMsg triggers sample data regeneration.
type regenMsg struct{}

func regenTick() tea.Cmd {
	return tea.Tick(demoInterval, func(time.Time) tea.Msg {
		return regenMsg{}
	})
}

// demoModel is the bubbletea model for the demo command. It owns the
// sample data, the shared plot layout, and the hint state; cursor
// movement is translated into pointer events and fed through the same
// state machine the documentation pages use.
type demoModel struct {
	seed        int64
	points      []plot.Point
	meta        *plot.Meta
	state       interact.State
	cursor      int
	showSnippet bool
}

func newDemoModel(seed int64) demoModel {
	m := demoModel{seed: seed, cursor: demoPoints / 2}
	m.regenerate()
	return m
}

// regenerate rebuilds the sample data and the layout derived from it,
// then re-applies the current cursor so the hint follows the new data.
func (m *demoModel) regenerate() {
	m.points = docs.Walk(m.seed, demoPoints)
	p := plot.New([]plot.Element{plot.Line(m.points)})
	m.meta = p.Meta()
	m.applyCursor()
}

// applyCursor feeds the cursor position through the hint state machine
// as a pointer move over the cursor's data point.
func (m *demoModel) applyCursor() {
	px := m.meta.ToSVGX(m.points[m.cursor].X)
	m.state, _ = m.state.Update(m.meta, interact.MouseMove{X: px})
}

func (m demoModel) Init() tea.Cmd {
	return regenTick()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
				m.applyCursor()
			}
		case "right", "l":
			if m.cursor < len(m.points)-1 {
				m.cursor++
				m.applyCursor()
			}
		case "esc":
			m.state, _ = m.state.Update(m.meta, interact.MouseLeave{})
		case "s":
			m.showSnippet = !m.showSnippet
		case "r":
			m.seed++
			m.regenerate()
		}
	case regenMsg:
		m.seed++
		m.regenerate()
		return m, regenTick()
	default:
		// Unknown host messages pass through the union unchanged.
		m.state, _ = m.state.Update(m.meta, interact.Wrapped{Msg: msg})
	}
	return m, nil
}

func (m demoModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("plotline demo"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("←/→ move  esc leave  s code  r new data  q quit"))
	b.WriteString("\n\n")

	b.WriteString(styleSpark.Render(m.sparkline()))
	b.WriteString("\n")
	b.WriteString(m.cursorLine())
	b.WriteString("\n\n")
	b.WriteString(m.hintLine())
	b.WriteString("\n")

	if m.showSnippet {
		if ex, ok := docs.Lookup("hint"); ok {
			b.WriteString("\n")
			b.WriteString(styleSnippet.Render(ex.Source))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// sparkline renders the walk as one block character per point, scaled
// to the plot's y-scale so the preview matches the SVG output.
func (m demoModel) sparkline() string {
	runes := make([]rune, len(m.points))
	for i, p := range m.points {
		frac := m.meta.Y.Pixel(p.Y) / m.meta.Y.Length
		level := int(frac * float64(len(sparkLevels)))
		if level < 0 {
			level = 0
		}
		if level >= len(sparkLevels) {
			level = len(sparkLevels) - 1
		}
		runes[i] = sparkLevels[level]
	}
	return string(runes)
}

// cursorLine marks the hovered slot under the sparkline.
func (m demoModel) cursorLine() string {
	if _, ok := m.state.Hovered(); !ok {
		return styleDim.Render(strings.Repeat("·", len(m.points)))
	}
	return strings.Repeat(" ", m.cursor) + styleCursor.Render("▲")
}

// hintLine shows the values at the hovered x, mirroring what the SVG
// hint box displays.
func (m demoModel) hintLine() string {
	x, ok := m.state.Hovered()
	if !ok {
		return styleDim.Render("nothing hovered")
	}

	var vals []string
	for _, series := range m.state.Values(m.meta) {
		for _, v := range series {
			vals = append(vals, fmt.Sprintf("%.2f", v))
		}
	}
	return styleLabel.Render(fmt.Sprintf("x = %.0f", x)) + "  " +
		styleValue.Render(strings.Join(vals, ", "))
}
