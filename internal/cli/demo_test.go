package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDemoModelStartsHovering(t *testing.T) {
	m := newDemoModel(42)

	x, ok := m.state.Hovered()
	if !ok {
		t.Fatal("initial state should hover the cursor's point")
	}
	if want := m.points[m.cursor].X; x != want {
		t.Errorf("hovered x = %v, want %v", x, want)
	}
}

func TestDemoModelCursorMoves(t *testing.T) {
	m := newDemoModel(42)
	start := m.cursor

	next, _ := m.Update(keyMsg("l"))
	m = next.(demoModel)
	if m.cursor != start+1 {
		t.Errorf("cursor = %d after right, want %d", m.cursor, start+1)
	}

	next, _ = m.Update(keyMsg("h"))
	m = next.(demoModel)
	if m.cursor != start {
		t.Errorf("cursor = %d after left, want %d", m.cursor, start)
	}
}

func TestDemoModelCursorClamped(t *testing.T) {
	m := newDemoModel(42)
	m.cursor = 0
	m.applyCursor()

	next, _ := m.Update(keyMsg("h"))
	m = next.(demoModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after left at origin, want 0", m.cursor)
	}
}

func TestDemoModelEscapeLeaves(t *testing.T) {
	m := newDemoModel(42)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(demoModel)

	if _, ok := m.state.Hovered(); ok {
		t.Error("state still hovering after escape")
	}
	if !strings.Contains(m.View(), "nothing hovered") {
		t.Error("view does not show the idle hint line")
	}
}

func TestDemoModelSnippetToggle(t *testing.T) {
	m := newDemoModel(42)

	next, _ := m.Update(keyMsg("s"))
	m = next.(demoModel)
	if !m.showSnippet {
		t.Error("snippet not shown after toggle")
	}
	if !strings.Contains(m.View(), "plot.Hint()") {
		t.Error("view missing the code snippet")
	}

	next, _ = m.Update(keyMsg("s"))
	m = next.(demoModel)
	if m.showSnippet {
		t.Error("snippet still shown after second toggle")
	}
}

func TestDemoModelRegenerates(t *testing.T) {
	m := newDemoModel(42)
	before := m.sparkline()

	next, cmd := m.Update(regenMsg{})
	m = next.(demoModel)

	if cmd == nil {
		t.Error("regeneration should schedule the next tick")
	}
	if m.sparkline() == before {
		t.Error("sparkline unchanged after regeneration")
	}
	if _, ok := m.state.Hovered(); !ok {
		t.Error("hover lost after regeneration")
	}
}

func TestDemoModelSparklineLength(t *testing.T) {
	m := newDemoModel(42)
	if got := len([]rune(m.sparkline())); got != demoPoints {
		t.Errorf("sparkline length = %d, want %d", got, demoPoints)
	}
}
