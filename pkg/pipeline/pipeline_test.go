package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plotline/plotline/pkg/errors"
	"github.com/plotline/plotline/pkg/observability"
	"github.com/plotline/plotline/pkg/plot"
)

const chart = `
title = "Test"

[plot]
width = 400
height = 300
id = "t"

[[series]]
type = "line"
points = [[0, 1], [1, 2]]

[xaxis]
ticks = { delta = 1 }
`

func writeChart(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte(chart), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil)
	res, err := r.Execute(context.Background(), Options{Path: writeChart(t)})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Title != "Test" {
		t.Errorf("Title = %q, want Test", res.Title)
	}
	if res.Elements != 2 {
		t.Errorf("Elements = %d, want 2", res.Elements)
	}
	if !strings.Contains(string(res.SVG), `viewBox="0 0 400 300"`) {
		t.Error("SVG missing file-configured viewport")
	}
}

func TestExecuteSizeOverride(t *testing.T) {
	r := NewRunner(nil)
	res, err := r.Execute(context.Background(), Options{Path: writeChart(t), Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(string(res.SVG), `viewBox="0 0 800 600"`) {
		t.Error("SVG missing overridden viewport")
	}
}

func TestExecuteMissingFile(t *testing.T) {
	r := NewRunner(nil)
	_, err := r.Execute(context.Background(), Options{Path: "does-not-exist.toml"})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

type countingHooks struct {
	observability.NoopRenderHooks
	layouts int
	renders int
}

func (h *countingHooks) OnLayoutStart(ctx context.Context, n int) { h.layouts++ }
func (h *countingHooks) OnRenderStart(ctx context.Context, c string) { h.renders++ }

func TestComposeFiresHooks(t *testing.T) {
	t.Cleanup(observability.Reset)
	rec := &countingHooks{}
	observability.SetRenderHooks(rec)

	svg := Compose(context.Background(), "demo", []plot.Element{
		plot.Line(plot.Pts(0, 1, 1, 2)),
	}, plot.ID("t"))

	if len(svg) == 0 {
		t.Fatal("Compose produced no output")
	}
	if rec.layouts != 1 || rec.renders != 1 {
		t.Errorf("hooks fired layouts=%d renders=%d, want 1 and 1", rec.layouts, rec.renders)
	}
}
