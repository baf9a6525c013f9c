package chartfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plotline/plotline/pkg/errors"
	"github.com/plotline/plotline/pkg/plot"
)

const sampleChart = `
title = "Visitors"
hint = true

[plot]
width = 640
height = 360
id = "visitors"
padding = [10, 10]

[[series]]
type = "line"
stroke = "#e4595c"
smooth = true
points = [[0, 12], [1, 17], [2, 9]]

[[series]]
type = "bars"
fills = ["#5b8def", "#f2c94c"]
max_width = { fixed = 20 }
groups = [[1, 2], [3, 4]]

[xaxis]
ticks = { delta = 1 }

[yaxis]
ticks = { count = 5 }

[ygrid]
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleChart))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if f.Title != "Visitors" {
		t.Errorf("Title = %q, want Visitors", f.Title)
	}
	if len(f.Series) != 2 {
		t.Fatalf("len(Series) = %d, want 2", len(f.Series))
	}
	if f.Series[0].Type != "line" || !f.Series[0].Smooth {
		t.Errorf("series 0 = %+v, want smooth line", f.Series[0])
	}
	if f.Series[1].MaxWidth == nil || f.Series[1].MaxWidth.Fixed != 20 {
		t.Errorf("series 1 max_width = %+v, want fixed 20", f.Series[1].MaxWidth)
	}
	if f.XAxis == nil || f.XAxis.Ticks.Delta != 1 {
		t.Errorf("xaxis = %+v, want delta 1 ticks", f.XAxis)
	}
	if !f.Hint {
		t.Error("hint not enabled")
	}
}

func TestParseUnknownSeriesType(t *testing.T) {
	_, err := Parse([]byte("[[series]]\ntype = \"pie\"\n"))
	if err == nil {
		t.Fatal("Parse accepted unknown series type")
	}
	if !errors.Is(err, errors.ErrCodeInvalidSeries) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSeries)
	}
}

func TestParseMissingSeriesType(t *testing.T) {
	_, err := Parse([]byte("[[series]]\npoints = [[0, 1]]\n"))
	if !errors.Is(err, errors.ErrCodeInvalidSeries) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSeries)
	}
}

func TestParseMalformedTOML(t *testing.T) {
	_, err := Parse([]byte("title = \n"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	if err := os.WriteFile(path, []byte(sampleChart), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Title != "Visitors" {
		t.Errorf("Title = %q, want Visitors", f.Title)
	}
}

func TestBuildRenders(t *testing.T) {
	f, err := Parse([]byte(sampleChart))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	elements, opts := f.Build()
	svg := string(plot.Render(elements, opts...))

	for _, want := range []string{
		`id="visitors"`,
		`viewBox="0 0 640 360"`,
		`class="plot-grid plot-grid-y"`,
		`class="plot-line"`,
		`class="plot-bars"`,
		`class="plot-axis plot-axis-x"`,
		`class="plot-axis plot-axis-y"`,
		`class="plot-hint"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("rendered chart missing %q", want)
		}
	}
}

func TestBuildElementOrder(t *testing.T) {
	f, err := Parse([]byte(sampleChart))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	elements, _ := f.Build()

	// Grid below series, axes after series, hint last.
	if len(elements) != 6 {
		t.Fatalf("len(elements) = %d, want 6", len(elements))
	}
}
