// Package pipeline provides the load → compose → render pipeline
// shared by the CLI and the documentation server.
//
// The pipeline consists of three stages:
//
//  1. Load: decode a declarative chart description
//  2. Compose: derive the shared layout (Meta) from the elements
//  3. Render: emit the composed SVG document
//
// Centralizing this keeps behavior identical across entry points and
// gives the observability hooks a single place to fire.
package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plotline/plotline/pkg/chartfile"
	"github.com/plotline/plotline/pkg/observability"
	"github.com/plotline/plotline/pkg/plot"
)

// Options controls one pipeline execution.
type Options struct {
	// Path is the chart description file to load.
	Path string

	// Width and Height override the file's plot size when positive.
	Width  float64
	Height float64
}

// Result is the outcome of a pipeline execution.
type Result struct {
	Title    string
	SVG      []byte
	Elements int
	Duration time.Duration
}

// Runner executes the pipeline. A nil logger disables logging.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a pipeline runner.
func NewRunner(logger *log.Logger) *Runner {
	return &Runner{logger: logger}
}

// Execute runs the full pipeline for one chart file.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	f, err := chartfile.Load(opts.Path)
	if err != nil {
		return nil, err
	}
	r.logf("loaded chart file", "path", opts.Path, "series", len(f.Series))

	elements, plotOpts := f.Build()
	if opts.Width > 0 && opts.Height > 0 {
		plotOpts = append(plotOpts, plot.Size(opts.Width, opts.Height))
	}

	svg := Compose(ctx, f.Title, elements, plotOpts...)
	r.logf("rendered chart", "title", f.Title, "bytes", len(svg))

	return &Result{
		Title:    f.Title,
		SVG:      svg,
		Elements: len(elements),
		Duration: time.Since(start),
	}, nil
}

// Compose derives the shared layout for the elements and renders the
// SVG, firing the render hooks around both stages. It is used
// directly by callers that assemble elements in code rather than from
// a chart file.
func Compose(ctx context.Context, name string, elements []plot.Element, opts ...plot.Option) []byte {
	hooks := observability.Render()

	p := plot.New(elements, opts...)

	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, len(elements))
	p.Meta()
	hooks.OnLayoutComplete(ctx, len(elements), time.Since(layoutStart))

	renderStart := time.Now()
	hooks.OnRenderStart(ctx, name)
	svg := p.SVG()
	hooks.OnRenderComplete(ctx, name, len(svg), time.Since(renderStart), nil)

	return svg
}

func (r *Runner) logf(msg string, kv ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, kv...)
	}
}
