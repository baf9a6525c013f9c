package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotline/plotline/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string  // output file path; derived from the input when empty
	width  float64 // viewport width override in pixels
	height float64 // viewport height override in pixels
}

// newRenderCmd creates the render command. It loads a TOML chart
// description, composes the plot, and writes the SVG document.
//
// The output path defaults to the input path with a .svg extension.
// --width and --height override the size declared in the file; both
// must be set for the override to apply.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [chart.toml]",
		Short: "Render a chart description to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (opts.width > 0) != (opts.height > 0) {
				return fmt.Errorf("--width and --height must be set together")
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with .svg extension)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "viewport width override")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "viewport height override")

	return cmd
}

// outputPath derives the SVG output path from the flags and input path.
func outputPath(output, input string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}

// runRender executes the pipeline for a single chart file and writes
// the result.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		Path:   input,
		Width:  opts.width,
		Height: opts.height,
	})
	if err != nil {
		return err
	}

	path := outputPath(opts.output, input)
	if err := os.WriteFile(path, res.SVG, 0644); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Generated %s (%d elements, %d bytes)", path, res.Elements, len(res.SVG)))
	return nil
}
