package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbar/pkg/pipeline"
)

// defaultOutputDir is where frames go without --output.
const defaultOutputDir = "frames"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output directory
	formats    []string // output formats: "svg", "json"
	frames     int      // frames sampled per snapshot
	width      float64  // viewport width in pixels
	height     float64  // viewport height in pixels
	startIndex int      // stack rotation override, applied when the flag is set
	yLabel     string   // y axis caption
	grouped    bool     // group thousands in total labels
	easing     string   // easing curve name
	noCache    bool     // disable the frame cache
	refresh    bool     // re-render cached frames
}

// renderCommand creates the render command. Every snapshot renders against
// the same chart, so the frames of snapshot i show the transition from
// snapshot i-1.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		output:  defaultOutputDir,
		frames:  c.Env.Frames,
		width:   c.Env.Width,
		height:  c.Env.Height,
		yLabel:  c.Env.YLabel,
		easing:  c.Env.Easing,
		noCache: c.Env.NoCache,
	}

	cmd := &cobra.Command{
		Use:   "render <snapshot>...",
		Short: "Render snapshot transitions to SVG or JSON frames",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			p := opts.pipelineOptions(args)
			if cmd.Flags().Changed("start-index") {
				p.StartIndex = &opts.startIndex
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), p, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().IntVar(&opts.frames, "frames", opts.frames, "frames sampled per snapshot")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "frame height")
	cmd.Flags().IntVar(&opts.startIndex, "start-index", 0, "override every snapshot's start_index")
	cmd.Flags().StringVar(&opts.yLabel, "y-label", opts.yLabel, "y axis caption")
	cmd.Flags().BoolVar(&opts.grouped, "grouped", false, "group thousands in total labels")
	cmd.Flags().StringVar(&opts.easing, "easing", opts.easing, "easing curve (linear, ease-in-out, cubic-in-out, ...)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", opts.noCache, "disable the frame cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render frames even when cached")

	return cmd
}

func (o *renderOpts) pipelineOptions(paths []string) pipeline.Options {
	return pipeline.Options{
		Paths:   paths,
		Width:   o.width,
		Height:  o.height,
		YLabel:  o.yLabel,
		Grouped: o.grouped,
		Easing:  o.easing,
		Frames:  o.frames,
		Formats: o.formats,
		Refresh: o.refresh,
	}
}

// runRender executes the pipeline and writes every frame to opts.output.
func (c *CLI) runRender(ctx context.Context, w io.Writer, p pipeline.Options, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	p.Logger = logger

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, p)
	if err != nil {
		return err
	}

	paths, err := writeFrames(opts.output, result.Frames, p.Formats)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d frames", len(result.Frames)))

	printSuccess(w, "Wrote %d files to %s", len(paths), opts.output)
	printStats(w, result.Stats.Snapshots, result.Stats.Frames, result.Stats.CacheHits)
	if n := len(paths); n > 0 {
		printFile(w, paths[n-1])
	}
	return nil
}

// writeFrames writes each frame's artifacts into dir and returns the paths
// in frame order.
func writeFrames(dir string, frames []pipeline.Frame, formats []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	paths := make([]string, 0, len(frames)*len(formats))
	for _, f := range frames {
		for _, format := range formats {
			data, ok := f.Artifacts[format]
			if !ok {
				continue
			}
			path := filepath.Join(dir, f.Name(format))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return nil, fmt.Errorf("write %s: %w", path, err)
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}
