package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roughsketch/pkg/errors"
	"github.com/matzehuels/roughsketch/pkg/pipeline"
	"github.com/matzehuels/roughsketch/pkg/rough"
)

// outputFlags are the flags shared by the commands that write artifacts.
type outputFlags struct {
	output      string
	formats     string
	stroke      string
	strokeWidth float64
	background  string
	class       string
	join        bool
	scale       float64
	refresh     bool
	noCache     bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	fs.StringVar(&f.stroke, "stroke", "", "default stroke colour")
	fs.Float64Var(&f.strokeWidth, "stroke-width", 0, "default stroke width")
	fs.StringVar(&f.background, "background", "", "background colour")
	fs.StringVar(&f.class, "class", "", "CSS class of the root <svg> element")
	fs.BoolVar(&f.join, "join", false, "join the passes of closed outlines into one subpath")
	fs.Float64Var(&f.scale, "scale", pipeline.DefaultPNGScale, "PNG scale factor")
	fs.BoolVar(&f.refresh, "refresh", false, "re-render even if the output is cached")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// pipelineOptions builds pipeline options from the output flags, the
// rough option flags and the config defaults.
func (c *CLI) pipelineOptions(cmd *cobra.Command, out *outputFlags, rf *optionFlags) pipeline.Options {
	ov := c.Config.Defaults.Layer(rf.overrides(cmd))
	opts := pipeline.Options{
		Formats:     parseFormats(out.formats),
		Stroke:      out.stroke,
		StrokeWidth: out.strokeWidth,
		Background:  out.background,
		Class:       out.class,
		Join:        out.join,
		Scale:       out.scale,
		Refresh:     out.refresh,
		Logger:      c.Logger,
	}
	// The seed is routed separately so it replaces the scene seed instead
	// of sitting below it.
	if ov.Seed != nil {
		s := *ov.Seed
		opts.Seed = &s
		ov.Seed = nil
	}
	opts.Defaults = ov
	return opts
}

type drawOpts struct {
	optionFlags
	outputFlags
}

// drawCommand creates the draw command that renders a scene file.
func (c *CLI) drawCommand() *cobra.Command {
	var opts drawOpts

	cmd := &cobra.Command{
		Use:   "draw <scene.toml|scene.json>",
		Short: "Render a scene file to SVG, JSON, PDF or PNG",
		Example: `  roughsketch draw scene.toml
  roughsketch draw scene.toml -o out.svg --seed 7
  roughsketch draw scene.json -f svg,png -o out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidatePath(args[0]); err != nil {
				return err
			}
			po := c.pipelineOptions(cmd, &opts.outputFlags, &opts.optionFlags)
			po.ScenePath = args[0]
			return c.runArtifacts(cmd.Context(), po, outputPaths(opts.output, args[0], po.Formats), opts.noCache)
		},
	}

	opts.optionFlags.register(cmd)
	opts.outputFlags.register(cmd)
	// --seed on draw replaces the scene seed; the other flags sit below
	// the scene's own [defaults].
	cmd.Flags().Lookup("seed").Usage = "override the scene seed"

	return cmd
}

// runArtifacts executes the pipeline and writes each artifact to its path.
func (c *CLI) runArtifacts(ctx context.Context, opts pipeline.Options, paths map[string]string, noCache bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinnerWithContext(ctx, "Sketching...")
	spin.Start()
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spin.StopWithError("Sketch failed")
		return err
	}

	formats := make([]string, 0, len(result.Artifacts))
	for f := range result.Artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	spin.SetMessage("Writing files...")
	for i, f := range formats {
		spin.Count(i, len(formats))
		path := paths[f]
		if err := os.WriteFile(path, result.Artifacts[f], 0o644); err != nil {
			spin.StopWithError("Write failed")
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	spin.StopWithSuccess("Sketch written")
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(formats)))
	printStats(result.Stats.Shapes, result.Stats.Ops, result.CacheInfo.RenderHit)
	for _, f := range formats {
		printFile(paths[f])
	}
	return nil
}

// seedCommand prints a fresh random seed.
func (c *CLI) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print a random seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), rough.NewSeed())
			return err
		},
	}
}
