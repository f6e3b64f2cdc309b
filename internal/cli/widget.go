package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/roughsketch/pkg/widget"
)

type widgetOpts struct {
	optionFlags
	outputFlags
	params widget.Params
}

// widgetCommand creates the widget command that renders one UI widget.
func (c *CLI) widgetCommand() *cobra.Command {
	var opts widgetOpts

	cmd := &cobra.Command{
		Use:   "widget <name>",
		Short: "Render a sketchy UI widget",
		Long: `Render a sketchy UI widget.

Widgets: button, card, checkbox, divider, progress, toggle.`,
		Example: `  roughsketch widget card --width 240 --height 140 --elevation 3
  roughsketch widget progress --value 40 -o progress.svg
  roughsketch widget toggle --checked`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeWidgets,
		RunE: func(cmd *cobra.Command, args []string) error {
			po := c.pipelineOptions(cmd, &opts.outputFlags, &opts.optionFlags)
			po.Widget = args[0]
			po.WidgetParams = opts.params
			return c.runArtifacts(cmd.Context(), po, outputPaths(opts.output, args[0]+".svg", po.Formats), opts.noCache)
		},
	}

	opts.optionFlags.register(cmd)
	opts.outputFlags.register(cmd)
	fs := cmd.Flags()
	fs.Float64Var(&opts.params.Width, "width", 0, "widget width (0 uses the widget default)")
	fs.Float64Var(&opts.params.Height, "height", 0, "widget height (0 uses the widget default)")
	fs.IntVar(&opts.params.Elevation, "elevation", widget.MinElevation, "shadow depth (1-5)")
	fs.BoolVar(&opts.params.Checked, "checked", false, "checked state (checkbox, toggle)")
	fs.Float64Var(&opts.params.Value, "value", 0, "progress value")
	fs.Float64Var(&opts.params.Min, "min", 0, "progress minimum")
	fs.Float64Var(&opts.params.Max, "max", widget.DefaultProgressMax, "progress maximum")
	fs.StringVar(&opts.params.Fill, "fill", "", "card fill colour")

	return cmd
}
