package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/roughsketch/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The config file is loaded in PersistentPreRunE, so main.go must chain
// any pre-run hook it installs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Roughsketch draws hand-drawn style shapes and widgets",
		Long:         `Roughsketch turns geometric primitives into deterministic, sketchy SVG path data. It renders single shapes, whole scene files and UI widgets, and can serve the same over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/roughsketch/config.toml)")

	// Register all subcommands
	root.AddCommand(c.shapeCommand())
	root.AddCommand(c.drawCommand())
	root.AddCommand(c.widgetCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.seedCommand())
	root.AddCommand(c.completionCommand())

	return root
}
