package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/roughsketch/pkg/rough"
)

// exploreCommand creates the explore command, an interactive explorer for
// the seed and roughness of a single primitive.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		opts   optionFlags
		closed bool
	)

	cmd := &cobra.Command{
		Use:               "explore <kind> [numbers...]",
		Short:             "Interactively explore seeds and roughness for a primitive",
		Long:              `Interactively explore seeds and roughness for a primitive. Arguments are the same as for "shape".`,
		Example:           `  roughsketch explore ellipse 100 100 160 90`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := rough.Kind(args[0])
			geo, err := parseGeometry(kind, args[1:], closed)
			if err != nil {
				return err
			}
			o, err := c.resolve(cmd, &opts)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(NewExplorerModel(kind, geo, o), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			m, ok := final.(ExplorerModel)
			if !ok || !m.Chosen {
				return nil
			}

			printSuccess("Chosen settings")
			printKeyValue("seed", fmt.Sprint(m.Options.Seed))
			printKeyValue("roughness", fmt.Sprint(m.Options.Roughness))
			printKeyValue("bowing", fmt.Sprint(m.Options.Bowing))
			printNextStep("Print the path", replayCommand(args, m))
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&closed, "closed", false, "close an arc through its centre")

	return cmd
}

// replayCommand is the shape invocation that reproduces the explorer state.
func replayCommand(args []string, m ExplorerModel) string {
	s := "roughsketch shape"
	for _, a := range args {
		s += " " + a
	}
	o := m.Options
	s += fmt.Sprintf(" --seed %d --roughness %v --bowing %v", o.Seed, o.Roughness, o.Bowing)
	if o.DisableMultiStroke {
		s += " --single-stroke"
	}
	if m.Geometry.Closed {
		s += " --closed"
	}
	if m.Fill {
		s += " --fill --fill-style " + string(o.FillStyle)
	}
	return s
}
