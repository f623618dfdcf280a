package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/radii/pkg/editor"
	"github.com/matzehuels/radii/pkg/radius"
)

// presetCommand groups the preset subcommands.
func (c *CLI) presetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "List and apply built-in presets",
	}

	cmd.AddCommand(c.presetListCommand())
	cmd.AddCommand(c.presetApplyCommand())

	return cmd
}

// presetListCommand creates the "preset list" subcommand.
func (c *CLI) presetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), presetTable())
			printNextStep("Apply one", "radii preset apply <name>")
			return nil
		},
	}
}

// presetApplyCommand creates the "preset apply" subcommand.
func (c *CLI) presetApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "apply <name>",
		Short:             "Apply a preset to the saved state",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePositional(presetSlugs()),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.mutate(cmd.Context(),
				func(ed *editor.Editor) error { return ed.ApplyPreset(cmd.Context(), args[0]) },
				func(st radius.State) string {
					p, _ := radius.FindPreset(args[0])
					return fmt.Sprintf("Applied %s (%s)", StyleHighlight.Render(p.Name), st.Mode)
				})
		},
	}
}

func presetSlugs() []string {
	out := make([]string, len(radius.Presets))
	for i, p := range radius.Presets {
		out[i] = p.Slug()
	}
	return out
}

// presetTable renders the catalog with the shorthand each preset produces.
func presetTable() string {
	rows := make([][]string, 0, len(radius.Presets))
	for _, p := range radius.Presets {
		st := radius.DefaultState()
		st.ApplyPreset(p)
		rows = append(rows, []string{p.Slug(), p.Name, strconv.Itoa(int(p.Mode)), editor.Compute(&st).CSS})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Slug", "Name", "Mode", "CSS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 3:
				return StyleValue
			}
			return StyleDim
		}).
		Render()
}
