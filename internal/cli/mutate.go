package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/radii/pkg/editor"
	"github.com/matzehuels/radii/pkg/radius"
)

var (
	cornerArgs = []string{"tl", "tr", "br", "bl"}
	axisArgs   = []string{"h", "v"}
	shapeArgs  = []string{"rectangle", "square"}
	modeArgs   = []string{"1", "2", "3", "4"}
)

// mutate opens the editor, applies fn and reports the resulting shorthand.
// Edits to any of corners that the mode hides get a warning.
func (c *CLI) mutate(ctx context.Context, fn func(*editor.Editor) error, report func(radius.State) string, corners ...radius.Corner) error {
	ed, s, err := c.openEditor(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := fn(ed); err != nil {
		return err
	}

	snap := ed.Snapshot()
	printSuccess("%s", report(snap.State))
	printDetail("%s", snap.Rule)

	mode := snap.State.Mode.Normalize()
	for _, corner := range corners {
		if !mode.Visible(corner) {
			printWarning("%s is hidden in mode %d; it takes effect once the mode shows it", corner, int(mode))
		}
	}
	return nil
}

// setCommand sets one axis of one corner.
func (c *CLI) setCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <corner> <axis> <value>",
		Short: "Set a corner radius in its active unit",
		Long: `Set the horizontal (h) or vertical (v) radius of a corner (tl, tr, br, bl).

The value is stored in the corner's active unit for that axis and clamped to
0-400px horizontally, 0-300px vertically and 0-100%. On a linked corner both
axes take the value, capped at 300px.`,
		Example: `  radii set tl h 40
  radii set br v 25`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completePositional(cornerArgs, axisArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			corner, err := radius.ParseCorner(args[0])
			if err != nil {
				return err
			}
			axis, err := radius.ParseAxis(args[1])
			if err != nil {
				return err
			}
			return c.mutate(cmd.Context(),
				func(ed *editor.Editor) error { return ed.SetValue(cmd.Context(), corner, axis, args[2]) },
				func(st radius.State) string {
					return corner.String() + " " + axis.String() + " = " + valueOf(&st, corner, axis)
				}, corner)
		},
	}
}

// unitCommand toggles px and % for one axis.
func (c *CLI) unitCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "unit <corner> <axis>",
		Short:             "Toggle a corner axis between px and %",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completePositional(cornerArgs, axisArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			corner, err := radius.ParseCorner(args[0])
			if err != nil {
				return err
			}
			axis, err := radius.ParseAxis(args[1])
			if err != nil {
				return err
			}
			return c.mutate(cmd.Context(),
				func(ed *editor.Editor) error { return ed.ToggleUnit(cmd.Context(), corner, axis) },
				func(st radius.State) string {
					return corner.String() + " " + axis.String() + " now in " + st.ActiveUnit(corner, axis).Suffix() +
						" (" + valueOf(&st, corner, axis) + ")"
				}, corner)
		},
	}
}

// linkCommand toggles the axis link of a corner.
func (c *CLI) linkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "link <corner>",
		Short: "Toggle linking a corner's horizontal and vertical radius",
		Long: `Toggle the link of a corner. Linking copies the horizontal value and unit
into the vertical axis; from then on edits to either axis set both.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completePositional(cornerArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			corner, err := radius.ParseCorner(args[0])
			if err != nil {
				return err
			}
			return c.mutate(cmd.Context(),
				func(ed *editor.Editor) error { return ed.ToggleLink(cmd.Context(), corner) },
				func(st radius.State) string {
					if st.Corners[corner].Linked {
						return corner.String() + " linked"
					}
					return corner.String() + " unlinked"
				}, corner)
		},
	}
}

// modeCommand sets the symmetry mode.
func (c *CLI) modeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mode <1-4>",
		Short: "Set the symmetry mode",
		Long: `Set how many corner values the shorthand carries:

  1  every corner follows top-left
  2  top-left/bottom-right and top-right/bottom-left pairs
  3  bottom-left follows top-right
  4  all corners independent

Values of hidden corners are kept and reappear when the mode widens.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: modeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := radius.ParseMode(args[0])
			if err != nil {
				return err
			}
			return c.mutate(cmd.Context(),
				func(ed *editor.Editor) error { return ed.SetMode(cmd.Context(), m) },
				func(st radius.State) string { return "Mode set to " + st.Mode.String() })
		},
	}
}

// shapeCommand sets the preview shape.
func (c *CLI) shapeCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "shape <rectangle|square>",
		Short:     "Set the preview shape",
		Args:      cobra.ExactArgs(1),
		ValidArgs: shapeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := radius.ParseShape(args[0])
			if err != nil {
				return err
			}
			return c.mutate(cmd.Context(),
				func(ed *editor.Editor) error { return ed.SetShape(cmd.Context(), shape) },
				func(st radius.State) string {
					w, h := st.Size()
					return "Shape set to " + st.Shape.String() + " (" + strconv.Itoa(w) + "x" + strconv.Itoa(h) + ")"
				})
		},
	}
}

// completePositional completes the i-th positional argument from sets[i].
func completePositional(sets ...[]string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) < len(sets) {
			return sets[len(args)], cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

// valueOf renders the active value of (c, a), e.g. "40px".
func valueOf(st *radius.State, c radius.Corner, a radius.Axis) string {
	return radius.Value{Magnitude: st.DisplayValue(c, a), Unit: st.ActiveUnit(c, a)}.String()
}
