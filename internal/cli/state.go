package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/radii/pkg/radius"
	"github.com/matzehuels/radii/pkg/store"
)

// stateCommand groups the saved-state subcommands.
func (c *CLI) stateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or reset the saved editor state",
	}

	cmd.AddCommand(c.stateShowCommand())
	cmd.AddCommand(c.statePathCommand())
	cmd.AddCommand(c.stateResetCommand())

	return cmd
}

// stateShowCommand creates the "state show" subcommand.
func (c *CLI) stateShowCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, s, err := c.openEditor(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			st := ed.State()
			if raw {
				data, err := radius.Encode(st)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			snap := ed.Snapshot()
			w, h := st.Size()
			printKeyValue("Key", ed.Key())
			printKeyValue("Backend", c.backendName())
			printKeyValue("Mode", st.Mode.Normalize().String())
			printKeyValue("Shape", fmt.Sprintf("%s (%dx%d)", st.Shape, w, h))
			printNewline()
			fmt.Fprintln(cmd.OutOrStdout(), cornerTable(&st))
			printNewline()
			fmt.Fprintln(cmd.OutOrStdout(), StyleHighlight.Render(snap.Rule))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "json", false, "print the stored JSON blob")

	return cmd
}

// statePathCommand creates the "state path" subcommand.
func (c *CLI) statePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the state is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config.Store
			switch cfg.Backend {
			case "", store.BackendFile:
				fs, err := store.NewFileStore(cfg.Dir)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), fs.Path(cfg.StateKey()))
			case store.BackendRedis:
				fmt.Fprintf(cmd.OutOrStdout(), "redis://%s/%d %s%s\n",
					orDefault(cfg.RedisAddr, store.DefaultRedisAddr), cfg.RedisDB,
					orDefault(cfg.RedisPrefix, store.DefaultRedisPrefix), cfg.StateKey())
			case store.BackendMongo:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s.%s _id=%s\n",
					orDefault(cfg.MongoURI, store.DefaultMongoURI),
					orDefault(cfg.MongoDatabase, store.DefaultMongoDatabase),
					orDefault(cfg.MongoCollection, store.DefaultMongoCollection), cfg.StateKey())
			default:
				printInfo("State is not persisted (backend %s)", cfg.Backend)
			}
			return nil
		},
	}
}

// stateResetCommand creates the "state reset" subcommand.
func (c *CLI) stateResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in initial state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, s, err := c.openEditor(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			ed.Reset(cmd.Context())
			printSuccess("State reset")
			printDetail("%s", ed.Snapshot().Rule)
			return nil
		},
	}
}

func (c *CLI) backendName() string {
	if c.config.Store.Backend == "" {
		return store.BackendFile
	}
	return c.config.Store.Backend
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// cornerTable renders every corner's active values, dimming corners the mode
// hides.
func cornerTable(st *radius.State) string {
	mode := st.Mode.Normalize()
	rows := make([][]string, 0, len(radius.Corners))
	for _, corner := range radius.Corners {
		link := ""
		if st.Corners[corner].Linked {
			link = iconLinked
		}
		rows = append(rows, []string{
			corner.Key(),
			radius.CornerLabel(corner, mode),
			valueOf(st, corner, radius.Horizontal),
			valueOf(st, corner, radius.Vertical),
			link,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Corner", "H", "V", "Link").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= 0 && row < len(radius.Corners) && !mode.Visible(radius.Corners[row]) {
				return StyleDim
			}
			if col == 2 || col == 3 {
				return StyleNumber
			}
			return StyleValue
		}).
		Render()
}
