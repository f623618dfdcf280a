package cli

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// editCommand opens the interactive editor.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the saved state interactively",
		Long: `Open a terminal editor for the saved state. Every change is saved as it
happens; with the file backend, edits made by other radii commands while the
editor is open are picked up automatically.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ed, s, err := c.openEditor(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			var changes <-chan struct{}
			if fs, ok := fileStoreOf(s); ok {
				ch, stop, err := watchFile(ctx, fs.Path(ed.Key()), c.Logger)
				if err != nil {
					c.Logger.Debug("not watching state file", "err", err)
				} else {
					defer stop()
					changes = ch
				}
			}

			// Log lines would tear the alternate screen.
			c.Logger.SetOutput(io.Discard)
			defer c.Logger.SetOutput(os.Stderr)

			p := tea.NewProgram(NewEditorModel(ctx, ed, changes), tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return err
			}

			printSuccess("Saved")
			printDetail("%s", ed.Snapshot().CSS)
			return nil
		},
	}
}
