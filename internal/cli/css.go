package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/matzehuels/radii/pkg/editor"
	apperrors "github.com/matzehuels/radii/pkg/errors"
	"github.com/matzehuels/radii/pkg/radius"
)

// cssOpts holds the flags of the css command.
type cssOpts struct {
	mode     string // serialize as if this mode were active
	copy     bool   // also copy the output to the clipboard
	rule     bool   // full declaration instead of the bare value
	longhand bool   // four per-corner declarations
}

// cssCommand prints the border-radius for the saved state.
func (c *CLI) cssCommand() *cobra.Command {
	var opts cssOpts

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the border-radius shorthand for the saved state",
		Example: `  radii css
  radii css --rule
  radii css --mode 1 --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, s, err := c.openEditor(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			st := ed.State()
			if opts.mode != "" {
				m, err := radius.ParseMode(opts.mode)
				if err != nil {
					return err
				}
				st.Mode = m
			}

			out := formatCSS(editor.Compute(&st), opts)
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if opts.copy {
				if err := copyToClipboard(out); err != nil {
					return err
				}
				c.Logger.Info("Copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "", "serialize with this mode (1-4) without saving it")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the output to the clipboard")
	cmd.Flags().BoolVar(&opts.rule, "rule", false, "print the full declaration")
	cmd.Flags().BoolVar(&opts.longhand, "longhand", false, "print per-corner longhand declarations")
	cmd.MarkFlagsMutuallyExclusive("rule", "longhand")

	return cmd
}

// copyToClipboard puts text on the system clipboard. Systems without a
// clipboard utility get an UNSUPPORTED error.
func copyToClipboard(text string) error {
	if clipboard.Unsupported {
		return apperrors.New(apperrors.ErrCodeUnsupported, "no clipboard available (install xclip, xsel or wl-clipboard)")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

func formatCSS(snap editor.Snapshot, opts cssOpts) string {
	switch {
	case opts.longhand:
		lines := make([]string, len(snap.Longhands))
		for i, d := range snap.Longhands {
			lines[i] = d.String()
		}
		return strings.Join(lines, "\n")
	case opts.rule:
		return snap.Rule
	}
	return snap.CSS
}
