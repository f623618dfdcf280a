package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for radii. Corner, axis, mode, shape and
preset arguments complete too.

Bash:
  $ source <(radii completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ radii completion bash > /etc/bash_completion.d/radii
  # macOS:
  $ radii completion bash > $(brew --prefix)/etc/bash_completion.d/radii

Zsh:
  # If shell completion is not already enabled in your environment,
  # enable it once with:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  $ radii completion zsh > "${fpath[1]}/_radii"

Fish:
  $ radii completion fish | source
  $ radii completion fish > ~/.config/fish/completions/radii.fish

PowerShell:
  PS> radii completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}
