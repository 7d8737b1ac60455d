package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for reelfind.

To load completions:

Bash:
  $ source <(reelfind completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ reelfind completion bash > /etc/bash_completion.d/reelfind
  # macOS:
  $ reelfind completion bash > $(brew --prefix)/etc/bash_completion.d/reelfind

Zsh:
  $ source <(reelfind completion zsh)
  # To load completions for each session, execute once:
  $ reelfind completion zsh > "${fpath[1]}/_reelfind"

Fish:
  $ reelfind completion fish | source
  # To load completions for each session, execute once:
  $ reelfind completion fish > ~/.config/fish/completions/reelfind.fish

PowerShell:
  PS> reelfind completion powershell | Out-String | Invoke-Expression
  # To load completions for each session, execute once:
  PS> reelfind completion powershell > reelfind.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCompletion(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func writeCompletion(w io.Writer, shell string) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unsupported shell %q", shell)
}
