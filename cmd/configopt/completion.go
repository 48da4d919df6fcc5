// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// newCompletionCommand creates the `configopt completion` command.
func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for configopt.

Besides commands and flags, the scripts complete setting keys for get and
set, so "configopt set json.<TAB>" offers json.pretty and json.indent.

` + SubtitleStyle.Render("Bash:") + `
  source <(configopt completion bash)

` + SubtitleStyle.Render("Zsh:") + `
  configopt completion zsh > "${fpath[1]}/_configopt"

` + SubtitleStyle.Render("Fish:") + `
  configopt completion fish | source

` + SubtitleStyle.Render("PowerShell:") + `
  configopt completion powershell | Out-String | Invoke-Expression
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
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// completeSettingKeys offers group.option keys, with the option help as the
// description, for the first argument of get and set.
func (a *App) completeSettingKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var keys []string
	for _, g := range a.Resolver.Groups() {
		for _, opt := range g.Options() {
			key := g.Name() + "." + opt.Name()
			if !strings.HasPrefix(key, toComplete) {
				continue
			}
			if help := opt.Spec().Help; help != "" {
				key += "\t" + help
			}
			keys = append(keys, key)
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
