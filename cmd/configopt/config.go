// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/configopt/configopt/pkg/configopt"

	"github.com/spf13/cobra"
)

func newShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show every setting with its resolved value and source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.show(cmd)
		},
	}
}

func newGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "get <group.option>",
		Short:             "Print the resolved value of one setting",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.completeSettingKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, err := app.lookupSetting(args[0])
			if err != nil {
				return app.fail(cmd, err)
			}
			v := opt.Resolve()
			if !v.IsPresent() {
				return app.fail(cmd, fmt.Errorf("%s is not set", args[0]))
			}
			fmt.Fprintln(app.stdout, v.String())
			return nil
		},
	}
}

func newSetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <group.option> <value>",
		Short: "Set a setting and save the configuration file",
		Long: `Set a setting and save the configuration file.

The value is read like a value from the file: true, yes, false and no
(also capitalized) become booleans, anything else is kept as text.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: app.completeSettingKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, err := app.lookupSetting(args[0])
			if err != nil {
				return app.fail(cmd, err)
			}
			v, _ := configopt.ParseLiteral(args[1]).Get()
			opt.SetProgrammatic(v)
			return app.save(cmd)
		},
	}
}

func newSaveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Write the resolved settings to the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.save(cmd)
		},
	}
}

func newPathCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.Resolver.ConfigPath()
			if app.flag(groupRaw, "raw") {
				fmt.Fprintln(app.stdout, path)
				return nil
			}
			fmt.Fprintln(app.stdout, KeyStyle.Render(path))
			return nil
		},
	}
}

func newFlagsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "List the setting flags grouped by section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.stdout, app.binding.Usage())
			return nil
		},
	}
}

// show prints every option of every group. With raw.raw set it prints plain
// group.option=value lines for present values only.
func (a *App) show(cmd *cobra.Command) error {
	if a.flag(groupRaw, "raw") {
		return a.showRaw(a.stdout)
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Configuration"))
	sb.WriteString(SubtitleStyle.Render(" " + a.Resolver.ConfigPath()))
	sb.WriteString("\n")

	for _, g := range a.Resolver.Groups() {
		sb.WriteString("\n")
		sb.WriteString(TitleStyle.Render("[" + g.Name() + "]"))
		if g.Description() != "" {
			sb.WriteString(SubtitleStyle.Render(" " + g.Description()))
		}
		sb.WriteString("\n")
		for _, opt := range g.Options() {
			v := opt.Resolve()
			value := SubtitleStyle.Render("(unset)")
			if v.IsPresent() {
				value = SuccessStyle.Render(v.String())
			}
			fmt.Fprintf(&sb, "  %s = %s %s\n",
				KeyStyle.Render(opt.Name()), value, SubtitleStyle.Render("("+opt.Source().String()+")"))
		}
	}

	fmt.Fprint(a.stdout, sb.String())
	return nil
}

func (a *App) showRaw(w io.Writer) error {
	for _, g := range a.Resolver.Groups() {
		for _, opt := range g.Options() {
			v := opt.Resolve()
			if !v.IsPresent() {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s.%s=%s\n", g.Name(), opt.Name(), v.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

// save writes the configuration file, or prints it under --dry-run.
func (a *App) save(cmd *cobra.Command) error {
	if a.flag(groupSession, "dry_run") {
		if _, err := a.Resolver.WriteTo(a.stdout); err != nil {
			return a.fail(cmd, err)
		}
		return nil
	}
	if err := a.Resolver.Save(); err != nil {
		return a.fail(cmd, err)
	}
	a.logger.Info("configuration saved", "path", a.Resolver.ConfigPath())
	return nil
}
