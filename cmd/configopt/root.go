// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/configopt/configopt/pkg/configopt"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree and binds the resolver's flags to
// the root's persistent flags. Every command resolves flags and the INI file
// before it runs.
func NewRootCommand(app *App) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Layered settings from defaults, an INI file and flags",
		Long: TitleStyle.Render(appName) + SubtitleStyle.Render(" - layered settings from defaults, an INI file and flags") + `

Every setting resolves from, strongest first: a value set by the program,
a command-line flag, the INI file, and finally its default.

` + SubtitleStyle.Render("Examples:") + `
  configopt                                Show the resolved settings
  configopt -b http://localhost:8080 save  Persist a flag value
  configopt get general.headers            Print one setting
  configopt set json.indent 4              Change and persist a setting
  configopt flags                          List flags grouped by section`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.show(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	binding, err := app.Resolver.BindFlags(rootCmd.PersistentFlags())
	if err != nil {
		return nil, err
	}
	app.binding = binding

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return app.fail(cmd, &configopt.UsageError{Err: err})
	})

	rootCmd.AddCommand(
		newShowCommand(app),
		newGetCommand(app),
		newSetCommand(app),
		newSaveCommand(app),
		newPathCommand(app),
		newFlagsCommand(app),
		newDumpCommand(app),
		newImportCommand(app),
		newCompletionCommand(),
	)
	return rootCmd, nil
}

// resolve applies the supplied flags and loads the INI file.
func (a *App) resolve(cmd *cobra.Command) error {
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	inv, err := a.Resolver.Apply(a.binding)
	if err != nil {
		return a.fail(cmd, err)
	}
	a.invocation = inv
	a.logger.Debug("settings resolved", "config", inv.ConfigPath, "conflicts", inv.Conflicts.Tags())
	return nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the App and runs the root command. This is called by
// main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(ExitFailure)
	}
	rootCmd, err := NewRootCommand(app)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(ExitFailure)
	}

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFailure)
	}
}
