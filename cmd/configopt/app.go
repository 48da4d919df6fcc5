// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/configopt/configopt/pkg/configopt"

	"github.com/charmbracelet/log"
)

const (
	appName = "configopt"

	// defaultIssueStyle is the glamour style used for issue guidance.
	defaultIssueStyle = "dark"
)

type (
	// App wires the resolver and the shared writers. All command handlers
	// receive an App reference.
	App struct {
		Resolver *configopt.Resolver

		binding    *configopt.FlagBinding
		invocation *configopt.Invocation
		logger     *log.Logger
		stdout     io.Writer
		stderr     io.Writer
		issueStyle string
		verbose    bool
	}

	// Dependencies defines the injection points for building an App. Zero
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Stdout io.Writer
		Stderr io.Writer
		// ConfigPath replaces ~/.configopt.ini as the default file.
		ConfigPath string
		// IssueStyle is the glamour style for issue guidance.
		IssueStyle string
	}
)

// NewApp builds the App and registers the CLI settings.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.IssueStyle == "" {
		deps.IssueStyle = defaultIssueStyle
	}

	logger := log.NewWithOptions(deps.Stderr, log.Options{
		Prefix: appName,
		Level:  log.InfoLevel,
	})

	resolver := configopt.New(appName,
		configopt.WithLogger(logger),
		configopt.WithConfigPath(deps.ConfigPath),
		configopt.WithOutput(deps.Stderr),
	)
	if err := registerSettings(resolver); err != nil {
		return nil, err
	}

	return &App{
		Resolver:   resolver,
		logger:     logger,
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
		issueStyle: deps.IssueStyle,
	}, nil
}

// Invocation returns the outcome of the last flag resolution, or nil before
// any command ran.
func (a *App) Invocation() *configopt.Invocation {
	return a.invocation
}

// flag reports the resolved boolean value of group.option.
func (a *App) flag(group, option string) bool {
	v, err := a.Resolver.Value(group, option)
	if err != nil {
		return false
	}
	b, _ := v.Bool()
	return b
}

// setting returns the resolved textual value of group.option.
func (a *App) setting(group, option string) string {
	v, err := a.Resolver.Value(group, option)
	if err != nil {
		return ""
	}
	return v.String()
}

// lookupSetting resolves a "group.option" key.
func (a *App) lookupSetting(key string) (*configopt.Option, error) {
	group, option, ok := strings.Cut(key, ".")
	if !ok || group == "" || option == "" {
		return nil, fmt.Errorf("setting %q must be written as group.option: %w", key, configopt.ErrUnknownOption)
	}
	return a.Resolver.Option(group, option)
}
