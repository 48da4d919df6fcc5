// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/configopt/configopt/pkg/configopt"
)

// Group names of the CLI's own settings.
const (
	groupGeneral = "general"
	groupJSON    = "json"
	groupRaw     = "raw"
	groupSession = "session"

	// formatTag makes the json and raw output groups mutually exclusive.
	formatTag = "format"
)

type settingGroup struct {
	name        string
	description string
	options     []configopt.OptionSpec
}

var settingGroups = []settingGroup{
	{
		name:        groupGeneral,
		description: "General Options",
		options: []configopt.OptionSpec{
			{
				Name:    "base_url",
				Short:   "b",
				Help:    "Base URL of the API.",
				Metavar: "URL",
			},
			{
				Name:    "headers",
				Help:    "Show response headers (on, off).",
				Metavar: "MODE",
				Default: configopt.Some("off"),
			},
			{
				Name:    "vi_mode",
				Long:    "vi-editing-mode",
				Help:    "Use vi editing mode (on, off).",
				Metavar: "MODE",
				Default: configopt.Some("off"),
			},
		},
	},
	{
		name:        groupJSON,
		description: "JSON Output Options",
		options: []configopt.OptionSpec{
			{
				Name:        "pretty",
				Kind:        configopt.KindBool,
				Help:        "Pretty-print JSON output.",
				ConflictTag: formatTag,
			},
			{
				Name:        "indent",
				Help:        "Indentation width used by --pretty.",
				Metavar:     "N",
				Default:     configopt.Some("2"),
				ConflictTag: formatTag,
			},
		},
	},
	{
		name:        groupRaw,
		description: "Raw Output Options",
		options: []configopt.OptionSpec{
			{
				Name:        "raw",
				Kind:        configopt.KindBool,
				Help:        "Print plain key=value lines without styling.",
				ConflictTag: formatTag,
			},
		},
	},
	{
		name:        groupSession,
		description: "Session Options",
		options: []configopt.OptionSpec{
			{
				Name:            "last_path",
				Help:            "Last file imported.",
				SkipCommandLine: true,
			},
			{
				Name:        "dry_run",
				Kind:        configopt.KindBool,
				Help:        "Print what would be written instead of writing it.",
				SkipPersist: true,
			},
		},
	},
}

// registerSettings declares the CLI's own settings on r.
func registerSettings(r *configopt.Resolver) error {
	for _, sg := range settingGroups {
		r.AddGroup(sg.name, sg.description)
		for _, spec := range sg.options {
			if _, err := r.AddOption(sg.name, spec); err != nil {
				return fmt.Errorf("register %s.%s: %w", sg.name, spec.Name, err)
			}
		}
	}
	return nil
}
