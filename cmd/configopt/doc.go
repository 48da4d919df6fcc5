// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for configopt.
//
// The CLI registers its own settings on a configopt.Resolver, binds the
// generated flags to the root command, and resolves them (flags, then the INI
// file) before any subcommand runs. Subcommands inspect, change, persist,
// export and import the resolved configuration.
package cmd
