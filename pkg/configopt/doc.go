// SPDX-License-Identifier: MPL-2.0

// Package configopt merges option values from three sources into one resolved
// view per option: a programmatic override set by the application, command-line
// flags, and a persisted INI file.
//
// Options are registered inside named groups. A group doubles as the INI section
// name and as the namespace of its options' internal flag identifiers, so two
// groups may declare options with the same name without clashing.
//
// Resolution precedence, strongest first:
//
//	programmatic > command-line > persisted > default
//
// Options may carry a conflict tag. Within one invocation, flags carrying the
// same tag may only be supplied from a single group; mixing groups fails with a
// ConflictError before any command-line value is applied.
//
// Typical host usage:
//
//	res := configopt.New("restshell")
//	res.AddGroup("general", "General Options")
//	_, _ = res.AddOption("general", configopt.OptionSpec{
//		Name:  "base_url",
//		Short: "b",
//		Help:  "Base URL for all requests",
//	})
//	if _, err := res.Invoke(os.Args[1:]); err != nil {
//		// usage error or conflict
//	}
//	baseURL, _ := res.Value("general", "base_url")
package configopt
