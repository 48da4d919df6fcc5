// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/configopt/configopt/pkg/configopt"
)

// Failure is a user-facing account of a failed configopt operation: what was
// attempted, on which setting, flag or file, and what to try next. Id points
// at the catalogued guidance.
type Failure struct {
	Id        Id
	Operation string
	// Subject names the file, flag, setting or conflict tag involved.
	Subject string
	Hints   []string
	Cause   error
}

// ImportFailure reports a file that could not be imported.
func ImportFailure(path string, cause error) *Failure {
	return &Failure{
		Id:        ImportFailedId,
		Operation: "import settings",
		Subject:   path,
		Hints: []string{
			"Use a .json, .yaml, .yml or .toml file",
			"Nest options under their group: general: {base_url: ...}",
		},
		Cause: cause,
	}
}

// Diagnose describes err for the user. It returns nil when err is not a
// failure configopt knows how to explain.
func Diagnose(err error) *Failure {
	var (
		failure      *Failure
		conflict     *configopt.ConflictError
		fileErr      *configopt.FileError
		usage        *configopt.UsageError
		unknownOpt   *configopt.UnknownOptionError
		unknownGroup *configopt.UnknownGroupError
	)

	switch {
	case err == nil:
		return nil
	case errors.As(err, &failure):
		return failure
	case errors.As(err, &conflict):
		return &Failure{
			Id:        ConfigConflictId,
			Operation: "combine options",
			Subject:   "conflict tag " + conflict.Tag,
			Hints: []string{
				fmt.Sprintf("Keep only the %s options", conflict.First),
				fmt.Sprintf("Keep only the %s options", conflict.Second),
			},
			Cause: err,
		}
	case errors.As(err, &fileErr) && fileErr.Op == "load":
		return &Failure{
			Id:        ConfigLoadFailedId,
			Operation: "load configuration",
			Subject:   fileErr.Path,
			Hints: []string{
				"Check the INI syntax of the file",
				"Use --config to read another file",
			},
			Cause: fileErr.Err,
		}
	case errors.As(err, &fileErr):
		return &Failure{
			Id:        ConfigSaveFailedId,
			Operation: fileErr.Op + " configuration",
			Subject:   fileErr.Path,
			Hints: []string{
				"Check that the directory exists and is writable",
				"Use --config to write another file",
			},
			Cause: fileErr.Err,
		}
	case errors.As(err, &usage):
		return &Failure{
			Id:        InvalidUsageId,
			Operation: "parse command line",
			Hints:     []string{"Run configopt flags to list the setting flags"},
			Cause:     usage.Err,
		}
	case errors.As(err, &unknownOpt):
		return &Failure{
			Id:        UnknownSettingId,
			Operation: "find setting",
			Subject:   unknownOpt.Group + "." + unknownOpt.Option,
			Hints:     []string{"Run configopt show to list the settings of group " + unknownOpt.Group},
		}
	case errors.As(err, &unknownGroup):
		return &Failure{
			Id:        UnknownSettingId,
			Operation: "find setting group",
			Subject:   unknownGroup.Group,
			Hints:     []string{"Run configopt show to list the groups"},
		}
	case errors.Is(err, configopt.ErrUnknownOption):
		return &Failure{
			Id:        UnknownSettingId,
			Operation: "find setting",
			Hints:     []string{"Write settings as group.option, e.g. general.base_url"},
			Cause:     err,
		}
	default:
		return nil
	}
}

// Error returns "failed to <operation>: <subject>: <cause>".
func (f *Failure) Error() string {
	var msg strings.Builder
	msg.WriteString("failed to ")
	msg.WriteString(f.Operation)
	if f.Subject != "" {
		msg.WriteString(": ")
		msg.WriteString(f.Subject)
	}
	if f.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(f.Cause.Error())
	}
	return msg.String()
}

// Unwrap returns the cause.
func (f *Failure) Unwrap() error {
	return f.Cause
}

// Format returns Error followed by one bullet per hint. In verbose mode the
// cause chain is appended.
func (f *Failure) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(f.Error())

	if len(f.Hints) > 0 {
		msg.WriteString("\n")
		for _, hint := range f.Hints {
			msg.WriteString("\n  • ")
			msg.WriteString(hint)
		}
	}

	if verbose && f.Cause != nil {
		msg.WriteString("\n\nCaused by:")
		for depth, err := 1, f.Cause; err != nil; depth, err = depth+1, errors.Unwrap(err) {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err)
		}
	}
	return msg.String()
}

// ExitCode is 2 for failures caused by the command line and 1 otherwise.
func (f *Failure) ExitCode() int {
	switch f.Id {
	case ConfigConflictId, InvalidUsageId, UnknownSettingId:
		return 2
	default:
		return 1
	}
}
