// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/configopt/configopt/internal/issue"

	"github.com/spf13/cobra"
)

// fail prints what went wrong and what to try, then returns err as an
// ExitError. Errors configopt cannot explain are left to cobra to print.
func (a *App) fail(cmd *cobra.Command, err error) error {
	failure := issue.Diagnose(err)
	if failure == nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	fmt.Fprintln(a.stderr, ErrorStyle.Render(failure.Format(a.verbose)))
	a.renderIssue(failure.Id)
	if cmd != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
	}
	return &ExitError{Code: failure.ExitCode(), Err: err}
}

// renderIssue prints the catalogued guidance for id. Rendering failures are
// logged and otherwise ignored.
func (a *App) renderIssue(id issue.Id) {
	is := issue.Get(id)
	if is == nil {
		return
	}
	out, err := is.Render(a.issueStyle)
	if err != nil {
		a.logger.Debug("cannot render issue", "id", id, "err", err)
		return
	}
	fmt.Fprint(a.stderr, out)
}
