// SPDX-License-Identifier: MPL-2.0

// Package issue explains configopt failures to the user.
//
// Diagnose turns resolver errors (conflicts, unreadable or unwritable files,
// bad command lines, unknown settings) into a Failure naming the operation,
// its subject and hints. Each Failure points at a Markdown entry of the issue
// catalog, rendered for the terminal with glamour.
package issue
