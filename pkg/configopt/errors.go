// SPDX-License-Identifier: MPL-2.0

package configopt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpec is the sentinel wrapped by InvalidSpecError.
	ErrInvalidSpec = errors.New("invalid option spec")
	// ErrUnknownGroup is the sentinel wrapped by UnknownGroupError.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrUnknownOption is the sentinel wrapped by UnknownOptionError.
	ErrUnknownOption = errors.New("unknown option")
	// ErrConflict is the sentinel wrapped by ConflictError.
	ErrConflict = errors.New("conflicting options")
	// ErrDuplicateFlag is the sentinel wrapped by DuplicateFlagError.
	ErrDuplicateFlag = errors.New("duplicate flag")
	// ErrUsage is the sentinel wrapped by UsageError.
	ErrUsage = errors.New("usage error")
)

type (
	// InvalidSpecError is returned when an option registration is missing a
	// required field or declares an unusable flag. It wraps ErrInvalidSpec.
	InvalidSpecError struct {
		Group  string
		Option string
		Reason string
	}

	// UnknownGroupError is returned when a group was never registered.
	// It wraps ErrUnknownGroup.
	UnknownGroupError struct {
		Group string
	}

	// UnknownOptionError is returned when an option was never registered in
	// its group. It wraps ErrUnknownOption.
	UnknownOptionError struct {
		Group  string
		Option string
	}

	// ConflictError is returned when flags from two different groups claim the
	// same conflict tag on one invocation. First is the group that claimed the
	// tag first; Second is the group that tried to claim it afterwards.
	// It wraps ErrConflict.
	ConflictError struct {
		Tag    string
		First  string
		Second string
	}

	// DuplicateFlagError is returned when two options resolve to the same
	// command-line flag name or shorthand. It wraps ErrDuplicateFlag.
	DuplicateFlagError struct {
		Flag   string
		Group  string
		Option string
	}

	// UsageError wraps a flag parser failure (unknown flag, missing argument,
	// help requested). It matches both ErrUsage and the parser's own error.
	UsageError struct {
		Err error
	}

	// FileError reports an I/O or syntax failure on the persisted file.
	FileError struct {
		Op   string
		Path string
		Err  error
	}
)

// Error implements the error interface for InvalidSpecError.
func (e *InvalidSpecError) Error() string {
	switch {
	case e.Option == "":
		return fmt.Sprintf("invalid option spec in group %q: %s", e.Group, e.Reason)
	default:
		return fmt.Sprintf("invalid option spec %s.%s: %s", e.Group, e.Option, e.Reason)
	}
}

// Unwrap returns ErrInvalidSpec for errors.Is() compatibility.
func (e *InvalidSpecError) Unwrap() error { return ErrInvalidSpec }

// Error implements the error interface for UnknownGroupError.
func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown group %q", e.Group)
}

// Unwrap returns ErrUnknownGroup for errors.Is() compatibility.
func (e *UnknownGroupError) Unwrap() error { return ErrUnknownGroup }

// Error implements the error interface for UnknownOptionError.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q in group %q", e.Option, e.Group)
}

// Unwrap returns ErrUnknownOption for errors.Is() compatibility.
func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }

// Error implements the error interface for ConflictError.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("you can't mix options from %s and %s", e.First, e.Second)
}

// Unwrap returns ErrConflict for errors.Is() compatibility.
func (e *ConflictError) Unwrap() error { return ErrConflict }

// Error implements the error interface for DuplicateFlagError.
func (e *DuplicateFlagError) Error() string {
	return fmt.Sprintf("flag %q of %s.%s is already defined", e.Flag, e.Group, e.Option)
}

// Unwrap returns ErrDuplicateFlag for errors.Is() compatibility.
func (e *DuplicateFlagError) Unwrap() error { return ErrDuplicateFlag }

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes both ErrUsage and the parser error.
func (e *UsageError) Unwrap() []error { return []error{ErrUsage, e.Err} }

// Error implements the error interface for FileError.
func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying I/O or parse error.
func (e *FileError) Unwrap() error { return e.Err }
