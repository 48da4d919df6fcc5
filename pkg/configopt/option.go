// SPDX-License-Identifier: MPL-2.0

package configopt

import "strings"

const (
	// KindString flags take one argument and store it verbatim.
	KindString FlagKind = iota
	// KindBool flags take no argument; supplying the flag stores true.
	// An explicit --flag=false is still accepted.
	KindBool
)

const (
	// SourceNone means no slot and no default holds a value.
	SourceNone Source = iota
	// SourceDefault means the registered default won.
	SourceDefault
	// SourcePersisted means the value came from the persisted file.
	SourcePersisted
	// SourceCommandLine means the value came from a supplied flag.
	SourceCommandLine
	// SourceProgrammatic means the application set the value directly.
	SourceProgrammatic
)

// slot indexes, strongest first
const (
	slotProgrammatic = iota
	slotCommandLine
	slotPersisted
	slotCount
)

var slotSources = [slotCount]Source{SourceProgrammatic, SourceCommandLine, SourcePersisted}

type (
	// FlagKind selects the arity of an option's command-line flag.
	FlagKind int

	// Source identifies which layer produced a resolved value.
	Source int

	// OptionSpec describes an option at registration time. Only Name is
	// required. The zero values of SkipCommandLine and SkipPersist keep the
	// option both command-line eligible and persistable.
	OptionSpec struct {
		// Name identifies the option inside its group and is the persisted key.
		Name string
		// Short is the single-letter flag shorthand ("b" or "-b").
		Short string
		// Long is the long flag name ("base-url" or "--base-url"). When empty it
		// is derived from Name with underscores turned into dashes.
		Long string
		// Help is the usage text shown for the flag.
		Help string
		// Metavar is the argument label shown in usage. Defaults to the
		// upper-cased option name.
		Metavar string
		// Kind selects the flag arity.
		Kind FlagKind
		// Default is used when no slot holds a value. The zero Value means the
		// option has no default.
		Default Value
		// ConflictTag groups flags that may only be supplied from one group
		// per invocation. Empty means no constraint.
		ConflictTag string
		// SkipCommandLine keeps the option off the command line.
		SkipCommandLine bool
		// SkipPersist keeps the option out of the persisted file.
		SkipPersist bool
	}

	// Option is a single named setting with three value slots and a default.
	// Options are created by Group.AddOption and live as long as their group.
	Option struct {
		spec  OptionSpec
		slots [slotCount]Value
	}
)

// String returns the source name used in diagnostics.
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourcePersisted:
		return "persisted"
	case SourceCommandLine:
		return "command-line"
	case SourceProgrammatic:
		return "programmatic"
	default:
		return "none"
	}
}

// String returns the flag kind name.
func (k FlagKind) String() string {
	if k == KindBool {
		return "bool"
	}
	return "string"
}

func newOption(spec OptionSpec) *Option {
	spec.Short = strings.TrimPrefix(spec.Short, "-")
	spec.Long = strings.TrimPrefix(spec.Long, "--")
	if spec.Long == "" {
		spec.Long = strings.ReplaceAll(spec.Name, "_", "-")
	}
	return &Option{spec: spec}
}

// Name returns the option name.
func (o *Option) Name() string { return o.spec.Name }

// Spec returns a copy of the normalized registration spec.
func (o *Option) Spec() OptionSpec { return o.spec }

// Default returns the registered default.
func (o *Option) Default() Value { return o.spec.Default }

// IsCommandLineEligible reports whether the option gets a flag.
func (o *Option) IsCommandLineEligible() bool { return !o.spec.SkipCommandLine }

// IsPersistable reports whether Save writes the option.
func (o *Option) IsPersistable() bool { return !o.spec.SkipPersist }

// SetProgrammatic overrides every other source until cleared.
func (o *Option) SetProgrammatic(v any) {
	o.slots[slotProgrammatic] = Some(v)
}

// ClearProgrammatic removes the programmatic override.
func (o *Option) ClearProgrammatic() {
	o.slots[slotProgrammatic] = None()
}

// SetCommandLine records a value parsed from a supplied flag.
func (o *Option) SetCommandLine(v any) {
	o.slots[slotCommandLine] = Some(v)
}

// SetPersisted records a value read from the persisted file.
func (o *Option) SetPersisted(v any) {
	o.slots[slotPersisted] = Some(v)
}

// setSlot stores an already tagged value; used where the caller may hold an
// absent Value.
func (o *Option) setSlot(slot int, v Value) {
	o.slots[slot] = v
}

// Programmatic returns the programmatic slot.
func (o *Option) Programmatic() Value { return o.slots[slotProgrammatic] }

// CommandLine returns the command-line slot.
func (o *Option) CommandLine() Value { return o.slots[slotCommandLine] }

// Persisted returns the persisted slot.
func (o *Option) Persisted() Value { return o.slots[slotPersisted] }

// Resolve returns the first present slot in precedence order, then the
// default, then an absent Value.
func (o *Option) Resolve() Value {
	v, _ := o.resolve()
	return v
}

// Source reports which layer Resolve takes its value from.
func (o *Option) Source() Source {
	_, src := o.resolve()
	return src
}

func (o *Option) resolve() (Value, Source) {
	for i, v := range o.slots {
		if v.IsPresent() {
			return v, slotSources[i]
		}
	}
	if o.spec.Default.IsPresent() {
		return o.spec.Default, SourceDefault
	}
	return None(), SourceNone
}
