// SPDX-License-Identifier: MPL-2.0

package configopt

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

type (
	// FlagBinding ties a flag set to the resolver's options. It is produced by
	// BindFlags and consumed by Apply once the flag set has been parsed,
	// either by Invoke or by a host such as cobra.
	FlagBinding struct {
		fs         *pflag.FlagSet
		reserved   *pflag.FlagSet
		configFlag *pflag.Flag
		configPath string
		table      *flagTable
		sections   []flagSection
	}

	flagSection struct {
		title string
		flags *pflag.FlagSet
	}

	staged struct {
		opt   *Option
		value Value
	}
)

// BindFlags adds the reserved --config flag and one flag per command-line
// eligible option to fs. Groups without eligible options add nothing.
func (r *Resolver) BindFlags(fs *pflag.FlagSet) (*FlagBinding, error) {
	b := &FlagBinding{fs: fs, table: newFlagTable()}

	if fs.Lookup(ConfigFlagName) != nil || fs.ShorthandLookup(ConfigFlagShorthand) != nil {
		return nil, &DuplicateFlagError{Flag: "--" + ConfigFlagName, Group: "", Option: ConfigFlagName}
	}
	b.reserved = pflag.NewFlagSet(r.appName, pflag.ContinueOnError)
	b.reserved.StringVarP(&b.configPath, ConfigFlagName, ConfigFlagShorthand, r.configPath, "Configuration file.")
	b.configFlag = b.reserved.Lookup(ConfigFlagName)
	fs.AddFlagSet(b.reserved)

	for _, g := range r.Groups() {
		gfs, err := g.buildFlags(b.table)
		if err != nil {
			return nil, err
		}
		if gfs == nil {
			continue
		}
		var dup error
		gfs.VisitAll(func(f *pflag.Flag) {
			if dup != nil {
				return
			}
			if fs.Lookup(f.Name) != nil {
				dup = &DuplicateFlagError{Flag: "--" + f.Name, Group: g.Name(), Option: b.optionFor(f)}
				return
			}
			if f.Shorthand != "" && fs.ShorthandLookup(f.Shorthand) != nil {
				dup = &DuplicateFlagError{Flag: "-" + f.Shorthand, Group: g.Name(), Option: b.optionFor(f)}
			}
		})
		if dup != nil {
			return nil, dup
		}
		fs.AddFlagSet(gfs)
		title := g.Description()
		if title == "" {
			title = g.Name()
		}
		b.sections = append(b.sections, flagSection{title: title, flags: gfs})
	}
	return b, nil
}

func (b *FlagBinding) optionFor(f *pflag.Flag) string {
	for _, fb := range b.table.bindings() {
		if fb.flag == f {
			return fb.option
		}
	}
	return ""
}

// Lookup returns the generated flag of group.option, or nil when the option
// has no flag.
func (b *FlagBinding) Lookup(group, option string) *pflag.Flag {
	fb, ok := b.table.lookup(group + "_" + option)
	if !ok || fb.group != group || fb.option != option {
		return nil
	}
	return fb.flag
}

// FlagSet returns the flag set the binding was attached to.
func (b *FlagBinding) FlagSet() *pflag.FlagSet { return b.fs }

// Usage renders the reserved flags followed by one section per group that
// contributed flags, headed by the group description.
func (b *FlagBinding) Usage() string {
	var sb strings.Builder
	sb.WriteString("Options:\n")
	sb.WriteString(b.reserved.FlagUsages())
	for _, sec := range b.sections {
		fmt.Fprintf(&sb, "\n%s:\n", sec.title)
		sb.WriteString(sec.flags.FlagUsages())
	}
	return sb.String()
}

// Apply reads the supplied flags of a parsed binding, enforces conflict tags,
// records command-line values and loads the persisted file.
//
// Command-line values of an earlier Apply are cleared first. Supplied flags
// are checked in group registration order, not command-line order, so the
// earlier registered group is reported as ConflictError.First. The first
// conflict stops the pass: nothing is applied and the persisted file is not
// read.
func (r *Resolver) Apply(b *FlagBinding) (*Invocation, error) {
	conflicts := Conflicts{}
	var pending []staged

	for _, fb := range b.table.bindings() {
		opt, err := r.Option(fb.group, fb.option)
		if err != nil {
			return nil, err
		}
		opt.setSlot(slotCommandLine, None())
	}

	for _, fb := range b.table.bindings() {
		if !fb.flag.Changed {
			continue
		}
		if err := conflicts.claim(fb.tag, fb.group); err != nil {
			r.logger.Debug("conflicting flags", "tag", fb.tag, "flag", fb.flag.Name, "group", fb.group)
			return nil, err
		}
		opt, err := r.Option(fb.group, fb.option)
		if err != nil {
			return nil, err
		}
		pending = append(pending, staged{opt: opt, value: fb.value.parsed})
	}

	for _, s := range pending {
		r.logger.Debug("command-line value", "option", s.opt.Name(), "value", s.value.String())
		s.opt.setSlot(slotCommandLine, s.value)
	}

	if b.configFlag.Changed {
		r.configPath = b.configPath
	}
	if err := r.Load(); err != nil {
		return nil, err
	}

	return &Invocation{
		Conflicts:  conflicts.clone(),
		ConfigPath: r.configPath,
		Args:       b.fs.Args(),
	}, nil
}

// Invoke builds the command-line flags, parses args, applies supplied flags and
// loads the persisted file. Parser failures, including a help request, are
// returned as *UsageError after the parser has printed its message.
func (r *Resolver) Invoke(args []string) (*Invocation, error) {
	fs := pflag.NewFlagSet(r.appName, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(r.output)

	b, err := r.BindFlags(fs)
	if err != nil {
		return nil, err
	}
	fs.Usage = func() {
		fmt.Fprintf(r.output, "Usage: %s [options]\n\n%s", r.appName, b.Usage())
	}

	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{Err: err}
	}
	return r.Apply(b)
}

// Usage renders the grouped flag help without parsing anything.
func (r *Resolver) Usage() (string, error) {
	fs := pflag.NewFlagSet(r.appName, pflag.ContinueOnError)
	fs.SortFlags = false
	b, err := r.BindFlags(fs)
	if err != nil {
		return "", err
	}
	return b.Usage(), nil
}
