// SPDX-License-Identifier: MPL-2.0

package configopt

import (
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Group is a named collection of options sharing a namespace. The group name
// is the persisted section name and the prefix of its flags' internal
// identifiers.
type Group struct {
	name        string
	description string
	order       []string
	options     map[string]*Option
}

var metavarCaser = cases.Upper(language.Und)

func newGroup(name, description string) *Group {
	return &Group{
		name:        name,
		description: description,
		options:     make(map[string]*Option),
	}
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Description returns the human-readable description used as the usage
// section header.
func (g *Group) Description() string { return g.description }

// AddOption registers an option. Registering a name that already exists is a
// no-op and returns the existing option untouched.
func (g *Group) AddOption(spec OptionSpec) (*Option, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, &InvalidSpecError{Group: g.name, Reason: "missing option name"}
	}
	if existing, ok := g.options[spec.Name]; ok {
		return existing, nil
	}
	short := strings.TrimPrefix(spec.Short, "-")
	if len(short) > 1 {
		return nil, &InvalidSpecError{Group: g.name, Option: spec.Name, Reason: "shorthand must be a single character"}
	}

	opt := newOption(spec)
	g.options[spec.Name] = opt
	g.order = append(g.order, spec.Name)
	return opt, nil
}

// Option returns the registered option.
func (g *Group) Option(name string) (*Option, error) {
	opt, ok := g.options[name]
	if !ok {
		return nil, &UnknownOptionError{Group: g.name, Option: name}
	}
	return opt, nil
}

// Options returns the options in registration order.
func (g *Group) Options() []*Option {
	out := make([]*Option, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.options[name])
	}
	return out
}

// Get returns the resolved value of an option.
func (g *Group) Get(name string) (Value, error) {
	opt, err := g.Option(name)
	if err != nil {
		return None(), err
	}
	return opt.Resolve(), nil
}

// Set stores a programmatic override on an option.
func (g *Group) Set(name string, v any) error {
	opt, err := g.Option(name)
	if err != nil {
		return err
	}
	opt.SetProgrammatic(v)
	return nil
}

// internalID is the collision-free identifier of an option's flag.
func (g *Group) internalID(opt *Option) string {
	return g.name + "_" + opt.Name()
}

// buildFlags creates one flag per command-line eligible option in a flag set
// of its own and records each flag in the side table. It returns a nil set
// when the group contributes no flags.
func (g *Group) buildFlags(table *flagTable) (*pflag.FlagSet, error) {
	var fs *pflag.FlagSet
	for _, opt := range g.Options() {
		if !opt.IsCommandLineEligible() {
			continue
		}
		if fs == nil {
			fs = pflag.NewFlagSet(g.name, pflag.ContinueOnError)
			fs.SortFlags = false
		}

		spec := opt.Spec()
		if fs.Lookup(spec.Long) != nil {
			return nil, &DuplicateFlagError{Flag: "--" + spec.Long, Group: g.name, Option: opt.Name()}
		}
		if spec.Short != "" && fs.ShorthandLookup(spec.Short) != nil {
			return nil, &DuplicateFlagError{Flag: "-" + spec.Short, Group: g.name, Option: opt.Name()}
		}
		metavar := spec.Metavar
		if metavar == "" {
			metavar = metavarCaser.String(opt.Name())
		}
		val := &flagValue{kind: spec.Kind, metavar: metavar}
		flag := fs.VarPF(val, spec.Long, spec.Short, spec.Help)
		if spec.Kind == KindBool {
			flag.NoOptDefVal = "true"
		}

		table.add(&flagBinding{
			id:     g.internalID(opt),
			group:  g.name,
			option: opt.Name(),
			tag:    spec.ConflictTag,
			flag:   flag,
			value:  val,
		})
	}
	return fs, nil
}
