// SPDX-License-Identifier: MPL-2.0

package configopt

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// ConfigFlagName is the reserved long flag that overrides the persisted
	// file location.
	ConfigFlagName = "config"
	// ConfigFlagShorthand is the reserved shorthand of ConfigFlagName.
	ConfigFlagShorthand = "c"
)

type (
	// Resolver owns all groups, drives flag parsing and the persisted-file
	// round-trip, and enforces conflict tags across groups.
	Resolver struct {
		appName     string
		defaultPath string
		configPath  string
		order       []string
		groups      map[string]*Group
		logger      *log.Logger
		output      io.Writer
	}

	// ResolverOption configures a Resolver at construction.
	ResolverOption func(*Resolver)

	// Invocation is the outcome of one parse-and-load pass.
	Invocation struct {
		// Conflicts maps each conflict tag claimed on this invocation to the
		// group that claimed it. It is a copy owned by the caller.
		Conflicts Conflicts
		// ConfigPath is the persisted file that was loaded.
		ConfigPath string
		// Args holds the positional arguments left after flag parsing.
		Args []string
	}
)

// WithLogger sets the logger used for diagnostics. The default discards.
func WithLogger(logger *log.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithConfigPath replaces the ~/.<appname>.ini default location.
func WithConfigPath(path string) ResolverOption {
	return func(r *Resolver) {
		if path != "" {
			r.defaultPath = path
		}
	}
}

// WithOutput sets where Invoke's flag parser writes usage and parse errors.
// The default is os.Stderr.
func WithOutput(w io.Writer) ResolverOption {
	return func(r *Resolver) {
		if w != nil {
			r.output = w
		}
	}
}

// New creates a Resolver. An empty appName is derived from the running
// executable's base name without extension.
func New(appName string, opts ...ResolverOption) *Resolver {
	if appName == "" {
		appName = executableName()
	}
	r := &Resolver{
		appName: appName,
		groups:  make(map[string]*Group),
		logger:  log.New(io.Discard),
		output:  os.Stderr,
	}
	r.defaultPath = DefaultConfigPath(appName)
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.configPath = r.defaultPath
	return r
}

// DefaultConfigPath returns ~/.<appName>.ini, or .<appName>.ini in the
// working directory when the home directory cannot be determined.
func DefaultConfigPath(appName string) string {
	name := "." + appName + ".ini"
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}

func executableName() string {
	if len(os.Args) == 0 {
		return "app"
	}
	base := filepath.Base(os.Args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// AppName returns the application name used for the default config path.
func (r *Resolver) AppName() string { return r.appName }

// ConfigPath returns the persisted file location currently in effect.
func (r *Resolver) ConfigPath() string { return r.configPath }

// SetConfigPath changes the persisted file location for Load and Save.
func (r *Resolver) SetConfigPath(path string) {
	r.configPath = path
}

// AddGroup registers a group. Registering an existing name is a no-op and
// returns the existing group.
func (r *Resolver) AddGroup(name, description string) *Group {
	if g, ok := r.groups[name]; ok {
		return g
	}
	g := newGroup(name, description)
	r.groups[name] = g
	r.order = append(r.order, name)
	return g
}

// AddOption registers an option in a previously added group.
func (r *Resolver) AddOption(group string, spec OptionSpec) (*Option, error) {
	g, err := r.Group(group)
	if err != nil {
		return nil, err
	}
	return g.AddOption(spec)
}

// Group returns a registered group.
func (r *Resolver) Group(name string) (*Group, error) {
	g, ok := r.groups[name]
	if !ok {
		return nil, &UnknownGroupError{Group: name}
	}
	return g, nil
}

// Groups returns the groups in registration order.
func (r *Resolver) Groups() []*Group {
	out := make([]*Group, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.groups[name])
	}
	return out
}

// Option returns a registered option of a registered group.
func (r *Resolver) Option(group, option string) (*Option, error) {
	g, err := r.Group(group)
	if err != nil {
		return nil, err
	}
	return g.Option(option)
}

// Value returns the resolved value of group.option.
func (r *Resolver) Value(group, option string) (Value, error) {
	opt, err := r.Option(group, option)
	if err != nil {
		return None(), err
	}
	return opt.Resolve(), nil
}

// Snapshot returns every present resolved value keyed by group then option.
// Groups without any present value are omitted.
func (r *Resolver) Snapshot() map[string]map[string]any {
	out := make(map[string]map[string]any)
	for _, g := range r.Groups() {
		for _, opt := range g.Options() {
			v := opt.Resolve()
			if !v.IsPresent() {
				continue
			}
			if out[g.Name()] == nil {
				out[g.Name()] = make(map[string]any)
			}
			out[g.Name()][opt.Name()] = v.Interface()
		}
	}
	return out
}
