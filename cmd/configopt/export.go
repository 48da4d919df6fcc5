// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/configopt/configopt/internal/issue"
	"github.com/configopt/configopt/pkg/configopt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// dumpFormats lists the formats accepted by dump --format.
var dumpFormats = []string{"ini", "json", "toml", "yaml"}

func newDumpCommand(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the resolved settings in another format",
		Long: `Print the resolved settings in another format.

The ini format is the document save would write. The other formats hold
every present value, keyed by group then option. json output follows the
--pretty and --indent settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.dump(app.stdout, format); err != nil {
				return app.fail(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "ini", "output format ("+strings.Join(dumpFormats, ", ")+")")
	return cmd
}

func newImportCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import settings from a JSON, YAML or TOML file and save them",
		Long: `Import settings from a JSON, YAML or TOML file and save them.

Top-level keys name groups and nested keys name options. Keys that match no
registered setting are ignored. Imported values replace the values read from
the configuration file, flags still win over them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.importFile(args[0]); err != nil {
				return app.fail(cmd, err)
			}
			if opt, err := app.Resolver.Option(groupSession, "last_path"); err == nil {
				opt.SetProgrammatic(args[0])
			}
			return app.save(cmd)
		},
	}
}

func (a *App) dump(w io.Writer, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "ini":
		_, err = a.Resolver.WriteTo(w)
		return err
	case "json":
		data, err = a.marshalJSON(a.Resolver.Snapshot())
	case "toml":
		data, err = toml.Marshal(a.Resolver.Snapshot())
	case "yaml":
		data, err = yaml.Marshal(a.Resolver.Snapshot())
	default:
		return &configopt.UsageError{Err: fmt.Errorf("unknown format %q, want one of %s", format, strings.Join(dumpFormats, ", "))}
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if format == "json" {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// marshalJSON indents by json.indent spaces when json.pretty is set.
func (a *App) marshalJSON(v any) ([]byte, error) {
	if !a.flag(groupJSON, "pretty") {
		return json.Marshal(v)
	}
	width, err := strconv.Atoi(a.setting(groupJSON, "indent"))
	if err != nil || width < 0 {
		return nil, fmt.Errorf("json.indent must be a non-negative number, got %q", a.setting(groupJSON, "indent"))
	}
	return json.MarshalIndent(v, "", strings.Repeat(" ", width))
}

// importFile reads path with viper and records every matching key in the
// persisted slot of its option.
func (a *App) importFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return issue.ImportFailure(path, err)
	}

	imported := 0
	for _, g := range a.Resolver.Groups() {
		for _, opt := range g.Options() {
			key := g.Name() + "." + opt.Name()
			if !v.IsSet(key) {
				continue
			}
			val, _ := importedValue(v.Get(key)).Get()
			opt.SetPersisted(val)
			imported++
		}
	}
	a.logger.Info("settings imported", "path", path, "count", imported)
	return nil
}

// importedValue keeps booleans and reads everything else like a value from
// the INI file.
func importedValue(raw any) configopt.Value {
	switch x := raw.(type) {
	case bool:
		return configopt.Some(x)
	case string:
		return configopt.ParseLiteral(x)
	case nil:
		return configopt.Some("")
	default:
		return configopt.ParseLiteral(fmt.Sprint(x))
	}
}
