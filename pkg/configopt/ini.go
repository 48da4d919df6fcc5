// SPDX-License-Identifier: MPL-2.0

package configopt

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// iniOptions keeps values verbatim: '#' and ';' inside a value are not
// comments, a trailing backslash does not continue the line, surrounding
// quotes are part of the value, and a missing file loads as empty.
var iniOptions = ini.LoadOptions{
	Loose:                   true,
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

// tripleQuote delimits values the writer would otherwise trim or misread.
const tripleQuote = `"""`

// encodeValue wraps text that starts or ends with whitespace or a quote
// character in triple quotes so it loads back unchanged. Text holding a
// newline or backtick is left alone; ini.v1 triple-quotes it itself.
func encodeValue(text string) string {
	if text == "" || strings.ContainsAny(text, "\n`") {
		return text
	}
	first, last := text[:1], text[len(text)-1:]
	if strings.TrimSpace(text) != text || strings.ContainsAny(first, `"'`) || strings.ContainsAny(last, `"'`) {
		return tripleQuote + text + tripleQuote
	}
	return text
}

// Load reads the persisted file at ConfigPath and records every value whose
// section and key match a registered group and option. Sections and keys that
// match nothing are skipped. A missing file is treated as empty.
func (r *Resolver) Load() error {
	path := r.configPath
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		r.logger.Debug("config file not found, using no persisted values", "path", path)
		return nil
	}

	file, err := ini.LoadSources(iniOptions, path)
	if err != nil {
		return &FileError{Op: "load", Path: path, Err: err}
	}
	r.logger.Debug("loading config file", "path", path)

	for _, sec := range file.Sections() {
		g, ok := r.groups[sec.Name()]
		if !ok {
			if len(sec.Keys()) > 0 {
				r.logger.Debug("ignoring unknown section", "section", sec.Name())
			}
			continue
		}
		for _, key := range sec.Keys() {
			opt, ok := g.options[key.Name()]
			if !ok {
				r.logger.Debug("ignoring unknown key", "section", sec.Name(), "key", key.Name())
				continue
			}
			opt.setSlot(slotPersisted, ParseLiteral(key.Value()))
		}
	}
	return nil
}

// Save writes every persistable option with a present resolved value to
// ConfigPath, one section per group. Groups that contribute nothing get no
// section. Write failures are returned to the caller.
func (r *Resolver) Save() error {
	file, err := r.iniFile()
	if err != nil {
		return &FileError{Op: "save", Path: r.configPath, Err: err}
	}
	r.logger.Debug("saving config file", "path", r.configPath)
	if err := file.SaveTo(r.configPath); err != nil {
		return &FileError{Op: "save", Path: r.configPath, Err: err}
	}
	return nil
}

// WriteTo writes the same INI document Save would produce.
func (r *Resolver) WriteTo(w io.Writer) (int64, error) {
	file, err := r.iniFile()
	if err != nil {
		return 0, err
	}
	return file.WriteTo(w)
}

func (r *Resolver) iniFile() (*ini.File, error) {
	file := ini.Empty(iniOptions)
	for _, g := range r.Groups() {
		var sec *ini.Section
		for _, opt := range g.Options() {
			if !opt.IsPersistable() {
				continue
			}
			v := opt.Resolve()
			if !v.IsPresent() {
				continue
			}
			if sec == nil {
				var err error
				if sec, err = file.NewSection(g.Name()); err != nil {
					return nil, err
				}
			}
			if _, err := sec.NewKey(opt.Name(), encodeValue(v.String())); err != nil {
				return nil, err
			}
		}
	}
	return file, nil
}
