// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/configopt/configopt/internal/issue"
	"github.com/configopt/configopt/internal/testutil"
	"github.com/configopt/configopt/pkg/configopt"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDump_Formats(t *testing.T) {
	t.Parallel()

	path := testutil.MustWriteFile(t, t.TempDir(), "configopt.ini", "[general]\nbase_url = http://file\nheaders = yes\n")

	tests := []struct {
		format    string
		unmarshal func([]byte, any) error
	}{
		{format: "json", unmarshal: json.Unmarshal},
		{format: "toml", unmarshal: toml.Unmarshal},
		{format: "yaml", unmarshal: yaml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			res := runCLI(t, path, "dump", "--format", tt.format)
			require.NoError(t, res.err)

			var got map[string]map[string]any
			require.NoError(t, tt.unmarshal([]byte(res.stdout), &got), res.stdout)
			assert.Equal(t, "http://file", got["general"]["base_url"])
			assert.Equal(t, true, got["general"]["headers"])
			assert.Equal(t, "2", got["json"]["indent"])
			assert.NotContains(t, got, "raw", "groups without values should be omitted")
		})
	}
}

func TestDump_INIMatchesSave(t *testing.T) {
	t.Parallel()

	res := runCLI(t, filepath.Join(t.TempDir(), "missing.ini"), "-b", "http://x", "dump")
	require.NoError(t, res.err)
	assert.Regexp(t, `(?m)^base_url\s*=\s*http://x$`, res.stdout)
}

func TestDump_JSONHonorsPrettySettings(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.ini")

	compact := runCLI(t, path, "dump", "-f", "json")
	require.NoError(t, compact.err)
	assert.Equal(t, 1, strings.Count(compact.stdout, "\n"), "compact output should be one line: %q", compact.stdout)

	pretty := runCLI(t, path, "--pretty", "--indent", "4", "dump", "-f", "json")
	require.NoError(t, pretty.err)
	assert.Contains(t, pretty.stdout, "\n    \"general\": {\n        \"headers\": \"off\"")

	bad := runCLI(t, path, "--pretty", "--indent", "wide", "dump", "-f", "json")
	assert.Equal(t, ExitFailure, exitCode(t, bad.err))
}

func TestDump_UnknownFormat(t *testing.T) {
	t.Parallel()

	res := runCLI(t, filepath.Join(t.TempDir(), "missing.ini"), "dump", "-f", "xml")
	assert.Equal(t, ExitUsage, exitCode(t, res.err))
	assert.ErrorIs(t, res.err, configopt.ErrUsage)
}

func TestImport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "configopt.ini")
	src := testutil.MustWriteFile(t, dir, "settings.yaml", `general:
  base_url: http://imported
  headers: true
json:
  indent: 8
unknown:
  key: 1
`)

	res := runCLI(t, path, "import", src)
	require.NoError(t, res.err, res.stderr)

	content := testutil.MustReadFile(t, path)
	for _, pattern := range []string{
		`(?m)^base_url\s*=\s*http://imported$`,
		`(?m)^headers\s*=\s*true$`,
		`(?m)^indent\s*=\s*8$`,
		`(?m)^\[session\]$`,
		`(?m)^last_path\s*=\s*` + regexp.QuoteMeta(src) + `$`,
	} {
		assert.Regexp(t, pattern, content)
	}
	assert.NotContains(t, content, "unknown", "unknown groups should be ignored")
}

func TestImport_FlagsStillWin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "configopt.ini")
	src := testutil.MustWriteFile(t, dir, "settings.json", `{"general": {"base_url": "http://imported"}}`)

	res := runCLI(t, path, "-b", "http://flag", "import", src)
	require.NoError(t, res.err)

	res = runCLI(t, path, "get", "general.base_url")
	assert.Equal(t, "http://flag\n", res.stdout)
}

func TestImport_MissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "nope.toml")
	res := runCLI(t, filepath.Join(dir, "configopt.ini"), "import", src)

	assert.Equal(t, ExitFailure, exitCode(t, res.err))
	var failure *issue.Failure
	require.ErrorAs(t, res.err, &failure)
	assert.Equal(t, issue.ImportFailedId, failure.Id)
	assert.Equal(t, src, failure.Subject)
	assert.Contains(t, res.stderr, "failed to import settings: "+src)
	assert.Contains(t, res.stderr, "Failed to import settings")
}

func TestImportedValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  any
		want configopt.Value
	}{
		{name: "bool", raw: false, want: configopt.Some(false)},
		{name: "bool literal", raw: "yes", want: configopt.Some(true)},
		{name: "text", raw: "http://x", want: configopt.Some("http://x")},
		{name: "number", raw: 8, want: configopt.Some("8")},
		{name: "null", raw: nil, want: configopt.Some("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := importedValue(tt.raw)
			assert.True(t, got.Equal(tt.want), "importedValue(%v) = %#v, want %#v", tt.raw, got, tt.want)
		})
	}
}
