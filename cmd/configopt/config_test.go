// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/configopt/configopt/internal/testutil"
	"github.com/configopt/configopt/pkg/configopt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.ini")

	tests := []struct {
		name   string
		args   []string
		stdout string
		code   int
		target error
	}{
		{
			name:   "default value",
			args:   []string{"get", "general.headers"},
			stdout: "off\n",
		},
		{
			name:   "flag value",
			args:   []string{"--vi-editing-mode", "on", "get", "general.vi_mode"},
			stdout: "on\n",
		},
		{
			name:   "bool flag",
			args:   []string{"--raw", "get", "raw.raw"},
			stdout: "true\n",
		},
		{
			name: "unset value",
			args: []string{"get", "general.base_url"},
			code: ExitFailure,
		},
		{
			name:   "unknown option",
			args:   []string{"get", "general.nope"},
			code:   ExitUsage,
			target: configopt.ErrUnknownOption,
		},
		{
			name:   "unknown group",
			args:   []string{"get", "nope.headers"},
			code:   ExitUsage,
			target: configopt.ErrUnknownGroup,
		},
		{
			name:   "malformed key",
			args:   []string{"get", "headers"},
			code:   ExitUsage,
			target: configopt.ErrUnknownOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCLI(t, path, tt.args...)
			require.Equal(t, tt.code, exitCode(t, res.err), "err: %v", res.err)
			if tt.target != nil {
				assert.ErrorIs(t, res.err, tt.target)
			}
			assert.Equal(t, tt.stdout, res.stdout)
		})
	}
}

func TestGet_UnknownSettingGuidance(t *testing.T) {
	t.Parallel()

	res := runCLI(t, filepath.Join(t.TempDir(), "missing.ini"), "get", "general.nope")
	assert.Contains(t, res.stderr, "failed to find setting: general.nope")
	assert.Contains(t, res.stderr, "Run configopt show to list the settings of group general")
	assert.Contains(t, res.stderr, "Unknown setting")
}

func TestSet_PersistsValue(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "configopt.ini")

	res := runCLI(t, path, "set", "json.indent", "4")
	require.NoError(t, res.err, res.stderr)
	res = runCLI(t, path, "set", "general.headers", "Yes")
	require.NoError(t, res.err, res.stderr)

	content := testutil.MustReadFile(t, path)
	assert.Regexp(t, `(?m)^\[json\]$`, content)
	assert.Regexp(t, `(?m)^indent\s*=\s*4$`, content)
	assert.Regexp(t, `(?m)^headers\s*=\s*true$`, content)

	res = runCLI(t, path, "--raw", "show")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "json.indent=4\n")
	assert.Contains(t, res.stdout, "general.headers=true\n")
}

func TestSet_QuotedAndBackslashValuesSurviveReload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{name: "trailing backslash", value: `C:\dir\`},
		{name: "double quoted", value: `"quoted"`},
		{name: "single quoted", value: `'single'`},
		{name: "padded", value: ` padded `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "configopt.ini")

			res := runCLI(t, path, "set", "general.base_url", tt.value)
			require.NoError(t, res.err, res.stderr)
			res = runCLI(t, path, "set", "general.headers", "on")
			require.NoError(t, res.err, res.stderr)

			res = runCLI(t, path, "get", "general.base_url")
			require.NoError(t, res.err, res.stderr)
			assert.Equal(t, tt.value+"\n", res.stdout)

			res = runCLI(t, path, "get", "general.headers")
			require.NoError(t, res.err, res.stderr)
			assert.Equal(t, "on\n", res.stdout)
		})
	}
}

func TestSave_PersistsFlags(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "configopt.ini")

	res := runCLI(t, path, "-b", "http://localhost:8080", "save")
	require.NoError(t, res.err, res.stderr)

	res = runCLI(t, path, "get", "general.base_url")
	assert.Equal(t, "http://localhost:8080\n", res.stdout)

	content := testutil.MustReadFile(t, path)
	assert.NotContains(t, content, "[raw]", "groups without values should not be written")
	assert.NotContains(t, content, "[session]", "groups without values should not be written")
}

func TestSave_DryRun(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "configopt.ini")

	res := runCLI(t, path, "--dry-run", "-b", "http://x", "save")
	require.NoError(t, res.err)

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist, "dry run should not create the file")
	assert.Contains(t, res.stdout, "[general]")
	assert.Contains(t, res.stdout, "http://x")
	assert.NotContains(t, res.stdout, "dry_run", "dry_run is not persistable")
}

func TestSave_WriteFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "configopt.ini")

	res := runCLI(t, path, "save")
	assert.Equal(t, ExitFailure, exitCode(t, res.err))

	var fileErr *configopt.FileError
	require.ErrorAs(t, res.err, &fileErr)
	assert.Equal(t, "save", fileErr.Op)
	assert.Contains(t, res.stderr, "Failed to save the configuration file")
	assert.Contains(t, res.stderr, "Check that the directory exists and is writable")
}

func TestPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "configopt.ini")
	other := filepath.Join(dir, "other.ini")

	res := runCLI(t, path, "--raw", "path")
	assert.Equal(t, path+"\n", res.stdout)

	res = runCLI(t, path, "-c", other, "path")
	assert.Contains(t, res.stdout, other)
}

func TestPath_DefaultsToHome(t *testing.T) {
	// Not parallel: changes HOME.
	home := t.TempDir()
	t.Cleanup(testutil.SetHomeDir(t, home))

	res := runCLI(t, "", "--raw", "path")
	assert.Equal(t, filepath.Join(home, ".configopt.ini")+"\n", res.stdout)
}

func TestFlags_GroupedUsage(t *testing.T) {
	t.Parallel()

	res := runCLI(t, filepath.Join(t.TempDir(), "missing.ini"), "flags")
	require.NoError(t, res.err)

	order := []string{"Options:", "--config", "General Options:", "--base-url URL", "JSON Output Options:", "Raw Output Options:", "Session Options:", "--dry-run"}
	last := -1
	for _, want := range order {
		idx := strings.Index(res.stdout, want)
		require.GreaterOrEqual(t, idx, 0, "usage missing %q:\n%s", want, res.stdout)
		assert.Greater(t, idx, last, "%q out of order:\n%s", want, res.stdout)
		last = idx
	}
	assert.NotContains(t, res.stdout, "last-path", "last_path has no flag")
}
