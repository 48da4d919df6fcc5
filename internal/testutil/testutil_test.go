// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustSetenv_Restores(t *testing.T) {
	const key = "CONFIGOPT_TESTUTIL_VAR"
	restore := MustSetenv(t, key, "value")

	assert.Equal(t, "value", os.Getenv(key))

	restore()
	_, ok := os.LookupEnv(key)
	assert.False(t, ok, "%s should be unset after restore", key)
}

func TestMustWriteAndReadFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	path := MustWriteFile(t, dir, "app.ini", "[general]\n")

	assert.Equal(t, filepath.Join(dir, "app.ini"), path)
	assert.Equal(t, "[general]\n", MustReadFile(t, path))
}

func TestMustChdir_Restores(t *testing.T) {
	prev, err := os.Getwd()
	require.NoError(t, err)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	restore := MustChdir(t, dir)
	got, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	restore()
	got, err = os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, prev, got)
}
