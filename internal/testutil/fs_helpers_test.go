// Package testutil_test tests the file and config isolation helpers shared by other test packages.
// Related: internal/testutil/fs_helpers.go
// Tags: testutil, fs, env-vars, isolation
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "file.json")
	WriteFile(t, path, `{"a": 1}`)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(content))
}

func TestIsolateConfig(t *testing.T) {
	t.Setenv("NOTIFYCTL_LOG_LEVEL", "trace")

	dir := IsolateConfig(t)

	_, set := os.LookupEnv("NOTIFYCTL_LOG_LEVEL")
	assert.False(t, set)
	assert.Equal(t, dir, os.Getenv("HOME"))
	assert.Equal(t, filepath.Join(dir, ".config"), os.Getenv("XDG_CONFIG_HOME"))
}
