// Package testutil provides test utilities and helpers for notifyctl tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// IsolateConfig points every user config location at a fresh temp directory
// and unsets NOTIFYCTL_ variables so neither real config files nor the
// caller's environment leak into a test. It returns the temp directory.
// Tests using it cannot call t.Parallel().
func IsolateConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv("AppData", filepath.Join(dir, "AppData"))
	UnsetEnvPrefix(t, "NOTIFYCTL_")
	return dir
}

// UnsetEnvPrefix removes every environment variable starting with prefix for
// the duration of the test. Original values are restored on cleanup.
func UnsetEnvPrefix(t *testing.T, prefix string) {
	t.Helper()

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		// t.Setenv registers the restore, Unsetenv makes the key absent
		// rather than empty.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
