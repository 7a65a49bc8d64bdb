// Package config_test tests configuration loading, merging hierarchy, and environment variable overrides.
// Related: internal/config/config.go
// Tags: config, loading, merging, env-vars, json, precedence
package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ariel-frischer/notifybehaviour/internal/notify"
	"github.com/ariel-frischer/notifybehaviour/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	testutil.IsolateConfig(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, notify.OutputVisual, cfg.Notify.Type)
	assert.Equal(t, 5*time.Second, cfg.Notify.DispatchTimeout)
	assert.True(t, cfg.Notify.SuppressInCI)
}

func TestLoad_LocalOverride(t *testing.T) {
	tmpDir := testutil.IsolateConfig(t)
	configPath := filepath.Join(tmpDir, "local.json")
	testutil.WriteFile(t, configPath, `{
		"log_level": "debug",
		"notify": {"type": "both", "dispatch_timeout": "2s"}
	}`)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, notify.OutputBoth, cfg.Notify.Type)
	assert.Equal(t, 2*time.Second, cfg.Notify.DispatchTimeout)
	// untouched keys keep their defaults
	assert.True(t, cfg.Notify.SuppressInCI)
	assert.Equal(t, "auto", cfg.LogFormat)
}

func TestLoad_Precedence(t *testing.T) {
	tmpDir := testutil.IsolateConfig(t)

	userPath, err := UserConfigPath()
	require.NoError(t, err)
	testutil.WriteFile(t, userPath, `{"log_level": "warn", "log_format": "json"}`)

	localPath := filepath.Join(tmpDir, "local.json")
	testutil.WriteFile(t, localPath, `{"log_level": "error"}`)

	t.Setenv("NOTIFYCTL_NOTIFY__SUPPRESS_IN_CI", "false")
	t.Setenv("NOTIFYCTL_METRICS_ADDR", "127.0.0.1:9102")

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel, "local beats user")
	assert.Equal(t, "json", cfg.LogFormat, "user beats defaults")
	assert.False(t, cfg.Notify.SuppressInCI, "env beats everything")
	assert.Equal(t, "127.0.0.1:9102", cfg.MetricsAddr)
}

func TestLoad_MissingLocalFileIsIgnored(t *testing.T) {
	tmpDir := testutil.IsolateConfig(t)

	cfg, err := Load(filepath.Join(tmpDir, "does-not-exist.json"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := testutil.IsolateConfig(t)
	configPath := filepath.Join(tmpDir, "broken.json")
	testutil.WriteFile(t, configPath, `{"log_level": `)

	_, err := Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load local config")
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := map[string]struct {
		content string
		field   string
	}{
		"unknown log level": {
			content: `{"log_level": "loud"}`,
			field:   "LogLevel",
		},
		"unknown log format": {
			content: `{"log_format": "xml"}`,
			field:   "LogFormat",
		},
		"unknown output type": {
			content: `{"notify": {"type": "smoke"}}`,
			field:   "Type",
		},
		"dispatch timeout too short": {
			content: `{"notify": {"dispatch_timeout": "1ms"}}`,
			field:   "DispatchTimeout",
		},
		"metrics addr without port": {
			content: `{"metrics_addr": "localhost"}`,
			field:   "MetricsAddr",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tmpDir := testutil.IsolateConfig(t)
			configPath := filepath.Join(tmpDir, "config.json")
			testutil.WriteFile(t, configPath, tt.content)

			_, err := Load(configPath)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Contains(t, verr.Field, tt.field)
		})
	}
}

func TestLoad_ExpandsSoundFileHome(t *testing.T) {
	tmpDir := testutil.IsolateConfig(t)
	t.Setenv("NOTIFYCTL_NOTIFY__SOUND_FILE", "~/sounds/ding.wav")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "sounds", "ding.wav"), cfg.Notify.SoundFile)
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"NOTIFYCTL_LOG_LEVEL":                "log_level",
		"NOTIFYCTL_NOTIFY__TYPE":             "notify.type",
		"NOTIFYCTL_NOTIFY__DISPATCH_TIMEOUT": "notify.dispatch_timeout",
	}
	for in, want := range tests {
		assert.Equal(t, want, envTransform(in), in)
	}
}
