// Package config_test tests default configuration values and the config template.
// Related: internal/config/defaults.go
// Tags: config, defaults, template
package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaults(t *testing.T) {
	t.Parallel()

	defaults := GetDefaults()
	assert.Equal(t, "info", defaults["log_level"])
	assert.Equal(t, "visual", defaults["notify.type"])
	assert.Equal(t, "5s", defaults["notify.dispatch_timeout"])
	assert.Equal(t, true, defaults["notify.suppress_in_ci"])
}

func TestGetDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	t.Parallel()

	var doc struct {
		LogLevel  string `json:"log_level"`
		LogFormat string `json:"log_format"`
		Notify    struct {
			Type            string `json:"type"`
			DispatchTimeout string `json:"dispatch_timeout"`
			SuppressInCI    bool   `json:"suppress_in_ci"`
		} `json:"notify"`
	}
	require.NoError(t, json.Unmarshal([]byte(GetDefaultConfigTemplate()), &doc))

	defaults := GetDefaults()
	assert.Equal(t, defaults["log_level"], doc.LogLevel)
	assert.Equal(t, defaults["log_format"], doc.LogFormat)
	assert.Equal(t, defaults["notify.type"], doc.Notify.Type)
	assert.Equal(t, defaults["notify.dispatch_timeout"], doc.Notify.DispatchTimeout)
	assert.Equal(t, defaults["notify.suppress_in_ci"], doc.Notify.SuppressInCI)
}
