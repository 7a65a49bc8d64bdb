package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"log_level":               "info",
		"log_format":              "auto",
		"metrics_addr":            "",
		"notify.type":             "visual",
		"notify.sound_file":       "",
		"notify.dispatch_timeout": "5s",
		"notify.suppress_in_ci":   true,
	}
}

// GetDefaultConfigTemplate returns a config file populated with the defaults.
func GetDefaultConfigTemplate() string {
	return `{
  "log_level": "info",
  "log_format": "auto",
  "metrics_addr": "",
  "notify": {
    "type": "visual",
    "sound_file": "",
    "dispatch_timeout": "5s",
    "suppress_in_ci": true
  }
}
`
}
