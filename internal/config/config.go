// Package config loads notifyctl configuration from defaults, config files and
// the environment using koanf, and validates it with validator.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/notifybehaviour/internal/notify"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load.
// Nested keys use a double underscore: NOTIFYCTL_NOTIFY__TYPE -> notify.type
const EnvPrefix = "NOTIFYCTL_"

// Configuration represents the notifyctl configuration
type Configuration struct {
	LogLevel    string               `koanf:"log_level" json:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat   string               `koanf:"log_format" json:"log_format" validate:"oneof=auto console json"`
	MetricsAddr string               `koanf:"metrics_addr" json:"metrics_addr,omitempty" validate:"omitempty,hostname_port"`
	Notify      notify.BackendConfig `koanf:"notify" json:"notify"`
}

// UserConfigPath returns the per-user config file location.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "notifyctl", "config.json"), nil
}

// Load loads configuration from user, local, and environment sources
// Priority: Environment variables > Local config > User config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply default %s: %w", key, err)
		}
	}

	if userPath, err := UserConfigPath(); err == nil {
		if err := loadFile(k, userPath); err != nil {
			return nil, fmt.Errorf("failed to load user config: %w", err)
		}
	}

	if localConfigPath != "" {
		if err := loadFile(k, localConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	cfg.Notify.SoundFile = expandHomePath(cfg.Notify.SoundFile)
	return &cfg, nil
}

// loadFile merges a JSON config file into k. A missing file is not an error.
func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// envTransform converts environment variable names to config keys
// Example: NOTIFYCTL_NOTIFY__DISPATCH_TIMEOUT -> notify.dispatch_timeout
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

var validate = validator.New()

// Validate checks cfg against its struct tags.
func Validate(cfg *Configuration) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ValidationError{Field: verrs[0].Namespace(), Message: describe(verrs[0]), Err: err}
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
