package cli

import (
	"github.com/ariel-frischer/notifybehaviour/internal/behaviour"
	"github.com/ariel-frischer/notifybehaviour/internal/config"
	"github.com/ariel-frischer/notifybehaviour/internal/logging"
	"github.com/ariel-frischer/notifybehaviour/internal/notify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// newSender is replaced in tests.
var newSender = notify.NewSender

// session is the per-invocation state shared by commands.
type session struct {
	cfg *config.Configuration
	log zerolog.Logger
}

// loadSession loads configuration, applies flag overrides and installs the
// logger. Logs go to the command's error stream.
func loadSession(cmd *cobra.Command) (*session, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}

	log := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: logging.Format(cfg.LogFormat),
	}, cmd.ErrOrStderr())
	notify.SetLogger(log)

	return &session{cfg: cfg, log: log}, nil
}

func (s *session) newProvider(extra ...behaviour.Option) *behaviour.Provider {
	opts := []behaviour.Option{
		behaviour.WithLogger(s.log),
		behaviour.WithSender(newSender()),
		behaviour.WithBackendConfig(s.cfg.Notify),
	}
	return behaviour.NewProvider(append(opts, extra...)...)
}
