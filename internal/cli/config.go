package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ariel-frischer/notifybehaviour/internal/config"
	"github.com/spf13/cobra"
)

// configView is the printed form of the configuration. Durations are
// rendered as strings so the output can be pasted back into a config file.
type configView struct {
	LogLevel    string     `json:"log_level"`
	LogFormat   string     `json:"log_format"`
	MetricsAddr string     `json:"metrics_addr"`
	Notify      notifyView `json:"notify"`
}

type notifyView struct {
	Type            string `json:"type"`
	SoundFile       string `json:"sound_file"`
	DispatchTimeout string `json:"dispatch_timeout"`
	SuppressInCI    bool   `json:"suppress_in_ci"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the effective configuration as JSON.

Values are merged with this precedence (highest first):
  1. Environment variables (NOTIFYCTL_ prefix, __ separates nested keys)
  2. Local config file (--config)
  3. User config file (` + "`<user config dir>/notifyctl/config.json`" + `)
  4. Built-in defaults`,
	Example: `  notifyctl config
  NOTIFYCTL_NOTIFY__TYPE=both notifyctl config
  notifyctl config --defaults > ~/.config/notifyctl/config.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if defaults, _ := cmd.Flags().GetBool("defaults"); defaults {
			fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigTemplate())
			return nil
		}

		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		view := configView{
			LogLevel:    s.cfg.LogLevel,
			LogFormat:   s.cfg.LogFormat,
			MetricsAddr: s.cfg.MetricsAddr,
			Notify: notifyView{
				Type:            string(s.cfg.Notify.Type),
				SoundFile:       s.cfg.Notify.SoundFile,
				DispatchTimeout: s.cfg.Notify.DispatchTimeout.String(),
				SuppressInCI:    s.cfg.Notify.SuppressInCI,
			},
		}
		out, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	configCmd.Flags().Bool("defaults", false, "Print a config file populated with the defaults")

	rootCmd.AddCommand(configCmd)
}
