// notifyctl - desktop notification behaviours for reactive entities
// Source: https://github.com/ariel-frischer/notifybehaviour

// Package cli provides the Cobra-based commands of notifyctl: showing a one-off
// desktop notification, replaying notification scenarios, checking the
// notification backend and printing the effective configuration.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notifyctl",
	Short: "Drive desktop notification behaviours",
	Long: `notifyctl drives desktop notification behaviours attached to reactive entities.

Entities carry properties (show, app_name, summary, body, icon, timeout). Setting
show to true displays a desktop notification built from the current values.`,
	Example: `  # Show a notification right away
  notifyctl show --summary "Build finished" --body "all green" --timeout 5000

  # Replay a scenario and expose metrics while it runs
  notifyctl replay build.yaml --metrics-addr 127.0.0.1:9102

  # Check that notifications can be displayed on this machine
  notifyctl doctor`,
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a local config file (JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Override the configured log level (trace, debug, info, warn, error)")
}
