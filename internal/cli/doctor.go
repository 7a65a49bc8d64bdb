package cli

import (
	"errors"
	"fmt"

	"github.com/ariel-frischer/notifybehaviour/internal/health"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that desktop notifications can be delivered",
	Long: `Run health checks for the configured notification backend.

This command checks for:
  - a visual notification tool (notify-send, osascript or PowerShell)
  - an audio player when the output type includes sound
  - the custom sound file, if configured
  - CI detection, which suppresses notifications

Each check displays ✓ if passed, ! for a warning or ✗ with an error message.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		report := health.RunHealthChecks(newSender(), s.cfg.Notify)
		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

		if !report.Passed {
			return errors.New("health checks failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
