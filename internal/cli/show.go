package cli

import (
	"errors"
	"fmt"

	"github.com/ariel-frischer/notifybehaviour/internal/behaviour"
	"github.com/ariel-frischer/notifybehaviour/internal/notify"
	"github.com/ariel-frischer/notifybehaviour/internal/reactive"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a single desktop notification",
	Long: `Show a single desktop notification.

A one-off entity is created with show=true, which displays the notification
as soon as the behaviour attaches. The entity is deleted afterwards. The
command fails when the backend rejects the notification or does not answer
within dispatch_timeout. In a CI environment the notification is suppressed
unless notify.suppress_in_ci is false.

Timeout is in milliseconds: 0 keeps the notification until dismissed and a
negative value uses the notification server default.`,
	Example: `  notifyctl show --summary "Deploy done"
  notifyctl show --app-name ci --summary "Tests" --body "42 passed" --icon dialog-information --timeout 3000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		appName, _ := cmd.Flags().GetString("app-name")
		summary, _ := cmd.Flags().GetString("summary")
		body, _ := cmd.Flags().GetString("body")
		icon, _ := cmd.Flags().GetString("icon")
		timeout, _ := cmd.Flags().GetInt64("timeout")

		var (
			shown   bool
			showErr error
		)
		provider := s.newProvider(behaviour.WithShowHook(func(err error) {
			shown = true
			showErr = err
		}))
		defer provider.Close()

		graph := reactive.NewGraph(nil)
		graph.RegisterProvider(provider)

		e := graph.Create(behaviour.DesktopNotificationType, map[string]any{
			string(behaviour.PropertyShow):    true,
			string(behaviour.PropertyAppName): appName,
			string(behaviour.PropertySummary): summary,
			string(behaviour.PropertyBody):    body,
			string(behaviour.PropertyIcon):    icon,
			string(behaviour.PropertyTimeout): timeout,
		})
		defer graph.Delete(e.ID())

		if _, ok := provider.Get(e.ID()); !ok {
			return errors.New("desktop notification behaviour did not attach")
		}

		switch {
		case !shown:
			return errors.New("notification was not dispatched")
		case showErr != nil:
			return fmt.Errorf("showing notification: %w", showErr)
		case s.cfg.Notify.SuppressInCI && notify.IsCI():
			fmt.Fprintf(cmd.OutOrStdout(), "Suppressed %q (CI environment detected)\n", summary)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "Shown %q (timeout: %s)\n", summary, notify.TimeoutFromMillis(timeout))
		}
		return nil
	},
}

func init() {
	showCmd.Flags().String("app-name", "", "Application name reported to the notification server")
	showCmd.Flags().String("summary", "", "Notification title")
	showCmd.Flags().String("body", "", "Notification body")
	showCmd.Flags().String("icon", "", "Icon name or path")
	showCmd.Flags().Int64("timeout", int64(notify.TimeoutDefault), "Timeout in milliseconds (0 never expires, negative uses the server default)")
	_ = showCmd.MarkFlagRequired("summary")

	rootCmd.AddCommand(showCmd)
}
