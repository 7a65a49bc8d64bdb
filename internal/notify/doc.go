// Package notify provides the desktop notification backend for the
// desktop_notification behaviour.
//
// A Desktop is the mutable side-effect object a behaviour configures: it holds a
// Notification (app name, summary, body, icon, timeout) behind a read/write lock
// and displays it through a platform Sender when Show is called. Senders shell
// out to native OS tools, keeping the package free of CGO.
//
// # Platform Support
//
//   - macOS: osascript for visual notifications, afplay for sound
//   - Linux: notify-send for visual notifications, paplay for sound
//   - Windows: PowerShell for toast notifications and sound
//
// Missing tools degrade gracefully: Show returns nil and nothing is displayed.
//
// # Usage
//
//	d := notify.NewDesktop(notify.Notification{
//		AppName: "builder",
//		Summary: "Build finished",
//		Timeout: notify.TimeoutFromMillis(3000),
//	}, notify.DefaultConfig(), notify.NewSender())
//	d.SetBody("all targets green")
//	_ = d.Show()
package notify
