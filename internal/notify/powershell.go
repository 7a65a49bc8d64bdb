package notify

import (
	"fmt"
	"strings"
)

// The PowerShell scripts are built on every platform so they can be tested
// anywhere; only the Windows sender runs them.

// toastScript builds the PowerShell toast script for n.
func toastScript(n Notification) string {
	appID := n.AppName
	if appID == "" {
		appID = "notifyctl"
	}
	duration := "short"
	if n.Timeout == TimeoutNever || n.Timeout.Millis() > 7000 {
		duration = "long"
	}
	return fmt.Sprintf(`
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$template.DocumentElement.SetAttribute('duration', '%s')
$textNodes = $template.GetElementsByTagName('text')
$textNodes.Item(0).AppendChild($template.CreateTextNode(%s)) | Out-Null
$textNodes.Item(1).AppendChild($template.CreateTextNode(%s)) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast)
`, duration, quotePowerShell(n.Summary), quotePowerShell(n.Body), quotePowerShell(appID))
}

// soundScript plays soundFile, or beeps when it is empty.
func soundScript(soundFile string) string {
	if soundFile == "" {
		return "[Console]::Beep(800, 200)"
	}
	return fmt.Sprintf(`
$player = New-Object System.Media.SoundPlayer
$player.SoundLocation = %s
$player.PlaySync()
`, quotePowerShell(soundFile))
}

// quotePowerShell returns s as a single-quoted PowerShell string literal.
// Nothing is expanded inside single quotes; the only special characters are
// the quote itself and its typographic variants, which PowerShell also
// accepts as delimiters. Each is escaped by doubling.
func quotePowerShell(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, c := range s {
		switch c {
		case '\'', '\u2018', '\u2019', '\u201A', '\u201B':
			b.WriteRune(c)
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
