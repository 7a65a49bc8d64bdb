//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
)

const (
	// DefaultMacOSSound is the default notification sound on macOS
	DefaultMacOSSound = "/System/Library/Sounds/Glass.aiff"
)

// darwinSender implements Sender for macOS using osascript and afplay
type darwinSender struct {
	visualAvailable bool
	soundAvailable  bool
}

// newDarwinSender creates a new macOS notification sender
func newDarwinSender() Sender {
	return &darwinSender{
		visualAvailable: toolAvailable("osascript"),
		soundAvailable:  toolAvailable("afplay"),
	}
}

// newLinuxSender returns a no-op sender on darwin
func newLinuxSender() Sender {
	return &noopSender{}
}

// newWindowsSender returns a no-op sender on darwin
func newWindowsSender() Sender {
	return &noopSender{}
}

// appleScript builds the display notification script for n.
// osascript has no icon or timeout control; the app name becomes the title.
func appleScript(n Notification) string {
	if n.AppName == "" {
		return fmt.Sprintf(`display notification %q with title %q`, n.Body, n.Summary)
	}
	return fmt.Sprintf(`display notification %q with title %q subtitle %q`, n.Body, n.AppName, n.Summary)
}

// SendVisual sends a visual notification using osascript
func (s *darwinSender) SendVisual(n Notification) error {
	if !s.visualAvailable {
		return nil // graceful degradation
	}
	return exec.Command("osascript", "-e", appleScript(n)).Run()
}

// SendSound plays a sound using afplay
func (s *darwinSender) SendSound(soundFile string) error {
	if !s.soundAvailable {
		return nil
	}

	validatedFile := resolveSoundFile(soundFile)
	if validatedFile == "" {
		validatedFile = DefaultMacOSSound
	}

	return exec.Command("afplay", validatedFile).Run()
}

// VisualAvailable returns true if osascript is available
func (s *darwinSender) VisualAvailable() bool {
	return s.visualAvailable
}

// SoundAvailable returns true if afplay is available
func (s *darwinSender) SoundAvailable() bool {
	return s.soundAvailable
}
