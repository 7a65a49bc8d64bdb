//go:build windows

package notify

import (
	"os/exec"
)

// windowsSender implements Sender for Windows using PowerShell
type windowsSender struct {
	visualAvailable bool
	soundAvailable  bool
}

// newWindowsSender creates a new Windows notification sender
func newWindowsSender() Sender {
	ps := toolAvailable("powershell")
	return &windowsSender{
		visualAvailable: ps,
		soundAvailable:  ps,
	}
}

// newDarwinSender returns a no-op sender on windows
func newDarwinSender() Sender {
	return &noopSender{}
}

// newLinuxSender returns a no-op sender on windows
func newLinuxSender() Sender {
	return &noopSender{}
}

// SendVisual sends a toast notification using PowerShell
func (s *windowsSender) SendVisual(n Notification) error {
	if !s.visualAvailable {
		return nil // graceful degradation
	}
	cmd := exec.Command("powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", toastScript(n))
	return cmd.Run()
}

// SendSound plays a sound using PowerShell
func (s *windowsSender) SendSound(soundFile string) error {
	if !s.soundAvailable {
		return nil
	}

	validatedFile := resolveSoundFile(soundFile)

	cmd := exec.Command("powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", soundScript(validatedFile))
	return cmd.Run()
}

// VisualAvailable returns true if PowerShell is available
func (s *windowsSender) VisualAvailable() bool {
	return s.visualAvailable
}

// SoundAvailable returns true if PowerShell is available
func (s *windowsSender) SoundAvailable() bool {
	return s.soundAvailable
}
