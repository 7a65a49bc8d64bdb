//go:build linux

package notify

import (
	"os"
	"os/exec"
	"strconv"
)

// linuxSender implements Sender for Linux using notify-send and paplay
type linuxSender struct {
	visualAvailable bool
	soundAvailable  bool
}

// newLinuxSender creates a new Linux notification sender
func newLinuxSender() Sender {
	return &linuxSender{
		visualAvailable: toolAvailable("notify-send") && hasDisplay(),
		soundAvailable:  toolAvailable("paplay"),
	}
}

// newDarwinSender returns a no-op sender on linux
func newDarwinSender() Sender {
	return &noopSender{}
}

// newWindowsSender returns a no-op sender on linux
func newWindowsSender() Sender {
	return &noopSender{}
}

// hasDisplay checks if a display environment is available
func hasDisplay() bool {
	if os.Getenv("DISPLAY") != "" {
		return true
	}
	return os.Getenv("WAYLAND_DISPLAY") != ""
}

// notifySendArgs builds the notify-send argument list for n.
func notifySendArgs(n Notification) []string {
	var args []string
	if n.AppName != "" {
		args = append(args, "-a", n.AppName)
	}
	if n.Icon != "" {
		args = append(args, "-i", n.Icon)
	}
	if !n.Timeout.IsDefault() {
		args = append(args, "-t", strconv.Itoa(int(n.Timeout.Millis())))
	}
	args = append(args, "--", n.Summary)
	if n.Body != "" {
		args = append(args, n.Body)
	}
	return args
}

// SendVisual sends a visual notification using notify-send
func (s *linuxSender) SendVisual(n Notification) error {
	if !s.visualAvailable {
		return nil // graceful degradation
	}
	return exec.Command("notify-send", notifySendArgs(n)...).Run()
}

// SendSound plays a sound using paplay
func (s *linuxSender) SendSound(soundFile string) error {
	if !s.soundAvailable {
		return nil
	}

	// No default sound on Linux, skip if no valid custom file
	validatedFile := resolveSoundFile(soundFile)
	if validatedFile == "" {
		return nil
	}

	return exec.Command("paplay", validatedFile).Run()
}

// VisualAvailable returns true if notify-send is available and display is present
func (s *linuxSender) VisualAvailable() bool {
	return s.visualAvailable
}

// SoundAvailable returns true if paplay is available
func (s *linuxSender) SoundAvailable() bool {
	return s.soundAvailable
}
