package notify

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// Sender defines the interface for platform-specific notification senders
type Sender interface {
	// SendVisual sends a visual notification to the OS notification system
	SendVisual(n Notification) error

	// SendSound plays an audio notification
	SendSound(soundFile string) error

	// VisualAvailable returns true if visual notifications are supported
	VisualAvailable() bool

	// SoundAvailable returns true if sound notifications are supported
	SoundAvailable() bool
}

var zlog = zerolog.Nop()

// SetLogger installs the logger used by the platform senders.
func SetLogger(l zerolog.Logger) { zlog = l.With().Str("component", "notify").Logger() }

// NewSender creates a platform-specific notification sender based on the current OS.
// For unsupported platforms, it returns a no-op sender.
func NewSender() Sender {
	switch runtime.GOOS {
	case "darwin":
		return newDarwinSender()
	case "linux":
		return newLinuxSender()
	case "windows":
		return newWindowsSender()
	default:
		return &noopSender{}
	}
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	if name == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}

// noopSender is a sender that does nothing (for unsupported platforms)
type noopSender struct{}

func (s *noopSender) SendVisual(_ Notification) error { return nil }
func (s *noopSender) SendSound(_ string) error        { return nil }
func (s *noopSender) VisualAvailable() bool           { return false }
func (s *noopSender) SoundAvailable() bool            { return false }

// supportedAudioExtensions contains file extensions supported for custom sounds
var supportedAudioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".flac": true,
	".m4a":  true,
}

// ErrUnsupportedSound is returned for sound files with an unknown audio extension.
var ErrUnsupportedSound = errors.New("unsupported audio format")

// ValidateSoundFile checks if the sound file exists and has a supported format.
// It returns the path to use; an empty path with a nil error means "no custom sound".
func ValidateSoundFile(soundFile string) (string, error) {
	if soundFile == "" {
		return "", nil
	}

	info, err := os.Stat(soundFile)
	if err != nil {
		return "", fmt.Errorf("cannot access sound file %s: %w", soundFile, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("sound path %s is a directory", soundFile)
	}

	ext := strings.ToLower(filepath.Ext(soundFile))
	if !supportedAudioExtensions[ext] {
		return "", fmt.Errorf("%w %q: %s", ErrUnsupportedSound, ext, soundFile)
	}

	return soundFile, nil
}

// resolveSoundFile validates soundFile and falls back to "" with a warning.
func resolveSoundFile(soundFile string) string {
	path, err := ValidateSoundFile(soundFile)
	if err != nil {
		zlog.Warn().Err(err).Msg("custom sound file rejected, falling back to default")
		return ""
	}
	return path
}
