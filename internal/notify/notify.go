package notify

import "time"

// OutputType represents the notification output type
type OutputType string

const (
	// OutputSound sends only an audible notification
	OutputSound OutputType = "sound"
	// OutputVisual sends only a visual notification
	OutputVisual OutputType = "visual"
	// OutputBoth sends both sound and visual notifications
	OutputBoth OutputType = "both"
)

// ValidOutputType checks if the given string is a valid output type
func ValidOutputType(s string) bool {
	switch OutputType(s) {
	case OutputSound, OutputVisual, OutputBoth:
		return true
	default:
		return false
	}
}

// BackendConfig holds the settings shared by every Desktop created by a provider.
type BackendConfig struct {
	// Type specifies the notification output type: sound, visual, or both (default: visual)
	Type OutputType `koanf:"type" json:"type" validate:"oneof=sound visual both"`

	// SoundFile is an optional custom sound file path
	SoundFile string `koanf:"sound_file" json:"sound_file"`

	// DispatchTimeout bounds how long Show waits for the platform tool (default: 5s)
	DispatchTimeout time.Duration `koanf:"dispatch_timeout" json:"dispatch_timeout" validate:"min=100ms,max=1m"`

	// SuppressInCI skips sending when a CI environment is detected (default: true)
	SuppressInCI bool `koanf:"suppress_in_ci" json:"suppress_in_ci"`
}

// DefaultConfig returns a BackendConfig with default values
func DefaultConfig() BackendConfig {
	return BackendConfig{
		Type:            OutputVisual,
		SoundFile:       "",
		DispatchTimeout: 5 * time.Second,
		SuppressInCI:    true,
	}
}

// Notification is the state of a single desktop notification.
type Notification struct {
	// AppName is the application name reported to the notification server
	AppName string

	// Summary is the notification title
	Summary string

	// Body is the notification body text
	Body string

	// Icon is an icon name or path
	Icon string

	// Timeout controls how long the server keeps the notification on screen
	Timeout Timeout
}
