package notify

import (
	"fmt"
	"math"
)

// Timeout is the auto-dismiss setting of a notification, in milliseconds.
//
// Negative values mean "server default", zero means "never expire".
type Timeout int32

const (
	// TimeoutDefault lets the notification server decide
	TimeoutDefault Timeout = -1
	// TimeoutNever keeps the notification until dismissed
	TimeoutNever Timeout = 0
)

// TimeoutMillis returns a timeout of ms milliseconds.
func TimeoutMillis(ms uint32) Timeout {
	if ms > math.MaxInt32 {
		return Timeout(math.MaxInt32)
	}
	return Timeout(ms)
}

// TimeoutFromMillis converts a raw property value into a Timeout.
// Positive values are milliseconds (clamped to int32), zero is never,
// anything negative is the server default.
func TimeoutFromMillis(ms int64) Timeout {
	switch {
	case ms > math.MaxInt32:
		return Timeout(math.MaxInt32)
	case ms > 0:
		return Timeout(ms)
	case ms == 0:
		return TimeoutNever
	default:
		return TimeoutDefault
	}
}

// Millis returns the wire value: -1 default, 0 never, otherwise milliseconds.
func (t Timeout) Millis() int32 {
	if t < 0 {
		return -1
	}
	return int32(t)
}

// IsDefault reports whether the server default applies.
func (t Timeout) IsDefault() bool { return t < 0 }

func (t Timeout) String() string {
	switch {
	case t < 0:
		return "default"
	case t == 0:
		return "never"
	default:
		return fmt.Sprintf("%dms", int32(t))
	}
}
