// Package notifytest provides a recording notify.Sender for tests.
package notifytest

import (
	"errors"
	"sync"
	"time"

	"github.com/ariel-frischer/notifybehaviour/internal/notify"
)

// MockSender is a mock implementation of notify.Sender for testing.
// It records all method calls and allows configuring return values and errors.
type MockSender struct {
	mu sync.Mutex

	// Configuration
	VisualError     error
	SoundError      error
	Delay           time.Duration
	visualAvailable bool
	soundAvailable  bool

	// OnVisual, if set, is called by SendVisual before the call is recorded
	OnVisual func(notify.Notification)

	// Call tracking
	VisualCalls []notify.Notification
	SoundCalls  []string
}

// NewMockSender creates a new mock sender with default behavior (all available, no errors)
func NewMockSender() *MockSender {
	return &MockSender{
		visualAvailable: true,
		soundAvailable:  true,
	}
}

// WithVisualError configures the mock to return an error on SendVisual
func (m *MockSender) WithVisualError(err error) *MockSender {
	m.VisualError = err
	return m
}

// WithSoundError configures the mock to return an error on SendSound
func (m *MockSender) WithSoundError(err error) *MockSender {
	m.SoundError = err
	return m
}

// WithDelay makes every send sleep for d before returning
func (m *MockSender) WithDelay(d time.Duration) *MockSender {
	m.Delay = d
	return m
}

// WithAvailability configures the Available methods
func (m *MockSender) WithAvailability(visual, sound bool) *MockSender {
	m.visualAvailable = visual
	m.soundAvailable = sound
	return m
}

// SendVisual records the call and returns configured error
func (m *MockSender) SendVisual(n notify.Notification) error {
	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}
	if m.OnVisual != nil {
		m.OnVisual(n)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VisualCalls = append(m.VisualCalls, n)
	return m.VisualError
}

// SendSound records the call and returns configured error
func (m *MockSender) SendSound(soundFile string) error {
	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SoundCalls = append(m.SoundCalls, soundFile)
	return m.SoundError
}

// VisualAvailable returns whether visual notifications are available
func (m *MockSender) VisualAvailable() bool {
	return m.visualAvailable
}

// SoundAvailable returns whether sound notifications are available
func (m *MockSender) SoundAvailable() bool {
	return m.soundAvailable
}

// VisualCount returns the number of SendVisual calls
func (m *MockSender) VisualCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.VisualCalls)
}

// SoundCount returns the number of SendSound calls
func (m *MockSender) SoundCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SoundCalls)
}

// Shown returns a copy of every notification passed to SendVisual
func (m *MockSender) Shown() []notify.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]notify.Notification, len(m.VisualCalls))
	copy(out, m.VisualCalls)
	return out
}

// Last returns the most recent visual notification
func (m *MockSender) Last() (notify.Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.VisualCalls) == 0 {
		return notify.Notification{}, false
	}
	return m.VisualCalls[len(m.VisualCalls)-1], true
}

// Reset clears all recorded calls
func (m *MockSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VisualCalls = nil
	m.SoundCalls = nil
}

// Common test errors
var (
	ErrMockVisual = errors.New("mock visual notification error")
	ErrMockSound  = errors.New("mock sound notification error")
)
