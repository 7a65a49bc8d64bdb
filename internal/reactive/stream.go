package reactive

import (
	"sync"

	"github.com/google/uuid"
)

// Stream is the change-notification stream of a property cell.
type Stream struct {
	mu        sync.RWMutex
	observers map[uuid.UUID]Handler
}

// NewStream returns an empty stream.
func NewStream() *Stream {
	return &Stream{observers: make(map[uuid.UUID]Handler)}
}

// Observe registers fn under handleID. A second registration under the same
// handle replaces the first.
func (s *Stream) Observe(handleID uuid.UUID, fn Handler) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers[handleID] = fn
}

// Remove unregisters the observer under handleID.
func (s *Stream) Remove(handleID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.observers[handleID]; !ok {
		return false
	}
	delete(s.observers, handleID)
	return true
}

// Publish calls every observer with v, synchronously. Observers are
// snapshotted first so a handler may remove itself or others.
func (s *Stream) Publish(v any) {
	s.mu.RLock()
	handlers := make([]Handler, 0, len(s.observers))
	for _, fn := range s.observers {
		handlers = append(handlers, fn)
	}
	s.mu.RUnlock()

	for _, fn := range handlers {
		fn(v)
	}
}

// Len returns the number of registered observers.
func (s *Stream) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}
