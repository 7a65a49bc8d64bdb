package reactive

import (
	"sync"

	"github.com/google/uuid"
)

// PropertyInstance is the in-memory property cell.
type PropertyInstance struct {
	id     uuid.UUID
	mu     sync.RWMutex
	value  any
	stream *Stream
}

var _ Property = (*PropertyInstance)(nil)

// NewPropertyInstance creates a cell holding value with a fresh id.
func NewPropertyInstance(value any) *PropertyInstance {
	return &PropertyInstance{
		id:     uuid.New(),
		value:  value,
		stream: NewStream(),
	}
}

func (p *PropertyInstance) ID() uuid.UUID { return p.id }

func (p *PropertyInstance) Get() any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Set stores v and then publishes it to every observer.
func (p *PropertyInstance) Set(v any) {
	p.mu.Lock()
	p.value = v
	p.mu.Unlock()
	p.stream.Publish(v)
}

func (p *PropertyInstance) Observe(handleID uuid.UUID, fn Handler) {
	p.stream.Observe(handleID, fn)
}

func (p *PropertyInstance) Remove(handleID uuid.UUID) bool {
	return p.stream.Remove(handleID)
}

// Observers returns the number of registered observers.
func (p *PropertyInstance) Observers() int { return p.stream.Len() }
