package reactive

import (
	"sync"

	"github.com/ariel-frischer/notifybehaviour/internal/eventbus"
	"github.com/google/uuid"
)

// Graph is an in-memory host: it owns entity instances and drives the
// registered behaviour providers through entity lifecycle transitions.
type Graph struct {
	bus eventbus.Bus

	mu        sync.RWMutex
	entities  map[uuid.UUID]*EntityInstance
	providers []EntityBehaviourProvider
}

// NewGraph returns an empty graph publishing lifecycle events on bus.
// A nil bus drops events.
func NewGraph(bus eventbus.Bus) *Graph {
	if bus == nil {
		bus = eventbus.Nop()
	}
	return &Graph{
		bus:      bus,
		entities: make(map[uuid.UUID]*EntityInstance),
	}
}

// RegisterProvider adds a behaviour provider. Entities created afterwards
// are offered to it.
func (g *Graph) RegisterProvider(p EntityBehaviourProvider) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.providers = append(g.providers, p)
}

func (g *Graph) snapshotProviders() []EntityBehaviourProvider {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]EntityBehaviourProvider, len(g.providers))
	copy(out, g.providers)
	return out
}

// Create adds a new entity and offers it to every provider.
func (g *Graph) Create(typeName string, props map[string]any) *EntityInstance {
	e := NewEntityInstance(typeName, props)

	g.mu.Lock()
	g.entities[e.ID()] = e
	g.mu.Unlock()

	for _, p := range g.snapshotProviders() {
		p.AddBehaviours(e)
	}

	g.bus.Publish(eventbus.Event{
		Type: eventbus.EntityCreated,
		Data: eventbus.EntityEvent{ID: e.ID().String(), TypeName: typeName},
	})
	return e
}

// Get returns the entity with the given id.
func (g *Graph) Get(id uuid.UUID) (*EntityInstance, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.entities[id]
	return e, ok
}

// Len returns the number of entities.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entities)
}

// Detach asks every provider to remove its behaviours from the entity while
// keeping the entity in the graph.
func (g *Graph) Detach(id uuid.UUID) bool {
	e, ok := g.Get(id)
	if !ok {
		return false
	}
	for _, p := range g.snapshotProviders() {
		p.RemoveBehaviours(e)
	}
	g.bus.Publish(eventbus.Event{
		Type: eventbus.BehavioursDetached,
		Data: eventbus.EntityEvent{ID: id.String(), TypeName: e.TypeName()},
	})
	return true
}

// Delete removes the entity. Providers are notified by id only.
func (g *Graph) Delete(id uuid.UUID) bool {
	g.mu.Lock()
	e, ok := g.entities[id]
	delete(g.entities, id)
	g.mu.Unlock()
	if !ok {
		return false
	}

	for _, p := range g.snapshotProviders() {
		p.RemoveBehavioursByID(id)
	}

	g.bus.Publish(eventbus.Event{
		Type: eventbus.EntityDeleted,
		Data: eventbus.EntityEvent{ID: id.String(), TypeName: e.TypeName()},
	})
	return true
}
