package reactive

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// EntityInstance is the in-memory entity.
type EntityInstance struct {
	id       uuid.UUID
	typeName string

	mu         sync.RWMutex
	properties map[string]*PropertyInstance
	behaviours map[string]struct{}
}

var _ Entity = (*EntityInstance)(nil)

// NewEntityInstance creates an entity of typeName with one cell per entry of props.
func NewEntityInstance(typeName string, props map[string]any) *EntityInstance {
	return newEntityInstance(uuid.New(), typeName, props)
}

func newEntityInstance(id uuid.UUID, typeName string, props map[string]any) *EntityInstance {
	e := &EntityInstance{
		id:         id,
		typeName:   typeName,
		properties: make(map[string]*PropertyInstance, len(props)),
		behaviours: make(map[string]struct{}),
	}
	for name, v := range props {
		e.properties[name] = NewPropertyInstance(v)
	}
	return e
}

func (e *EntityInstance) ID() uuid.UUID    { return e.id }
func (e *EntityInstance) TypeName() string { return e.typeName }

// Property returns the cell called name.
func (e *EntityInstance) Property(name string) (Property, bool) {
	p, ok := e.cell(name)
	if !ok {
		return nil, false
	}
	return p, true
}

// Cell returns the concrete cell called name.
func (e *EntityInstance) Cell(name string) (*PropertyInstance, bool) {
	return e.cell(name)
}

func (e *EntityInstance) cell(name string) (*PropertyInstance, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	p, ok := e.properties[name]
	return p, ok
}

// Get returns the current value of the property called name.
func (e *EntityInstance) Get(name string) (any, bool) {
	p, ok := e.cell(name)
	if !ok {
		return nil, false
	}
	return p.Get(), true
}

// Set updates the property called name and notifies its observers.
// It reports false if the entity has no such property.
func (e *EntityInstance) Set(name string, v any) bool {
	p, ok := e.cell(name)
	if !ok {
		return false
	}
	p.Set(v)
	return true
}

// AddProperty adds a cell, replacing any cell of the same name.
func (e *EntityInstance) AddProperty(name string, v any) *PropertyInstance {
	p := NewPropertyInstance(v)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.properties[name] = p
	return p
}

// RemoveProperty drops the cell called name together with its observers.
func (e *EntityInstance) RemoveProperty(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.properties[name]; !ok {
		return false
	}
	delete(e.properties, name)
	return true
}

// PropertyNames returns the property names in sorted order.
func (e *EntityInstance) PropertyNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.properties))
	for name := range e.properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *EntityInstance) AddBehaviour(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.behaviours[name] = struct{}{}
}

func (e *EntityInstance) RemoveBehaviour(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.behaviours, name)
}

func (e *EntityInstance) HasBehaviour(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.behaviours[name]
	return ok
}

// Behaviours returns the behaviour tags in sorted order.
func (e *EntityInstance) Behaviours() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.behaviours))
	for name := range e.behaviours {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
