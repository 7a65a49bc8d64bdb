package reactive

import "github.com/google/uuid"

// Handler receives the new value of a property.
type Handler func(value any)

// Property is a single property cell of an entity.
type Property interface {
	// ID identifies the cell. It is unique per entity and property and is
	// used by behaviours as their observer handle.
	ID() uuid.UUID

	// Get returns the current value.
	Get() any

	// Observe registers fn under handleID, replacing any observer already
	// registered under the same handle.
	Observe(handleID uuid.UUID, fn Handler)

	// Remove unregisters the observer under handleID and reports whether one
	// was registered.
	Remove(handleID uuid.UUID) bool
}

// Entity is a node of the reactive graph as seen by behaviours.
type Entity interface {
	ID() uuid.UUID
	TypeName() string
	Property(name string) (Property, bool)

	// AddBehaviour and RemoveBehaviour maintain the host-visible set of
	// behaviour tags carried by the entity.
	AddBehaviour(name string)
	RemoveBehaviour(name string)
}

// EntityBehaviourProvider is implemented by plugins that attach behaviours
// to entities. The host calls it on entity lifecycle transitions.
type EntityBehaviourProvider interface {
	AddBehaviours(e Entity)
	RemoveBehaviours(e Entity)
	RemoveBehavioursByID(id uuid.UUID)
}
