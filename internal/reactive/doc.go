// Package reactive defines the host side of the entity behaviour contract and
// an in-memory reactive entity graph implementing it.
//
// An entity is a typed node with named properties. Each property cell holds a
// current value and a change stream; observers registered on the stream are
// called synchronously, on the goroutine that sets the value, in no particular
// order. Behaviour providers are told about entity lifecycle transitions
// through the EntityBehaviourProvider interface.
package reactive
