package behaviour

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrBehaviourCreation is matched by every error returned from behaviour construction.
var ErrBehaviourCreation = errors.New("behaviour creation failed")

// MissingPropertyError reports an entity lacking a property the behaviour requires.
type MissingPropertyError struct {
	Behaviour string
	EntityID  uuid.UUID
	Property  NotificationProperty
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("%s: entity %s: missing property %q", e.Behaviour, e.EntityID, e.Property)
}

func (e *MissingPropertyError) Unwrap() error { return ErrBehaviourCreation }
