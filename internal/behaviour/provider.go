package behaviour

import (
	"bytes"
	"sort"
	"sync"

	"github.com/ariel-frischer/notifybehaviour/internal/reactive"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Provider is the registry of desktop_notification behaviours, keyed by
// entity id. It is safe for concurrent use. Attach and detach calls for the
// same id run one at a time.
type Provider struct {
	opts Options
	log  zerolog.Logger

	mu         sync.RWMutex
	behaviours map[uuid.UUID]*DesktopNotification

	locksMu sync.Mutex
	locks   map[uuid.UUID]*idLock
}

// idLock serialises registry changes for one entity id. refs counts the
// callers holding or waiting for it; the entry is dropped at zero.
type idLock struct {
	mu   sync.Mutex
	refs int
}

var _ reactive.EntityBehaviourProvider = (*Provider)(nil)

// NewProvider creates an empty provider. Options apply to every behaviour it creates.
func NewProvider(opts ...Option) *Provider {
	o := buildOptions(opts)
	return &Provider{
		opts:       o,
		log:        o.Logger.With().Str("provider", DesktopNotificationType).Logger(),
		behaviours: make(map[uuid.UUID]*DesktopNotification),
		locks:      make(map[uuid.UUID]*idLock),
	}
}

// lock acquires the per-id lock and returns its release function.
func (p *Provider) lock(id uuid.UUID) func() {
	p.locksMu.Lock()
	l, ok := p.locks[id]
	if !ok {
		l = &idLock{}
		p.locks[id] = l
	}
	l.refs++
	p.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		p.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(p.locks, id)
		}
		p.locksMu.Unlock()
	}
}

// CreateDesktopNotification attaches a behaviour to e and tags e with it.
//
// A behaviour already registered for e's id is disconnected and replaced.
// If e cannot carry the behaviour, the failure is logged, e is left
// untouched, and any existing registration is kept.
func (p *Provider) CreateDesktopNotification(e reactive.Entity) {
	id := e.ID()

	// Checked before teardown: a failing attach must not disturb the
	// registration that is already in place.
	if err := checkRequired(e); err != nil {
		attachTotal.WithLabelValues("failed").Inc()
		p.log.Error().Err(err).Stringer("entity_id", id).Msg("cannot add behaviour")
		return
	}

	unlock := p.lock(id)
	defer unlock()

	// Handles are per property cell, so the previous behaviour must be gone
	// before the new one registers under the same handles.
	p.remove(id)

	b, err := newDesktopNotification(e, p.opts)
	if err != nil {
		attachTotal.WithLabelValues("failed").Inc()
		p.log.Error().Err(err).Stringer("entity_id", id).Msg("cannot add behaviour")
		return
	}

	p.mu.Lock()
	p.behaviours[id] = b
	p.mu.Unlock()
	activeBehaviours.Inc()
	attachTotal.WithLabelValues("ok").Inc()

	e.AddBehaviour(DesktopNotificationType)
	p.log.Debug().Msgf("Added behaviour %s to entity instance %s", DesktopNotificationType, id)
}

// RemoveDesktopNotification detaches the behaviour from e and removes the tag.
// It is a no-op when e carries no behaviour of this provider.
func (p *Provider) RemoveDesktopNotification(e reactive.Entity) {
	id := e.ID()
	unlock := p.lock(id)
	defer unlock()
	if !p.remove(id) {
		return
	}
	e.RemoveBehaviour(DesktopNotificationType)
	p.log.Debug().Msgf("Removed behaviour %s from entity instance %s", DesktopNotificationType, id)
}

// RemoveByID detaches the behaviour registered for id, for callers that no
// longer hold the entity.
func (p *Provider) RemoveByID(id uuid.UUID) {
	p.mu.RLock()
	_, ok := p.behaviours[id]
	p.mu.RUnlock()
	if !ok {
		return
	}
	unlock := p.lock(id)
	defer unlock()
	if p.remove(id) {
		p.log.Debug().Msgf("Removed behaviour %s from entity instance %s", DesktopNotificationType, id)
	}
}

// remove unregisters and disconnects the behaviour for id.
func (p *Provider) remove(id uuid.UUID) bool {
	p.mu.Lock()
	b, ok := p.behaviours[id]
	delete(p.behaviours, id)
	p.mu.Unlock()
	if !ok {
		return false
	}
	b.Disconnect()
	activeBehaviours.Dec()
	return true
}

// AddBehaviours implements reactive.EntityBehaviourProvider.
func (p *Provider) AddBehaviours(e reactive.Entity) {
	if e.TypeName() != DesktopNotificationType {
		return
	}
	p.CreateDesktopNotification(e)
}

// RemoveBehaviours implements reactive.EntityBehaviourProvider.
func (p *Provider) RemoveBehaviours(e reactive.Entity) {
	if e.TypeName() != DesktopNotificationType {
		return
	}
	p.RemoveDesktopNotification(e)
}

// RemoveBehavioursByID implements reactive.EntityBehaviourProvider.
func (p *Provider) RemoveBehavioursByID(id uuid.UUID) {
	p.RemoveByID(id)
}

// Get returns the behaviour registered for id.
func (p *Provider) Get(id uuid.UUID) (*DesktopNotification, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	b, ok := p.behaviours[id]
	return b, ok
}

// Len returns the number of registered behaviours.
func (p *Provider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.behaviours)
}

// IDs returns the registered entity ids in byte order.
func (p *Provider) IDs() []uuid.UUID {
	p.mu.RLock()
	ids := make([]uuid.UUID, 0, len(p.behaviours))
	for id := range p.behaviours {
		ids = append(ids, id)
	}
	p.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}

// Close disconnects every behaviour and empties the registry.
// Entity tags are left as they are; the host is shutting down.
func (p *Provider) Close() {
	p.mu.Lock()
	all := p.behaviours
	p.behaviours = make(map[uuid.UUID]*DesktopNotification)
	p.mu.Unlock()

	for _, b := range all {
		b.Disconnect()
		activeBehaviours.Dec()
	}
}
