package behaviour

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ariel-frischer/notifybehaviour/internal/notify"
	"github.com/ariel-frischer/notifybehaviour/internal/reactive"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DesktopNotificationType is the entity type and behaviour name handled by this package.
const DesktopNotificationType = "desktop_notification"

// DesktopNotification is the desktop_notification behaviour of one entity.
type DesktopNotification struct {
	entity  reactive.Entity
	desktop *notify.Desktop
	subs    *subscriptions
}

// sink is what property handlers write to. It must not reference the
// DesktopNotification, or the runtime cleanup would never run.
type sink struct {
	desktop *notify.Desktop
	log     zerolog.Logger
	onShow  func(error)
}

func (s *sink) show() {
	err := s.desktop.Show()
	if err != nil {
		showTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Msg("show notification failed")
	} else {
		showTotal.WithLabelValues("ok").Inc()
	}
	if s.onShow != nil {
		s.onShow(err)
	}
}

// subscriptions owns the registered observer handles and their teardown.
type subscriptions struct {
	entity  reactive.Entity
	handles map[NotificationProperty]uuid.UUID
	log     zerolog.Logger

	once         sync.Once
	disconnected atomic.Bool
}

func (s *subscriptions) disconnect() {
	s.once.Do(func() {
		s.log.Trace().Msgf("disconnecting %s", DesktopNotificationType)
		for prop, handle := range s.handles {
			p, ok := s.entity.Property(string(prop))
			if !ok {
				continue
			}
			p.Remove(handle)
		}
		s.disconnected.Store(true)
	})
}

// NewDesktopNotification attaches a desktop_notification behaviour to e.
//
// The entity must have a show property; every other watched property is
// optional and falls back to its default. If show is true the notification
// is displayed once before any observer is registered. Observers are
// registered only for the watched properties e actually has.
func NewDesktopNotification(e reactive.Entity, opts ...Option) (*DesktopNotification, error) {
	return newDesktopNotification(e, buildOptions(opts))
}

func newDesktopNotification(e reactive.Entity, o Options) (*DesktopNotification, error) {
	log := o.Logger.With().
		Str("behaviour", DesktopNotificationType).
		Stringer("entity_id", e.ID()).
		Logger()

	if err := checkRequired(e); err != nil {
		log.Error().Err(err).Msg("cannot create behaviour")
		return nil, err
	}

	values := make(map[NotificationProperty]any, len(properties))
	for _, spec := range properties {
		values[spec.name] = initialValue(e, spec)
	}

	desktop := notify.NewDesktop(notify.Notification{
		AppName: values[PropertyAppName].(string),
		Summary: values[PropertySummary].(string),
		Body:    values[PropertyBody].(string),
		Icon:    values[PropertyIcon].(string),
		Timeout: notify.TimeoutFromMillis(values[PropertyTimeout].(int64)),
	}, o.Backend, o.Sender)

	s := &sink{desktop: desktop, log: log, onShow: o.OnShow}
	if values[PropertyShow].(bool) {
		s.show()
	}

	handles := make(map[NotificationProperty]uuid.UUID, len(properties))
	for _, spec := range properties {
		p, ok := e.Property(string(spec.name))
		if !ok {
			continue
		}
		handle := p.ID()
		p.Observe(handle, observer(spec, s))
		handles[spec.name] = handle
	}

	subs := &subscriptions{entity: e, handles: handles, log: log}
	b := &DesktopNotification{
		entity:  e,
		desktop: desktop,
		subs:    subs,
	}
	runtime.AddCleanup(b, (*subscriptions).disconnect, subs)
	return b, nil
}

func checkRequired(e reactive.Entity) error {
	if _, ok := e.Property(string(PropertyShow)); !ok {
		return &MissingPropertyError{
			Behaviour: DesktopNotificationType,
			EntityID:  e.ID(),
			Property:  PropertyShow,
		}
	}
	return nil
}

// initialValue returns the entity's value for spec, or the default when the
// property is absent or holds a value of the wrong type.
func initialValue(e reactive.Entity, spec propertySpec) any {
	p, ok := e.Property(string(spec.name))
	if !ok {
		return spec.def
	}
	v, ok := coerce(spec.kind, p.Get())
	if !ok {
		return spec.def
	}
	return v
}

func observer(spec propertySpec, s *sink) reactive.Handler {
	name := string(spec.name)
	return func(v any) {
		cv, ok := coerce(spec.kind, v)
		if !ok {
			updatesTotal.WithLabelValues(name, "dropped").Inc()
			return
		}
		spec.apply(s, cv)
		updatesTotal.WithLabelValues(name, "applied").Inc()
	}
}

// ID returns the id of the entity the behaviour is attached to.
func (b *DesktopNotification) ID() uuid.UUID { return b.entity.ID() }

// TypeName returns the entity's type name.
func (b *DesktopNotification) TypeName() string { return b.entity.TypeName() }

// Entity returns the entity the behaviour is attached to.
func (b *DesktopNotification) Entity() reactive.Entity { return b.entity }

// Notification returns a snapshot of the backing notification.
func (b *DesktopNotification) Notification() notify.Notification {
	return b.desktop.Notification()
}

// Handles returns a copy of the registered observer handles.
func (b *DesktopNotification) Handles() map[NotificationProperty]uuid.UUID {
	out := make(map[NotificationProperty]uuid.UUID, len(b.subs.handles))
	for k, v := range b.subs.handles {
		out[k] = v
	}
	return out
}

// Disconnect removes every observer the behaviour registered. It is safe to
// call more than once and from several goroutines; only the first call acts.
func (b *DesktopNotification) Disconnect() {
	b.subs.disconnect()
}

// Disconnected reports whether teardown has run.
func (b *DesktopNotification) Disconnected() bool {
	return b.subs.disconnected.Load()
}
