package behaviour

import (
	"github.com/ariel-frischer/notifybehaviour/internal/notify"
	"github.com/rs/zerolog"
)

// Options configures behaviours and providers.
type Options struct {
	Logger  zerolog.Logger
	Sender  notify.Sender
	Backend notify.BackendConfig

	// OnShow, when set, receives the result of every show dispatch. It runs
	// on the goroutine that set the show property.
	OnShow func(error)
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithSender sets the notification sender. The default is the platform sender.
func WithSender(s notify.Sender) Option {
	return func(o *Options) { o.Sender = s }
}

// WithBackendConfig sets the notification backend configuration.
func WithBackendConfig(cfg notify.BackendConfig) Option {
	return func(o *Options) { o.Backend = cfg }
}

// WithShowHook sets a function that receives the result of every show
// dispatch: nil when the notification was handed to the backend or
// suppressed, otherwise the send error or notify.ErrDispatchTimeout.
func WithShowHook(fn func(error)) Option {
	return func(o *Options) { o.OnShow = fn }
}

func buildOptions(opts []Option) Options {
	o := Options{
		Logger:  zerolog.Nop(),
		Backend: notify.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Sender == nil {
		o.Sender = notify.NewSender()
	}
	return o
}
