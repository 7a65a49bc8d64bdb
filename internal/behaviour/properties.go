package behaviour

import (
	"encoding/json"
	"math"

	"github.com/ariel-frischer/notifybehaviour/internal/notify"
)

// NotificationProperty names a property watched by the desktop_notification behaviour.
type NotificationProperty string

const (
	PropertyShow    NotificationProperty = "show"
	PropertyAppName NotificationProperty = "app_name"
	PropertySummary NotificationProperty = "summary"
	PropertyBody    NotificationProperty = "body"
	PropertyIcon    NotificationProperty = "icon"
	PropertyTimeout NotificationProperty = "timeout"
)

// ValueKind is the declared type of a watched property.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindString
	KindInteger
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// propertySpec is one row of the watched property table.
type propertySpec struct {
	name  NotificationProperty
	kind  ValueKind
	def   any
	apply func(s *sink, v any)
}

// properties is the watched property table, in registration order.
var properties = []propertySpec{
	{
		name: PropertyShow,
		kind: KindBool,
		def:  false,
		// show never un-fires: false is accepted and ignored
		apply: func(s *sink, v any) {
			if v.(bool) {
				s.show()
			}
		},
	},
	{
		name:  PropertyAppName,
		kind:  KindString,
		def:   "",
		apply: func(s *sink, v any) { s.desktop.SetAppName(v.(string)) },
	},
	{
		name:  PropertySummary,
		kind:  KindString,
		def:   "",
		apply: func(s *sink, v any) { s.desktop.SetSummary(v.(string)) },
	},
	{
		name:  PropertyBody,
		kind:  KindString,
		def:   "",
		apply: func(s *sink, v any) { s.desktop.SetBody(v.(string)) },
	},
	{
		name:  PropertyIcon,
		kind:  KindString,
		def:   "",
		apply: func(s *sink, v any) { s.desktop.SetIcon(v.(string)) },
	},
	{
		name:  PropertyTimeout,
		kind:  KindInteger,
		def:   int64(notify.TimeoutDefault),
		apply: func(s *sink, v any) { s.desktop.SetTimeout(notify.TimeoutFromMillis(v.(int64))) },
	},
}

func lookup(p NotificationProperty) (propertySpec, bool) {
	for _, spec := range properties {
		if spec.name == p {
			return spec, true
		}
	}
	return propertySpec{}, false
}

// Properties returns the watched properties in registration order.
func Properties() []NotificationProperty {
	out := make([]NotificationProperty, len(properties))
	for i, spec := range properties {
		out[i] = spec.name
	}
	return out
}

func (p NotificationProperty) String() string { return string(p) }

// Kind returns the declared type of p.
func (p NotificationProperty) Kind() ValueKind {
	spec, _ := lookup(p)
	return spec.kind
}

// Default returns the value used when the entity lacks p, or nil for an
// unknown property. Integers are int64.
func (p NotificationProperty) Default() any {
	spec, ok := lookup(p)
	if !ok {
		return nil
	}
	return spec.def
}

// coerce checks v against kind. Integers are normalised to int64; floats are
// accepted only when integral.
func coerce(kind ValueKind, v any) (any, bool) {
	switch kind {
	case KindBool:
		b, ok := v.(bool)
		return b, ok
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindInteger:
		i, ok := toInt64(v)
		return i, ok
	default:
		return nil, false
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt64(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt64(n)
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func uintToInt64(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
