// Package behaviour_test tests the watched property table and value coercion.
// Related: internal/behaviour/properties.go
// Tags: behaviour, properties, coercion, types
package behaviour

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperties_Table(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []NotificationProperty{
		PropertyShow, PropertyAppName, PropertySummary, PropertyBody, PropertyIcon, PropertyTimeout,
	}, Properties())

	tests := map[NotificationProperty]struct {
		kind ValueKind
		def  any
	}{
		PropertyShow:    {kind: KindBool, def: false},
		PropertyAppName: {kind: KindString, def: ""},
		PropertySummary: {kind: KindString, def: ""},
		PropertyBody:    {kind: KindString, def: ""},
		PropertyIcon:    {kind: KindString, def: ""},
		PropertyTimeout: {kind: KindInteger, def: int64(-1)},
	}
	for prop, tt := range tests {
		t.Run(prop.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, prop.Kind())
			assert.Equal(t, tt.def, prop.Default())
		})
	}

	assert.Nil(t, NotificationProperty("sound").Default())
}

func TestValueKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "integer", KindInteger.String())
	assert.Equal(t, "unknown", ValueKind(99).String())
}

func TestCoerce(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		kind   ValueKind
		in     any
		want   any
		wantOK bool
	}{
		"bool ok":                 {kind: KindBool, in: true, want: true, wantOK: true},
		"bool from string":        {kind: KindBool, in: "true", wantOK: false},
		"bool from int":           {kind: KindBool, in: 1, wantOK: false},
		"string ok":               {kind: KindString, in: "x", want: "x", wantOK: true},
		"string from int":         {kind: KindString, in: 5, wantOK: false},
		"string from nil":         {kind: KindString, in: nil, wantOK: false},
		"int":                     {kind: KindInteger, in: 5, want: int64(5), wantOK: true},
		"int32":                   {kind: KindInteger, in: int32(-3), want: int64(-3), wantOK: true},
		"uint64 in range":         {kind: KindInteger, in: uint64(7), want: int64(7), wantOK: true},
		"uint64 overflow":         {kind: KindInteger, in: uint64(math.MaxUint64), wantOK: false},
		"integral float64 (json)": {kind: KindInteger, in: float64(3000), want: int64(3000), wantOK: true},
		"fractional float64":      {kind: KindInteger, in: 2.5, wantOK: false},
		"NaN":                     {kind: KindInteger, in: math.NaN(), wantOK: false},
		"huge float":              {kind: KindInteger, in: 1e300, wantOK: false},
		"json.Number":             {kind: KindInteger, in: json.Number("42"), want: int64(42), wantOK: true},
		"json.Number fractional":  {kind: KindInteger, in: json.Number("4.2"), wantOK: false},
		"integer from string":     {kind: KindInteger, in: "42", wantOK: false},
		"integer from bool":       {kind: KindInteger, in: true, wantOK: false},
		"unknown kind":            {kind: ValueKind(42), in: true, wantOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := coerce(tt.kind, tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
