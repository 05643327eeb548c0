package booking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeParam(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "plain string", value: "Cleaning", want: "Cleaning"},
		{name: "padded string", value: "  Alice \n", want: "Alice"},
		{name: "empty slice", value: []any{}, want: ""},
		{name: "slice takes first element", value: []any{" Root Canal ", "Whitening"}, want: "Root Canal"},
		{name: "slice with nil head", value: []any{nil, "Whitening"}, want: ""},
		{name: "object with name", value: map[string]any{"name": " Alice "}, want: "Alice"},
		{name: "object with email", value: map[string]any{"email": "a@x.com"}, want: "a@x.com"},
		{name: "object with value", value: map[string]any{"value": "03001234567"}, want: "03001234567"},
		{
			name:  "date_time object keeps the iso string",
			value: map[string]any{"date_time": "2026-02-01T09:00:00Z"},
			want:  "2026-02-01T09:00:00Z",
		},
		{name: "object with startDate", value: map[string]any{"startDate": "2026-02-01"}, want: "2026-02-01"},
		{
			name:  "name wins over value",
			value: map[string]any{"value": "ignored", "name": "Alice"},
			want:  "Alice",
		},
		{
			name:  "unrecognized object serialized as json",
			value: map[string]any{"amount": float64(3)},
			want:  `{"amount":3}`,
		},
		{
			name:  "nested object under a priority key stays json",
			value: map[string]any{"name": map[string]any{"nested": true}},
			want:  `{"nested":true}`,
		},
		{
			name:  "nested slice head stays json",
			value: []any{[]any{"deep"}},
			want:  `["deep"]`,
		},
		{name: "integer-valued number", value: float64(42), want: "42"},
		{name: "fractional number", value: 3.5, want: "3.5"},
		{name: "bool", value: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeParam(tt.value))
		})
	}
}

func TestNormalizeParamNeverPanics(t *testing.T) {
	// The upstream source is untrusted and loosely typed; every shape must
	// come back as some string.
	weird := []any{
		map[string]any{"name": map[string]any{"nested": true}},
		[]any{[]any{"deep"}},
		map[string]any{},
	}
	for _, v := range weird {
		require.NotPanics(t, func() { _ = NormalizeParam(v) })
	}
}
