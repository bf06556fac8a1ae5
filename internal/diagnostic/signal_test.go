package diagnostic

import "testing"

func TestSignal_Key(t *testing.T) {
	tests := []struct {
		name   string
		signal Signal
		want   string
	}{
		{"source and code", Signal{Source: "ts", Code: "2322"}, "ts-2322"},
		{"case folded", Signal{Source: "ESLint", Code: "No-Var"}, "eslint-no-var"},
		{"missing source", Signal{Code: "2304"}, "unknown-2304"},
		{"missing code", Signal{Source: "ts"}, "ts-unknown"},
		{"both missing", Signal{}, "unknown-unknown"},
		{"whitespace trimmed", Signal{Source: " ts ", Code: " 1005 "}, "ts-1005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.signal.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"nil", nil, ""},
		{"string", "2322", "2322"},
		{"int", 2304, "2304"},
		{"json number", float64(6133), "6133"},
		{"object with value", map[string]any{"value": "no-unused-vars"}, "no-unused-vars"},
		{"object with numeric value", map[string]any{"value": float64(7006)}, "7006"},
		{"object without value", map[string]any{"target": "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCode(tt.raw); got != tt.want {
				t.Errorf("NormalizeCode(%v) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
