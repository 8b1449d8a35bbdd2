package state

import "encoding/json"

// Lenient decoding helpers for the save document. A save produced by an
// older build, or edited by hand, may carry wrong-typed fields; those
// collapse to safe defaults so the load can proceed and the core's repair
// step can take over.

func coerceString(raw json.RawMessage, fallback string) string {
	if raw == nil {
		return fallback
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fallback
	}
	return s
}

func coerceInt(raw json.RawMessage, fallback int) int {
	if raw == nil {
		return fallback
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return fallback
	}
	return int(f)
}

func coerceBool(raw json.RawMessage) bool {
	if raw == nil {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

func coerceStringList(raw json.RawMessage) []string {
	out := make([]string, 0)
	if raw == nil {
		return out
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func coerceFlagMap(raw json.RawMessage) map[string]any {
	out := make(map[string]any)
	if raw == nil {
		return out
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return out
	}
	for k, v := range m {
		out[k] = v
	}
	return out
}
