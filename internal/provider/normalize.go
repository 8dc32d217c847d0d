package provider

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NormalizePercentage converts a raw numeric rate to a percentage.
// Non-numeric and non-positive values report ok=false; callers skip
// the entry rather than failing. Values at or below 1 are read as
// fractions and scaled by 100, which is ambiguous for genuine sub-1%
// rates; the heuristic is kept for compatibility with the upstream
// feeds.
func NormalizePercentage(raw any) (float64, bool) {
	v, ok := ToFloat(raw)
	if !ok || v <= 0 {
		return 0, false
	}
	if v <= 1 {
		v *= 100
	}
	return v, true
}

// PickFirst returns the value of the first key present in m. Presence
// is what counts: a key mapped to 0 or "" still wins over later keys.
func PickFirst(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// ToFloat parses the numeric representations the upstream APIs use
// interchangeably: JSON numbers, numeric strings, and json.Number.
func ToFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Truthy mirrors the loose fallback chains the upstream feeds rely on:
// empty strings, zero numbers, and empty containers count as absent.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	case int:
		return x != 0
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case map[string]any:
		return len(x) > 0
	case []any:
		return len(x) > 0
	default:
		return true
	}
}

// AsString renders a label value as the feeds present it.
func AsString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return ""
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
