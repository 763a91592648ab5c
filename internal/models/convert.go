package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SafeFloat coerces a loosely-typed JSON value to float64. Numeric strings are
// accepted; anything else (including nil) yields the supplied default.
func SafeFloat(value any, def float64) float64 {
	switch v := value.(type) {
	case nil:
		return def
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return def
		}
		return parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return def
		}
		return parsed
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return def
	}
}

// SafeInt coerces a loosely-typed JSON value to int, truncating fractional
// input the way the upstream feed expects ("7.0" becomes 7).
func SafeInt(value any, def int) int {
	switch value.(type) {
	case nil:
		return def
	}
	f := SafeFloat(value, float64(def))
	return int(f)
}

// Stringify renders a raw JSON value as the string the persisted format meant.
// JSON numbers that are whole render without a fractional part, so numeric
// identifiers round-trip as "101" rather than "101.000000".
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// firstString resolves the first key whose value renders to a non-empty
// string. Used for fields whose raw key changed across document versions.
func firstString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := Stringify(raw[key]); s != "" {
			return s
		}
	}
	return ""
}

// optString is firstString returning nil when no key holds a value.
func optString(raw map[string]any, keys ...string) *string {
	if s := firstString(raw, keys...); s != "" {
		return &s
	}
	return nil
}

// firstPresent returns the raw value of the first key present and non-nil.
func firstPresent(raw map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := raw[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}
