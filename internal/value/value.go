package value

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// MinMax is the raw representation of a range field value. A nil side
// means the side is absent; a range with both sides absent is empty.
type MinMax struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// IsZero reports whether both sides of the range are absent.
func (m MinMax) IsZero() bool {
	return m.Min == nil && m.Max == nil
}

// IsEmpty is the single emptiness predicate shared by the resolver and
// the save dispatcher. A value is empty when it is nil, an empty string
// or an empty collection. Numeric zero and the string "0" are NOT
// empty; this is what distinguishes a zero-valued field from an unset
// one and must stay identical on the read and write paths.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case []uuid.UUID:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case MinMax:
		return t.IsZero()
	case *MinMax:
		return t == nil || t.IsZero()
	default:
		// Numbers (including 0) and booleans are never empty.
		return false
	}
}

// NormalizeDecimal trims the input and replaces a comma decimal
// separator with a dot, so locale-typed admin input ("2,50") parses.
func NormalizeDecimal(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
}

// ParseFloat extracts a float from a raw incoming value. Strings go
// through NormalizeDecimal first. The second return is false when the
// value does not carry a parsable number; callers treat that as "no
// value", never as an error.
func ParseFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		s := NormalizeDecimal(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ParseInt extracts an integer from a raw incoming value. Fractional
// input is truncated towards zero, matching the cast semantics the
// save dispatcher promises for integer fields.
func ParseInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int64:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
	}
	if f, ok := ParseFloat(v); ok {
		return int64(f), true
	}
	return 0, false
}
