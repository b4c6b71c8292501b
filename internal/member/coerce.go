package member

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// scalarString renders a scalar record value as trimmed text. The boolean
// is false for lists and mappings, which have no scalar form.
func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return strings.TrimSpace(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format(time.DateOnly), true
		}

		return t.Format(time.RFC3339), true
	case []any, map[string]any:
		return "", false
	default:
		return strings.TrimSpace(fmt.Sprint(t)), true
	}
}

// stringList coerces a record value into a list of non-blank strings.
// nil yields an empty list and a bare scalar a single-element list. The
// boolean is false for mappings.
func stringList(v any) ([]string, bool) {
	switch t := v.(type) {
	case nil:
		return []string{}, true
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := scalarString(item)
			if !ok {
				s = strings.TrimSpace(fmt.Sprint(item))
			}

			if s != "" {
				out = append(out, s)
			}
		}

		return out, true
	case map[string]any:
		return []string{}, false
	default:
		s, _ := scalarString(t)
		if s == "" {
			return []string{}, true
		}

		return []string{s}, true
	}
}

// TypeName describes a record value for diagnostics.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case int, int64, uint64, float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	case time.Time:
		return "timestamp"
	default:
		return fmt.Sprintf("%T", v)
	}
}
