package booking

import (
	"encoding/json"
	"fmt"
	"strings"
)

// structuredKeys is the priority order for extracting a value out of an
// object-shaped parameter (Dialogflow sys.person, sys.date-time and friends
// each wrap the value under a different key).
var structuredKeys = []string{"name", "email", "value", "date_time", "startDate"}

// NormalizeParam flattens one raw intent parameter into a trimmed string.
// Parameters arrive from the agent as whatever encoding/json produced:
// nil, a scalar, a slice, or a nested object. The function is total; an
// empty string means the field is missing.
func NormalizeParam(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []any:
		if len(v) == 0 || v[0] == nil {
			return ""
		}
		return strings.TrimSpace(stringify(v[0]))
	case map[string]any:
		for _, key := range structuredKeys {
			if inner, ok := v[key]; ok && inner != nil {
				s := strings.TrimSpace(stringify(inner))
				if s != "" {
					return s
				}
			}
		}
		// Unrecognized shape: keep the raw object rather than dropping data.
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(raw)
	default:
		return strings.TrimSpace(stringify(v))
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; print integers without the ".0".
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case map[string]any, []any:
		// Nested shapes stay JSON rather than Go map syntax.
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(raw)
	default:
		return fmt.Sprintf("%v", v)
	}
}
