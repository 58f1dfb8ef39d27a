package domain

import "encoding/json"

// Requirements is the open-ended unlock condition of an achievement, stored as jsonb.
type Requirements map[string]any

// Has reports whether key is set to a non-null value.
func (r Requirements) Has(key string) bool {
	raw, ok := r[key]
	return ok && raw != nil
}

// Number reads a numeric value. Strings and other non-numeric values are not converted.
func (r Requirements) Number(key string) (float64, bool) {
	if !r.Has(key) {
		return 0, false
	}
	switch v := r[key].(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
