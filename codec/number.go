package codec

import (
	"encoding/json"
	"strconv"
	"strings"

	formbind "github.com/reoring/formbind"
)

// Number stores numeric text as json.Number so the model serializes it as a
// JSON number. Non-numeric text is stored as typed.
func Number() formbind.Transform { return numberTransform{} }

type numberTransform struct{}

func (numberTransform) Read(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return v
	}
	return json.Number(s)
}

func (numberTransform) Write(v any) any {
	if f, ok := toFloat(v); ok {
		if n, isNum := v.(json.Number); isNum {
			return n.String()
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return v
}

// toFloat accepts the numeric shapes a decoded graph can hold.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	}
	return 0, false
}
