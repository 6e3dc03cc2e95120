package codec

import (
	"strings"

	formbind "github.com/reoring/formbind"
)

// Trim strips surrounding whitespace on the way into the model.
func Trim() formbind.Transform {
	return formbind.TransformFuncs{ReadFunc: mapString(strings.TrimSpace)}
}

// Upper stores text upper-cased.
func Upper() formbind.Transform {
	return formbind.TransformFuncs{ReadFunc: mapString(strings.ToUpper)}
}

// Lower stores text lower-cased.
func Lower() formbind.Transform {
	return formbind.TransformFuncs{ReadFunc: mapString(strings.ToLower)}
}

func mapString(f func(string) string) func(any) any {
	return func(v any) any {
		if s, ok := v.(string); ok {
			return f(s)
		}
		return v
	}
}
