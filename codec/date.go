package codec

import (
	"time"

	formbind "github.com/reoring/formbind"
)

// Date shows RFC3339 model timestamps in layout (e.g. "2006-01-02") and
// stores typed dates back as canonical RFC3339 in UTC.
func Date(layout string) formbind.Transform {
	if layout == "" {
		layout = time.DateOnly
	}
	return dateTransform{layout: layout}
}

type dateTransform struct{ layout string }

func (d dateTransform) Read(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	t, err := time.Parse(d.layout, s)
	if err != nil {
		return v
	}
	return formatRFC3339Canonical(t)
}

func (d dateTransform) Write(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.UTC().Format(d.layout)
	case string:
		t, err := parseRFC3339(x)
		if err != nil {
			return v
		}
		return t.UTC().Format(d.layout)
	}
	return v
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
