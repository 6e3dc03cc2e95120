// Package yaml decodes YAML documents into backing graphs with yaml.v3.
package yaml

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Driver implements source.Driver.
type Driver struct{}

func (Driver) Name() string { return "yaml" }

// Decode reads the first document. Mappings with non-string keys are
// converted to string-keyed maps so every node is addressable.
func (Driver) Decode(r io.Reader) (any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return Normalize(v), nil
}

func (Driver) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// Normalize rewrites map[any]any nodes to map[string]any recursively.
func Normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = Normalize(e)
		}
		return x
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = Normalize(e)
		}
		return m
	case []any:
		for i, e := range x {
			x[i] = Normalize(e)
		}
		return x
	}
	return v
}
