// Package json is the encoding/json driver, kept as a drop-in alternative to
// the go-json default.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/reoring/formbind/internal/dupkey"
)

// Driver implements source.Driver.
type Driver struct{}

func (Driver) Name() string { return "encoding/json" }

func (Driver) Decode(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := dupkey.Check(data); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (Driver) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
