// Package gojson is the default JSON driver, backed by goccy/go-json.
package gojson

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"

	"github.com/reoring/formbind/internal/dupkey"
)

// Driver implements source.Driver.
type Driver struct{}

func (Driver) Name() string { return "go-json" }

// Decode reads one JSON document, keeping numbers as json.Number. Documents
// with a repeated object key are rejected with a *dupkey.Error.
func (Driver) Decode(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if err := dupkey.Check(data); err != nil {
		return nil, err
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (Driver) Encode(w io.Writer, v any) error {
	enc := j.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Marshal renders v compactly.
func Marshal(v any) ([]byte, error) { return j.Marshal(v) }
