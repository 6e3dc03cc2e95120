// Package source loads and saves backing graphs. Drivers decode a document
// into map[string]any / []any trees (numbers as json.Number where the format
// allows) and encode such trees back.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	hclsrc "github.com/reoring/formbind/source/hcl"
	gojsonsrc "github.com/reoring/formbind/source/gojson"
	jsonsrc "github.com/reoring/formbind/source/json"
	yamlsrc "github.com/reoring/formbind/source/yaml"
)

// Driver converts between a document format and a backing graph.
type Driver interface {
	Name() string
	Decode(r io.Reader) (any, error)
	Encode(w io.Writer, v any) error
}

// ErrUnknownFormat is returned when no driver is registered for a file
// extension or name.
var ErrUnknownFormat = errors.New("source: unknown format")

var (
	driversMu sync.RWMutex
	byExt     = map[string]Driver{
		".json": gojsonsrc.Driver{},
		".yaml": yamlsrc.Driver{},
		".yml":  yamlsrc.Driver{},
		".hcl":  hclsrc.Driver{},
	}
	byName = map[string]Driver{
		"go-json":       gojsonsrc.Driver{},
		"encoding/json": jsonsrc.Driver{},
		"yaml":          yamlsrc.Driver{},
		"hcl":           hclsrc.Driver{},
	}
)

// Register maps a file extension (with leading dot) to a driver; nil values
// are ignored.
func Register(ext string, d Driver) {
	if d == nil {
		return
	}
	driversMu.Lock()
	byExt[strings.ToLower(ext)] = d
	byName[d.Name()] = d
	driversMu.Unlock()
}

// UseJSONDriver replaces the driver used for .json files by name
// ("go-json" or "encoding/json").
func UseJSONDriver(name string) error {
	d, err := ByName(name)
	if err != nil {
		return err
	}
	driversMu.Lock()
	byExt[".json"] = d
	driversMu.Unlock()
	return nil
}

// ByName returns a registered driver by its Name.
func ByName(name string) (Driver, error) {
	driversMu.RLock()
	d, ok := byName[name]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: driver %q", ErrUnknownFormat, name)
	}
	return d, nil
}

// ForPath picks the driver for a file by extension.
func ForPath(path string) (Driver, error) {
	ext := strings.ToLower(filepath.Ext(path))
	driversMu.RLock()
	d, ok := byExt[ext]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
	return d, nil
}

// Load reads and decodes the file at path.
func Load(path string) (any, error) {
	d, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	v, err := d.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("source: decode %s with %s: %w", path, d.Name(), err)
	}
	return v, nil
}

// Save encodes v with the driver for path and writes the file.
func Save(path string, v any) error {
	d, err := ForPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.Encode(f, v); err != nil {
		_ = f.Close()
		return fmt.Errorf("source: encode %s with %s: %w", path, d.Name(), err)
	}
	return f.Close()
}
