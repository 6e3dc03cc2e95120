package codec

import (
	"sort"
	"strconv"
	"sync"

	formbind "github.com/reoring/formbind"
)

// Factory builds a Transform from string parameters taken from a settings
// file.
type Factory func(params map[string]string) (formbind.Transform, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{
		"identity": func(map[string]string) (formbind.Transform, error) { return formbind.Identity(), nil },
		"trim":     func(map[string]string) (formbind.Transform, error) { return Trim(), nil },
		"upper":    func(map[string]string) (formbind.Transform, error) { return Upper(), nil },
		"lower":    func(map[string]string) (formbind.Transform, error) { return Lower(), nil },
		"number":   func(map[string]string) (formbind.Transform, error) { return Number(), nil },
		"date": func(p map[string]string) (formbind.Transform, error) {
			return Date(p["layout"]), nil
		},
		"currency": func(p map[string]string) (formbind.Transform, error) {
			symbol, ok := p["symbol"]
			if !ok {
				symbol = "$"
			}
			decimals := 2
			if d := p["decimals"]; d != "" {
				n, err := strconv.Atoi(d)
				if err != nil {
					return nil, &formbind.ConfigurationError{Code: formbind.CodeUnknownTranslator, Detail: "currency decimals " + strconv.Quote(d)}
				}
				decimals = n
			}
			return Currency(symbol, decimals), nil
		},
	}
)

// Register adds or replaces a named factory; nil factories are ignored.
func Register(name string, f Factory) {
	if f == nil {
		return
	}
	registryMu.Lock()
	registry[name] = f
	registryMu.Unlock()
}

// Lookup builds the named Transform. Unknown names are a
// ConfigurationError.
func Lookup(name string, params map[string]string) (formbind.Transform, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, &formbind.ConfigurationError{Code: formbind.CodeUnknownTranslator, Detail: name}
	}
	return f(params)
}

// Names lists the registered transform names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
