// Package config reads binder settings from YAML.
//
//	allowLabelsInFields: true
//	singleValueClass: singleValueForGroup
//	translators:
//	  - class: money
//	    codec: currency
//	    params: {symbol: "$", decimals: "2"}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	formbind "github.com/reoring/formbind"
	"github.com/reoring/formbind/codec"
)

// File is the on-disk settings shape.
type File struct {
	// AllowLabelsInFields defaults to true when omitted.
	AllowLabelsInFields *bool             `yaml:"allowLabelsInFields"`
	SingleValueClass    string            `yaml:"singleValueClass"`
	Translators         []TranslatorEntry `yaml:"translators"`
}

// TranslatorEntry binds a CSS class to a registered codec.
type TranslatorEntry struct {
	Class  string            `yaml:"class"`
	Codec  string            `yaml:"codec"`
	Params map[string]string `yaml:"params"`
}

// Load reads settings from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes settings, rejecting unknown fields.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &f, nil
}

// Settings resolves codec names and produces binder settings for root.
// Translators keep file order, so a later entry wins when a control carries
// several matching classes.
func (f *File) Settings(root any, listener any, logger *slog.Logger) (formbind.Settings, error) {
	s := formbind.DefaultSettings(root)
	s.ChangeListener = listener
	s.Logger = logger
	if f.AllowLabelsInFields != nil {
		s.AllowLabelsInFields = *f.AllowLabelsInFields
	}
	if f.SingleValueClass != "" {
		s.SingleValueClass = f.SingleValueClass
	}
	for i, e := range f.Translators {
		if e.Class == "" {
			return formbind.Settings{}, &formbind.ConfigurationError{Code: formbind.CodeUnknownTranslator, Detail: fmt.Sprintf("translators[%d]: missing class", i)}
		}
		tr, err := codec.Lookup(e.Codec, e.Params)
		if err != nil {
			return formbind.Settings{}, fmt.Errorf("translators[%d]: %w", i, err)
		}
		s.Translators = append(s.Translators, formbind.Translator{Class: e.Class, Transform: tr})
	}
	return s, nil
}
