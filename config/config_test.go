package config

import (
	"os"
	"path/filepath"
	"testing"

	formbind "github.com/reoring/formbind"
)

func TestParse_Defaults(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse empty: %v", err)
	}
	s, err := f.Settings(map[string]any{}, nil, nil)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if !s.AllowLabelsInFields {
		t.Fatalf("labels in fields should default to true")
	}
	if s.SingleValueClass != formbind.DefaultSingleValueClass {
		t.Fatalf("unexpected single value class %q", s.SingleValueClass)
	}
}

func TestLoad_Translators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	doc := `
allowLabelsInFields: false
singleValueClass: oneOf
translators:
  - class: money
    codec: currency
    params: {symbol: "$"}
  - class: shout
    codec: upper
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s, err := f.Settings(map[string]any{}, nil, nil)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if s.AllowLabelsInFields || s.SingleValueClass != "oneOf" {
		t.Fatalf("flags not applied: %+v", s)
	}
	if len(s.Translators) != 2 || s.Translators[0].Class != "money" || s.Translators[1].Class != "shout" {
		t.Fatalf("unexpected translators: %+v", s.Translators)
	}
	if got := s.Translators[1].Transform.Read("hi"); got != "HI" {
		t.Fatalf("upper codec not resolved, got %v", got)
	}
}

func TestSettings_UnknownCodec(t *testing.T) {
	f, err := Parse([]byte("translators:\n  - class: x\n    codec: nope\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = f.Settings(map[string]any{}, nil, nil)
	ce, ok := formbind.AsConfigurationError(err)
	if !ok || ce.Code != formbind.CodeUnknownTranslator {
		t.Fatalf("expected unknown translator error, got %v", err)
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	if _, err := Parse([]byte("allowLabelsInfields: true\n")); err == nil {
		t.Fatalf("expected error for misspelled key")
	}
}
