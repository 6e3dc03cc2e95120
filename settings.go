package formbind

import (
	"fmt"
	"log/slog"
	"sort"
)

// DefaultSingleValueClass marks radio buttons that share one property across
// their group.
const DefaultSingleValueClass = "singleValueForGroup"

// ChangeListener is notified with the triggering address after every model
// mutation caused by a control.
type ChangeListener interface {
	ChangeHappened(address string)
}

// ChangeListenerFunc adapts a function to ChangeListener.
type ChangeListenerFunc func(address string)

func (f ChangeListenerFunc) ChangeHappened(address string) { f(address) }

// Settings configures a Binder. Start from DefaultSettings: the zero value
// disables labels in fields.
type Settings struct {
	// Root is the backing object. Required.
	Root any
	// ChangeListener must implement ChangeListener when set. It is typed as
	// any so a listener lacking the method is reported at setup instead of
	// being silently ignored.
	ChangeListener any
	// Translators are matched against a control's classes in order; the last
	// match wins.
	Translators []Translator
	// AllowLabelsInFields treats the initial text of an empty text field as
	// a placeholder label that clears on focus and returns on blur.
	AllowLabelsInFields bool
	// SingleValueClass overrides DefaultSingleValueClass.
	SingleValueClass string
	// Logger receives bind and write diagnostics. Nil discards them.
	Logger *slog.Logger
}

// DefaultSettings returns settings for root with labels in fields enabled.
func DefaultSettings(root any) Settings {
	return Settings{
		Root:                root,
		AllowLabelsInFields: true,
		SingleValueClass:    DefaultSingleValueClass,
	}
}

// TranslatorsFromMap orders a class -> Transform map by class name.
func TranslatorsFromMap(m map[string]Transform) []Translator {
	classes := make([]string, 0, len(m))
	for c := range m {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	out := make([]Translator, 0, len(classes))
	for _, c := range classes {
		out = append(out, Translator{Class: c, Transform: m[c]})
	}
	return out
}

func listenerOf(v any) (ChangeListener, error) {
	if v == nil {
		return nil, nil
	}
	l, ok := v.(ChangeListener)
	if !ok {
		return nil, &ConfigurationError{Code: CodeInvalidListener, Detail: fmt.Sprintf("%T", v)}
	}
	return l, nil
}
