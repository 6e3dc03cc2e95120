package formbind

import (
	"errors"
	"fmt"

	"github.com/reoring/formbind/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	// Configuration
	CodeMissingRoot       = "missing_root"
	CodeInvalidListener   = "invalid_listener"
	CodeUnknownTranslator = "unknown_translator"
	// Path resolution
	CodeEmptyAddress = "empty_address"
	CodeNullSegment  = "null_segment"
	CodeNotContainer = "not_container"
	// Writes
	CodeBadIndex     = "bad_index"
	CodeUnassignable = "unassignable"
)

// ConfigurationError reports unusable setup: no root object, or a change
// listener without a ChangeHappened method.
type ConfigurationError struct {
	Code   string
	Detail string // Optional: offending option or name.
}

func (e *ConfigurationError) Error() string {
	return "formbind: " + i18n.T(e.Code, map[string]string{"detail": e.Detail})
}

// PathResolutionError reports an address whose intermediate segment does not
// lead to a container. Segment is the offending key.
type PathResolutionError struct {
	Code    string
	Segment string
	Address string
	Cause   error // Optional: underlying error.
}

func (e *PathResolutionError) Error() string {
	if e.Code == CodeEmptyAddress {
		return fmt.Sprintf("formbind: %s: %q", i18n.T(e.Code, nil), e.Address)
	}
	return fmt.Sprintf("formbind: %s at %q in path %q", i18n.T(e.Code, nil), e.Segment, e.Address)
}

func (e *PathResolutionError) Unwrap() error { return e.Cause }

// WriteError reports a Set or Delete the graph could not apply.
type WriteError struct {
	Code    string
	Op      string // "set" or "delete"
	Address string
	Cause   error
}

func (e *WriteError) Error() string {
	msg := fmt.Sprintf("formbind: %s %q: %s", e.Op, e.Address, i18n.T(e.Code, nil))
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *WriteError) Unwrap() error { return e.Cause }

// AsPathResolutionError extracts a PathResolutionError using errors.As.
func AsPathResolutionError(err error) (*PathResolutionError, bool) {
	var pe *PathResolutionError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsConfigurationError extracts a ConfigurationError using errors.As.
func AsConfigurationError(err error) (*ConfigurationError, bool) {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
