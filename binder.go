package formbind

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/reoring/formbind/dom"
	"github.com/reoring/formbind/internal/graph"
)

// Binder keeps form controls and a backing object in sync. Each bound
// control gets its initial state from the object and writes user edits back.
// A Binder is not safe for concurrent use; handlers run on the UI event loop.
type Binder struct {
	root             any
	listener         ChangeListener
	translators      []Translator
	labels           bool
	singleValueClass string
	log              *slog.Logger
	groups           *groupRegistry
}

// New binds against root and notifies listener, which may be nil. Labels in
// fields are enabled.
func New(root any, listener any) (*Binder, error) {
	s := DefaultSettings(root)
	s.ChangeListener = listener
	return newBinder(s)
}

// NewWithSettings builds a Binder from settings. A nil root or a listener
// without ChangeHappened is a ConfigurationError.
func NewWithSettings(s Settings) (*Binder, error) {
	if graph.IsNil(s.Root) {
		return nil, &ConfigurationError{Code: CodeMissingRoot, Detail: "Root"}
	}
	return newBinder(s)
}

func newBinder(s Settings) (*Binder, error) {
	l, err := listenerOf(s.ChangeListener)
	if err != nil {
		return nil, err
	}
	log := s.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	svc := s.SingleValueClass
	if svc == "" {
		svc = DefaultSingleValueClass
	}
	return &Binder{
		root:             s.Root,
		listener:         l,
		translators:      append([]Translator(nil), s.Translators...),
		labels:           s.AllowLabelsInFields,
		singleValueClass: svc,
		log:              log.With("component", "formbind"),
		groups:           newGroupRegistry(),
	}, nil
}

// Root returns the backing object.
func (b *Binder) Root() any { return b.root }

// Bind wires one control. Unsupported control kinds are skipped. The error
// is a PathResolutionError when the control's address does not resolve.
func (b *Binder) Bind(c dom.Control) error {
	k, ok := kindOf(c, b.singleValueClass)
	if !ok {
		b.log.Debug("skipping unsupported control", "tag", c.TagName(), "type", c.Attr("type"), "name", c.Attr("name"))
		return nil
	}
	address := addressOf(c, k)
	tr := b.translatorFor(c)
	loc, err := Resolve(b.root, address, tr)
	if err != nil {
		return err
	}
	bnd := &binding{
		binder:     b,
		control:    c,
		kind:       k,
		address:    address,
		loc:        loc,
		translator: tr,
	}
	if k == kindRadio || k == kindRadioSingle {
		bnd.group = c.Attr("name")
		b.groups.add(bnd.group, bnd)
	}
	s := synchronizers[k]
	s.initialize(bnd)
	s.wire(bnd)
	b.log.Debug("bound control", "kind", k.String(), "address", address, "translator", tr != nil)
	return nil
}

// BindAll binds controls in order and stops at the first error, leaving the
// remaining controls unbound.
func (b *Binder) BindAll(cs ...dom.Control) error {
	for i, c := range cs {
		if err := b.Bind(c); err != nil {
			return fmt.Errorf("control %d: %w", i, err)
		}
	}
	return nil
}

// BindEach binds every control, isolating failures, and returns them joined.
func (b *Binder) BindEach(cs ...dom.Control) error {
	var errs []error
	for i, c := range cs {
		if err := b.Bind(c); err != nil {
			errs = append(errs, fmt.Errorf("control %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (b *Binder) translatorFor(c dom.Control) Transform {
	var t Transform
	for _, tr := range b.translators {
		if tr.Transform != nil && c.HasClass(tr.Class) {
			t = tr.Transform
		}
	}
	return t
}

func (b *Binder) changed(address string) {
	if b.listener != nil {
		b.listener.ChangeHappened(address)
	}
}

// kind is the closed set of control variants the binder understands.
type kind int

const (
	kindCheckbox kind = iota
	kindRadio
	kindRadioSingle
	kindText
	kindSelect
	kindTextArea
)

func (k kind) String() string {
	switch k {
	case kindCheckbox:
		return "checkbox"
	case kindRadio:
		return "radio"
	case kindRadioSingle:
		return "radio-single"
	case kindText:
		return "text"
	case kindSelect:
		return "select"
	case kindTextArea:
		return "textarea"
	}
	return "unknown"
}

func kindOf(c dom.Control, singleValueClass string) (kind, bool) {
	switch strings.ToLower(c.TagName()) {
	case "select":
		return kindSelect, true
	case "textarea":
		return kindTextArea, true
	case "input":
		switch strings.ToLower(c.Attr("type")) {
		case "checkbox":
			return kindCheckbox, true
		case "radio":
			if c.HasClass(singleValueClass) {
				return kindRadioSingle, true
			}
			return kindRadio, true
		case "text", "":
			return kindText, true
		}
	}
	return 0, false
}

// addressOf picks the attribute naming the bound property. Legacy radio
// buttons each bind their own property, named by their value.
func addressOf(c dom.Control, k kind) string {
	if k == kindRadio {
		return c.Attr("value")
	}
	return c.Attr("name")
}

// binding is the per-control record the event handlers close over.
type binding struct {
	binder     *Binder
	control    dom.Control
	kind       kind
	address    string
	loc        *Location
	translator Transform // nil when no class matched
	group      string

	label    string
	useLabel bool
}

// set writes v through the location. Failures have no caller to surface to,
// so they are logged and reported as false.
func (bnd *binding) set(v any) bool {
	if err := bnd.loc.Set(v); err != nil {
		bnd.binder.log.Error("write failed", "address", bnd.address, "kind", bnd.kind.String(), "err", err)
		return false
	}
	return true
}

func (bnd *binding) changed() { bnd.binder.changed(bnd.address) }
