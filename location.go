package formbind

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/reoring/formbind/internal/graph"
)

// Location is a resolved address: the parent node reached by walking every
// segment but the last, and the leaf key under it. Get/Set pass values
// through the Transform.
type Location struct {
	root      any
	address   string
	segments  []string
	parent    any
	key       string
	grand     any // parent's own container; nil when parent is the root
	parentKey string
	t         Transform
}

// Resolve parses address and resolves it against root. A nil Transform means
// identity.
func Resolve(root any, address string, t Transform) (*Location, error) {
	return resolve(root, address, ParseAddress(address), t)
}

// ResolveSegments resolves pre-parsed segments against root.
func ResolveSegments(root any, segments []string, t Transform) (*Location, error) {
	return resolve(root, strings.Join(segments, "."), segments, t)
}

func resolve(root any, address string, segs []string, t Transform) (*Location, error) {
	if len(segs) == 0 {
		return nil, &PathResolutionError{Code: CodeEmptyAddress, Address: address}
	}
	if t == nil {
		t = Identity()
	}
	var (
		parent    = root
		grand     any
		parentKey string
	)
	if graph.IsNil(parent) {
		return nil, &PathResolutionError{Code: CodeNullSegment, Address: address}
	}
	for _, seg := range segs[:len(segs)-1] {
		child, ok := graph.Get(parent, seg)
		if !ok || graph.IsNil(child) {
			return nil, &PathResolutionError{Code: CodeNullSegment, Segment: seg, Address: address}
		}
		grand, parentKey, parent = parent, seg, child
	}
	if !graph.IsContainer(parent) {
		return nil, &PathResolutionError{Code: CodeNotContainer, Segment: parentKey, Address: address}
	}
	return &Location{
		root:      root,
		address:   address,
		segments:  append([]string(nil), segs...),
		parent:    parent,
		key:       segs[len(segs)-1],
		grand:     grand,
		parentKey: parentKey,
		t:         t,
	}, nil
}

// Address returns the address the location was resolved from.
func (l *Location) Address() string { return l.address }

// Segments returns the parsed address.
func (l *Location) Segments() []string { return append([]string(nil), l.segments...) }

// Key returns the leaf key.
func (l *Location) Key() string { return l.key }

// Parent returns the container holding the leaf.
func (l *Location) Parent() any { return l.current() }

// current walks the address from the root again, since another Location may
// have grown a sequence on the way and stored a reallocated one in its slot.
// The cached chain is kept when the walk no longer reaches a container.
func (l *Location) current() any {
	var (
		parent    = l.root
		grand     any
		parentKey string
	)
	for _, seg := range l.segments[:len(l.segments)-1] {
		child, ok := graph.Get(parent, seg)
		if !ok || graph.IsNil(child) {
			return l.parent
		}
		grand, parentKey, parent = parent, seg, child
	}
	if !graph.IsContainer(parent) {
		return l.parent
	}
	l.parent, l.grand, l.parentKey = parent, grand, parentKey
	return l.parent
}

// Raw returns the stored value without applying the Transform; nil when
// absent.
func (l *Location) Raw() any {
	v, _ := graph.Get(l.current(), l.key)
	return v
}

// Get returns the stored value as a control sees it, i.e. after Write.
func (l *Location) Get() any { return l.t.Write(l.Raw()) }

// Set converts v with Read and stores it. String-like results are stored as
// plain strings.
func (l *Location) Set(v any) error {
	v = coerceString(l.t.Read(v))
	next, moved, err := graph.Put(l.current(), l.key, v)
	if err != nil {
		return l.writeError("set", err)
	}
	if moved {
		return l.replaceParent("set", next)
	}
	return nil
}

// Delete removes the leaf. On a sequence parent exactly one element is
// removed and later elements shift down; on a mapping the key is removed.
func (l *Location) Delete() error {
	l.current()
	if err := l.checkResize("delete"); err != nil {
		return err
	}
	next, moved, err := graph.Remove(l.parent, l.key)
	if err != nil {
		return l.writeError("delete", err)
	}
	if moved {
		return l.replaceParent("delete", next)
	}
	return nil
}

// checkResize fails when the parent sequence would change length but has no
// slot to be written back to.
func (l *Location) checkResize(op string) error {
	if l.grand != nil || !graph.IsSequence(l.parent) || graph.Resizable(l.parent) {
		return nil
	}
	return &WriteError{Code: CodeUnassignable, Op: op, Address: l.address, Cause: errRootSequence}
}

var errRootSequence = errors.New("root sequence cannot change length; pass a pointer")

func (l *Location) replaceParent(op string, next any) error {
	if l.grand == nil {
		return &WriteError{Code: CodeUnassignable, Op: op, Address: l.address, Cause: errRootSequence}
	}
	if _, _, err := graph.Put(l.grand, l.parentKey, next); err != nil {
		return l.writeError(op, err)
	}
	l.parent = next
	return nil
}

func (l *Location) writeError(op string, err error) error {
	code := CodeUnassignable
	if errors.Is(err, graph.ErrBadIndex) {
		code = CodeBadIndex
	}
	return &WriteError{Code: code, Op: op, Address: l.address, Cause: err}
}

// coerceString turns values of a named string type into plain strings so
// they serialize like strings. json.Number is left alone.
func coerceString(v any) any {
	switch v.(type) {
	case nil, string, json.Number:
		return v
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return v
}
