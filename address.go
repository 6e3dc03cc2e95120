package formbind

import (
	"strconv"
	"strings"
)

// ParseAddress splits an address such as "prop2[1].nestedObjProp" into its
// segments: ["prop2", "1", "nestedObjProp"]. Brackets and dots are
// interchangeable separators and empty segments are dropped. There is no
// escaping, so keys containing '.', '[' or ']' cannot be addressed.
func ParseAddress(address string) []string {
	s := strings.ReplaceAll(address, "[", ".")
	s = strings.ReplaceAll(s, "].", ".")
	s = strings.ReplaceAll(s, "]", "")
	parts := strings.Split(s, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Pointer renders an address as an RFC 6901 JSON Pointer.
func Pointer(address string) string {
	segs := ParseAddress(address)
	if len(segs) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range segs {
		b.WriteByte('/')
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

// AddressRef builds addresses in a chain-safe way.
type AddressRef interface {
	Field(name string) AddressRef
	Index(i int) AddressRef
	Segments() []string
	String() string
}

// Addr starts an address at the root.
func Addr() AddressRef { return &addressRef{} }

type addressRef struct {
	parts []part
}

type part struct {
	key   string
	index bool
}

func (a *addressRef) Field(name string) AddressRef {
	if name == "" {
		return a
	}
	return &addressRef{parts: append(append([]part{}, a.parts...), part{key: name})}
}

func (a *addressRef) Index(i int) AddressRef {
	return &addressRef{parts: append(append([]part{}, a.parts...), part{key: strconv.Itoa(i), index: true})}
}

func (a *addressRef) Segments() []string {
	out := make([]string, len(a.parts))
	for i, p := range a.parts {
		out[i] = p.key
	}
	return out
}

func (a *addressRef) String() string {
	b := &strings.Builder{}
	for i, p := range a.parts {
		switch {
		case p.index:
			b.WriteString("[" + p.key + "]")
		case i > 0:
			b.WriteString("." + p.key)
		default:
			b.WriteString(p.key)
		}
	}
	return b.String()
}
