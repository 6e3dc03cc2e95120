// Package dupkey finds repeated object keys in JSON documents. A decoded map
// keeps only the last value for a repeated key, which would make an address
// into the document ambiguous.
package dupkey

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Error reports the first repeated key and where it sits.
type Error struct {
	// Pointer is the RFC 6901 pointer of the repeated member.
	Pointer string
	Key     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("duplicate key %q at %s", e.Key, e.Pointer)
}

// AsError extracts an *Error using errors.As.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

type frame struct {
	object       bool
	keys         map[string]struct{}
	expectingKey bool
	key          string // last key read in an object
	next         int    // next element index in an array
	seg          string // segment of this container within its parent
}

// Check scans data and returns an *Error for the first repeated key, a
// syntax error from the tokenizer, or nil.
func Check(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var stack []*frame

	// value advances the enclosing container past one value and returns the
	// segment it is stored under.
	value := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := stack[len(stack)-1]
		if top.object {
			top.expectingKey = true
			return top.key
		}
		s := strconv.Itoa(top.next)
		top.next++
		return s
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				seg := value()
				stack = append(stack, &frame{object: true, keys: map[string]struct{}{}, expectingKey: true, seg: seg})
			case '[':
				seg := value()
				stack = append(stack, &frame{seg: seg})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		case string:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.object && top.expectingKey {
					if _, dup := top.keys[v]; dup {
						return &Error{Pointer: pointer(stack) + "/" + escape(v), Key: v}
					}
					top.keys[v] = struct{}{}
					top.key = v
					top.expectingKey = false
					continue
				}
			}
			value()
		default:
			value()
		}
	}
}

func pointer(stack []*frame) string {
	var b strings.Builder
	for _, f := range stack[1:] {
		b.WriteByte('/')
		b.WriteString(escape(f.seg))
	}
	return b.String()
}

var escaper = strings.NewReplacer("~", "~0", "/", "~1")

func escape(s string) string { return escaper.Replace(s) }
