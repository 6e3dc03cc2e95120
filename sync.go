package formbind

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/reoring/formbind/dom"
	"github.com/reoring/formbind/internal/graph"
)

// synchronizer is the per-kind protocol. initialize pushes the model value
// into the control; wire attaches the handlers that push edits back.
type synchronizer interface {
	initialize(bnd *binding)
	wire(bnd *binding)
}

var synchronizers = map[kind]synchronizer{
	kindCheckbox:    checkboxSync{},
	kindRadio:       radioSync{},
	kindRadioSingle: radioSingleSync{},
	kindText:        textSync{},
	kindSelect:      selectSync{},
	kindTextArea:    textAreaSync{},
}

type checkboxSync struct{}

func (checkboxSync) initialize(bnd *binding) {
	bnd.control.SetChecked(truthy(bnd.loc.Get()))
}

func (checkboxSync) wire(bnd *binding) {
	bnd.control.On(dom.EventClick, func(dom.Event) {
		if bnd.set(bnd.control.Checked()) {
			bnd.changed()
		}
	})
}

type selectSync struct{}

func (selectSync) initialize(bnd *binding) {
	v := bnd.loc.Get()
	for i, opt := range bnd.control.Options() {
		if sameLiteral(opt, v) {
			bnd.control.SetSelectedIndex(i)
		}
	}
}

func (selectSync) wire(bnd *binding) {
	bnd.control.On(dom.EventChange, func(dom.Event) {
		if bnd.set(bnd.control.Value()) {
			bnd.changed()
		}
	})
}

type textAreaSync struct{}

func (textAreaSync) initialize(bnd *binding) {
	if v := bnd.loc.Get(); !graph.IsNil(v) {
		bnd.control.SetValue(display(v))
	}
}

func (textAreaSync) wire(bnd *binding) {
	bnd.control.On(dom.EventKeyUp, func(dom.Event) {
		bnd.changed()
		if bnd.set(bnd.control.Value()) {
			bnd.changed()
		}
	})
}

// truthy mirrors the boolean reading of a loosely typed model value.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if zero, ok := numericZero(v); ok {
		return !zero
	}
	return !graph.IsNil(v)
}

// isEmpty reports a value that compares loosely equal to "": nil, "", false
// and numeric zero.
func isEmpty(v any) bool {
	switch x := v.(type) {
	case string:
		return x == ""
	case bool:
		return !x
	}
	if zero, ok := numericZero(v); ok {
		return zero
	}
	return graph.IsNil(v)
}

// numericZero reports whether v is a number and, if so, whether it is zero.
// Malformed json.Number text counts as non-zero.
func numericZero(v any) (zero, ok bool) {
	if n, isNum := v.(json.Number); isNum {
		f, err := n.Float64()
		return err == nil && f == 0, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return rv.IsZero(), true
	}
	return false, false
}

// sameLiteral reports strict equality between a control literal and a model
// value: only strings can match.
func sameLiteral(literal string, v any) bool {
	s, ok := coerceString(v).(string)
	return ok && s == literal
}

// display renders a model value as control text.
func display(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	}
	if s, ok := coerceString(v).(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
