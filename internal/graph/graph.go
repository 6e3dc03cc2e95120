package graph

import (
	"errors"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Errors reported by Put and Remove. Callers wrap them with address context.
var (
	ErrNotContainer = errors.New("graph: value is not a mapping or sequence")
	ErrBadIndex     = errors.New("graph: sequence key is not an integer")
	ErrNegative     = errors.New("graph: negative sequence index")
	ErrUnassignable = errors.New("graph: value cannot be assigned")
	ErrNoField      = errors.New("graph: no such struct field")
)

// IsNil reports whether v is nil or a nil pointer, map, slice or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsContainer reports whether keys can be looked up in v.
func IsContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any, *[]any, *map[string]any:
		return true
	}
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	case reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}

// IsSequence reports whether v is an ordered sequence (slice or array).
func IsSequence(v any) bool {
	switch v.(type) {
	case []any, *[]any:
		return true
	}
	k := indirect(reflect.ValueOf(v)).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Get returns the child of container stored under key. The boolean is false
// when the key is absent or container cannot hold keys.
func Get(container any, key string) (any, bool) {
	switch c := container.(type) {
	case map[string]any:
		v, ok := c[key]
		return v, ok
	case *map[string]any:
		if c == nil {
			return nil, false
		}
		v, ok := (*c)[key]
		return v, ok
	case []any:
		i, ok := inRange(key, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	case *[]any:
		if c == nil {
			return nil, false
		}
		i, ok := inRange(key, len(*c))
		if !ok {
			return nil, false
		}
		return (*c)[i], true
	}

	rv := indirect(reflect.ValueOf(container))
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := inRange(key, rv.Len())
		if !ok {
			return nil, false
		}
		return exported(rv.Index(i)), true
	case reflect.Struct:
		fv, ok := fieldByKey(rv, key)
		if !ok {
			return nil, false
		}
		return exported(fv), true
	}
	return nil, false
}

// Put stores v under key. When the container had to be reallocated (a
// sequence grew past its length and is not reachable through a pointer) the
// new container is returned with moved set, and the caller must store it in
// the container's own parent slot.
func Put(container any, key string, v any) (next any, moved bool, err error) {
	switch c := container.(type) {
	case map[string]any:
		c[key] = v
		return c, false, nil
	case *map[string]any:
		if c == nil {
			return c, false, ErrUnassignable
		}
		if *c == nil {
			*c = map[string]any{}
		}
		(*c)[key] = v
		return c, false, nil
	case []any:
		i, err := index(key)
		if err != nil {
			return c, false, err
		}
		if i < len(c) {
			c[i] = v
			return c, false, nil
		}
		return putAny(c, i, v), true, nil
	case *[]any:
		if c == nil {
			return c, false, ErrUnassignable
		}
		i, err := index(key)
		if err != nil {
			return c, false, err
		}
		*c = putAny(*c, i, v)
		return c, false, nil
	}

	rv := indirect(reflect.ValueOf(container))
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return container, false, ErrNotContainer
		}
		if rv.IsNil() {
			return container, false, ErrUnassignable
		}
		ev, err := convert(v, rv.Type().Elem())
		if err != nil {
			return container, false, err
		}
		rv.SetMapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()), ev)
		return container, false, nil
	case reflect.Slice:
		i, err := index(key)
		if err != nil {
			return container, false, err
		}
		ev, err := convert(v, rv.Type().Elem())
		if err != nil {
			return container, false, err
		}
		if i < rv.Len() {
			rv.Index(i).Set(ev)
			return container, false, nil
		}
		grown := rv
		for grown.Len() < i {
			grown = reflect.Append(grown, reflect.Zero(rv.Type().Elem()))
		}
		grown = reflect.Append(grown, ev)
		if rv.CanSet() {
			rv.Set(grown)
			return container, false, nil
		}
		return grown.Interface(), true, nil
	case reflect.Array:
		i, err := index(key)
		if err != nil {
			return container, false, err
		}
		if i >= rv.Len() || !rv.Index(i).CanSet() {
			return container, false, ErrUnassignable
		}
		ev, err := convert(v, rv.Type().Elem())
		if err != nil {
			return container, false, err
		}
		rv.Index(i).Set(ev)
		return container, false, nil
	case reflect.Struct:
		fv, ok := fieldByKey(rv, key)
		if !ok {
			return container, false, ErrNoField
		}
		if !fv.CanSet() {
			return container, false, ErrUnassignable
		}
		ev, err := convert(v, fv.Type())
		if err != nil {
			return container, false, err
		}
		fv.Set(ev)
		return container, false, nil
	}
	return container, false, ErrNotContainer
}

// Remove deletes key from container. On sequences it removes one element and
// shifts the rest down, reporting moved when the shortened sequence must be
// written back. Negative indices count from the end and out-of-range indices
// are a no-op.
func Remove(container any, key string) (next any, moved bool, err error) {
	switch c := container.(type) {
	case map[string]any:
		delete(c, key)
		return c, false, nil
	case *map[string]any:
		if c != nil {
			delete(*c, key)
		}
		return c, false, nil
	case []any:
		i, ok, err := spliceIndex(key, len(c))
		if err != nil || !ok {
			return c, false, err
		}
		return slices.Delete(c, i, i+1), true, nil
	case *[]any:
		if c == nil {
			return c, false, nil
		}
		i, ok, err := spliceIndex(key, len(*c))
		if err != nil || !ok {
			return c, false, err
		}
		*c = slices.Delete(*c, i, i+1)
		return c, false, nil
	}

	rv := indirect(reflect.ValueOf(container))
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return container, false, ErrNotContainer
		}
		if !rv.IsNil() {
			rv.SetMapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()), reflect.Value{})
		}
		return container, false, nil
	case reflect.Slice:
		i, ok, err := spliceIndex(key, rv.Len())
		if err != nil || !ok {
			return container, false, err
		}
		n := rv.Len()
		reflect.Copy(rv.Slice(i, n), rv.Slice(i+1, n))
		rv.Index(n - 1).Set(reflect.Zero(rv.Type().Elem()))
		short := rv.Slice(0, n-1)
		if rv.CanSet() {
			rv.Set(short)
			return container, false, nil
		}
		return short.Interface(), true, nil
	case reflect.Struct:
		fv, ok := fieldByKey(rv, key)
		if !ok {
			return container, false, ErrNoField
		}
		if !fv.CanSet() {
			return container, false, ErrUnassignable
		}
		fv.Set(reflect.Zero(fv.Type()))
		return container, false, nil
	}
	return container, false, ErrNotContainer
}

// Resizable reports whether a sequence can change length in place, that is,
// it is reached through a pointer.
func Resizable(v any) bool {
	if _, ok := v.(*[]any); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return false
	}
	rv = indirect(rv)
	return rv.Kind() == reflect.Slice && rv.CanSet()
}

// Len returns the length of a sequence, or -1 for anything else.
func Len(v any) int {
	switch c := v.(type) {
	case []any:
		return len(c)
	case *[]any:
		if c == nil {
			return -1
		}
		return len(*c)
	}
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	}
	return -1
}

// StructKey resolves the external key of a struct field.
// Priority: formbind tag > json tag name > field name; "-" disables the field.
func StructKey(sf reflect.StructField) string {
	if ft := sf.Tag.Get("formbind"); ft != "" {
		if i := strings.IndexByte(ft, ','); i >= 0 {
			ft = ft[:i]
		}
		if ft != "" {
			return ft
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			jt = jt[:i]
		}
		if jt != "" {
			return jt
		}
	}
	return sf.Name
}

func fieldByKey(rv reflect.Value, key string) (reflect.Value, bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := StructKey(sf)
		if name == "-" {
			continue
		}
		if name == key {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func exported(rv reflect.Value) any {
	if !rv.IsValid() || !rv.CanInterface() {
		return nil
	}
	// hand out pointers to addressable composites so later writes land in place
	if rv.CanAddr() {
		switch rv.Kind() {
		case reflect.Struct, reflect.Slice, reflect.Array:
			return rv.Addr().Interface()
		}
	}
	return rv.Interface()
}

func convert(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, ErrUnassignable
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	// only lossless same-kind conversions (e.g. string -> named string)
	if rv.Kind() == t.Kind() && rv.Type().ConvertibleTo(t) {
		return rv.Convert(t), nil
	}
	return reflect.Value{}, ErrUnassignable
}

func putAny(s []any, i int, v any) []any {
	if i < len(s) {
		s[i] = v
		return s
	}
	for len(s) < i {
		s = append(s, nil)
	}
	return append(s, v)
}

func index(key string) (int, error) {
	i, err := strconv.Atoi(key)
	if err != nil {
		return 0, ErrBadIndex
	}
	if i < 0 {
		return 0, ErrNegative
	}
	return i, nil
}

func inRange(key string, n int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// spliceIndex maps key onto a removal position with splice semantics.
func spliceIndex(key string, n int) (int, bool, error) {
	i, err := strconv.Atoi(key)
	if err != nil {
		return 0, false, ErrBadIndex
	}
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
	}
	if i >= n {
		return 0, false, nil
	}
	return i, true, nil
}
