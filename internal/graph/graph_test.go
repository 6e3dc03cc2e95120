package graph

import (
	"errors"
	"reflect"
	"testing"
)

type inner struct {
	Name string `formbind:"name"`
}

type outer struct {
	ID     int               `json:"id,omitempty"`
	Inner  inner             `json:"inner"`
	Items  []string          `json:"items"`
	Fixed  [2]int            `json:"fixed"`
	Labels map[string]string `json:"labels"`
	Hidden string            `json:"-"`
	secret string
}

func TestIsNil(t *testing.T) {
	var m map[string]any
	var p *outer
	var s []any
	cases := []struct {
		v    any
		want bool
	}{
		{nil, true},
		{m, true},
		{p, true},
		{s, true},
		{map[string]any{}, false},
		{[]any{}, false},
		{0, false},
		{"", false},
	}
	for i, c := range cases {
		if got := IsNil(c.v); got != c.want {
			t.Fatalf("case %d: IsNil(%#v)=%v want %v", i, c.v, got, c.want)
		}
	}
}

func TestIsContainer(t *testing.T) {
	yes := []any{map[string]any{}, []any{}, &[]any{}, &outer{}, outer{}, [2]int{}, map[string]int{}}
	for _, v := range yes {
		if !IsContainer(v) {
			t.Fatalf("expected container: %T", v)
		}
	}
	no := []any{1, "x", true, map[int]any{}, nil}
	for _, v := range no {
		if IsContainer(v) {
			t.Fatalf("unexpected container: %T", v)
		}
	}
	if IsSequence(map[string]any{}) || !IsSequence(&[]string{}) {
		t.Fatalf("IsSequence mismatch")
	}
}

func TestGet_Dynamic(t *testing.T) {
	root := map[string]any{"a": []any{"x", nil}}
	v, ok := Get(root, "a")
	if !ok {
		t.Fatalf("a missing")
	}
	if got, ok := Get(v, "1"); !ok || got != nil {
		t.Fatalf("a[1]: got %v ok=%v", got, ok)
	}
	for _, k := range []string{"2", "-1", "x"} {
		if _, ok := Get(v, k); ok {
			t.Fatalf("a[%s] should be absent", k)
		}
	}
	if _, ok := Get(root, "b"); ok {
		t.Fatalf("b should be absent")
	}
	if _, ok := Get("scalar", "0"); ok {
		t.Fatalf("scalar has no keys")
	}
}

func TestGet_Struct(t *testing.T) {
	o := &outer{ID: 7, Inner: inner{Name: "n"}, Hidden: "h", secret: "s"}
	if v, ok := Get(o, "id"); !ok || v != 7 {
		t.Fatalf("id: %v %v", v, ok)
	}
	v, ok := Get(o, "inner")
	if !ok {
		t.Fatalf("inner missing")
	}
	in, isPtr := v.(*inner)
	if !isPtr {
		t.Fatalf("addressable struct field should come back as pointer, got %T", v)
	}
	in.Name = "changed"
	if o.Inner.Name != "changed" {
		t.Fatalf("write through pointer did not land")
	}
	for _, k := range []string{"Hidden", "-", "secret", "Inner"} {
		if _, ok := Get(o, k); ok {
			t.Fatalf("%s should not be reachable", k)
		}
	}
}

func TestPut_GrowsDynamicSequence(t *testing.T) {
	s := []any{"a"}
	next, moved, err := Put(s, "3", "d")
	if err != nil || !moved {
		t.Fatalf("err=%v moved=%v", err, moved)
	}
	want := []any{"a", nil, nil, "d"}
	if !reflect.DeepEqual(next, want) {
		t.Fatalf("got %v want %v", next, want)
	}

	p := &[]any{}
	if _, moved, err := Put(p, "1", "b"); err != nil || moved {
		t.Fatalf("pointer put: err=%v moved=%v", err, moved)
	}
	if !reflect.DeepEqual(*p, []any{nil, "b"}) {
		t.Fatalf("pointer put: %v", *p)
	}
}

func TestPut_Errors(t *testing.T) {
	if _, _, err := Put([]any{}, "x", 1); !errors.Is(err, ErrBadIndex) {
		t.Fatalf("want ErrBadIndex, got %v", err)
	}
	if _, _, err := Put([]any{}, "-1", 1); !errors.Is(err, ErrNegative) {
		t.Fatalf("want ErrNegative, got %v", err)
	}
	if _, _, err := Put(42, "a", 1); !errors.Is(err, ErrNotContainer) {
		t.Fatalf("want ErrNotContainer, got %v", err)
	}
	o := &outer{}
	if _, _, err := Put(o, "nope", 1); !errors.Is(err, ErrNoField) {
		t.Fatalf("want ErrNoField, got %v", err)
	}
	if _, _, err := Put(o, "id", "1"); !errors.Is(err, ErrUnassignable) {
		t.Fatalf("want ErrUnassignable, got %v", err)
	}
	if _, _, err := Put(o, "labels", "x"); !errors.Is(err, ErrUnassignable) {
		t.Fatalf("want ErrUnassignable for map field, got %v", err)
	}
	if _, _, err := Put(o, "fixed", nil); !errors.Is(err, ErrUnassignable) {
		t.Fatalf("nil into array: %v", err)
	}
}

func TestPut_Struct(t *testing.T) {
	o := &outer{Labels: map[string]string{}}
	if _, _, err := Put(o, "id", 3); err != nil {
		t.Fatalf("id: %v", err)
	}
	fixed, _ := Get(o, "fixed")
	if _, _, err := Put(fixed, "1", 9); err != nil {
		t.Fatalf("fixed[1]: %v", err)
	}
	if _, _, err := Put(fixed, "2", 9); !errors.Is(err, ErrUnassignable) {
		t.Fatalf("fixed[2] out of bounds should fail, got %v", err)
	}
	labels, _ := Get(o, "labels")
	if _, _, err := Put(labels, "env", "prod"); err != nil {
		t.Fatalf("labels: %v", err)
	}
	items, _ := Get(o, "items")
	if _, moved, err := Put(items, "1", "b"); err != nil || moved {
		t.Fatalf("items: err=%v moved=%v", err, moved)
	}
	want := &outer{ID: 3, Fixed: [2]int{0, 9}, Labels: map[string]string{"env": "prod"}, Items: []string{"", "b"}}
	if !reflect.DeepEqual(o, want) {
		t.Fatalf("got %+v want %+v", o, want)
	}
}

func TestRemove_Splice(t *testing.T) {
	cases := []struct {
		key  string
		want []any
	}{
		{"0", []any{"b", "c"}},
		{"2", []any{"a", "b"}},
		{"-1", []any{"a", "b"}},
		{"-3", []any{"b", "c"}},
		{"-9", []any{"b", "c"}},
		{"3", []any{"a", "b", "c"}},
	}
	for _, c := range cases {
		s := []any{"a", "b", "c"}
		next, _, err := Remove(s, c.key)
		if err != nil {
			t.Fatalf("%s: %v", c.key, err)
		}
		if !reflect.DeepEqual(next, c.want) {
			t.Fatalf("%s: got %v want %v", c.key, next, c.want)
		}
	}
	if _, _, err := Remove([]any{"a"}, "first"); !errors.Is(err, ErrBadIndex) {
		t.Fatalf("want ErrBadIndex, got %v", err)
	}
}

func TestRemove_TypedSliceAndMap(t *testing.T) {
	o := &outer{Items: []string{"a", "b", "c"}, Labels: map[string]string{"k": "v"}, ID: 5}
	items, _ := Get(o, "items")
	if _, moved, err := Remove(items, "1"); err != nil || moved {
		t.Fatalf("items: err=%v moved=%v", err, moved)
	}
	if !reflect.DeepEqual(o.Items, []string{"a", "c"}) {
		t.Fatalf("items: %v", o.Items)
	}
	labels, _ := Get(o, "labels")
	if _, _, err := Remove(labels, "k"); err != nil {
		t.Fatalf("labels: %v", err)
	}
	if len(o.Labels) != 0 {
		t.Fatalf("labels: %v", o.Labels)
	}
	if _, _, err := Remove(o, "id"); err != nil || o.ID != 0 {
		t.Fatalf("id: err=%v id=%d", err, o.ID)
	}

	m := map[string]any{"x": 1}
	if _, _, err := Remove(m, "absent"); err != nil || len(m) != 1 {
		t.Fatalf("absent key: err=%v m=%v", err, m)
	}
}

func TestResizableAndLen(t *testing.T) {
	s := []string{"a"}
	if Resizable(s) || !Resizable(&s) || !Resizable(&[]any{}) || Resizable([]any{}) {
		t.Fatalf("Resizable mismatch")
	}
	if Len(s) != 1 || Len(&s) != 1 || Len(map[string]any{}) != -1 || Len([2]int{}) != 2 {
		t.Fatalf("Len mismatch")
	}
}

func TestStructKey(t *testing.T) {
	rt := reflect.TypeOf(struct {
		A string `formbind:"alpha,omitempty" json:"a"`
		B string `json:"b,omitempty"`
		C string `json:",omitempty"`
		D string `json:"-"`
		E string
	}{})
	want := []string{"alpha", "b", "C", "-", "E"}
	for i, w := range want {
		if got := StructKey(rt.Field(i)); got != w {
			t.Fatalf("field %d: got %q want %q", i, got, w)
		}
	}
}
