package dom

import (
	"reflect"
	"testing"
)

func record(e *Element, types ...EventType) *[]EventType {
	var got []EventType
	for _, t := range types {
		e.On(t, func(ev Event) { got = append(got, ev.Type) })
	}
	return &got
}

func TestCheckboxClickTogglesBeforeEvents(t *testing.T) {
	f := NewForm()
	cb := f.Checkbox("agree")
	var seen []bool
	cb.On(EventClick, func(Event) { seen = append(seen, cb.Checked()) })
	got := record(cb, EventClick, EventChange)

	cb.Click()
	cb.Click()
	if !reflect.DeepEqual(seen, []bool{true, false}) {
		t.Fatalf("checked state seen by click handlers: %v", seen)
	}
	want := []EventType{EventClick, EventChange, EventClick, EventChange}
	if !reflect.DeepEqual(*got, want) {
		t.Fatalf("events: %v", *got)
	}
}

func TestRadioExclusivity(t *testing.T) {
	f := NewForm()
	a := f.Radio("g", "a").WithChecked(true)
	b := f.Radio("g", "b")
	other := f.Radio("h", "x").WithChecked(true)
	ga := record(a, EventChange)
	gb := record(b, EventClick, EventChange)

	b.Click()
	if a.Checked() || !b.Checked() || !other.Checked() {
		t.Fatalf("a=%v b=%v other=%v", a.Checked(), b.Checked(), other.Checked())
	}
	if len(*ga) != 0 {
		t.Fatalf("unchecked button got events: %v", *ga)
	}

	b.Click()
	if !reflect.DeepEqual(*gb, []EventType{EventClick, EventChange, EventClick}) {
		t.Fatalf("re-click should only fire click: %v", *gb)
	}
}

func TestValueByTag(t *testing.T) {
	f := NewForm()
	r := f.Radio("g", "literal")
	r.SetValue("changed")
	if r.Value() != "changed" || r.Attr("value") != "changed" {
		t.Fatalf("radio value: %q", r.Value())
	}

	sel := f.Select("s", "a", "b")
	if sel.Value() != "" || sel.SelectedIndex() != -1 {
		t.Fatalf("fresh select: %q %d", sel.Value(), sel.SelectedIndex())
	}
	sel.SetValue("b")
	if sel.Value() != "b" || sel.SelectedIndex() != 1 {
		t.Fatalf("select after SetValue: %q %d", sel.Value(), sel.SelectedIndex())
	}
	sel.SetSelectedIndex(5)
	if sel.SelectedIndex() != -1 {
		t.Fatalf("out of range index should clear selection")
	}
	if sel.Choose("zzz") {
		t.Fatalf("Choose of unknown option should fail")
	}

	ta := f.TextArea("notes")
	ta.SetValue("hi")
	if ta.Value() != "hi" {
		t.Fatalf("textarea value: %q", ta.Value())
	}
}

func TestTypeAndPress(t *testing.T) {
	f := NewForm()
	in := f.Text("q")
	var codes []int
	var values []string
	in.On(EventKeyUp, func(ev Event) {
		codes = append(codes, ev.KeyCode)
		values = append(values, in.Value())
	})

	in.Type("ab")
	in.Press(KeyBackspace)
	in.Press(KeyArrowLeft)
	if !reflect.DeepEqual(codes, []int{'A', 'B', KeyBackspace, KeyArrowLeft}) {
		t.Fatalf("codes: %v", codes)
	}
	if !reflect.DeepEqual(values, []string{"a", "ab", "a", "a"}) {
		t.Fatalf("values: %v", values)
	}
}

func TestIsNavigationKey(t *testing.T) {
	for _, k := range []int{KeyBackspace, KeyTab, KeyArrowLeft, KeyArrowUp, KeyArrowRight, KeyArrowDown} {
		if !IsNavigationKey(k) {
			t.Fatalf("%d should be navigation", k)
		}
	}
	for _, k := range []int{0, 13, 'A', 46} {
		if IsNavigationKey(k) {
			t.Fatalf("%d should not be navigation", k)
		}
	}
}

func TestClassesAndLookup(t *testing.T) {
	f := NewForm()
	e := f.Text("email").WithAttr("class", "a b").WithClass("b", "c", "")
	if !reflect.DeepEqual(e.Classes(), []string{"a", "b", "c"}) {
		t.Fatalf("classes: %v", e.Classes())
	}
	if e.Attr("class") != "a b c" || !e.HasClass("c") || e.HasClass("d") {
		t.Fatalf("class attr: %q", e.Attr("class"))
	}
	got, ok := f.ByName("email")
	if !ok || got != e {
		t.Fatalf("ByName failed")
	}
	if _, ok := f.ByName("missing"); ok {
		t.Fatalf("ByName should miss")
	}
	if len(f.Controls()) != 1 || len(f.Elements()) != 1 {
		t.Fatalf("form size mismatch")
	}
}

func TestDispatchSetsTarget(t *testing.T) {
	f := NewForm()
	e := f.Text("x")
	var target Control
	e.On(EventFocus, func(ev Event) { target = ev.Target })
	e.Focus()
	if target != e {
		t.Fatalf("target not set")
	}
}
