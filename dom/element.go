package dom

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Element is an in-memory Control. The zero value is not usable; create
// elements through a Form.
type Element struct {
	form     *Form
	tag      string
	attrs    map[string]string
	classes  []string
	checked  bool
	value    string
	options  []string
	selected int
	handlers map[EventType][]Handler
}

var _ Control = (*Element)(nil)

func newElement(f *Form, tag string) *Element {
	return &Element{
		form:     f,
		tag:      tag,
		attrs:    map[string]string{},
		selected: -1,
		handlers: map[EventType][]Handler{},
	}
}

// WithAttr sets an attribute and returns e for chaining.
func (e *Element) WithAttr(name, value string) *Element {
	if name == "class" {
		e.classes = strings.Fields(value)
		return e
	}
	e.attrs[name] = value
	if name == "value" && e.tag != "select" {
		e.value = value
	}
	return e
}

// WithClass adds CSS classes.
func (e *Element) WithClass(classes ...string) *Element {
	for _, c := range classes {
		if c != "" && !slices.Contains(e.classes, c) {
			e.classes = append(e.classes, c)
		}
	}
	return e
}

// WithValue sets the displayed text. For radio and checkbox inputs this is
// the literal value attribute.
func (e *Element) WithValue(v string) *Element { return e.WithAttr("value", v) }

// WithChecked sets the initial checked state.
func (e *Element) WithChecked(c bool) *Element {
	e.checked = c
	return e
}

func (e *Element) TagName() string { return e.tag }

func (e *Element) Attr(name string) string {
	if name == "class" {
		return strings.Join(e.classes, " ")
	}
	return e.attrs[name]
}

func (e *Element) HasClass(class string) bool { return slices.Contains(e.classes, class) }

// Classes returns the class list in insertion order.
func (e *Element) Classes() []string { return slices.Clone(e.classes) }

func (e *Element) Checked() bool { return e.checked }

func (e *Element) SetChecked(checked bool) { e.checked = checked }

func (e *Element) Value() string {
	if e.tag == "select" {
		if e.selected < 0 || e.selected >= len(e.options) {
			return ""
		}
		return e.options[e.selected]
	}
	if e.isCheckable() {
		return e.attrs["value"]
	}
	return e.value
}

func (e *Element) SetValue(v string) {
	switch {
	case e.tag == "select":
		e.selected = slices.Index(e.options, v)
	case e.isCheckable():
		e.attrs["value"] = v
	default:
		e.value = v
	}
}

func (e *Element) Options() []string { return slices.Clone(e.options) }

func (e *Element) SelectedIndex() int { return e.selected }

func (e *Element) SetSelectedIndex(i int) {
	if i < -1 || i >= len(e.options) {
		i = -1
	}
	e.selected = i
}

func (e *Element) On(t EventType, h Handler) {
	if h == nil {
		return
	}
	e.handlers[t] = append(e.handlers[t], h)
}

// Dispatch delivers ev to the handlers registered for its type.
func (e *Element) Dispatch(ev Event) {
	if ev.Target == nil {
		ev.Target = e
	}
	for _, h := range slices.Clone(e.handlers[ev.Type]) {
		h(ev)
	}
}

// Click simulates a mouse click. Checkboxes toggle before the click event
// fires. A radio button that becomes checked unchecks the other buttons of its
// group and then receives click and change; the buttons that lost the check
// get no event, as in browsers.
func (e *Element) Click() {
	switch e.Attr("type") {
	case "checkbox":
		e.checked = !e.checked
		e.Dispatch(Event{Type: EventClick})
		e.Dispatch(Event{Type: EventChange})
	case "radio":
		if e.checked {
			e.Dispatch(Event{Type: EventClick})
			return
		}
		if e.form != nil {
			for _, other := range e.form.radioGroup(e.Attr("name")) {
				other.checked = false
			}
		}
		e.checked = true
		e.Dispatch(Event{Type: EventClick})
		e.Dispatch(Event{Type: EventChange})
	default:
		e.Dispatch(Event{Type: EventClick})
	}
}

func (e *Element) Focus() { e.Dispatch(Event{Type: EventFocus}) }

func (e *Element) Blur() { e.Dispatch(Event{Type: EventBlur}) }

// Type appends text one character at a time, firing keyup after each.
func (e *Element) Type(text string) {
	for _, r := range text {
		e.value += string(r)
		e.Dispatch(Event{Type: EventKeyUp, KeyCode: keyCode(r)})
	}
}

// Press fires keyup for a single key. Backspace removes the last character
// first.
func (e *Element) Press(code int) {
	if code == KeyBackspace && e.value != "" {
		_, size := utf8.DecodeLastRuneInString(e.value)
		e.value = e.value[:len(e.value)-size]
	}
	e.Dispatch(Event{Type: EventKeyUp, KeyCode: code})
}

// Choose selects the option with the given value and fires change. It
// reports false when no option matches.
func (e *Element) Choose(value string) bool {
	i := slices.Index(e.options, value)
	if i < 0 {
		return false
	}
	e.selected = i
	e.Dispatch(Event{Type: EventChange})
	return true
}

func (e *Element) isCheckable() bool {
	if e.tag != "input" {
		return false
	}
	t := e.attrs["type"]
	return t == "checkbox" || t == "radio"
}

// keyCode approximates the legacy keyCode for a typed character.
func keyCode(r rune) int {
	if r < utf8.RuneSelf {
		return int(unicode.ToUpper(r))
	}
	return 0
}
