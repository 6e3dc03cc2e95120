package dom

import "slices"

// Form owns a set of elements and provides radio exclusivity between
// buttons sharing a name.
type Form struct {
	elements []*Element
}

func NewForm() *Form { return &Form{} }

// Input adds an <input> with the given type and name.
func (f *Form) Input(typ, name string) *Element {
	e := newElement(f, "input")
	if typ != "" {
		e.attrs["type"] = typ
	}
	e.attrs["name"] = name
	f.elements = append(f.elements, e)
	return e
}

// Text adds a text input.
func (f *Form) Text(name string) *Element { return f.Input("text", name) }

// Checkbox adds a checkbox input.
func (f *Form) Checkbox(name string) *Element { return f.Input("checkbox", name) }

// Radio adds a radio button in group name carrying the literal value.
func (f *Form) Radio(name, value string) *Element {
	return f.Input("radio", name).WithValue(value)
}

// Select adds a <select> with the given option values. No option is selected.
func (f *Form) Select(name string, options ...string) *Element {
	e := newElement(f, "select")
	e.attrs["name"] = name
	e.options = slices.Clone(options)
	f.elements = append(f.elements, e)
	return e
}

// TextArea adds a <textarea>.
func (f *Form) TextArea(name string) *Element {
	e := newElement(f, "textarea")
	e.attrs["name"] = name
	f.elements = append(f.elements, e)
	return e
}

// Elements returns the elements in document order.
func (f *Form) Elements() []*Element { return slices.Clone(f.elements) }

// Controls returns the elements as Controls, ready for binding.
func (f *Form) Controls() []Control {
	out := make([]Control, 0, len(f.elements))
	for _, e := range f.elements {
		out = append(out, e)
	}
	return out
}

// ByName returns the first element whose name attribute matches.
func (f *Form) ByName(name string) (*Element, bool) {
	for _, e := range f.elements {
		if e.attrs["name"] == name {
			return e, true
		}
	}
	return nil, false
}

func (f *Form) radioGroup(name string) []*Element {
	var out []*Element
	for _, e := range f.elements {
		if e.tag == "input" && e.attrs["type"] == "radio" && e.attrs["name"] == name {
			out = append(out, e)
		}
	}
	return out
}
