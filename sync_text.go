package formbind

import "github.com/reoring/formbind/dom"

// textSync binds a text input. An empty model next to pre-filled text turns
// that text into a self-label (e.g. "Enter Email") when labels are allowed.
// Falsy model values such as 0 and false are never displayed.
type textSync struct{}

func (textSync) initialize(bnd *binding) {
	v := bnd.loc.Get()
	shown := bnd.control.Value()
	switch {
	case isEmpty(v) && shown != "" && bnd.binder.labels:
		bnd.useLabel = true
		bnd.label = shown
	case truthy(v):
		bnd.control.SetValue(display(v))
	}
}

func (textSync) wire(bnd *binding) {
	c := bnd.control
	if bnd.useLabel {
		c.On(dom.EventFocus, func(dom.Event) {
			if c.Value() == bnd.label {
				c.SetValue("")
			}
		})
		c.On(dom.EventBlur, func(dom.Event) {
			if c.Value() == "" {
				c.SetValue(bnd.label)
			}
		})
	}
	c.On(dom.EventKeyUp, func(ev dom.Event) {
		if !bnd.set(c.Value()) {
			return
		}
		// rewriting the field under cursor keys or backspace fights the user
		if bnd.translator != nil && !dom.IsNavigationKey(ev.KeyCode) {
			c.SetValue(display(bnd.loc.Get()))
		}
		bnd.changed()
	})
}
