package formbind

import "github.com/reoring/formbind/dom"

// radioSync is the legacy mode: every button owns a boolean property named by
// its value attribute.
type radioSync struct{}

func (radioSync) initialize(bnd *binding) {
	bnd.control.SetChecked(truthy(bnd.loc.Get()))
}

// Browsers fire change only on the button that became checked, so any change
// re-syncs every button of the group to catch the ones that were unchecked.
func (radioSync) wire(bnd *binding) {
	bnd.control.On(dom.EventChange, func(dom.Event) {
		for _, m := range bnd.binder.groups.members(bnd.group) {
			if m.kind != kindRadio {
				continue
			}
			m.set(m.control.Checked())
		}
		if bnd.set(bnd.control.Checked()) {
			bnd.changed()
		}
	})
}

// radioSingleSync binds the whole group to one property holding the value of
// the checked button.
type radioSingleSync struct{}

func (radioSingleSync) initialize(bnd *binding) {
	v := bnd.loc.Get()
	for _, m := range bnd.binder.groups.members(bnd.group) {
		if m.kind != kindRadioSingle {
			continue
		}
		m.control.SetChecked(sameLiteral(m.control.Value(), v))
	}
}

func (radioSingleSync) wire(bnd *binding) {
	bnd.control.On(dom.EventChange, func(dom.Event) {
		if !bnd.control.Checked() {
			return
		}
		if bnd.set(bnd.control.Value()) {
			bnd.changed()
		}
	})
}
