// Package dom defines the form control surface the binder drives, plus an
// in-memory implementation that replays browser-like user interaction.
//
// A host UI runtime adapts its native widgets to Control. Handlers registered
// through On are invoked synchronously, in registration order, on the
// runtime's event loop.
package dom

// EventType names a control event.
type EventType string

const (
	EventClick  EventType = "click"
	EventChange EventType = "change"
	EventKeyUp  EventType = "keyup"
	EventFocus  EventType = "focus"
	EventBlur   EventType = "blur"
)

// Key codes of the navigation keys the binder treats specially.
const (
	KeyBackspace  = 8
	KeyTab        = 9
	KeyArrowLeft  = 37
	KeyArrowUp    = 38
	KeyArrowRight = 39
	KeyArrowDown  = 40
)

// IsNavigationKey reports whether code moves the cursor or deletes rather
// than entering text.
func IsNavigationKey(code int) bool {
	switch code {
	case KeyBackspace, KeyTab, KeyArrowLeft, KeyArrowUp, KeyArrowRight, KeyArrowDown:
		return true
	}
	return false
}

// Event is delivered to handlers. KeyCode is set for keyup events only.
type Event struct {
	Type    EventType
	KeyCode int
	Target  Control
}

// Handler reacts to an event.
type Handler func(Event)

// Control is a single form control.
type Control interface {
	// TagName is the lower-case element name: input, select or textarea.
	TagName() string
	// Attr returns an attribute value, or "" when unset.
	Attr(name string) string
	HasClass(class string) bool

	Checked() bool
	SetChecked(checked bool)

	// Value is the displayed text, or the selected option value for selects.
	Value() string
	SetValue(v string)

	// Options lists option values of a select in document order.
	Options() []string
	SelectedIndex() int
	SetSelectedIndex(i int)

	On(t EventType, h Handler)
}
