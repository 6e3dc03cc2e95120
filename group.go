package formbind

// groupRegistry tracks bound radio buttons by their name attribute. It is
// appended to during Bind and read by the change handlers.
type groupRegistry struct {
	groups map[string][]*binding
}

func newGroupRegistry() *groupRegistry {
	return &groupRegistry{groups: map[string][]*binding{}}
}

func (r *groupRegistry) add(name string, b *binding) {
	r.groups[name] = append(r.groups[name], b)
}

// members returns the bindings of a group in bind order.
func (r *groupRegistry) members(name string) []*binding {
	return r.groups[name]
}
