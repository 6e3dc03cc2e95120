// Package formbind keeps form controls and a backing object graph in sync.
//
// It provides:
//
// - Address parsing ("prop2[1].nestedObjProp" -> ["prop2", "1", "nestedObjProp"])
// - Resolution of an address to a Location with Get/Set/Delete over nested
//   maps, slices and structs, optionally through a read/write Transform
// - A Binder that initializes each control from the model and writes edits
//   back on click, change and keyup, including radio group coordination
//
// Design policy:
// - Keep only public APIs in the root package; put graph access under internal/.
// - Controls are reached through dom.Control; dom also ships an in-memory form.
// - Named transforms live under codec/, settings files under config/, graph
//   file drivers under source/ and the CLI under cmd/formbind.
//
// Typical usage:
//
//	root := map[string]any{"email": ""}
//	b, err := formbind.New(root, formbind.ChangeListenerFunc(func(addr string) {
//		log.Printf("changed %s", addr)
//	}))
//	err = b.BindAll(form.Controls()...)
//
//	loc, err := formbind.Resolve(root, "prop2[1].nestedObjProp", nil)
//	v := loc.Get()
package formbind
