package emitter

// registry is an insertion-ordered store of generated declaration text,
// keyed by declaration name and scoped to a single component. Struct
// synthesis registers children before parents, so emitting values in
// insertion order always places a referenced type before its referrer.
//
// Registering an existing name silently replaces the text but keeps the
// original position. The naming scheme performs no collision detection, so
// two paths that stringify to the same name collapse to one entry, last
// write wins.
type registry struct {
	order []string
	decls map[string]string
}

func newRegistry() *registry {
	return &registry{decls: make(map[string]string)}
}

func (r *registry) put(name, decl string) {
	if _, ok := r.decls[name]; !ok {
		r.order = append(r.order, name)
	}
	r.decls[name] = decl
}

func (r *registry) values() []string {
	out := make([]string, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.decls[name])
	}
	return out
}
