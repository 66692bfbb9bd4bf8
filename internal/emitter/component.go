package emitter

import "github.com/latticeui/eventgen/internal/schema"

// emitComponent assembles one component's output unit: an event-emitter
// class holding the component's synthesized structs and enums in dependency
// order, followed by one method declaration per event. Each component gets a
// fresh registry, so declaration names are scoped by the enclosing class.
func emitComponent(comp schema.Component, opts Options) (string, error) {
	reg := newRegistry()
	for _, ev := range comp.Events {
		if !ev.HasPayload() {
			continue
		}
		if _, err := synthesizeStruct(reg, comp.Name, []string{ev.Name}, ev.Payload, opts); err != nil {
			return "", err
		}
	}

	var b cw
	b.line("class %sEventEmitter : public ViewEventEmitter {", comp.Name)
	b.line(" public:")
	b.line("  using ViewEventEmitter::ViewEventEmitter;")
	for _, decl := range reg.values() {
		b.line("")
		b.WriteString(decl)
	}
	if len(comp.Events) > 0 {
		b.line("")
	}
	for _, ev := range comp.Events {
		if ev.HasPayload() {
			b.line("  void %s(%s value) const;", ev.Name, declName([]string{ev.Name}))
		} else {
			b.line("  void %s() const;", ev.Name)
		}
	}
	b.line("};")
	return b.String(), nil
}
