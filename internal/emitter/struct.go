package emitter

import (
	"fmt"
	"strings"

	"github.com/latticeui/eventgen/internal/schema"
)

// synthesizeStruct walks a payload's properties depth-first and registers a
// struct declaration for them. Nested objects and enums are synthesized and
// registered during the walk, before this struct itself is registered, so
// insertion order in the registry is always children first.
//
// The component name is only used to scope error messages; it does not
// influence generated names. Returns the struct's declaration name.
func synthesizeStruct(reg *registry, component string, path []string, props []schema.Property, opts Options) (string, error) {
	name := declName(path)

	type field struct {
		name string
		typ  string
	}
	fields := make([]field, 0, len(props))
	for _, p := range props {
		var typ string
		switch p.Type.Kind {
		case schema.KindBoolean, schema.KindString, schema.KindInt32,
			schema.KindDouble, schema.KindFloat, schema.KindMixed:
			typ = cppPrimitive(p.Type.Kind, opts.NullablePrimitives)
		case schema.KindObject:
			child, err := synthesizeStruct(reg, component, childPath(path, p.Name), p.Type.Properties, opts)
			if err != nil {
				return "", err
			}
			typ = child
		case schema.KindStringEnum:
			typ = synthesizeEnum(reg, childPath(path, p.Name), p.Type.Options)
		default:
			return "", fmt.Errorf("component %s: payload property %s has unsupported annotation kind %s",
				component, strings.Join(childPath(path, p.Name), "."), p.Type.Kind)
		}
		fields = append(fields, field{name: p.Name, typ: typ})
	}

	var b cw
	if len(fields) == 0 {
		b.line("  struct %s {};", name)
	} else {
		b.line("  struct %s {", name)
		for _, f := range fields {
			b.line("    %s %s;", f.typ, f.name)
		}
		b.line("  };")
	}
	reg.put(name, b.String())
	return name, nil
}

// childPath extends path by one segment without aliasing the parent's
// backing array; the recursion reuses path across siblings.
func childPath(path []string, segment string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	return append(out, segment)
}
