// Package emitter turns a component schema into C++ event-emitter
// declarations: one class per component with its payload structs, string
// enums, and per-event method signatures, assembled into a single header.
//
// The whole pass is a pure function of the schema. Iteration follows the
// schema's declared order everywhere, so identical input yields
// byte-identical output.
package emitter

import (
	"fmt"

	"github.com/latticeui/eventgen/internal/schema"
)

// OutputFile is the fixed name of the generated header.
const OutputFile = "EventEmitters.h"

// DefaultNamespace wraps the generated declarations when no package
// identifier is configured.
const DefaultNamespace = "lattice::ui"

// baseInclude declares ViewEventEmitter, the base class every generated
// emitter extends.
const baseInclude = "lattice/components/view/ViewEventEmitter.h"

// Options carry the entry-point configuration. None of them changes the
// shape of the synthesis; they only affect naming, wrapping, and the banner.
type Options struct {
	// LibraryName identifies the schema's library in the generated banner.
	LibraryName string
	// Namespace is the C++ namespace wrapping all generated declarations.
	// Empty means DefaultNamespace.
	Namespace string
	// NullablePrimitives wraps primitive field types in std::optional.
	NullablePrimitives bool
}

// Generate runs one generation pass over the schema and returns the output
// artifact: a mapping from the fixed header name to its complete text. On
// the first schema-contract violation it returns an error and no artifact.
func Generate(s schema.Schema, opts Options) (map[string]string, error) {
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}

	includes := includeSet{}
	var units []string
	for _, mod := range s.Modules {
		if mod.Type != schema.ModuleTypeComponent {
			continue
		}
		for _, comp := range mod.Components {
			for _, ev := range comp.Events {
				includes.collect(ev.Payload)
			}
			unit, err := emitComponent(comp, opts)
			if err != nil {
				return nil, fmt.Errorf("module %s: %w", mod.Name, err)
			}
			units = append(units, unit)
		}
	}

	var b cw
	if opts.LibraryName != "" {
		b.line("// Code generated by eventgen from %s. DO NOT EDIT.", opts.LibraryName)
	} else {
		b.line("// Code generated by eventgen. DO NOT EDIT.")
	}
	b.line("")
	b.line("#pragma once")
	b.line("")
	b.line("#include <%s>", baseInclude)
	for _, h := range includes.sorted() {
		b.line("#include <%s>", h)
	}
	b.line("")
	b.line("namespace %s {", opts.Namespace)
	for _, unit := range units {
		b.line("")
		b.WriteString(unit)
	}
	b.line("")
	b.line("} // namespace %s", opts.Namespace)

	return map[string]string{OutputFile: b.String()}, nil
}
