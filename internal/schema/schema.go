// Package schema defines the component schema consumed by the generators:
// which modules declare UI components, which events those components emit,
// and the shape of each event's payload.
//
// All collections are explicit ordered sequences. Declaration order in the
// source document is load-bearing downstream: it determines the order of
// generated declarations and the shape of generated method signatures, so
// loaders must preserve it exactly.
package schema

import "fmt"

// Kind discriminates a payload property's type annotation. The union is
// closed: six primitive kinds, string enumerations, and nested objects.
type Kind int

const (
	KindBoolean Kind = iota
	KindString
	KindInt32
	KindDouble
	KindFloat
	KindMixed
	KindStringEnum
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindString:
		return "String"
	case KindInt32:
		return "Int32"
	case KindDouble:
		return "Double"
	case KindFloat:
		return "Float"
	case KindMixed:
		return "Mixed"
	case KindStringEnum:
		return "StringEnum"
	case KindObject:
		return "Object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ModuleTypeComponent flags a module whose members are UI components.
// Modules with any other type flag are ignored by the generators.
const ModuleTypeComponent = "Component"

// Schema is the root of one schema document, immutable for a generation pass.
type Schema struct {
	Modules []Module
}

// Module is a named group of components, in document order.
type Module struct {
	Name       string
	Type       string
	Components []Component
}

// Component is a named UI element and the events it may emit.
type Component struct {
	Name   string
	Events []Event
}

// Event is a named signal a component emits. Payload is nil when the event
// carries no argument; a non-nil empty payload is an argument with no
// properties, which is valid degenerate input.
type Event struct {
	Name    string
	Payload []Property
}

// HasPayload reports whether the event carries an object-shaped argument.
func (e Event) HasPayload() bool { return e.Payload != nil }

// Property is one named, typed member of an event payload.
type Property struct {
	Name string
	Type Annotation
}

// Annotation is the tagged type of a payload property. Options is populated
// only for KindStringEnum, Properties only for KindObject.
type Annotation struct {
	Kind       Kind
	Options    []string
	Properties []Property
}
