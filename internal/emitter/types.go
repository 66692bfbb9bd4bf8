package emitter

import (
	"fmt"

	"github.com/latticeui/eventgen/internal/schema"
)

// cppPrimitive maps a primitive annotation kind to its C++ type token. With
// nullable set, primitives are wrapped in std::optional; Mixed already
// admits null and is left bare. Callers dispatch on the annotation union
// first, so a non-primitive kind here is a programming error.
func cppPrimitive(kind schema.Kind, nullable bool) string {
	var t string
	switch kind {
	case schema.KindBoolean:
		t = "bool"
	case schema.KindString:
		t = "std::string"
	case schema.KindInt32:
		t = "int"
	case schema.KindDouble:
		t = "double"
	case schema.KindFloat:
		t = "float"
	case schema.KindMixed:
		return "folly::dynamic"
	default:
		panic(fmt.Sprintf("eventgen: cppPrimitive called with non-primitive kind %s", kind))
	}
	if nullable {
		return "std::optional<" + t + ">"
	}
	return t
}
