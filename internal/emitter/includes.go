package emitter

import (
	"sort"

	"github.com/latticeui/eventgen/internal/schema"
)

// headerFor maps payload-reachable external types to the header that
// declares them. Locally synthesized structs and enums never appear here.
var headerFor = map[schema.Kind]string{
	schema.KindMixed: "folly/dynamic.h",
}

// includeSet accumulates extra include directives across the whole run. It
// is order-independent; duplicates across components collapse.
type includeSet map[string]struct{}

// collect walks a payload property tree and records every header required
// by an external type referenced in it.
func (s includeSet) collect(props []schema.Property) {
	for _, p := range props {
		if h, ok := headerFor[p.Type.Kind]; ok {
			s[h] = struct{}{}
		}
		if p.Type.Kind == schema.KindObject {
			s.collect(p.Type.Properties)
		}
	}
}

func (s includeSet) sorted() []string {
	out := make([]string, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}
