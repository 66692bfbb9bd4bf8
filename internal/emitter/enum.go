package emitter

import "strings"

// synthesizeEnum builds an enum class declaration from a string-enum
// property's option list, plus a companion toString that maps each case back
// to its original, unsanitized literal. The combined text is registered
// under the enum name, which is returned for use as a field type.
func synthesizeEnum(reg *registry, path []string, options []string) string {
	name := declName(path)

	cases := make([]string, 0, len(options))
	for _, opt := range options {
		cases = append(cases, safeCaseName(opt))
	}

	var b cw
	if len(cases) == 0 {
		b.line("  enum class %s {};", name)
	} else {
		b.line("  enum class %s { %s };", name, strings.Join(cases, ", "))
	}
	b.line("")
	b.line("  static char const *toString(const %s value) {", name)
	b.line("    switch (value) {")
	for i, opt := range options {
		b.line("      case %s::%s:", name, cases[i])
		b.line("        return %q;", opt)
	}
	b.line("    }")
	b.line("  }")

	reg.put(name, b.String())
	return name
}
