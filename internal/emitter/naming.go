package emitter

import (
	"strings"
	"unicode"
)

// declName derives a declaration name from a path of field names by
// capitalizing the first letter of each segment and concatenating. Two
// distinct paths are expected to yield distinct names; there is no collision
// check (see registry).
func declName(path []string) string {
	var b strings.Builder
	for _, seg := range path {
		b.WriteString(capitalize(seg))
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// safeCaseName sanitizes an enum option literal into a valid case label:
// runs of non-alphanumeric characters become word breaks, each word is
// capitalized, and a leading digit gets a "V" prefix so the label stays a
// legal identifier.
func safeCaseName(option string) string {
	var b strings.Builder
	newWord := true
	for _, r := range option {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			newWord = true
			continue
		}
		if newWord {
			r = unicode.ToUpper(r)
			newWord = false
		}
		b.WriteRune(r)
	}
	label := b.String()
	if label == "" || unicode.IsDigit(rune(label[0])) {
		label = "V" + label
	}
	return label
}
