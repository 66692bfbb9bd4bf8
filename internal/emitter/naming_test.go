package emitter

import "testing"

func TestDeclName(t *testing.T) {
	cases := []struct {
		path []string
		want string
	}{
		{[]string{"onChange"}, "OnChange"},
		{[]string{"onSelect", "mode"}, "OnSelectMode"},
		{[]string{"onScroll", "offset", "x"}, "OnScrollOffsetX"},
		{[]string{}, ""},
	}
	for _, c := range cases {
		if got := declName(c.path); got != c.want {
			t.Errorf("declName(%v) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestSafeCaseName(t *testing.T) {
	cases := []struct {
		option string
		want   string
	}{
		{"single", "Single"},
		{"multiple", "Multiple"},
		{"word-break", "WordBreak"},
		{"snake_case", "SnakeCase"},
		{"space separated", "SpaceSeparated"},
		{"MixedCase", "MixedCase"},
		{"2up", "V2up"},
		{"", "V"},
	}
	for _, c := range cases {
		if got := safeCaseName(c.option); got != c.want {
			t.Errorf("safeCaseName(%q) = %q, want %q", c.option, got, c.want)
		}
	}
}
