package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Sequoia Capital", "sequoia-capital"},
		{"parentheses", "Andreessen Horowitz (a16z)", "andreessen-horowitz-a16z"},
		{"leading trailing spaces", "  Index Ventures  ", "index-ventures"},
		{"multiple spaces", "First  Round   Capital", "first-round-capital"},
		{"punctuation", "Y Combinator, Inc.", "y-combinator-inc"},
		{"existing hyphens", "Ben-Evans", "ben-evans"},
		{"hyphen runs", "a --- b", "a-b"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Sequoia Capital",
		"Andreessen Horowitz (a16z)",
		"  GGV  Capital  ",
		"already-a-slug",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify should be idempotent for %q", in)
	}
}

func TestSlugify_OutputCharset(t *testing.T) {
	valid := regexp.MustCompile(`^$|^[a-z0-9_]+(-[a-z0-9_]+)*$`)
	inputs := []string{
		"Sequoia Capital",
		"A16Z!!! Crypto",
		"-- leading and trailing --",
		"Tabs\tand\nnewlines",
		"MiXeD CaSe 42",
	}
	for _, in := range inputs {
		got := Slugify(in)
		assert.Regexp(t, valid, got, "unexpected slug %q for input %q", got, in)
	}
}
