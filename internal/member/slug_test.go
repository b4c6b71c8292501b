package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Dr. Ada Lovelace", "dr-ada-lovelace"},
		{"  Hello__World  ", "hello-world"},
		{"--a--b--", "a-b"},
		{"a - b", "a-b"},
		{"C++ & Go", "c-go"},
		{"José Núñez", "jos-nez"},
		{"tab\tseparated\nname", "tab-separated-name"},
		{"Ann\u00a0Lee", "ann-lee"},
		{"Ann\u2003\u3000Lee", "ann-lee"},
		{"ALREADY-a-slug", "already-a-slug"},
		{"", FallbackSlug},
		{"   ", FallbackSlug},
		{"!!!", FallbackSlug},
		{"member", "member"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"", "Dr. Ada Lovelace", "__x__", "-", "a_-_b", "Ünïcödé Nämé", "İstanbul", "K-9 (Kelvin)",
		"ada@university.edu", "  spaced   out  ", "trailing-", "x y", "x\vy", "ﬁle",
	}

	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
		assert.Regexp(t, `^[a-z0-9]+(-[a-z0-9]+)*$`, once, "input %q", in)
	}
}

func TestEmailSlug(t *testing.T) {
	assert.Equal(t, "ada-lovelace-university-edu", emailSlug("Ada.Lovelace@University.edu"))
	assert.Equal(t, "grace-cs-navy-mil", emailSlug("grace+cs@navy.mil"))
}
