package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"name", "name"},
		{"Name", "name"},
		{"  Dept  ", "dept"},
		{"Research Interests", "research interests"},
		{"research_interests", "research interests"},
		{"research-interests", "research interests"},
		{"researchInterests", "research interests"},
		{"RESEARCH   INTERESTS", "research interests"},
		{"campus_dept", "campus dept"},
		{"PhotoURL", "photo url"},
		{"ORCIDProfile", "orcid profile"},
		{"E-Mail", "e mail"},
		{"\tteaching\tinterests\n", "teaching interests"},
		{"", ""},
		{"___", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKey(tt.input))
		})
	}
}

func TestNormalizeKey_Idempotent(t *testing.T) {
	for _, in := range []string{"Research Interests", "campus_dept", "PhotoURL", "x"} {
		once := NormalizeKey(in)
		assert.Equal(t, once, NormalizeKey(once), "input %q", in)
	}
}

func TestNormalizeIdent(t *testing.T) {
	assert.Equal(t, "researchinterests", NormalizeIdent("Research Interests"))
	assert.Equal(t, "campusdept", NormalizeIdent("campus_dept"))
	assert.Equal(t, "", NormalizeIdent(""))
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"sustainability", "contributions"}, TokenizeIdent("Sustainability Contributions"))
	assert.Empty(t, TokenizeIdent(""))
}
