package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faculty-directory/internal/diagnostic"
	"faculty-directory/internal/member"
	"faculty-directory/internal/record"
)

// candidateFromYAML parses and normalizes a record the way the pipeline does.
func candidateFromYAML(t *testing.T, name, yaml string) *member.Candidate {
	t.Helper()

	raw, err := record.Parse(name, []byte(yaml))
	require.NoError(t, err)

	c, _ := member.NewNormalizer(member.DefaultConfig()).Normalize(record.NewFile(name, 0), raw)

	return c
}

func codes(diags []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}

const validCourse = `
title: Intro to Data Science
description: A gentle start.
authors: [Ada Lovelace, Grace Hopper]
tags: [python, statistics]
repository: https://github.com/example/intro-ds
materials:
  - title: Week 1
    description: Setup
    type: notebook
    duration: 45m
    github_url: https://github.com/example/intro-ds/blob/main/w1.ipynb
  - Title: Week 2
    Description: Pandas
    Type: notebook
    Duration: 60m
    Colab URL: https://colab.research.google.com/x
`

func TestValidate_StrictValid(t *testing.T) {
	c := candidateFromYAML(t, "intro.yml", validCourse)

	diags := Validate(Strict(), c)
	assert.Empty(t, diags, "unexpected diagnostics: %v", diags)
}

func TestValidate_StrictAllMissing(t *testing.T) {
	c := candidateFromYAML(t, "empty.yml", "")

	diags := Validate(Strict(), c)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, "missing_required", d.Code)
	assert.Equal(t, diagnostic.DiagnosticError, d.Severity)
	assert.Equal(t, diagnostic.KindValidation, d.Kind)
	assert.Equal(t, "empty.yml", d.Source)

	for _, f := range []string{"title", "description", "authors", "tags", "materials", "repository"} {
		assert.Contains(t, d.Message, f)
	}
}

func TestValidate_StrictForbiddenLegacyFields(t *testing.T) {
	for _, key := range []string{"notebook", "notebooks", "Notebooks"} {
		t.Run(key, func(t *testing.T) {
			c := candidateFromYAML(t, "legacy.yml", validCourse+key+": https://github.com/example/nb.ipynb\n")

			diags := Validate(Strict(), c)
			assert.Equal(t, []string{"forbidden_field"}, codes(diags))
		})
	}
}

func TestValidate_StrictMaterialLinks(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		wantErr bool
		message string
	}{
		{"no link", "", true, "needs one of github_url, colab_url"},
		{"not a url", "github_url: not-a-url", true, `invalid "github_url"`},
		{"empty string", `github_url: ""`, true, `invalid "github_url"`},
		{"not a string", "github_url: 42", true, `invalid "github_url"`},
		{"ftp scheme", "colab_url: ftp://x", true, `invalid "colab_url"`},
		{"https", "github_url: https://x", false, ""},
		{"http", "colab_url: http://x", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml := `
title: T
description: D
authors: A
tags: [x]
repository: https://github.com/example/r
materials:
  - title: ok
    description: ok
    type: video
    duration: 10m
    github_url: https://github.com/example/r
  - title: second
    description: second
    type: lab
    duration: 1h
    ` + tt.link + "\n"

			diags := Validate(Strict(), candidateFromYAML(t, "course.yml", yaml))

			if !tt.wantErr {
				assert.Empty(t, diags)
				return
			}

			require.Len(t, diags, 1)
			assert.Equal(t, "invalid_material", diags[0].Code)
			assert.Contains(t, diags[0].Message, "material 2")
			assert.Contains(t, diags[0].Message, tt.message)
			assert.Equal(t, "course.yml", diags[0].Source)
		})
	}
}

func TestValidate_StrictMaterialReportsEveryProblem(t *testing.T) {
	yaml := `
title: T
description: D
authors: A
tags: [x]
repository: https://github.com/example/r
materials:
  - just a string
  - title: only a title
`
	diags := Validate(Strict(), candidateFromYAML(t, "course.yml", yaml))

	var paths []string
	for _, d := range diags {
		paths = append(paths, d.FieldPath)
	}

	assert.Equal(t, []string{
		"materials[1]",
		"materials[2].description",
		"materials[2].type",
		"materials[2].duration",
		"materials[2]",
	}, paths)
}

func TestValidate_StrictMaterialsShape(t *testing.T) {
	yaml := `
title: T
description: D
authors: A
tags: [x]
repository: https://github.com/example/r
materials: "see website"
`
	diags := Validate(Strict(), candidateFromYAML(t, "course.yml", yaml))
	assert.Equal(t, []string{"invalid_materials"}, codes(diags))
}

func TestValidate_StrictAuthorsShape(t *testing.T) {
	base := `
title: T
description: D
tags: [x]
repository: https://github.com/example/r
materials:
  - {title: a, description: b, type: c, duration: d, github_url: "https://x"}
`
	tests := []struct {
		name    string
		authors string
		valid   bool
	}{
		{"string", "authors: Ada", true},
		{"list", "authors: [Ada, Grace]", true},
		{"mapping", "authors: {name: Ada}", false},
		{"number", "authors: 7", false},
		{"list of mappings", "authors: [{name: Ada}]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(Strict(), candidateFromYAML(t, "c.yml", base+tt.authors+"\n"))
			if tt.valid {
				assert.Empty(t, diags)
			} else {
				assert.Contains(t, codes(diags), "invalid_authors")
			}
		})
	}
}

func TestValidate_StrictOptionalTypes(t *testing.T) {
	yaml := validCourse + `
estimated_hours: "ten"
level: 3
prerequisites: python
`
	diags := Validate(Strict(), candidateFromYAML(t, "c.yml", yaml))

	require.Len(t, diags, 3)

	byField := map[string]string{}
	for _, d := range diags {
		assert.Equal(t, "type_mismatch", d.Code)
		byField[d.FieldPath] = d.Message
	}

	assert.Contains(t, byField["level"], "must be a string, got number")
	assert.Contains(t, byField["prerequisites"], "must be a list of strings, got string")
	assert.Contains(t, byField["estimated_hours"], "must be a number, got string")
}

func TestValidate_Loose(t *testing.T) {
	t.Run("name present", func(t *testing.T) {
		c := candidateFromYAML(t, "ada.yml", "name: Ada Lovelace\n")
		assert.Empty(t, Validate(Loose(), c))
	})

	t.Run("name missing", func(t *testing.T) {
		c := candidateFromYAML(t, "nobody.yml", "email: x@y.z\n")

		diags := Validate(Loose(), c)
		require.Len(t, diags, 1)
		assert.Equal(t, "missing_required", diags[0].Code)
		assert.Equal(t, "name", diags[0].FieldPath)
	})

	t.Run("blank name", func(t *testing.T) {
		c := candidateFromYAML(t, "blank.yml", "name: '   '\n")
		assert.True(t, diagnostic.HasErrors(Validate(Loose(), c)))
	})

	t.Run("alias counts as name", func(t *testing.T) {
		c := candidateFromYAML(t, "alias.yml", "Full Name: Ada\n")
		assert.Empty(t, Validate(Loose(), c))
	})

	t.Run("nil policy is loose", func(t *testing.T) {
		c := candidateFromYAML(t, "nil.yml", "title: Professor\n")
		assert.Equal(t, []string{"missing_required"}, codes(Validate(nil, c)))
	})
}
