package policy

import (
	"fmt"
	"strings"

	"faculty-directory/internal/diagnostic"
	"faculty-directory/internal/member"
)

// Validate checks a candidate against the policy and returns every
// violation found. The record must be rejected when any returned
// diagnostic is an error.
func Validate(p *Policy, c *member.Candidate) []diagnostic.Diagnostic {
	if p == nil {
		p = Loose()
	}

	src := c.Label()

	var diags []diagnostic.Diagnostic

	addError := func(code, message, fieldPath string) {
		diags = append(diags, diagnostic.New(diagnostic.DiagnosticError, diagnostic.KindValidation,
			code, message, src, fieldPath))
	}

	// All missing required fields go into one diagnostic.
	var missing []string

	for _, f := range p.Required {
		if !c.Present(f) {
			missing = append(missing, f)
		}
	}

	if len(missing) > 0 {
		addError("missing_required",
			fmt.Sprintf("missing required field(s): %s", strings.Join(missing, ", ")),
			strings.Join(missing, ","))
	}

	for _, f := range p.Forbidden {
		if _, ok := c.Lookup(f); ok {
			addError("forbidden_field",
				fmt.Sprintf("field %q is no longer supported; move its content into %s", f, materialsHint(p)),
				f)
		}
	}

	if p.Authors != "" {
		if v, ok := c.Lookup(p.Authors); ok && v != nil {
			if msg := checkAuthors(v); msg != "" {
				addError("invalid_authors", fmt.Sprintf("field %q %s", p.Authors, msg), p.Authors)
			}
		}
	}

	for _, spec := range p.Optional {
		v, ok := c.Lookup(spec.Name)
		if !ok || v == nil {
			continue
		}

		if !matchesType(v, spec.Type) {
			addError("type_mismatch",
				fmt.Sprintf("field %q must be %s, got %s", spec.Name, spec.Type.describe(), member.TypeName(v)),
				spec.Name)
		}
	}

	if p.Materials != nil && c.Present(p.Materials.Field) {
		v, _ := c.Lookup(p.Materials.Field)
		for _, d := range validateMaterials(p.Materials, v) {
			addError(d.code, d.message, d.fieldPath)
		}
	}

	return diags
}

func materialsHint(p *Policy) string {
	if p.Materials != nil && p.Materials.Field != "" {
		return fmt.Sprintf("%q", p.Materials.Field)
	}

	return "the current format"
}
