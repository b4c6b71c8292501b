package policy

import (
	"fmt"
	"sort"
	"strings"

	"faculty-directory/internal/match"
	"faculty-directory/internal/member"
)

// violation is a validation problem before it is attached to a record.
type violation struct {
	code      string
	message   string
	fieldPath string
}

// checkAuthors accepts a string or a list of any entries. It returns a
// description of the problem, or "" when the value is acceptable.
func checkAuthors(v any) string {
	switch v.(type) {
	case string, []any:
		return ""
	default:
		return fmt.Sprintf("must be a string or a list, got %s", member.TypeName(v))
	}
}

// matchesType reports whether a raw value has the declared shape.
func matchesType(v any, t FieldType) bool {
	switch t {
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeNumber:
		switch v.(type) {
		case int, int64, uint64, float64:
			return true
		default:
			return false
		}
	case TypeList:
		items, ok := v.([]any)
		if !ok {
			return false
		}

		for _, item := range items {
			if _, ok := item.(string); !ok {
				return false
			}
		}

		return true
	default:
		return true
	}
}

// validateMaterials checks every material entry against the sub-schema.
// Positions in diagnostics are 1-based.
func validateMaterials(s *MaterialsSchema, v any) []violation {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return []violation{{
			code:      "invalid_materials",
			message:   fmt.Sprintf("field %q must be a non-empty list, got %s", s.Field, member.TypeName(v)),
			fieldPath: s.Field,
		}}
	}

	var out []violation

	for i, item := range items {
		pos := i + 1

		entry, ok := item.(map[string]any)
		if !ok {
			out = append(out, violation{
				code:      "invalid_material",
				message:   fmt.Sprintf("material %d must be a mapping, got %s", pos, member.TypeName(item)),
				fieldPath: fmt.Sprintf("%s[%d]", s.Field, pos),
			})

			continue
		}

		out = append(out, validateMaterial(s, pos, normalizeKeys(entry))...)
	}

	return out
}

func validateMaterial(s *MaterialsSchema, pos int, entry map[string]any) []violation {
	var out []violation

	path := func(field string) string {
		return fmt.Sprintf("%s[%d].%s", s.Field, pos, field)
	}

	for _, f := range s.Required {
		if v, ok := entry[match.NormalizeKey(f)]; !ok || blank(v) {
			out = append(out, violation{
				code:      "invalid_material",
				message:   fmt.Sprintf("material %d is missing %q", pos, f),
				fieldPath: path(f),
			})
		}
	}

	if len(s.Links) == 0 {
		return out
	}

	found := false

	for _, l := range s.Links {
		v, ok := entry[match.NormalizeKey(l)]
		if !ok {
			continue
		}

		found = true

		if !isHTTPURL(v) {
			out = append(out, violation{
				code:      "invalid_material",
				message:   fmt.Sprintf("material %d has invalid %q: must be a non-empty http(s) URL", pos, l),
				fieldPath: path(l),
			})
		}
	}

	if !found {
		out = append(out, violation{
			code:      "invalid_material",
			message:   fmt.Sprintf("material %d needs one of %s", pos, strings.Join(s.Links, ", ")),
			fieldPath: fmt.Sprintf("%s[%d]", s.Field, pos),
		})
	}

	return out
}

// normalizeKeys folds material keys; on collisions the lexically first
// original key wins.
func normalizeKeys(m map[string]any) map[string]any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	out := make(map[string]any, len(m))
	for _, k := range keys {
		nk := match.NormalizeKey(k)
		if _, taken := out[nk]; !taken {
			out[nk] = m[k]
		}
	}

	return out
}

func blank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

func isHTTPURL(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}

	s = strings.ToLower(strings.TrimSpace(s))

	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
