// Package policy declares and enforces validation policies for member
// records.
//
// A Policy is data, not code: required, typed, and forbidden fields plus an
// optional "materials" sub-schema. Two policies are built in:
//
//   - loose: only a non-empty name is required (the default)
//   - strict: a fixed required-field list, legacy notebook fields rejected,
//     and every material entry checked for its own fields and an http(s)
//     link
//
// Further policies can be loaded from YAML:
//
//	name: course-catalog
//	required: [title, description, authors]
//	forbidden: [notebook]
//	authors: authors
//	optional:
//	  - name: tags
//	    type: list
//	  - name: hours
//	    type: number
//	materials:
//	  field: materials
//	  required: [title, type]
//	  links: [github_url, colab_url]
//	fail_on_error: true
//
// Field names are matched the same way record keys are: case-insensitive,
// with "_", "-" and spaces treated alike, and member synonyms resolved.
package policy
