package member

import (
	"strings"

	"faculty-directory/internal/common"
	"faculty-directory/internal/record"
)

// Member is the canonical, schema-conformant directory entry.
// Optional scalar fields are empty when absent and omitted from JSON.
type Member struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Campus     string `json:"campus,omitempty"`
	College    string `json:"college,omitempty"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Photo      string `json:"photo,omitempty"`
	Website    string `json:"website,omitempty"`

	ResearchFocus     []string `json:"research_focus"`
	TeachingInterests []string `json:"teaching_interests"`
	Sustainability    []string `json:"sustainability"`

	// Extras keeps unrecognized input keys verbatim; nil when there are none.
	Extras map[string]any `json:"extras,omitempty"`

	// EditURL links to the source file upstream when a repository is configured.
	EditURL string `json:"edit_url,omitempty"`

	// Source is the input file name.
	Source string `json:"-"`
}

// Slug is the URL path segment for the member's profile page.
func (m *Member) Slug() string {
	return m.ID
}

// EmailHref returns a mailto link, or "" without an email.
func (m *Member) EmailHref() string {
	if m.Email == "" {
		return ""
	}

	return "mailto:" + m.Email
}

// Affiliation joins department, college and campus with sep, skipping blanks.
func (m *Member) Affiliation(sep string) string {
	var parts []string

	for _, p := range []string{m.Department, m.College, m.Campus} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, sep)
}

// scalar returns a pointer to the canonical scalar field with the given name.
func (m *Member) scalar(name string) *string {
	switch name {
	case FieldID:
		return &m.ID
	case FieldName:
		return &m.Name
	case FieldEmail:
		return &m.Email
	case FieldCampus:
		return &m.Campus
	case FieldCollege:
		return &m.College
	case FieldDepartment:
		return &m.Department
	case FieldTitle:
		return &m.Title
	case FieldNotes:
		return &m.Notes
	case FieldPhoto:
		return &m.Photo
	case FieldWebsite:
		return &m.Website
	default:
		return nil
	}
}

// list returns a pointer to the canonical list field with the given name.
func (m *Member) list(name string) *[]string {
	switch name {
	case FieldResearchFocus:
		return &m.ResearchFocus
	case FieldTeachingInterests:
		return &m.TeachingInterests
	case FieldSustainability:
		return &m.Sustainability
	default:
		return nil
	}
}

// Has reports whether the canonical field carries a value.
func (m *Member) Has(name string) bool {
	if s := m.scalar(name); s != nil {
		return *s != ""
	}

	if l := m.list(name); l != nil {
		return len(*l) > 0
	}

	return false
}

// IDSource records which input the id was derived from.
type IDSource int

const (
	IDFromExplicit IDSource = iota
	IDFromEmail
	IDFromName
	IDFromFilename
)

// String returns a human-readable id source name.
func (s IDSource) String() string {
	switch s {
	case IDFromExplicit:
		return "explicit"
	case IDFromEmail:
		return "email"
	case IDFromName:
		return "name"
	case IDFromFilename:
		return "filename"
	default:
		return common.UnknownStr
	}
}

// Candidate is a normalized member that has not been validated yet.
type Candidate struct {
	Member Member
	File   record.File
	// Raw is the record as loaded.
	Raw record.RawRecord
	// Fields maps resolved keys to raw values: canonical names for
	// recognized keys, normalized keys for everything else.
	Fields map[string]any
	// NameProvided is false when Name holds the placeholder.
	NameProvided bool
	IDSource     IDSource
}

// Lookup returns the raw value for a field name, resolving synonyms.
func (c *Candidate) Lookup(field string) (any, bool) {
	key := ResolveKey(field)
	v, ok := c.Fields[key]

	return v, ok
}

// Present reports whether a field carries a non-empty value. Canonical
// fields use their normalized value; the name placeholder does not count.
func (c *Candidate) Present(field string) bool {
	key := ResolveKey(field)

	if key == FieldName {
		return c.NameProvided
	}

	if c.Member.scalar(key) != nil || c.Member.list(key) != nil {
		return c.Member.Has(key)
	}

	v, ok := c.Fields[key]
	if !ok {
		return false
	}

	return !isEmptyValue(v)
}

// Label names the candidate in diagnostics.
func (c *Candidate) Label() string {
	if c.File.Name != "" {
		return c.File.Name
	}

	return c.Member.ID
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return len(t) == 0 || common.FirstNonEmpty(t) == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
