package site

import (
	"html/template"
	"strings"

	"faculty-directory/internal/member"
)

// View is the read-only member data handed to templates.
type View struct {
	member.Member

	Slug              string
	EmailHref         string
	ResearchFocusList []string
	// Affiliation is department, college and campus joined with " · ".
	Affiliation string
	// SearchText is the lowercased text the listing filters on.
	SearchText string
	// URL is the profile page URL including the base path.
	URL string
	// PhotoURL resolves Photo against the base path.
	PhotoURL string
	// NotesHTML is Notes rendered from Markdown and sanitized.
	NotesHTML template.HTML
	// ExtrasJSON is Extras as indented JSON, empty without extras.
	ExtrasJSON string
}

// IndexPage is the data for the listing template.
type IndexPage struct {
	Title    string
	BasePath string
	Members  []View
}

// Count returns the number of members on the page.
func (p IndexPage) Count() int {
	return len(p.Members)
}

// MemberPage is the data for a profile template.
type MemberPage struct {
	Title    string
	BasePath string
	Member   View
}

// entry is one element of members.json: the canonical member plus the
// derived fields templates also see.
type entry struct {
	member.Member

	Slug              string   `json:"slug"`
	EmailHref         string   `json:"email_href,omitempty"`
	ResearchFocusList []string `json:"research_focus_list"`
}

func newEntry(m member.Member) entry {
	return entry{
		Member:            m,
		Slug:              m.Slug(),
		EmailHref:         m.EmailHref(),
		ResearchFocusList: focusList(m),
	}
}

func focusList(m member.Member) []string {
	if m.ResearchFocus == nil {
		return []string{}
	}

	return m.ResearchFocus
}

// NewView derives the template view of m.
func NewView(m member.Member, paths Paths, notes *NotesRenderer) View {
	v := View{
		Member:            m,
		Slug:              m.Slug(),
		EmailHref:         m.EmailHref(),
		ResearchFocusList: focusList(m),
		Affiliation:       m.Affiliation(" · "),
		URL:               paths.Page(m.Slug()),
	}

	if m.Photo != "" {
		v.PhotoURL = paths.Asset(m.Photo)
	}

	search := append([]string{m.Name, m.Department, m.College, m.Campus}, v.ResearchFocusList...)
	v.SearchText = strings.ToLower(strings.Join(strings.Fields(strings.Join(search, " ")), " "))

	if notes != nil && m.Notes != "" {
		v.NotesHTML = notes.Render(m.Notes)
	}

	if len(m.Extras) > 0 {
		if b, err := encodeJSON(m.Extras); err == nil {
			v.ExtrasJSON = strings.TrimSpace(string(b))
		}
	}

	return v
}

// Paths builds site URLs under a base path.
type Paths struct {
	base string
}

// NewPaths normalizes basePath to "" or "/prefix" without a trailing slash.
func NewPaths(basePath string) Paths {
	b := strings.Trim(strings.TrimSpace(basePath), "/")
	if b == "" {
		return Paths{}
	}

	return Paths{base: "/" + b}
}

// Base returns the normalized base path.
func (p Paths) Base() string {
	return p.base
}

// Root returns the URL of the listing page.
func (p Paths) Root() string {
	return p.base + "/"
}

// Page returns the profile page URL for a slug.
func (p Paths) Page(slug string) string {
	return p.base + "/members/" + slug + "/"
}

// Asset resolves a site-relative path. Absolute URLs pass through.
func (p Paths) Asset(path string) string {
	lower := strings.ToLower(path)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(path, "//") {
		return path
	}

	return p.base + "/" + strings.TrimLeft(path, "/")
}
