package site

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// NotesRenderer turns member notes written in Markdown into safe HTML.
type NotesRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewNotesRenderer creates a renderer with GitHub-flavored Markdown and
// user-generated-content sanitizing.
func NewNotesRenderer() *NotesRenderer {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &NotesRenderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: p,
	}
}

// Render converts src to sanitized HTML. Markdown the parser rejects is
// shown as escaped text.
func (r *NotesRenderer) Render(src string) template.HTML {
	var buf bytes.Buffer

	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}

	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}
