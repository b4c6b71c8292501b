package site

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Template names looked up in a templates directory.
const (
	IndexTemplate  = "index.html"
	MemberTemplate = "member.html"
)

//go:embed templates/*.html
var builtinFS embed.FS

// Templates holds the parsed listing and profile templates.
type Templates struct {
	index  *template.Template
	member *template.Template

	// Custom lists the template names taken from the templates directory.
	Custom []string
}

// LoadTemplates parses index.html and member.html from dir, falling back to
// the built-in template for each one dir does not provide. An empty dir
// uses the built-ins only.
func LoadTemplates(dir string, paths Paths) (*Templates, error) {
	t := &Templates{}

	var err error

	t.index, err = t.load(dir, IndexTemplate, paths)
	if err != nil {
		return nil, err
	}

	t.member, err = t.load(dir, MemberTemplate, paths)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Templates) load(dir, name string, paths Paths) (*template.Template, error) {
	tmpl := template.New(name).Funcs(funcMap(paths))

	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, name))

		switch {
		case err == nil:
			parsed, perr := tmpl.Parse(string(data))
			if perr != nil {
				return nil, fmt.Errorf("parsing template %s: %w", filepath.Join(dir, name), perr)
			}

			t.Custom = append(t.Custom, name)

			return parsed, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("reading template %s: %w", filepath.Join(dir, name), err)
		}
	}

	data, err := builtinFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading built-in template %s: %w", name, err)
	}

	parsed, err := tmpl.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing built-in template %s: %w", name, err)
	}

	return parsed, nil
}

// RenderIndex executes the listing template.
func (t *Templates) RenderIndex(w io.Writer, page IndexPage) error {
	if err := t.index.Execute(w, page); err != nil {
		return fmt.Errorf("rendering %s: %w", IndexTemplate, err)
	}

	return nil
}

// RenderMember executes the profile template.
func (t *Templates) RenderMember(w io.Writer, page MemberPage) error {
	if err := t.member.Execute(w, page); err != nil {
		return fmt.Errorf("rendering %s for %s: %w", MemberTemplate, page.Member.Slug, err)
	}

	return nil
}

func funcMap(paths Paths) template.FuncMap {
	return template.FuncMap{
		"root":  paths.Root,
		"page":  paths.Page,
		"asset": paths.Asset,
		"join":  strings.Join,
		"lower": strings.ToLower,
		"compact": func(values ...string) []string {
			out := make([]string, 0, len(values))
			for _, v := range values {
				if v != "" {
					out = append(out, v)
				}
			}

			return out
		},
	}
}
