package policy

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Names of the built-in policies.
const (
	NameLoose  = "loose"
	NameStrict = "strict"
)

// Loose only requires a name; everything else is optional.
func Loose() *Policy {
	return &Policy{
		Name:     NameLoose,
		Required: []string{"name"},
	}
}

// Strict is the course-material schema with legacy notebook rejection.
func Strict() *Policy {
	return &Policy{
		Name:      NameStrict,
		Required:  []string{"title", "description", "authors", "tags", "materials", "repository"},
		Forbidden: []string{"notebook", "notebooks"},
		Authors:   "authors",
		Optional: []FieldSpec{
			{Name: "title", Type: TypeString},
			{Name: "description", Type: TypeString},
			{Name: "tags", Type: TypeList},
			{Name: "repository", Type: TypeString},
			{Name: "level", Type: TypeString},
			{Name: "prerequisites", Type: TypeList},
			{Name: "estimated_hours", Type: TypeNumber},
		},
		Materials: &MaterialsSchema{
			Field:    "materials",
			Required: []string{"title", "description", "type", "duration"},
			Links:    []string{"github_url", "colab_url"},
		},
		FailOnError: true,
	}
}

var builtins = map[string]func() *Policy{
	NameLoose:  Loose,
	NameStrict: Strict,
}

// Names returns the built-in policy names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// Builtin returns a fresh copy of the named built-in policy.
func Builtin(name string) (*Policy, bool) {
	f, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}

	return f(), true
}

// Resolve returns the built-in policy with the given name, or loads the
// policy file at that path.
func Resolve(nameOrPath string) (*Policy, error) {
	if nameOrPath == "" {
		return Loose(), nil
	}

	if p, ok := Builtin(nameOrPath); ok {
		return p, nil
	}

	p, err := LoadFile(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("policy %q is neither built in (%s) nor a readable file: %w",
			nameOrPath, strings.Join(Names(), ", "), err)
	}

	return p, nil
}

// LoadFile loads and checks a YAML policy file.
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses and checks YAML policy data.
func Parse(data []byte) (*Policy, error) {
	var p Policy

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse policy YAML: %w", err)
	}

	for i := range p.Optional {
		if p.Optional[i].Type == "" {
			p.Optional[i].Type = TypeAny
		}
	}

	if err := p.Check(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	return &p, nil
}
