package policy

import (
	"errors"
	"fmt"
	"strings"
)

// FieldType is the declared shape of a typed field.
type FieldType string

const (
	TypeString FieldType = "string"
	TypeNumber FieldType = "number"
	TypeList   FieldType = "list"
	TypeAny    FieldType = "any"
)

// IsValid returns true if the type is a recognized value.
func (t FieldType) IsValid() bool {
	return t == TypeString || t == TypeNumber || t == TypeList || t == TypeAny
}

// describe renders the type for diagnostics.
func (t FieldType) describe() string {
	switch t {
	case TypeList:
		return "a list of strings"
	case TypeNumber:
		return "a number"
	case TypeString:
		return "a string"
	default:
		return string(t)
	}
}

// FieldSpec declares the type of one field.
type FieldSpec struct {
	Name string    `yaml:"name"`
	Type FieldType `yaml:"type"`
}

// MaterialsSchema validates a list of nested material entries.
type MaterialsSchema struct {
	// Field holds the list of materials.
	Field string `yaml:"field"`
	// Required fields every material must carry.
	Required []string `yaml:"required"`
	// Links lists acceptable link fields; at least one must be present and
	// every present link must be an http(s) URL.
	Links []string `yaml:"links"`
}

// Policy is a declarative validation schema.
type Policy struct {
	// Name identifies the policy in logs and reports.
	Name string `yaml:"name"`
	// Required fields must all be present and non-empty.
	Required []string `yaml:"required,omitempty"`
	// Optional fields are type-checked when present.
	Optional []FieldSpec `yaml:"optional,omitempty"`
	// Forbidden fields reject a record whenever they appear.
	Forbidden []string `yaml:"forbidden,omitempty"`
	// Authors names a field that must be a string or a list of strings.
	Authors string `yaml:"authors,omitempty"`
	// Materials is the optional nested materials schema.
	Materials *MaterialsSchema `yaml:"materials,omitempty"`
	// FailOnError makes the build exit non-zero when any record is rejected.
	FailOnError bool `yaml:"fail_on_error,omitempty"`
}

// Check reports structural problems with the policy itself.
func (p *Policy) Check() error {
	var errs []error

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("policy name is required"))
	}

	for i, f := range p.Optional {
		if strings.TrimSpace(f.Name) == "" {
			errs = append(errs, fmt.Errorf("optional[%d]: name is required", i))
		}

		if !f.Type.IsValid() {
			errs = append(errs, fmt.Errorf("optional[%d] %q: invalid type %q (expected string, number, list or any)",
				i, f.Name, f.Type))
		}
	}

	if m := p.Materials; m != nil {
		if strings.TrimSpace(m.Field) == "" {
			errs = append(errs, errors.New("materials: field is required"))
		}
	}

	return errors.Join(errs...)
}
