package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RawRecord is one parsed input file: free-form keys mapped to scalars,
// lists or nested mappings.
type RawRecord map[string]any

// File identifies one input record file.
type File struct {
	// Path is the path used to open the file.
	Path string
	// Name is the base name, e.g. "ada.yml".
	Name string
	// Stem is the base name without extension, e.g. "ada".
	Stem string
	// Index is the encounter order within the input directory.
	Index int
}

// NewFile builds a File from a path and its encounter index.
func NewFile(path string, index int) File {
	name := filepath.Base(path)

	return File{
		Path:  path,
		Name:  name,
		Stem:  strings.TrimSuffix(name, filepath.Ext(name)),
		Index: index,
	}
}

// ParseError reports an input file that could not be read or is not a
// valid YAML mapping.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrNotMapping is returned when the top-level YAML value is not a mapping.
var ErrNotMapping = errors.New("top-level value must be a mapping")

// LoadFile loads and parses a record file from the given path.
func LoadFile(path string) (RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{File: filepath.Base(path), Err: fmt.Errorf("failed to read record file: %w", err)}
	}

	return Parse(filepath.Base(path), data)
}

// Parse parses YAML data into a RawRecord. An empty document yields an
// empty record rather than an error.
func Parse(name string, data []byte) (RawRecord, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, &ParseError{File: name, Err: err}
	}

	// Empty input or a document holding only comments.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return RawRecord{}, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return RawRecord{}, nil
	}

	if root.Kind != yaml.MappingNode {
		return nil, &ParseError{File: name, Err: fmt.Errorf("%w, got %s", ErrNotMapping, nodeKindName(root.Kind))}
	}

	rec := make(RawRecord, len(root.Content)/2)

	var merged []map[string]any

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, &ParseError{File: name, Err: fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)}
		}

		if keyNode.ShortTag() == mergeTag {
			maps, err := mergeSources(valueNode)
			if err != nil {
				return nil, &ParseError{File: name, Err: fmt.Errorf("line %d: %w", keyNode.Line, err)}
			}

			merged = append(merged, maps...)

			continue
		}

		key := keyNode.Value
		if _, dup := rec[key]; dup {
			return nil, &ParseError{File: name, Err: fmt.Errorf("line %d: key %q already defined", keyNode.Line, key)}
		}

		var value any

		err := valueNode.Decode(&value)
		if err != nil {
			return nil, &ParseError{File: name, Err: fmt.Errorf("line %d: key %q: %w", valueNode.Line, key, err)}
		}

		rec[key] = normalizeValue(value)
	}

	// Keys set on the record itself win over merged ones; among merged
	// mappings the earlier one wins.
	for _, m := range merged {
		for k, v := range m {
			if _, ok := rec[k]; !ok {
				rec[k] = normalizeValue(v)
			}
		}
	}

	return rec, nil
}

const mergeTag = "!!merge"

// mergeSources decodes the value of a "<<" key: a mapping or a list of
// mappings, usually given as aliases.
func mergeSources(node *yaml.Node) ([]map[string]any, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.MappingNode:
		m, err := decodeMapping(node)
		if err != nil {
			return nil, err
		}

		return []map[string]any{m}, nil
	case yaml.SequenceNode:
		out := make([]map[string]any, 0, len(node.Content))

		for _, item := range node.Content {
			if item.Kind == yaml.AliasNode && item.Alias != nil {
				item = item.Alias
			}

			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("merge list entries must be mappings, got %s", nodeKindName(item.Kind))
			}

			m, err := decodeMapping(item)
			if err != nil {
				return nil, err
			}

			out = append(out, m)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("merge value must be a mapping or a list of mappings, got %s", nodeKindName(node.Kind))
	}
}

func decodeMapping(node *yaml.Node) (map[string]any, error) {
	var value any

	if err := node.Decode(&value); err != nil {
		return nil, err
	}

	m, ok := normalizeValue(value).(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}

	return m, nil
}

// normalizeValue rewrites nested mappings with non-string keys into
// map[string]any so every record value can be JSON encoded.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, inner := range t {
			t[k] = normalizeValue(inner)
		}

		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[fmt.Sprint(k)] = normalizeValue(inner)
		}

		return out
	case []any:
		for i, inner := range t {
			t[i] = normalizeValue(inner)
		}

		return t
	default:
		return v
	}
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "unknown"
	}
}
