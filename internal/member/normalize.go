package member

import (
	"fmt"
	"net/url"
	"sort"

	"faculty-directory/internal/diagnostic"
	"faculty-directory/internal/match"
	"faculty-directory/internal/record"
)

// Config holds normalization settings.
type Config struct {
	// PlaceholderName is used when a record has no name.
	PlaceholderName string
	// RecommendedFields produce a warning when missing. Unlike required
	// fields they never reject a record.
	RecommendedFields []string
	// Repository is the upstream repository base URL used for edit links,
	// e.g. "https://github.com/org/directory". Empty disables edit links.
	Repository string
	// Branch is the repository branch for edit links.
	Branch string
	// SourceDir is the repository-relative directory holding record files.
	SourceDir string
	// SuggestUnknown enables "did you mean" notes for unrecognized keys.
	SuggestUnknown bool
}

// DefaultConfig returns the default normalization configuration.
func DefaultConfig() Config {
	return Config{
		PlaceholderName:   "Unnamed Member",
		RecommendedFields: []string{FieldEmail, FieldDepartment},
		Branch:            "main",
		SourceDir:         "data/members",
		SuggestUnknown:    true,
	}
}

// Normalizer converts raw records into candidates.
type Normalizer struct {
	config Config
}

// NewNormalizer creates a Normalizer with the given configuration.
func NewNormalizer(config Config) *Normalizer {
	if config.PlaceholderName == "" {
		config.PlaceholderName = DefaultConfig().PlaceholderName
	}

	return &Normalizer{config: config}
}

// hit is one raw key that resolved to a canonical field.
type hit struct {
	key      string
	priority int
	value    any
}

// Normalize maps raw onto the canonical schema. It never fails; everything
// it had to drop or guess is returned as diagnostics.
func (n *Normalizer) Normalize(file record.File, raw record.RawRecord) (*Candidate, []diagnostic.Diagnostic) {
	src := file.Name

	c := &Candidate{
		File:   file,
		Raw:    raw,
		Fields: make(map[string]any, len(raw)),
		Member: Member{
			Source:            file.Name,
			ResearchFocus:     []string{},
			TeachingInterests: []string{},
			Sustainability:    []string{},
		},
	}

	var diags []diagnostic.Diagnostic

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	hits := make(map[string][]hit)
	extras := make(map[string]any)

	for _, k := range keys {
		nk := match.NormalizeKey(k)

		if ref, ok := aliasIndex[nk]; ok {
			hits[ref.def.name] = append(hits[ref.def.name], hit{key: k, priority: ref.priority, value: raw[k]})
			continue
		}

		extras[k] = raw[k]
		if _, taken := c.Fields[nk]; !taken && nk != "" {
			c.Fields[nk] = raw[k]
		}

		if n.config.SuggestUnknown && nk != "" {
			if s := match.Suggest(nk, knownAliases, match.DefaultSuggestThreshold, 1); len(s) > 0 {
				d := diagnostic.New(diagnostic.DiagnosticInfo, diagnostic.KindNormalization, "unknown_field",
					fmt.Sprintf("unrecognized key %q kept in extras", k), src, k)
				d.Suggestions = s
				diags = append(diags, d)
			}
		}
	}

	for i := range synonyms {
		def := &synonyms[i]

		hs := hits[def.name]
		if len(hs) == 0 {
			continue
		}

		diags = append(diags, n.resolveField(c, def, hs, src)...)
	}

	if len(extras) > 0 {
		c.Member.Extras = extras
	}

	c.NameProvided = c.Member.Name != ""
	if !c.NameProvided {
		c.Member.Name = n.config.PlaceholderName
	}

	c.Member.ID, c.IDSource = n.deriveID(c)

	for _, f := range n.config.RecommendedFields {
		if !c.Present(f) {
			diags = append(diags, diagnostic.New(diagnostic.DiagnosticWarning, diagnostic.KindNormalization,
				"missing_recommended", fmt.Sprintf("recommended field %q is missing", f), src, f))
		}
	}

	if editURL, err := n.editURL(file); err != nil {
		diags = append(diags, diagnostic.New(diagnostic.DiagnosticWarning, diagnostic.KindNormalization,
			"edit_url", fmt.Sprintf("cannot build edit link: %v", err), src, ""))
	} else {
		c.Member.EditURL = editURL
	}

	return c, diags
}

// resolveField picks the winning alias for one canonical field and stores
// its coerced value. The first non-empty alias in table order wins.
func (n *Normalizer) resolveField(c *Candidate, def *fieldDef, hs []hit, src string) []diagnostic.Diagnostic {
	sort.SliceStable(hs, func(i, j int) bool {
		return hs[i].priority < hs[j].priority
	})

	var (
		diags    []diagnostic.Diagnostic
		winner   *hit
		firstRaw *hit
	)

	for i := range hs {
		h := &hs[i]

		if isEmptyValue(h.value) {
			continue
		}

		if winner != nil {
			diags = append(diags, diagnostic.New(diagnostic.DiagnosticWarning, diagnostic.KindNormalization,
				"alias_conflict",
				fmt.Sprintf("key %q ignored, %q already provides %s", h.key, winner.key, def.name),
				src, def.name))

			continue
		}

		if firstRaw == nil {
			firstRaw = h
		}

		switch def.kind {
		case kindList:
			list, ok := stringList(h.value)
			if !ok {
				diags = append(diags, uncoercible(src, h, def.name, "list of text"))
				continue
			}

			*c.Member.list(def.name) = list
		default:
			s, ok := scalarString(h.value)
			if !ok {
				diags = append(diags, uncoercible(src, h, def.name, "text"))
				continue
			}

			*c.Member.scalar(def.name) = s
		}

		winner = h
		c.Fields[def.name] = h.value
	}

	// Keep the raw value of an all-empty or uncoercible field so the
	// validator can report its shape.
	if winner == nil {
		if firstRaw == nil {
			firstRaw = &hs[0]
		}

		c.Fields[def.name] = firstRaw.value
	}

	return diags
}

func uncoercible(src string, h *hit, field, want string) diagnostic.Diagnostic {
	return diagnostic.New(diagnostic.DiagnosticWarning, diagnostic.KindNormalization, "uncoercible_value",
		fmt.Sprintf("key %q holds a %s, expected %s; value dropped", h.key, TypeName(h.value), want),
		src, field)
}

// deriveID applies the id priority: explicit id/slug, email, name, file stem.
func (n *Normalizer) deriveID(c *Candidate) (string, IDSource) {
	m := &c.Member

	switch {
	case m.ID != "":
		return Slugify(m.ID), IDFromExplicit
	case m.Email != "":
		return emailSlug(m.Email), IDFromEmail
	case c.NameProvided:
		return Slugify(m.Name), IDFromName
	default:
		return Slugify(c.File.Stem), IDFromFilename
	}
}

func (n *Normalizer) editURL(file record.File) (string, error) {
	if n.config.Repository == "" || file.Name == "" {
		return "", nil
	}

	branch := n.config.Branch
	if branch == "" {
		branch = DefaultConfig().Branch
	}

	elems := []string{"blob", branch}
	if n.config.SourceDir != "" {
		elems = append(elems, n.config.SourceDir)
	}

	return url.JoinPath(n.config.Repository, append(elems, file.Name)...)
}
