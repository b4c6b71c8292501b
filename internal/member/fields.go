package member

import (
	"faculty-directory/internal/match"
)

// Canonical field names, as they appear in JSON output.
const (
	FieldID                = "id"
	FieldName              = "name"
	FieldEmail             = "email"
	FieldCampus            = "campus"
	FieldCollege           = "college"
	FieldDepartment        = "department"
	FieldTitle             = "title"
	FieldNotes             = "notes"
	FieldPhoto             = "photo"
	FieldWebsite           = "website"
	FieldResearchFocus     = "research_focus"
	FieldTeachingInterests = "teaching_interests"
	FieldSustainability    = "sustainability"
)

// fieldKind tells the normalizer how to coerce a canonical field.
type fieldKind int

const (
	kindScalar fieldKind = iota
	kindList
)

type fieldDef struct {
	name    string
	kind    fieldKind
	aliases []string // first alias wins when several are present
}

// synonyms is the static alias table. Aliases are compared after
// match.NormalizeKey, so "Research Interests", "research_interests" and
// "researchInterests" are one alias.
var synonyms = []fieldDef{
	{FieldID, kindScalar, []string{"id", "slug"}},
	{FieldName, kindScalar, []string{"name", "full name", "display name"}},
	{FieldEmail, kindScalar, []string{"email", "e-mail", "email address", "mail"}},
	{FieldCampus, kindScalar, []string{"campus", "campus name"}},
	{FieldCollege, kindScalar, []string{"college", "school"}},
	{FieldDepartment, kindScalar, []string{"department", "dept", "campus dept"}},
	{FieldTitle, kindScalar, []string{"title", "job title", "position", "rank"}},
	{FieldNotes, kindScalar, []string{"notes", "note", "bio", "biography", "about"}},
	{FieldPhoto, kindScalar, []string{"photo", "photo url", "image", "headshot", "picture"}},
	{FieldWebsite, kindScalar, []string{"website", "homepage", "home page", "url", "web"}},
	{FieldResearchFocus, kindList, []string{
		"research focus", "research", "focus", "research interests", "research areas", "interests",
	}},
	{FieldTeachingInterests, kindList, []string{"teaching interests", "teaching", "courses"}},
	{FieldSustainability, kindList, []string{
		"sustainability contributions", "sustainability", "sustainability focus",
	}},
}

type aliasRef struct {
	def      *fieldDef
	priority int
}

var (
	aliasIndex = buildAliasIndex()
	// knownAliases lists every normalized alias, used for suggestions.
	knownAliases = func() []string {
		var out []string
		for i := range synonyms {
			for _, a := range synonyms[i].aliases {
				out = append(out, match.NormalizeKey(a))
			}
		}

		return out
	}()
)

func buildAliasIndex() map[string]aliasRef {
	idx := make(map[string]aliasRef)

	for i := range synonyms {
		def := &synonyms[i]
		for p, a := range def.aliases {
			idx[match.NormalizeKey(a)] = aliasRef{def: def, priority: p}
		}
	}

	return idx
}

// CanonicalField resolves a free-form key to its canonical field name.
func CanonicalField(key string) (string, bool) {
	ref, ok := aliasIndex[match.NormalizeKey(key)]
	if !ok {
		return "", false
	}

	return ref.def.name, true
}

// ResolveKey maps a field name to the key used in Candidate.Fields: the
// canonical name for known aliases, the normalized key otherwise.
func ResolveKey(field string) string {
	if name, ok := CanonicalField(field); ok {
		return name
	}

	return match.NormalizeKey(field)
}
