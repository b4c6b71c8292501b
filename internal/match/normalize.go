package match

import (
	"strings"
	"unicode"
)

// NormalizeKey folds a record key into the form used for synonym lookup.
// The normalization pipeline:
// 1. Split on separators (_, -, whitespace) and CamelCase boundaries.
// 2. Lowercase every token.
// 3. Join tokens with a single space.
//
// "Research Interests", "research_interests" and "researchInterests" all
// normalize to "research interests".
func NormalizeKey(s string) string {
	return strings.Join(TokenizeIdent(s), " ")
}

// NormalizeIdent collapses an identifier to lowercase with all separators
// removed. Used for fuzzy comparison where token boundaries do not matter.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into normalized lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or separated string into tokens.
// Examples:
//   - "ResearchFocus" -> ["Research", "Focus"]
//   - "campus_dept" -> ["campus", "dept"]
//   - "PhotoURL" -> ["Photo", "URL"]
//   - "ORCIDProfile" -> ["ORCID", "Profile"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune separates key tokens.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "researchFocus" -> split before 'F'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "ORCIDProfile" -> "ORCID" + "Profile", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
