package member

import (
	"regexp"
	"strings"
	"unicode"
)

// FallbackSlug is used when slugification leaves nothing.
const FallbackSlug = "member"

var (
	slugInvalid    = regexp.MustCompile(`[^a-z0-9\s_-]`)
	slugSeparators = regexp.MustCompile(`[\s_]+`)
	slugDashes     = regexp.MustCompile(`-+`)
)

// Slugify lowercases text, strips everything outside [a-z0-9 _-], turns
// whitespace and underscore runs into "-", and trims dashes. It is
// idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(strings.Map(spaceToASCII, text)))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		return FallbackSlug
	}

	return s
}

// spaceToASCII maps Unicode whitespace such as U+00A0 to ' ' so the
// ASCII-only \s classes below treat it as a separator.
func spaceToASCII(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}

	return r
}

// emailSlug keeps the parts of an address apart so "ada.l@uni.edu" becomes
// "ada-l-uni-edu" rather than "adaluniedu".
func emailSlug(email string) string {
	return Slugify(strings.NewReplacer("@", " ", ".", " ", "+", " ").Replace(email))
}
