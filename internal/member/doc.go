// Package member turns raw record mappings into canonical directory members.
//
// Normalization never fails. It resolves key synonyms case-insensitively,
// coerces scalar and list fields, derives a URL-safe id and reports
// everything it had to guess as diagnostics. Rejecting a record is the
// policy package's job.
//
// # Id derivation
//
// The id is the slug of the first available source, in priority order:
//  1. an explicit "id" or "slug" field
//  2. the email address
//  3. the supplied name
//  4. the source file name without extension
//
// Slugs contain only [a-z0-9-], never start or end with "-" and fall back
// to "member" when nothing usable is left.
package member
