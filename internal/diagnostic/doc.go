// Package diagnostic provides structured warnings, errors, and notes
// collected while building the directory.
//
// Diagnostics are accumulated across the whole run and reported together
// at the end, so one bad input file never hides problems in another.
//
// Key capabilities:
//   - Severity (info, warning, error) decides whether a record is kept
//   - Kind classifies where a problem came from (parse, validation,
//     integrity, fatal precondition, normalization)
//   - Source ties every note to a file name or record id
//   - Suggestions carry "did you mean" hints for unknown keys
package diagnostic
