// Package match provides key normalization and Levenshtein-based
// suggestions for reconciling free-form record keys with the canonical
// member schema.
//
// Key functions:
//   - NormalizeKey: folds a free-form key into its lookup form
//   - NormalizeIdent: collapses a key to bare lowercase letters and digits
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known keys close to an unknown one
package match
