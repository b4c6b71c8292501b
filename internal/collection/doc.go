// Package collection assembles accepted members into the ordered,
// id-unique record set that every output is rendered from.
//
// Members are ordered by last name, then full name, both case-folded. Ties
// keep input encounter order. The first member to claim an id keeps it; a
// later member whose id came from its name falls back to its file stem, and
// any other collision excludes the later member with an integrity error.
package collection
