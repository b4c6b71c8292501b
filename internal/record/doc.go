// Package record discovers member record files and parses each one into an
// untyped RawRecord.
//
// No field interpretation happens here: key casing, synonyms and type
// coercion belong to the member package. The loader only guarantees that a
// record is a mapping with string keys whose nested values can be encoded
// as JSON.
package record
