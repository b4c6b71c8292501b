// Package pipeline runs one directory build: discover, load, normalize,
// validate and assemble.
//
// Per-record problems never stop the run; they are collected as
// diagnostics and reported together. Only a missing input directory or an
// empty one aborts, as a *FatalError, before anything is written.
package pipeline
