package diagnostic

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies the stage that produced a diagnostic.
type Kind int

const (
	KindNormalization Kind = iota // field normalization notes, never rejecting
	KindParse                     // input file is not valid YAML
	KindValidation                // record violates the active policy
	KindIntegrity                 // cross-record defect such as duplicate ids
	KindFatal                     // precondition that stops the whole run
)
