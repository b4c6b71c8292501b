package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"faculty-directory/internal/collection"
	"faculty-directory/internal/diagnostic"
	"faculty-directory/internal/member"
	"faculty-directory/internal/policy"
	"faculty-directory/internal/record"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitFatal    = 1
	ExitRejected = 2
)

// Config holds the settings for one run.
type Config struct {
	// InputDir is the directory holding one record file per member.
	InputDir string
	// Patterns select record files inside InputDir.
	Patterns []string
	// Workers bounds concurrent file loading; zero means GOMAXPROCS.
	Workers int
	// Policy validates every candidate; nil means the loose policy.
	Policy *policy.Policy
	// Member configures normalization.
	Member member.Config
}

// DefaultConfig returns the default run configuration.
func DefaultConfig() Config {
	return Config{
		InputDir: "data/members",
		Patterns: append([]string(nil), record.DefaultPatterns...),
		Policy:   policy.Loose(),
		Member:   member.DefaultConfig(),
	}
}

// FatalError aborts a run before any output is produced.
type FatalError struct {
	Diagnostic diagnostic.Diagnostic
	Err        error
}

func (e *FatalError) Error() string {
	return e.Diagnostic.String()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a completed run.
type Result struct {
	Collection *collection.Collection
	Policy     *policy.Policy
	// Files is the number of record files discovered.
	Files int
	// Rejected lists the sources of records that failed to parse or validate.
	Rejected []string
}

// Diagnostics returns every diagnostic raised during the run.
func (r *Result) Diagnostics() *diagnostic.Diagnostics {
	return r.Collection.Diagnostics()
}

// Accepted returns the number of records in the final collection.
func (r *Result) Accepted() int {
	return r.Collection.Len()
}

// Failed reports whether the run must end with ExitRejected: the policy
// fails on error and a record was rejected or an id collision excluded one.
func (r *Result) Failed() bool {
	if r.Policy == nil || !r.Policy.FailOnError {
		return false
	}

	return len(r.Rejected) > 0 || r.Diagnostics().HasKind(diagnostic.KindIntegrity)
}

// ExitCode maps the result onto a process exit code.
func (r *Result) ExitCode() int {
	if r.Failed() {
		return ExitRejected
	}

	return ExitOK
}

// Run executes the pipeline. It returns a *FatalError when the input
// directory is missing or holds no record files, and ctx's error when the
// run is cancelled.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pol := cfg.Policy
	if pol == nil {
		pol = policy.Loose()
	}

	files, err := record.Discover(cfg.InputDir, cfg.Patterns)
	if err != nil {
		return nil, fatal(cfg.InputDir, err)
	}

	logger.Info("Discovered record files",
		zap.String("dir", cfg.InputDir),
		zap.Int("files", len(files)),
		zap.String("policy", pol.Name))

	loaded, err := record.LoadAll(ctx, files, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	var (
		diags    diagnostic.Diagnostics
		accepted []*member.Candidate
		rejected []string
	)

	normalizer := member.NewNormalizer(cfg.Member)
	debug := logger.Core().Enabled(zapcore.DebugLevel)

	for _, l := range loaded {
		if l.Err != nil {
			diags.AddError(diagnostic.KindParse, "parse_error", parseMessage(l.Err), l.File.Name, "")
			rejected = append(rejected, l.File.Name)

			logger.Warn("Skipping unreadable record", zap.String("file", l.File.Name), zap.Error(l.Err))

			continue
		}

		if debug {
			logger.Debug("Raw record", zap.String("file", l.File.Name), zap.String("dump", dumper.Sdump(l.Record)))
		}

		c, notes := normalizer.Normalize(l.File, l.Record)
		diags.AddAll(notes)

		problems := policy.Validate(pol, c)
		diags.AddAll(problems)

		if diagnostic.HasErrors(problems) {
			rejected = append(rejected, c.Label())

			logger.Debug("Record rejected", zap.String("file", l.File.Name), zap.Int("errors", len(problems)))

			continue
		}

		accepted = append(accepted, c)
	}

	col := collection.Assemble(accepted, &diags)

	logger.Info("Assembled collection",
		zap.Int("accepted", col.Len()),
		zap.Int("rejected", len(rejected)),
		zap.Int("errors", len(diags.Errors)),
		zap.Int("warnings", len(diags.Warnings)))

	return &Result{
		Collection: col,
		Policy:     pol,
		Files:      len(files),
		Rejected:   rejected,
	}, nil
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func fatal(dir string, err error) error {
	var code string

	switch {
	case errors.Is(err, record.ErrNoInputFiles):
		code = "no_input_files"
	case errors.Is(err, record.ErrInputDirMissing):
		code = "input_dir_missing"
	case errors.Is(err, record.ErrInvalidPattern):
		code = "invalid_pattern"
	default:
		code = "input_unreadable"
	}

	return &FatalError{
		Diagnostic: diagnostic.New(diagnostic.DiagnosticError, diagnostic.KindFatal, code, err.Error(), dir, ""),
		Err:        err,
	}
}

// parseMessage drops the file prefix a *record.ParseError adds, since the
// diagnostic carries the file as its source.
func parseMessage(err error) string {
	var pe *record.ParseError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}

	return err.Error()
}
