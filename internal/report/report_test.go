package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faculty-directory/internal/diagnostic"
)

func TestPrint(t *testing.T) {
	var diags diagnostic.Diagnostics

	diags.AddInfo(diagnostic.KindNormalization, "unknown_field", `unrecognized key "emial" kept in extras`, "ada.yml", "emial")
	diags.AddWarning(diagnostic.KindNormalization, "missing_recommended", `recommended field "email" is missing`, "bob.yml", "email")
	diags.AddError(diagnostic.KindParse, "parse_error", "yaml: line 1: did not find expected ',' or ']'", "broken.yml", "")

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, Summary{Accepted: 2, Files: 3, Rejected: 1, Policy: "loose", OutDir: "site"}, &diags, PlainStyles()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, "2 of 3 record(s) accepted (policy loose) → site", lines[0])
	assert.Equal(t, "1 error, 1 warning, 1 note", lines[1])
	assert.Empty(t, lines[2])
	assert.Equal(t, "error   [broken.yml]: [parse_error] yaml: line 1: did not find expected ',' or ']'", lines[3])
	assert.Equal(t, `warning [bob.yml] email: [missing_recommended] recommended field "email" is missing`, lines[4])
	assert.Equal(t, `info    [ada.yml] emial: [unknown_field] unrecognized key "emial" kept in extras`, lines[5])
}

func TestPrint_Clean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, Summary{Accepted: 1, Files: 1}, nil, PlainStyles()))

	assert.Equal(t, "1 of 1 record(s) accepted\n", buf.String())
}

func TestPrintFatal(t *testing.T) {
	d := diagnostic.New(diagnostic.DiagnosticError, diagnostic.KindFatal, "no_input_files", "no input files found", "data/members", "")

	var buf bytes.Buffer
	require.NoError(t, PrintFatal(&buf, d, PlainStyles()))

	assert.Equal(t, "fatal: [data/members]: [no_input_files] no input files found\n", buf.String())
}

func TestNewStyles(t *testing.T) {
	s := NewStyles()

	assert.True(t, s.Error.GetBold())
	assert.Contains(t, s.Error.Render("x"), "x")
}
