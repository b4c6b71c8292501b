package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"faculty-directory/internal/diagnostic"
)

// Styles controls how the report is colored.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles returns the colored terminal styles.
func NewStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10b981")).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444")).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f59e0b")),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3b82f6")),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280")),
	}
}

// PlainStyles returns styles that add no escape codes.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()

	return Styles{Title: plain, Success: plain, Error: plain, Warning: plain, Info: plain, Muted: plain}
}

// Summary holds the run facts printed above the diagnostics.
type Summary struct {
	Accepted int
	Files    int
	Rejected int
	Policy   string
	// OutDir is where the site was written; empty for check-only runs.
	OutDir string
}

// Print writes the summary line followed by the itemized diagnostics.
func Print(w io.Writer, s Summary, diags *diagnostic.Diagnostics, styles Styles) error {
	var b strings.Builder

	headline := fmt.Sprintf("%d of %d record(s) accepted", s.Accepted, s.Files)
	if s.Policy != "" {
		headline += fmt.Sprintf(" (policy %s)", s.Policy)
	}

	status := styles.Success
	if s.Rejected > 0 || (diags != nil && diags.HasErrors()) {
		status = styles.Error
	}

	b.WriteString(status.Render(headline))

	if s.OutDir != "" {
		b.WriteString(styles.Muted.Render(" → " + s.OutDir))
	}

	b.WriteString("\n")

	if diags != nil && diags.Len() > 0 {
		b.WriteString(styles.Muted.Render(counts(diags)))
		b.WriteString("\n\n")

		for _, d := range diags.All() {
			b.WriteString(Line(d, styles))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// PrintFatal reports a diagnostic that aborted the run.
func PrintFatal(w io.Writer, d diagnostic.Diagnostic, styles Styles) error {
	_, err := fmt.Fprintf(w, "%s %s\n", styles.Error.Render("fatal:"), d.String())

	return err
}

// Line formats one diagnostic with a severity label.
func Line(d diagnostic.Diagnostic, styles Styles) string {
	var style lipgloss.Style

	switch d.Severity {
	case diagnostic.DiagnosticError:
		style = styles.Error
	case diagnostic.DiagnosticWarning:
		style = styles.Warning
	default:
		style = styles.Info
	}

	return style.Render(fmt.Sprintf("%-7s", d.Severity.String())) + " " + d.String()
}

func counts(d *diagnostic.Diagnostics) string {
	return fmt.Sprintf("%s, %s, %s",
		plural(len(d.Errors), "error"),
		plural(len(d.Warnings), "warning"),
		plural(len(d.Infos), "note"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
