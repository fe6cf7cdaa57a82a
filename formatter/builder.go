package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/gnoswap-labs/axiom/check"
	"github.com/gnoswap-labs/axiom/internal/verify"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	reasonStyle  = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	noteStyle    = color.New(color.FgGreen, color.Bold)
	validStyle   = color.New(color.FgGreen, color.Bold)
)

// issueFormatter is the interface that wraps the IssueTemplate method.
type issueFormatter interface {
	IssueTemplate() string
}

func getIssueFormatter(reason string) issueFormatter {
	if reason == check.ReasonBuild {
		return &BuildIssueFormatter{}
	}
	return &GeneralIssueFormatter{}
}

// FormatIssues renders issues in order. Colours are used only when colored
// is set.
func FormatIssues(issues []check.Issue, colored bool) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(buildIssue(issue, getIssueFormatter(issue.Reason), colored))
	}
	return builder.String()
}

type IssueData struct {
	Reason  string
	File    string
	Proof   string
	Step    int
	Message string
	Padding string
}

func buildIssue(issue check.Issue, formatter issueFormatter, colored bool) string {
	data := IssueData{
		Reason:  issue.Reason,
		File:    issue.File,
		Proof:   issue.Proof,
		Step:    issue.Step,
		Message: issue.Message,
		Padding: "  ",
	}

	p := painter{colored: colored}
	funcMap := template.FuncMap{
		"header":  p.header,
		"gutter":  p.gutter,
		"message": p.message,
		"note":    p.note,
	}

	tmpl := template.Must(template.New("issue").Funcs(funcMap).Parse(formatter.IssueTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting issue: %v", err)
	}
	return buf.String()
}

type painter struct {
	colored bool
}

func (p painter) paint(c *color.Color, format string, a ...any) string {
	if !p.colored {
		return fmt.Sprintf(format, a...)
	}
	return c.Sprintf(format, a...)
}

func (p painter) header(reason, file, proof string, step int) string {
	s := p.paint(errorStyle, "error: ") + p.paint(reasonStyle, "%s\n", reason)
	s += p.paint(lineStyle, " --> ") + p.paint(fileStyle, "%s", location(file, proof, step))
	return s
}

func (p painter) gutter(padding string) string {
	return p.paint(lineStyle, "%s|", padding)
}

func (p painter) message(message, padding string) string {
	return p.paint(lineStyle, "%s= ", padding) + p.paint(messageStyle, "%s", message)
}

func (p painter) note(note string) string {
	return p.paint(noteStyle, "Note: ") + note
}

func location(file, proof string, step int) string {
	var parts []string
	if file != "" {
		parts = append(parts, file)
	}
	if proof != "" {
		parts = append(parts, proof)
	}
	if step > 0 {
		parts = append(parts, fmt.Sprintf("step %d", step))
	}
	if len(parts) == 0 {
		return "<source>"
	}
	return strings.Join(parts, ":")
}

// FormatReport renders a single verification report under name.
func FormatReport(name string, report verify.Report, colored bool) string {
	p := painter{colored: colored}
	if report.Valid {
		return p.paint(validStyle, "✓ ") + name + ": valid\n"
	}

	var b strings.Builder
	b.WriteString(p.paint(errorStyle, "✗ "))
	fmt.Fprintf(&b, "%s: invalid (%d %s)\n", name, len(report.Diagnostics), plural(len(report.Diagnostics), "problem"))
	for _, d := range report.Diagnostics {
		b.WriteString(p.paint(lineStyle, "  = "))
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSummary renders the closing line of a run.
func FormatSummary(files, issues int, colored bool) string {
	p := painter{colored: colored}
	if issues == 0 {
		return p.paint(validStyle, "all proofs verified") + fmt.Sprintf(" (%d %s)\n", files, plural(files, "file"))
	}
	return p.paint(errorStyle, "%d %s", issues, plural(issues, "issue")) +
		fmt.Sprintf(" in %d %s\n", files, plural(files, "file"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
