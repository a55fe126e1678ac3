// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// writeList writes up to limit items under a heading, then a count of the rest.
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", truncate(items[i], 50)))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintResumeAnalysis outputs a human-readable summary of a resume analysis.
func (p *Printer) PrintResumeAnalysis(a *types.ResumeAnalysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rating:     %.0f / 100\n", a.Rating))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", a.Experience))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", truncate(a.Education, 40)))
	sb.WriteString("\n")

	writeList(&sb, "Skills", a.SkillList(), maxItemsToShow)
	writeList(&sb, "Skill gaps", a.Feedback.SkillGaps, 3)
	writeList(&sb, "Formatting", a.Feedback.Formatting, 3)
	writeList(&sb, "ATS keywords", a.Feedback.ATSKeywords, 3)

	p.printBox("RESUME ANALYSIS", strings.TrimRight(sb.String(), "\n"))
}

// PrintJobAnalysis outputs the skills and experience a job asks for.
func (p *Printer) PrintJobAnalysis(j *types.JobAnalysis) {
	if j == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Required experience: %g years\n", j.RequiredExperience))
	sb.WriteString(fmt.Sprintf("Description length:  %d chars\n", len(j.Text)))
	sb.WriteString("\n")

	if len(j.RequiredSkills) == 0 {
		sb.WriteString("No known skills found\n")
	}
	writeList(&sb, "Required skills", j.RequiredSkills, maxItemsToShow)

	p.printBox("JOB ANALYSIS", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchResults outputs the top ranked resumes with scores and matched skills.
func (p *Printer) PrintMatchResults(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resumes scored: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, r.ResumeID, r.User))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", r.CompatibilityScore))
		if r.MatchedSkills != "" {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", truncate(r.MatchedSkills, 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(results)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", strings.TrimRight(sb.String(), "\n"))
}

// PrintValidation reports the outcome of a schema validation.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(schema string, problems []string) {
	if len(problems) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ VALID "+schema)
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(problems)))
	for i, problem := range problems {
		sb.WriteString(fmt.Sprintf("⚠ %s", problem))
		if i < len(problems)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA VIOLATIONS", sb.String())
}
