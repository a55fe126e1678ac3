// Package resume infers skills, experience and education from resume text,
// rates the resume and writes improvement feedback.
package resume

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	baseRating       = 20.0
	pointsPerSkill   = 10.0
	pointsPerYear    = 5.0
	maxRating        = 100.0
	minSectionLines  = 5
	minSkillsForATS  = 3
	minSkillLineRune = 3
)

// Analyzer turns resume text into a types.ResumeAnalysis. It holds no
// mutable state and is safe for concurrent use.
type Analyzer struct {
	lex    *lexicon.Lexicon
	parser *parser
}

// Option configures an Analyzer.
type Option func(*Rules)

// WithPresentYear sets the year that open-ended ranges ("2021-present")
// end in.
func WithPresentYear(year int) Option {
	return func(r *Rules) { r.PresentYear = year }
}

// WithRules replaces the section rules entirely.
func WithRules(rules Rules) Option {
	return func(r *Rules) { *r = rules }
}

// NewAnalyzer builds an Analyzer over lex. A nil lex uses the built-in
// lexicon.
func NewAnalyzer(lex *lexicon.Lexicon, opts ...Option) (*Analyzer, error) {
	if lex == nil {
		lex = lexicon.Default()
	}
	rules := DefaultRules()
	for _, opt := range opts {
		opt(&rules)
	}
	p, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Analyzer{lex: lex, parser: p}, nil
}

// AnalyzeFile reads a DOCX resume and analyzes it. Unlike the extract
// package, an unreadable document is an error here.
func (a *Analyzer) AnalyzeFile(path string) (*types.ResumeAnalysis, error) {
	if extract.DetectFormat(path) != extract.FormatDocx {
		return nil, &InputError{Path: path, Message: "resume analysis reads .docx documents; extract other formats first"}
	}
	paragraphs, err := extract.DocxParagraphs(path)
	if err != nil {
		return nil, &InputError{Path: path, Message: "failed to read resume", Cause: err}
	}
	return a.AnalyzeText(strings.Join(paragraphs, "\n"))
}

// AnalyzeText analyzes resume text that was already extracted. The result
// is validated against the resume analysis schema; a validation error means
// the analyzer produced an impossible value and is returned as is.
func (a *Analyzer) AnalyzeText(fullText string) (*types.ResumeAnalysis, error) {
	log := logging.L()
	text := strings.ToLower(fullText)

	skills, skillsFound := a.Skills(text)
	years := a.ExperienceYears(text)
	education := a.Education(text)
	rating := Rating(len(skills), years)

	log.Debug().
		Strs("skills", skills).
		Float64("experience_years", years).
		Str("education", logging.Preview(education, 60)).
		Float64("rating", rating).
		Msg("analyzed resume")

	skillsStr := types.UnknownSkills
	if len(skills) > 0 {
		skillsStr = strings.Join(skills, ", ")
	}

	result, err := types.NewResumeAnalysis(
		skillsStr,
		FormatExperience(years),
		education,
		rating,
		a.feedback(fullText, skills, skillsFound),
	)
	if err != nil {
		return nil, err
	}
	if err := schemas.Validate(schemas.ResumeAnalysis, result); err != nil {
		return nil, fmt.Errorf("resume analysis failed schema validation: %w", err)
	}
	return result, nil
}

// Skills returns the de-duplicated skill lines of the skills section of
// lower-cased text, in order of first appearance, and whether a skills
// section was present at all.
func (a *Analyzer) Skills(text string) ([]string, bool) {
	body, ok := region(a.parser.skills, text)
	if !ok {
		return nil, false
	}
	return a.FilterSkillLines(strings.Split(strings.TrimSpace(body), "\n")), true
}

// FilterSkillLines trims candidate lines and keeps those that look like
// skills: non-blank, not contact details, and either a known skill or
// longer than two characters. Duplicates are dropped. Applying it to its
// own output returns the same list.
func (a *Analyzer) FilterSkillLines(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" || a.isContactLine(s) {
			continue
		}
		if !a.lex.IsKnownSkill(s) && utf8.RuneCountInString(s) < minSkillLineRune {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func (a *Analyzer) isContactLine(s string) bool {
	for _, prefix := range a.parser.rules.SkipPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// ExperienceYears sums the year spans found in the experience section of
// lower-cased text. Spans are not checked for order or overlap.
func (a *Analyzer) ExperienceYears(text string) float64 {
	body, ok := region(a.parser.experience, text)
	if !ok {
		return 0
	}

	var total float64
	for _, m := range a.parser.dateRange.FindAllStringSubmatch(body, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := a.parser.rules.PresentYear
		if !strings.EqualFold(m[2], a.parser.rules.PresentWord) {
			if end, err = strconv.Atoi(m[2]); err != nil {
				continue
			}
		}
		total += float64(end - start)
	}
	return total
}

// Education returns the trimmed education section of lower-cased text, or
// types.EducationUnspecified when there is none.
func (a *Analyzer) Education(text string) string {
	body, ok := region(a.parser.education, text)
	if !ok {
		return types.EducationUnspecified
	}
	return strings.TrimSpace(body)
}

// Rating scores a resume from its skill count and years of experience:
// 20 + 10 per skill + 5 per year, kept within [0, 100].
func Rating(skillCount int, years float64) float64 {
	r := baseRating + pointsPerSkill*float64(skillCount) + pointsPerYear*years
	return math.Max(0, math.Min(r, maxRating))
}

// FormatExperience renders years as "<N.N> years".
func FormatExperience(years float64) string {
	return fmt.Sprintf("%.1f years", years)
}
