// Package job extracts required skills and required experience from free
// text job descriptions.
package job

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// experiencePattern matches a number followed by a duration or the word
// "experience", e.g. "5 years", "3yr", "6 months", "2 experience".
var experiencePattern = regexp.MustCompile(`(\d+)\s*(?:year|yr|month|experience)`)

const (
	monthWord      = "month"
	monthsPerYear  = 12.0
	monthThreshold = 12.0
)

// Analyzer turns job descriptions into types.JobAnalysis values. It holds no
// mutable state and is safe for concurrent use.
type Analyzer struct {
	lex       *lexicon.Lexicon
	tokenizer nlp.Tokenizer
}

// NewAnalyzer builds an Analyzer. A nil lex uses the built-in lexicon and a
// nil tokenizer uses nlp.NewAnalyzer.
func NewAnalyzer(lex *lexicon.Lexicon, tokenizer nlp.Tokenizer) *Analyzer {
	if lex == nil {
		lex = lexicon.Default()
	}
	if tokenizer == nil {
		tokenizer = nlp.NewAnalyzer()
	}
	return &Analyzer{lex: lex, tokenizer: tokenizer}
}

// Analyze extracts the required skills and experience from description.
// The description is returned unmodified in Text. The only error is a
// schema validation failure of the result.
func (a *Analyzer) Analyze(description string) (*types.JobAnalysis, error) {
	lower := strings.ToLower(description)

	result := &types.JobAnalysis{
		RequiredSkills:     a.RequiredSkills(lower),
		RequiredExperience: RequiredExperience(lower),
		Text:               description,
	}

	logging.L().Debug().
		Strs("required_skills", result.RequiredSkills).
		Float64("required_experience", result.RequiredExperience).
		Msg("analyzed job description")

	if err := schemas.Validate(schemas.JobAnalysis, result); err != nil {
		return nil, fmt.Errorf("job analysis failed schema validation: %w", err)
	}
	return result, nil
}

// RequiredSkills returns the sorted, unique tokens of lower-cased text that
// are job skill keywords. Multi-word keywords never match a single token.
func (a *Analyzer) RequiredSkills(text string) []string {
	seen := make(map[string]struct{})
	for _, tok := range a.tokenizer.Tokenize(text) {
		if a.lex.IsJobSkill(tok) {
			seen[tok] = struct{}{}
		}
	}

	skills := make([]string, 0, len(seen))
	for s := range seen {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// RequiredExperience sums the experience figures in lower-cased text.
//
// A figure below 12 counts as months when the word "month" appears anywhere
// in the text, not only next to that figure. "2 years and 3 months"
// therefore reads as 5 months. Existing job records were scored this way,
// so the rule is kept.
func RequiredExperience(text string) float64 {
	mentionsMonths := strings.Contains(text, monthWord)

	var total float64
	for _, m := range experiencePattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if n < monthThreshold && mentionsMonths {
			total += n / monthsPerYear
		} else {
			total += n
		}
	}
	return total
}
