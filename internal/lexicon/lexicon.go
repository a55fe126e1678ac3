// Package lexicon holds the reference word lists shared by the resume
// analyzer, the job analyzer and the feedback generator.
//
// A Lexicon is immutable once built. The built-in lists are embedded in the
// binary; a replacement can be loaded from a JSON file with the same shape.
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/jonathan/resume-matcher/internal/schemas"
)

//go:embed default.json
var defaultData []byte

// Data is the serialized form of a lexicon.
type Data struct {
	KnownSkills      []string `json:"known_skills"`
	JobSkillKeywords []string `json:"job_skill_keywords"`
	TrendingTech     []string `json:"trending_tech"`
	TrendingSoft     []string `json:"trending_soft"`
	FeedbackTech     []string `json:"feedback_tech"`
	FeedbackSoft     []string `json:"feedback_soft"`
	ATSKeywords      []string `json:"ats_keywords"`
}

// Lexicon is a read-only set of word lists. All lookups are case-sensitive
// and expect lower-cased input.
type Lexicon struct {
	data Data

	known    map[string]struct{}
	jobSkill map[string]struct{}
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the built-in lexicon. It panics if the embedded data is
// invalid, which can only happen through a broken build.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := parse("(built-in)", defaultData)
		if err != nil {
			panic(fmt.Sprintf("built-in lexicon: %v", err))
		}
		defaultLex = lex
	})
	return defaultLex
}

// Parse builds a Lexicon from a JSON document.
func Parse(data []byte) (*Lexicon, error) {
	return parse("(inline)", data)
}

// Load reads and parses a lexicon file.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Message: "failed to read file", Cause: err}
	}
	return parse(path, data)
}

// New builds a Lexicon from in-memory lists. Entries are lower-cased and
// trimmed; duplicates are dropped keeping the first occurrence.
func New(d Data) *Lexicon {
	d = Data{
		KnownSkills:      normalize(d.KnownSkills),
		JobSkillKeywords: normalize(d.JobSkillKeywords),
		TrendingTech:     normalize(d.TrendingTech),
		TrendingSoft:     normalize(d.TrendingSoft),
		FeedbackTech:     normalize(d.FeedbackTech),
		FeedbackSoft:     normalize(d.FeedbackSoft),
		ATSKeywords:      normalize(d.ATSKeywords),
	}
	return &Lexicon{
		data:     d,
		known:    toSet(d.KnownSkills),
		jobSkill: toSet(d.JobSkillKeywords),
	}
}

func parse(source string, data []byte) (*Lexicon, error) {
	if err := schemas.ValidateBytes(schemas.Lexicon, data); err != nil {
		return nil, &LoadError{Source: source, Message: "does not match the lexicon schema", Cause: err}
	}
	var d Data
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &LoadError{Source: source, Message: "failed to decode", Cause: err}
	}
	return New(d), nil
}

// IsKnownSkill reports whether s is in the known-skill set used to accept
// short resume skill lines.
func (l *Lexicon) IsKnownSkill(s string) bool {
	_, ok := l.known[s]
	return ok
}

// IsJobSkill reports whether token is one of the job skill keywords.
func (l *Lexicon) IsJobSkill(token string) bool {
	_, ok := l.jobSkill[token]
	return ok
}

// KnownSkills is the set of skills a short resume line is accepted as
// without further checks.
func (l *Lexicon) KnownSkills() []string { return clone(l.data.KnownSkills) }

// JobSkillKeywords are the tokens the job analyzer reports as required
// skills.
func (l *Lexicon) JobSkillKeywords() []string { return clone(l.data.JobSkillKeywords) }

// TrendingTech lists technical skills in current demand.
func (l *Lexicon) TrendingTech() []string { return clone(l.data.TrendingTech) }

// TrendingSoft lists soft skills in current demand.
func (l *Lexicon) TrendingSoft() []string { return clone(l.data.TrendingSoft) }

// ATSKeywords lists words applicant tracking systems commonly screen for.
func (l *Lexicon) ATSKeywords() []string { return clone(l.data.ATSKeywords) }

// FeedbackTech is the technical skill list checked when writing skill-gap
// feedback for a resume.
func (l *Lexicon) FeedbackTech() []string { return clone(l.data.FeedbackTech) }

// FeedbackSoft is the soft skill list checked when writing skill-gap feedback.
func (l *Lexicon) FeedbackSoft() []string { return clone(l.data.FeedbackSoft) }

// List names accepted by Lexicon.List. They match the JSON keys of Data.
const (
	ListKnownSkills      = "known_skills"
	ListJobSkillKeywords = "job_skill_keywords"
	ListTrendingTech     = "trending_tech"
	ListTrendingSoft     = "trending_soft"
	ListFeedbackTech     = "feedback_tech"
	ListFeedbackSoft     = "feedback_soft"
	ListATSKeywords      = "ats_keywords"
)

// ListNames returns the names accepted by List, in document order.
func ListNames() []string {
	return []string{
		ListKnownSkills, ListJobSkillKeywords, ListTrendingTech, ListTrendingSoft,
		ListFeedbackTech, ListFeedbackSoft, ListATSKeywords,
	}
}

// List returns a copy of the named word list.
func (l *Lexicon) List(name string) ([]string, error) {
	switch name {
	case ListKnownSkills:
		return l.KnownSkills(), nil
	case ListJobSkillKeywords:
		return l.JobSkillKeywords(), nil
	case ListTrendingTech:
		return l.TrendingTech(), nil
	case ListTrendingSoft:
		return l.TrendingSoft(), nil
	case ListFeedbackTech:
		return l.FeedbackTech(), nil
	case ListFeedbackSoft:
		return l.FeedbackSoft(), nil
	case ListATSKeywords:
		return l.ATSKeywords(), nil
	}
	return nil, fmt.Errorf("unknown lexicon list %q (want one of: %s)", name, strings.Join(ListNames(), ", "))
}

// Export returns a copy of the lexicon in its serialized form.
func (l *Lexicon) Export() Data {
	return Data{
		KnownSkills:      l.KnownSkills(),
		JobSkillKeywords: l.JobSkillKeywords(),
		TrendingTech:     l.TrendingTech(),
		TrendingSoft:     l.TrendingSoft(),
		FeedbackTech:     l.FeedbackTech(),
		FeedbackSoft:     l.FeedbackSoft(),
		ATSKeywords:      l.ATSKeywords(),
	}
}

func normalize(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func clone(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	return out
}
