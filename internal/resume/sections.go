package resume

import (
	"regexp"
	"strings"
)

// Section describes a named region of resume text: it starts at the first
// heading that matches one of Starts and runs up to, not including, the
// first following occurrence of one of Ends, or to the end of the text.
// Headings are literal strings matched case-insensitively anywhere in the
// text. Earlier entries in Starts win when several could begin at the same
// position.
type Section struct {
	Name   string
	Starts []string
	Ends   []string
}

// Pattern builds the regular expression for the section. Group 1 is the
// section body.
func (s Section) Pattern() string {
	var sb strings.Builder
	sb.WriteString(`(?i)(?:`)
	sb.WriteString(alternation(s.Starts))
	sb.WriteString(`)\s*([\s\S]*?)(?:`)
	if len(s.Ends) > 0 {
		sb.WriteString(alternation(s.Ends))
		sb.WriteString(`|`)
	}
	sb.WriteString(`$)`)
	return sb.String()
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// Rules is the configuration of the section parser.
type Rules struct {
	Skills     Section
	Experience Section
	Education  Section

	// SkipPrefixes are skill-line prefixes that mark contact details rather
	// than skills.
	SkipPrefixes []string

	// DateRange matches a span of years inside the experience section.
	// Group 1 is the start year, group 2 the end year or PresentWord.
	DateRange string

	PresentWord string
	PresentYear int
}

// DefaultPresentYear is the year an open-ended "present" range ends in.
const DefaultPresentYear = 2025

// dateRangePattern accepts a hyphen, an en or em dash, and the mojibake
// left behind when those dashes are decoded as Windows-1252.
const dateRangePattern = `(?i)(\d{4})\s*(?:â€[“”]|[-–—â€“])\s*(\d{4}|present)`

// DefaultRules returns the standard section rules.
func DefaultRules() Rules {
	return Rules{
		Skills: Section{
			Name:   "skills",
			Starts: []string{"skills"},
			Ends:   []string{"work experience", "education"},
		},
		Experience: Section{
			Name:   "experience",
			Starts: []string{"work experience", "experience"},
			Ends:   []string{"education"},
		},
		Education: Section{
			Name:   "education",
			Starts: []string{"education"},
			Ends:   []string{"languages"},
		},
		SkipPrefixes: []string{"email", "phone", "name"},
		DateRange:    dateRangePattern,
		PresentWord:  "present",
		PresentYear:  DefaultPresentYear,
	}
}

// parser is a compiled Rules.
type parser struct {
	rules      Rules
	skills     *regexp.Regexp
	experience *regexp.Regexp
	education  *regexp.Regexp
	dateRange  *regexp.Regexp
}

func compileRules(r Rules) (*parser, error) {
	p := &parser{rules: r}
	var err error
	if p.skills, err = compileSection(r.Skills); err != nil {
		return nil, err
	}
	if p.experience, err = compileSection(r.Experience); err != nil {
		return nil, err
	}
	if p.education, err = compileSection(r.Education); err != nil {
		return nil, err
	}
	if p.dateRange, err = regexp.Compile(r.DateRange); err != nil {
		return nil, &RulesError{Field: "date_range", Cause: err}
	}
	if p.dateRange.NumSubexp() < 2 {
		return nil, &RulesError{Field: "date_range", Message: "pattern needs two capture groups"}
	}
	return p, nil
}

func compileSection(s Section) (*regexp.Regexp, error) {
	if len(s.Starts) == 0 {
		return nil, &RulesError{Field: s.Name, Message: "section has no start heading"}
	}
	re, err := regexp.Compile(s.Pattern())
	if err != nil {
		return nil, &RulesError{Field: s.Name, Cause: err}
	}
	return re, nil
}

// region returns the body of the first match of re in text.
func region(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
