package job

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_MonthsScenario(t *testing.T) {
	desc := "Looking for 6 months of Python experience with AWS"

	result, err := NewAnalyzer(nil, nil).Analyze(desc)
	require.NoError(t, err)

	assert.Subset(t, result.RequiredSkills, []string{"python", "aws"})
	assert.InDelta(t, 0.5, result.RequiredExperience, 1e-9)
	assert.Equal(t, desc, result.Text, "text is returned unmodified")
}

func TestAnalyze_NoSignals(t *testing.T) {
	descriptions := []string{
		"",
		"We are a friendly bakery looking for someone who loves bread.",
		"Competitive salary, remote friendly, great benefits!",
	}

	a := NewAnalyzer(nil, nil)
	for _, desc := range descriptions {
		result, err := a.Analyze(desc)
		require.NoError(t, err)
		assert.Empty(t, result.RequiredSkills)
		assert.NotNil(t, result.RequiredSkills)
		assert.Equal(t, 0.0, result.RequiredExperience)
	}
}

func TestRequiredSkills(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "sorted and unique",
			text: "react, python, sql. python again; react/docker",
			want: []string{"docker", "python", "react", "sql"},
		},
		{
			name: "hyphenated soft skill",
			text: "strong problem-solving and collaboration",
			want: []string{"collaboration", "problem-solving"},
		},
		{
			name: "multi-word keyword never matches",
			text: "machine learning background",
			want: []string{},
		},
		{
			name: "substrings do not match",
			text: "javascripting pythonic gitlab",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.RequiredSkills(tt.text))
		})
	}
}

func TestRequiredSkills_CustomLexicon(t *testing.T) {
	lex := lexicon.New(lexicon.Data{JobSkillKeywords: []string{"Rust", "Go"}})
	a := NewAnalyzer(lex, nil)

	assert.Equal(t, []string{"go", "rust"}, a.RequiredSkills("go and rust, not python"))
}

type fixedTokenizer []string

func (f fixedTokenizer) Tokenize(string) []string { return f }

func TestRequiredSkills_UsesInjectedTokenizer(t *testing.T) {
	a := NewAnalyzer(nil, fixedTokenizer{"machine learning", "kubernetes"})

	assert.Equal(t, []string{"kubernetes", "machine learning"}, a.RequiredSkills("ignored"))
}

func TestRequiredExperience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "years", text: "5 years of experience", want: 5},
		{name: "yr abbreviation", text: "3yr minimum", want: 3},
		{name: "number before experience", text: "2 experience points", want: 2},
		{name: "multiple figures add up", text: "3 years backend, 2 years frontend", want: 5},
		{name: "months", text: "6 months internship", want: 0.5},
		{name: "twelve or more months stay whole", text: "18 months", want: 18},
		{name: "no unit", text: "team of 8 engineers", want: 0},
		{name: "plus sign breaks the pattern", text: "5+ years", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RequiredExperience(tt.text), 1e-9)
		})
	}
}

// The month rule looks at the whole description, so a year figure below 12
// is divided by 12 whenever "month" appears anywhere. This reproduces how
// stored job records were computed; it is a known quirk, not a goal.
func TestRequiredExperience_GlobalMonthQuirk(t *testing.T) {
	text := strings.ToLower("Requires 2 years of Go and 3 months of on-call rotation")

	assert.InDelta(t, 2.0/12+3.0/12, RequiredExperience(text), 1e-9)
	assert.InDelta(t, 2.0, RequiredExperience("requires 2 years of go"), 1e-9)
}

func TestAnalyze_LowercasesBeforeMatching(t *testing.T) {
	result, err := NewAnalyzer(nil, nil).Analyze("Senior DOCKER engineer, 4 YEARS required. Kubernetes a plus.")
	require.NoError(t, err)

	assert.Equal(t, []string{"docker", "kubernetes"}, result.RequiredSkills)
	assert.Equal(t, 4.0, result.RequiredExperience)
}
