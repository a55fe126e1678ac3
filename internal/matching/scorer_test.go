package matching

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/resume"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/users"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSimilarity returns the same score, or err, for every pair.
type fixedSimilarity struct {
	score float64
	err   error
}

func (f fixedSimilarity) Similarity(string, string) (float64, error) {
	return f.score, f.err
}

func sampleRecords() (types.ResumeRecord, types.JobRecord) {
	r := types.ResumeRecord{
		ID:         "r-1",
		UserID:     "u-1",
		Skills:     "python, aws",
		Experience: "3.0 years",
		Education:  "bs computer science",
	}
	j := types.JobRecord{
		ID:                 "j-1",
		RequiredSkills:     "python, aws, docker",
		RequiredExperience: "5",
		Description:        "Backend engineer with Python, AWS and Docker",
	}
	return r, j
}

func TestMatch_Scenario(t *testing.T) {
	r, j := sampleRecords()
	s := NewScorer(fixedSimilarity{score: 0}, users.StaticDirectory{"u-1": "jane"})

	result := s.Match(context.Background(), r, j)

	// 2/3 of 50 plus 30 - 2*5
	assert.Equal(t, 53.33, result.CompatibilityScore)
	assert.Equal(t, "r-1", result.ResumeID)
	assert.Equal(t, "jane", result.User)
	assert.Equal(t, "aws, python", result.MatchedSkills)
	assert.Equal(t, "python, aws", result.ResumeSkills)
	assert.Equal(t, "3.0 years", result.ResumeExperience)
}

func TestMatch_TextScoreAdds(t *testing.T) {
	r, j := sampleRecords()
	s := NewScorer(fixedSimilarity{score: 0.5}, nil)

	result := s.Match(context.Background(), r, j)
	assert.Equal(t, 63.33, result.CompatibilityScore)
}

func TestMatch_SimilarityFailureScoresZeroAndLogs(t *testing.T) {
	var buf bytes.Buffer
	r, j := sampleRecords()
	s := NewScorer(
		fixedSimilarity{err: &nlp.ComputationError{Message: "cannot vectorize documents", Cause: nlp.ErrEmptyVocabulary}},
		users.StaticDirectory{"u-1": "jane"},
		WithLogger(zerolog.New(&buf)),
	)

	result := s.Match(context.Background(), r, j)

	assert.Equal(t, 53.33, result.CompatibilityScore)
	assert.Contains(t, buf.String(), "text similarity failed")
	assert.Contains(t, buf.String(), `"resume_id":"r-1"`)
}

func TestMatch_UnknownUser(t *testing.T) {
	var buf bytes.Buffer
	r, j := sampleRecords()
	r.UserID = "does-not-exist"
	s := NewScorer(fixedSimilarity{}, users.StaticDirectory{"u-1": "jane"}, WithLogger(zerolog.New(&buf)))

	var result types.MatchResult
	require.NotPanics(t, func() {
		result = s.Match(context.Background(), r, j)
	})
	assert.Equal(t, users.UnknownName, result.User)
	assert.Contains(t, buf.String(), "user lookup failed")
}

func TestMatch_NoDirectory(t *testing.T) {
	r, j := sampleRecords()
	result := NewScorer(fixedSimilarity{}, nil, WithLogger(zerolog.Nop())).Match(context.Background(), r, j)
	assert.Equal(t, users.UnknownName, result.User)
}

func TestMatch_EmptyJobSkills(t *testing.T) {
	r, j := sampleRecords()
	j.RequiredSkills = ""
	s := NewScorer(fixedSimilarity{}, nil, WithLogger(zerolog.Nop()))

	b := s.Score(r, j)
	assert.Equal(t, 0.0, b.Skills)
	assert.Empty(t, b.MatchedSkills)

	result := s.Match(context.Background(), r, j)
	assert.Equal(t, "", result.MatchedSkills)
}

func TestMatch_DefaultAnalyzer(t *testing.T) {
	r, j := sampleRecords()
	s := NewScorer(nil, nil, WithLogger(zerolog.Nop()))

	b := s.Score(r, j)
	assert.Greater(t, b.Text, 0.0)
	assert.LessOrEqual(t, b.Text, 20.0)

	result := s.Match(context.Background(), r, j)
	assert.InDelta(t, 53.33+b.Text, result.CompatibilityScore, 0.01)
}

func TestMatch_DegenerateTextWithDefaultAnalyzer(t *testing.T) {
	var buf bytes.Buffer
	r := types.ResumeRecord{ID: "r-9"}
	j := types.JobRecord{Description: "the and of"}
	s := NewScorer(nil, nil, WithLogger(zerolog.New(&buf)))

	result := s.Match(context.Background(), r, j)

	// no skills, 0 years against 0 years
	assert.Equal(t, 30.0, result.CompatibilityScore)
	assert.Contains(t, buf.String(), "text similarity failed")
}

func TestSkillsScore(t *testing.T) {
	assert.Equal(t, 0.0, SkillsScore(0, 0))
	assert.Equal(t, 0.0, SkillsScore(3, 0), "empty job skills never divide")
	assert.Equal(t, 50.0, SkillsScore(3, 3))
	assert.Equal(t, 25.0, SkillsScore(1, 2))
	assert.Equal(t, 0.0, SkillsScore(0, 4))
}

func TestExperienceScore(t *testing.T) {
	tests := []struct {
		resume, job, want float64
	}{
		{resume: 5, job: 5, want: 30},
		{resume: 10, job: 5, want: 30},
		{resume: 0, job: 0, want: 30},
		{resume: 2, job: 0, want: 30},
		{resume: 3, job: 5, want: 20},
		{resume: 4.5, job: 5, want: 27.5},
		{resume: 0, job: 10, want: 0},
		{resume: 0, job: 0.5, want: 27.5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_vs_%v", tt.resume, tt.job), func(t *testing.T) {
			assert.InDelta(t, tt.want, ExperienceScore(tt.resume, tt.job), 1e-9)
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3.0 years", 3},
		{"7 years", 7},
		{"about 2.5", 2.5},
		{"0.5", 0.5},
		{"1.2.3", 1.2},
		{"-2.0 years", 2},
		{"", 0},
		{"n/a", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.in))
		})
	}
}

func TestParseNumber_RoundTripsFormattedExperience(t *testing.T) {
	for _, years := range []float64{0, 0.5, 1, 6, 12.3, 40} {
		assert.InDelta(t, years, ParseNumber(resume.FormatExperience(years)), 0.05)
	}
}

func TestSplitSkills(t *testing.T) {
	assert.Empty(t, SplitSkills(""))
	assert.Equal(t, map[string]struct{}{"python": {}}, SplitSkills("python"))
	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}}, SplitSkills("a, b, a"))
	assert.Len(t, SplitSkills("a,b"), 1, "only \", \" separates skills")
}

func TestMatch_ExperienceAsText(t *testing.T) {
	r, j := sampleRecords()
	j.RequiredExperience = "5 years minimum"
	s := NewScorer(fixedSimilarity{}, nil, WithLogger(zerolog.Nop()))

	assert.Equal(t, 20.0, s.Score(r, j).Experience)

	j.RequiredExperience = ""
	assert.Equal(t, 30.0, s.Score(r, j).Experience)
}

func TestBreakdown_Total(t *testing.T) {
	b := Breakdown{Skills: 10, Experience: 20, Text: 1.5}
	assert.Equal(t, 31.5, b.Total())
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 53.3333, want: 53.33},
		{in: 1.005 + 1e-9, want: 1.01},
		{in: 33.125, want: 33.12},
		{in: 0.375, want: 0.38},
		{in: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, round2(tt.in))
		})
	}
}

func TestMatch_HalfRoundsToEven(t *testing.T) {
	r := types.ResumeRecord{ID: "r-1", Skills: "go", Experience: "8.0 years"}
	j := types.JobRecord{
		ID:                 "j-1",
		RequiredSkills:     "go, a, b, c, d, e, f, g, h, i, j, k, l, m, n, o",
		RequiredExperience: "5",
	}
	s := NewScorer(fixedSimilarity{score: 0}, nil)

	result := s.Match(context.Background(), r, j)

	// 1/16 of 50 plus 30 is 33.125
	assert.Equal(t, 33.12, result.CompatibilityScore)
}

var errBoom = errors.New("boom")
