// Package matching scores how well a stored resume fits a stored job.
//
// The compatibility score is the sum of three independently capped parts:
//
//	skills      up to 50  share of the job's skills the resume lists
//	experience  up to 30  resume years against required years
//	text        up to 20  TF-IDF cosine similarity of the two texts
package matching

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/users"
	"github.com/rs/zerolog"
)

const (
	maxSkillsScore     = 50.0
	maxExperienceScore = 30.0
	maxTextScore       = 20.0
	shortfallPenalty   = 5.0 // points per missing year
	skillSeparator     = ", "
)

var numberPattern = regexp.MustCompile(`\d+\.\d+|\d+`)

// Scorer computes MatchResults. It holds no mutable state and is safe for
// concurrent use as long as its Similarity and Directory are.
type Scorer struct {
	similarity nlp.Similarity
	users      users.Directory
	log        zerolog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger sets the logger used for recovered failures.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Scorer) { s.log = l }
}

// NewScorer builds a Scorer. A nil similarity uses nlp.NewAnalyzer; a nil
// directory resolves every user to users.UnknownName.
func NewScorer(similarity nlp.Similarity, dir users.Directory, opts ...Option) *Scorer {
	if similarity == nil {
		similarity = nlp.NewAnalyzer()
	}
	s := &Scorer{
		similarity: similarity,
		users:      dir,
		log:        *logging.L(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Breakdown holds the parts of a compatibility score before rounding.
type Breakdown struct {
	Skills        float64
	Experience    float64
	Text          float64
	MatchedSkills []string
}

// Total is the unrounded compatibility score.
func (b Breakdown) Total() float64 {
	return b.Skills + b.Experience + b.Text
}

// Match scores resume against job. Every failure inside is recovered: a
// failed similarity counts as 0 and an unresolvable owner is shown as
// users.UnknownName.
func (s *Scorer) Match(ctx context.Context, resume types.ResumeRecord, job types.JobRecord) types.MatchResult {
	b := s.Score(resume, job)

	username, err := users.Resolve(ctx, s.users, resume.UserID)
	if err != nil {
		s.log.Warn().Err(err).
			Str("resume_id", resume.ID).
			Str("user_id", resume.UserID).
			Msg("user lookup failed")
	}

	return types.MatchResult{
		ResumeID:           resume.ID,
		User:               username,
		CompatibilityScore: round2(b.Total()),
		MatchedSkills:      strings.Join(b.MatchedSkills, skillSeparator),
		ResumeSkills:       resume.Skills,
		ResumeExperience:   resume.Experience,
	}
}

// Score computes the score breakdown without resolving the owner.
func (s *Scorer) Score(resume types.ResumeRecord, job types.JobRecord) Breakdown {
	resumeSkills := SplitSkills(resume.Skills)
	jobSkills := SplitSkills(job.RequiredSkills)
	matched := intersect(resumeSkills, jobSkills)

	return Breakdown{
		Skills:        SkillsScore(len(matched), len(jobSkills)),
		Experience:    ExperienceScore(ParseNumber(resume.Experience), ParseNumber(string(job.RequiredExperience))),
		Text:          s.textScore(resume, job),
		MatchedSkills: matched,
	}
}

func (s *Scorer) textScore(resume types.ResumeRecord, job types.JobRecord) float64 {
	resumeText := fmt.Sprintf("%s %s %s", resume.Skills, resume.Experience, resume.Education)
	sim, err := s.similarity.Similarity(resumeText, job.Description)
	if err != nil {
		s.log.Warn().Err(err).Str("resume_id", resume.ID).Msg("text similarity failed, scoring 0")
		return 0
	}
	return sim * maxTextScore
}

// SkillsScore gives 50 points scaled by the share of job skills matched.
// A job without skills scores 0.
func SkillsScore(matched, required int) float64 {
	if required == 0 {
		return 0
	}
	return math.Min(float64(matched)/float64(required)*maxSkillsScore, maxSkillsScore)
}

// ExperienceScore compares years of experience. Meeting the requirement
// earns 30; each year short costs 5, down to 0.
func ExperienceScore(resumeYears, jobYears float64) float64 {
	if resumeYears >= jobYears {
		if jobYears > 0 {
			return math.Min(resumeYears/jobYears*maxExperienceScore, maxExperienceScore)
		}
		return maxExperienceScore
	}
	return math.Max(0, maxExperienceScore+(resumeYears-jobYears)*shortfallPenalty)
}

// SplitSkills parses a comma-joined skill list into a set. An empty string
// is an empty set.
func SplitSkills(s string) map[string]struct{} {
	set := make(map[string]struct{})
	if s == "" {
		return set
	}
	for _, skill := range strings.Split(s, skillSeparator) {
		set[skill] = struct{}{}
	}
	return set
}

// ParseNumber returns the first unsigned decimal or integer in s, or 0 when
// there is none.
func ParseNumber(s string) float64 {
	m := numberPattern.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return n
}

func intersect(a, b map[string]struct{}) []string {
	out := make([]string, 0)
	for k := range a {
		if _, ok := b[k]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// round2 rounds to two decimals, half to even.
func round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}
