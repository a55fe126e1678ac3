package types

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinel values that stand in for fields the resume analyzer could not find.
const (
	UnknownSkills        = "unknown"
	EducationUnspecified = "Not specified"
)

var (
	validate           = validator.New()
	experienceFormatRe = regexp.MustCompile(`^-?\d+\.\d years$`)
)

// Feedback groups the improvement suggestions produced for a resume.
type Feedback struct {
	SkillGaps   []string `json:"skill_gaps" validate:"dive,required"`
	Formatting  []string `json:"formatting" validate:"dive,required"`
	ATSKeywords []string `json:"ats_keywords" validate:"dive,required"`
}

// ResumeAnalysis is the structured result of analyzing a resume document.
// Build it with NewResumeAnalysis so that the field invariants are checked.
type ResumeAnalysis struct {
	Skills     string   `json:"skills" validate:"required"`
	Experience string   `json:"experience" validate:"required"`
	Education  string   `json:"education"`
	Rating     float64  `json:"rating" validate:"gte=0,lte=100"`
	Feedback   Feedback `json:"feedback"`
}

// NewResumeAnalysis assembles a ResumeAnalysis and checks its invariants:
// skills is never empty (absence is UnknownSkills), experience reads
// "<N.N> years", rating lies in [0, 100] and no feedback line is blank.
// Nil feedback lists are replaced with empty ones.
func NewResumeAnalysis(skills, experience, education string, rating float64, feedback Feedback) (*ResumeAnalysis, error) {
	if feedback.SkillGaps == nil {
		feedback.SkillGaps = []string{}
	}
	if feedback.Formatting == nil {
		feedback.Formatting = []string{}
	}
	if feedback.ATSKeywords == nil {
		feedback.ATSKeywords = []string{}
	}

	a := &ResumeAnalysis{
		Skills:     skills,
		Experience: experience,
		Education:  education,
		Rating:     rating,
		Feedback:   feedback,
	}

	if err := validate.Struct(a); err != nil {
		return nil, &InvariantError{Type: "ResumeAnalysis", Cause: err}
	}
	if !experienceFormatRe.MatchString(experience) {
		return nil, &InvariantError{
			Type:    "ResumeAnalysis",
			Field:   "experience",
			Message: `expected "<N.N> years", got ` + experience,
		}
	}

	return a, nil
}

// SkillList splits Skills back into individual skills. It returns nil when
// the skills are unknown.
func (a *ResumeAnalysis) SkillList() []string {
	if a.Skills == UnknownSkills || a.Skills == "" {
		return nil
	}
	return strings.Split(a.Skills, ", ")
}

// ToRecord converts the analysis into the stored shape the scorer reads.
// Field values are copied verbatim, sentinels included.
func (a *ResumeAnalysis) ToRecord(id, userID string) ResumeRecord {
	return ResumeRecord{
		ID:         id,
		UserID:     userID,
		Skills:     a.Skills,
		Experience: a.Experience,
		Education:  a.Education,
	}
}
