package resume

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Feedback messages.
const (
	MissingTechPrefix = "Missing trending technical skills: "
	MissingSoftPrefix = "Missing trending soft skills: "
	AddSectionsTip    = "Add more sections like Experience and Education for clarity."
	AddSkillsTip      = "Include a clear 'Skills' section."
	ATSKeywordsTip    = "Add ATS-friendly keywords: development, software, programming, teamwork."
)

func (a *Analyzer) feedback(fullText string, skills []string, skillsFound bool) types.Feedback {
	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[s] = struct{}{}
	}

	fb := types.Feedback{
		SkillGaps:   []string{},
		Formatting:  []string{},
		ATSKeywords: []string{},
	}

	if gap := missingTrending(MissingTechPrefix, a.lex.FeedbackTech(), have); gap != "" {
		fb.SkillGaps = append(fb.SkillGaps, gap)
	}
	if gap := missingTrending(MissingSoftPrefix, a.lex.FeedbackSoft(), have); gap != "" {
		fb.SkillGaps = append(fb.SkillGaps, gap)
	}

	if len(strings.Split(fullText, "\n")) < minSectionLines {
		fb.Formatting = append(fb.Formatting, AddSectionsTip)
	}
	if !skillsFound {
		fb.Formatting = append(fb.Formatting, AddSkillsTip)
	}

	if len(skills) < minSkillsForATS {
		fb.ATSKeywords = append(fb.ATSKeywords, ATSKeywordsTip)
	}

	return fb
}

// missingTrending reports the trending skills the resume lacks, but only
// when it has none of them; a resume with at least one gets no line.
func missingTrending(prefix string, trending []string, have map[string]struct{}) string {
	missing := make([]string, 0, len(trending))
	for _, s := range trending {
		if _, ok := have[s]; ok {
			return ""
		}
		missing = append(missing, s)
	}
	if len(missing) == 0 {
		return ""
	}
	return prefix + strings.Join(missing, ", ")
}
