package types

import "strings"

// JobAnalysis is the structured result of analyzing a job description.
type JobAnalysis struct {
	// RequiredSkills holds unique skill keywords in ascending order.
	RequiredSkills     []string `json:"required_skills"`
	RequiredExperience float64  `json:"required_experience"`
	Text               string   `json:"text"`
}

// SkillsString joins the required skills the way job records store them.
func (j *JobAnalysis) SkillsString() string {
	return strings.Join(j.RequiredSkills, ", ")
}

// ToRecord converts the analysis into the stored shape the scorer reads.
func (j *JobAnalysis) ToRecord(id string) JobRecord {
	return JobRecord{
		ID:                 id,
		RequiredSkills:     j.SkillsString(),
		RequiredExperience: ExperienceFromYears(j.RequiredExperience),
		Description:        j.Text,
	}
}
