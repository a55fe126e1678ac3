package types

// MatchResult is the compatibility of one resume with one job.
type MatchResult struct {
	ResumeID           string  `json:"resume_id"`
	User               string  `json:"user"`
	CompatibilityScore float64 `json:"compatibility_score"`
	MatchedSkills      string  `json:"matched_skills"`
	ResumeSkills       string  `json:"resume_skills"`
	ResumeExperience   string  `json:"resume_experience"`
}
