package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ResumeRecord is a stored resume as the compatibility scorer sees it.
type ResumeRecord struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
}

// JobRecord is a stored job posting as the compatibility scorer sees it.
type JobRecord struct {
	ID                 string          `json:"id,omitempty"`
	RequiredSkills     string          `json:"required_skills"`
	RequiredExperience ExperienceValue `json:"required_experience"`
	Description        string          `json:"description"`
}

// ExperienceValue holds a required-experience field that stores may keep
// either as a number (5, 0.5) or as free text ("5 years"). It decodes from
// both JSON forms and keeps the textual representation.
type ExperienceValue string

// ExperienceFromYears formats a number of years as an ExperienceValue.
func ExperienceFromYears(years float64) ExperienceValue {
	return ExperienceValue(strconv.FormatFloat(years, 'f', -1, 64))
}

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (v *ExperienceValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = ExperienceValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = ExperienceValue(n.String())
	return nil
}
