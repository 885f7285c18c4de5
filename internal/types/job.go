package types

import "strings"

// Experience level labels produced by the job structurer and consumed by the
// similarity engine's ordinal table.
const (
	LevelEntry   = "Entry-level"
	LevelJunior  = "Junior"
	LevelMid     = "Mid-level"
	LevelSenior  = "Senior/Lead"
	LevelUnknown = "Unknown"
)

// JobRecord is the structured form of a job description.
type JobRecord struct {
	JobTitle         string   `json:"job_title"`
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills"`
	ExperienceLevel  string   `json:"experience_level"`
	Qualifications   []string `json:"qualifications"`
	Responsibilities []string `json:"responsibilities"`
	Benefits         []string `json:"benefits"`
}

// ZeroJobRecord returns the fully-populated empty record used as the terminal
// state for empty or unparseable input. Never nil.
func ZeroJobRecord() *JobRecord {
	return &JobRecord{
		RequiredSkills:   []string{},
		PreferredSkills:  []string{},
		ExperienceLevel:  LevelUnknown,
		Qualifications:   []string{},
		Responsibilities: []string{},
		Benefits:         []string{},
	}
}

// RequiredSet returns the required skills as a lowercased set.
func (j *JobRecord) RequiredSet() map[string]bool {
	return NewSkillSet(j.RequiredSkills)
}

// PreferredSet returns the preferred skills as a lowercased set.
func (j *JobRecord) PreferredSet() map[string]bool {
	return NewSkillSet(j.PreferredSkills)
}

// FreeText concatenates the textual content of the record for embedding and
// lexical similarity.
func (j *JobRecord) FreeText() string {
	parts := []string{
		j.JobTitle,
		strings.Join(j.Responsibilities, " "),
		strings.Join(j.RequiredSkills, " "),
		strings.Join(j.PreferredSkills, " "),
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
