// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// PersonalInfo holds contact details extracted from a resume.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// WorkExperience represents a single employment entry on a resume.
type WorkExperience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// Education represents a single education entry on a resume.
type Education struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Year        string   `json:"year"`
	Details     []string `json:"details"`
}

// ResumeRecord is the structured form of a resume. It is created once per
// parse call and treated as immutable afterwards.
type ResumeRecord struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []string         `json:"skills"`
	Highlights     []string         `json:"highlights"`
}

// EntityMap holds named-entity spans produced by an external NER collaborator,
// keyed by entity type (PERSON, ORG, GPE, DATE).
type EntityMap map[string][]string

// IsEmpty reports whether structuring produced no usable content at all.
// An all-empty record is the trigger for the generative fallback.
func (r *ResumeRecord) IsEmpty() bool {
	if r == nil {
		return true
	}
	if r.PersonalInfo != (PersonalInfo{}) {
		return false
	}
	return len(r.WorkExperience) == 0 && len(r.Education) == 0 &&
		len(r.Skills) == 0 && len(r.Highlights) == 0
}

// SkillSet returns the resume skills as a lowercased set for case-insensitive
// comparison.
func (r *ResumeRecord) SkillSet() map[string]bool {
	return NewSkillSet(r.Skills)
}

// ExperienceText joins titles and bullet descriptions of all work experience
// entries into a single lowercased string, used for seniority inference and
// responsibility-gap checks.
func (r *ResumeRecord) ExperienceText() string {
	var sb strings.Builder
	for _, exp := range r.WorkExperience {
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Company)
		sb.WriteString(" ")
		sb.WriteString(strings.Join(exp.Description, " "))
		sb.WriteString(" ")
	}
	return strings.ToLower(strings.TrimSpace(sb.String()))
}

// FreeText concatenates the textual content of the record for embedding and
// lexical similarity.
func (r *ResumeRecord) FreeText() string {
	parts := make([]string, 0, 8)
	for _, exp := range r.WorkExperience {
		parts = append(parts, exp.Title, exp.Company, strings.Join(exp.Description, " "))
	}
	for _, edu := range r.Education {
		parts = append(parts, edu.Degree, edu.Institution, strings.Join(edu.Details, " "))
	}
	parts = append(parts, strings.Join(r.Skills, " "))
	parts = append(parts, strings.Join(r.Highlights, " "))
	return strings.TrimSpace(strings.Join(parts, " "))
}
