package types

// Skill gap types and priorities.
const (
	GapTypeRequired       = "required"
	GapTypePreferred      = "preferred"
	GapTypeResponsibility = "responsibility-based"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// SkillGap describes one skill the candidate is missing, with a categorical
// priority (drives timeframe bucketing) and a derived priority score (drives
// ordering).
type SkillGap struct {
	Skill         string  `json:"skill"`
	Type          string  `json:"type"`
	Priority      string  `json:"priority"`
	Reason        string  `json:"reason"`
	Category      string  `json:"category"`
	PriorityScore float64 `json:"priority_score"`
}

// ResourceInfo is the learning-resource metadata attached to a skill.
// Absence of an entry in the resource table is a metadata gap, not an error.
type ResourceInfo struct {
	Skill      string   `json:"skill,omitempty"`
	Courses    []string `json:"courses"`
	Platforms  []string `json:"platforms"`
	Difficulty string   `json:"difficulty"`
}

// PlanEntry is one actionable item in a learning plan bucket.
type PlanEntry struct {
	Skill     string        `json:"skill"`
	Action    string        `json:"action"`
	Resources *ResourceInfo `json:"resources,omitempty"`
	Timeframe string        `json:"timeframe"`
}

// ProjectSuggestion is a practice project matched to a skill gap.
type ProjectSuggestion struct {
	Skill         string `json:"skill"`
	Project       string `json:"project"`
	Difficulty    string `json:"difficulty"`
	EstimatedTime string `json:"estimated_time"`
}

// LearningPlan routes skill gaps into timeframe buckets by categorical
// priority.
type LearningPlan struct {
	ImmediateActions []PlanEntry         `json:"immediate_actions"`
	ShortTermGoals   []PlanEntry         `json:"short_term_goals"`
	LongTermGoals    []PlanEntry         `json:"long_term_goals"`
	Resources        []ResourceInfo      `json:"resources"`
	Projects         []ProjectSuggestion `json:"projects"`
}

// Milestone is a fixed checkpoint in the learning timeline.
type Milestone struct {
	Week        int    `json:"week,omitempty"`
	Month       int    `json:"month,omitempty"`
	Achievement string `json:"achievement"`
}

// Timeline buckets the priority-sorted gaps into learning phases with four
// fixed-shape milestones.
type Timeline struct {
	Week1To2   []string    `json:"week_1_2"`
	Month1To2  []string    `json:"month_1_2"`
	Month3To6  []string    `json:"month_3_6"`
	Milestones []Milestone `json:"milestones"`
}

// CareerPath is an alternative career direction suggested from the candidate's
// current skill set.
type CareerPath struct {
	Path      string   `json:"path"`
	Reason    string   `json:"reason"`
	NextSteps []string `json:"next_steps"`
}

// PlanReport is the complete output of the skill-gap planner. SkillGaps is
// sorted descending by priority score.
type PlanReport struct {
	SkillGaps     []SkillGap   `json:"skill_gaps"`
	LearningPlan  LearningPlan `json:"learning_plan"`
	Timeline      Timeline     `json:"timeline"`
	EstimatedTime string       `json:"estimated_time"`
	CareerPaths   []CareerPath `json:"career_path_suggestions"`
}
