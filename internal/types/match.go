package types

// MatchAnalysis holds the threshold-driven qualitative breakdown of a match.
type MatchAnalysis struct {
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
	SkillGaps           []string `json:"skill_gaps"`
	ExperienceAlignment string   `json:"experience_alignment"`
	OverallAssessment   string   `json:"overall_assessment"`
}

// MatchResult is the complete output of the similarity engine for one
// resume/job pair. All scores are in [0,1], rounded to two decimals.
type MatchResult struct {
	OverallScore       float64       `json:"overall_score"`
	SemanticSimilarity float64       `json:"semantic_similarity"`
	SkillsMatch        float64       `json:"skills_match"`
	ExperienceMatch    float64       `json:"experience_match"`
	TextSimilarity     float64       `json:"text_similarity"`
	Analysis           MatchAnalysis `json:"analysis"`
	Recommendations    []string      `json:"recommendations"`
}
