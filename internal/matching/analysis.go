package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// minResumeWords is the word count below which a resume-expansion
// recommendation is added.
const minResumeWords = 200

// buildAnalysis derives the threshold/set-driven narrative from the raw
// (unrounded) sub-scores.
func buildAnalysis(resume *types.ResumeRecord, job *types.JobRecord, overlap SkillOverlap,
	semantic, skills, experience, overall float64) types.MatchAnalysis {

	analysis := types.MatchAnalysis{
		Strengths:  []string{},
		Weaknesses: []string{},
		SkillGaps:  []string{},
	}

	if len(overlap.MatchingRequired) > 0 {
		analysis.Strengths = append(analysis.Strengths,
			"Strong match in required skills: "+joinTitled(overlap.MatchingRequired))
	}
	if len(overlap.MatchingPreferred) > 0 {
		analysis.Strengths = append(analysis.Strengths,
			"Good match in preferred skills: "+joinTitled(overlap.MatchingPreferred))
	}
	if semantic > 0.7 {
		analysis.Strengths = append(analysis.Strengths,
			"High semantic alignment between resume and job requirements")
	}
	if experience > 0.8 {
		analysis.Strengths = append(analysis.Strengths,
			"Experience level well-aligned with job requirements")
	}

	if len(overlap.MissingRequired) > 0 {
		analysis.Weaknesses = append(analysis.Weaknesses,
			"Missing required skills: "+joinTitled(overlap.MissingRequired))
	}
	if skills < 0.5 {
		analysis.Weaknesses = append(analysis.Weaknesses, "Low skills matching score")
	}
	if semantic < 0.5 {
		analysis.Weaknesses = append(analysis.Weaknesses,
			"Low semantic similarity with job description")
	}
	if experience < 0.6 {
		analysis.Weaknesses = append(analysis.Weaknesses,
			"Experience level may not meet job requirements")
	}

	analysis.SkillGaps = titled(overlap.MissingRequired)

	analysis.ExperienceAlignment = fmt.Sprintf("Resume: %s vs Job: %s",
		InferResumeLevel(resume), job.ExperienceLevel)

	analysis.OverallAssessment = assessOverall(overall)

	return analysis
}

// assessOverall is a 4-tier message on the unrounded overall score. The tier
// boundaries use strict comparisons; 0.8 itself falls into the lower tier.
func assessOverall(overall float64) string {
	switch {
	case overall > 0.8:
		return "Excellent match - strong candidate"
	case overall > 0.6:
		return "Good match - consider for interview"
	case overall > 0.4:
		return "Moderate match - may need additional training"
	default:
		return "Poor match - significant gaps to address"
	}
}

// buildRecommendations suggests concrete next steps: skills to acquire or
// learn, an experience-gap note, and a resume-expansion note for thin
// resumes.
func buildRecommendations(resume *types.ResumeRecord, job *types.JobRecord,
	overlap SkillOverlap, tables *taxonomy.Tables) []string {

	recommendations := []string{}

	if len(overlap.MissingRequired) > 0 {
		recommendations = append(recommendations,
			"Consider acquiring these required skills: "+joinTitled(firstN(overlap.MissingRequired, 3)))
	}
	if len(overlap.MissingPreferred) > 0 {
		recommendations = append(recommendations,
			"Consider learning these preferred skills: "+joinTitled(firstN(overlap.MissingPreferred, 3)))
	}

	resumeLevel := InferResumeLevel(resume)
	if tables.Ordinal(resumeLevel) < tables.Ordinal(job.ExperienceLevel) {
		recommendations = append(recommendations,
			fmt.Sprintf("Consider gaining more experience to reach %s level", job.ExperienceLevel))
	}

	if len(strings.Fields(resume.FreeText())) < minResumeWords {
		recommendations = append(recommendations,
			"Consider expanding resume content to better demonstrate capabilities")
	}

	return recommendations
}

func titled(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, types.TitleCase(s))
	}
	return out
}

func joinTitled(skills []string) string {
	return strings.Join(titled(skills), ", ")
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
