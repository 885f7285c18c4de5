package planner

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxReasonContext truncates the responsibility text quoted in a gap reason.
const maxReasonContext = 50

// identifyGaps collects required, preferred and responsibility-based skill
// gaps. Required and preferred gaps come from the shared set-difference;
// responsibility gaps are inferred from topic keywords in job
// responsibilities, skipping skills already evidenced in the candidate's
// experience text.
func (p *Planner) identifyGaps(resume *types.ResumeRecord, job *types.JobRecord) []types.SkillGap {
	gaps := []types.SkillGap{}

	overlap := matching.ComputeSkillGaps(resume, job)

	for _, skill := range overlap.MissingRequired {
		gaps = append(gaps, types.SkillGap{
			Skill:    types.TitleCase(skill),
			Type:     types.GapTypeRequired,
			Priority: types.PriorityHigh,
			Reason:   "Essential for the job role",
			Category: p.tables.Categorize(skill),
		})
	}

	for _, skill := range overlap.MissingPreferred {
		gaps = append(gaps, types.SkillGap{
			Skill:    types.TitleCase(skill),
			Type:     types.GapTypePreferred,
			Priority: types.PriorityMedium,
			Reason:   "Would strengthen candidacy",
			Category: p.tables.Categorize(skill),
		})
	}

	gaps = append(gaps, p.responsibilityGaps(resume, job)...)

	return gaps
}

// responsibilityGaps scans each responsibility for topic keywords and adds
// the topic's canonical skills the candidate's experience does not mention.
// Each skill is reported once, for the first responsibility implying it.
func (p *Planner) responsibilityGaps(resume *types.ResumeRecord, job *types.JobRecord) []types.SkillGap {
	gaps := []types.SkillGap{}
	seen := make(map[string]bool)

	experienceText := resume.ExperienceText()

	for _, responsibility := range job.Responsibilities {
		respLower := strings.ToLower(responsibility)

		for _, topic := range responsibilityTopicOrder {
			if !strings.Contains(respLower, topic) {
				continue
			}
			for _, skill := range p.tables.ResponsibilityTopics[topic] {
				if seen[skill] || strings.Contains(experienceText, skill) {
					continue
				}
				seen[skill] = true
				gaps = append(gaps, types.SkillGap{
					Skill:    types.TitleCase(skill),
					Type:     types.GapTypeResponsibility,
					Priority: types.PriorityMedium,
					Reason:   "Needed for: " + truncate(responsibility, maxReasonContext) + "...",
					Category: p.tables.Categorize(skill),
				})
			}
		}
	}

	return gaps
}

// responsibilityTopicOrder fixes the scan order over the topic map.
var responsibilityTopicOrder = []string{
	"design", "database", "api", "testing",
	"security", "performance", "deployment", "collaboration",
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
