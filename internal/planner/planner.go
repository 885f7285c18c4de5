// Package planner turns the skill gaps between a resume and a job into a
// prioritized learning plan: categorized gaps, timeframe-bucketed actions,
// project suggestions, a milestone timeline, a total time estimate and
// alternative career paths.
package planner

import (
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Planner builds learning plans. Safe for concurrent use; all state is
// read-only after construction.
type Planner struct {
	tables *taxonomy.Tables
}

// NewPlanner creates a planner over the given reference tables.
func NewPlanner(tables *taxonomy.Tables) *Planner {
	if tables == nil {
		tables = taxonomy.Default()
	}
	return &Planner{tables: tables}
}

// Plan computes the full skill-gap report. Pure function of the two records
// and the static tables; gap identification is independent of any match
// scoring.
func (p *Planner) Plan(resume *types.ResumeRecord, job *types.JobRecord) *types.PlanReport {
	gaps := p.identifyGaps(resume, job)
	gaps = p.prioritize(gaps)

	return &types.PlanReport{
		SkillGaps:     gaps,
		LearningPlan:  p.buildLearningPlan(gaps),
		Timeline:      buildTimeline(gaps),
		EstimatedTime: p.estimateTotalTime(gaps),
		CareerPaths:   suggestCareerPaths(resume, job),
	}
}
