package planner

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// prioritize assigns each gap its derived priority score and stably sorts
// descending. The categorical priority field is untouched; it drives
// timeframe bucketing, not ordering.
func (p *Planner) prioritize(gaps []types.SkillGap) []types.SkillGap {
	for i := range gaps {
		gaps[i].PriorityScore = p.priorityScore(&gaps[i])
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].PriorityScore > gaps[j].PriorityScore
	})

	return gaps
}

// priorityScore derives base(type) x difficulty multiplier x time multiplier.
func (p *Planner) priorityScore(gap *types.SkillGap) float64 {
	var base float64
	switch gap.Type {
	case types.GapTypeRequired:
		base = 1.0
	case types.GapTypePreferred:
		base = 0.7
	default:
		base = 0.5
	}

	difficulty := "Intermediate"
	timeEstimate := "2-3 months"
	if res, ok := p.tables.Resources.Lookup(gap.Skill); ok {
		difficulty = res.Difficulty
		timeEstimate = res.TimeEstimate
	}

	var difficultyMultiplier float64
	switch difficulty {
	case "Beginner":
		difficultyMultiplier = 1.0
	case "Intermediate":
		difficultyMultiplier = 0.8
	default:
		difficultyMultiplier = 0.6
	}

	var timeMultiplier float64
	switch {
	case strings.Contains(timeEstimate, "1-2 weeks"):
		timeMultiplier = 1.2
	case strings.Contains(timeEstimate, "1-2 months"):
		timeMultiplier = 1.0
	case strings.Contains(timeEstimate, "3-6 months"):
		timeMultiplier = 0.8
	default:
		timeMultiplier = 0.9
	}

	return base * difficultyMultiplier * timeMultiplier
}
