package planner

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// maxTimelineSkills is how many priority-sorted gaps enter the timeline.
	maxTimelineSkills = 10
	// maxEstimatedSkills is how many gaps count toward the total estimate.
	maxEstimatedSkills = 8
	// defaultSkillWeeks is assumed when a skill has no resource entry.
	defaultSkillWeeks = 8
)

var firstNumberRe = regexp.MustCompile(`\d+`)

// buildTimeline buckets the top priority-sorted gaps into learning phases and
// attaches the four fixed milestones.
func buildTimeline(gaps []types.SkillGap) types.Timeline {
	timeline := types.Timeline{
		Week1To2:  []string{},
		Month1To2: []string{},
		Month3To6: []string{},
	}

	for i, gap := range gaps {
		if i == maxTimelineSkills {
			break
		}
		switch {
		case i < 3:
			timeline.Week1To2 = append(timeline.Week1To2, gap.Skill)
		case i < 6:
			timeline.Month1To2 = append(timeline.Month1To2, gap.Skill)
		default:
			timeline.Month3To6 = append(timeline.Month3To6, gap.Skill)
		}
	}

	firstProjectSkill := "learned skills"
	if len(timeline.Month1To2) > 0 {
		firstProjectSkill = timeline.Month1To2[0]
	}

	basics := timeline.Week1To2
	if len(basics) > 2 {
		basics = basics[:2]
	}

	timeline.Milestones = []types.Milestone{
		{Week: 2, Achievement: "Complete basics of " + strings.Join(basics, ", ")},
		{Month: 1, Achievement: "Build first project using " + firstProjectSkill},
		{Month: 3, Achievement: "Complete portfolio project demonstrating new skills"},
		{Month: 6, Achievement: "Achieve proficiency in all targeted skills"},
	}

	return timeline
}

// estimateTotalTime sums parsed per-skill estimates over the top gaps and
// renders the sum as weeks or months.
func (p *Planner) estimateTotalTime(gaps []types.SkillGap) string {
	if len(gaps) > maxEstimatedSkills {
		gaps = gaps[:maxEstimatedSkills]
	}

	totalWeeks := 0
	for _, gap := range gaps {
		totalWeeks += p.skillWeeks(gap.Skill)
	}

	if totalWeeks <= 8 {
		return strconv.Itoa(totalWeeks) + " weeks"
	}

	months := totalWeeks / 4
	remaining := totalWeeks % 4
	if remaining > 0 {
		return strconv.Itoa(months) + " months, " + strconv.Itoa(remaining) + " weeks"
	}
	return strconv.Itoa(months) + " months"
}

func (p *Planner) skillWeeks(skill string) int {
	res, ok := p.tables.Resources.Lookup(skill)
	if !ok {
		return defaultSkillWeeks
	}

	estimate := res.TimeEstimate
	number := firstNumberRe.FindString(estimate)
	if number == "" {
		return defaultSkillWeeks
	}
	n, err := strconv.Atoi(number)
	if err != nil {
		return defaultSkillWeeks
	}

	switch {
	case strings.Contains(estimate, "weeks"):
		return n
	case strings.Contains(estimate, "months"):
		return n * 4
	default:
		return defaultSkillWeeks
	}
}
