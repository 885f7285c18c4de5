package planner

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// maxProjects caps project suggestions.
const maxProjects = 5

// projectCategoryOrder fixes the template scan order; the first matching
// category's first project is taken.
var projectCategoryOrder = []string{"web", "data", "devops", "api"}

// buildLearningPlan routes gaps into timeframe buckets by their categorical
// priority and mirrors available resource metadata into a flat list.
func (p *Planner) buildLearningPlan(gaps []types.SkillGap) types.LearningPlan {
	plan := types.LearningPlan{
		ImmediateActions: []types.PlanEntry{},
		ShortTermGoals:   []types.PlanEntry{},
		LongTermGoals:    []types.PlanEntry{},
		Resources:        []types.ResourceInfo{},
		Projects:         []types.ProjectSuggestion{},
	}

	for _, gap := range gaps {
		var info *types.ResourceInfo
		if res, ok := p.tables.Resources.Lookup(gap.Skill); ok {
			info = &types.ResourceInfo{
				Courses:    res.Courses,
				Platforms:  res.Platforms,
				Difficulty: res.Difficulty,
			}
			plan.Resources = append(plan.Resources, types.ResourceInfo{
				Skill:      gap.Skill,
				Courses:    res.Courses,
				Platforms:  res.Platforms,
				Difficulty: res.Difficulty,
			})
		}

		switch gap.Priority {
		case types.PriorityHigh:
			plan.ImmediateActions = append(plan.ImmediateActions, types.PlanEntry{
				Skill:     gap.Skill,
				Action:    "Start learning " + gap.Skill,
				Resources: info,
				Timeframe: "1-2 weeks",
			})
		case types.PriorityMedium:
			plan.ShortTermGoals = append(plan.ShortTermGoals, types.PlanEntry{
				Skill:     gap.Skill,
				Action:    "Build proficiency in " + gap.Skill,
				Resources: info,
				Timeframe: "1-3 months",
			})
		default:
			plan.LongTermGoals = append(plan.LongTermGoals, types.PlanEntry{
				Skill:     gap.Skill,
				Action:    "Master " + gap.Skill,
				Resources: info,
				Timeframe: "3-6 months",
			})
		}
	}

	plan.Projects = p.suggestProjects(gaps)

	return plan
}

// suggestProjects matches the top five priority-sorted gaps against the
// fixed project template map. Gaps with no matching category yield nothing.
func (p *Planner) suggestProjects(gaps []types.SkillGap) []types.ProjectSuggestion {
	projects := []types.ProjectSuggestion{}

	if len(gaps) > maxProjects {
		gaps = gaps[:maxProjects]
	}

	for _, gap := range gaps {
		skillLower := strings.ToLower(gap.Skill)
		categoryLower := strings.ToLower(gap.Category)

		var project string
		for _, cat := range projectCategoryOrder {
			if strings.Contains(categoryLower, cat) || strings.Contains(skillLower, cat) {
				project = p.tables.ProjectTemplates[cat][0]
				break
			}
		}
		if project == "" {
			continue
		}

		difficulty := "Intermediate"
		if gap.Priority == types.PriorityHigh {
			difficulty = "Beginner"
		}

		projects = append(projects, types.ProjectSuggestion{
			Skill:         gap.Skill,
			Project:       project,
			Difficulty:    difficulty,
			EstimatedTime: "2-4 weeks",
		})
	}

	return projects
}
