// Package matching scores a structured resume against a structured job
// description across four signals and produces a complete match result even
// when individual signals degrade.
package matching

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// SkillOverlap is the set algebra between resume skills and job skill sets,
// computed once and shared by the similarity engine and the planner so both
// always agree on what is missing.
type SkillOverlap struct {
	MatchingRequired  []string
	MissingRequired   []string
	MatchingPreferred []string
	MissingPreferred  []string
}

// ComputeSkillGaps intersects and differences the resume skill set against
// the job's required and preferred sets. All comparison is lowercase; the
// returned slices are lowercase and sorted.
func ComputeSkillGaps(resume *types.ResumeRecord, job *types.JobRecord) SkillOverlap {
	resumeSkills := resume.SkillSet()
	required := job.RequiredSet()
	preferred := job.PreferredSet()

	return SkillOverlap{
		MatchingRequired:  intersect(required, resumeSkills),
		MissingRequired:   subtract(required, resumeSkills),
		MatchingPreferred: intersect(preferred, resumeSkills),
		MissingPreferred:  subtract(preferred, resumeSkills),
	}
}

func intersect(a, b map[string]bool) []string {
	out := []string{}
	for s := range a {
		if b[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func subtract(a, b map[string]bool) []string {
	out := []string{}
	for s := range a {
		if !b[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
