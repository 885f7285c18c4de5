package matching

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	seniorCues = []string{"senior", "lead", "principal", "architect"}
	midCues    = []string{"mid", "intermediate"}
	juniorCues = []string{"junior", "entry"}
)

// InferResumeLevel estimates the candidate's experience level from seniority
// keywords in the experience text, falling back to the entry count. A resume
// with no work experience defaults to Mid-level.
func InferResumeLevel(resume *types.ResumeRecord) string {
	if len(resume.WorkExperience) == 0 {
		return types.LevelMid
	}

	experienceText := resume.ExperienceText()

	switch {
	case containsAnyCue(experienceText, seniorCues):
		return "Senior"
	case containsAnyCue(experienceText, midCues):
		return types.LevelMid
	case containsAnyCue(experienceText, juniorCues):
		return types.LevelJunior
	case len(resume.WorkExperience) > 3:
		return "Senior"
	case len(resume.WorkExperience) > 1:
		return types.LevelMid
	default:
		return types.LevelJunior
	}
}

// experienceScore maps the ordinal distance between two levels to a fixed
// compatibility score.
func experienceScore(tables *taxonomy.Tables, resumeLevel, jobLevel string) float64 {
	diff := tables.Ordinal(resumeLevel) - tables.Ordinal(jobLevel)
	if diff < 0 {
		diff = -diff
	}

	switch diff {
	case 0:
		return 1.0
	case 1:
		return 0.8
	case 2:
		return 0.6
	default:
		return 0.3
	}
}

func containsAnyCue(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
