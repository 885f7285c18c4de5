package planner

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// maxCareerPaths caps career path suggestions.
const maxCareerPaths = 3

// suggestCareerPaths applies the fixed rule set over the candidate's current
// skills and the job title, in fixed order.
func suggestCareerPaths(resume *types.ResumeRecord, job *types.JobRecord) []types.CareerPath {
	suggestions := []types.CareerPath{}

	currentSkills := resume.SkillSet()
	jobTitle := strings.ToLower(job.JobTitle)

	if currentSkills["python"] {
		switch {
		case strings.Contains(jobTitle, "data") || currentSkills["machine learning"]:
			suggestions = append(suggestions, types.CareerPath{
				Path:      "Data Scientist / ML Engineer",
				Reason:    "Strong Python foundation with data skills",
				NextSteps: []string{"Learn advanced ML", "Get certifications", "Build portfolio"},
			})
		case strings.Contains(jobTitle, "web") || currentSkills["django"] || currentSkills["flask"]:
			suggestions = append(suggestions, types.CareerPath{
				Path:      "Python Web Developer",
				Reason:    "Python web development experience",
				NextSteps: []string{"Master Django/Flask", "Learn frontend", "Deploy applications"},
			})
		}
	}

	if currentSkills["javascript"] {
		suggestions = append(suggestions, types.CareerPath{
			Path:      "Full Stack JavaScript Developer",
			Reason:    "JavaScript proficiency",
			NextSteps: []string{"Learn React/Node.js", "Build full-stack apps", "Master modern JS"},
		})
	}

	if currentSkills["docker"] || currentSkills["kubernetes"] {
		suggestions = append(suggestions, types.CareerPath{
			Path:      "DevOps Engineer",
			Reason:    "Container and orchestration experience",
			NextSteps: []string{"Learn cloud platforms", "Get DevOps certs", "Master CI/CD"},
		})
	}

	if len(suggestions) > maxCareerPaths {
		suggestions = suggestions[:maxCareerPaths]
	}
	return suggestions
}
