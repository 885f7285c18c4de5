package taxonomy

import "strings"

// Resource holds the learning metadata for one skill.
type Resource struct {
	Courses      []string
	Platforms    []string
	TimeEstimate string
	Difficulty   string
}

// ResourceTable maps lowercased skill names to learning resources.
type ResourceTable map[string]Resource

// Lookup finds the resource entry for a skill, case-insensitively. A missing
// entry is expected for most skills and is not an error.
func (rt ResourceTable) Lookup(skill string) (Resource, bool) {
	res, ok := rt[strings.ToLower(strings.TrimSpace(skill))]
	return res, ok
}

func defaultResources() ResourceTable {
	return ResourceTable{
		"python": {
			Courses:      []string{"Python for Everybody (Coursera)", "Automate the Boring Stuff"},
			Platforms:    []string{"Codecademy", "freeCodeCamp", "Python.org tutorials"},
			TimeEstimate: "2-3 months",
			Difficulty:   "Beginner",
		},
		"javascript": {
			Courses:      []string{"JavaScript Algorithms and Data Structures (freeCodeCamp)"},
			Platforms:    []string{"MDN Web Docs", "JavaScript.info"},
			TimeEstimate: "2-4 months",
			Difficulty:   "Beginner to Intermediate",
		},
		"react": {
			Courses:      []string{"React - The Complete Guide", "React Tutorial (official)"},
			Platforms:    []string{"React.dev", "Codecademy"},
			TimeEstimate: "1-2 months",
			Difficulty:   "Intermediate",
		},
		"node.js": {
			Courses:      []string{"Node.js Complete Guide", "Express.js Fundamentals"},
			Platforms:    []string{"Node.js official docs", "Express.js docs"},
			TimeEstimate: "1-2 months",
			Difficulty:   "Intermediate",
		},
		"docker": {
			Courses:      []string{"Docker for Beginners", "Docker Deep Dive"},
			Platforms:    []string{"Docker Docs", "Play with Docker"},
			TimeEstimate: "1-2 weeks",
			Difficulty:   "Beginner to Intermediate",
		},
		"kubernetes": {
			Courses:      []string{"Kubernetes for Beginners", "CKA Certification Prep"},
			Platforms:    []string{"Kubernetes Docs", "Katacoda"},
			TimeEstimate: "2-3 months",
			Difficulty:   "Intermediate to Advanced",
		},
		"aws": {
			Courses:      []string{"AWS Certified Cloud Practitioner", "AWS Solutions Architect"},
			Platforms:    []string{"AWS Training", "A Cloud Guru"},
			TimeEstimate: "1-3 months",
			Difficulty:   "Beginner to Advanced",
		},
		"machine learning": {
			Courses:      []string{"Machine Learning by Andrew Ng", "Deep Learning Specialization"},
			Platforms:    []string{"Coursera", "fast.ai"},
			TimeEstimate: "3-6 months",
			Difficulty:   "Intermediate to Advanced",
		},
	}
}
