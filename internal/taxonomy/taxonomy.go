// Package taxonomy provides the immutable reference tables shared by the
// structurers, the similarity engine and the planner: the skill database used
// for containment matching, the two-level category tree used for gap
// categorization, the learning-resource table and the fixed keyword lists.
//
// Tables are plain data constructed once and injected into each component, so
// tests can substitute smaller taxonomies. No component mutates them.
package taxonomy

import "strings"

// Tables bundles every reference table the pipeline needs.
type Tables struct {
	// SkillsDB maps a coarse category to the skills matched by lowercase
	// containment during structuring.
	SkillsDB map[string][]string

	// Categories is the two-level category -> subcategory -> skills tree used
	// by the planner to categorize gaps.
	Categories map[string]map[string][]string

	// Resources maps a lowercased skill name to its learning metadata.
	Resources ResourceTable

	// Ordinals ranks experience-level labels for distance-based scoring.
	Ordinals map[string]int

	// Benefits is the literal-containment keyword list for job benefits.
	Benefits []string

	// ResponsibilityTopics maps a responsibility topic keyword to the
	// canonical skills it implies.
	ResponsibilityTopics map[string][]string

	// ProjectTemplates maps a coarse project category to practice project
	// ideas, first match taken.
	ProjectTemplates map[string][]string
}

// Default returns the production tables.
func Default() *Tables {
	return &Tables{
		SkillsDB:             defaultSkillsDB(),
		Categories:           defaultCategories(),
		Resources:            defaultResources(),
		Ordinals:             defaultOrdinals(),
		Benefits:             defaultBenefits(),
		ResponsibilityTopics: defaultResponsibilityTopics(),
		ProjectTemplates:     defaultProjectTemplates(),
	}
}

// AllSkills returns every skill in the database, lowercased. Order is not
// significant; callers treating the result as a set must not rely on it.
func (t *Tables) AllSkills() []string {
	var out []string
	for _, skills := range t.SkillsDB {
		out = append(out, skills...)
	}
	return out
}

// Ordinal returns the rank of an experience-level label, defaulting to the
// Mid-level rank for unknown labels.
func (t *Tables) Ordinal(level string) int {
	if rank, ok := t.Ordinals[level]; ok {
		return rank
	}
	return t.Ordinals["Mid-level"]
}

// Categorize resolves a skill to "category - subcategory" via the two-level
// tree. Skills absent from the tree fall back to a coarse keyword guess and
// finally to "other".
func (t *Tables) Categorize(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))

	for category, subcategories := range t.Categories {
		for subcategory, skills := range subcategories {
			for _, s := range skills {
				if s == lower {
					return category + " - " + subcategory
				}
			}
		}
	}

	// Coarse fallback by keyword family.
	switch {
	case containsAny(lower, "python", "java", "javascript", "c++", "ruby"):
		return "programming_languages"
	case containsAny(lower, "react", "angular", "vue", "html", "css"):
		return "web_development"
	case containsAny(lower, "aws", "azure", "docker", "kubernetes"):
		return "cloud_platforms"
	default:
		return "other"
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func defaultSkillsDB() map[string][]string {
	return map[string][]string{
		"programming_languages": {
			"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby", "go", "rust",
			"swift", "kotlin", "scala", "perl", "r", "matlab", "shell", "bash", "powershell",
		},
		"web_technologies": {
			"html", "css", "react", "angular", "vue", "node.js", "express", "django", "flask",
			"spring", "asp.net", "jquery", "bootstrap", "sass", "less", "webpack", "babel",
		},
		"databases": {
			"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle", "sql server",
			"sqlite", "cassandra", "dynamodb", "firebase", "couchdb",
		},
		"cloud_platforms": {
			"aws", "azure", "google cloud", "heroku", "digitalocean", "linode", "vercel",
			"netlify", "firebase", "cloudflare",
		},
		"devops_tools": {
			"docker", "kubernetes", "jenkins", "gitlab ci", "github actions", "terraform",
			"ansible", "puppet", "chef", "nginx", "apache", "linux", "ubuntu", "centos",
		},
		"data_science": {
			"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras", "jupyter",
			"matplotlib", "seaborn", "tableau", "power bi", "apache spark", "hadoop",
		},
		"soft_skills": {
			"leadership", "communication", "problem solving", "teamwork", "project management",
			"agile", "scrum", "kanban", "time management", "analytical thinking",
		},
	}
}

func defaultCategories() map[string]map[string][]string {
	return map[string]map[string][]string{
		"programming_languages": {
			"beginner":     {"python", "javascript", "html", "css"},
			"intermediate": {"java", "c#", "php", "ruby", "go"},
			"advanced":     {"c++", "rust", "scala", "haskell"},
		},
		"web_development": {
			"frontend":  {"react", "angular", "vue", "typescript", "webpack"},
			"backend":   {"node.js", "express", "django", "flask", "spring"},
			"fullstack": {"mern", "mean", "django-rest", "graphql"},
		},
		"data_science": {
			"basics":   {"python", "pandas", "numpy", "matplotlib"},
			"ml":       {"scikit-learn", "tensorflow", "pytorch", "keras"},
			"advanced": {"apache spark", "hadoop", "aws sagemaker"},
		},
		"cloud_platforms": {
			"basics":   {"aws", "azure", "google cloud"},
			"services": {"ec2", "s3", "lambda", "kubernetes", "docker"},
			"advanced": {"terraform", "cloudformation", "ansible"},
		},
		"devops": {
			"tools":     {"docker", "kubernetes", "jenkins", "gitlab ci"},
			"platforms": {"aws", "azure devops", "google cloud build"},
			"practices": {"ci/cd", "infrastructure as code", "monitoring"},
		},
		"databases": {
			"relational": {"mysql", "postgresql", "oracle", "sql server"},
			"nosql":      {"mongodb", "redis", "cassandra", "dynamodb"},
			"querying":   {"sql", "nosql", "graph databases"},
		},
	}
}

func defaultOrdinals() map[string]int {
	return map[string]int{
		"Entry-level": 1,
		"Junior":      2,
		"Mid-level":   3,
		"Senior":      4,
		"Senior/Lead": 4,
		"Lead":        5,
		"Principal":   5,
		"Executive":   6,
	}
}

func defaultBenefits() []string {
	return []string{
		"health insurance", "dental", "vision", "401k", "retirement",
		"remote work", "flexible hours", "vacation", "pto", "bonus",
		"stock options", "professional development", "training",
		"gym membership", "free lunch", "catered meals",
	}
}

func defaultResponsibilityTopics() map[string][]string {
	return map[string][]string{
		"design":        {"ui/ux design", "figma", "adobe xd", "prototyping"},
		"database":      {"sql", "nosql", "database design", "optimization"},
		"api":           {"rest", "graphql", "api design", "documentation"},
		"testing":       {"unit testing", "integration testing", "tdd", "selenium"},
		"security":      {"owasp", "encryption", "authentication", "authorization"},
		"performance":   {"optimization", "caching", "monitoring", "profiling"},
		"deployment":    {"ci/cd", "docker", "kubernetes", "cloud platforms"},
		"collaboration": {"git", "agile", "scrum", "jira", "confluence"},
	}
}

func defaultProjectTemplates() map[string][]string {
	return map[string][]string{
		"web": {
			"Build a personal portfolio website",
			"Create a task management app",
			"Develop a blog platform",
			"Build an e-commerce site",
		},
		"data": {
			"Create a data visualization dashboard",
			"Build a recommendation system",
			"Develop a predictive model",
			"Analyze a public dataset",
		},
		"devops": {
			"Set up CI/CD pipeline",
			"Containerize an application",
			"Deploy app to cloud platform",
			"Implement monitoring solution",
		},
		"api": {
			"Build a REST API",
			"Create a GraphQL API",
			"Develop API documentation",
			"Implement authentication",
		},
	}
}
