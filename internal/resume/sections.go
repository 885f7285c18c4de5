package resume

import (
	"regexp"
	"strings"
)

// sectionPatterns map a section name to the header keywords that start it.
// A header line starts a new section; its content accumulates until the next
// header or end of text. Text before the first header belongs to no section.
var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"experience", regexp.MustCompile(`(?:work\s+experience|professional\s+experience|employment|career\s+history)`)},
	{"education", regexp.MustCompile(`(?:education|academic\s+background|qualifications|degrees)`)},
	{"skills", regexp.MustCompile(`(?:skills|technical\s+skills|competencies|expertise)`)},
	{"projects", regexp.MustCompile(`(?:projects|personal\s+projects|professional\s+projects)`)},
	{"certifications", regexp.MustCompile(`(?:certifications|certificates|licenses)`)},
	{"summary", regexp.MustCompile(`(?:summary|objective|profile|about)`)},
}

// identifySections segments resume text into named sections by header lines.
func identifySections(text string) map[string]string {
	sections := make(map[string]string)

	lines := strings.Split(text, "\n")
	currentSection := ""
	var sectionContent []string

	flush := func() {
		if currentSection != "" && len(sectionContent) > 0 {
			sections[currentSection] = strings.Join(sectionContent, "\n")
		}
	}

	for _, line := range lines {
		lineLower := strings.ToLower(strings.TrimSpace(line))

		matched := false
		for _, sp := range sectionPatterns {
			if sp.pattern.MatchString(lineLower) {
				flush()
				currentSection = sp.name
				sectionContent = nil
				matched = true
				break
			}
		}
		if !matched && currentSection != "" {
			sectionContent = append(sectionContent, line)
		}
	}
	flush()

	return sections
}
