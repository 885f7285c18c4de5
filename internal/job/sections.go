package job

import (
	"regexp"
	"strings"
)

// Section headers. The apostrophe variants cover both raw and preprocessed
// text, where apostrophes have been replaced with spaces.
var (
	requirementHeaders = []*regexp.Regexp{
		regexp.MustCompile(`requirements?`),
		regexp.MustCompile(`qualifications?`),
		regexp.MustCompile(`skills?`),
		regexp.MustCompile(`experience`),
		regexp.MustCompile(`what you\s?'?\s?ll need`),
		regexp.MustCompile(`what we\s?'?\s?re looking for`),
		regexp.MustCompile(`must have`),
	}

	preferredHeaders = []string{
		"preferred", "nice to have", "plus", "bonus", "additional",
	}

	responsibilityHeaders = []*regexp.Regexp{
		regexp.MustCompile(`responsibilities?`),
		regexp.MustCompile(`duties`),
		regexp.MustCompile(`role`),
		regexp.MustCompile(`what you\s?'?\s?ll do`),
		regexp.MustCompile(`job description`),
		regexp.MustCompile(`tasks`),
	}
)

func matchesAnyPattern(line string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

func containsAnyKeyword(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

// harvestSections collects text sections started by a header line and
// accumulated until a blank line or the next header. The header line itself
// belongs to the section.
func harvestSections(text string, isHeader func(lineLower string) bool) []string {
	var sections []string
	var current []string
	inSection := false

	flush := func() {
		if len(current) > 0 {
			sections = append(sections, strings.Join(current, "\n"))
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		lineLower := strings.ToLower(strings.TrimSpace(line))

		switch {
		case isHeader(lineLower):
			flush()
			current = []string{line}
			inSection = true
		case inSection && strings.TrimSpace(line) != "":
			current = append(current, line)
		case inSection:
			flush()
			inSection = false
		}
	}
	flush()

	return sections
}

func findRequirementSections(text string) []string {
	return harvestSections(text, func(line string) bool {
		return matchesAnyPattern(line, requirementHeaders)
	})
}

func findPreferredSections(text string) []string {
	return harvestSections(text, func(line string) bool {
		return containsAnyKeyword(line, preferredHeaders)
	})
}

func findResponsibilitySections(text string) []string {
	return harvestSections(text, func(line string) bool {
		return matchesAnyPattern(line, responsibilityHeaders)
	})
}
