package job

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxResponsibilities caps extracted responsibility items.
const maxResponsibilities = 10

// titleNotFound is the literal terminal value when no title can be found.
const titleNotFound = "Position Title Not Found"

var (
	titleDisqualifiers = []string{
		"company", "location", "salary", "about", "we are", "join", "looking for",
	}

	titleFallbackPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:job title|position|role):\s*([^\n]+)`),
		regexp.MustCompile(`(?im)(?:we are hiring|we\s?'?\s?re looking for)\s+(?:a|an)?\s*([^\n]+)`),
		regexp.MustCompile(`(?im)^([A-Z][^.\n]{10,50})(?:\n|\.)`),
	}

	// requiredContextWords gate taxonomy matches inside requirement sections.
	requiredContextWords = []string{"required", "must", "essential", "mandatory", "need"}

	// requiredSkillPatterns extract skill phrases from requirement sections.
	requiredSkillPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:proficient|experienced|skilled|strong)\s+in\s+([a-zA-Z\s+#]+)`),
		regexp.MustCompile(`(?i)\b([a-zA-Z\s+#]+)\s+(?:experience|knowledge|skills?)`),
		regexp.MustCompile(`(?i)\b(?:using|with|knowledge of)\s+([a-zA-Z\s+#]+)`),
	}

	// nonTechnicalWords filter cue-pattern artifacts that are not skills.
	nonTechnicalWords = map[string]bool{
		"the": true, "and": true, "for": true, "are": true, "but": true,
		"not": true, "with": true, "from": true, "this": true, "that": true,
		"will": true, "have": true, "been": true, "were": true, "they": true,
		"team": true, "work": true, "project": true, "management": true,
		"communication": true,
	}

	seniorYearsRe  = regexp.MustCompile(`\b(?:5\+|6\+|7\+|8\+|9\+|10\+)\s+years?\b`)
	seniorWordRe   = regexp.MustCompile(`\b(?:senior|lead|principal|architect)\b`)
	midYearsRe     = regexp.MustCompile(`\b(?:3\+|4\+)\s+years?\b`)
	juniorYearsRe  = regexp.MustCompile(`\b(?:1\+|2\+)\s+years?\b`)
	entryKeywordRe = regexp.MustCompile(`\b(?:entry[- ]level|graduate|fresh)\b`)

	degreeKeywordRe    = regexp.MustCompile(`\b(bachelor|master|phd|doctorate|mba|msc|bsc|ba|ma)\b`)
	degreeInRe         = regexp.MustCompile(`\b(degree|diploma|certificate)\s+in\s+[^\n]*`)
	fieldOfStudyRe     = regexp.MustCompile(`\b(?:computer science|engineering|business|mathematics|physics|chemistry)\b[^\n]*`)
	vendorCertRe       = regexp.MustCompile(`(?i)\b(?:aws|azure|gcp|google cloud|microsoft|comptia|cisco|red hat)\s+(?:certified|certification)\b`)
	certAcronymRe      = regexp.MustCompile(`(?i)\b(?:pmp|csm|cspo|cissp|ceh|ccna|ccnp)\b`)
	responsibilitiesRe = regexp.MustCompile(`[•\-\*\+\n]`)
	bulletStripRe      = regexp.MustCompile(`^[•\-\*\+\s]*`)
)

// extractJobTitle picks the first plausible title line, falling back to
// labeled patterns and finally to a literal not-found value.
func extractJobTitle(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(line) >= 100 {
			continue
		}
		if containsAnyKeyword(strings.ToLower(line), titleDisqualifiers) {
			continue
		}
		return types.TitleCase(line)
	}

	for _, pattern := range titleFallbackPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return types.TitleCase(strings.TrimSpace(match[1]))
		}
	}

	return titleNotFound
}

// extractRequiredSkills unions taxonomy matches inside requirement sections
// that pass the required-context test with cue-pattern phrases filtered by
// the technical-skill heuristic.
func extractRequiredSkills(text string, tables *taxonomy.Tables) []string {
	found := make(map[string]bool)

	for _, section := range findRequirementSections(text) {
		sectionLower := strings.ToLower(section)
		requiredContext := containsAnyKeyword(sectionLower, requiredContextWords)

		if requiredContext {
			for _, skill := range tables.AllSkills() {
				if strings.Contains(sectionLower, skill) {
					found[skill] = true
				}
			}
		}

		for _, pattern := range requiredSkillPatterns {
			for _, match := range pattern.FindAllStringSubmatch(section, -1) {
				skill := strings.ToLower(strings.TrimSpace(match[1]))
				if isTechnicalSkill(skill) {
					found[skill] = true
				}
			}
		}
	}

	return types.SortedSkills(found)
}

// extractPreferredSkills collects taxonomy matches inside preferred sections.
func extractPreferredSkills(text string, tables *taxonomy.Tables) []string {
	found := make(map[string]bool)

	for _, section := range findPreferredSections(text) {
		sectionLower := strings.ToLower(section)
		for _, skill := range tables.AllSkills() {
			if strings.Contains(sectionLower, skill) {
				found[skill] = true
			}
		}
	}

	return types.SortedSkills(found)
}

// extractExperienceLevel applies fixed-priority threshold rules over the full
// text; the first matching rule wins.
func extractExperienceLevel(text string) string {
	textLower := strings.ToLower(text)

	switch {
	case seniorYearsRe.MatchString(textLower) || seniorWordRe.MatchString(textLower):
		return types.LevelSenior
	case midYearsRe.MatchString(textLower):
		return types.LevelMid
	case juniorYearsRe.MatchString(textLower):
		return types.LevelJunior
	case entryKeywordRe.MatchString(textLower):
		return types.LevelEntry
	default:
		return types.LevelMid
	}
}

// extractQualifications scans for degree, field-of-study and certification
// mentions, deduplicated and sorted.
func extractQualifications(text string) []string {
	found := make(map[string]bool)
	textLower := strings.ToLower(text)

	for _, match := range degreeKeywordRe.FindAllStringSubmatch(textLower, -1) {
		keyword := strings.TrimSpace(match[1])
		if len(keyword) > 5 {
			found[types.TitleCase(keyword)] = true
		}
	}
	for _, match := range degreeInRe.FindAllStringSubmatch(textLower, -1) {
		keyword := strings.TrimSpace(match[1])
		if len(keyword) > 5 {
			found[types.TitleCase(keyword)] = true
		}
	}
	for _, match := range fieldOfStudyRe.FindAllString(textLower, -1) {
		phrase := strings.TrimSpace(match)
		if len(phrase) > 5 {
			found[types.TitleCase(phrase)] = true
		}
	}

	for _, match := range vendorCertRe.FindAllString(text, -1) {
		found[strings.ToUpper(match)] = true
	}
	for _, match := range certAcronymRe.FindAllString(text, -1) {
		found[strings.ToUpper(match)] = true
	}

	out := make([]string, 0, len(found))
	for q := range found {
		out = append(out, q)
	}
	sort.Strings(out)
	return out
}

// extractResponsibilities splits responsibility sections into bullet items of
// reasonable length, capped at ten.
func extractResponsibilities(text string) []string {
	responsibilities := []string{}

	for _, section := range findResponsibilitySections(text) {
		for _, item := range responsibilitiesRe.Split(section, -1) {
			item = strings.TrimSpace(item)
			if len(item) > 20 && len(item) < 200 {
				item = bulletStripRe.ReplaceAllString(item, "")
				if item != "" {
					responsibilities = append(responsibilities, item)
				}
			}
			if len(responsibilities) == maxResponsibilities {
				return responsibilities
			}
		}
	}

	return responsibilities
}

// extractBenefits matches the fixed benefit keyword list by containment.
func extractBenefits(text string, tables *taxonomy.Tables) []string {
	benefits := []string{}
	textLower := strings.ToLower(text)

	for _, keyword := range tables.Benefits {
		if strings.Contains(textLower, keyword) {
			benefits = append(benefits, types.TitleCase(keyword))
		}
	}

	return benefits
}

func isTechnicalSkill(skill string) bool {
	return len(skill) > 2 && !nonTechnicalWords[skill]
}
