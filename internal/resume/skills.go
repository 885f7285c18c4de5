package resume

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// skillCuePatterns extract skill phrases around linguistic cues, applied to
// lowercased text.
var skillCuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:proficient|experienced|skilled|knowledgeable)\s+in\s+([a-z\s+#]+)`),
	regexp.MustCompile(`\b([a-z\s+#]+)\s+(?:development|programming|framework|library|tool|platform)`),
	regexp.MustCompile(`\b(?:using|with|via|through)\s+([a-z\s+#]+)\s+(?:framework|library|tool)`),
}

// skillStoplist drops common-word artifacts of the cue patterns.
var skillStoplist = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
}

// extractSkills unions taxonomy containment matches with cue-pattern phrases,
// title-cased and sorted for deterministic output.
func extractSkills(text string, tables *taxonomy.Tables) []string {
	found := make(map[string]bool)
	textLower := strings.ToLower(text)

	for _, skill := range tables.AllSkills() {
		if strings.Contains(textLower, skill) {
			found[skill] = true
		}
	}

	for _, pattern := range skillCuePatterns {
		for _, match := range pattern.FindAllStringSubmatch(textLower, -1) {
			skill := strings.TrimSpace(match[1])
			if len(skill) > 2 && !skillStoplist[skill] {
				found[skill] = true
			}
		}
	}

	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, types.TitleCase(skill))
	}
	sort.Strings(out)
	return out
}
