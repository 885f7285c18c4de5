package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// maxHighlights caps extracted highlights in document order.
const maxHighlights = 5

var (
	emailRe     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe     = regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})\b`)
	highlightRe = regexp.MustCompile(`^[•\-✓★]\s*(.+)`)
)

// extractPersonalInfo pulls contact details from the text and the entity map.
// Name and location come from the first PERSON and GPE entities when present.
func extractPersonalInfo(text string, entities types.EntityMap) types.PersonalInfo {
	var info types.PersonalInfo

	if persons := entities["PERSON"]; len(persons) > 0 {
		info.Name = persons[0]
	}
	if places := entities["GPE"]; len(places) > 0 {
		info.Location = places[0]
	}

	info.Email = emailRe.FindString(text)
	info.Phone = phoneRe.FindString(text)

	return info
}

// extractHighlights collects bullet-marked lines with meaningful trailing
// text, capped at the first five in document order.
func extractHighlights(text string) []string {
	highlights := []string{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		match := highlightRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		highlight := strings.TrimSpace(match[1])
		if len(highlight) > 10 {
			highlights = append(highlights, highlight)
			if len(highlights) == maxHighlights {
				break
			}
		}
	}

	return highlights
}
