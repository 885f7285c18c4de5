package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// minBlockLength discards block fragments too short to be a real entry.
const minBlockLength = 50

var (
	blockSplitRe     = regexp.MustCompile(`\n\s*\n`)
	titleCompanyRe   = regexp.MustCompile(`\s+(?:at|-|–)\s+`)
	bulletPrefixRe   = regexp.MustCompile(`^[•\-\*\+\s]*`)
	monthOrYear      = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|January|February|March|April|May|June|July|August|September|October|November|December|\d{1,2}/\d{1,2}|\d{4})`
	durationRe       = regexp.MustCompile(`\b` + monthOrYear + `\s*(?:-|to|–)\s*(?:` + monthOrYear + `|Present|Current)`)
	titleCompanySeps = []string{" at ", " - ", " – "}
)

// extractWorkExperience splits the experience section into blank-line blocks
// and parses each into a work entry. Blocks with neither a title nor a
// company are dropped. The segmentation is deliberately approximate;
// multi-paragraph entries may split into several blocks.
func extractWorkExperience(experienceText string) []types.WorkExperience {
	experiences := []types.WorkExperience{}

	if experienceText == "" {
		return experiences
	}

	for _, block := range blockSplitRe.Split(experienceText, -1) {
		block = strings.TrimSpace(block)
		if len(block) < minBlockLength {
			continue
		}

		lines := strings.Split(block, "\n")
		var exp types.WorkExperience

		firstLine := strings.TrimSpace(lines[0])
		if containsAnySep(firstLine) {
			parts := titleCompanyRe.Split(firstLine, 2)
			if len(parts) == 2 {
				exp.Title = strings.TrimSpace(parts[0])
				exp.Company = strings.TrimSpace(parts[1])
			}
		}

		for _, line := range lines {
			if match := durationRe.FindString(line); match != "" {
				exp.Duration = match
				break
			}
		}

		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			if len(line) > 10 {
				exp.Description = append(exp.Description, bulletPrefixRe.ReplaceAllString(line, ""))
			}
		}

		if exp.Title != "" || exp.Company != "" {
			experiences = append(experiences, exp)
		}
	}

	return experiences
}

func containsAnySep(line string) bool {
	for _, sep := range titleCompanySeps {
		if strings.Contains(line, sep) {
			return true
		}
	}
	return false
}
