package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:Bachelor|Master|PhD|Doctorate|Associate|MBA|MSc|BSc|BEng|MEng|MA|BA)\b.*?(?:of|in)\s+([A-Za-z\s]+)`),
		regexp.MustCompile(`(?i)\b([A-Za-z\s]+)\s+(?:Degree|Certificate|Diploma)\b`),
	}
	institutionKeywords = []string{"university", "college", "institute", "school"}
	yearRe              = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// extractEducation splits the education section into blank-line blocks and
// parses degree, institution and year out of each. Blocks with neither a
// degree nor an institution are dropped.
func extractEducation(educationText string) []types.Education {
	educationList := []types.Education{}

	if educationText == "" {
		return educationList
	}

	for _, block := range blockSplitRe.Split(educationText, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		lines := strings.Split(block, "\n")
		var edu types.Education

		for _, line := range lines {
			line = strings.TrimSpace(line)

			if edu.Degree == "" {
				for _, pattern := range degreePatterns {
					if match := pattern.FindString(line); match != "" {
						edu.Degree = match
						break
					}
				}
			}

			if edu.Institution == "" {
				lineLower := strings.ToLower(line)
				for _, keyword := range institutionKeywords {
					if strings.Contains(lineLower, keyword) {
						edu.Institution = line
						break
					}
				}
			}

			if match := yearRe.FindString(line); match != "" {
				edu.Year = match
			}
		}

		for _, line := range lines {
			line = strings.TrimSpace(line)
			if len(line) > 5 && line != edu.Degree && line != edu.Institution {
				edu.Details = append(edu.Details, line)
			}
		}

		if edu.Degree != "" || edu.Institution != "" {
			educationList = append(educationList, edu)
		}
	}

	return educationList
}
