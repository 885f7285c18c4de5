// Package job structures raw job description text into a JobRecord. The
// structurer is a pure function of the text and the injected taxonomy; empty
// or unparseable input yields the zero-value record, never an error.
package job

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Structurer turns job description text into structured records. Safe for
// concurrent use; all state is read-only after construction.
type Structurer struct {
	tables *taxonomy.Tables
}

// NewStructurer creates a job description structurer.
func NewStructurer(tables *taxonomy.Tables) *Structurer {
	if tables == nil {
		tables = taxonomy.Default()
	}
	return &Structurer{tables: tables}
}

var (
	horizontalSpaceRe = regexp.MustCompile(`[ \t]+`)
	specialCharsRe    = regexp.MustCompile(`[^\w\s.,;:!?()-]`)
)

// preprocess normalizes horizontal whitespace per line and strips special
// characters. Line structure is preserved; blank lines delimit sections.
func preprocess(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = specialCharsRe.ReplaceAllString(line, " ")
		line = horizontalSpaceRe.ReplaceAllString(line, " ")
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Structure extracts a JobRecord from job description text.
func (s *Structurer) Structure(text string) *types.JobRecord {
	if strings.TrimSpace(text) == "" {
		return types.ZeroJobRecord()
	}

	cleaned := preprocess(text)

	return &types.JobRecord{
		JobTitle:         extractJobTitle(cleaned),
		RequiredSkills:   extractRequiredSkills(cleaned, s.tables),
		PreferredSkills:  extractPreferredSkills(cleaned, s.tables),
		ExperienceLevel:  extractExperienceLevel(cleaned),
		Qualifications:   extractQualifications(cleaned),
		Responsibilities: extractResponsibilities(cleaned),
		Benefits:         extractBenefits(cleaned, s.tables),
	}
}
