package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintResumeRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeRecord(&types.ResumeRecord{
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"},
		WorkExperience: []types.WorkExperience{
			{Title: "Software Engineer", Company: "Acme"},
		},
		Skills: []string{"Python", "Sql"},
	})

	out := buf.String()
	assert.Contains(t, out, "STRUCTURED RESUME")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Software Engineer at Acme")
	assert.Contains(t, out, "Skills (2)")
}

func TestPrintJobRecordTruncatesLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRecord(&types.JobRecord{
		JobTitle:        "Backend Engineer",
		ExperienceLevel: types.LevelSenior,
		RequiredSkills:  []string{"A", "B", "C", "D", "E", "F", "G"},
	})

	out := buf.String()
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "... and 2 more")
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(&types.MatchResult{
		OverallScore: 0.72,
		Analysis: types.MatchAnalysis{
			OverallAssessment: "Good match with some skill gaps",
		},
	})

	out := buf.String()
	assert.Contains(t, out, "0.72")
	assert.Contains(t, out, "Good match with some skill gaps")
}

func TestPrintPlanReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPlanReport(&types.PlanReport{})
	assert.Contains(t, buf.String(), "NO SKILL GAPS FOUND")
}

func TestPrintNilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintResumeRecord(nil)
	p.PrintJobRecord(nil)
	p.PrintMatchResult(nil)
	p.PrintPlanReport(nil)
	assert.Empty(t, buf.String())
}

func TestBoxLinesStayWithinWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPlanReport(&types.PlanReport{
		SkillGaps: []types.SkillGap{{
			Skill:    "Kubernetes",
			Priority: types.PriorityHigh,
			Reason:   strings.Repeat("very long reason text ", 10),
		}},
		EstimatedTime: "4 weeks",
	})

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "line too wide: %q", line)
	}
}
