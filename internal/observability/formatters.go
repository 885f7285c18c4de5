// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func skillList(sb *strings.Builder, label string, skills []string, limit int) {
	if len(skills) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(skills), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-limit))
	}
}

// PrintResumeRecord outputs a human-readable summary of the structured resume.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", record.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", record.PersonalInfo.Email))
	sb.WriteString(fmt.Sprintf("Location: %s\n", record.PersonalInfo.Location))
	sb.WriteString("\n")

	if len(record.WorkExperience) > 0 {
		sb.WriteString(fmt.Sprintf("Work Experience (%d):\n", len(record.WorkExperience)))
		count := min(len(record.WorkExperience), 3)
		for i := 0; i < count; i++ {
			exp := record.WorkExperience[i]
			entry := exp.Title
			if exp.Company != "" {
				entry += " at " + exp.Company
			}
			if len(entry) > 50 {
				entry = entry[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", entry))
		}
		if len(record.WorkExperience) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.WorkExperience)-3))
		}
		sb.WriteString("\n")
	}

	if len(record.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(record.Education), 2)
		for i := 0; i < count; i++ {
			edu := record.Education[i]
			entry := edu.Degree
			if edu.Institution != "" {
				entry += ", " + edu.Institution
			}
			if len(entry) > 50 {
				entry = entry[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", entry))
		}
		sb.WriteString("\n")
	}

	skillList(&sb, fmt.Sprintf("Skills (%d)", len(record.Skills)), record.Skills, maxItemsToShow)

	p.printBox("STRUCTURED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobRecord outputs a human-readable summary of the structured job description.
func (p *Printer) PrintJobRecord(record *types.JobRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", record.JobTitle))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", record.ExperienceLevel))
	sb.WriteString("\n")

	skillList(&sb, "Required Skills", record.RequiredSkills, maxItemsToShow)
	if len(record.RequiredSkills) > 0 {
		sb.WriteString("\n")
	}
	skillList(&sb, "Preferred Skills", record.PreferredSkills, 3)
	if len(record.PreferredSkills) > 0 {
		sb.WriteString("\n")
	}

	if len(record.Responsibilities) > 0 {
		sb.WriteString(fmt.Sprintf("Responsibilities: %d\n", len(record.Responsibilities)))
	}
	if len(record.Qualifications) > 0 {
		sb.WriteString(fmt.Sprintf("Qualifications:   %d\n", len(record.Qualifications)))
	}

	p.printBox("STRUCTURED JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the similarity scores and qualitative analysis.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall Score:    %.2f\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("  Semantic:       %.2f\n", result.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("  Skills:         %.2f\n", result.SkillsMatch))
	sb.WriteString(fmt.Sprintf("  Experience:     %.2f\n", result.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("  Text:           %.2f\n", result.TextSimilarity))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Assessment: %s\n", result.Analysis.OverallAssessment))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", result.Analysis.ExperienceAlignment))
	sb.WriteString("\n")

	skillList(&sb, "Strengths", result.Analysis.Strengths, 3)
	if len(result.Analysis.Strengths) > 0 {
		sb.WriteString("\n")
	}
	skillList(&sb, "Weaknesses", result.Analysis.Weaknesses, 3)
	if len(result.Analysis.Weaknesses) > 0 {
		sb.WriteString("\n")
	}
	skillList(&sb, "Recommendations", result.Recommendations, 3)

	p.printBox("MATCH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPlanReport outputs the top skill gaps and timeline summary.
func (p *Printer) PrintPlanReport(report *types.PlanReport) {
	if report == nil {
		return
	}

	if len(report.SkillGaps) == 0 {
		//nolint:errcheck // writing to stdout; errors are not recoverable
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SKILL GAPS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skill gaps:\n\n", len(report.SkillGaps)))

	count := min(len(report.SkillGaps), maxItemsToShow)
	for i := 0; i < count; i++ {
		gap := report.SkillGaps[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, gap.Skill, gap.Priority))
		reason := gap.Reason
		if len(reason) > 45 {
			reason = reason[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", reason))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(report.SkillGaps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more gaps", len(report.SkillGaps)-maxItemsToShow))
	}

	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Estimated time: %s\n", report.EstimatedTime))
	if len(report.Timeline.Week1To2) > 0 {
		sb.WriteString(fmt.Sprintf("Start with: %s", strings.Join(report.Timeline.Week1To2, ", ")))
	}

	p.printBox("SKILL GAP PLAN", strings.TrimSuffix(sb.String(), "\n"))
}
