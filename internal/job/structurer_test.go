package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

const sampleJob = `Senior Software Engineer
Remote

About Us
We are a fast growing company.

Requirements
5+ years of experience required
Strong knowledge of python and aws
Bachelor degree in computer science
Must have experience with docker

Nice to have
Familiarity with kubernetes and terraform

Responsibilities
• Design and build scalable backend services
• Collaborate with product teams to ship features
• Maintain and improve the deployment pipeline

Benefits
Health insurance and 401k, remote work and flexible hours
`

func TestStructureFullJobDescription(t *testing.T) {
	s := NewStructurer(taxonomy.Default())

	record := s.Structure(sampleJob)
	require.NotNil(t, record)

	assert.Equal(t, "Senior Software Engineer", record.JobTitle)
	assert.Equal(t, types.LevelSenior, record.ExperienceLevel)

	assert.Contains(t, record.RequiredSkills, "Python")
	assert.Contains(t, record.RequiredSkills, "Aws")
	assert.Contains(t, record.RequiredSkills, "Docker")
	assert.NotContains(t, record.RequiredSkills, "Kubernetes")

	assert.Contains(t, record.PreferredSkills, "Kubernetes")
	assert.Contains(t, record.PreferredSkills, "Terraform")

	assert.Contains(t, record.Qualifications, "Bachelor")

	require.NotEmpty(t, record.Responsibilities)
	assert.LessOrEqual(t, len(record.Responsibilities), 10)
	assert.Contains(t, record.Responsibilities[0], "Design and build")

	assert.Contains(t, record.Benefits, "Health Insurance")
	assert.Contains(t, record.Benefits, "Remote Work")
}

func TestStructureEmptyInput(t *testing.T) {
	s := NewStructurer(taxonomy.Default())

	for _, input := range []string{"", "   \n\t  "} {
		record := s.Structure(input)
		require.NotNil(t, record)
		assert.Equal(t, "", record.JobTitle)
		assert.Equal(t, types.LevelUnknown, record.ExperienceLevel)
		assert.Empty(t, record.RequiredSkills)
		assert.Empty(t, record.PreferredSkills)
		assert.Empty(t, record.Qualifications)
		assert.Empty(t, record.Responsibilities)
		assert.Empty(t, record.Benefits)
	}
}

func TestStructureIdempotent(t *testing.T) {
	s := NewStructurer(taxonomy.Default())

	first := s.Structure(sampleJob)
	second := s.Structure(sampleJob)
	assert.Equal(t, first, second)
}

func TestExtractJobTitleFallbackPattern(t *testing.T) {
	text := preprocess(`About the company
We are hiring a Senior Data Engineer

Join our team today
Salary: competitive
Requirements
Python experience required`)

	assert.Equal(t, "Senior Data Engineer", extractJobTitle(text))
}

func TestExtractJobTitleNotFound(t *testing.T) {
	assert.Equal(t, titleNotFound, extractJobTitle("about us\nwe are ok"))
}

func TestExtractExperienceLevel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"many years", "We need 7+ years of backend work", types.LevelSenior},
		{"senior keyword", "Looking for a principal engineer", types.LevelSenior},
		{"mid years", "3+ years of python", types.LevelMid},
		{"junior years", "1+ years of scripting", types.LevelJunior},
		{"entry keyword", "Great for a recent graduate", types.LevelEntry},
		{"default", "Software position open now", types.LevelMid},
		{"senior beats mid", "5+ years required, 3+ years preferred", types.LevelSenior},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractExperienceLevel(tt.text))
		})
	}
}

func TestExtractResponsibilitiesBounds(t *testing.T) {
	var sb string
	sb = "Responsibilities\n"
	for i := 0; i < 15; i++ {
		sb += "Own one of the core backend services end to end\n"
	}

	items := extractResponsibilities(sb)
	assert.Len(t, items, 10)
}

func TestExtractResponsibilitiesLengthFilter(t *testing.T) {
	text := "Responsibilities\nshort item\nThis responsibility is long enough to keep in the list"
	items := extractResponsibilities(text)
	require.Len(t, items, 1)
	assert.Contains(t, items[0], "long enough")
}

func TestExtractQualificationsCertifications(t *testing.T) {
	quals := extractQualifications("AWS Certified architects welcome, PMP a plus")
	assert.Contains(t, quals, "AWS CERTIFIED")
	assert.Contains(t, quals, "PMP")
}

func TestRequiredSkillsNeedRequiredContext(t *testing.T) {
	// A requirement-header section without any required-context word gets no
	// taxonomy containment matches.
	text := "Skills\npython, docker"
	skills := extractRequiredSkills(text, taxonomy.Default())
	assert.NotContains(t, skills, "Python")
	assert.NotContains(t, skills, "Docker")
}
