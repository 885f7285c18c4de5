package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeRecordIsEmpty(t *testing.T) {
	var nilRecord *ResumeRecord
	assert.True(t, nilRecord.IsEmpty())
	assert.True(t, (&ResumeRecord{}).IsEmpty())

	assert.False(t, (&ResumeRecord{Skills: []string{"Python"}}).IsEmpty())
	assert.False(t, (&ResumeRecord{PersonalInfo: PersonalInfo{Email: "a@b.com"}}).IsEmpty())
}

func TestExperienceText(t *testing.T) {
	record := &ResumeRecord{
		WorkExperience: []WorkExperience{
			{Title: "Senior Engineer", Company: "Acme", Description: []string{"Led a team"}},
			{Title: "Developer", Company: "Init"},
		},
	}

	text := record.ExperienceText()
	assert.Contains(t, text, "senior engineer")
	assert.Contains(t, text, "led a team")
	assert.Contains(t, text, "developer init")
	assert.Equal(t, text, record.ExperienceText())
}

func TestZeroJobRecordNeverNilSlices(t *testing.T) {
	record := ZeroJobRecord()

	assert.NotNil(t, record.RequiredSkills)
	assert.NotNil(t, record.Responsibilities)
	assert.Empty(t, record.RequiredSkills)
	assert.Equal(t, LevelUnknown, record.ExperienceLevel)
}
