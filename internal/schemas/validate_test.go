package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeRecordJSONValid(t *testing.T) {
	doc := `{
		"personalInfo": {"name": "Jane Doe", "email": "jane@example.com", "phone": "555-123-4567", "location": "Boston"},
		"workExperience": [
			{"title": "Software Engineer", "company": "Acme", "duration": "2020 - Present", "description": ["Built services"]}
		],
		"education": [
			{"degree": "Computer Science", "institution": "MIT", "year": "2019", "details": []}
		],
		"skills": ["python", "docker"],
		"highlights": ["Led migration to containers"]
	}`

	require.NoError(t, ValidateResumeRecordJSON(doc))
}

func TestValidateResumeRecordJSONMinimal(t *testing.T) {
	doc := `{
		"personalInfo": {},
		"workExperience": [],
		"education": [],
		"skills": [],
		"highlights": []
	}`

	require.NoError(t, ValidateResumeRecordJSON(doc))
}

func TestValidateResumeRecordJSONMissingSection(t *testing.T) {
	doc := `{
		"personalInfo": {},
		"workExperience": [],
		"education": [],
		"skills": []
	}`

	err := ValidateResumeRecordJSON(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "highlights")
}

func TestValidateResumeRecordJSONWrongTypes(t *testing.T) {
	doc := `{
		"personalInfo": {"name": 42},
		"workExperience": "not an array",
		"education": [],
		"skills": [],
		"highlights": []
	}`

	err := ValidateResumeRecordJSON(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.GreaterOrEqual(t, len(ve.Errors), 2)
}

func TestValidateResumeRecordJSONMalformed(t *testing.T) {
	err := ValidateResumeRecordJSON(`{"personalInfo": `)
	require.Error(t, err)
}
