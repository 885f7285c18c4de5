package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var jsonObjectRe = regexp.MustCompile(`(?s)(\{.*\})`)

const fallbackPromptTemplate = `Analyze the following resume text and extract information in JSON format:

%s

Please extract and categorize the following information in this exact JSON structure:
{
    "personalInfo": {
        "name": "candidate's full name",
        "email": "email if found",
        "phone": "phone if found",
        "location": "location if found"
    },
    "workExperience": [
        {
            "title": "job title",
            "company": "company name",
            "duration": "employment period",
            "description": ["bullet point 1", "bullet point 2"]
        }
    ],
    "education": [
        {
            "degree": "degree name",
            "institution": "school name",
            "year": "graduation year",
            "details": ["relevant detail 1", "relevant detail 2"]
        }
    ],
    "skills": ["skill1", "skill2", "skill3"],
    "highlights": ["achievement1", "achievement2"]
}

Instructions:
1. Include all dates in consistent format
2. Split descriptions into clear bullet points
3. Extract all relevant skills mentioned
4. Keep the exact JSON structure as shown
5. Return only the JSON object, no additional text`

// structureWithFallback asks the generative model to structure the resume
// when heuristics produced nothing. Output is schema-validated before it is
// trusted.
func structureWithFallback(ctx context.Context, generator llm.TextGenerator, text string) (*types.ResumeRecord, error) {
	prompt := fmt.Sprintf(fallbackPromptTemplate, text)

	response, err := generator.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &Error{Message: "fallback generation failed", Cause: err}
	}

	match := jsonObjectRe.FindStringSubmatch(llm.CleanJSONBlock(response))
	if match == nil {
		return nil, &Error{Message: "no JSON object found in fallback response"}
	}
	jsonStr := match[1]

	if err := schemas.ValidateResumeRecordJSON(jsonStr); err != nil {
		return nil, &Error{Message: "fallback response failed schema validation", Cause: err}
	}

	var record types.ResumeRecord
	if err := json.Unmarshal([]byte(jsonStr), &record); err != nil {
		return nil, &Error{Message: "failed to parse fallback response", Cause: err}
	}

	return &record, nil
}
