// Package resume structures raw resume text into a ResumeRecord using
// heuristic section segmentation, taxonomy containment and entity hints, with
// a single generative-model delegation as the last resort for text the
// heuristics cannot read at all.
package resume

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Structurer turns resume text into structured records. Safe for concurrent
// use; all state is read-only after construction.
type Structurer struct {
	tables    *taxonomy.Tables
	generator llm.TextGenerator
	log       *zap.Logger
}

// NewStructurer creates a resume structurer. The generator may be a no-op
// implementation; the fallback path is then skipped.
func NewStructurer(tables *taxonomy.Tables, generator llm.TextGenerator, log *zap.Logger) *Structurer {
	if tables == nil {
		tables = taxonomy.Default()
	}
	if generator == nil {
		generator = llm.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Structurer{
		tables:    tables,
		generator: generator,
		log:       log,
	}
}

// Structure extracts a ResumeRecord from resume text. Entities are optional
// hints from an external named-entity recognizer. Empty input is a caller
// contract violation and the only error condition; an all-empty heuristic
// result triggers one generative fallback attempt, whose failure degrades to
// the heuristic record rather than an error.
func (s *Structurer) Structure(ctx context.Context, text string, entities types.EntityMap) (*types.ResumeRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &Error{Message: "resume text is empty"}
	}
	if entities == nil {
		entities = types.EntityMap{}
	}

	sections := identifySections(text)

	record := &types.ResumeRecord{
		PersonalInfo:   extractPersonalInfo(text, entities),
		WorkExperience: extractWorkExperience(sections["experience"]),
		Education:      extractEducation(sections["education"]),
		Skills:         extractSkills(text, s.tables),
		Highlights:     extractHighlights(text),
	}

	if !record.IsEmpty() {
		return record, nil
	}

	if !s.generator.Available() {
		s.log.Warn("heuristic structuring produced an empty record and no generative fallback is available")
		return record, nil
	}

	s.log.Debug("heuristic structuring produced an empty record, delegating to generative fallback")
	fallbackRecord, err := structureWithFallback(ctx, s.generator, text)
	if err != nil {
		s.log.Warn("generative fallback failed, returning heuristic record", zap.Error(err))
		return record, nil
	}

	return fallbackRecord, nil
}
