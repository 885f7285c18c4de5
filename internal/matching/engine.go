package matching

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Signal weights. Skills dominate by a wide margin.
const (
	weightSemantic   = 0.25
	weightSkills     = 0.40
	weightExperience = 0.20
	weightText       = 0.15

	requiredSkillWeight  = 0.7
	preferredSkillWeight = 0.3

	// neutralScore is the degraded value for any signal that cannot be
	// computed.
	neutralScore = 0.5
)

// Engine scores resumes against job descriptions. Safe for concurrent use;
// all state is read-only after construction.
type Engine struct {
	tables   *taxonomy.Tables
	embedder llm.TextEmbedder
	log      *zap.Logger
}

// NewEngine creates a similarity engine. The embedder may be a no-op
// implementation; semantic similarity then degrades to neutral.
func NewEngine(tables *taxonomy.Tables, embedder llm.TextEmbedder, log *zap.Logger) *Engine {
	if tables == nil {
		tables = taxonomy.Default()
	}
	if embedder == nil {
		embedder = llm.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		tables:   tables,
		embedder: embedder,
		log:      log,
	}
}

// Score computes the full multi-signal match result. Every sub-score degrades
// independently to neutral on its own failure mode; a result is always
// produced. Outputs are rounded to 2 decimals at the boundary.
func (e *Engine) Score(ctx context.Context, resume *types.ResumeRecord, job *types.JobRecord) *types.MatchResult {
	overlap := ComputeSkillGaps(resume, job)

	semantic := e.semanticSimilarity(ctx, resume.FreeText(), job.FreeText())
	skills := skillsMatch(overlap, job)
	experience := experienceScore(e.tables, InferResumeLevel(resume), job.ExperienceLevel)
	text := lexicalSimilarity(resume.FreeText(), job.FreeText())

	overall := semantic*weightSemantic + skills*weightSkills +
		experience*weightExperience + text*weightText

	return &types.MatchResult{
		OverallScore:       round2(overall),
		SemanticSimilarity: round2(semantic),
		SkillsMatch:        round2(skills),
		ExperienceMatch:    round2(experience),
		TextSimilarity:     round2(text),
		Analysis:           buildAnalysis(resume, job, overlap, semantic, skills, experience, overall),
		Recommendations:    buildRecommendations(resume, job, overlap, e.tables),
	}
}

// skillsMatch blends required and preferred coverage. An empty required set
// yields neutral 0.5 instead of the blend.
func skillsMatch(overlap SkillOverlap, job *types.JobRecord) float64 {
	required := job.RequiredSet()
	preferred := job.PreferredSet()

	if len(required) == 0 {
		return neutralScore
	}

	requiredScore := math.Min(float64(len(overlap.MatchingRequired))/float64(len(required)), 1.0)

	preferredScore := 0.0
	if len(preferred) > 0 {
		preferredScore = math.Min(float64(len(overlap.MatchingPreferred))/float64(len(preferred)), 1.0)
	}

	return requiredScore*requiredSkillWeight + preferredScore*preferredSkillWeight
}

// semanticSimilarity embeds both texts and takes cosine similarity, degrading
// to neutral when the embedder is unavailable, either text is empty, or the
// calls fail.
func (e *Engine) semanticSimilarity(ctx context.Context, resumeText, jobText string) float64 {
	if !e.embedder.Available() || resumeText == "" || jobText == "" {
		return neutralScore
	}

	resumeVec, err := e.embedder.Embed(ctx, resumeText)
	if err != nil {
		e.log.Warn("resume embedding failed, using neutral semantic score", zap.Error(err))
		return neutralScore
	}

	jobVec, err := e.embedder.Embed(ctx, jobText)
	if err != nil {
		e.log.Warn("job embedding failed, using neutral semantic score", zap.Error(err))
		return neutralScore
	}

	return cosineVectors(resumeVec, jobVec)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
