// Package pipeline provides the high-level orchestration for the resume
// matching process: structure both documents, score the match, plan the gaps.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/job"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/planner"
	"github.com/jonathan/resume-matcher/internal/resume"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Options holds the shared collaborators for pipeline runs. Zero values are
// usable: nil Tables falls back to the built-in taxonomy, nil Logger to a
// no-op logger, nil Embedder/Generator to unavailable model capabilities.
type Options struct {
	Tables    *taxonomy.Tables
	Embedder  llm.TextEmbedder
	Generator llm.TextGenerator
	Logger    *zap.Logger
	Printer   *observability.Printer // non-nil enables verbose output
}

// Outcome is the result of matching one resume against one job.
type Outcome struct {
	MatchID uuid.UUID           `json:"match_id"`
	Resume  *types.ResumeRecord `json:"resume"`
	Job     *types.JobRecord    `json:"job"`
	Match   *types.MatchResult  `json:"match"`
	Plan    *types.PlanReport   `json:"plan"`
	Err     error               `json:"-"`
}

func (o Options) withDefaults() Options {
	if o.Tables == nil {
		o.Tables = taxonomy.Default()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Embedder == nil {
		o.Embedder = llm.Noop{}
	}
	if o.Generator == nil {
		o.Generator = llm.Noop{}
	}
	return o
}

// RunMatch structures both documents, scores the match, and builds the skill
// gap plan. The two structuring steps run concurrently; only resume
// structuring can fail (empty input).
func RunMatch(ctx context.Context, resumeText, jobText string, opts Options) (*Outcome, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	outcome := &Outcome{MatchID: uuid.New()}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		structurer := resume.NewStructurer(opts.Tables, opts.Generator, log)
		record, err := structurer.Structure(gCtx, resumeText, nil)
		if err != nil {
			return err
		}
		outcome.Resume = record
		return nil
	})

	g.Go(func() error {
		outcome.Job = job.NewStructurer(opts.Tables).Structure(jobText)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Printer != nil {
		opts.Printer.PrintResumeRecord(outcome.Resume)
		opts.Printer.PrintJobRecord(outcome.Job)
	}

	engine := matching.NewEngine(opts.Tables, opts.Embedder, log)
	outcome.Match = engine.Score(ctx, outcome.Resume, outcome.Job)

	outcome.Plan = planner.NewPlanner(opts.Tables).Plan(outcome.Resume, outcome.Job)

	if opts.Printer != nil {
		opts.Printer.PrintMatchResult(outcome.Match)
		opts.Printer.PrintPlanReport(outcome.Plan)
	}

	log.Info("match complete",
		zap.String("match_id", outcome.MatchID.String()),
		zap.Float64("overall_score", outcome.Match.OverallScore),
		zap.Int("skill_gaps", len(outcome.Plan.SkillGaps)))

	return outcome, nil
}

// RunBatch matches several resumes against one job description, running up to
// concurrency pipelines in parallel. A failed resume records its error in the
// corresponding slot and never affects its siblings. The returned slice is
// index-aligned with resumeTexts.
func RunBatch(ctx context.Context, resumeTexts []string, jobText string, concurrency int, opts Options) []Outcome {
	opts = opts.withDefaults()
	if concurrency < 1 {
		concurrency = 1
	}

	// Verbose box output interleaves badly across goroutines.
	batchOpts := opts
	batchOpts.Printer = nil

	outcomes := make([]Outcome, len(resumeTexts))

	g := new(errgroup.Group)
	g.SetLimit(concurrency)

	for i, text := range resumeTexts {
		g.Go(func() error {
			outcome, err := RunMatch(ctx, text, jobText, batchOpts)
			if err != nil {
				outcomes[i] = Outcome{Err: err}
				return nil
			}
			outcomes[i] = *outcome
			return nil
		})
	}

	//nolint:errcheck // workers never return errors; failures live in slots
	g.Wait()

	return outcomes
}
