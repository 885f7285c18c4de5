package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingest"
	"github.com/jonathan/resume-matcher/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Match several resumes against one job description",
	Long:  "Runs the full matching pipeline for each resume against the same job description, in parallel. Each resume succeeds or fails independently; results are ranked by overall score with failed resumes last.",
	RunE:  runBatchCmd,
}

var (
	batchResumeFiles []string
	batchJobFile     string
	batchJobURL      string
	batchOutputFile  string
	batchAPIKey      string
	batchConcurrency int
	batchUseBrowser  bool
)

func init() {
	batchCmd.Flags().StringArrayVarP(&batchResumeFiles, "resume", "r", nil, "Path to a resume text file (repeatable, required)")
	batchCmd.Flags().StringVarP(&batchJobFile, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	batchCmd.Flags().StringVar(&batchJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum number of resumes processed in parallel")
	batchCmd.Flags().BoolVar(&batchUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")

	_ = batchCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(batchCmd)
}

// batchEntry pairs one input resume with its pipeline result.
type batchEntry struct {
	Resume string `json:"resume"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	*pipeline.Outcome
}

func runBatchCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	jobText, err := loadJobText(ctx, batchJobFile, batchJobURL, batchUseBrowser)
	if err != nil {
		return err
	}

	client, err := buildLLMClient(ctx, resolveAPIKey(batchAPIKey), "", "")
	if err != nil {
		return err
	}

	// Read all resume files up front. A missing file fails its own slot only.
	texts := make([]string, len(batchResumeFiles))
	readErrs := make([]error, len(batchResumeFiles))
	for i, path := range batchResumeFiles {
		texts[i], readErrs[i] = ingest.FromFile(path)
	}

	outcomes := pipeline.RunBatch(ctx, texts, jobText, batchConcurrency, pipeline.Options{
		Embedder:  client,
		Generator: client,
	})

	entries := make([]batchEntry, len(batchResumeFiles))
	failures := 0
	for i := range batchResumeFiles {
		entry := batchEntry{Resume: batchResumeFiles[i], Status: "ok"}
		switch {
		case readErrs[i] != nil:
			entry.Status = "error"
			entry.Error = readErrs[i].Error()
		case outcomes[i].Err != nil:
			entry.Status = "error"
			entry.Error = outcomes[i].Err.Error()
		default:
			entry.Outcome = &outcomes[i]
		}
		if entry.Status == "error" {
			failures++
		}
		entries[i] = entry
	}

	// Rank candidates by score; failed slots sink to the bottom in input order.
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Outcome, entries[j].Outcome
		if a == nil || b == nil {
			return a != nil
		}
		return a.Match.OverallScore > b.Match.OverallScore
	})

	if err := writeJSON(batchOutputFile, entries); err != nil {
		return err
	}

	if failures > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "Completed with %d of %d resumes failed\n", failures, len(entries))
	}
	return nil
}
