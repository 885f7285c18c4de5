package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingest"
	"github.com/jonathan/resume-matcher/internal/pipeline"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan how to close the skill gaps between a resume and a job",
	Long:  "Structures both documents and outputs a prioritized skill gap plan with learning resources, project suggestions, a timeline, and career path ideas.",
	RunE:  runPlanCmd,
}

var (
	planResumeFile string
	planJobFile    string
	planJobURL     string
	planOutputFile string
	planAPIKey     string
	planUseBrowser bool
)

func init() {
	planCmd.Flags().StringVarP(&planResumeFile, "resume", "r", "", "Path to resume text file (required)")
	planCmd.Flags().StringVarP(&planJobFile, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	planCmd.Flags().StringVar(&planJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	planCmd.Flags().StringVarP(&planOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	planCmd.Flags().StringVar(&planAPIKey, "api-key", "", "Gemini API key for the resume fallback (optional, defaults to GEMINI_API_KEY env var)")
	planCmd.Flags().BoolVar(&planUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")

	_ = planCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(planCmd)
}

func runPlanCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	resumeText, err := ingest.FromFile(planResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	jobText, err := loadJobText(ctx, planJobFile, planJobURL, planUseBrowser)
	if err != nil {
		return err
	}

	client, err := buildLLMClient(ctx, resolveAPIKey(planAPIKey), "", "")
	if err != nil {
		return err
	}

	outcome, err := pipeline.RunMatch(ctx, resumeText, jobText, pipeline.Options{
		Embedder:  client,
		Generator: client,
	})
	if err != nil {
		return fmt.Errorf("plan failed: %w", err)
	}

	return writeJSON(planOutputFile, outcome.Plan)
}
