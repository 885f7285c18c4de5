package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingest"
	"github.com/jonathan/resume-matcher/internal/resume"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

var structureResumeCmd = &cobra.Command{
	Use:   "structure-resume",
	Short: "Structure a plain-text resume into a ResumeRecord JSON",
	Long:  "Parse a plain-text resume into a structured ResumeRecord JSON with personal info, work experience, education, skills, and highlights.",
	RunE:  runStructureResume,
}

var (
	resumeInputFile  string
	resumeOutputFile string
	resumeAPIKey     string
	resumeJSONLogs   bool
	resumeDebug      bool
)

func init() {
	structureResumeCmd.Flags().StringVarP(&resumeInputFile, "in", "i", "", "Path to resume text file (required)")
	structureResumeCmd.Flags().StringVarP(&resumeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	structureResumeCmd.Flags().StringVar(&resumeAPIKey, "api-key", "", "Gemini API key for the generative fallback (optional, defaults to GEMINI_API_KEY env var)")
	structureResumeCmd.Flags().BoolVar(&resumeJSONLogs, "json-logs", false, "Emit logs as JSON")
	structureResumeCmd.Flags().BoolVar(&resumeDebug, "debug", false, "Enable debug logging")

	_ = structureResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(structureResumeCmd)
}

func runStructureResume(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	log, err := buildLogger(resumeJSONLogs, resumeDebug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	text, err := ingest.FromFile(resumeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	client, err := buildLLMClient(ctx, resolveAPIKey(resumeAPIKey), "", "")
	if err != nil {
		return err
	}

	structurer := resume.NewStructurer(taxonomy.Default(), client, log)
	record, err := structurer.Structure(ctx, text, nil)
	if err != nil {
		return fmt.Errorf("failed to structure resume: %w", err)
	}

	// Sanity check the record against the schema before writing.
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := schemas.ValidateResumeRecordJSON(string(recordJSON)); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: structured record does not validate against schema: %v\n", err)
	}

	if err := writeJSON(resumeOutputFile, record); err != nil {
		return err
	}

	if resumeOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully structured resume\n")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", resumeOutputFile)
	}

	return nil
}
