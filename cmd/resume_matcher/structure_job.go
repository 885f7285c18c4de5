package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/job"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

var structureJobCmd = &cobra.Command{
	Use:   "structure-job",
	Short: "Structure a job description into a JobRecord JSON",
	Long:  "Parse a job description from a text file or URL into a structured JobRecord JSON with title, required and preferred skills, experience level, qualifications, responsibilities, and benefits.",
	RunE:  runStructureJob,
}

var (
	jobInputFile  string
	jobInputURL   string
	jobOutputFile string
	jobUseBrowser bool
)

func init() {
	structureJobCmd.Flags().StringVarP(&jobInputFile, "in", "i", "", "Path to job description text file (mutually exclusive with --url)")
	structureJobCmd.Flags().StringVarP(&jobInputURL, "url", "u", "", "URL to fetch job description from (mutually exclusive with --in)")
	structureJobCmd.Flags().StringVarP(&jobOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	structureJobCmd.Flags().BoolVar(&jobUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")

	rootCmd.AddCommand(structureJobCmd)
}

func runStructureJob(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	text, err := loadJobText(ctx, jobInputFile, jobInputURL, jobUseBrowser)
	if err != nil {
		return err
	}

	record := job.NewStructurer(taxonomy.Default()).Structure(text)

	if err := writeJSON(jobOutputFile, record); err != nil {
		return err
	}

	if jobOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully structured job description\n")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", jobOutputFile)
	}

	return nil
}
