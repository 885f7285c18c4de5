package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingest"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score how well a resume matches a job description",
	Long: `Structures the resume and the job description, then scores the match across semantic, skills, experience, and text similarity signals and plans how to close the skill gaps.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath      string
	matchResumeFile      string
	matchJobFile         string
	matchJobURL          string
	matchOutputFile      string
	matchAPIKey          string
	matchEmbeddingModel  string
	matchGenerationModel string
	matchUseBrowser      bool
	matchVerbose         bool
	matchDebug           bool
	matchJSONLogs        bool
)

func init() {
	// Config file flag (processed first)
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume text file")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	matchCmd.Flags().StringVar(&matchEmbeddingModel, "embedding-model", "", "Embedding model name (default: text-embedding-004)")
	matchCmd.Flags().StringVar(&matchGenerationModel, "generation-model", "", "Generation model name (default: gemini-2.0-flash)")
	matchCmd.Flags().BoolVar(&matchUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed human-readable output")
	matchCmd.Flags().BoolVar(&matchDebug, "debug", false, "Enable debug logging")
	matchCmd.Flags().BoolVar(&matchJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(matchCmd)
}

// mergeMatchConfig loads the optional config file and applies CLI overrides.
// Only flags the user explicitly set override config file values.
func mergeMatchConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if matchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("resume") {
		cfg.Resume = matchResumeFile
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = matchJobFile
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = matchJobURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = matchAPIKey
	}
	if cmd.Flags().Changed("embedding-model") {
		cfg.EmbeddingModel = matchEmbeddingModel
	}
	if cmd.Flags().Changed("generation-model") {
		cfg.GenerationModel = matchGenerationModel
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = matchUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = matchDebug
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = matchJSONLogs
	}

	cfg = cfg.MergeWithDefaults(config.Config{})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Resume == "" {
		return cfg, fmt.Errorf("--resume is required (or set 'resume' in the config file)")
	}

	return cfg, nil
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergeMatchConfig(cmd)
	if err != nil {
		return err
	}

	log, err := buildLogger(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	resumeText, err := ingest.FromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	jobText, err := loadJobText(ctx, cfg.Job, cfg.JobURL, cfg.UseBrowser)
	if err != nil {
		return err
	}

	client, err := buildLLMClient(ctx, resolveAPIKey(cfg.APIKey), cfg.EmbeddingModel, cfg.GenerationModel)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Embedder:  client,
		Generator: client,
		Logger:    log,
	}
	if cfg.Verbose {
		opts.Printer = observability.NewPrinter(os.Stdout)
	}

	outcome, err := pipeline.RunMatch(ctx, resumeText, jobText, opts)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	return writeJSON(matchOutputFile, outcome)
}
