package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/ingest"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/logger"
)

// resolveAPIKey prefers the flag, then the conventional env vars.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

// buildLLMClient returns a Gemini client when an API key is available and a
// Noop otherwise. The pipeline degrades gracefully without model access.
func buildLLMClient(ctx context.Context, apiKey, embeddingModel, generationModel string) (interface {
	llm.TextEmbedder
	llm.TextGenerator
}, error) {
	if apiKey == "" {
		return llm.Noop{}, nil
	}

	cfg := llm.DefaultConfig()
	if embeddingModel != "" {
		cfg.EmbeddingModel = embeddingModel
	}
	if generationModel != "" {
		cfg.GenerationModel = generationModel
	}

	client, err := llm.NewGeminiClient(ctx, cfg, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}

// buildLogger constructs the zap logger from the shared CLI flags.
func buildLogger(jsonLogs, debug bool) (*zap.Logger, error) {
	log, err := logger.New(jsonLogs, debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// loadJobText reads the job description from a file or fetches it from a URL,
// falling back to a headless browser when the static page is too thin.
func loadJobText(ctx context.Context, jobFile, jobURL string, useBrowser bool) (string, error) {
	if jobFile == "" && jobURL == "" {
		return "", fmt.Errorf("either --job or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if jobFile != "" {
		text, err := ingest.FromFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return text, nil
	}

	result, err := fetch.URL(ctx, jobURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}

	text, err := ingest.HTMLToText(result.HTML)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from page: %w", err)
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		fmt.Fprintf(os.Stderr, "Static page too short, retrying with headless browser...\n")
		html, err := fetch.BrowserSimple(ctx, jobURL)
		if err != nil {
			return "", fmt.Errorf("browser fetch failed: %w", err)
		}
		text, err = ingest.HTMLToText(html)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from rendered page: %w", err)
		}
	}

	return ingest.CleanText(text), nil
}

// writeJSON marshals v with indentation and writes it to the given path, or
// to stdout when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
