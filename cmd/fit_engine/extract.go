package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/fit-engine/internal/llm"
	"github.com/jonathan/fit-engine/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured job requirement from a posting",
	Long:  "Extract a structured, schema-validated job requirement record from a job posting JSON. Results are cached by content hash, so re-extracting an unchanged posting is free.",
	RunE:  runExtract,
}

var (
	extractJobFile     string
	extractOutputFile  string
	extractAPIKey      string
	extractDatabaseURL string
	extractVerbose     bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractJobFile, "job", "j", "", "Path to job posting JSON (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().StringVar(&extractDatabaseURL, "db-url", "", "PostgreSQL URL for the requirement cache (overrides DATABASE_URL env var)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if extractJobFile == "" {
		return fmt.Errorf("--job is required")
	}

	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	databaseURL := extractDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	log, err := newLogger(extractVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	job, err := loadJobPosting(extractJobFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	store, closeStore, err := openBackend(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer closeStore()

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	extractor := llm.NewExtractor(client, store)
	req, err := extractor.ExtractRequirements(ctx, job.Title, job.Description, job.Location)
	if err != nil {
		return fmt.Errorf("failed to extract requirements: %w", err)
	}

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintRequirement(req)
	}

	if err := writeJSON(extractOutputFile, req); err != nil {
		return err
	}
	if extractOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Extracted requirement for %s\n", job.ID)
	}
	return nil
}
