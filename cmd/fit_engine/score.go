package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/fit-engine/internal/config"
	"github.com/jonathan/fit-engine/internal/observability"
	"github.com/jonathan/fit-engine/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate profile against one job posting",
	Long:  "Score a candidate profile JSON against a job posting JSON, producing a 0-100 fit score, a decision bucket, and (when calibration data exists) an interview probability.",
	RunE:  runScore,
}

var (
	scoreResumeFile  string
	scoreJobFile     string
	scoreOutputFile  string
	scoreConfigFile  string
	scoreAPIKey      string
	scoreDatabaseURL string
	scoreModel       string
	scoreVerbose     bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to candidate profile JSON (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job posting JSON (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to config JSON file")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	scoreCmd.Flags().StringVar(&scoreDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	scoreCmd.Flags().StringVar(&scoreModel, "embedding-model", "", "Embedding model for the semantic dimension")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(scoreCmd)
}

// resolveConfig layers flag values over an optional config file, then the
// environment. Flags win, then the file, then env vars.
func resolveConfig(path string, flags config.Config) (*config.Config, error) {
	cfg := flags
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runScore(_ *cobra.Command, _ []string) error {
	if scoreResumeFile == "" || scoreJobFile == "" {
		return fmt.Errorf("--resume and --job are required")
	}

	cfg, err := resolveConfig(scoreConfigFile, config.Config{
		Resume:         scoreResumeFile,
		Job:            scoreJobFile,
		APIKey:         scoreAPIKey,
		DatabaseURL:    scoreDatabaseURL,
		EmbeddingModel: scoreModel,
		Verbose:        scoreVerbose,
	})
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Verbose || scoreVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	profile, err := loadProfile(cfg.Resume)
	if err != nil {
		return err
	}
	job, err := loadJobPosting(cfg.Job)
	if err != nil {
		return err
	}

	ctx := context.Background()

	store, closeStore, err := openBackend(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer closeStore()

	deps, err := buildEngine(ctx, store, cfg.APIKey, cfg.EmbeddingModel, log)
	if err != nil {
		return err
	}
	defer deps.Close()

	req, err := extractOrFallback(ctx, deps, job, log)
	if err != nil {
		return err
	}

	result := deps.engine.Score(ctx, req, profile, job.ID, job.Description)

	if cfg.Verbose || scoreVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintRequirement(req)
		printer.PrintScoreResult(result)
	}

	if err := store.UpsertScoreResult(ctx, result); err != nil {
		log.Warn("failed to persist score result", zap.Error(err))
	}

	if err := writeJSON(scoreOutputFile, result); err != nil {
		return err
	}
	if scoreOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Scored %s against %s: %d (%s)\n", profile.ID, job.ID, result.Total, result.Decision)
	}
	return nil
}

// extractOrFallback turns a posting into a structured requirement. Without an
// LLM client only the title carries signal, so scoring proceeds on a minimal
// record instead of failing.
func extractOrFallback(ctx context.Context, deps *engineDeps, job *jobPosting, log *zap.Logger) (*types.JobRequirement, error) {
	if deps.extractor == nil {
		log.Warn("no API key configured, scoring against a minimal requirement",
			zap.String("job_id", job.ID),
		)
		return types.MinimalRequirement(job.Title), nil
	}
	req, err := deps.extractor.ExtractRequirements(ctx, job.Title, job.Description, job.Location)
	if err != nil {
		log.Warn("requirement extraction failed, scoring against a minimal requirement",
			zap.String("job_id", job.ID),
			zap.Error(err),
		)
		return types.MinimalRequirement(job.Title), nil
	}
	return req, nil
}
