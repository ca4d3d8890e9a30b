package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/fit-engine/internal/batch"
	"github.com/jonathan/fit-engine/internal/config"
	"github.com/jonathan/fit-engine/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score many candidate/job pairs concurrently",
	Long:  "Score every pair in a manifest JSON with a bounded worker pool and a shared rate limit. Per-pair failures are collected and reported; the run continues past them.",
	RunE:  runBatch,
}

var (
	batchPairsFile   string
	batchOutputFile  string
	batchConfigFile  string
	batchAPIKey      string
	batchDatabaseURL string
	batchModel       string
	batchConcurrency int
	batchRateLimit   float64
	batchVerbose     bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchPairsFile, "pairs", "p", "", "Path to pair manifest JSON (required)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to summary JSON file (default: stdout)")
	batchCmd.Flags().StringVarP(&batchConfigFile, "config", "c", "", "Path to config JSON file")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	batchCmd.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	batchCmd.Flags().StringVar(&batchModel, "embedding-model", "", "Embedding model for the semantic dimension")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Worker count (default 4)")
	batchCmd.Flags().Float64Var(&batchRateLimit, "rate-limit", 0, "Pairs scored per second (default 5)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(batchCmd)
}

// pairManifest is the on-disk batch input: every resume path is scored
// against every job path it is listed with.
type pairManifest struct {
	Pairs []struct {
		Resume string `json:"resume"`
		Job    string `json:"job"`
	} `json:"pairs"`
}

func runBatch(_ *cobra.Command, _ []string) error {
	if batchPairsFile == "" {
		return fmt.Errorf("--pairs is required")
	}

	cfg, err := resolveConfig(batchConfigFile, config.Config{
		Pairs:          batchPairsFile,
		APIKey:         batchAPIKey,
		DatabaseURL:    batchDatabaseURL,
		EmbeddingModel: batchModel,
		Concurrency:    batchConcurrency,
		RateLimit:      batchRateLimit,
		Verbose:        batchVerbose,
	})
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Verbose || batchVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	manifestData, err := os.ReadFile(cfg.Pairs)
	if err != nil {
		return fmt.Errorf("failed to read pair manifest: %w", err)
	}
	var manifest pairManifest
	if err := json.Unmarshal(manifestData, &manifest); err != nil {
		return fmt.Errorf("failed to parse pair manifest: %w", err)
	}
	if len(manifest.Pairs) == 0 {
		return fmt.Errorf("pair manifest is empty")
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

	pairs, err := loadPairs(ctx, deps, &manifest, log)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(deps.engine, batch.RunnerOptions{
		Store:       store,
		Logger:      log,
		Concurrency: cfg.Concurrency,
		RateLimit:   cfg.RateLimit,
	})

	summary, err := runner.Run(ctx, pairs)
	if err != nil {
		return err
	}

	if err := writeJSON(batchOutputFile, summary); err != nil {
		return err
	}
	if batchOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Batch %s: scored %d of %d pairs (%d failed)\n",
			summary.RunID, summary.Scored, summary.Total, summary.Failed)
	}
	return nil
}

// loadPairs resolves manifest paths into scoring units. Profiles and
// requirements are loaded once per distinct file; requirement extraction is
// deduplicated by the extractor's content-hash cache.
func loadPairs(ctx context.Context, deps *engineDeps, manifest *pairManifest, log *zap.Logger) ([]batch.Pair, error) {
	profiles := make(map[string]*types.CandidateProfile)
	jobs := make(map[string]*jobPosting)
	requirements := make(map[string]*types.JobRequirement)

	pairs := make([]batch.Pair, 0, len(manifest.Pairs))
	for i, entry := range manifest.Pairs {
		if entry.Resume == "" || entry.Job == "" {
			return nil, fmt.Errorf("manifest pair %d is missing 'resume' or 'job'", i)
		}

		profile, ok := profiles[entry.Resume]
		if !ok {
			var err error
			profile, err = loadProfile(entry.Resume)
			if err != nil {
				return nil, fmt.Errorf("manifest pair %d: %w", i, err)
			}
			profiles[entry.Resume] = profile
		}

		job, ok := jobs[entry.Job]
		if !ok {
			var err error
			job, err = loadJobPosting(entry.Job)
			if err != nil {
				return nil, fmt.Errorf("manifest pair %d: %w", i, err)
			}
			jobs[entry.Job] = job
		}

		req, ok := requirements[entry.Job]
		if !ok {
			var err error
			req, err = extractOrFallback(ctx, deps, job, log)
			if err != nil {
				return nil, fmt.Errorf("manifest pair %d: %w", i, err)
			}
			requirements[entry.Job] = req
		}

		pairs = append(pairs, batch.Pair{
			Candidate:   profile,
			Requirement: req,
			JobID:       job.ID,
			JobText:     job.Description,
		})
	}
	return pairs, nil
}
