package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var outcomeCmd = &cobra.Command{
	Use:   "outcome",
	Short: "Record the hiring outcome for a scored pair",
	Long:  "Record whether a scored candidate/job pair led to an interview. Resolved outcomes feed the next calibration rebuild.",
	RunE:  runOutcome,
}

var (
	outcomeCandidateID string
	outcomeJobID       string
	outcomeResult      string
	outcomeDatabaseURL string
)

func init() {
	outcomeCmd.Flags().StringVar(&outcomeCandidateID, "candidate-id", "", "Candidate ID of the scored pair (required)")
	outcomeCmd.Flags().StringVar(&outcomeJobID, "job-id", "", "Job ID of the scored pair (required)")
	outcomeCmd.Flags().StringVar(&outcomeResult, "result", "", "Outcome: 'interview' or 'no-interview' (required)")
	outcomeCmd.Flags().StringVar(&outcomeDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")

	rootCmd.AddCommand(outcomeCmd)
}

func runOutcome(_ *cobra.Command, _ []string) error {
	if outcomeCandidateID == "" || outcomeJobID == "" {
		return fmt.Errorf("--candidate-id and --job-id are required")
	}

	var outcome bool
	switch outcomeResult {
	case "interview":
		outcome = true
	case "no-interview":
		outcome = false
	default:
		return fmt.Errorf("--result must be 'interview' or 'no-interview'")
	}

	databaseURL := outcomeDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required to record outcomes")
	}

	ctx := context.Background()

	store, closeStore, err := openBackend(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.ResolveOutcome(ctx, outcomeCandidateID, outcomeJobID, outcome); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Recorded %s for %s/%s\n", outcomeResult, outcomeCandidateID, outcomeJobID)
	return nil
}
