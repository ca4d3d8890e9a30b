package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/fit-engine/internal/calibration"
	"github.com/jonathan/fit-engine/internal/observability"
	"github.com/jonathan/fit-engine/internal/scoring"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Rebuild calibration curves from resolved outcomes",
	Long:  "Rebuild the isotonic calibration curves for a scoring profile from every outcome event with a known result, then persist them for future score lookups.",
	RunE:  runCalibrate,
}

var (
	calibrateDatabaseURL string
	calibrateProfile     string
	calibrateVerbose     bool
)

func init() {
	calibrateCmd.Flags().StringVar(&calibrateDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	calibrateCmd.Flags().StringVar(&calibrateProfile, "profile", scoring.ProfileName, "Scoring profile to rebuild curves for")
	calibrateCmd.Flags().BoolVarP(&calibrateVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(calibrateCmd)
}

func runCalibrate(_ *cobra.Command, _ []string) error {
	databaseURL := calibrateDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required: calibration needs persisted outcome events")
	}

	log, err := newLogger(calibrateVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	store, closeStore, err := openBackend(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer closeStore()

	calibrator := calibration.NewCalibrator(store, log)
	if err := calibrator.Rebuild(ctx, store, calibrateProfile); err != nil {
		return fmt.Errorf("failed to rebuild calibration curves: %w", err)
	}

	if calibrateVerbose {
		if curve, err := store.GetCurve(ctx, calibrateProfile, ""); err == nil {
			observability.NewPrinter(os.Stderr).PrintCurve(curve)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Rebuilt calibration curves for profile %s\n", calibrateProfile)
	return nil
}
