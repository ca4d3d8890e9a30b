// Package main provides the entry point for the fit engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fit_engine",
	Short: "Candidate-job fit scoring and calibration engine",
	Long:  "fit_engine scores candidate profiles against job postings on a 0-100 scale, buckets the result into a decision, and maps scores to calibrated interview probabilities from historical outcomes.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
