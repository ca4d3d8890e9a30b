// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/fit-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncateList(items []string, limit int) string {
	count := min(len(items), limit)
	joined := strings.Join(items[:count], ", ")
	if len(joined) > 45 {
		joined = joined[:42] + "..."
	}
	if len(items) > limit {
		joined += fmt.Sprintf(" (+%d more)", len(items)-limit)
	}
	return joined
}

// PrintRequirement outputs a human-readable summary of extracted job requirements.
func (p *Printer) PrintRequirement(req *types.JobRequirement) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:     %s\n", req.Title))
	sb.WriteString(fmt.Sprintf("Seniority: %s\n", req.Seniority))
	if req.MinYears > 0 || req.PreferredYears > 0 {
		sb.WriteString(fmt.Sprintf("Years:     %.0f min, %.0f preferred\n", req.MinYears, req.PreferredYears))
	}
	if req.Minimal {
		sb.WriteString("\nPosting too short to extract; minimal record.\n")
	}

	if len(req.MustHaveSkills) > 0 {
		sb.WriteString("\nMust-have skills:\n")
		count := min(len(req.MustHaveSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.MustHaveSkills[i]))
		}
		if len(req.MustHaveSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.MustHaveSkills)-maxItemsToShow))
		}
	}

	if len(req.NiceToHaveSkills) > 0 {
		sb.WriteString("\nNice-to-haves:\n")
		count := min(len(req.NiceToHaveSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.NiceToHaveSkills[i]))
		}
		if len(req.NiceToHaveSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.NiceToHaveSkills)-3))
		}
	}

	p.printBox("EXTRACTED JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreResult outputs the per-dimension breakdown behind a fit score.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:     %d / 100\n", result.Total))
	sb.WriteString(fmt.Sprintf("Decision:  %s\n", result.Decision))
	sb.WriteString(fmt.Sprintf("Tier:      %s\n", result.ApplyTier))
	if result.Calibration != nil {
		sb.WriteString(fmt.Sprintf("P(interview): %.0f%% (95%% CI %.0f-%.0f%%, n=%d)\n",
			result.Calibration.Probability*100,
			result.Calibration.Low*100,
			result.Calibration.High*100,
			result.Calibration.Samples))
	}
	sb.WriteString("\n")

	// Fixed dimension order keeps repeated runs diffable.
	for _, dim := range types.Dimensions {
		ds, ok := result.Dimensions[dim]
		if !ok {
			continue
		}
		bar := strings.Repeat("█", int(ds.Score)/10)
		sb.WriteString(fmt.Sprintf("%-11s %5.1f %s\n", dim, ds.Score, bar))
	}

	if len(result.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing: %s\n", truncateList(result.MissingSkills, maxItemsToShow)))
	}
	if len(result.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched: %s\n", truncateList(result.MatchedSkills, maxItemsToShow)))
	}

	p.printBox("FIT SCORE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCurve outputs a rebuilt calibration curve bucket by bucket.
func (p *Printer) PrintCurve(curve *types.CalibrationCurve) {
	if curve == nil || len(curve.Bins) == 0 {
		return
	}

	var sb strings.Builder
	family := curve.JobFamily
	if family == "" {
		family = "(global)"
	}
	sb.WriteString(fmt.Sprintf("Profile:  %s\n", curve.Profile))
	sb.WriteString(fmt.Sprintf("Family:   %s\n", family))
	sb.WriteString(fmt.Sprintf("Samples:  %d\n\n", curve.TotalSamples()))

	bins := make([]types.CalibrationBin, len(curve.Bins))
	copy(bins, curve.Bins)
	sort.Slice(bins, func(i, j int) bool { return bins[i].Bucket < bins[j].Bucket })

	for _, bin := range bins {
		sb.WriteString(fmt.Sprintf("  %3d  p=%.2f  n=%d\n", bin.Bucket, bin.P, bin.N))
	}

	p.printBox("CALIBRATION CURVE", strings.TrimSuffix(sb.String(), "\n"))
}
