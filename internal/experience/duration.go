package experience

import (
	"regexp"
	"time"

	"github.com/jonathan/fit-engine/internal/types"
)

const (
	// maxRoleMonths caps any single role at 40 years.
	maxRoleMonths = 480
	// maxTotalMonths caps total worked time at 50 years.
	maxTotalMonths = 600
)

// internshipTitleRe identifies roles pooled separately from the primary total.
var internshipTitleRe = regexp.MustCompile(`(?i)\b(intern|internship|co-op|cooperative education)\b`)

// Clock supplies "now" for resolving present/current end dates. Production
// uses time.Now; tests pin a fixed instant for reproducible durations.
type Clock func() time.Time

// Calculator turns structured work history into an ExperienceResult.
type Calculator struct {
	now Clock
}

// NewCalculator builds a Calculator. A nil clock defaults to time.Now.
func NewCalculator(now Clock) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{now: now}
}

// Intervals converts each role into one MonthInterval. A role whose end date
// cannot be parsed and that is not flagged current yields a zero-length
// unparseable interval: duration that cannot be inferred is not guessed.
// An end before its start is corrected to a minimum one-month span.
func (c *Calculator) Intervals(entries []types.WorkExperience) []MonthInterval {
	now := c.now()
	intervals := make([]MonthInterval, 0, len(entries))
	for _, entry := range entries {
		intervals = append(intervals, roleInterval(entry, now))
	}
	return intervals
}

func roleInterval(entry types.WorkExperience, now time.Time) MonthInterval {
	iv := MonthInterval{Title: entry.Title}

	start, startOK := ParseMonth(entry.StartDate, false, now)
	if !startOK {
		return iv
	}

	end, endOK := ParseMonth(entry.EndDate, true, now)
	if !endOK {
		if !entry.Current {
			return iv
		}
		end = MonthIndex(now)
	}

	if end < start {
		end = start + 1
	}
	if end-start > maxRoleMonths {
		end = start + maxRoleMonths
	}

	iv.Start = start
	iv.End = end
	iv.Parseable = true
	return iv
}

// Calculate computes the merged worked duration for a candidate's roles.
// Internship-like roles are merged in their own pool and excluded from the
// primary total. Confidence reflects how much of the history parsed: 1.0 when
// every role did, 0.6 when some did, 0.3 when none did or there were no roles.
func (c *Calculator) Calculate(entries []types.WorkExperience) types.ExperienceResult {
	intervals := c.Intervals(entries)

	var primary, internships []MonthInterval
	unparseable := 0
	for _, iv := range intervals {
		if !iv.Parseable {
			unparseable++
			continue
		}
		if internshipTitleRe.MatchString(iv.Title) {
			internships = append(internships, iv)
		} else {
			primary = append(primary, iv)
		}
	}

	mergedPrimary := MergeIntervals(primary)
	mergedInternships := MergeIntervals(internships)

	total := TotalMonths(mergedPrimary)
	if total > maxTotalMonths {
		total = maxTotalMonths
	}

	return types.ExperienceResult{
		TotalMonths:      total,
		InternshipMonths: TotalMonths(mergedInternships),
		MergedIntervals:  len(mergedPrimary),
		Confidence:       confidence(len(entries), unparseable),
		UnparseableRoles: unparseable,
	}
}

// RecentRole reports whether a role's end date falls within the given number
// of months before now. Current roles are always recent. Used by the keyword
// matcher for recency-weighted skill credit.
func (c *Calculator) RecentRole(entry types.WorkExperience, withinMonths int) bool {
	if entry.Current {
		return true
	}
	now := c.now()
	end, ok := ParseMonth(entry.EndDate, true, now)
	if !ok {
		return false
	}
	return MonthIndex(now)-end <= withinMonths
}

func confidence(roles, unparseable int) float64 {
	switch {
	case roles == 0:
		return 0.3
	case unparseable == 0:
		return 1.0
	case unparseable < roles:
		return 0.6
	default:
		return 0.3
	}
}
