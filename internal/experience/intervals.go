package experience

import "sort"

// MonthInterval is a half-open interval [Start, End) in absolute months,
// tagged with the source role's title. Parseable is false when duration could
// not be inferred from the role's dates; such intervals are zero-length.
type MonthInterval struct {
	Start     int
	End       int
	Title     string
	Parseable bool
}

// Months returns the interval's length in months.
func (iv MonthInterval) Months() int {
	return iv.End - iv.Start
}

// MergeIntervals folds overlapping and adjacent intervals into a minimal
// disjoint set using a sweep line: sort by start, then extend the running tail
// while the next interval starts at or before it. The input slice is not
// modified. Merging an already-merged set returns an equal set.
func MergeIntervals(intervals []MonthInterval) []MonthInterval {
	valid := make([]MonthInterval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Parseable && iv.End > iv.Start {
			valid = append(valid, iv)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sort.Slice(valid, func(i, j int) bool {
		if valid[i].Start != valid[j].Start {
			return valid[i].Start < valid[j].Start
		}
		return valid[i].End < valid[j].End
	})

	merged := make([]MonthInterval, 0, len(valid))
	tail := valid[0]
	for _, next := range valid[1:] {
		if next.Start <= tail.End {
			if next.End > tail.End {
				tail.End = next.End
			}
			continue
		}
		merged = append(merged, tail)
		tail = next
	}
	merged = append(merged, tail)
	return merged
}

// TotalMonths sums the lengths of a set of intervals.
func TotalMonths(intervals []MonthInterval) int {
	total := 0
	for _, iv := range intervals {
		total += iv.Months()
	}
	return total
}
