package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fit-engine/internal/types"
)

// fixedNow pins "now" to June 2025 so present-dated roles have stable durations.
func fixedNow() time.Time {
	return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestParseMonth_Formats(t *testing.T) {
	now := fixedNow()
	tests := []struct {
		name  string
		raw   string
		isEnd bool
		want  int
		ok    bool
	}{
		{name: "year month", raw: "2021-03", want: 2021*12 + 2, ok: true},
		{name: "full date", raw: "2021-03-15", want: 2021*12 + 2, ok: true},
		{name: "month name", raw: "March 2021", want: 2021*12 + 2, ok: true},
		{name: "abbreviated month", raw: "Mar 2021", want: 2021*12 + 2, ok: true},
		{name: "year only start resolves to january", raw: "2021", want: 2021 * 12, ok: true},
		{name: "year only end resolves to december", raw: "2021", isEnd: true, want: 2021*12 + 11, ok: true},
		{name: "present resolves to now", raw: "Present", isEnd: true, want: MonthIndex(now), ok: true},
		{name: "ongoing resolves to now", raw: "ongoing", isEnd: true, want: MonthIndex(now), ok: true},
		{name: "empty string", raw: "", ok: false},
		{name: "garbage", raw: "last summer", ok: false},
		{name: "implausible year", raw: "0202", ok: false},
		{name: "month out of range", raw: "2021-13", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMonth(tt.raw, tt.isEnd, now)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMergeIntervals_OverlapsAndGaps(t *testing.T) {
	// Two overlapping roles merge into one 29-month span; a separate role
	// after a gap stays distinct.
	intervals := []MonthInterval{
		{Start: 2020 * 12, End: 2021*12 + 11, Parseable: true},
		{Start: 2021*12 + 5, End: 2022*12 + 5, Parseable: true},
		{Start: 2023*12 + 3, End: 2023*12 + 9, Parseable: true},
	}

	merged := MergeIntervals(intervals)
	require.Len(t, merged, 2)
	assert.Equal(t, 29, merged[0].Months())
	assert.Equal(t, 6, merged[1].Months())
	assert.Equal(t, 35, TotalMonths(merged))
}

func TestMergeIntervals_Idempotent(t *testing.T) {
	intervals := []MonthInterval{
		{Start: 100, End: 110, Parseable: true},
		{Start: 105, End: 120, Parseable: true},
	}
	once := MergeIntervals(intervals)
	twice := MergeIntervals(once)
	assert.Equal(t, once, twice)
}

func TestMergeIntervals_DropsUnparseable(t *testing.T) {
	intervals := []MonthInterval{
		{Start: 0, End: 0, Parseable: false},
		{Start: 100, End: 110, Parseable: true},
	}
	merged := MergeIntervals(intervals)
	require.Len(t, merged, 1)
	assert.Equal(t, 10, merged[0].Months())
}

func TestCalculate_OverlappingRolesNotDoubleCounted(t *testing.T) {
	calc := NewCalculator(fixedNow)
	result := calc.Calculate([]types.WorkExperience{
		{Title: "Backend Engineer", StartDate: "2020-01", EndDate: "2021-12"},
		{Title: "Consultant", StartDate: "2021-06", EndDate: "2022-06"},
	})

	assert.Equal(t, 29, result.TotalMonths)
	assert.Equal(t, 1, result.MergedIntervals)
	assert.InDelta(t, 1.0, result.Confidence, 0.001)
}

func TestCalculate_GapsExcluded(t *testing.T) {
	calc := NewCalculator(fixedNow)
	result := calc.Calculate([]types.WorkExperience{
		{Title: "Engineer", StartDate: "2019-01", EndDate: "2020-01"},
		{Title: "Engineer", StartDate: "2020-11", EndDate: "2021-11"},
	})

	// 12 + 12, the 10-month gap between the roles earns nothing.
	assert.Equal(t, 24, result.TotalMonths)
	assert.Equal(t, 2, result.MergedIntervals)
}

func TestCalculate_CurrentRoleRunsToNow(t *testing.T) {
	calc := NewCalculator(fixedNow)
	result := calc.Calculate([]types.WorkExperience{
		{Title: "Engineer", StartDate: "2024-06", EndDate: "Present"},
	})
	assert.Equal(t, 12, result.TotalMonths)
}

func TestCalculate_UnparseableEndWithoutCurrent(t *testing.T) {
	calc := NewCalculator(fixedNow)
	result := calc.Calculate([]types.WorkExperience{
		{Title: "Engineer", StartDate: "2020-01", EndDate: "unknown"},
	})

	assert.Equal(t, 0, result.TotalMonths)
	assert.Equal(t, 1, result.UnparseableRoles)
	assert.InDelta(t, 0.3, result.Confidence, 0.001)
}

func TestCalculate_UnparseableEndWithCurrentFlag(t *testing.T) {
	calc := NewCalculator(fixedNow)
	result := calc.Calculate([]types.WorkExperience{
		{Title: "Engineer", StartDate: "2024-06", EndDate: "", Current: true},
	})
	assert.Equal(t, 12, result.TotalMonths)
}

func TestCalculate_EndBeforeStartGetsMinimumSpan(t *testing.T) {
	calc := NewCalculator(fixedNow)
	result := calc.Calculate([]types.WorkExperience{
		{Title: "Engineer", StartDate: "2021-06", EndDate: "2020-06"},
	})
	assert.Equal(t, 1, result.TotalMonths)
}

func TestCalculate_SingleRoleCappedAt480Months(t *testing.T) {
	calc := NewCalculator(fixedNow)
	result := calc.Calculate([]types.WorkExperience{
		{Title: "Engineer", StartDate: "1960-01", EndDate: "2025-01"},
	})

	// 65 stated years credit at most 40 per role.
	assert.Equal(t, 480, result.TotalMonths)
}

func TestCalculate_TotalCappedAt600Months(t *testing.T) {
	calc := NewCalculator(fixedNow)
	result := calc.Calculate([]types.WorkExperience{
		{Title: "Engineer", StartDate: "1960-01", EndDate: "2000-01"},
		{Title: "Principal Engineer", StartDate: "2001-01", EndDate: "2020-01"},
	})

	// 480 + 228 non-overlapping months still cap at 50 years.
	assert.Equal(t, 600, result.TotalMonths)
	assert.Equal(t, 2, result.MergedIntervals)
}

func TestCalculate_InternshipsPooledSeparately(t *testing.T) {
	calc := NewCalculator(fixedNow)
	result := calc.Calculate([]types.WorkExperience{
		{Title: "Software Engineering Intern", StartDate: "2019-06", EndDate: "2019-09"},
		{Title: "Software Engineer", StartDate: "2020-01", EndDate: "2022-01"},
	})

	assert.Equal(t, 24, result.TotalMonths)
	assert.Equal(t, 3, result.InternshipMonths)
}

func TestCalculate_MixedParseability(t *testing.T) {
	calc := NewCalculator(fixedNow)
	result := calc.Calculate([]types.WorkExperience{
		{Title: "Engineer", StartDate: "2020-01", EndDate: "2021-01"},
		{Title: "Engineer", StartDate: "someday", EndDate: "2022-01"},
	})
	assert.InDelta(t, 0.6, result.Confidence, 0.001)
}

func TestRecentRole(t *testing.T) {
	calc := NewCalculator(fixedNow)

	assert.True(t, calc.RecentRole(types.WorkExperience{EndDate: "", Current: true}, 24))
	assert.True(t, calc.RecentRole(types.WorkExperience{EndDate: "2024-01"}, 24))
	assert.False(t, calc.RecentRole(types.WorkExperience{EndDate: "2021-01"}, 24))
	assert.False(t, calc.RecentRole(types.WorkExperience{EndDate: "unknown"}, 24))
}
