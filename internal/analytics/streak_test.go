package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"solvegrid/internal/domain/model"
)

func day(key string, count int) model.ActivityDay {
	return model.ActivityDay{DateKey: key, Count: count}
}

func TestComputeStreak_InProgressTodayDoesNotBreak(t *testing.T) {
	t.Parallel()

	// Activity on today-2 and today-1, nothing yet today: the day is
	// still in progress, so the streak stands at 2.
	today := at(2024, time.March, 10, 15)
	days := []model.ActivityDay{
		day("2024-03-08", 1),
		day("2024-03-09", 2),
	}

	st := ComputeStreak(days, today)

	assert.Equal(t, 2, st.CurrentStreak)
	assert.Equal(t, 2, st.LongestStreak)
}

func TestComputeStreak_BreakBeforeYesterday(t *testing.T) {
	t.Parallel()

	// Activity today and yesterday, gap at today-2.
	today := at(2024, time.March, 10, 15)
	days := []model.ActivityDay{
		day("2024-03-06", 1),
		day("2024-03-07", 1),
		day("2024-03-09", 1),
		day("2024-03-10", 3),
	}

	st := ComputeStreak(days, today)

	assert.Equal(t, 2, st.CurrentStreak)
	assert.GreaterOrEqual(t, st.LongestStreak, 2)
}

func TestComputeStreak_GapTwoDaysAgoKillsCurrent(t *testing.T) {
	t.Parallel()

	today := at(2024, time.March, 10, 15)
	days := []model.ActivityDay{
		day("2024-03-05", 1),
		day("2024-03-06", 1),
		day("2024-03-07", 1),
	}

	st := ComputeStreak(days, today)

	// Last activity was today-3: neither today nor yesterday is active.
	assert.Equal(t, 0, st.CurrentStreak)
	assert.Equal(t, 3, st.LongestStreak)
}

func TestComputeStreak_SingleDay(t *testing.T) {
	t.Parallel()

	today := at(2024, time.March, 10, 8)

	tests := []struct {
		name        string
		dateKey     string
		wantCurrent int
	}{
		{"active today", "2024-03-10", 1},
		{"active yesterday", "2024-03-09", 1},
		{"active three days ago", "2024-03-07", 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			st := ComputeStreak([]model.ActivityDay{day(tc.dateKey, 1)}, today)

			assert.Equal(t, tc.wantCurrent, st.CurrentStreak)
			assert.Equal(t, 1, st.LongestStreak)
		})
	}
}

func TestComputeStreak_LongestSpansMonthBoundary(t *testing.T) {
	t.Parallel()

	today := at(2024, time.June, 1, 12)
	days := []model.ActivityDay{
		day("2024-01-30", 1),
		day("2024-01-31", 1),
		day("2024-02-01", 1),
		day("2024-02-02", 1),
	}

	st := ComputeStreak(days, today)

	assert.Equal(t, 0, st.CurrentStreak)
	assert.Equal(t, 4, st.LongestStreak)
}

func TestComputeStreak_LeapDayIsContiguous(t *testing.T) {
	t.Parallel()

	today := at(2024, time.March, 1, 12)
	days := []model.ActivityDay{
		day("2024-02-28", 1),
		day("2024-02-29", 1),
		day("2024-03-01", 1),
	}

	st := ComputeStreak(days, today)

	assert.Equal(t, 3, st.CurrentStreak)
	assert.Equal(t, 3, st.LongestStreak)
}

func TestComputeStreak_ZeroCountDaysAreGaps(t *testing.T) {
	t.Parallel()

	today := at(2024, time.March, 10, 15)
	days := []model.ActivityDay{
		day("2024-03-08", 1),
		day("2024-03-09", 0), // present but inactive
		day("2024-03-10", 1),
	}

	st := ComputeStreak(days, today)

	assert.Equal(t, 1, st.CurrentStreak)
	assert.Equal(t, 1, st.LongestStreak)
}

func TestComputeStreak_Empty(t *testing.T) {
	t.Parallel()

	st := ComputeStreak(nil, at(2024, time.March, 10, 15))

	assert.Equal(t, model.StreakState{}, st)
}
