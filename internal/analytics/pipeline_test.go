package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solvegrid/internal/domain/model"
)

func scenarioEvents() []model.SubmissionEvent {
	return []model.SubmissionEvent{
		ev("A", model.VerdictAccepted, at(2024, time.January, 1, 10), intPtr(1000), "dp"),
		ev("A", model.VerdictAccepted, at(2024, time.January, 5, 10), intPtr(1000), "dp"),
		ev("B", model.VerdictWrongAnswer, at(2024, time.January, 2, 10), intPtr(1800), "dp"),
		ev("B", model.VerdictAccepted, at(2024, time.January, 3, 10), intPtr(1800), "dp"),
	}
}

func TestBuildDashboard_Scenario(t *testing.T) {
	t.Parallel()

	today := at(2024, time.January, 5, 12)
	dash := BuildDashboard(scenarioEvents(), today)

	// Resubmitting A on Jan 5 must not inflate anything: A stays solved
	// once, on Jan 1.
	assert.Equal(t, 2, dash.TotalSolved)

	require.Len(t, dash.Activity, 2)
	assert.Equal(t, "2024-01-01", dash.Activity[0].DateKey)
	assert.Equal(t, 1, dash.Activity[0].Count)
	assert.Equal(t, "2024-01-03", dash.Activity[1].DateKey)
	assert.Equal(t, 1, dash.Activity[1].Count)

	require.Len(t, dash.Tags, 1)
	dp := dash.Tags[0]
	assert.Equal(t, "dp", dp.Tag)
	assert.Equal(t, 2, dp.Attempted)
	assert.Equal(t, 2, dp.Solved)
	assert.Equal(t, 100, dp.SuccessRate)
	assert.Equal(t, 1400, dp.AvgRating)

	// No activity on Jan 4 or Jan 5: the current streak is dead, the
	// single-day runs survive as longest.
	assert.Equal(t, 0, dash.Streak.CurrentStreak)
	assert.Equal(t, 1, dash.Streak.LongestStreak)

	assert.Equal(t, model.DifficultyCount{Easy: 1, Hard: 1}, dash.Difficulty)
}

func TestBuildDashboard_Idempotence(t *testing.T) {
	t.Parallel()

	today := at(2024, time.January, 5, 12)

	first := BuildDashboard(scenarioEvents(), today)
	second := BuildDashboard(scenarioEvents(), today)

	assert.Equal(t, first, second)
}

func TestBuildDashboard_EmptyInput(t *testing.T) {
	t.Parallel()

	dash := BuildDashboard(nil, at(2024, time.January, 5, 12))

	assert.Equal(t, 0, dash.TotalSolved)
	assert.Empty(t, dash.Tags)
	assert.Empty(t, dash.Activity)
	assert.Equal(t, model.StreakState{}, dash.Streak)
	assert.Equal(t, model.DifficultyCount{}, dash.Difficulty)
}

func TestBuildDashboard_GridsAgreeWithActivity(t *testing.T) {
	t.Parallel()

	today := at(2024, time.January, 5, 12)
	dash := BuildDashboard(scenarioEvents(), today)

	cells, err := BuildMonthGrid(dash.Activity, 2024, time.January, today)
	require.NoError(t, err)
	hm, err := BuildYearGrid(dash.Activity, 2024, today)
	require.NoError(t, err)

	cellCount := func(key string) int {
		for _, c := range cells {
			if c.DateKey == key && c.InMonth {
				return c.Count
			}
		}
		return -1
	}
	heatCount := func(key string) int {
		for _, week := range hm.Weeks {
			for _, c := range week {
				if c.DateKey == key && c.InYear {
					return c.Count
				}
			}
		}
		return -1
	}

	// Both grid layouts must agree with the same day-level aggregate.
	for _, d := range dash.Activity {
		assert.Equal(t, d.Count, cellCount(d.DateKey), "calendar %s", d.DateKey)
		assert.Equal(t, d.Count, heatCount(d.DateKey), "heatmap %s", d.DateKey)
	}
}
