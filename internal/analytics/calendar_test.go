package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solvegrid/internal/common"
	"solvegrid/internal/domain/model"
)

func TestBuildMonthGrid_Always42Cells(t *testing.T) {
	t.Parallel()

	today := at(2025, time.January, 1, 9)

	tests := []struct {
		name  string
		year  int
		month time.Month
	}{
		{"28-day february", 2023, time.February},
		{"leap february", 2024, time.February},
		{"30-day month", 2024, time.April},
		{"31-day month", 2024, time.March},
		{"month starting on sunday", 2024, time.September},
		{"month ending on saturday", 2024, time.August},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cells, err := BuildMonthGrid(nil, tc.year, tc.month, today)

			require.NoError(t, err)
			assert.Len(t, cells, MonthGridCells)
		})
	}
}

func TestBuildMonthGrid_PaddingAndLayout(t *testing.T) {
	t.Parallel()

	// March 2024 starts on a Friday: five cells of February padding.
	cells, err := BuildMonthGrid(nil, 2024, time.March, at(2024, time.March, 10, 9))
	require.NoError(t, err)

	assert.Equal(t, "2024-02-25", cells[0].DateKey)
	for i := 0; i < 5; i++ {
		assert.False(t, cells[i].InMonth, "cell %d", i)
	}
	assert.Equal(t, "2024-03-01", cells[5].DateKey)
	assert.True(t, cells[5].InMonth)
	assert.Equal(t, 1, cells[5].Day)

	// Trailing cells spill into April.
	last := cells[len(cells)-1]
	assert.Equal(t, "2024-04-06", last.DateKey)
	assert.False(t, last.InMonth)
}

func TestBuildMonthGrid_CountsAndLevels(t *testing.T) {
	t.Parallel()

	days := []model.ActivityDay{
		day("2024-03-01", 1),
		day("2024-03-02", 3),
		day("2024-03-03", 6),
		day("2024-03-04", 11),
		day("2024-03-05", 2),
	}

	cells, err := BuildMonthGrid(days, 2024, time.March, at(2024, time.March, 20, 9))
	require.NoError(t, err)

	byKey := make(map[string]model.CalendarCell)
	for _, c := range cells {
		byKey[c.DateKey] = c
	}

	assert.Equal(t, 1, byKey["2024-03-01"].Level)
	assert.Equal(t, 2, byKey["2024-03-02"].Level)
	assert.Equal(t, 3, byKey["2024-03-03"].Level)
	assert.Equal(t, 4, byKey["2024-03-04"].Level)
	assert.Equal(t, 1, byKey["2024-03-05"].Level)
	// Days with no record default to zero.
	assert.Equal(t, 0, byKey["2024-03-06"].Count)
	assert.Equal(t, 0, byKey["2024-03-06"].Level)
}

func TestBuildMonthGrid_TodayAndPastFlags(t *testing.T) {
	t.Parallel()

	cells, err := BuildMonthGrid(nil, 2024, time.March, at(2024, time.March, 10, 9))
	require.NoError(t, err)

	byKey := make(map[string]model.CalendarCell)
	for _, c := range cells {
		byKey[c.DateKey] = c
	}

	assert.True(t, byKey["2024-03-09"].IsPast)
	assert.False(t, byKey["2024-03-09"].IsToday)
	assert.True(t, byKey["2024-03-10"].IsToday)
	assert.False(t, byKey["2024-03-10"].IsPast)
	assert.False(t, byKey["2024-03-11"].IsPast)
	assert.False(t, byKey["2024-03-11"].IsToday)
	// Padding cells stay inert even when chronologically past.
	assert.False(t, byKey["2024-02-25"].IsPast)
}

func TestBuildMonthGrid_InvalidPeriod(t *testing.T) {
	t.Parallel()

	today := at(2024, time.March, 10, 9)

	_, err := BuildMonthGrid(nil, 2024, 0, today)
	assert.ErrorIs(t, err, common.ErrInvalidPeriod)

	_, err = BuildMonthGrid(nil, 2024, 13, today)
	assert.ErrorIs(t, err, common.ErrInvalidPeriod)

	_, err = BuildMonthGrid(nil, 0, time.March, today)
	assert.ErrorIs(t, err, common.ErrInvalidPeriod)

	_, err = BuildMonthGrid(nil, 10000, time.March, today)
	assert.ErrorIs(t, err, common.ErrInvalidPeriod)
}
