package analytics

import (
	"fmt"
	"time"

	"solvegrid/internal/common"
	"solvegrid/internal/domain/model"
)

// MonthGridCells is the fixed month-grid size: 6 weeks of 7 days,
// regardless of how many weeks the month actually spans.
const MonthGridCells = 42

// BuildMonthGrid lays a month out as a Sunday-first 6x7 grid, padding the
// leading gap with trailing days of the previous month and the remainder
// with leading days of the next. In-month cells carry the day's solve
// count, its 0-4 intensity level and today/past flags; padding cells are
// inert. An out-of-range year or month is a caller bug and fails loudly.
func BuildMonthGrid(days []model.ActivityDay, year int, month time.Month, today time.Time) ([]model.CalendarCell, error) {
	if err := checkYear(year); err != nil {
		return nil, err
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month %d out of range 1-12: %w", month, common.ErrInvalidPeriod)
	}

	counts := countsByDay(days)
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	start := first.AddDate(0, 0, -int(first.Weekday())) // back to Sunday
	todayStart := startOfDay(today)
	todayKey := dateKey(todayStart)

	cells := make([]model.CalendarCell, 0, MonthGridCells)
	for i := 0; i < MonthGridCells; i++ {
		day := start.AddDate(0, 0, i)
		cell := model.CalendarCell{
			DateKey: dateKey(day),
			Day:     day.Day(),
		}
		if day.Year() == year && day.Month() == month {
			cell.InMonth = true
			cell.Count = counts[cell.DateKey]
			cell.Level = levelFor(cell.Count)
			cell.IsToday = cell.DateKey == todayKey
			cell.IsPast = day.Before(todayStart)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// levelFor buckets a day count into the 0-4 intensity scale shared by the
// month grid and the heatmap. Display-only; nothing aggregates over it.
func levelFor(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 5:
		return 2
	case count <= 10:
		return 3
	default:
		return 4
	}
}

func countsByDay(days []model.ActivityDay) map[string]int {
	counts := make(map[string]int, len(days))
	for _, d := range days {
		counts[d.DateKey] = d.Count
	}
	return counts
}

func checkYear(year int) error {
	if year < 1 || year > 9999 {
		return fmt.Errorf("year %d out of range 1-9999: %w", year, common.ErrInvalidPeriod)
	}
	return nil
}
