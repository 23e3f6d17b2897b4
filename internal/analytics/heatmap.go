package analytics

import (
	"math"
	"time"

	"solvegrid/internal/domain/model"
)

// BuildYearGrid lays a whole year out as complete Sunday-to-Saturday
// weeks, from the Sunday on/before Jan 1 to the Saturday on/after Dec 31.
// Padding cells (outside the year) and future cells (after today) keep
// their slot so week columns stay aligned, but are forced inert. Month
// boundaries and the yearly aggregate stats are derived alongside.
func BuildYearGrid(days []model.ActivityDay, year int, today time.Time) (*model.YearHeatmap, error) {
	if err := checkYear(year); err != nil {
		return nil, err
	}

	loc := today.Location()
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
	start := jan1.AddDate(0, 0, -int(jan1.Weekday()))          // back to Sunday
	end := dec31.AddDate(0, 0, int(time.Saturday-dec31.Weekday())) // forward to Saturday
	counts := countsByDay(days)
	todayStart := startOfDay(today)

	var weeks [][]model.HeatmapCell
	for ws := start; !ws.After(end); ws = ws.AddDate(0, 0, 7) {
		week := make([]model.HeatmapCell, 0, 7)
		for i := 0; i < 7; i++ {
			day := ws.AddDate(0, 0, i)
			cell := model.HeatmapCell{
				DateKey:  dateKey(day),
				InYear:   day.Year() == year,
				IsFuture: day.After(todayStart),
			}
			if cell.InYear && !cell.IsFuture {
				cell.Count = counts[cell.DateKey]
				cell.Level = levelFor(cell.Count)
			}
			week = append(week, cell)
		}
		weeks = append(weeks, week)
	}

	return &model.YearHeatmap{
		Year:            year,
		Weeks:           weeks,
		MonthBoundaries: monthBoundaries(weeks, loc),
		Stats:           yearStats(days, year, dec31, today),
	}, nil
}

// monthBoundaries records, once per month transition, the first week
// column whose first in-year day falls in a new month. WeekIndex is
// strictly increasing because weeks are scanned in order.
func monthBoundaries(weeks [][]model.HeatmapCell, loc *time.Location) []model.MonthBoundary {
	var bounds []model.MonthBoundary
	var prev time.Month
	for wi, week := range weeks {
		for _, cell := range week {
			if !cell.InYear {
				continue
			}
			day, err := time.ParseInLocation(model.DateKeyLayout, cell.DateKey, loc)
			if err == nil && day.Month() != prev {
				prev = day.Month()
				bounds = append(bounds, model.MonthBoundary{Month: prev, WeekIndex: wi})
			}
			break // only the week's first in-year day decides
		}
	}
	return bounds
}

// yearStats aggregates over the year's days up to today, including a
// year-scoped streak pair: the streak walk is restricted to days inside
// [Jan 1, min(today, Dec 31)] with today clamped for past years.
func yearStats(days []model.ActivityDay, year int, dec31, today time.Time) model.YearStats {
	loc := today.Location()
	todayStart := startOfDay(today)

	var stats model.YearStats
	var inYear []model.ActivityDay
	for _, d := range days {
		day, err := time.ParseInLocation(model.DateKeyLayout, d.DateKey, loc)
		if err != nil || day.Year() != year || day.After(todayStart) {
			continue
		}
		inYear = append(inYear, d)
		if d.Count <= 0 {
			continue
		}
		stats.TotalSolved += d.Count
		stats.ActiveDays++
		if d.Count > stats.MaxInDay {
			stats.MaxInDay = d.Count
		}
	}
	if stats.ActiveDays > 0 {
		stats.AvgPerDay = math.Round(float64(stats.TotalSolved)/float64(stats.ActiveDays)*10) / 10
	}

	scopedToday := today
	if todayStart.After(dec31) {
		scopedToday = dec31
	}
	streak := ComputeStreak(inYear, scopedToday)
	stats.CurrentStreak = streak.CurrentStreak
	stats.LongestStreak = streak.LongestStreak
	return stats
}
