package analytics

import (
	"sort"
	"time"

	"solvegrid/internal/domain/model"
)

// ComputeStreak derives the current and longest runs of consecutive
// active days. today is an explicit parameter, never read from a clock,
// and its location fixes all date arithmetic.
//
// Current streak: walk backward day by day from today. If today itself
// has no activity yet the walk starts at yesterday instead — a day still
// in progress must not break an otherwise-live streak until it has fully
// elapsed.
//
// Longest streak: the longest contiguous run anywhere in the history,
// independent of today.
func ComputeStreak(days []model.ActivityDay, today time.Time) model.StreakState {
	loc := today.Location()
	active := make(map[string]bool, len(days))
	for _, d := range days {
		if d.Count > 0 {
			active[d.DateKey] = true
		}
	}

	var st model.StreakState
	if len(active) == 0 {
		return st
	}

	day := startOfDay(today)
	if !active[dateKey(day)] {
		day = day.AddDate(0, 0, -1)
	}
	for active[dateKey(day)] {
		st.CurrentStreak++
		day = day.AddDate(0, 0, -1)
	}

	keys := make([]string, 0, len(active))
	for k := range active {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	run := 0
	var prev time.Time
	for _, k := range keys {
		cur, err := time.ParseInLocation(model.DateKeyLayout, k, loc)
		if err != nil {
			continue
		}
		if !prev.IsZero() && prev.AddDate(0, 0, 1).Equal(cur) {
			run++
		} else {
			run = 1
		}
		if run > st.LongestStreak {
			st.LongestStreak = run
		}
		prev = cur
	}
	return st
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dateKey(t time.Time) string {
	return t.Format(model.DateKeyLayout)
}
