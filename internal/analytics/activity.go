package analytics

import (
	"sort"

	"solvegrid/internal/domain/model"
)

// AggregateByDay groups the deduplicated solved set by first-solved date.
// Because the set is already deduplicated, every problem lands in exactly
// one day bucket, so the day counts sum to the solved total. Output is
// ascending by date key; problem keys inside a day are sorted.
func AggregateByDay(solved model.SolvedSet) []model.ActivityDay {
	byDay := make(map[string]*model.ActivityDay)
	for _, p := range solved {
		day := byDay[p.DateKey]
		if day == nil {
			day = &model.ActivityDay{DateKey: p.DateKey}
			byDay[p.DateKey] = day
		}
		day.Count++
		day.ProblemKeys = append(day.ProblemKeys, p.ProblemKey)
	}

	days := make([]model.ActivityDay, 0, len(byDay))
	for _, day := range byDay {
		sort.Strings(day.ProblemKeys)
		days = append(days, *day)
	}
	// Zero-padded date keys sort lexicographically in calendar order.
	sort.Slice(days, func(i, j int) bool { return days[i].DateKey < days[j].DateKey })
	return days
}
