package analytics

import (
	"time"

	"solvegrid/internal/domain/model"
)

// BuildDashboard runs the whole engine over one submission log: normalize,
// tag stats, daily activity and streaks. The grids are built separately
// per requested period via BuildMonthGrid/BuildYearGrid on the returned
// Activity slice.
func BuildDashboard(events []model.SubmissionEvent, today time.Time) *model.Dashboard {
	solved, difficulty := Normalize(events, today.Location())
	activity := AggregateByDay(solved)
	return &model.Dashboard{
		TotalSolved: len(solved),
		Difficulty:  difficulty,
		Tags:        AnalyzeTags(events),
		Activity:    activity,
		Streak:      ComputeStreak(activity, today),
	}
}
