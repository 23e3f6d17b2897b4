package model

import "time"

// DateKeyLayout is the calendar-date key format used for all day-level
// aggregation ("YYYY-MM-DD").
const DateKeyLayout = "2006-01-02"

// Rating thresholds for the three-way difficulty split of solved problems.
const (
	RatingMediumMin = 1200
	RatingHardMin   = 1600
)

// SolvedProblem records the first Accepted submission of a problem.
type SolvedProblem struct {
	ProblemKey string    `json:"problem_key"`
	DateKey    string    `json:"date_key"`
	SolvedAt   time.Time `json:"solved_at"`
	Rating     *int      `json:"rating,omitempty"`
}

// SolvedSet maps problem key to its first-solve record. A problem appears
// at most once regardless of how many Accepted submissions it received.
type SolvedSet map[string]SolvedProblem

// DifficultyCount partitions solved problems by rating. Problems without
// a rating count toward the total solved but toward no bucket.
type DifficultyCount struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// TagStat is the published per-tag aggregate. Attempted and Solved count
// unique problems, not submissions.
type TagStat struct {
	Tag         string `json:"tag"`
	Attempted   int    `json:"attempted"`
	Solved      int    `json:"solved"`
	SuccessRate int    `json:"success_rate"` // 0-100, rounded
	AvgRating   int    `json:"avg_rating"`   // rounded, 0 if nothing solved
}

// ActivityDay is one calendar date with at least one first-solved problem.
type ActivityDay struct {
	DateKey     string   `json:"date_key"`
	Count       int      `json:"count"`
	ProblemKeys []string `json:"problem_keys"`
}

type StreakState struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

// CalendarCell is one slot of the 6x7 month grid. Padding cells from the
// neighbouring months carry InMonth=false and are inert: zero count, no
// today/past flags.
type CalendarCell struct {
	DateKey string `json:"date_key"`
	Day     int    `json:"day"`
	Count   int    `json:"count"`
	Level   int    `json:"level"` // 0-4 intensity bucket
	InMonth bool   `json:"in_month"`
	IsToday bool   `json:"is_today"`
	IsPast  bool   `json:"is_past"`
}

// HeatmapCell is one day slot of the year heatmap. Cells outside the year
// or after today keep their grid slot but are forced inert.
type HeatmapCell struct {
	DateKey  string `json:"date_key"`
	Count    int    `json:"count"`
	Level    int    `json:"level"`
	InYear   bool   `json:"in_year"`
	IsFuture bool   `json:"is_future"`
}

// MonthBoundary marks the first week column whose first in-year day falls
// in a new month. Drives month-label placement above the heatmap.
type MonthBoundary struct {
	Month     time.Month `json:"month"`
	WeekIndex int        `json:"week_index"`
}

// YearStats are the aggregate numbers shown next to the heatmap. The
// streak pair is year-scoped: computed only from days inside the year, up
// to today for the current year.
type YearStats struct {
	TotalSolved   int     `json:"total_solved"`
	ActiveDays    int     `json:"active_days"`
	MaxInDay      int     `json:"max_in_day"`
	AvgPerDay     float64 `json:"avg_per_day"` // one decimal
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
}

type YearHeatmap struct {
	Year            int             `json:"year"`
	Weeks           [][]HeatmapCell `json:"weeks"`
	MonthBoundaries []MonthBoundary `json:"month_boundaries"`
	Stats           YearStats       `json:"stats"`
}

// Dashboard is the combined read model served to the profile page.
type Dashboard struct {
	TotalSolved int             `json:"total_solved"`
	Difficulty  DifficultyCount `json:"difficulty"`
	Tags        []TagStat       `json:"tags"`
	Activity    []ActivityDay   `json:"activity"`
	Streak      StreakState     `json:"streak"`
}
