// Package analytics turns a raw judge submission log into the derived
// statistics shown on a user's dashboard: deduplicated solved counts,
// per-tag success rates, daily activity, streaks and calendar/heatmap
// grids. Every function is pure: the reference clock ("today") and the
// bucketing timezone are explicit parameters, so identical inputs always
// produce identical outputs.
package analytics

import (
	"sort"
	"time"

	"solvegrid/internal/domain/model"
)

// Normalize establishes chronological order over the raw log and applies
// the first-Accepted-wins rule, producing the deduplicated solved-problem
// set and the difficulty split. Input order is not trusted: judge APIs
// commonly return history newest-first. Date keys are computed in loc.
func Normalize(events []model.SubmissionEvent, loc *time.Location) (model.SolvedSet, model.DifficultyCount) {
	ordered := make([]model.SubmissionEvent, 0, len(events))
	for _, ev := range events {
		if eventValid(ev) {
			ordered = append(ordered, ev)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].SubmittedAt.Equal(ordered[j].SubmittedAt) {
			return ordered[i].ProblemKey < ordered[j].ProblemKey
		}
		return ordered[i].SubmittedAt.Before(ordered[j].SubmittedAt)
	})

	solved := make(model.SolvedSet)
	var diff model.DifficultyCount
	for _, ev := range ordered {
		if ev.Verdict != model.VerdictAccepted {
			continue
		}
		if _, done := solved[ev.ProblemKey]; done {
			continue
		}
		at := ev.SubmittedAt.In(loc)
		solved[ev.ProblemKey] = model.SolvedProblem{
			ProblemKey: ev.ProblemKey,
			DateKey:    at.Format(model.DateKeyLayout),
			SolvedAt:   at,
			Rating:     ev.Rating,
		}
		if ev.Rating != nil {
			switch {
			case *ev.Rating >= model.RatingHardMin:
				diff.Hard++
			case *ev.Rating >= model.RatingMediumMin:
				diff.Medium++
			default:
				diff.Easy++
			}
		}
	}
	return solved, diff
}

// eventValid filters malformed telemetry. A missing problem key, a zero
// timestamp or an unknown verdict drops the single event; one bad record
// must never break the whole dashboard.
func eventValid(ev model.SubmissionEvent) bool {
	return ev.ProblemKey != "" && !ev.SubmittedAt.IsZero() && ev.Verdict.IsKnown()
}
