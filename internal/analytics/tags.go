package analytics

import (
	"math"
	"sort"

	"github.com/gosimple/slug"

	"solvegrid/internal/domain/model"
)

// Tags referenced by fewer than this many unique problems are noise and
// not published.
const minTagAttempts = 2

type tagAccumulator struct {
	attempted map[string]struct{}
	solved    map[string]struct{}
	ratingSum int
}

// AnalyzeTags computes per-tag attempted/solved stats over the raw log.
// Attempted and solved count unique problems, not submissions. Tag labels
// are canonicalized ("Dynamic Programming" and "dynamic programming" are
// the same tag). Output is ordered by attempted descending, ties broken
// by tag name, so repeated runs are byte-identical.
func AnalyzeTags(events []model.SubmissionEvent) []model.TagStat {
	accs := make(map[string]*tagAccumulator)
	for _, ev := range events {
		if !eventValid(ev) {
			continue
		}
		for _, label := range ev.Tags {
			tag := slug.Make(label)
			if tag == "" {
				continue
			}
			acc := accs[tag]
			if acc == nil {
				acc = &tagAccumulator{
					attempted: make(map[string]struct{}),
					solved:    make(map[string]struct{}),
				}
				accs[tag] = acc
			}
			acc.attempted[ev.ProblemKey] = struct{}{}
			if ev.Verdict != model.VerdictAccepted {
				continue
			}
			if _, done := acc.solved[ev.ProblemKey]; done {
				continue
			}
			acc.solved[ev.ProblemKey] = struct{}{}
			if ev.Rating != nil {
				acc.ratingSum += *ev.Rating
			}
		}
	}

	stats := make([]model.TagStat, 0, len(accs))
	for tag, acc := range accs {
		if len(acc.attempted) < minTagAttempts {
			continue
		}
		st := model.TagStat{
			Tag:       tag,
			Attempted: len(acc.attempted),
			Solved:    len(acc.solved),
		}
		st.SuccessRate = roundRatio(100*st.Solved, st.Attempted)
		if st.Solved > 0 {
			st.AvgRating = roundRatio(acc.ratingSum, st.Solved)
		}
		stats = append(stats, st)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Attempted != stats[j].Attempted {
			return stats[i].Attempted > stats[j].Attempted
		}
		return stats[i].Tag < stats[j].Tag
	})
	return stats
}

// roundRatio rounds num/den to the nearest integer; 0 for an empty
// denominator.
func roundRatio(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(den)))
}
