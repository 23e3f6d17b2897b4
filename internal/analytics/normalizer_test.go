package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solvegrid/internal/domain/model"
)

func intPtr(v int) *int { return &v }

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func ev(key string, verdict model.Verdict, submittedAt time.Time, rating *int, tags ...string) model.SubmissionEvent {
	return model.SubmissionEvent{
		ProblemKey:  key,
		Verdict:     verdict,
		SubmittedAt: submittedAt,
		Rating:      rating,
		Tags:        tags,
	}
}

func TestNormalize_FirstAcceptedWins(t *testing.T) {
	t.Parallel()

	// Newest-first input, as judge APIs report it: the normalizer must
	// establish chronological order itself.
	events := []model.SubmissionEvent{
		ev("1325-A", model.VerdictAccepted, at(2024, time.March, 9, 12), intPtr(1000)),
		ev("1325-A", model.VerdictAccepted, at(2024, time.March, 5, 12), intPtr(1000)),
		ev("1325-A", model.VerdictWrongAnswer, at(2024, time.March, 1, 12), intPtr(1000)),
		ev("1325-A", model.VerdictAccepted, at(2024, time.March, 3, 12), intPtr(1000)),
	}

	solved, _ := Normalize(events, time.UTC)

	require.Len(t, solved, 1)
	assert.Equal(t, "2024-03-03", solved["1325-A"].DateKey)
}

func TestNormalize_OnlyAcceptedCounts(t *testing.T) {
	t.Parallel()

	events := []model.SubmissionEvent{
		ev("1-A", model.VerdictWrongAnswer, at(2024, time.March, 1, 12), nil),
		ev("1-B", model.VerdictTimeLimitExceeded, at(2024, time.March, 1, 13), nil),
		ev("1-C", model.VerdictAccepted, at(2024, time.March, 1, 14), nil),
	}

	solved, _ := Normalize(events, time.UTC)

	require.Len(t, solved, 1)
	_, ok := solved["1-C"]
	assert.True(t, ok)
}

func TestNormalize_DropsMalformedEvents(t *testing.T) {
	t.Parallel()

	events := []model.SubmissionEvent{
		ev("", model.VerdictAccepted, at(2024, time.March, 1, 12), nil),             // no problem key
		ev("2-A", model.VerdictAccepted, time.Time{}, nil),                          // no timestamp
		ev("3-A", model.Verdict("FAILED_TO_PARSE"), at(2024, time.March, 1, 12), nil), // unknown verdict
		ev("4-A", model.VerdictAccepted, at(2024, time.March, 2, 12), nil),
	}

	solved, _ := Normalize(events, time.UTC)

	require.Len(t, solved, 1)
	_, ok := solved["4-A"]
	assert.True(t, ok)
}

func TestNormalize_DifficultyBuckets(t *testing.T) {
	t.Parallel()

	events := []model.SubmissionEvent{
		ev("1-A", model.VerdictAccepted, at(2024, time.March, 1, 10), intPtr(800)),
		ev("1-B", model.VerdictAccepted, at(2024, time.March, 1, 11), intPtr(1199)),
		ev("1-C", model.VerdictAccepted, at(2024, time.March, 1, 12), intPtr(1200)),
		ev("1-D", model.VerdictAccepted, at(2024, time.March, 1, 13), intPtr(1599)),
		ev("1-E", model.VerdictAccepted, at(2024, time.March, 1, 14), intPtr(1600)),
		ev("1-F", model.VerdictAccepted, at(2024, time.March, 1, 15), intPtr(2400)),
		ev("1-G", model.VerdictAccepted, at(2024, time.March, 1, 16), nil), // unrated
	}

	solved, diff := Normalize(events, time.UTC)

	assert.Equal(t, model.DifficultyCount{Easy: 2, Medium: 2, Hard: 2}, diff)
	// Unrated problems still count toward total solved.
	assert.Len(t, solved, 7)
}

func TestNormalize_DateKeyUsesGivenLocation(t *testing.T) {
	t.Parallel()

	// 23:30 UTC on Mar 1 is already Mar 2 in UTC+5.
	plus5 := time.FixedZone("UTC+5", 5*3600)
	events := []model.SubmissionEvent{
		ev("1-A", model.VerdictAccepted, time.Date(2024, time.March, 1, 23, 30, 0, 0, time.UTC), nil),
	}

	solvedUTC, _ := Normalize(events, time.UTC)
	solvedPlus5, _ := Normalize(events, plus5)

	assert.Equal(t, "2024-03-01", solvedUTC["1-A"].DateKey)
	assert.Equal(t, "2024-03-02", solvedPlus5["1-A"].DateKey)
}

func TestNormalize_EmptyInput(t *testing.T) {
	t.Parallel()

	solved, diff := Normalize(nil, time.UTC)

	assert.Empty(t, solved)
	assert.Equal(t, model.DifficultyCount{}, diff)
}
