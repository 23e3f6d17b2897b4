package model

import "time"

type Verdict string

const (
	VerdictAccepted            Verdict = "Accepted"
	VerdictWrongAnswer         Verdict = "WrongAnswer"
	VerdictTimeLimitExceeded   Verdict = "TimeLimitExceeded"
	VerdictMemoryLimitExceeded Verdict = "MemoryLimitExceeded"
	VerdictCompilationError    Verdict = "CompilationError"
	VerdictRuntimeError        Verdict = "RuntimeError"
	VerdictSkipped             Verdict = "Skipped"
)

// IsKnown reports whether v is one of the enumerated verdicts.
func (v Verdict) IsKnown() bool {
	switch v {
	case VerdictAccepted, VerdictWrongAnswer, VerdictTimeLimitExceeded,
		VerdictMemoryLimitExceeded, VerdictCompilationError,
		VerdictRuntimeError, VerdictSkipped:
		return true
	}
	return false
}

// SubmissionEvent is one judge submission from a user's history, already
// converted from the loose wire record into a strict shape. ProblemKey is
// the stable composite identifier ("<contest>-<index>", e.g. "1325-A").
// Rating is nil when the judge has not assigned the problem a difficulty.
type SubmissionEvent struct {
	ProblemKey  string    `json:"problem_key"`
	Verdict     Verdict   `json:"verdict"`
	SubmittedAt time.Time `json:"submitted_at"`
	Rating      *int      `json:"rating,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}
