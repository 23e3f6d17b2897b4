// Package judge fetches a user's full submission history from an external
// judge API and converts the loose wire records into strict
// model.SubmissionEvent values. The analytics engine never sees the wire
// shape.
package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"solvegrid/internal/common"
	"solvegrid/internal/domain/model"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Wire types for the Codeforces-compatible user.status endpoint.
type statusResponse struct {
	Status  string           `json:"status"`
	Comment string           `json:"comment"`
	Result  []wireSubmission `json:"result"`
}

type wireSubmission struct {
	ID                  int64       `json:"id"`
	CreationTimeSeconds int64       `json:"creationTimeSeconds"`
	Verdict             string      `json:"verdict"`
	Problem             wireProblem `json:"problem"`
}

type wireProblem struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Rating    *int     `json:"rating"`
	Tags      []string `json:"tags"`
}

// FetchSubmissions returns the handle's full submission history, newest
// first as the judge reports it. The engine re-establishes chronological
// order itself, so the wire ordering is passed through untouched.
func (c *Client) FetchSubmissions(ctx context.Context, handle string) ([]model.SubmissionEvent, error) {
	endpoint := fmt.Sprintf("%s/user.status?handle=%s", c.baseURL, url.QueryEscape(handle))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("judge.FetchSubmissions: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("judge API unreachable: %w", common.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("judge API returned status %d: %w", resp.StatusCode, common.ErrServiceUnavailable)
	}

	var body statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("judge API response decode: %w", err)
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("judge API error %q: %w", body.Comment, common.ErrServiceUnavailable)
	}

	events := make([]model.SubmissionEvent, 0, len(body.Result))
	for _, ws := range body.Result {
		events = append(events, ws.toEvent())
	}
	return events, nil
}

// toEvent converts a loose wire record. Conversion never fails: records
// the judge mangled (missing problem index, zero timestamp) come through
// with empty fields and are dropped by the engine's malformed-event
// policy, one record at a time.
func (ws wireSubmission) toEvent() model.SubmissionEvent {
	ev := model.SubmissionEvent{
		Verdict: mapVerdict(ws.Verdict),
		Rating:  ws.Problem.Rating,
		Tags:    ws.Problem.Tags,
	}
	if ws.Problem.Index != "" {
		ev.ProblemKey = fmt.Sprintf("%d-%s", ws.Problem.ContestID, ws.Problem.Index)
	}
	if ws.CreationTimeSeconds > 0 {
		ev.SubmittedAt = time.Unix(ws.CreationTimeSeconds, 0).UTC()
	}
	return ev
}

func mapVerdict(wire string) model.Verdict {
	switch wire {
	case "OK":
		return model.VerdictAccepted
	case "WRONG_ANSWER":
		return model.VerdictWrongAnswer
	case "TIME_LIMIT_EXCEEDED":
		return model.VerdictTimeLimitExceeded
	case "MEMORY_LIMIT_EXCEEDED":
		return model.VerdictMemoryLimitExceeded
	case "COMPILATION_ERROR":
		return model.VerdictCompilationError
	case "RUNTIME_ERROR":
		return model.VerdictRuntimeError
	case "SKIPPED", "TESTING", "PARTIAL", "CHALLENGED", "REJECTED", "IDLENESS_LIMIT_EXCEEDED":
		return model.VerdictSkipped
	default:
		// Unknown verdicts are invalid on purpose: the engine drops them.
		return model.Verdict(wire)
	}
}
