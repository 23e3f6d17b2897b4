package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"solvegrid/internal/analytics"
	"solvegrid/internal/domain/model"
	"solvegrid/internal/domain/repository"
	"solvegrid/internal/platform/cache"
)

// JudgeFetcher is the collaborator that supplies a handle's full
// submission history.
type JudgeFetcher interface {
	FetchSubmissions(ctx context.Context, handle string) ([]model.SubmissionEvent, error)
}

// DashboardService resolves a user's connected handle, obtains the raw
// submission log (cache first, judge on a miss) and runs the pure engine
// over it. Derived statistics are recomputed on every request; only the
// raw log is ever cached.
type DashboardService struct {
	platformRepo repository.PlatformRepository
	logCache     *cache.SubmissionLogCache
	judge        JudgeFetcher
	loc          *time.Location
	now          func() time.Time // injected for tests; engine never reads a clock
}

func NewDashboardService(
	platformRepo repository.PlatformRepository,
	logCache *cache.SubmissionLogCache,
	judge JudgeFetcher,
	loc *time.Location,
) *DashboardService {
	return &DashboardService{
		platformRepo: platformRepo,
		logCache:     logCache,
		judge:        judge,
		loc:          loc,
		now:          time.Now,
	}
}

// today is the single reference clock read per request, in the configured
// display location.
func (s *DashboardService) today() time.Time {
	return s.now().In(s.loc)
}

func (s *DashboardService) submissionLog(ctx context.Context, userID string) ([]model.SubmissionEvent, error) {
	conn, err := s.platformRepo.FindByUserAndPlatform(ctx, userID, model.PlatformCodeforces)
	if err != nil {
		return nil, fmt.Errorf("no connected judge handle: %w", err)
	}

	if events, ok, err := s.logCache.Get(ctx, conn.Platform, conn.Handle); err != nil {
		log.Printf("WARN: submission log cache read failed for %s/%s: %v", conn.Platform, conn.Handle, err)
	} else if ok {
		return events, nil
	}

	events, err := s.judge.FetchSubmissions(ctx, conn.Handle)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submission history: %w", err)
	}
	if err := s.logCache.Set(ctx, conn.Platform, conn.Handle, events); err != nil {
		log.Printf("WARN: submission log cache write failed for %s/%s: %v", conn.Platform, conn.Handle, err)
	}
	return events, nil
}

func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (*model.Dashboard, error) {
	events, err := s.submissionLog(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.BuildDashboard(events, s.today()), nil
}

func (s *DashboardService) GetMonthGrid(ctx context.Context, userID string, year int, month time.Month) ([]model.CalendarCell, error) {
	events, err := s.submissionLog(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := s.today()
	solved, _ := analytics.Normalize(events, today.Location())
	return analytics.BuildMonthGrid(analytics.AggregateByDay(solved), year, month, today)
}

func (s *DashboardService) GetYearHeatmap(ctx context.Context, userID string, year int) (*model.YearHeatmap, error) {
	events, err := s.submissionLog(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := s.today()
	solved, _ := analytics.Normalize(events, today.Location())
	return analytics.BuildYearGrid(analytics.AggregateByDay(solved), year, today)
}
