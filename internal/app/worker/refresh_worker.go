package worker

import (
	"context"
	"log"
	"time"

	"solvegrid/internal/app/service"
	"solvegrid/internal/domain/repository"
	"solvegrid/internal/platform/cache"
)

// RefreshWorker periodically re-fetches the raw submission logs of all
// connected handles into the cache so dashboards stay warm. It stores
// only the unprocessed input log; nothing derived is ever precomputed.
type RefreshWorker struct {
	platformRepo repository.PlatformRepository
	logCache     *cache.SubmissionLogCache
	judge        service.JudgeFetcher
	interval     time.Duration
}

func NewRefreshWorker(
	platformRepo repository.PlatformRepository,
	logCache *cache.SubmissionLogCache,
	judge service.JudgeFetcher,
	interval time.Duration,
) *RefreshWorker {
	return &RefreshWorker{
		platformRepo: platformRepo,
		logCache:     logCache,
		judge:        judge,
		interval:     interval,
	}
}

func (w *RefreshWorker) Start(ctx context.Context) {
	log.Printf("Refresh worker started, interval %s", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Refresh worker stopping...")
			return
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

func (w *RefreshWorker) refreshAll(ctx context.Context) {
	conns, err := w.platformRepo.ListAll(ctx)
	if err != nil {
		log.Printf("ERROR: refresh worker failed to list connections: %v", err)
		return
	}

	for _, conn := range conns {
		if ctx.Err() != nil {
			return
		}
		events, err := w.judge.FetchSubmissions(ctx, conn.Handle)
		if err != nil {
			// Skip this handle and carry on; the next tick retries.
			log.Printf("WARN: refresh failed for %s/%s: %v", conn.Platform, conn.Handle, err)
			continue
		}
		if err := w.logCache.Set(ctx, conn.Platform, conn.Handle, events); err != nil {
			log.Printf("WARN: cache write failed for %s/%s: %v", conn.Platform, conn.Handle, err)
		}
	}
}
