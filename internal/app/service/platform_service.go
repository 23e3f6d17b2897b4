package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"solvegrid/internal/common"
	"solvegrid/internal/domain/model"
	"solvegrid/internal/domain/repository"
	"solvegrid/internal/platform/cache"

	"github.com/google/uuid"
)

// PlatformService manages the judge handles a user has connected. The
// handle is explicit per-user persisted state, never ambient storage; the
// analytics engine only ever sees the submission log fetched for it.
type PlatformService struct {
	platformRepo repository.PlatformRepository
	logCache     *cache.SubmissionLogCache
}

func NewPlatformService(platformRepo repository.PlatformRepository, logCache *cache.SubmissionLogCache) *PlatformService {
	return &PlatformService{platformRepo: platformRepo, logCache: logCache}
}

type ConnectPlatformRequest struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
}

func (s *PlatformService) Connect(ctx context.Context, userID string, req ConnectPlatformRequest) (*model.PlatformConnection, error) {
	platform := strings.ToLower(strings.TrimSpace(req.Platform))
	handle := strings.TrimSpace(req.Handle)
	if platform != model.PlatformCodeforces {
		return nil, fmt.Errorf("unsupported platform %q: %w", req.Platform, common.ErrBadRequest)
	}
	if handle == "" {
		return nil, fmt.Errorf("handle is required: %w", common.ErrBadRequest)
	}

	// Replacing a handle invalidates the old handle's cached log.
	if prev, err := s.platformRepo.FindByUserAndPlatform(ctx, userID, platform); err == nil && prev.Handle != handle {
		if err := s.logCache.Delete(ctx, platform, prev.Handle); err != nil {
			log.Printf("WARN: failed to drop cached log for %s/%s: %v", platform, prev.Handle, err)
		}
	}

	conn := &model.PlatformConnection{
		ID:       uuid.NewString(),
		UserID:   userID,
		Platform: platform,
		Handle:   handle,
	}
	if err := s.platformRepo.Upsert(ctx, conn); err != nil {
		return nil, fmt.Errorf("failed to connect platform: %w", err)
	}
	return conn, nil
}

func (s *PlatformService) List(ctx context.Context, userID string) ([]model.PlatformConnection, error) {
	conns, err := s.platformRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list platform connections: %w", err)
	}
	return conns, nil
}

func (s *PlatformService) Disconnect(ctx context.Context, userID, platform string) error {
	platform = strings.ToLower(strings.TrimSpace(platform))
	conn, err := s.platformRepo.FindByUserAndPlatform(ctx, userID, platform)
	if err != nil {
		return err
	}
	if err := s.platformRepo.Delete(ctx, userID, platform); err != nil {
		return err
	}
	if err := s.logCache.Delete(ctx, platform, conn.Handle); err != nil {
		log.Printf("WARN: failed to drop cached log for %s/%s: %v", platform, conn.Handle, err)
	}
	return nil
}
