package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"solvegrid/internal/common"
	"solvegrid/internal/domain/model"
)

type PlatformRepository interface {
	Upsert(ctx context.Context, conn *model.PlatformConnection) error
	FindByUserAndPlatform(ctx context.Context, userID, platform string) (*model.PlatformConnection, error)
	ListByUser(ctx context.Context, userID string) ([]model.PlatformConnection, error)
	ListAll(ctx context.Context) ([]model.PlatformConnection, error)
	Delete(ctx context.Context, userID, platform string) error
}

type pgPlatformRepository struct {
	db *sql.DB
}

func NewPgPlatformRepository(db *sql.DB) PlatformRepository {
	return &pgPlatformRepository{db: db}
}

func (r *pgPlatformRepository) Upsert(ctx context.Context, conn *model.PlatformConnection) error {
	query := `INSERT INTO platform_connections (id, user_id, platform, handle)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_id, platform)
	          DO UPDATE SET handle = EXCLUDED.handle, updated_at = NOW()`
	_, err := r.db.ExecContext(ctx, query, conn.ID, conn.UserID, conn.Platform, conn.Handle)
	if err != nil {
		return fmt.Errorf("pgPlatformRepository.Upsert: %w", err)
	}
	return nil
}

func (r *pgPlatformRepository) FindByUserAndPlatform(ctx context.Context, userID, platform string) (*model.PlatformConnection, error) {
	query := `SELECT id, user_id, platform, handle, created_at, updated_at
	          FROM platform_connections WHERE user_id = $1 AND platform = $2`
	conn := &model.PlatformConnection{}
	err := r.db.QueryRowContext(ctx, query, userID, platform).Scan(
		&conn.ID, &conn.UserID, &conn.Platform, &conn.Handle, &conn.CreatedAt, &conn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgPlatformRepository.FindByUserAndPlatform: %w", err)
	}
	return conn, nil
}

func (r *pgPlatformRepository) ListByUser(ctx context.Context, userID string) ([]model.PlatformConnection, error) {
	query := `SELECT id, user_id, platform, handle, created_at, updated_at
	          FROM platform_connections WHERE user_id = $1 ORDER BY platform`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgPlatformRepository.ListByUser: %w", err)
	}
	defer rows.Close()
	return scanConnections(rows)
}

func (r *pgPlatformRepository) ListAll(ctx context.Context) ([]model.PlatformConnection, error) {
	query := `SELECT id, user_id, platform, handle, created_at, updated_at
	          FROM platform_connections ORDER BY updated_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgPlatformRepository.ListAll: %w", err)
	}
	defer rows.Close()
	return scanConnections(rows)
}

func (r *pgPlatformRepository) Delete(ctx context.Context, userID, platform string) error {
	query := `DELETE FROM platform_connections WHERE user_id = $1 AND platform = $2`
	res, err := r.db.ExecContext(ctx, query, userID, platform)
	if err != nil {
		return fmt.Errorf("pgPlatformRepository.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func scanConnections(rows *sql.Rows) ([]model.PlatformConnection, error) {
	var conns []model.PlatformConnection
	for rows.Next() {
		var conn model.PlatformConnection
		if err := rows.Scan(&conn.ID, &conn.UserID, &conn.Platform, &conn.Handle, &conn.CreatedAt, &conn.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanConnections: %w", err)
		}
		conns = append(conns, conn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanConnections: %w", err)
	}
	return conns, nil
}
