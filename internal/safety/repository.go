// internal/safety/repository.go

package safety

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repository interface {
	CreateBlock(ctx context.Context, block *Block) error
	DeleteBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error
	IsBlocked(ctx context.Context, a, b uuid.UUID) (bool, error)
	GetBlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	GetBlocksBy(ctx context.Context, blockerID uuid.UUID) ([]*Block, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateBlock(ctx context.Context, block *Block) error {
	query := `
		INSERT INTO blocks (id, blocker_id, blocked_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (blocker_id, blocked_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		block.ID, block.BlockerID, block.BlockedID, block.CreatedAt)
	return err
}

func (r *postgresRepository) DeleteBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM blocks WHERE blocker_id = $1 AND blocked_id = $2`,
		blockerID, blockedID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBlockNotFound
	}
	return nil
}

// IsBlocked checks both directions.
func (r *postgresRepository) IsBlocked(ctx context.Context, a, b uuid.UUID) (bool, error) {
	var blocked bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM blocks
			WHERE (blocker_id = $1 AND blocked_id = $2)
			   OR (blocker_id = $2 AND blocked_id = $1)
		)
	`
	if err := r.db.GetContext(ctx, &blocked, query, a, b); err != nil {
		return false, err
	}
	return blocked, nil
}

// GetBlockedIDs returns everyone the user blocked or was blocked by.
func (r *postgresRepository) GetBlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `
		SELECT blocked_id FROM blocks WHERE blocker_id = $1
		UNION
		SELECT blocker_id FROM blocks WHERE blocked_id = $1
	`
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *postgresRepository) GetBlocksBy(ctx context.Context, blockerID uuid.UUID) ([]*Block, error) {
	var blocks []*Block
	query := `
		SELECT id, blocker_id, blocked_id, created_at
		FROM blocks
		WHERE blocker_id = $1
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &blocks, query, blockerID); err != nil {
		return nil, err
	}
	return blocks, nil
}
