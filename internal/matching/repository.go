// internal/matching/repository.go

package matching

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repository interface {
	// Swipes
	CreateSwipe(ctx context.Context, swipe *Swipe) error
	GetSwipe(ctx context.Context, from, to uuid.UUID) (*Swipe, error)
	DeleteSwipe(ctx context.Context, id uuid.UUID) error
	GetInteractedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	CountLikesSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
	CountPassesSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)

	// Matches
	CreateMatch(ctx context.Context, match *Match) error
	GetMatch(ctx context.Context, id uuid.UUID) (*Match, error)
	DeleteMatch(ctx context.Context, id uuid.UUID) error
	GetActiveMatchesFor(ctx context.Context, userID uuid.UUID) ([]*Match, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// Swipe Methods

func (r *postgresRepository) CreateSwipe(ctx context.Context, swipe *Swipe) error {
	query := `
		INSERT INTO swipes (id, from_id, to_id, direction, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		swipe.ID, swipe.FromID, swipe.ToID, swipe.Direction, swipe.CreatedAt)
	return err
}

func (r *postgresRepository) GetSwipe(ctx context.Context, from, to uuid.UUID) (*Swipe, error) {
	var swipe Swipe
	query := `
		SELECT id, from_id, to_id, direction, created_at
		FROM swipes
		WHERE from_id = $1 AND to_id = $2
	`
	err := r.db.GetContext(ctx, &swipe, query, from, to)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSwipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &swipe, nil
}

func (r *postgresRepository) DeleteSwipe(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM swipes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSwipeNotFound
	}
	return nil
}

func (r *postgresRepository) GetInteractedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT to_id FROM swipes WHERE from_id = $1`
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *postgresRepository) CountLikesSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return r.countSwipesSince(ctx, userID, DirectionLike, since)
}

func (r *postgresRepository) CountPassesSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return r.countSwipesSince(ctx, userID, DirectionPass, since)
}

func (r *postgresRepository) countSwipesSince(ctx context.Context, userID uuid.UUID, direction Direction, since time.Time) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM swipes
		WHERE from_id = $1 AND direction = $2 AND created_at >= $3
	`
	if err := r.db.GetContext(ctx, &count, query, userID, direction, since); err != nil {
		return 0, err
	}
	return count, nil
}

// Match Methods

func (r *postgresRepository) CreateMatch(ctx context.Context, match *Match) error {
	query := `
		INSERT INTO matches (id, user1_id, user2_id, is_active, matched_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		match.ID, match.User1ID, match.User2ID, match.IsActive, match.MatchedAt)
	return err
}

func (r *postgresRepository) GetMatch(ctx context.Context, id uuid.UUID) (*Match, error) {
	var match Match
	query := `
		SELECT id, user1_id, user2_id, is_active, matched_at
		FROM matches
		WHERE id = $1
	`
	err := r.db.GetContext(ctx, &match, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *postgresRepository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (r *postgresRepository) GetActiveMatchesFor(ctx context.Context, userID uuid.UUID) ([]*Match, error) {
	var matches []*Match
	query := `
		SELECT id, user1_id, user2_id, is_active, matched_at
		FROM matches
		WHERE (user1_id = $1 OR user2_id = $1) AND is_active = true
		ORDER BY matched_at DESC
	`
	if err := r.db.SelectContext(ctx, &matches, query, userID); err != nil {
		return nil, err
	}
	return matches, nil
}
