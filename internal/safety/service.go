// internal/safety/service.go

package safety

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/emberdate/ember-backend/internal/profile"
)

type Service interface {
	BlockUser(ctx context.Context, blockerID, blockedID uuid.UUID) (*Block, error)
	UnblockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error
	IsBlocked(ctx context.Context, a, b uuid.UUID) (bool, error)
	GetBlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	GetBlocks(ctx context.Context, blockerID uuid.UUID) ([]*Block, error)
}

type service struct {
	repo  Repository
	clock profile.Clock
}

func NewService(repo Repository, clock profile.Clock) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{repo: repo, clock: clock}
}

func (s *service) BlockUser(ctx context.Context, blockerID, blockedID uuid.UUID) (*Block, error) {
	block, err := NewBlock(blockerID, blockedID, s.clock())
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateBlock(ctx, block); err != nil {
		return nil, err
	}
	return block, nil
}

func (s *service) UnblockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	return s.repo.DeleteBlock(ctx, blockerID, blockedID)
}

func (s *service) IsBlocked(ctx context.Context, a, b uuid.UUID) (bool, error) {
	return s.repo.IsBlocked(ctx, a, b)
}

func (s *service) GetBlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.repo.GetBlockedIDs(ctx, userID)
}

func (s *service) GetBlocks(ctx context.Context, blockerID uuid.UUID) ([]*Block, error) {
	return s.repo.GetBlocksBy(ctx, blockerID)
}
