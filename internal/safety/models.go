// internal/safety/models.go

package safety

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSelfBlock     = errors.New("cannot block yourself")
	ErrBlockNotFound = errors.New("block not found")
)

// Block is a one-way record; blocking hides both users from each other
// regardless of direction.
type Block struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BlockerID uuid.UUID `json:"blocker_id" db:"blocker_id"`
	BlockedID uuid.UUID `json:"blocked_id" db:"blocked_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewBlock(blocker, blocked uuid.UUID, now time.Time) (*Block, error) {
	if blocker == blocked {
		return nil, ErrSelfBlock
	}
	return &Block{
		ID:        uuid.New(),
		BlockerID: blocker,
		BlockedID: blocked,
		CreatedAt: now,
	}, nil
}
