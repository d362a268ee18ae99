// internal/matching/models.go

package matching

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSelfSwipe          = errors.New("cannot swipe on yourself")
	ErrSwipeAlreadyExists = errors.New("already swiped on this user")
	ErrDailyLimitReached  = errors.New("daily limit reached")
	ErrSwipeNotFound      = errors.New("swipe not found")
	ErrMatchNotFound      = errors.New("match not found")
)

// Direction of a swipe.
type Direction string

const (
	DirectionLike Direction = "like"
	DirectionPass Direction = "pass"
)

// Swipe is a directional interaction record. Immutable once created; deleted
// only through undo.
type Swipe struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FromID    uuid.UUID `json:"from_id" db:"from_id"`
	ToID      uuid.UUID `json:"to_id" db:"to_id"`
	Direction Direction `json:"direction" db:"direction"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewSwipe validates and creates a swipe record.
func NewSwipe(from, to uuid.UUID, direction Direction, now time.Time) (*Swipe, error) {
	if from == to {
		return nil, ErrSelfSwipe
	}
	return &Swipe{
		ID:        uuid.New(),
		FromID:    from,
		ToID:      to,
		Direction: direction,
		CreatedAt: now,
	}, nil
}

// Match links two profiles after a mutual like. User IDs are stored in sorted
// order so the pair has one canonical row.
type Match struct {
	ID        uuid.UUID `json:"id" db:"id"`
	User1ID   uuid.UUID `json:"user1_id" db:"user1_id"`
	User2ID   uuid.UUID `json:"user2_id" db:"user2_id"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	MatchedAt time.Time `json:"matched_at" db:"matched_at"`
}

// NewMatch creates a match with the canonical user ordering.
func NewMatch(a, b uuid.UUID, now time.Time) *Match {
	if b.String() < a.String() {
		a, b = b, a
	}
	return &Match{
		ID:        uuid.New(),
		User1ID:   a,
		User2ID:   b,
		IsActive:  true,
		MatchedAt: now,
	}
}

// OtherUser returns the match partner of the given user.
func (m *Match) OtherUser(userID uuid.UUID) uuid.UUID {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

// Involves reports whether the user is part of this match.
func (m *Match) Involves(userID uuid.UUID) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// DailyStatus is the per-user snapshot of today's like/pass usage. Remaining
// is -1 when the direction is unlimited.
type DailyStatus struct {
	LikesUsed       int       `json:"likes_used"`
	LikesRemaining  int       `json:"likes_remaining"`
	PassesUsed      int       `json:"passes_used"`
	PassesRemaining int       `json:"passes_remaining"`
	Date            string    `json:"date"`
	ResetsAt        time.Time `json:"resets_at"`
}

// DailyPick is the computed pick for one seeker and one calendar day. It is
// never persisted; only the viewed flag comes from storage.
type DailyPick struct {
	ProfileID   uuid.UUID `json:"profile_id"`
	DisplayName string    `json:"display_name"`
	Date        string    `json:"date"`
	Reason      string    `json:"reason"`
	AlreadySeen bool      `json:"already_seen"`
}

// UndoResult reports the outcome of an undo attempt. Failures carry a message
// instead of an error so callers can surface them directly.
type UndoResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	UndoneSwipe  *Swipe `json:"undone_swipe,omitempty"`
	MatchDeleted bool   `json:"match_deleted"`
}

func undoSuccess(swipe *Swipe, matchDeleted bool) UndoResult {
	return UndoResult{Success: true, UndoneSwipe: swipe, MatchDeleted: matchDeleted}
}

func undoFailure(message string) UndoResult {
	return UndoResult{Success: false, Message: message}
}
