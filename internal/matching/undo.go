// internal/matching/undo.go

package matching

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/emberdate/ember-backend/internal/profile"
)

const (
	undoNoSwipeMessage       = "No swipe to undo"
	undoWindowExpiredMessage = "Undo window expired"
)

// pendingUndo is the single reversible action a user may hold.
type pendingUndo struct {
	swipe     *Swipe
	matchID   *uuid.UUID
	expiresAt time.Time
}

// UndoService keeps at most one pending undo per user, bounded by the
// configured window. Entries live in process memory; expiry is checked lazily
// on every access.
type UndoService struct {
	mu      sync.Mutex
	pending map[uuid.UUID]*pendingUndo

	repo   Repository
	window time.Duration
	clock  profile.Clock
}

func NewUndoService(repo Repository, window time.Duration, clock profile.Clock) *UndoService {
	if clock == nil {
		clock = time.Now
	}
	return &UndoService{
		pending: make(map[uuid.UUID]*pendingUndo),
		repo:    repo,
		window:  window,
		clock:   clock,
	}
}

// Record registers a swipe as undoable, replacing any prior entry for the
// user. matchID is set when the swipe created a match.
func (s *UndoService) Record(swipe *Swipe, matchID *uuid.UUID) {
	entry := &pendingUndo{
		swipe:     swipe,
		matchID:   matchID,
		expiresAt: s.clock().Add(s.window),
	}
	s.mu.Lock()
	s.pending[swipe.FromID] = entry
	s.mu.Unlock()
}

// CanUndo reports whether the user holds an unexpired pending undo. Expired
// entries are evicted on the way.
func (s *UndoService) CanUndo(userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liveEntryLocked(userID) != nil
}

// SecondsRemaining returns the whole seconds left in the undo window, or 0
// when nothing is pending.
func (s *UndoService) SecondsRemaining(userID uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.liveEntryLocked(userID)
	if entry == nil {
		return 0
	}
	remaining := entry.expiresAt.Sub(s.clock())
	if remaining < 0 {
		return 0
	}
	return int64(remaining.Seconds())
}

// Undo reverses the user's most recent swipe. The pending entry is taken
// atomically so concurrent undo calls for the same user execute the deletion
// at most once. On a storage failure the entry is restored so the caller can
// retry.
func (s *UndoService) Undo(ctx context.Context, userID uuid.UUID) UndoResult {
	s.mu.Lock()
	entry, ok := s.pending[userID]
	if !ok {
		s.mu.Unlock()
		return undoFailure(undoNoSwipeMessage)
	}
	if !s.clock().Before(entry.expiresAt) {
		delete(s.pending, userID)
		s.mu.Unlock()
		return undoFailure(undoWindowExpiredMessage)
	}
	delete(s.pending, userID)
	s.mu.Unlock()

	if err := s.repo.DeleteSwipe(ctx, entry.swipe.ID); err != nil {
		s.restore(userID, entry)
		return undoFailure(err.Error())
	}
	matchDeleted := false
	if entry.matchID != nil {
		if err := s.repo.DeleteMatch(ctx, *entry.matchID); err != nil {
			s.restore(userID, entry)
			return undoFailure(err.Error())
		}
		matchDeleted = true
	}
	return undoSuccess(entry.swipe, matchDeleted)
}

// restore puts a taken entry back after a storage failure, unless a newer
// swipe claimed the slot in the meantime.
func (s *UndoService) restore(userID uuid.UUID, entry *pendingUndo) {
	s.mu.Lock()
	if _, ok := s.pending[userID]; !ok {
		s.pending[userID] = entry
	}
	s.mu.Unlock()
}

// liveEntryLocked returns the user's entry if unexpired, evicting it
// otherwise. Callers must hold mu.
func (s *UndoService) liveEntryLocked(userID uuid.UUID) *pendingUndo {
	entry, ok := s.pending[userID]
	if !ok {
		return nil
	}
	if !s.clock().Before(entry.expiresAt) {
		delete(s.pending, userID)
		return nil
	}
	return entry
}
