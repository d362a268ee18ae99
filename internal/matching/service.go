// internal/matching/service.go

package matching

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/emberdate/ember-backend/internal/profile"
)

type Service interface {
	// Candidates
	GetCandidates(ctx context.Context, seekerID uuid.UUID) ([]*profile.Profile, error)

	// Swipes
	Swipe(ctx context.Context, fromID, toID uuid.UUID, direction Direction) (*SwipeOutcome, error)
	Undo(ctx context.Context, userID uuid.UUID) UndoResult
	CanUndo(ctx context.Context, userID uuid.UUID) (bool, int64)

	// Daily
	GetDailyStatus(ctx context.Context, userID uuid.UUID) (*DailyStatus, error)
	GetDailyPick(ctx context.Context, userID uuid.UUID) (*DailyPick, error)
	MarkDailyPickViewed(ctx context.Context, userID uuid.UUID) error

	// Matches
	GetMatches(ctx context.Context, userID uuid.UUID) ([]*Match, error)
	GetMatchQuality(ctx context.Context, matchID, perspectiveID uuid.UUID) (*MatchQuality, error)
}

// SwipeOutcome reports the result of a swipe: the record itself and the match
// if the like was reciprocal.
type SwipeOutcome struct {
	Swipe *Swipe `json:"swipe"`
	Match *Match `json:"match,omitempty"`
}

type service struct {
	repo     Repository
	profiles profile.Repository
	blocks   BlockStore
	daily    *DailyService
	undo     *UndoService
	hub      *Hub
	weights  QualityWeights
	clock    profile.Clock
}

func NewService(repo Repository, profiles profile.Repository, blocks BlockStore, daily *DailyService, undo *UndoService, hub *Hub, weights QualityWeights, clock profile.Clock) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{
		repo:     repo,
		profiles: profiles,
		blocks:   blocks,
		daily:    daily,
		undo:     undo,
		hub:      hub,
		weights:  weights,
		clock:    clock,
	}
}

func (s *service) GetCandidates(ctx context.Context, seekerID uuid.UUID) ([]*profile.Profile, error) {
	seeker, err := s.profiles.GetByID(ctx, seekerID)
	if err != nil {
		return nil, err
	}
	pool, err := s.profiles.GetActiveProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading active profiles: %w", err)
	}
	interacted, err := s.repo.GetInteractedIDs(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("loading interactions: %w", err)
	}
	blocked, err := s.blocks.GetBlockedIDs(ctx, seekerID)
	if err != nil {
		return nil, fmt.Errorf("loading blocks: %w", err)
	}

	excluded := make(map[uuid.UUID]bool, len(interacted)+len(blocked))
	for _, id := range interacted {
		excluded[id] = true
	}
	for _, id := range blocked {
		excluded[id] = true
	}

	candidates := FindCandidates(seeker, pool, excluded, s.clock())
	RecordCandidatePoolSize(len(candidates))
	return candidates, nil
}

func (s *service) Swipe(ctx context.Context, fromID, toID uuid.UUID, direction Direction) (*SwipeOutcome, error) {
	switch direction {
	case DirectionLike:
		ok, err := s.daily.CanLike(ctx, fromID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrDailyLimitReached
		}
	case DirectionPass:
		ok, err := s.daily.CanPass(ctx, fromID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrDailyLimitReached
		}
	}

	if _, err := s.repo.GetSwipe(ctx, fromID, toID); err == nil {
		return nil, ErrSwipeAlreadyExists
	}

	now := s.clock()
	swipe, err := NewSwipe(fromID, toID, direction, now)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateSwipe(ctx, swipe); err != nil {
		return nil, fmt.Errorf("persisting swipe: %w", err)
	}
	RecordSwipe(direction)

	outcome := &SwipeOutcome{Swipe: swipe}

	var matchID *uuid.UUID
	if direction == DirectionLike {
		if _, err := s.repo.GetSwipe(ctx, toID, fromID); err == nil {
			match := NewMatch(fromID, toID, now)
			if err := s.repo.CreateMatch(ctx, match); err != nil {
				return nil, fmt.Errorf("persisting match: %w", err)
			}
			outcome.Match = match
			matchID = &match.ID
			RecordMatch()
			if s.hub != nil {
				s.hub.NotifyMatch(match)
			}
			log.Printf("Match created between %s and %s", match.User1ID, match.User2ID)
		}
	}

	s.undo.Record(swipe, matchID)
	return outcome, nil
}

func (s *service) Undo(ctx context.Context, userID uuid.UUID) UndoResult {
	result := s.undo.Undo(ctx, userID)
	if result.Success {
		RecordUndo("success")
		if result.MatchDeleted && s.hub != nil && result.UndoneSwipe != nil {
			s.hub.NotifyMatchRemoved(result.UndoneSwipe.FromID, result.UndoneSwipe.ToID)
		}
	} else {
		RecordUndo("failure")
	}
	return result
}

func (s *service) CanUndo(ctx context.Context, userID uuid.UUID) (bool, int64) {
	return s.undo.CanUndo(userID), s.undo.SecondsRemaining(userID)
}

func (s *service) GetDailyStatus(ctx context.Context, userID uuid.UUID) (*DailyStatus, error) {
	return s.daily.Status(ctx, userID)
}

func (s *service) GetDailyPick(ctx context.Context, userID uuid.UUID) (*DailyPick, error) {
	seeker, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	pick, err := s.daily.DailyPick(ctx, seeker)
	if err != nil {
		return nil, err
	}
	if pick != nil {
		RecordDailyPick()
	}
	return pick, nil
}

func (s *service) MarkDailyPickViewed(ctx context.Context, userID uuid.UUID) error {
	return s.daily.MarkPickViewed(ctx, userID)
}

func (s *service) GetMatches(ctx context.Context, userID uuid.UUID) ([]*Match, error) {
	return s.repo.GetActiveMatchesFor(ctx, userID)
}

func (s *service) GetMatchQuality(ctx context.Context, matchID, perspectiveID uuid.UUID) (*MatchQuality, error) {
	match, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.Involves(perspectiveID) {
		return nil, ErrMatchNotFound
	}
	otherID := match.OtherUser(perspectiveID)

	me, err := s.profiles.GetByID(ctx, perspectiveID)
	if err != nil {
		return nil, err
	}
	them, err := s.profiles.GetByID(ctx, otherID)
	if err != nil {
		return nil, err
	}

	quality := ComputeQuality(match, me, them, s.timeBetweenLikes(ctx, perspectiveID, otherID), s.weights, s.clock())
	RecordCompatibilityScore(quality.CompatibilityScore)
	return quality, nil
}

// timeBetweenLikes is the gap between the two reciprocal likes; zero when
// either record is missing.
func (s *service) timeBetweenLikes(ctx context.Context, a, b uuid.UUID) time.Duration {
	mine, err := s.repo.GetSwipe(ctx, a, b)
	if err != nil {
		return 0
	}
	theirs, err := s.repo.GetSwipe(ctx, b, a)
	if err != nil {
		return 0
	}
	gap := mine.CreatedAt.Sub(theirs.CreatedAt)
	if gap < 0 {
		gap = -gap
	}
	return gap
}
