// internal/matching/daily.go

package matching

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/emberdate/ember-backend/internal/profile"
)

// DailyConfig holds the per-day limit settings. A limit of -1 or its
// unlimited flag disables counting for that direction.
type DailyConfig struct {
	LikeLimit       int
	PassLimit       int
	UnlimitedLikes  bool
	UnlimitedPasses bool
	Timezone        *time.Location
}

// BlockStore resolves block relationships in both directions.
type BlockStore interface {
	GetBlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// PickViewStore persists the single fact the daily pick needs: whether a user
// viewed their pick for a given date.
type PickViewStore interface {
	HasViewed(ctx context.Context, userID uuid.UUID, date string) (bool, error)
	MarkViewed(ctx context.Context, userID uuid.UUID, date string) error
	PurgeOlderThan(ctx context.Context, date string) (int, error)
}

// DailyService enforces daily like/pass limits and computes the daily pick.
// Days run midnight to midnight in the configured timezone.
type DailyService struct {
	profiles profile.Repository
	repo     Repository
	blocks   BlockStore
	views    PickViewStore
	cfg      DailyConfig
	clock    profile.Clock
}

func NewDailyService(profiles profile.Repository, repo Repository, blocks BlockStore, views PickViewStore, cfg DailyConfig, clock profile.Clock) *DailyService {
	if cfg.Timezone == nil {
		cfg.Timezone = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}
	return &DailyService{
		profiles: profiles,
		repo:     repo,
		blocks:   blocks,
		views:    views,
		cfg:      cfg,
		clock:    clock,
	}
}

// CanLike reports whether the user has daily likes remaining.
func (s *DailyService) CanLike(ctx context.Context, userID uuid.UUID) (bool, error) {
	if s.cfg.UnlimitedLikes {
		return true, nil
	}
	used, err := s.repo.CountLikesSince(ctx, userID, s.startOfToday())
	if err != nil {
		return false, fmt.Errorf("counting likes: %w", err)
	}
	return used < s.cfg.LikeLimit, nil
}

// CanPass reports whether the user has daily passes remaining.
func (s *DailyService) CanPass(ctx context.Context, userID uuid.UUID) (bool, error) {
	if s.cfg.UnlimitedPasses {
		return true, nil
	}
	used, err := s.repo.CountPassesSince(ctx, userID, s.startOfToday())
	if err != nil {
		return false, fmt.Errorf("counting passes: %w", err)
	}
	return used < s.cfg.PassLimit, nil
}

// Status returns today's usage for both directions. Remaining is -1 for an
// unlimited direction.
func (s *DailyService) Status(ctx context.Context, userID uuid.UUID) (*DailyStatus, error) {
	start := s.startOfToday()
	likesUsed, err := s.repo.CountLikesSince(ctx, userID, start)
	if err != nil {
		return nil, fmt.Errorf("counting likes: %w", err)
	}
	passesUsed, err := s.repo.CountPassesSince(ctx, userID, start)
	if err != nil {
		return nil, fmt.Errorf("counting passes: %w", err)
	}
	return &DailyStatus{
		LikesUsed:       likesUsed,
		LikesRemaining:  remainingFor(s.cfg.UnlimitedLikes, s.cfg.LikeLimit, likesUsed),
		PassesUsed:      passesUsed,
		PassesRemaining: remainingFor(s.cfg.UnlimitedPasses, s.cfg.PassLimit, passesUsed),
		Date:            s.today(),
		ResetsAt:        s.resetTime(),
	}, nil
}

func remainingFor(unlimited bool, limit, used int) int {
	if unlimited {
		return -1
	}
	if remaining := limit - used; remaining > 0 {
		return remaining
	}
	return 0
}

// DailyPick computes the seeker's pick for today. The generator is seeded
// from (epoch day, seeker ID hash) so the same candidate and reason come back
// on every call for the same day, with nothing persisted but the viewed flag.
// Returns (nil, nil) when no candidate is eligible.
func (s *DailyService) DailyPick(ctx context.Context, seeker *profile.Profile) (*DailyPick, error) {
	pool, err := s.profiles.GetActiveProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading active profiles: %w", err)
	}
	interacted, err := s.repo.GetInteractedIDs(ctx, seeker.ID)
	if err != nil {
		return nil, fmt.Errorf("loading interactions: %w", err)
	}
	blocked, err := s.blocks.GetBlockedIDs(ctx, seeker.ID)
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

	candidates := make([]*profile.Profile, 0, len(pool))
	for _, c := range pool {
		if c.ID == seeker.ID || excluded[c.ID] {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// Storage makes no ordering promise, so the seeded draw needs a canonical
	// order to land on the same candidate every call.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID.String() < candidates[j].ID.String()
	})

	now := s.clock().In(s.cfg.Timezone)
	rng := rand.New(rand.NewSource(pickSeed(seeker.ID, now)))

	picked := candidates[rng.Intn(len(candidates))]
	reason := pickReason(seeker, picked, now, rng)

	date := now.Format("2006-01-02")
	seen, err := s.views.HasViewed(ctx, seeker.ID, date)
	if err != nil {
		return nil, fmt.Errorf("checking pick view: %w", err)
	}

	return &DailyPick{
		ProfileID:   picked.ID,
		DisplayName: picked.DisplayName,
		Date:        date,
		Reason:      reason,
		AlreadySeen: seen,
	}, nil
}

// MarkPickViewed records that the user has seen today's pick.
func (s *DailyService) MarkPickViewed(ctx context.Context, userID uuid.UUID) error {
	date := s.clock().In(s.cfg.Timezone).Format("2006-01-02")
	if err := s.views.MarkViewed(ctx, userID, date); err != nil {
		return fmt.Errorf("marking pick viewed: %w", err)
	}
	return nil
}

// pickSeed combines the local calendar day with a hash of the seeker ID so
// each user gets their own deterministic daily sequence.
func pickSeed(seekerID uuid.UUID, localNow time.Time) int64 {
	y, m, d := localNow.Date()
	epochDay := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400

	h := fnv.New64a()
	h.Write([]byte(seekerID.String()))
	return epochDay + int64(h.Sum64())
}

// pickReason assembles situational reasons plus the generic fallbacks, then
// draws one from the same generator stream that chose the candidate.
func pickReason(seeker, picked *profile.Profile, now time.Time, rng *rand.Rand) string {
	var reasons []string

	if seeker.HasLocation() && picked.HasLocation() {
		distance := profileDistanceKm(seeker, picked)
		if distance < 5 {
			reasons = append(reasons, "Lives nearby!")
		} else if distance < 10 {
			reasons = append(reasons, "Close enough for coffee!")
		}
	}

	seekerAge := seeker.AgeAt(now)
	pickedAge := picked.AgeAt(now)
	if seekerAge > 0 && pickedAge > 0 {
		ageDiff := absInt(seekerAge - pickedAge)
		if ageDiff <= 2 {
			reasons = append(reasons, "Similar age")
		} else if ageDiff <= 5 {
			reasons = append(reasons, "Age-appropriate match")
		}
	}

	if seeker.LookingFor != "" && seeker.LookingFor == picked.LookingFor {
		reasons = append(reasons, "Looking for the same thing")
	}
	if seeker.KidsStance != "" && seeker.KidsStance == picked.KidsStance {
		reasons = append(reasons, "Same stance on kids")
	}
	if seeker.Drinking != "" && seeker.Drinking == picked.Drinking {
		reasons = append(reasons, "Compatible drinking habits")
	}
	if seeker.Smoking != "" && seeker.Smoking == picked.Smoking {
		reasons = append(reasons, "Compatible smoking habits")
	}

	shared := CompareInterests(seeker.Interests, picked.Interests).SharedCount
	if shared >= 3 {
		reasons = append(reasons, "Many shared interests!")
	} else if shared >= 1 {
		reasons = append(reasons, "Some shared interests")
	}

	reasons = append(reasons,
		"Our algorithm thinks you might click!",
		"Something different today!",
		"Expand your horizons!",
		"Why not give them a chance?",
		"Could be a pleasant surprise!",
	)

	return reasons[rng.Intn(len(reasons))]
}

func (s *DailyService) today() string {
	return s.clock().In(s.cfg.Timezone).Format("2006-01-02")
}

// startOfToday is local midnight in the configured timezone.
func (s *DailyService) startOfToday() time.Time {
	y, m, d := s.clock().In(s.cfg.Timezone).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.cfg.Timezone)
}

// resetTime is the next local midnight, when limits reset.
func (s *DailyService) resetTime() time.Time {
	return s.startOfToday().AddDate(0, 0, 1)
}
