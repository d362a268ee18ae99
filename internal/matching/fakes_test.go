package matching_test

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emberdate/ember-backend/internal/matching"
	"github.com/emberdate/ember-backend/internal/profile"
)

// fakeRepository is an in-memory matching.Repository.
type fakeRepository struct {
	swipes  map[uuid.UUID]*matching.Swipe
	matches map[uuid.UUID]*matching.Match

	failDeleteSwipe bool
	failDeleteMatch bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		swipes:  make(map[uuid.UUID]*matching.Swipe),
		matches: make(map[uuid.UUID]*matching.Match),
	}
}

func (r *fakeRepository) CreateSwipe(ctx context.Context, swipe *matching.Swipe) error {
	r.swipes[swipe.ID] = swipe
	return nil
}

func (r *fakeRepository) GetSwipe(ctx context.Context, from, to uuid.UUID) (*matching.Swipe, error) {
	for _, s := range r.swipes {
		if s.FromID == from && s.ToID == to {
			return s, nil
		}
	}
	return nil, matching.ErrSwipeNotFound
}

func (r *fakeRepository) DeleteSwipe(ctx context.Context, id uuid.UUID) error {
	if r.failDeleteSwipe {
		return fmt.Errorf("storage unavailable")
	}
	if _, ok := r.swipes[id]; !ok {
		return matching.ErrSwipeNotFound
	}
	delete(r.swipes, id)
	return nil
}

func (r *fakeRepository) GetInteractedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, s := range r.swipes {
		if s.FromID == userID {
			ids = append(ids, s.ToID)
		}
	}
	return ids, nil
}

func (r *fakeRepository) CountLikesSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return r.countSince(userID, matching.DirectionLike, since), nil
}

func (r *fakeRepository) CountPassesSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return r.countSince(userID, matching.DirectionPass, since), nil
}

func (r *fakeRepository) countSince(userID uuid.UUID, direction matching.Direction, since time.Time) int {
	count := 0
	for _, s := range r.swipes {
		if s.FromID == userID && s.Direction == direction && !s.CreatedAt.Before(since) {
			count++
		}
	}
	return count
}

func (r *fakeRepository) CreateMatch(ctx context.Context, match *matching.Match) error {
	r.matches[match.ID] = match
	return nil
}

func (r *fakeRepository) GetMatch(ctx context.Context, id uuid.UUID) (*matching.Match, error) {
	if m, ok := r.matches[id]; ok {
		return m, nil
	}
	return nil, matching.ErrMatchNotFound
}

func (r *fakeRepository) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	if r.failDeleteMatch {
		return fmt.Errorf("storage unavailable")
	}
	if _, ok := r.matches[id]; !ok {
		return matching.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

func (r *fakeRepository) GetActiveMatchesFor(ctx context.Context, userID uuid.UUID) ([]*matching.Match, error) {
	var out []*matching.Match
	for _, m := range r.matches {
		if m.IsActive && m.Involves(userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeProfileRepo is an in-memory profile.Repository. Active profiles come
// back in insertion order so tests can control what storage returns.
type fakeProfileRepo struct {
	profiles map[uuid.UUID]*profile.Profile
	order    []uuid.UUID
}

func newFakeProfileRepo(profiles ...*profile.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[uuid.UUID]*profile.Profile)}
	for _, p := range profiles {
		r.add(p)
	}
	return r
}

func (r *fakeProfileRepo) add(p *profile.Profile) {
	if _, ok := r.profiles[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.profiles[p.ID] = p
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	if p, ok := r.profiles[id]; ok {
		return p, nil
	}
	return nil, profile.ErrProfileNotFound
}

func (r *fakeProfileRepo) GetActiveProfiles(ctx context.Context) ([]*profile.Profile, error) {
	var out []*profile.Profile
	for _, id := range r.order {
		if p := r.profiles[id]; p.IsActive() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) UpdateProfile(ctx context.Context, p *profile.Profile) error {
	r.add(p)
	return nil
}

func (r *fakeProfileRepo) SetState(ctx context.Context, id uuid.UUID, state profile.State, now time.Time) error {
	if p, ok := r.profiles[id]; ok {
		p.State = state
	}
	return nil
}

// fakeBlockStore returns a fixed blocked set.
type fakeBlockStore struct {
	blocked []uuid.UUID
}

func (b *fakeBlockStore) GetBlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return b.blocked, nil
}

// fakePickViews is an in-memory matching.PickViewStore.
type fakePickViews struct {
	viewed map[string]bool
}

func newFakePickViews() *fakePickViews {
	return &fakePickViews{viewed: make(map[string]bool)}
}

func (v *fakePickViews) HasViewed(ctx context.Context, userID uuid.UUID, date string) (bool, error) {
	return v.viewed[userID.String()+":"+date], nil
}

func (v *fakePickViews) MarkViewed(ctx context.Context, userID uuid.UUID, date string) error {
	v.viewed[userID.String()+":"+date] = true
	return nil
}

func (v *fakePickViews) PurgeOlderThan(ctx context.Context, date string) (int, error) {
	purged := 0
	for key := range v.viewed {
		if key[len(key)-len(date):] < date {
			delete(v.viewed, key)
			purged++
		}
	}
	return purged, nil
}

// Profile fixture helpers.

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

func birthDate(age int, now time.Time) *time.Time {
	b := now.AddDate(-age, 0, -1)
	return &b
}

func activeProfile(name string, age int, now time.Time) *profile.Profile {
	return &profile.Profile{
		ID:            uuid.New(),
		DisplayName:   name,
		Gender:        profile.GenderFemale,
		InterestedIn:  []profile.Gender{profile.GenderMale, profile.GenderFemale},
		BirthDate:     birthDate(age, now),
		Latitude:      ptrFloat(52.52),
		Longitude:     ptrFloat(13.405),
		MaxDistanceKm: 100,
		MinAge:        18,
		MaxAge:        99,
		State:         profile.StateActive,
	}
}

func fixedClock(t time.Time) profile.Clock {
	return func() time.Time { return t }
}
