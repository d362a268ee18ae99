package matching_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/emberdate/ember-backend/internal/matching"
	"github.com/emberdate/ember-backend/internal/profile"
)

func newDailyService(repo *fakeRepository, profiles *fakeProfileRepo, cfg matching.DailyConfig, at time.Time) *matching.DailyService {
	return matching.NewDailyService(profiles, repo, &fakeBlockStore{}, newFakePickViews(), cfg, fixedClock(at))
}

func recordLikes(t *testing.T, repo *fakeRepository, from *profile.Profile, count int, at time.Time) {
	t.Helper()
	for i := 0; i < count; i++ {
		target := activeProfile("target", 30, at)
		swipe, err := matching.NewSwipe(from.ID, target.ID, matching.DirectionLike, at)
		if err != nil {
			t.Fatalf("NewSwipe: %v", err)
		}
		if err := repo.CreateSwipe(context.Background(), swipe); err != nil {
			t.Fatalf("CreateSwipe: %v", err)
		}
	}
}

func TestCanLike_UnderAndAtLimit(t *testing.T) {
	seeker := activeProfile("seeker", 30, now)
	repo := newFakeRepository()
	cfg := matching.DailyConfig{LikeLimit: 20, PassLimit: 20, Timezone: time.UTC}
	svc := newDailyService(repo, newFakeProfileRepo(seeker), cfg, now)

	recordLikes(t, repo, seeker, 18, now)
	ok, err := svc.CanLike(context.Background(), seeker.ID)
	if err != nil {
		t.Fatalf("CanLike: %v", err)
	}
	if !ok {
		t.Error("18 of 20 likes used, CanLike should be true")
	}

	recordLikes(t, repo, seeker, 2, now)
	ok, err = svc.CanLike(context.Background(), seeker.ID)
	if err != nil {
		t.Fatalf("CanLike: %v", err)
	}
	if ok {
		t.Error("20 of 20 likes used, CanLike should be false")
	}
}

func TestCanLike_Unlimited(t *testing.T) {
	seeker := activeProfile("seeker", 30, now)
	repo := newFakeRepository()
	cfg := matching.DailyConfig{LikeLimit: 1, UnlimitedLikes: true, Timezone: time.UTC}
	svc := newDailyService(repo, newFakeProfileRepo(seeker), cfg, now)

	recordLikes(t, repo, seeker, 50, now)
	ok, err := svc.CanLike(context.Background(), seeker.ID)
	if err != nil {
		t.Fatalf("CanLike: %v", err)
	}
	if !ok {
		t.Error("unlimited likes should always allow")
	}
}

func TestCanLike_YesterdayDoesNotCount(t *testing.T) {
	seeker := activeProfile("seeker", 30, now)
	repo := newFakeRepository()
	cfg := matching.DailyConfig{LikeLimit: 5, Timezone: time.UTC}
	svc := newDailyService(repo, newFakeProfileRepo(seeker), cfg, now)

	recordLikes(t, repo, seeker, 5, now.AddDate(0, 0, -1))
	ok, err := svc.CanLike(context.Background(), seeker.ID)
	if err != nil {
		t.Fatalf("CanLike: %v", err)
	}
	if !ok {
		t.Error("yesterday's likes should not count against today")
	}
}

func TestStatus_RemainingAndReset(t *testing.T) {
	seeker := activeProfile("seeker", 30, now)
	repo := newFakeRepository()
	cfg := matching.DailyConfig{LikeLimit: 20, PassLimit: 10, UnlimitedPasses: true, Timezone: time.UTC}
	svc := newDailyService(repo, newFakeProfileRepo(seeker), cfg, now)

	recordLikes(t, repo, seeker, 3, now)

	status, err := svc.Status(context.Background(), seeker.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.LikesUsed != 3 || status.LikesRemaining != 17 {
		t.Errorf("likes used/remaining = %d/%d, want 3/17", status.LikesUsed, status.LikesRemaining)
	}
	if status.PassesRemaining != -1 {
		t.Errorf("unlimited passes remaining = %d, want -1", status.PassesRemaining)
	}

	wantReset := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !status.ResetsAt.Equal(wantReset) {
		t.Errorf("resets at %v, want next UTC midnight %v", status.ResetsAt, wantReset)
	}
}

func TestDailyPick_DeterministicSameDay(t *testing.T) {
	seeker := activeProfile("seeker", 30, now)
	pool := newFakeProfileRepo(seeker)
	for i := 0; i < 10; i++ {
		pool.add(activeProfile("candidate", 30, now))
	}
	repo := newFakeRepository()
	cfg := matching.DailyConfig{LikeLimit: 20, PassLimit: 20, Timezone: time.UTC}
	svc := newDailyService(repo, pool, cfg, now)

	first, err := svc.DailyPick(context.Background(), seeker)
	if err != nil {
		t.Fatalf("DailyPick: %v", err)
	}
	if first == nil {
		t.Fatal("expected a pick")
	}

	second, err := svc.DailyPick(context.Background(), seeker)
	if err != nil {
		t.Fatalf("DailyPick: %v", err)
	}
	if second.ProfileID != first.ProfileID {
		t.Error("same-day picks differ")
	}
	if second.Reason != first.Reason {
		t.Errorf("same-day reasons differ: %q vs %q", first.Reason, second.Reason)
	}
}

func TestDailyPick_IndependentOfStorageOrder(t *testing.T) {
	seeker := activeProfile("seeker", 30, now)
	candidates := make([]*profile.Profile, 8)
	for i := range candidates {
		candidates[i] = activeProfile("candidate", 30, now)
	}

	forward := newFakeProfileRepo(seeker)
	for _, c := range candidates {
		forward.add(c)
	}
	reversed := newFakeProfileRepo(seeker)
	for i := len(candidates) - 1; i >= 0; i-- {
		reversed.add(candidates[i])
	}

	cfg := matching.DailyConfig{LikeLimit: 20, PassLimit: 20, Timezone: time.UTC}
	first, err := newDailyService(newFakeRepository(), forward, cfg, now).DailyPick(context.Background(), seeker)
	if err != nil {
		t.Fatalf("DailyPick: %v", err)
	}
	second, err := newDailyService(newFakeRepository(), reversed, cfg, now).DailyPick(context.Background(), seeker)
	if err != nil {
		t.Fatalf("DailyPick: %v", err)
	}

	if first.ProfileID != second.ProfileID {
		t.Errorf("pick depends on storage order: %v vs %v", first.ProfileID, second.ProfileID)
	}
	if first.Reason != second.Reason {
		t.Errorf("reason depends on storage order: %q vs %q", first.Reason, second.Reason)
	}
}

func TestDailyPick_ExcludesSelfBlockedAndInteracted(t *testing.T) {
	seeker := activeProfile("seeker", 30, now)
	blocked := activeProfile("blocked", 30, now)
	liked := activeProfile("liked", 30, now)
	pool := newFakeProfileRepo(seeker, blocked, liked)

	repo := newFakeRepository()
	swipe, _ := matching.NewSwipe(seeker.ID, liked.ID, matching.DirectionLike, now)
	repo.CreateSwipe(context.Background(), swipe)

	cfg := matching.DailyConfig{LikeLimit: 20, PassLimit: 20, Timezone: time.UTC}
	svc := matching.NewDailyService(pool, repo, &fakeBlockStore{blocked: []uuid.UUID{blocked.ID}}, newFakePickViews(), cfg, fixedClock(now))

	pick, err := svc.DailyPick(context.Background(), seeker)
	if err != nil {
		t.Fatalf("DailyPick: %v", err)
	}
	if pick != nil {
		t.Errorf("pool holds only self, blocked, and interacted; want no pick, got %v", pick.ProfileID)
	}
}

func TestDailyPick_ViewedFlag(t *testing.T) {
	seeker := activeProfile("seeker", 30, now)
	other := activeProfile("other", 30, now)
	pool := newFakeProfileRepo(seeker, other)
	repo := newFakeRepository()
	cfg := matching.DailyConfig{LikeLimit: 20, PassLimit: 20, Timezone: time.UTC}
	svc := newDailyService(repo, pool, cfg, now)

	pick, err := svc.DailyPick(context.Background(), seeker)
	if err != nil {
		t.Fatalf("DailyPick: %v", err)
	}
	if pick.AlreadySeen {
		t.Error("pick should not be marked seen before viewing")
	}

	if err := svc.MarkPickViewed(context.Background(), seeker.ID); err != nil {
		t.Fatalf("MarkPickViewed: %v", err)
	}
	pick, err = svc.DailyPick(context.Background(), seeker)
	if err != nil {
		t.Fatalf("DailyPick: %v", err)
	}
	if !pick.AlreadySeen {
		t.Error("pick should be marked seen after viewing")
	}
}
