package matching_test

import (
	"testing"
	"time"

	"github.com/emberdate/ember-backend/internal/matching"
	"github.com/emberdate/ember-backend/internal/profile"
)

func TestQualityWeights_Validate(t *testing.T) {
	if err := matching.DefaultQualityWeights().Validate(); err != nil {
		t.Errorf("default weights should validate: %v", err)
	}

	bad := matching.QualityWeights{Distance: 0.5, Age: 0.5, Interests: 0.5}
	if err := bad.Validate(); err == nil {
		t.Error("weights summing to 1.5 should fail validation")
	}

	negative := matching.DefaultQualityWeights()
	negative.Distance = -0.1
	if err := negative.Validate(); err == nil {
		t.Error("negative weight should fail validation")
	}
}

func TestComputeQuality_PerfectAlignment(t *testing.T) {
	me := activeProfile("me", 30, now)
	them := activeProfile("them", 30, now)
	me.Interests = []string{"hiking", "coffee", "jazz"}
	them.Interests = []string{"hiking", "coffee", "jazz"}
	me.Smoking, them.Smoking = profile.SmokingNever, profile.SmokingNever
	me.Drinking, them.Drinking = profile.DrinkingSocially, profile.DrinkingSocially
	me.KidsStance, them.KidsStance = profile.KidsSomeday, profile.KidsSomeday
	me.LookingFor, them.LookingFor = profile.LookingForLongTerm, profile.LookingForLongTerm
	me.Pace, them.Pace = fullPace(), fullPace()

	match := matching.NewMatch(me.ID, them.ID, now)
	q := matching.ComputeQuality(match, me, them, 30*time.Minute, matching.DefaultQualityWeights(), now)

	if q.CompatibilityScore != 100 {
		t.Errorf("perfect alignment score = %d, want 100", q.CompatibilityScore)
	}
	if q.StarRating() != 5 {
		t.Errorf("star rating = %d, want 5", q.StarRating())
	}
	if q.CompatibilityLabel() != "Excellent Match" {
		t.Errorf("label = %q, want Excellent Match", q.CompatibilityLabel())
	}
	if len(q.SharedInterests) != 3 {
		t.Errorf("shared interests = %d, want 3", len(q.SharedInterests))
	}
	if len(q.Highlights) == 0 {
		t.Error("expected highlights for a strong match")
	}
}

func TestMatchQuality_StarThresholds(t *testing.T) {
	cases := []struct {
		score int
		stars int
		label string
	}{
		{95, 5, "Excellent Match"},
		{90, 5, "Excellent Match"},
		{80, 4, "Great Match"},
		{60, 3, "Good Match"},
		{45, 2, "Fair Match"},
		{10, 1, "Low Compatibility"},
	}
	for _, tc := range cases {
		q := &matching.MatchQuality{CompatibilityScore: tc.score}
		if got := q.StarRating(); got != tc.stars {
			t.Errorf("score %d: stars = %d, want %d", tc.score, got, tc.stars)
		}
		if got := q.CompatibilityLabel(); got != tc.label {
			t.Errorf("score %d: label = %q, want %q", tc.score, got, tc.label)
		}
	}
}

func TestCompareInterests(t *testing.T) {
	m := matching.CompareInterests(
		[]string{"hiking", "coffee", "jazz", "film"},
		[]string{"hiking", "coffee"},
	)
	if m.SharedCount != 2 {
		t.Errorf("shared count = %d, want 2", m.SharedCount)
	}
	if m.OverlapRatio != 1.0 {
		t.Errorf("overlap ratio = %f, want 1.0 (all of the smaller set)", m.OverlapRatio)
	}
	if m.JaccardIndex != 0.5 {
		t.Errorf("jaccard = %f, want 0.5 (2 shared / 4 union)", m.JaccardIndex)
	}

	empty := matching.CompareInterests(nil, []string{"hiking"})
	if empty.SharedCount != 0 || empty.OverlapRatio != 0 || empty.JaccardIndex != 0 {
		t.Error("empty set should yield zero metrics")
	}
}

func TestComputeQuality_KidsStanceCompatibility(t *testing.T) {
	me := activeProfile("me", 30, now)
	them := activeProfile("them", 30, now)
	me.KidsStance = profile.KidsSomeday
	them.KidsStance = profile.KidsHasKids

	match := matching.NewMatch(me.ID, them.ID, now)
	q := matching.ComputeQuality(match, me, them, 0, matching.DefaultQualityWeights(), now)

	if q.LifestyleScore != 1.0 {
		t.Errorf("someday/has_kids lifestyle score = %f, want 1.0", q.LifestyleScore)
	}
	found := false
	for _, m := range q.LifestyleMatches {
		if m == "Compatible on kids" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected kids compatibility in lifestyle matches, got %v", q.LifestyleMatches)
	}
}

func TestComputeQuality_ResponseScoreTiers(t *testing.T) {
	me := activeProfile("me", 30, now)
	them := activeProfile("them", 30, now)
	match := matching.NewMatch(me.ID, them.ID, now)

	cases := []struct {
		gap  time.Duration
		want float64
	}{
		{0, 0.5},
		{30 * time.Minute, 1.0},
		{10 * time.Hour, 0.9},
		{48 * time.Hour, 0.7},
		{100 * time.Hour, 0.5},
		{300 * time.Hour, 0.3},
		{1000 * time.Hour, 0.1},
	}
	for _, tc := range cases {
		q := matching.ComputeQuality(match, me, them, tc.gap, matching.DefaultQualityWeights(), now)
		if q.ResponseScore != tc.want {
			t.Errorf("gap %v: response score = %f, want %f", tc.gap, q.ResponseScore, tc.want)
		}
	}
}

func TestFormatSharedInterests(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"hiking"}, "hiking"},
		{[]string{"hiking", "coffee"}, "hiking and coffee"},
		{[]string{"hiking", "coffee", "jazz"}, "hiking, coffee, and jazz"},
		{[]string{"hiking", "coffee", "jazz", "film", "art"}, "hiking, coffee, jazz, and 2 more"},
	}
	for _, tc := range cases {
		if got := matching.FormatSharedInterests(tc.in); got != tc.want {
			t.Errorf("FormatSharedInterests(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
