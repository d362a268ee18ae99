// internal/matching/candidates.go

package matching

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/emberdate/ember-backend/internal/profile"
)

// FindCandidates filters the candidate pool down to profiles the seeker could
// be shown, sorted by ascending distance. excluded holds IDs the seeker has
// already interacted with or blocked. Filtering fails closed: a pair whose
// gender or age preferences cannot be evaluated is not shown.
func FindCandidates(seeker *profile.Profile, pool []*profile.Profile, excluded map[uuid.UUID]bool, now time.Time) []*profile.Profile {
	candidates := make([]*profile.Profile, 0, len(pool))
	for _, c := range pool {
		if c.ID == seeker.ID {
			continue
		}
		if !c.IsActive() {
			continue
		}
		if excluded[c.ID] {
			continue
		}
		if !mutualGenderMatch(seeker, c) {
			continue
		}
		if !mutualAgeMatch(seeker, c, now) {
			continue
		}
		if !withinSeekerDistance(seeker, c) {
			continue
		}
		if !PassesDealbreakers(seeker, c, now) {
			continue
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return profileDistanceKm(seeker, candidates[i]) < profileDistanceKm(seeker, candidates[j])
	})
	return candidates
}

// mutualGenderMatch requires each side to be interested in the other's
// gender. An unset gender or empty preference list fails.
func mutualGenderMatch(a, b *profile.Profile) bool {
	return interestedIn(a, b.Gender) && interestedIn(b, a.Gender)
}

func interestedIn(p *profile.Profile, g profile.Gender) bool {
	if g == "" || len(p.InterestedIn) == 0 {
		return false
	}
	for _, want := range p.InterestedIn {
		if want == g {
			return true
		}
	}
	return false
}

// mutualAgeMatch requires each side's age to land inside the other's range.
// An undeterminable age (no birth date) fails.
func mutualAgeMatch(a, b *profile.Profile, now time.Time) bool {
	return ageInRange(a, b.AgeAt(now)) && ageInRange(b, a.AgeAt(now))
}

func ageInRange(p *profile.Profile, age int) bool {
	if age <= 0 {
		return false
	}
	return age >= p.MinAge && age <= p.MaxAge
}

// withinSeekerDistance applies only the seeker's distance limit. The check is
// skipped when either side has no location.
func withinSeekerDistance(seeker, candidate *profile.Profile) bool {
	if !seeker.HasLocation() || !candidate.HasLocation() {
		return true
	}
	return profileDistanceKm(seeker, candidate) <= float64(seeker.MaxDistanceKm)
}
