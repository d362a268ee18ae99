// internal/matching/dealbreakers.go

package matching

import (
	"fmt"
	"time"

	"github.com/emberdate/ember-backend/internal/profile"
)

// PassesDealbreakers checks the candidate against the seeker's dealbreakers.
// A set dealbreaker fails when the candidate's data is missing, except height:
// a candidate without a listed height passes height bounds.
func PassesDealbreakers(seeker, candidate *profile.Profile, now time.Time) bool {
	db := seeker.Dealbreakers

	if db.HasSmoking() && !containsSmoking(db.AcceptableSmoking, candidate.Smoking) {
		return false
	}
	if db.HasDrinking() && !containsDrinking(db.AcceptableDrinking, candidate.Drinking) {
		return false
	}
	if db.HasKidsStance() && !containsKidsStance(db.AcceptableKidsStance, candidate.KidsStance) {
		return false
	}
	if db.HasLookingFor() && !containsLookingFor(db.AcceptableLookingFor, candidate.LookingFor) {
		return false
	}
	if db.HasEducation() && !containsEducation(db.AcceptableEducation, candidate.Education) {
		return false
	}
	if db.HasHeight() && candidate.HeightCm != nil {
		h := *candidate.HeightCm
		if db.MinHeightCm != nil && h < *db.MinHeightCm {
			return false
		}
		if db.MaxHeightCm != nil && h > *db.MaxHeightCm {
			return false
		}
	}
	if db.HasAgeDiff() {
		seekerAge := seeker.AgeAt(now)
		candidateAge := candidate.AgeAt(now)
		if seekerAge > 0 && candidateAge > 0 {
			diff := seekerAge - candidateAge
			if diff < 0 {
				diff = -diff
			}
			if diff > *db.MaxAgeDifference {
				return false
			}
		}
	}
	return true
}

// FailedDealbreakers lists a display-ready reason for every dealbreaker the
// candidate fails. Empty when the candidate passes.
func FailedDealbreakers(seeker, candidate *profile.Profile, now time.Time) []string {
	db := seeker.Dealbreakers
	var failed []string

	if db.HasSmoking() && !containsSmoking(db.AcceptableSmoking, candidate.Smoking) {
		if candidate.Smoking == "" {
			failed = append(failed, "Smoking status not specified")
		} else {
			failed = append(failed, "Smoking: "+candidate.Smoking.DisplayName())
		}
	}
	if db.HasDrinking() && !containsDrinking(db.AcceptableDrinking, candidate.Drinking) {
		if candidate.Drinking == "" {
			failed = append(failed, "Drinking status not specified")
		} else {
			failed = append(failed, "Drinking: "+candidate.Drinking.DisplayName())
		}
	}
	if db.HasKidsStance() && !containsKidsStance(db.AcceptableKidsStance, candidate.KidsStance) {
		if candidate.KidsStance == "" {
			failed = append(failed, "Kids stance not specified")
		} else {
			failed = append(failed, "Kids: "+candidate.KidsStance.DisplayName())
		}
	}
	if db.HasLookingFor() && !containsLookingFor(db.AcceptableLookingFor, candidate.LookingFor) {
		if candidate.LookingFor == "" {
			failed = append(failed, "Relationship goal not specified")
		} else {
			failed = append(failed, "Looking for: "+candidate.LookingFor.DisplayName())
		}
	}
	if db.HasEducation() && !containsEducation(db.AcceptableEducation, candidate.Education) {
		if candidate.Education == "" {
			failed = append(failed, "Education not specified")
		} else {
			failed = append(failed, "Education: "+candidate.Education.DisplayName())
		}
	}
	if db.HasHeight() && candidate.HeightCm != nil {
		h := *candidate.HeightCm
		if db.MinHeightCm != nil && h < *db.MinHeightCm {
			failed = append(failed, fmt.Sprintf("Height too short: %d cm", h))
		}
		if db.MaxHeightCm != nil && h > *db.MaxHeightCm {
			failed = append(failed, fmt.Sprintf("Height too tall: %d cm", h))
		}
	}
	if db.HasAgeDiff() {
		seekerAge := seeker.AgeAt(now)
		candidateAge := candidate.AgeAt(now)
		if seekerAge > 0 && candidateAge > 0 {
			diff := seekerAge - candidateAge
			if diff < 0 {
				diff = -diff
			}
			if diff > *db.MaxAgeDifference {
				failed = append(failed, fmt.Sprintf("Age difference: %d years (max: %d)", diff, *db.MaxAgeDifference))
			}
		}
	}
	return failed
}

func containsSmoking(acceptable []profile.Smoking, v profile.Smoking) bool {
	if v == "" {
		return false
	}
	for _, a := range acceptable {
		if a == v {
			return true
		}
	}
	return false
}

func containsDrinking(acceptable []profile.Drinking, v profile.Drinking) bool {
	if v == "" {
		return false
	}
	for _, a := range acceptable {
		if a == v {
			return true
		}
	}
	return false
}

func containsKidsStance(acceptable []profile.KidsStance, v profile.KidsStance) bool {
	if v == "" {
		return false
	}
	for _, a := range acceptable {
		if a == v {
			return true
		}
	}
	return false
}

func containsLookingFor(acceptable []profile.LookingFor, v profile.LookingFor) bool {
	if v == "" {
		return false
	}
	for _, a := range acceptable {
		if a == v {
			return true
		}
	}
	return false
}

func containsEducation(acceptable []profile.Education, v profile.Education) bool {
	if v == "" {
		return false
	}
	for _, a := range acceptable {
		if a == v {
			return true
		}
	}
	return false
}
