// internal/matching/pace.go

package matching

import "github.com/emberdate/ember-backend/internal/profile"

const (
	// PaceIncomplete is returned when either side has not answered all
	// four pace questions.
	PaceIncomplete = -1

	paceScoreExact    = 25
	paceScoreAdjacent = 15
	paceScoreFar      = 5
	paceScoreFlexible = 20

	lowPaceThreshold = 50
)

// LowPaceMessage is the advisory shown alongside low compatibility scores.
const LowPaceMessage = "Your pacing styles differ significantly. Worth discussing early!"

// PaceCompatibility scores how well two pace preference sets align, 0-100.
// Each of the four dimensions contributes up to 25 points by ordinal distance;
// a flexible answer on either side scores a flat 20 for that dimension.
// Returns PaceIncomplete when either side is missing answers.
func PaceCompatibility(a, b profile.PacePreferences) int {
	if !a.IsComplete() || !b.IsComplete() {
		return PaceIncomplete
	}
	total := 0
	total += dimensionScore(a.MessagingFrequency.Ordinal(), b.MessagingFrequency.Ordinal(), false)
	total += dimensionScore(a.TimeToFirstDate.Ordinal(), b.TimeToFirstDate.Ordinal(), false)
	total += dimensionScore(a.CommunicationStyle.Ordinal(), b.CommunicationStyle.Ordinal(),
		a.CommunicationStyle.IsFlexible() || b.CommunicationStyle.IsFlexible())
	total += dimensionScore(a.ConversationDepth.Ordinal(), b.ConversationDepth.Ordinal(),
		a.ConversationDepth.IsFlexible() || b.ConversationDepth.IsFlexible())
	return total
}

func dimensionScore(a, b int, flexible bool) int {
	if flexible {
		return paceScoreFlexible
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return paceScoreExact
	case 1:
		return paceScoreAdjacent
	default:
		return paceScoreFar
	}
}

// PaceScore normalizes a raw compatibility score to [0,1]. An incomplete
// score maps to the neutral 0.5 so it neither boosts nor drags aggregate
// match quality.
func PaceScore(raw int) float64 {
	if raw == PaceIncomplete {
		return 0.5
	}
	return float64(raw) / 100.0
}

// IsLowPaceCompatibility reports whether the score warrants the pacing
// advisory. Incomplete scores are never flagged.
func IsLowPaceCompatibility(raw int) bool {
	return raw != PaceIncomplete && raw < lowPaceThreshold
}

// PaceAdvisory returns the advisory message for a score, or "" when none
// applies.
func PaceAdvisory(raw int) string {
	if IsLowPaceCompatibility(raw) {
		return LowPaceMessage
	}
	return ""
}
