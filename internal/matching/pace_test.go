package matching_test

import (
	"testing"

	"github.com/emberdate/ember-backend/internal/matching"
	"github.com/emberdate/ember-backend/internal/profile"
)

func fullPace() profile.PacePreferences {
	return profile.PacePreferences{
		MessagingFrequency: profile.MessagingOften,
		TimeToFirstDate:    profile.FirstDateFewDays,
		CommunicationStyle: profile.CommStyleTextOnly,
		ConversationDepth:  profile.DepthDeepChat,
	}
}

func TestPaceCompatibility_IdenticalBundles(t *testing.T) {
	if got := matching.PaceCompatibility(fullPace(), fullPace()); got != 100 {
		t.Errorf("identical bundles = %d, want 100", got)
	}
}

func TestPaceCompatibility_OneStepLowerThanIdentical(t *testing.T) {
	b := fullPace()
	b.MessagingFrequency = profile.MessagingConstantly // one ordinal step from "often"

	got := matching.PaceCompatibility(fullPace(), b)
	if got >= 100 {
		t.Errorf("one-step difference = %d, want < 100", got)
	}
	if got != 90 {
		t.Errorf("one-step difference = %d, want 90 (25+25+25+15)", got)
	}
}

func TestPaceCompatibility_MaximalDifference(t *testing.T) {
	a := profile.PacePreferences{
		MessagingFrequency: profile.MessagingRarely,
		TimeToFirstDate:    profile.FirstDateQuickly,
		CommunicationStyle: profile.CommStyleTextOnly,
		ConversationDepth:  profile.DepthSmallTalk,
	}
	b := profile.PacePreferences{
		MessagingFrequency: profile.MessagingConstantly,
		TimeToFirstDate:    profile.FirstDateMonths,
		CommunicationStyle: profile.CommStyleInPerson,
		ConversationDepth:  profile.DepthExistential,
	}

	got := matching.PaceCompatibility(a, b)
	if got != 20 {
		t.Errorf("maximal difference = %d, want 20 (5*4)", got)
	}

	oneStep := fullPace()
	oneStep.MessagingFrequency = profile.MessagingConstantly
	if mid := matching.PaceCompatibility(fullPace(), oneStep); mid <= got {
		t.Errorf("one-step score %d should exceed maximal-difference score %d", mid, got)
	}
}

func TestPaceCompatibility_WildcardFlat20(t *testing.T) {
	a := fullPace()
	a.CommunicationStyle = profile.CommStyleMix

	b := fullPace()
	b.CommunicationStyle = profile.CommStyleTextOnly

	// 25 + 25 + 20 (wildcard) + 25
	if got := matching.PaceCompatibility(a, b); got != 95 {
		t.Errorf("wildcard dimension = %d, want 95", got)
	}
}

func TestPaceCompatibility_IncompleteBundle(t *testing.T) {
	partial := fullPace()
	partial.ConversationDepth = ""

	if got := matching.PaceCompatibility(partial, fullPace()); got != matching.PaceIncomplete {
		t.Errorf("incomplete bundle = %d, want -1", got)
	}
	if got := matching.PaceCompatibility(fullPace(), profile.PacePreferences{}); got != matching.PaceIncomplete {
		t.Errorf("empty bundle = %d, want -1", got)
	}
}

func TestPaceScore_Normalized(t *testing.T) {
	if got := matching.PaceScore(matching.PaceIncomplete); got != 0.5 {
		t.Errorf("PaceScore(-1) = %f, want neutral 0.5", got)
	}
	if got := matching.PaceScore(100); got != 1.0 {
		t.Errorf("PaceScore(100) = %f, want 1.0", got)
	}
	if got := matching.PaceScore(50); got != 0.5 {
		t.Errorf("PaceScore(50) = %f, want 0.5", got)
	}
}

func TestIsLowPaceCompatibility(t *testing.T) {
	if !matching.IsLowPaceCompatibility(49) {
		t.Error("49 should be flagged low")
	}
	if matching.IsLowPaceCompatibility(50) {
		t.Error("50 should not be flagged low")
	}
	if matching.IsLowPaceCompatibility(matching.PaceIncomplete) {
		t.Error("incomplete score should never be flagged low")
	}
}

func TestPaceAdvisory(t *testing.T) {
	if got := matching.PaceAdvisory(20); got != matching.LowPaceMessage {
		t.Errorf("advisory for low score = %q", got)
	}
	if got := matching.PaceAdvisory(80); got != "" {
		t.Errorf("advisory for high score = %q, want empty", got)
	}
}
