package profile_test

import (
	"errors"
	"testing"
	"time"

	"github.com/emberdate/ember-backend/internal/profile"
)

func intPtr(v int) *int { return &v }

func TestNewPacePreferences_AllOrNothing(t *testing.T) {
	if _, err := profile.NewPacePreferences(
		profile.MessagingOften, profile.FirstDateFewDays,
		profile.CommStyleTextOnly, profile.DepthDeepChat,
	); err != nil {
		t.Errorf("fully set preferences should validate: %v", err)
	}

	if _, err := profile.NewPacePreferences("", "", "", ""); err != nil {
		t.Errorf("fully empty preferences should validate: %v", err)
	}

	_, err := profile.NewPacePreferences(profile.MessagingOften, "", "", "")
	if !errors.Is(err, profile.ErrPartialPace) {
		t.Errorf("partial preferences error = %v, want ErrPartialPace", err)
	}
}

func TestPacePreferences_IsComplete(t *testing.T) {
	complete := profile.PacePreferences{
		MessagingFrequency: profile.MessagingRarely,
		TimeToFirstDate:    profile.FirstDateWeeks,
		CommunicationStyle: profile.CommStyleMix,
		ConversationDepth:  profile.DepthVibe,
	}
	if !complete.IsComplete() {
		t.Error("all four dimensions set, IsComplete should be true")
	}
	if (profile.PacePreferences{}).IsComplete() {
		t.Error("empty preferences should not be complete")
	}
}

func TestDealbreakers_Validate(t *testing.T) {
	valid := profile.Dealbreakers{MinHeightCm: intPtr(160), MaxHeightCm: intPtr(190)}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid height bounds rejected: %v", err)
	}

	inverted := profile.Dealbreakers{MinHeightCm: intPtr(190), MaxHeightCm: intPtr(160)}
	if err := inverted.Validate(); !errors.Is(err, profile.ErrInvalidHeight) {
		t.Errorf("inverted height bounds error = %v, want ErrInvalidHeight", err)
	}

	negative := profile.Dealbreakers{MaxAgeDifference: intPtr(-1)}
	if err := negative.Validate(); !errors.Is(err, profile.ErrNegativeAgeDiff) {
		t.Errorf("negative age difference error = %v, want ErrNegativeAgeDiff", err)
	}
}

func TestDealbreakers_HasAny(t *testing.T) {
	if (profile.Dealbreakers{}).HasAny() {
		t.Error("empty dealbreakers should report none active")
	}
	withSmoking := profile.Dealbreakers{AcceptableSmoking: []profile.Smoking{profile.SmokingNever}}
	if !withSmoking.HasAny() {
		t.Error("smoking constraint should count as active")
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	noBirth := &profile.Profile{}
	if age := noBirth.AgeAt(now); age != 0 {
		t.Errorf("age without birth date = %d, want 0", age)
	}

	beforeBirthday := time.Date(1996, 9, 15, 0, 0, 0, 0, time.UTC)
	p := &profile.Profile{BirthDate: &beforeBirthday}
	if age := p.AgeAt(now); age != 29 {
		t.Errorf("age before this year's birthday = %d, want 29", age)
	}

	afterBirthday := time.Date(1996, 8, 31, 0, 0, 0, 0, time.UTC)
	p = &profile.Profile{BirthDate: &afterBirthday}
	if age := p.AgeAt(now); age != 30 {
		t.Errorf("age on the birthday = %d, want 30", age)
	}
}

func TestProfile_Validate(t *testing.T) {
	p := &profile.Profile{MinAge: 30, MaxAge: 25}
	if err := p.Validate(); !errors.Is(err, profile.ErrInvalidAgeRange) {
		t.Errorf("inverted age range error = %v, want ErrInvalidAgeRange", err)
	}

	p = &profile.Profile{
		MinAge: 25,
		MaxAge: 35,
		Pace:   profile.PacePreferences{MessagingFrequency: profile.MessagingOften},
	}
	if err := p.Validate(); !errors.Is(err, profile.ErrPartialPace) {
		t.Errorf("partial pace error = %v, want ErrPartialPace", err)
	}
}

func TestProfile_Updated(t *testing.T) {
	original := profile.Profile{DisplayName: "Ada", UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	stamp := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	updated := original.Updated(stamp)
	if !updated.UpdatedAt.Equal(stamp) {
		t.Errorf("updated at = %v, want %v", updated.UpdatedAt, stamp)
	}
	if original.UpdatedAt.Equal(stamp) {
		t.Error("Updated should not mutate the receiver")
	}
}

func TestProfile_StateHelpers(t *testing.T) {
	active := &profile.Profile{State: profile.StateActive}
	if !active.IsActive() {
		t.Error("active state should be matchable")
	}
	for _, state := range []profile.State{profile.StateIncomplete, profile.StatePaused, profile.StateBanned} {
		p := &profile.Profile{State: state}
		if p.IsActive() {
			t.Errorf("state %q should not be matchable", state)
		}
	}
}
