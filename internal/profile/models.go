// internal/profile/models.go

package profile

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPartialPace      = errors.New("pace preferences must be all set or all empty")
	ErrInvalidHeight    = errors.New("min height cannot exceed max height")
	ErrNegativeAgeDiff  = errors.New("max age difference cannot be negative")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidAgeRange  = errors.New("min age cannot exceed max age")
)

// State is the profile lifecycle state. Only active profiles are matchable.
type State string

const (
	StateIncomplete State = "incomplete"
	StateActive     State = "active"
	StatePaused     State = "paused"
	StateBanned     State = "banned"
)

type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "nonbinary"
)

// Lifestyle attributes. The empty string means the user hasn't set the field.

type Smoking string

const (
	SmokingNever     Smoking = "never"
	SmokingSometimes Smoking = "sometimes"
	SmokingRegularly Smoking = "regularly"
)

type Drinking string

const (
	DrinkingNever     Drinking = "never"
	DrinkingSocially  Drinking = "socially"
	DrinkingRegularly Drinking = "regularly"
)

type KidsStance string

const (
	KidsNo      KidsStance = "no"
	KidsOpen    KidsStance = "open"
	KidsSomeday KidsStance = "someday"
	KidsHasKids KidsStance = "has_kids"
)

type LookingFor string

const (
	LookingForCasual    LookingFor = "casual"
	LookingForShortTerm LookingFor = "short_term"
	LookingForLongTerm  LookingFor = "long_term"
	LookingForMarriage  LookingFor = "marriage"
	LookingForUnsure    LookingFor = "unsure"
)

type Education string

const (
	EducationHighSchool  Education = "high_school"
	EducationSomeCollege Education = "some_college"
	EducationBachelors   Education = "bachelors"
	EducationMasters     Education = "masters"
	EducationPhD         Education = "phd"
	EducationTradeSchool Education = "trade_school"
	EducationOther       Education = "other"
)

// DisplayName variants render lifestyle values for user-facing text.

func (s Smoking) DisplayName() string {
	switch s {
	case SmokingNever:
		return "Never"
	case SmokingSometimes:
		return "Sometimes"
	case SmokingRegularly:
		return "Regularly"
	}
	return string(s)
}

func (d Drinking) DisplayName() string {
	switch d {
	case DrinkingNever:
		return "Never"
	case DrinkingSocially:
		return "Socially"
	case DrinkingRegularly:
		return "Regularly"
	}
	return string(d)
}

func (k KidsStance) DisplayName() string {
	switch k {
	case KidsNo:
		return "Don't want"
	case KidsOpen:
		return "Open to it"
	case KidsSomeday:
		return "Want someday"
	case KidsHasKids:
		return "Have kids"
	}
	return string(k)
}

func (l LookingFor) DisplayName() string {
	switch l {
	case LookingForCasual:
		return "Something casual"
	case LookingForShortTerm:
		return "Short-term dating"
	case LookingForLongTerm:
		return "Long-term relationship"
	case LookingForMarriage:
		return "Marriage"
	case LookingForUnsure:
		return "Not sure yet"
	}
	return string(l)
}

func (e Education) DisplayName() string {
	switch e {
	case EducationHighSchool:
		return "High school"
	case EducationSomeCollege:
		return "Some college"
	case EducationBachelors:
		return "Bachelor's degree"
	case EducationMasters:
		return "Master's degree"
	case EducationPhD:
		return "PhD/Doctorate"
	case EducationTradeSchool:
		return "Trade school"
	case EducationOther:
		return "Other"
	}
	return string(e)
}

// Pace preference dimensions. Each is ordinal: the declared order below is the
// scale compatibility scoring measures distance on.

type MessagingFrequency string

const (
	MessagingRarely     MessagingFrequency = "rarely"
	MessagingOften      MessagingFrequency = "often"
	MessagingConstantly MessagingFrequency = "constantly"
)

type TimeToFirstDate string

const (
	FirstDateQuickly TimeToFirstDate = "quickly"
	FirstDateFewDays TimeToFirstDate = "few_days"
	FirstDateWeeks   TimeToFirstDate = "weeks"
	FirstDateMonths  TimeToFirstDate = "months"
)

type CommunicationStyle string

const (
	CommStyleTextOnly   CommunicationStyle = "text_only"
	CommStyleVoiceNotes CommunicationStyle = "voice_notes"
	CommStyleVideoCalls CommunicationStyle = "video_calls"
	CommStyleInPerson   CommunicationStyle = "in_person_only"
	// CommStyleMix is the wildcard: scored as flat moderate compatibility.
	CommStyleMix CommunicationStyle = "mix_of_everything"
)

type ConversationDepth string

const (
	DepthSmallTalk   ConversationDepth = "small_talk"
	DepthDeepChat    ConversationDepth = "deep_chat"
	DepthExistential ConversationDepth = "existential"
	// DepthVibe is the wildcard: scored as flat moderate compatibility.
	DepthVibe ConversationDepth = "depends_on_vibe"
)

func (m MessagingFrequency) Ordinal() int {
	return ordinalOf(string(m), []string{"rarely", "often", "constantly"})
}

func (t TimeToFirstDate) Ordinal() int {
	return ordinalOf(string(t), []string{"quickly", "few_days", "weeks", "months"})
}

func (c CommunicationStyle) Ordinal() int {
	return ordinalOf(string(c), []string{"text_only", "voice_notes", "video_calls", "in_person_only", "mix_of_everything"})
}

func (d ConversationDepth) Ordinal() int {
	return ordinalOf(string(d), []string{"small_talk", "deep_chat", "existential", "depends_on_vibe"})
}

// IsFlexible reports whether the style is the open-to-anything wildcard.
func (c CommunicationStyle) IsFlexible() bool {
	return c == CommStyleMix
}

// IsFlexible reports whether the depth is the open-to-anything wildcard.
func (d ConversationDepth) IsFlexible() bool {
	return d == DepthVibe
}

func ordinalOf(value string, scale []string) int {
	for i, v := range scale {
		if v == value {
			return i
		}
	}
	return -1
}

// PacePreferences bundles the four pace dimensions. A valid bundle has either
// all four dimensions set or none of them; partial configuration is rejected.
type PacePreferences struct {
	MessagingFrequency MessagingFrequency `json:"messaging_frequency,omitempty"`
	TimeToFirstDate    TimeToFirstDate    `json:"time_to_first_date,omitempty"`
	CommunicationStyle CommunicationStyle `json:"communication_style,omitempty"`
	ConversationDepth  ConversationDepth  `json:"conversation_depth,omitempty"`
}

// NewPacePreferences validates the all-or-nothing rule.
func NewPacePreferences(m MessagingFrequency, t TimeToFirstDate, c CommunicationStyle, d ConversationDepth) (PacePreferences, error) {
	p := PacePreferences{MessagingFrequency: m, TimeToFirstDate: t, CommunicationStyle: c, ConversationDepth: d}
	if err := p.Validate(); err != nil {
		return PacePreferences{}, err
	}
	return p, nil
}

func (p PacePreferences) Validate() error {
	anySet := p.MessagingFrequency != "" || p.TimeToFirstDate != "" || p.CommunicationStyle != "" || p.ConversationDepth != ""
	if anySet && !p.IsComplete() {
		return ErrPartialPace
	}
	return nil
}

func (p PacePreferences) IsComplete() bool {
	return p.MessagingFrequency != "" && p.TimeToFirstDate != "" &&
		p.CommunicationStyle != "" && p.ConversationDepth != ""
}

// Scan implements the sql.Scanner interface for PacePreferences
func (p *PacePreferences) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	if bytes, ok := value.([]byte); ok {
		return json.Unmarshal(bytes, p)
	}
	return nil
}

// Value implements the driver.Valuer interface for PacePreferences
func (p PacePreferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Dealbreakers are a seeker's one-way hard filters. Empty acceptable sets mean
// "no constraint" on that dimension.
type Dealbreakers struct {
	AcceptableSmoking    []Smoking    `json:"acceptable_smoking,omitempty"`
	AcceptableDrinking   []Drinking   `json:"acceptable_drinking,omitempty"`
	AcceptableKidsStance []KidsStance `json:"acceptable_kids_stance,omitempty"`
	AcceptableLookingFor []LookingFor `json:"acceptable_looking_for,omitempty"`
	AcceptableEducation  []Education  `json:"acceptable_education,omitempty"`
	MinHeightCm          *int         `json:"min_height_cm,omitempty"`
	MaxHeightCm          *int         `json:"max_height_cm,omitempty"`
	MaxAgeDifference     *int         `json:"max_age_difference,omitempty"`
}

// NewDealbreakers validates bounds before producing a value.
func NewDealbreakers(d Dealbreakers) (Dealbreakers, error) {
	if err := d.Validate(); err != nil {
		return Dealbreakers{}, err
	}
	return d, nil
}

func (d Dealbreakers) Validate() error {
	if d.MinHeightCm != nil && d.MaxHeightCm != nil && *d.MinHeightCm > *d.MaxHeightCm {
		return ErrInvalidHeight
	}
	if d.MaxAgeDifference != nil && *d.MaxAgeDifference < 0 {
		return ErrNegativeAgeDiff
	}
	return nil
}

func (d Dealbreakers) HasSmoking() bool    { return len(d.AcceptableSmoking) > 0 }
func (d Dealbreakers) HasDrinking() bool   { return len(d.AcceptableDrinking) > 0 }
func (d Dealbreakers) HasKidsStance() bool { return len(d.AcceptableKidsStance) > 0 }
func (d Dealbreakers) HasLookingFor() bool { return len(d.AcceptableLookingFor) > 0 }
func (d Dealbreakers) HasEducation() bool  { return len(d.AcceptableEducation) > 0 }
func (d Dealbreakers) HasHeight() bool     { return d.MinHeightCm != nil || d.MaxHeightCm != nil }
func (d Dealbreakers) HasAgeDiff() bool    { return d.MaxAgeDifference != nil }

// HasAny reports whether any dealbreaker dimension is active.
func (d Dealbreakers) HasAny() bool {
	return d.HasSmoking() || d.HasDrinking() || d.HasKidsStance() ||
		d.HasLookingFor() || d.HasEducation() || d.HasHeight() || d.HasAgeDiff()
}

// Scan implements the sql.Scanner interface for Dealbreakers
func (d *Dealbreakers) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	if bytes, ok := value.([]byte); ok {
		return json.Unmarshal(bytes, d)
	}
	return nil
}

// Value implements the driver.Valuer interface for Dealbreakers
func (d Dealbreakers) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Profile is the matchable user profile. It is treated as an immutable value
// by the matching core; mutations go through Updated, which returns a copy
// stamped with the new modification time.
type Profile struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	DisplayName   string          `json:"display_name" db:"display_name"`
	Bio           *string         `json:"bio,omitempty" db:"bio"`
	Gender        Gender          `json:"gender,omitempty" db:"gender"`
	InterestedIn  []Gender        `json:"interested_in" db:"interested_in"`
	BirthDate     *time.Time      `json:"birth_date,omitempty" db:"birth_date"`
	Latitude      *float64        `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64        `json:"longitude,omitempty" db:"longitude"`
	MaxDistanceKm int             `json:"max_distance_km" db:"max_distance_km"`
	MinAge        int             `json:"min_age" db:"min_age"`
	MaxAge        int             `json:"max_age" db:"max_age"`
	Smoking       Smoking         `json:"smoking,omitempty" db:"smoking"`
	Drinking      Drinking        `json:"drinking,omitempty" db:"drinking"`
	KidsStance    KidsStance      `json:"kids_stance,omitempty" db:"kids_stance"`
	LookingFor    LookingFor      `json:"looking_for,omitempty" db:"looking_for"`
	Education     Education       `json:"education,omitempty" db:"education"`
	HeightCm      *int            `json:"height_cm,omitempty" db:"height_cm"`
	Interests     []string        `json:"interests" db:"interests"`
	Dealbreakers  Dealbreakers    `json:"dealbreakers" db:"dealbreakers"`
	Pace          PacePreferences `json:"pace_preferences" db:"pace_preferences"`
	State         State           `json:"state" db:"state"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// AgeAt derives the profile's age at the given instant. Returns 0 when the
// birth date is unset; callers treat 0 as "age undeterminable".
func (p *Profile) AgeAt(now time.Time) int {
	if p.BirthDate == nil {
		return 0
	}
	b := *p.BirthDate
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// HasLocation reports whether both coordinates are set.
func (p *Profile) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// IsActive reports whether the profile is matchable.
func (p *Profile) IsActive() bool {
	return p.State == StateActive
}

// Updated returns a copy stamped with the new modification time.
func (p Profile) Updated(now time.Time) Profile {
	p.UpdatedAt = now
	return p
}

// Validate checks invariants that must hold before a profile is persisted.
func (p *Profile) Validate() error {
	if p.MinAge > p.MaxAge {
		return ErrInvalidAgeRange
	}
	if err := p.Dealbreakers.Validate(); err != nil {
		return fmt.Errorf("dealbreakers: %w", err)
	}
	if err := p.Pace.Validate(); err != nil {
		return fmt.Errorf("pace preferences: %w", err)
	}
	return nil
}
