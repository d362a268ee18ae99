// internal/matching/dto.go

package matching

import "github.com/google/uuid"

type SwipeRequest struct {
	TargetID  uuid.UUID `json:"target_id" validate:"required"`
	Direction Direction `json:"direction" validate:"required,oneof=like pass"`
}

type SwipeResponse struct {
	Swipe   *Swipe `json:"swipe"`
	Matched bool   `json:"matched"`
	Match   *Match `json:"match,omitempty"`
}

type CanUndoResponse struct {
	CanUndo          bool  `json:"can_undo"`
	SecondsRemaining int64 `json:"seconds_remaining"`
}

type DailyPickResponse struct {
	Available bool       `json:"available"`
	Pick      *DailyPick `json:"pick,omitempty"`
}

type MatchQualityResponse struct {
	Quality    *MatchQuality `json:"quality"`
	StarRating int           `json:"star_rating"`
	Label      string        `json:"label"`
}
