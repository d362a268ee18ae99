// internal/profile/dto.go

package profile

import "time"

// UpdateProfileRequest carries a partial profile update. Nil fields are left
// untouched; the zero value of a set field overwrites.
type UpdateProfileRequest struct {
	DisplayName   *string    `json:"display_name,omitempty" validate:"omitempty,min=1,max=100"`
	Bio           *string    `json:"bio,omitempty" validate:"omitempty,max=500"`
	Gender        *string    `json:"gender,omitempty" validate:"omitempty,oneof=male female nonbinary"`
	InterestedIn  []string   `json:"interested_in,omitempty" validate:"omitempty,dive,oneof=male female nonbinary"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64   `json:"longitude,omitempty" validate:"omitempty,longitude"`
	MaxDistanceKm *int       `json:"max_distance_km,omitempty" validate:"omitempty,min=1,max=50000"`
	MinAge        *int       `json:"min_age,omitempty" validate:"omitempty,min=18,max=120"`
	MaxAge        *int       `json:"max_age,omitempty" validate:"omitempty,min=18,max=120"`
	Smoking       *string    `json:"smoking,omitempty" validate:"omitempty,oneof=never sometimes regularly"`
	Drinking      *string    `json:"drinking,omitempty" validate:"omitempty,oneof=never socially regularly"`
	KidsStance    *string    `json:"kids_stance,omitempty" validate:"omitempty,oneof=no open someday has_kids"`
	LookingFor    *string    `json:"looking_for,omitempty" validate:"omitempty,oneof=casual short_term long_term marriage unsure"`
	Education     *string    `json:"education,omitempty" validate:"omitempty,oneof=high_school some_college bachelors masters phd trade_school other"`
	HeightCm      *int       `json:"height_cm,omitempty" validate:"omitempty,min=100,max=250"`
	Interests     []string   `json:"interests,omitempty" validate:"omitempty,max=10,dive,min=1"`
}

func (req *UpdateProfileRequest) applyTo(p Profile) Profile {
	if req.DisplayName != nil {
		p.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		p.Bio = req.Bio
	}
	if req.Gender != nil {
		p.Gender = Gender(*req.Gender)
	}
	if req.InterestedIn != nil {
		p.InterestedIn = make([]Gender, len(req.InterestedIn))
		for i, g := range req.InterestedIn {
			p.InterestedIn[i] = Gender(g)
		}
	}
	if req.BirthDate != nil {
		p.BirthDate = req.BirthDate
	}
	if req.Latitude != nil {
		p.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		p.Longitude = req.Longitude
	}
	if req.MaxDistanceKm != nil {
		p.MaxDistanceKm = *req.MaxDistanceKm
	}
	if req.MinAge != nil {
		p.MinAge = *req.MinAge
	}
	if req.MaxAge != nil {
		p.MaxAge = *req.MaxAge
	}
	if req.Smoking != nil {
		p.Smoking = Smoking(*req.Smoking)
	}
	if req.Drinking != nil {
		p.Drinking = Drinking(*req.Drinking)
	}
	if req.KidsStance != nil {
		p.KidsStance = KidsStance(*req.KidsStance)
	}
	if req.LookingFor != nil {
		p.LookingFor = LookingFor(*req.LookingFor)
	}
	if req.Education != nil {
		p.Education = Education(*req.Education)
	}
	if req.HeightCm != nil {
		p.HeightCm = req.HeightCm
	}
	if req.Interests != nil {
		p.Interests = req.Interests
	}
	return p
}

// UpdateDealbreakersRequest mirrors the Dealbreakers value object.
type UpdateDealbreakersRequest struct {
	AcceptableSmoking    []string `json:"acceptable_smoking,omitempty" validate:"omitempty,dive,oneof=never sometimes regularly"`
	AcceptableDrinking   []string `json:"acceptable_drinking,omitempty" validate:"omitempty,dive,oneof=never socially regularly"`
	AcceptableKidsStance []string `json:"acceptable_kids_stance,omitempty" validate:"omitempty,dive,oneof=no open someday has_kids"`
	AcceptableLookingFor []string `json:"acceptable_looking_for,omitempty" validate:"omitempty,dive,oneof=casual short_term long_term marriage unsure"`
	AcceptableEducation  []string `json:"acceptable_education,omitempty" validate:"omitempty,dive,oneof=high_school some_college bachelors masters phd trade_school other"`
	MinHeightCm          *int     `json:"min_height_cm,omitempty" validate:"omitempty,min=100,max=250"`
	MaxHeightCm          *int     `json:"max_height_cm,omitempty" validate:"omitempty,min=100,max=250"`
	MaxAgeDifference     *int     `json:"max_age_difference,omitempty" validate:"omitempty,min=0,max=100"`
}

func (req *UpdateDealbreakersRequest) toDealbreakers() Dealbreakers {
	d := Dealbreakers{
		MinHeightCm:      req.MinHeightCm,
		MaxHeightCm:      req.MaxHeightCm,
		MaxAgeDifference: req.MaxAgeDifference,
	}
	for _, v := range req.AcceptableSmoking {
		d.AcceptableSmoking = append(d.AcceptableSmoking, Smoking(v))
	}
	for _, v := range req.AcceptableDrinking {
		d.AcceptableDrinking = append(d.AcceptableDrinking, Drinking(v))
	}
	for _, v := range req.AcceptableKidsStance {
		d.AcceptableKidsStance = append(d.AcceptableKidsStance, KidsStance(v))
	}
	for _, v := range req.AcceptableLookingFor {
		d.AcceptableLookingFor = append(d.AcceptableLookingFor, LookingFor(v))
	}
	for _, v := range req.AcceptableEducation {
		d.AcceptableEducation = append(d.AcceptableEducation, Education(v))
	}
	return d
}

// UpdatePaceRequest mirrors the pace bundle; all four must be sent together.
type UpdatePaceRequest struct {
	MessagingFrequency string `json:"messaging_frequency" validate:"required,oneof=rarely often constantly"`
	TimeToFirstDate    string `json:"time_to_first_date" validate:"required,oneof=quickly few_days weeks months"`
	CommunicationStyle string `json:"communication_style" validate:"required,oneof=text_only voice_notes video_calls in_person_only mix_of_everything"`
	ConversationDepth  string `json:"conversation_depth" validate:"required,oneof=small_talk deep_chat existential depends_on_vibe"`
}
