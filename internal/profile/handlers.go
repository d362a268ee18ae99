// internal/profile/handlers.go

package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/google/uuid"

	"github.com/emberdate/ember-backend/internal/auth"
	"github.com/emberdate/ember-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetProfile returns the authenticated user's profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	p, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, p)
}

// GetProfileByID returns any profile by ID (for viewing a candidate).
func (h *Handler) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}

	p, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, p)
}

// UpdateProfile applies a partial update to the authenticated user's profile.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		case errors.Is(err, ErrInvalidAgeRange), errors.Is(err, ErrPartialPace),
			errors.Is(err, ErrInvalidHeight), errors.Is(err, ErrNegativeAgeDiff):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, p)
}

// UpdateDealbreakers replaces the authenticated user's dealbreaker set.
func (h *Handler) UpdateDealbreakers(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateDealbreakersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.SetDealbreakers(r.Context(), userID, req.toDealbreakers())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidHeight), errors.Is(err, ErrNegativeAgeDiff):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update dealbreakers")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, p)
}

// UpdatePacePreferences replaces the authenticated user's pace bundle.
func (h *Handler) UpdatePacePreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdatePaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	pace, err := NewPacePreferences(
		MessagingFrequency(req.MessagingFrequency),
		TimeToFirstDate(req.TimeToFirstDate),
		CommunicationStyle(req.CommunicationStyle),
		ConversationDepth(req.ConversationDepth),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.SetPacePreferences(r.Context(), userID, pace)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update pace preferences")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, p)
}

// SetState transitions the profile lifecycle (active/paused).
func (h *Handler) SetState(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		State string `json:"state" validate:"required,oneof=active paused"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.SetState(r.Context(), userID, State(req.State)); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update state")
		return
	}

	utils.MessageResponse(w, "Profile state updated", http.StatusOK)
}
