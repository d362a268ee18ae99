// internal/matching/handlers.go

package matching

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/emberdate/ember-backend/internal/auth"
	"github.com/emberdate/ember-backend/internal/common/utils"
	"github.com/emberdate/ember-backend/internal/profile"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetCandidates returns matchable profiles for the authenticated user,
// nearest first.
func (h *Handler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	candidates, err := h.service.GetCandidates(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to find candidates")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, candidates)
}

// Swipe records a like or pass on another profile.
func (h *Handler) Swipe(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := h.service.Swipe(r.Context(), userID, req.TargetID, req.Direction)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfSwipe):
			utils.RespondWithError(w, http.StatusBadRequest, "Cannot swipe on yourself")
		case errors.Is(err, ErrSwipeAlreadyExists):
			utils.RespondWithError(w, http.StatusConflict, "Already swiped on this user")
		case errors.Is(err, ErrDailyLimitReached):
			utils.RespondWithError(w, http.StatusTooManyRequests, "Daily limit reached")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record swipe")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, SwipeResponse{
		Swipe:   outcome.Swipe,
		Matched: outcome.Match != nil,
		Match:   outcome.Match,
	})
}

// Undo reverses the user's most recent swipe if the window is still open.
func (h *Handler) Undo(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result := h.service.Undo(r.Context(), userID)
	if !result.Success {
		utils.RespondWithJSON(w, http.StatusConflict, result)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// CanUndo reports whether an undo is available and for how long.
func (h *Handler) CanUndo(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	canUndo, remaining := h.service.CanUndo(r.Context(), userID)
	utils.RespondWithJSON(w, http.StatusOK, CanUndoResponse{
		CanUndo:          canUndo,
		SecondsRemaining: remaining,
	})
}

// GetDailyStatus returns today's like/pass usage.
func (h *Handler) GetDailyStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status, err := h.service.GetDailyStatus(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get daily status")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, status)
}

// GetDailyPick returns today's pick for the authenticated user.
func (h *Handler) GetDailyPick(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	pick, err := h.service.GetDailyPick(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get daily pick")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, DailyPickResponse{
		Available: pick != nil,
		Pick:      pick,
	})
}

// MarkDailyPickViewed records that the user has seen today's pick.
func (h *Handler) MarkDailyPickViewed(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.MarkDailyPickViewed(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to mark pick viewed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"viewed": true})
}

// GetMatches returns the user's active matches.
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matches, err := h.service.GetMatches(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get matches")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, matches)
}

// GetMatchQuality computes compatibility for one match from the caller's
// perspective.
func (h *Handler) GetMatchQuality(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matchID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid match ID")
		return
	}

	quality, err := h.service.GetMatchQuality(r.Context(), matchID, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrMatchNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Match not found")
		case errors.Is(err, profile.ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute match quality")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, MatchQualityResponse{
		Quality:    quality,
		StarRating: quality.StarRating(),
		Label:      quality.CompatibilityLabel(),
	})
}
