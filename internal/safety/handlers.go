// internal/safety/handlers.go

package safety

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/emberdate/ember-backend/internal/auth"
	"github.com/emberdate/ember-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// BlockUser blocks the target; both users stop seeing each other.
func (h *Handler) BlockUser(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	block, err := h.service.BlockUser(r.Context(), userID, targetID)
	if err != nil {
		if errors.Is(err, ErrSelfBlock) {
			utils.RespondWithError(w, http.StatusBadRequest, "Cannot block yourself")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to block user")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, block)
}

// UnblockUser removes the caller's block on the target.
func (h *Handler) UnblockUser(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.service.UnblockUser(r.Context(), userID, targetID); err != nil {
		if errors.Is(err, ErrBlockNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Block not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to unblock user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"unblocked": true})
}

// GetBlocks lists the caller's blocks.
func (h *Handler) GetBlocks(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	blocks, err := h.service.GetBlocks(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list blocks")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, blocks)
}
