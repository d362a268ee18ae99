// internal/profile/routes.go

package profile

import (
	"github.com/gorilla/mux"

	"github.com/emberdate/ember-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/profile").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.GetProfile).Methods("GET")
	api.HandleFunc("", handler.UpdateProfile).Methods("PATCH")
	api.HandleFunc("/dealbreakers", handler.UpdateDealbreakers).Methods("PUT")
	api.HandleFunc("/pace", handler.UpdatePacePreferences).Methods("PUT")
	api.HandleFunc("/state", handler.SetState).Methods("PUT")
	api.HandleFunc("/{id}", handler.GetProfileByID).Methods("GET")
}
