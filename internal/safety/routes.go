// internal/safety/routes.go

package safety

import (
	"github.com/gorilla/mux"

	"github.com/emberdate/ember-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/safety").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/blocks", handler.GetBlocks).Methods("GET")
	api.HandleFunc("/blocks/{id}", handler.BlockUser).Methods("POST")
	api.HandleFunc("/blocks/{id}", handler.UnblockUser).Methods("DELETE")
}
