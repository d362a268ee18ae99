// internal/matching/routes.go

package matching

import (
	"github.com/gorilla/mux"

	"github.com/emberdate/ember-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, hub *Hub, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/matching").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/candidates", handler.GetCandidates).Methods("GET")
	api.HandleFunc("/swipe", handler.Swipe).Methods("POST")
	api.HandleFunc("/undo", handler.Undo).Methods("POST")
	api.HandleFunc("/undo", handler.CanUndo).Methods("GET")
	api.HandleFunc("/daily/status", handler.GetDailyStatus).Methods("GET")
	api.HandleFunc("/daily/pick", handler.GetDailyPick).Methods("GET")
	api.HandleFunc("/daily/pick/viewed", handler.MarkDailyPickViewed).Methods("POST")
	api.HandleFunc("/matches", handler.GetMatches).Methods("GET")
	api.HandleFunc("/matches/{id}/quality", handler.GetMatchQuality).Methods("GET")
	api.HandleFunc("/ws", hub.ServeWS).Methods("GET")
}
