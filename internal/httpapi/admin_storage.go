package httpapi

import (
	"net/http"

	"learnhub-backend-go/internal/services"
)

func (s *Server) StorageStats(w http.ResponseWriter, r *http.Request) {
	stats, err := services.StorageStats(s.DB, s.Config.StorageLimitBytes)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}
