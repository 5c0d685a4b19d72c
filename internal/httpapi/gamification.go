package httpapi

import (
	"net/http"
	"strings"

	"learnhub-backend-go/internal/services"
)

type LeaderboardResponse struct {
	Leaderboard []services.LeaderboardEntry `json:"leaderboard"`
	Type        string                      `json:"type"`
	Total       int                         `json:"total"`
}

func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 50)
	if limit > 200 {
		limit = 200
	}
	metric := strings.TrimSpace(r.URL.Query().Get("type"))
	switch metric {
	case services.LeaderboardPoints, services.LeaderboardArticles, services.LeaderboardQuality:
	default:
		metric = services.LeaderboardPoints
	}
	entries, err := services.FetchLeaderboard(s.DB, limit, metric)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, LeaderboardResponse{
		Leaderboard: entries,
		Type:        metric,
		Total:       len(entries),
	})
}
