package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"learnhub-backend-go/internal/services"
)

type ModerationAnalyzeRequest struct {
	Content     string  `json:"content"`
	Title       string  `json:"title"`
	ContentID   *string `json:"contentId"`
	ContentType *string `json:"contentType"`
}

func (s *Server) ModerationAnalyze(w http.ResponseWriter, r *http.Request) {
	var req ModerationAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		WriteError(w, http.StatusBadRequest, "Content is required")
		return
	}
	if req.ContentID != nil && req.ContentType != nil {
		outcome, err := services.AutoModerate(r.Context(), s.DB, s.Moderator,
			req.Title, req.Content, *req.ContentID, *req.ContentType)
		if err != nil {
			if mapServiceError(w, err) {
				return
			}
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, outcome)
		return
	}
	outcome, err := services.Analyze(r.Context(), s.DB, s.Moderator, req.Title, req.Content)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, outcome)
}

func (s *Server) ModerationStats(w http.ResponseWriter, r *http.Request) {
	timeframe := strings.TrimSpace(r.URL.Query().Get("timeframe"))
	if timeframe == "" {
		timeframe = "week"
	}
	stats, err := services.FetchModerationStats(s.DB, timeframe)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}
