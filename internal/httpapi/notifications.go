package httpapi

import (
	"net/http"

	"learnhub-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

func (s *Server) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 50)
	if limit > 200 {
		limit = 200
	}
	items, err := services.ListNotifications(s.DB, CurrentUserID(r), limit)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"notifications": items})
}

func (s *Server) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, "notificationId")
	item, err := services.MarkNotificationRead(s.DB, notificationID, CurrentUserID(r))
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"notification": item})
}
