package httpapi

import (
	"fmt"
	"net/http"

	"learnhub-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

func (s *Server) MaintenanceTasks(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{"tasks": services.MaintenanceTasks()})
}

type MaintenanceRunResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) RunMaintenanceTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskId")
	if err := services.RunMaintenanceTask(taskID); err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, MaintenanceRunResponse{
		Success: true,
		Message: fmt.Sprintf("Task %s started", taskID),
	})
}
