package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"learnhub-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

type EnrollRequest struct {
	UserID string `json:"userId"`
}

func (s *Server) EnrollCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseId")
	var req EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		WriteError(w, http.StatusBadRequest, "User ID is required")
		return
	}
	result, err := services.EnrollUser(s.DB, courseID, userID)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (s *Server) PatchCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseId")
	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	raw := map[string]interface{}{}
	if err := json.Unmarshal(body, &raw); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := services.ValidatePatchKeys(raw); err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	var patch services.CoursePatch
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&patch); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	detail, err := services.PatchCourse(s.DB, courseID, patch)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, detail)
}

func (s *Server) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseId")
	if err := services.DeleteCourse(s.DB, courseID); err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type CourseListResponse struct {
	Items []services.CourseDetail `json:"items"`
	Total int                     `json:"total"`
	Page  int                     `json:"page"`
	Size  int                     `json:"size"`
}

func (s *Server) PublicCourses(w http.ResponseWriter, r *http.Request) {
	page := parseInt(r.URL.Query().Get("page"), 1)
	size := parseInt(r.URL.Query().Get("size"), 20)
	if size > 100 {
		size = 100
	}
	categoryID := strings.TrimSpace(r.URL.Query().Get("categoryId"))

	args := []interface{}{}
	where := `WHERE status = 'PUBLISHED'`
	if categoryID != "" {
		where += ` AND category_id = $1`
		args = append(args, categoryID)
	}
	var total int
	if err := s.DB.Get(&total, `SELECT count(*) FROM courses `+where, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := []services.CourseDetail{}
	args = append(args, size, (page-1)*size)
	query := fmt.Sprintf(`
SELECT id, title, slug, summary, description, level, status, duration_minutes,
       points, category_id, enrolled_count, created_at, updated_at
FROM courses %s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))
	if err := s.DB.Select(&items, query, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, CourseListResponse{Items: items, Total: total, Page: page, Size: size})
}

func (s *Server) PublicCourseDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	detail, err := services.FetchCourseBySlug(s.DB, slug)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, detail)
}
