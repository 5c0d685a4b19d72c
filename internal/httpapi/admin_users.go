package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"learnhub-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AdminUserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	Roles       []string   `json:"roles"`
	FirstName   *string    `json:"firstName,omitempty"`
	LastName    *string    `json:"lastName,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	LastSeenAt  *time.Time `json:"lastSeenAt,omitempty"`
}

type PagedUsersResponse struct {
	Items    []AdminUserResponse `json:"items"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
}

func (s *Server) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	page := parseInt(r.URL.Query().Get("page"), 1)
	pageSize := parseInt(r.URL.Query().Get("pageSize"), 10)
	if pageSize > 100 {
		pageSize = 100
	}
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	args := []interface{}{}
	where := ""
	if search != "" {
		where = "WHERE lower(email) LIKE $1"
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	var total int
	if err := s.DB.Get(&total, "SELECT count(*) FROM users "+where, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`
SELECT u.id, u.email, u.status, u.created_at, u.last_login_at, u.last_seen_at,
       p.first_name, p.last_name
FROM users u
LEFT JOIN user_profiles p ON p.user_id = u.id
%s
ORDER BY u.created_at DESC
LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))
	rows := []struct {
		ID        string     `db:"id"`
		Email     string     `db:"email"`
		Status    string     `db:"status"`
		CreatedAt *time.Time `db:"created_at"`
		LastLogin *time.Time `db:"last_login_at"`
		LastSeen  *time.Time `db:"last_seen_at"`
		FirstName *string    `db:"first_name"`
		LastName  *string    `db:"last_name"`
	}{}
	if err := s.DB.Select(&rows, query, args...); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]AdminUserResponse, 0, len(rows))
	for _, row := range rows {
		roles, _ := services.FetchRoles(s.DB, row.ID)
		items = append(items, AdminUserResponse{
			ID:          row.ID,
			Email:       row.Email,
			Status:      row.Status,
			Roles:       roles,
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			CreatedAt:   row.CreatedAt,
			LastLoginAt: row.LastLogin,
			LastSeenAt:  row.LastSeen,
		})
	}
	WriteJSON(w, http.StatusOK, PagedUsersResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

type AdminUserCreateRequest struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Roles     []string `json:"roles"`
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
}

func (s *Server) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	var req AdminUserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Password) == "" {
		WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	var exists bool
	if err := s.DB.Get(&exists, `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = $1)`, email); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if exists {
		WriteError(w, http.StatusBadRequest, "User already exists")
		return
	}
	hash, err := services.HashPassword(req.Password)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	userID := uuid.NewString()
	now := time.Now().UTC()
	_, err = s.DB.Exec(`
INSERT INTO users (id, email, password_hash, status, is_email_verified, created_at, updated_at)
VALUES ($1,$2,$3,'ACTIVE',FALSE,$4,$4)
`, userID, email, hash, now)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	_, _ = s.DB.Exec(`
INSERT INTO user_profiles (user_id, first_name, last_name, created_at, updated_at)
VALUES ($1,$2,$3,$4,$4)
`, userID, req.FirstName, req.LastName, now)
	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{"STUDENT"}
	}
	for _, role := range roles {
		s.assignRole(userID, role, now)
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"id": userID, "email": email})
}

func (s *Server) assignRole(userID, role string, now time.Time) {
	role = strings.ToUpper(strings.TrimSpace(role))
	var roleID string
	if err := s.DB.Get(&roleID, `SELECT id FROM roles WHERE code = $1`, role); err == nil && roleID != "" {
		_, _ = s.DB.Exec(`
INSERT INTO user_roles (id, user_id, role_id, assigned_at)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING
`, uuid.NewString(), userID, roleID, now)
	}
}

type UserStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

func (s *Server) AdminSetUserStatus(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "userId")
	var req UserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		WriteError(w, http.StatusBadRequest, "isActive is required")
		return
	}
	if err := services.SetUserActive(s.DB, targetID, *req.IsActive, CurrentUserID(r)); err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type AssignRoleRequest struct {
	Role string `json:"role"`
}

func (s *Server) AdminAssignRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	var req AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		WriteError(w, http.StatusBadRequest, "Role not found")
		return
	}
	var roleID string
	if err := s.DB.Get(&roleID, `SELECT id FROM roles WHERE code = $1`, role); err != nil {
		WriteError(w, http.StatusNotFound, "Role not found")
		return
	}
	_, _ = s.DB.Exec(`
INSERT INTO user_roles (id, user_id, role_id, assigned_at)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING
`, uuid.NewString(), userID, roleID, time.Now().UTC())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) AdminRemoveRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	role := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "role")))
	var roleID string
	if err := s.DB.Get(&roleID, `SELECT id FROM roles WHERE code = $1`, role); err != nil {
		WriteError(w, http.StatusNotFound, "Role not found")
		return
	}
	_, _ = s.DB.Exec(`DELETE FROM user_roles WHERE user_id = $1 AND role_id = $2`, userID, roleID)
	w.WriteHeader(http.StatusNoContent)
}
