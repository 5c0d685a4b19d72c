package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"learnhub-backend-go/internal/services"
)

type ProfileDTO struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type UserDTO struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	Status      string      `json:"status"`
	Roles       []string    `json:"roles"`
	Profile     *ProfileDTO `json:"profile,omitempty"`
	LastLoginAt *time.Time  `json:"lastLoginAt,omitempty"`
}

func (s *Server) buildUserDTO(userID string) (*UserDTO, error) {
	row := struct {
		ID        string     `db:"id"`
		Email     string     `db:"email"`
		Status    string     `db:"status"`
		LastLogin *time.Time `db:"last_login_at"`
		FirstName *string    `db:"first_name"`
		LastName  *string    `db:"last_name"`
		Bio       *string    `db:"bio"`
		AvatarID  *string    `db:"avatar_upload_id"`
	}{}
	if err := s.DB.Get(&row, `
SELECT u.id, u.email, u.status, u.last_login_at,
       p.first_name, p.last_name, p.bio, p.avatar_upload_id
FROM users u
LEFT JOIN user_profiles p ON p.user_id = u.id
WHERE u.id = $1
`, userID); err != nil {
		return nil, err
	}
	roles, err := services.FetchRoles(s.DB, userID)
	if err != nil {
		return nil, err
	}
	var avatarURL *string
	if row.AvatarID != nil {
		url := services.BuildUploadURL(*row.AvatarID)
		avatarURL = &url
	}
	profile := (*ProfileDTO)(nil)
	if row.FirstName != nil || row.LastName != nil || row.Bio != nil || row.AvatarID != nil {
		profile = &ProfileDTO{
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Bio:       row.Bio,
			AvatarURL: avatarURL,
		}
	}
	return &UserDTO{
		ID:          row.ID,
		Email:       row.Email,
		Status:      row.Status,
		Roles:       roles,
		Profile:     profile,
		LastLoginAt: row.LastLogin,
	}, nil
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	userDTO, err := s.buildUserDTO(CurrentUserID(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, userDTO)
}

type ProfileUpdateRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Bio       *string `json:"bio"`
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	userID := CurrentUserID(r)
	now := time.Now().UTC()
	_, _ = s.DB.Exec(`
INSERT INTO user_profiles (user_id, created_at, updated_at)
VALUES ($1,$2,$2)
ON CONFLICT (user_id) DO NOTHING
`, userID, now)
	_, err := s.DB.Exec(`
UPDATE user_profiles
SET first_name = COALESCE($2, first_name),
    last_name = COALESCE($3, last_name),
    bio = COALESCE($4, bio),
    updated_at = $5
WHERE user_id = $1
`, userID, req.FirstName, req.LastName, req.Bio, now)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	userDTO, err := s.buildUserDTO(userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, userDTO)
}

func (s *Server) Ping(w http.ResponseWriter, r *http.Request) {
	_ = services.TouchLastSeen(s.DB, CurrentUserID(r))
	w.WriteHeader(http.StatusNoContent)
}
