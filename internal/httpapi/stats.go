package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"learnhub-backend-go/internal/services"

	"github.com/google/uuid"
)

func (s *Server) HomepageStats(w http.ResponseWriter, r *http.Request) {
	stats, err := services.FetchHomepageStats(s.DB)
	if err != nil {
		// the homepage degrades to canned numbers rather than erroring
		WriteJSON(w, http.StatusOK, services.FallbackHomepageStats)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

type SearchResultItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Type  string `json:"type"`
}

type SearchResponse struct {
	Items []SearchResultItem `json:"items"`
}

func (s *Server) PublicSearch(w http.ResponseWriter, r *http.Request) {
	term := services.CleanSearchTerm(r.URL.Query().Get("q"))
	if term == "" {
		WriteJSON(w, http.StatusOK, SearchResponse{Items: []SearchResultItem{}})
		return
	}
	like := "%" + strings.ToLower(term) + "%"
	rows := []struct {
		ID    string `db:"id"`
		Title string `db:"title"`
		Slug  string `db:"slug"`
		Type  string `db:"type"`
	}{}
	if err := s.DB.Select(&rows, `
SELECT id, title, slug, 'ARTICLE' AS type FROM articles
WHERE status = 'PUBLISHED' AND (lower(title) LIKE $1 OR lower(summary) LIKE $1)
UNION ALL
SELECT id, title, slug, 'COURSE' AS type FROM courses
WHERE status = 'PUBLISHED' AND (lower(title) LIKE $1 OR lower(summary) LIKE $1)
LIMIT 20
`, like); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]SearchResultItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, SearchResultItem{ID: row.ID, Title: row.Title, Slug: row.Slug, Type: row.Type})
	}
	WriteJSON(w, http.StatusOK, SearchResponse{Items: items})
}

type VisitRequest struct {
	Path     *string `json:"path"`
	Referrer *string `json:"referrer"`
}

func (s *Server) TrackVisit(w http.ResponseWriter, r *http.Request) {
	var req VisitRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	ip := resolveClientIP(r)
	ua := trimString(r.Header.Get("User-Agent"), 512)
	path := trimString(deref(req.Path), 255)
	ref := trimString(deref(req.Referrer), 512)
	_, _ = s.DB.Exec(`
INSERT INTO site_visits (id, ip_address, user_agent, path, referrer, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
`, uuid.NewString(), nullIfEmpty(ip), nullIfEmpty(ua), nullIfEmpty(path), nullIfEmpty(ref), time.Now().UTC())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) VisitCount(w http.ResponseWriter, r *http.Request) {
	var total int
	_ = s.DB.Get(&total, `SELECT count(*) FROM site_visits`)
	WriteJSON(w, http.StatusOK, map[string]int{"total": total})
}

func resolveClientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	return r.RemoteAddr
}

func trimString(value string, maxLen int) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}
