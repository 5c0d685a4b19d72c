package httpapi

import (
	"net/http"
	"path/filepath"
	"strings"

	"learnhub-backend-go/internal/models"
	"learnhub-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 64 << 20

func (s *Server) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer func() { _ = file.Close() }()

	bucket := strings.TrimSpace(r.FormValue("bucket"))
	if bucket != services.BucketAvatars {
		bucket = services.BucketContent
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	uploadID, url, err := services.SaveUpload(s.DB, s.Config.UploadStoragePath, bucket,
		contentType, header.Filename, CurrentUserID(r), file)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"id": uploadID, "url": url})
}

func (s *Server) UploadContent(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "uploadId")
	var upload models.Upload
	if err := s.DB.Get(&upload, `SELECT bucket, storage_key, content_type, filename FROM uploads WHERE id = $1`, uploadID); err != nil {
		WriteError(w, http.StatusNotFound, "File not found")
		return
	}
	path := filepath.Join(s.Config.UploadStoragePath, upload.Bucket, upload.StorageKey)
	w.Header().Set("Content-Type", upload.ContentType)
	if upload.Filename != nil {
		w.Header().Set("Content-Disposition", `inline; filename="`+*upload.Filename+`"`)
	}
	http.ServeFile(w, r, path)
}
