package services

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"time"

	"learnhub-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	BucketAvatars = "avatars"
	BucketContent = "content"
)

func EnsureStoragePath(base string, bucket string) (string, error) {
	path := filepath.Join(base, bucket)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", err
	}
	return path, nil
}

// SaveUpload streams the body to disk, hashing as it goes, and records the
// uploads row used by the storage stats dashboard.
func SaveUpload(db *sqlx.DB, basePath, bucket, contentType, filename, ownerID string, body io.Reader) (string, string, error) {
	uploadID := uuid.NewString()
	bucketPath, err := EnsureStoragePath(basePath, bucket)
	if err != nil {
		return "", "", err
	}
	targetPath := filepath.Join(bucketPath, uploadID)

	file, err := os.Create(targetPath)
	if err != nil {
		return "", "", err
	}
	hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(file, hasher), body)
	_ = file.Close()
	if err != nil {
		return "", "", err
	}
	if size == 0 {
		_ = os.Remove(targetPath)
		return "", "", ErrBadRequest("File is empty")
	}
	sha := hex.EncodeToString(hasher.Sum(nil))

	_, err = db.Exec(`
INSERT INTO uploads (id, owner_user_id, bucket, storage_key, filename, content_type, size_bytes, sha256, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`, uploadID, ownerID, bucket, uploadID, filename, contentType, size, sha, time.Now().UTC())
	if err != nil {
		_ = os.Remove(targetPath)
		return "", "", err
	}
	return uploadID, BuildUploadURL(uploadID), nil
}

func BuildUploadURL(uploadID string) string {
	return "/api/media/assets/" + uploadID + "/content"
}

func DeleteUpload(db *sqlx.DB, basePath string, uploadID string) error {
	var upload models.Upload
	if err := db.Get(&upload, `SELECT bucket, storage_key FROM uploads WHERE id = $1`, uploadID); err != nil {
		return nil
	}
	_, _ = db.Exec(`DELETE FROM uploads WHERE id = $1`, uploadID)
	_ = os.Remove(filepath.Join(basePath, upload.Bucket, upload.StorageKey))
	return nil
}
