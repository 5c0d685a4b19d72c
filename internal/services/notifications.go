package services

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type NotificationItem struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"userId"`
	Title     string     `db:"title" json:"title"`
	Body      string     `db:"body" json:"body"`
	IsRead    bool       `db:"is_read" json:"isRead"`
	ReadAt    *time.Time `db:"read_at" json:"readAt"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

func ListNotifications(db *sqlx.DB, userID string, limit int) ([]NotificationItem, error) {
	items := []NotificationItem{}
	err := db.Select(&items, `
SELECT id, user_id, title, body, is_read, read_at, created_at
FROM notifications
WHERE user_id = $1
ORDER BY is_read ASC, created_at DESC
LIMIT $2
`, userID, limit)
	return items, err
}

// MarkNotificationRead updates only a row owned by the caller. Ownership is
// enforced by the predicate, so a wrong id and a wrong owner are
// indistinguishable: both read as not found.
func MarkNotificationRead(db *sqlx.DB, notificationID, callerID string) (NotificationItem, error) {
	now := time.Now().UTC()
	result, err := db.Exec(`
UPDATE notifications
SET is_read = TRUE, read_at = $3
WHERE id = $1 AND user_id = $2
`, notificationID, callerID, now)
	if err != nil {
		return NotificationItem{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return NotificationItem{}, err
	}
	if affected == 0 {
		return NotificationItem{}, ErrNotFound("Notification not found")
	}
	item := NotificationItem{}
	err = db.Get(&item, `
SELECT id, user_id, title, body, is_read, read_at, created_at
FROM notifications
WHERE id = $1
`, notificationID)
	return item, err
}
