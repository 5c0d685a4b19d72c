package services

import (
	"time"

	"github.com/jmoiron/sqlx"
)

func FetchRoles(db *sqlx.DB, userID string) ([]string, error) {
	roles := []string{}
	err := db.Select(&roles, `
SELECT r.code
FROM roles r
JOIN user_roles ur ON ur.role_id = r.id
WHERE ur.user_id = $1
ORDER BY r.code
`, userID)
	return roles, err
}

func TouchLastSeen(db *sqlx.DB, userID string) error {
	_, err := db.Exec(`UPDATE users SET last_seen_at = $1 WHERE id = $2`, time.Now().UTC(), userID)
	return err
}

func SetLastLogin(db *sqlx.DB, userID string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE users SET last_login_at = $1, last_seen_at = $1 WHERE id = $2`, now, userID)
	return err
}

// SetUserActive toggles an account between ACTIVE and DISABLED. An admin
// cannot deactivate their own account.
func SetUserActive(db *sqlx.DB, targetUserID string, isActive bool, callerID string) error {
	if targetUserID == callerID && !isActive {
		return ErrBadRequest("You cannot deactivate your own account")
	}
	status := "DISABLED"
	if isActive {
		status = "ACTIVE"
	}
	result, err := db.Exec(`UPDATE users SET status = $2, updated_at = $3 WHERE id = $1`,
		targetUserID, status, time.Now().UTC())
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound("User not found")
	}
	return nil
}
