package services

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type HomepageStats struct {
	TotalArticles   int `json:"totalArticles"`
	TotalNews       int `json:"totalNews"`
	TotalCourses    int `json:"totalCourses"`
	ActiveUsers     int `json:"activeUsers"`
	TotalCategories int `json:"totalCategories"`
	TotalTags       int `json:"totalTags"`
}

// FallbackHomepageStats is served with a 200 whenever the live counts cannot
// be read. The homepage is the only endpoint that swallows backend failures
// like this; everything else surfaces them.
var FallbackHomepageStats = HomepageStats{
	TotalArticles:   100,
	TotalNews:       250,
	TotalCourses:    20,
	ActiveUsers:     1000,
	TotalCategories: 10,
	TotalTags:       50,
}

func FetchHomepageStats(db *sqlx.DB) (HomepageStats, error) {
	stats := HomepageStats{}
	err := db.Get(&stats, `
SELECT
  (SELECT count(*) FROM articles WHERE status = 'PUBLISHED') AS totalarticles,
  (SELECT count(*) FROM news WHERE status = 'PUBLISHED') AS totalnews,
  (SELECT count(*) FROM courses WHERE status = 'PUBLISHED') AS totalcourses,
  (SELECT count(*) FROM users WHERE status = 'ACTIVE' AND last_seen_at > $1) AS activeusers,
  (SELECT count(*) FROM categories WHERE is_active) AS totalcategories,
  (SELECT count(*) FROM tags) AS totaltags
`, time.Now().UTC().Add(-30*24*time.Hour))
	return stats, err
}
