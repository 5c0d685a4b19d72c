package services

import (
	"sort"

	"github.com/jmoiron/sqlx"
)

type LeaderboardEntry struct {
	UserID              string  `db:"user_id" json:"userId"`
	DisplayName         string  `db:"display_name" json:"displayName"`
	TotalPoints         int     `db:"total_points" json:"totalPoints"`
	TotalArticles       int     `db:"total_articles" json:"totalArticles"`
	AverageQualityScore float64 `db:"average_quality_score" json:"averageQualityScore"`
	RankPosition        int     `json:"rankPosition"`
}

const (
	LeaderboardPoints   = "points"
	LeaderboardArticles = "articles"
	LeaderboardQuality  = "quality"
)

// RankLeaderboard sorts entries descending by the requested metric and
// recomputes 1-based rank positions. Unknown types fall back to points.
func RankLeaderboard(entries []LeaderboardEntry, metric string) []LeaderboardEntry {
	ranked := make([]LeaderboardEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		switch metric {
		case LeaderboardArticles:
			return ranked[i].TotalArticles > ranked[j].TotalArticles
		case LeaderboardQuality:
			return ranked[i].AverageQualityScore > ranked[j].AverageQualityScore
		default:
			return ranked[i].TotalPoints > ranked[j].TotalPoints
		}
	})
	for i := range ranked {
		ranked[i].RankPosition = i + 1
	}
	return ranked
}

func FetchLeaderboard(db *sqlx.DB, limit int, metric string) ([]LeaderboardEntry, error) {
	entries := []LeaderboardEntry{}
	err := db.Select(&entries, `
SELECT s.user_id,
       COALESCE(NULLIF(TRIM(COALESCE(p.first_name, '') || ' ' || COALESCE(p.last_name, '')), ''), u.email) AS display_name,
       s.total_points, s.total_articles, s.average_quality_score
FROM user_stats s
JOIN users u ON u.id = s.user_id
LEFT JOIN user_profiles p ON p.user_id = s.user_id
WHERE u.status = 'ACTIVE'
ORDER BY s.total_points DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, err
	}
	return RankLeaderboard(entries, metric), nil
}
