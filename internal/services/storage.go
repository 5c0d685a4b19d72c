package services

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

type StorageBreakdown struct {
	Images    StorageBucket `json:"images"`
	Documents StorageBucket `json:"documents"`
	Videos    StorageBucket `json:"videos"`
	Other     StorageBucket `json:"other"`
}

type StorageBucket struct {
	Count int   `json:"count"`
	Bytes int64 `json:"bytes"`
}

type StorageStatsResult struct {
	TotalUsed  int64            `json:"totalUsed"`
	TotalLimit int64            `json:"totalLimit"`
	FileCount  int              `json:"fileCount"`
	Breakdown  StorageBreakdown `json:"breakdown"`
}

// BucketForContentType maps a MIME type onto the reporting buckets used by
// the storage dashboard.
func BucketForContentType(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case strings.HasPrefix(ct, "image/"):
		return "images"
	case strings.HasPrefix(ct, "video/"):
		return "videos"
	case strings.Contains(ct, "pdf"), strings.Contains(ct, "document"):
		return "documents"
	default:
		return "other"
	}
}

// StorageStats aggregates all uploads. The grouping happens server-side so
// the response stays small, but the scan still covers every upload row;
// past a few million uploads this wants a materialized rollup.
func StorageStats(db *sqlx.DB, limitBytes int64) (StorageStatsResult, error) {
	rows := []struct {
		ContentType string `db:"content_type"`
		Count       int    `db:"count"`
		Bytes       int64  `db:"bytes"`
	}{}
	if err := db.Select(&rows, `
SELECT content_type, count(*) AS count, COALESCE(SUM(size_bytes), 0) AS bytes
FROM uploads
GROUP BY content_type
`); err != nil {
		return StorageStatsResult{}, err
	}
	result := StorageStatsResult{TotalLimit: limitBytes}
	for _, row := range rows {
		result.TotalUsed += row.Bytes
		result.FileCount += row.Count
		switch BucketForContentType(row.ContentType) {
		case "images":
			result.Breakdown.Images.Count += row.Count
			result.Breakdown.Images.Bytes += row.Bytes
		case "videos":
			result.Breakdown.Videos.Count += row.Count
			result.Breakdown.Videos.Bytes += row.Bytes
		case "documents":
			result.Breakdown.Documents.Count += row.Count
			result.Breakdown.Documents.Bytes += row.Bytes
		default:
			result.Breakdown.Other.Count += row.Count
			result.Breakdown.Other.Bytes += row.Bytes
		}
	}
	return result, nil
}
