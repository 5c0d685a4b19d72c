package services

import (
	"log"
	"time"
)

type MaintenanceTask struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Schedule    string     `json:"schedule"`
	Status      string     `json:"status"`
	LastRunAt   *time.Time `json:"lastRunAt"`
	NextRunAt   *time.Time `json:"nextRunAt"`
}

const (
	TaskCleanupOldFiles   = "cleanup-old-files"
	TaskOptimizeDatabase  = "optimize-database"
	TaskUpdateSearchIndex = "update-search-index"
	TaskGenerateSitemaps  = "generate-sitemaps"
)

// MaintenanceTasks returns the fixed task catalog. Tasks are not persisted
// and running one does not yet do real work; the catalog exists so the admin
// UI has something stable to render.
func MaintenanceTasks() []MaintenanceTask {
	now := time.Now().UTC()
	lastDaily := now.Add(-26 * time.Hour)
	nextDaily := now.Add(22 * time.Hour)
	lastWeekly := now.Add(-6 * 24 * time.Hour)
	nextWeekly := now.Add(24 * time.Hour)
	return []MaintenanceTask{
		{
			ID:          TaskCleanupOldFiles,
			Name:        "Clean up old files",
			Description: "Remove orphaned uploads older than 30 days",
			Schedule:    "daily",
			Status:      "idle",
			LastRunAt:   &lastDaily,
			NextRunAt:   &nextDaily,
		},
		{
			ID:          TaskOptimizeDatabase,
			Name:        "Optimize database",
			Description: "Run VACUUM ANALYZE on the main tables",
			Schedule:    "weekly",
			Status:      "idle",
			LastRunAt:   &lastWeekly,
			NextRunAt:   &nextWeekly,
		},
		{
			ID:          TaskUpdateSearchIndex,
			Name:        "Update search index",
			Description: "Rebuild the content search index",
			Schedule:    "daily",
			Status:      "idle",
			LastRunAt:   &lastDaily,
			NextRunAt:   &nextDaily,
		},
		{
			ID:          TaskGenerateSitemaps,
			Name:        "Generate sitemaps",
			Description: "Regenerate XML sitemaps for published content",
			Schedule:    "daily",
			Status:      "idle",
			LastRunAt:   &lastDaily,
			NextRunAt:   &nextDaily,
		},
	}
}

// RunMaintenanceTask validates the task id and logs the dispatch. Actual
// execution is a stub; nothing durable changes.
func RunMaintenanceTask(taskID string) error {
	switch taskID {
	case TaskCleanupOldFiles, TaskOptimizeDatabase, TaskUpdateSearchIndex, TaskGenerateSitemaps:
		log.Printf("maintenance: task %s started", taskID)
		return nil
	default:
		return ErrBadRequest("Unknown maintenance task")
	}
}
