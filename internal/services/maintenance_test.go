package services

import "testing"

func TestMaintenanceTasksCatalog(t *testing.T) {
	tasks := MaintenanceTasks()
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tasks))
	}
	want := map[string]bool{
		TaskCleanupOldFiles:   true,
		TaskOptimizeDatabase:  true,
		TaskUpdateSearchIndex: true,
		TaskGenerateSitemaps:  true,
	}
	for _, task := range tasks {
		if !want[task.ID] {
			t.Fatalf("unexpected task id %q", task.ID)
		}
		delete(want, task.ID)
	}
	if len(want) != 0 {
		t.Fatalf("missing tasks: %v", want)
	}
}

func TestRunMaintenanceTaskKnownIDs(t *testing.T) {
	for _, id := range []string{TaskCleanupOldFiles, TaskOptimizeDatabase, TaskUpdateSearchIndex, TaskGenerateSitemaps} {
		if err := RunMaintenanceTask(id); err != nil {
			t.Fatalf("RunMaintenanceTask(%q): %v", id, err)
		}
	}
}

func TestRunMaintenanceTaskUnknownID(t *testing.T) {
	err := RunMaintenanceTask("reticulate-splines")
	if err == nil {
		t.Fatal("expected error for unknown task")
	}
	serr, ok := err.(ServiceError)
	if !ok {
		t.Fatalf("expected ServiceError, got %T", err)
	}
	if serr.Status != 400 || serr.Message != "Unknown maintenance task" {
		t.Fatalf("unexpected error: %d %q", serr.Status, serr.Message)
	}
}
