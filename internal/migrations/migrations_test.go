package migrations

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListMigrationsSortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	files := []string{"V02__seed.sql", "V01__init.sql", "V10__later.sql", "README.md"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "archive.sql"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	migs, err := listMigrations(dir)
	if err != nil {
		t.Fatalf("listMigrations: %v", err)
	}
	got := make([]string, 0, len(migs))
	for _, mig := range migs {
		got = append(got, mig.Name)
	}
	want := []string{"V01__init.sql", "V02__seed.sql", "V10__later.sql"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestListMigrationsMissingDir(t *testing.T) {
	if _, err := listMigrations(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
