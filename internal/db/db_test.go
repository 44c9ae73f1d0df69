package db

import (
	"path/filepath"
	"testing"

	"github.com/tgienger/stt/internal/storage"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "nested", "stt.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestGetMissingKey(t *testing.T) {
	database := openTemp(t)
	value, ok, err := database.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || value != "" {
		t.Fatalf("expected missing key, got %q ok=%v", value, ok)
	}
}

func TestSetOverwrites(t *testing.T) {
	database := openTemp(t)
	if err := database.Set("k", "one"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := database.Set("k", "two"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok, err := database.Get("k")
	if err != nil || !ok || value != "two" {
		t.Fatalf("Get = %q,%v,%v want two,true,nil", value, ok, err)
	}
}

func TestSettings(t *testing.T) {
	database := openTemp(t)
	if v, err := database.GetSetting("last_task_id"); err != nil || v != "" {
		t.Fatalf("GetSetting on empty db = %q, %v", v, err)
	}
	database.SetSetting("last_task_id", "abc")
	if v, _ := database.GetSetting("last_task_id"); v != "abc" {
		t.Fatalf("GetSetting = %q, want abc", v)
	}
}

func TestDefaultPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if want := filepath.Join(dir, "stt", "stt.db"); got != want {
		t.Fatalf("DefaultPath = %q, want %q", got, want)
	}
}

func TestAdapterOverSQLite(t *testing.T) {
	database := openTemp(t)
	a := storage.NewAdapter(database)

	if err := database.Set(storage.DefaultKey, "garbage"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	forest, err := a.Load()
	if err != nil || len(forest) != 0 {
		t.Fatalf("unreadable blob should load as empty, got %v, %v", forest, err)
	}
}
