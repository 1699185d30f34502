package bolt

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T, path string) *TokenStore {
	t.Helper()
	db, err := Open(Config{Path: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewTokenStore(db)
}

func TestTokenStore_EmptyFile(t *testing.T) {
	store := openTestDB(t, filepath.Join(t.TempDir(), "state.db"))

	token, err := store.Load(context.Background())
	if err != nil || token != "" {
		t.Fatalf("expected no token, got %q, %v", token, err)
	}
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("clear on empty file should succeed: %v", err)
	}
}

func TestTokenStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	db, err := Open(Config{Path: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := NewTokenStore(db).Save(context.Background(), "tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	store := openTestDB(t, path)
	token, err := store.Load(context.Background())
	if err != nil || token != "tok-1" {
		t.Fatalf("expected persisted token, got %q, %v", token, err)
	}

	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if token, _ := store.Load(context.Background()); token != "" {
		t.Fatalf("expected cleared token, got %q", token)
	}
}
