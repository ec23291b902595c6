package kvstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mindwell/mindwell/internal/platform"
	"github.com/mindwell/mindwell/pkg/config"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Load(ctx, KeyMoodHistory); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on empty store: expected ErrNotFound, got %v", err)
	}

	if err := s.Save(ctx, KeyMoodHistory, []byte(`[1]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, KeyMoodHistory, []byte(`[1,2]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx, KeyMoodHistory)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `[1,2]` {
		t.Errorf("Load = %q, want last write", got)
	}

	if err := s.Delete(ctx, KeyMoodHistory); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load(ctx, KeyMoodHistory); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after Delete: expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, KeyMoodHistory); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}

	for _, bad := range []string{"", "../etc", "a/b"} {
		if err := s.Save(ctx, bad, []byte(`{}`)); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Save(%q): expected ErrInvalidKey, got %v", bad, err)
		}
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := NewFileStore(dir)
	exerciseStore(t, s)

	if err := s.Save(context.Background(), KeyUsers, []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	// Verify file path layout
	if _, err := os.Stat(filepath.Join(dir, "users.json")); err != nil {
		t.Errorf("expected users.json: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected no leftover temp files, got %d entries", len(entries))
	}
}

func TestLoadJSON(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	type doc struct {
		Name string `json:"name"`
	}

	if _, ok, err := LoadJSON[doc](ctx, s, KeySession); ok || err != nil {
		t.Errorf("absent key: ok=%v err=%v", ok, err)
	}

	if err := SaveJSON(ctx, s, KeySession, doc{Name: "Ada"}); err != nil {
		t.Fatal(err)
	}
	got, ok, err := LoadJSON[doc](ctx, s, KeySession)
	if err != nil || !ok || got.Name != "Ada" {
		t.Errorf("LoadJSON = %+v, %v, %v", got, ok, err)
	}

	if err := s.Save(ctx, KeySession, []byte(`{"name": `)); err != nil {
		t.Fatal(err)
	}
	got, ok, err = LoadJSON[doc](ctx, s, KeySession)
	if err != nil {
		t.Fatalf("malformed document should not be an error, got %v", err)
	}
	if ok || got.Name != "" {
		t.Errorf("malformed document should read as absent, got %+v ok=%v", got, ok)
	}

	// Valid JSON of the wrong shape is also treated as absent.
	if err := s.Save(ctx, KeySession, []byte(`[1,2,3]`)); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := LoadJSON[doc](ctx, s, KeySession); ok {
		t.Error("expected wrong-shape document to read as absent")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	cfg := config.DefaultConfig()
	cfg.Store.Dir = t.TempDir()
	s, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open(file): %v", err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("expected *FileStore, got %T", s)
	}

	cfg.Store.Backend = config.BackendMemory
	s, err = Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open(memory): %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("expected *MemoryStore, got %T", s)
	}

	// Misconfigured backends fail before any network access.
	for _, backend := range []string{config.BackendPostgres, config.BackendS3, config.BackendGCS} {
		cfg := config.DefaultConfig()
		cfg.Store.Backend = backend
		s, err := Open(ctx, cfg)
		if err == nil {
			t.Errorf("Open(%s) with empty settings: expected error", backend)
		}
		if s != nil {
			t.Errorf("Open(%s): expected nil store on error, got %T", backend, s)
		}
	}

	cfg.Store.Backend = "floppy"
	if _, err := Open(ctx, cfg); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestNewRedisStoreRequiresAddr(t *testing.T) {
	if _, err := NewRedisStore(context.Background(), RedisConfig{}); err == nil {
		t.Error("expected error for empty addr")
	}
}

func TestSQLStoreBind(t *testing.T) {
	pg := &SQLStore{dialect: platform.Postgres}
	if got := pg.bind("a = ? AND b = ?"); got != "a = $1 AND b = $2" {
		t.Errorf("bind = %q", got)
	}
	lite := &SQLStore{dialect: platform.SQLite}
	if got := lite.bind("a = ?"); got != "a = ?" {
		t.Errorf("bind = %q", got)
	}
}
