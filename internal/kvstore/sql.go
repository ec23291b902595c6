package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mindwell/mindwell/internal/platform"
)

// SQLStore implements Store on the kv_store table of a Postgres or SQLite
// database. Documents are stored as TEXT and are not validated on write.
type SQLStore struct {
	db      *sql.DB
	dialect platform.Dialect
}

// OpenPostgres connects to dsn, runs migrations and returns a store.
func OpenPostgres(ctx context.Context, dsn string) (*SQLStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is empty")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return newSQLStore(ctx, db, platform.Postgres)
}

// OpenSQLite opens (creating if needed) the database file at path, runs
// migrations and returns a store.
func OpenSQLite(ctx context.Context, path string) (*SQLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return newSQLStore(ctx, db, platform.SQLite)
}

func newSQLStore(ctx context.Context, db *sql.DB, dialect platform.Dialect) (*SQLStore, error) {
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}
	if err := platform.AutoMigrate(db, dialect); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLStore{db: db, dialect: dialect}, nil
}

// bind rewrites ? placeholders into $n for Postgres.
func (s *SQLStore) bind(query string) string {
	if s.dialect != platform.Postgres {
		return query
	}
	out := make([]byte, 0, len(query)+8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			out = append(out, fmt.Sprintf("$%d", n)...)
			continue
		}
		out = append(out, query[i])
	}
	return string(out)
}

func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	var payload string
	err := s.db.QueryRowContext(ctx, s.bind(`SELECT payload FROM kv_store WHERE store_key = ?`), key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return []byte(payload), nil
}

func (s *SQLStore) Save(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, s.bind(`
		INSERT INTO kv_store (store_key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (store_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`),
		key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, s.bind(`DELETE FROM kv_store WHERE store_key = ?`), key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error { return s.db.Close() }
