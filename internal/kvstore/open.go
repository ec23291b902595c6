package kvstore

import (
	"context"
	"fmt"

	"github.com/mindwell/mindwell/pkg/config"
)

// Open constructs the backend selected by cfg.Store.Backend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	sc := cfg.Store

	var (
		store Store
		err   error
	)
	switch sc.Backend {
	case config.BackendFile, "":
		return NewFileStore(cfg.StoreDir()), nil
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendRedis:
		var s *RedisStore
		s, err = NewRedisStore(ctx, RedisConfig{
			Addr:     sc.Redis.Addr,
			Password: sc.Redis.Password,
			DB:       sc.Redis.DB,
			Prefix:   sc.Redis.Prefix,
		})
		store = s
	case config.BackendPostgres:
		var s *SQLStore
		s, err = OpenPostgres(ctx, sc.Postgres.DSN)
		store = s
	case config.BackendSQLite:
		var s *SQLStore
		s, err = OpenSQLite(ctx, cfg.SQLitePath())
		store = s
	case config.BackendS3:
		var s *S3Store
		s, err = NewS3Store(ctx, S3Config{
			Bucket:    sc.S3.Bucket,
			Region:    sc.S3.Region,
			Endpoint:  sc.S3.Endpoint,
			AccessKey: sc.S3.AccessKeyID,
			SecretKey: sc.S3.SecretAccessKey,
			Prefix:    sc.S3.Prefix,
		})
		store = s
	case config.BackendGCS:
		var s *GCSStore
		s, err = NewGCSStore(ctx, sc.GCS.Bucket, sc.GCS.Prefix)
		store = s
	default:
		return nil, fmt.Errorf("unknown store backend %q", sc.Backend)
	}

	// A failed constructor returns a typed nil; keep it out of the interface.
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", sc.Backend, err)
	}
	return store, nil
}
