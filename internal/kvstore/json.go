package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// LoadJSON decodes the document under key into a T. ok is false when the key
// is absent or when the stored document is not valid JSON for T; corrupt
// documents are logged and otherwise treated as missing. err is only set for
// backend failures.
func LoadJSON[T any](ctx context.Context, s Store, key string) (v T, ok bool, err error) {
	data, err := s.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("load %s: %w", key, err)
	}

	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		slog.WarnContext(ctx, "ignoring malformed stored document", "key", key, "error", err)
		return v, false, nil
	}
	return decoded, true, nil
}

// SaveJSON encodes v and stores it under key.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Save(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
