package store

import (
	"context"
	"encoding/json"
	"errors"

	apperrors "punchclock/internal/errors"
	"punchclock/internal/logging"
)

// Read loads and decodes the JSON value stored under key. When the key is
// absent, or reading or decoding fails, the caller-supplied default is
// returned and the failure is logged; read failures never reach the caller.
func Read[T any](ctx context.Context, s Store, key string, def T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logging.Debugf("store: read %q failed, using default: %v\n", key, err)
		}
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logging.Debugf("store: corrupt value under %q, using default: %v\n", key, err)
		return def
	}
	return value
}

// Write encodes value as JSON and stores it under key. Write failures are
// fatal to the operation and propagate unchanged; there is no retry.
func Write[T any](ctx context.Context, s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apperrors.NewStorageError("encode "+key, err)
	}
	if err := s.Put(ctx, key, raw); err != nil {
		return apperrors.NewStorageError("write "+key, err)
	}
	return nil
}
