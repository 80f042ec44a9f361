package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/noteboard/internal/logger"
)

// LoadValue decodes the value stored under key into a T. A missing key, a
// failed read, or a value that does not decode all yield def; the caller
// never sees an error.
func LoadValue[T any](p Provider, key string, def T) T {
	data, err := p.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to read stored value, using default", "key", key, "error", err)
		}
		return def
	}

	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("Stored value is corrupted, using default", "key", key, "error", err)
		return def
	}
	return v
}

// SaveValue serializes v and writes it under key.
func SaveValue(p Provider, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := p.Put(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
