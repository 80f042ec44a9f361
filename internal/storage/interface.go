package storage

import "errors"

// ErrNotFound is returned by Provider.Get when nothing is stored under a key.
var ErrNotFound = errors.New("key not found")

// Provider is a flat key-value store. Values are opaque JSON documents; every
// Put replaces the whole value stored under the key.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Values
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
