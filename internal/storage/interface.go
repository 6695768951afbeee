package storage

import "errors"

// ErrKeyNotFound is returned by Get for keys that have never been written.
var ErrKeyNotFound = errors.New("key not found")

// Provider is a scoped string-keyed store holding one JSON payload per
// collection. There are no transactions and no atomic multi-key writes;
// callers own any cross-key consistency.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value access
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error

	// Utils
	GetConfigPath() string
}
