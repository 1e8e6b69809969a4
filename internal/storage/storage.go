// Package storage provides the synchronous get/set-by-key text store the
// repository writes through on every mutation. Keys map whole serialized
// collections ("users", "items", ...), mirroring the flat key layout the
// platform persists its state under.
package storage

import "errors"

// ErrKeyNotFound is returned by Get for keys that were never set.
var ErrKeyNotFound = errors.New("storage key not found")

// KV is a synchronous key-value store. SetMulti must apply all writes or
// none, so a settlement tick never persists a partial state.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	SetMulti(values map[string][]byte) error
	Delete(key string) error
	Close() error
}
