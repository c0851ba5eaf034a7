// Package snapshot saves and loads encoded collections through a
// pluggable byte store, addressing each snapshot by the hash of its
// bytes. Because encodings are stable for equal contents, equal
// collections share one stored blob, and a name can be handed to
// another process as a compact identity for the whole value.
package snapshot

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

// Store is a byte store for encoded snapshots. Implementations must
// tolerate Store being called again with a key they already hold; the
// value bytes for a key never differ.
type Store interface {
	Store(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

type memoryStore struct {
	entries map[string][]byte
	l       sync.Mutex
}

// NewMemoryStore provides a Store that keeps snapshots in a map,
// usually for testing.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (ms *memoryStore) Store(ctx context.Context, key string, value []byte) error {
	ms.l.Lock()
	if ms.entries == nil {
		ms.entries = map[string][]byte{key: value}
	} else {
		ms.entries[key] = value
	}
	ms.l.Unlock()
	return nil
}

func (ms *memoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	ms.l.Lock()
	value, ok := ms.entries[key]
	ms.l.Unlock()
	if !ok {
		return nil, fmt.Errorf("memoryStore entry not found for %s", key)
	}
	return value, nil
}

// Cache caches decoded collections by snapshot name. It is also used
// to skip re-storing snapshots, so switch or invalidate the Cache when
// the Store is changed.
type Cache interface {
	// Add adds a freshly saved or loaded collection to the cache.
	Add(key, value interface{})
	// Contains indicates the snapshot with the given name has
	// already been stored.
	Contains(key interface{}) bool
	// Get retrieves the already-decoded collection with the given
	// name, if cached.
	Get(key interface{}) (value interface{}, ok bool)
}

// NewCache creates a new ARC-based cache of the given size. One cache
// can be shared by any number of collections.
func NewCache(size int) Cache {
	cache, err := lru.NewARC(size)
	if err != nil {
		panic(err)
	}
	return cache
}
