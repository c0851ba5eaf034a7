package snapshot

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/minio/blake2b-simd"

	"github.com/arborix/arbor/order"
	"github.com/arborix/arbor/treemap"
	"github.com/arborix/arbor/vector"
)

// Config carries the store and optional cache the save and load
// functions work through. A nil Cache disables caching.
type Config struct {
	Store Store
	Cache Cache
}

// addressOf is the content address of encoded bytes.
func addressOf(encoded []byte) string {
	hash := blake2b.Sum256(encoded)
	return base64.RawURLEncoding.EncodeToString(hash[:])
}

func save(ctx context.Context, cfg Config, encoded []byte, decoded interface{}) (string, error) {
	n := addressOf(encoded)
	if cfg.Cache != nil && cfg.Cache.Contains(n) {
		return n, nil
	}
	if err := cfg.Store.Store(ctx, n, encoded); err != nil {
		return "", fmt.Errorf("store %s: %w", n, err)
	}
	if cfg.Cache != nil {
		cfg.Cache.Add(n, decoded)
	}
	return n, nil
}

// SaveMap encodes m with codec and stores it under its content
// address, which it returns. Saving an equal map again stores nothing
// new.
func SaveMap[K, V any](ctx context.Context, cfg Config, codec treemap.Codec[K, V], m *treemap.Map[K, V]) (string, error) {
	encoded, err := codec.Encode(m)
	if err != nil {
		return "", fmt.Errorf("encode map: %w", err)
	}
	return save(ctx, cfg, encoded, m)
}

// LoadMap fetches the snapshot stored under name and decodes it into a
// map ordered by ord. The ordering must match the one the map was
// saved with.
func LoadMap[K, V any](ctx context.Context, cfg Config, codec treemap.Codec[K, V], ord order.Ordering[K], name string) (*treemap.Map[K, V], error) {
	if cfg.Cache != nil {
		if cached, ok := cfg.Cache.Get(name); ok {
			if m, ok := cached.(*treemap.Map[K, V]); ok {
				return m, nil
			}
		}
	}
	encoded, err := cfg.Store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	m, err := codec.Decode(encoded, ord)
	if err != nil {
		return nil, fmt.Errorf("decode map %s: %w", name, err)
	}
	if cfg.Cache != nil {
		cfg.Cache.Add(name, m)
	}
	return m, nil
}

// SaveVector encodes v with codec and stores it under its content
// address, which it returns.
func SaveVector[T any](ctx context.Context, cfg Config, codec vector.Codec[T], v *vector.Vector[T]) (string, error) {
	encoded, err := codec.Encode(v)
	if err != nil {
		return "", fmt.Errorf("encode vector: %w", err)
	}
	return save(ctx, cfg, encoded, v)
}

// LoadVector fetches the snapshot stored under name and decodes it
// into a vector.
func LoadVector[T any](ctx context.Context, cfg Config, codec vector.Codec[T], name string) (*vector.Vector[T], error) {
	if cfg.Cache != nil {
		if cached, ok := cfg.Cache.Get(name); ok {
			if v, ok := cached.(*vector.Vector[T]); ok {
				return v, nil
			}
		}
	}
	encoded, err := cfg.Store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	v, err := codec.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode vector %s: %w", name, err)
	}
	if cfg.Cache != nil {
		cfg.Cache.Add(name, v)
	}
	return v, nil
}
