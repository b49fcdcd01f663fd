package repository

import "context"

// Logical record keys. The engine persists exactly two blobs: the category
// collection and the currency preference.
const (
	KeyCategories = "categories"
	KeyCurrency   = "currency"
)

// KVStore is the narrow persistence collaborator the engine mirrors its
// state through: opaque JSON blobs keyed by logical record name. Load
// returns (nil, nil) when the key has never been written. The engine loads
// once at startup and saves after every mutation; everything else about the
// backend (file layout, retries, eviction) is the backend's business.
type KVStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Close() error
}
