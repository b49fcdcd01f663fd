package repository

import (
	"context"
	"time"

	bolt "go.etcd.io/bbolt"
)

const boltBucket = "compareshop"

// BoltStore persists blobs in an embedded bbolt file. This is the default
// backend: the app serves a single user, so a local file beats running a
// server-side store.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the database file and ensures the bucket
// exists. The 1s timeout prevents hanging forever on a stale flock from a
// crashed process.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Load returns the blob stored under key, or (nil, nil) if absent.
func (s *BoltStore) Load(_ context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(boltBucket)).Get([]byte(key)); v != nil {
			blob = make([]byte, len(v))
			copy(blob, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// Save writes the blob under key in a single write transaction.
func (s *BoltStore) Save(_ context.Context, key string, blob []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(key), blob)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

var _ KVStore = (*BoltStore)(nil)
