// Package boltstore provides a store.Store backed by a bbolt database file.
package boltstore

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/codahale/hush/store"
	bolt "go.etcd.io/bbolt"
)

const valuesBucket = "group-keys"

// Store is a store.Store backed by a single bbolt bucket.
type Store struct {
	db  *bolt.DB
	log *slog.Logger
}

// Open opens or creates the database at path.
func Open(path string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("boltstore: open %s: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(valuesBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("boltstore: create bucket: %w", err)
	}

	log.Debug("opened store", "path", path)

	return &Store{db: db, log: log}, nil
}

func (s *Store) Get(key string) ([]byte, error) {
	var v []byte

	if err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(valuesBucket)).Get([]byte(key))
		if b == nil {
			return store.ErrNotFound
		}

		// Values returned by bbolt are only valid for the life of the transaction.
		v = append([]byte(nil), b...)

		return nil
	}); err != nil {
		return nil, err
	}

	s.log.Debug("read value", "key", key)

	return v, nil
}

func (s *Store) Set(key string, value []byte) error {
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(valuesBucket)).Put([]byte(key), value)
	}); err != nil {
		return fmt.Errorf("boltstore: put %q: %w", key, err)
	}

	s.log.Debug("wrote value", "key", key)

	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ store.Store = &Store{}
