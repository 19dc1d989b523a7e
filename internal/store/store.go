// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

// Package store is the BadgerDB document store behind the content API. Each
// collection lives under its own key prefix with goccy/go-json encoded
// values; IDs are server-assigned UUIDs.
package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/contentforge/contentforge/internal/config"
	"github.com/contentforge/contentforge/internal/logging"
	"github.com/contentforge/contentforge/internal/metrics"
)

// Key prefixes for BadgerDB storage. One prefix per collection.
const (
	videoKeyPrefix       = "video:"
	faqKeyPrefix         = "faq:"
	blogKeyPrefix        = "blog:"
	caseStudyKeyPrefix   = "casestudy:"
	careerKeyPrefix      = "career:"
	serviceKeyPrefix     = "service:"
	socialKeyPrefix      = "social:"
	testimonialKeyPrefix = "testimonial:"
	countryStatKeyPrefix = "stats:country:"

	organizationKey = "organization"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Store wraps the BadgerDB instance holding all site content.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the content database. With InMemory set, nothing
// touches disk; tests and throwaway environments use that mode.
func Open(cfg *config.StoreConfig) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", cfg.Path, err)
	}
	logging.Info().Str("path", cfg.Path).Bool("in_memory", cfg.InMemory).Msg("Content store opened")
	return &Store{db: db}, nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// newID returns a fresh document ID.
func newID() string { return uuid.NewString() }

// putDoc encodes doc and writes it at prefix+id.
func putDoc(s *Store, prefix, id string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s%s: %w", prefix, id, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefix+id), data)
	})
	metrics.RecordStoreOp("put", prefix, err)
	return err
}

// getDoc reads and decodes the document at prefix+id.
func getDoc[T any](s *Store, prefix, id string) (*T, error) {
	var doc T
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s%s", ErrNotFound, prefix, id)
		}
		if err != nil {
			return fmt.Errorf("get %s%s: %w", prefix, id, err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &doc)
		})
	})
	metrics.RecordStoreOp("get", prefix, err)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// deleteDoc removes the document at prefix+id. Deleting a missing document
// returns ErrNotFound.
func deleteDoc(s *Store, prefix, id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		key := []byte(prefix + id)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s%s", ErrNotFound, prefix, id)
		} else if err != nil {
			return fmt.Errorf("get %s%s: %w", prefix, id, err)
		}
		return txn.Delete(key)
	})
	metrics.RecordStoreOp("delete", prefix, err)
	return err
}

// listDocs decodes every document under prefix, in key order.
func listDocs[T any](s *Store, prefix string) ([]*T, error) {
	var out []*T
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var doc T
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &doc)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			out = append(out, &doc)
		}
		return nil
	})
	metrics.RecordStoreOp("list", prefix, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// countDocs counts the keys under prefix without decoding values.
func countDocs(s *Store, prefix string) (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
