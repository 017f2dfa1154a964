// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package database

import (
	"encoding/json"

	"gitlab.com/tonomy/economy/pkg/database"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue"
	"gitlab.com/tonomy/economy/pkg/errors"
)

// Database provides typed access to the engine's persisted state over any
// key-value backend.
type Database struct {
	store keyvalue.Beginner
}

func New(store keyvalue.Beginner) *Database {
	return &Database{store: store}
}

// Begin begins a batch. Every action runs inside exactly one writable batch;
// commit is all-or-nothing.
func (d *Database) Begin(writable bool) *Batch {
	return &Batch{kv: d.store.Begin(writable)}
}

// Batch is a typed view over one key-value change set.
type Batch struct {
	kv keyvalue.ChangeSet
}

// Store exposes the underlying change set so collaborators (token ledger,
// account registry) write into the same atomic commit.
func (b *Batch) Store() keyvalue.Store { return b.kv }

func (b *Batch) Commit() error { return b.kv.Commit() }
func (b *Batch) Discard()      { b.kv.Discard() }

// GetJSON loads and decodes a record. Collaborators that share the engine's
// change set use it for their own keys.
func GetJSON[T any](kv keyvalue.Store, key *database.Key) (*T, error) {
	raw, err := kv.Get(key)
	if err != nil {
		return nil, err
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, errors.EncodingError.WithFormat("decode %v: %w", key, err)
	}
	return v, nil
}

// PutJSON encodes and stores a record.
func PutJSON(kv keyvalue.Store, key *database.Key, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.EncodingError.WithFormat("encode %v: %w", key, err)
	}
	return kv.Put(key, raw)
}
