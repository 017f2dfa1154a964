// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package memory

import (
	"sync"

	"gitlab.com/tonomy/economy/pkg/database"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue"
	"gitlab.com/tonomy/economy/pkg/errors"
)

// Database is an in-memory key-value store. It is safe for concurrent use,
// though the engine serializes all writes.
type Database struct {
	mu      sync.RWMutex
	entries map[[32]byte][]byte
}

var _ keyvalue.Beginner = (*Database)(nil)

func New() *Database {
	return &Database{entries: map[[32]byte][]byte{}}
}

// Begin begins a change set.
func (d *Database) Begin(writable bool) keyvalue.ChangeSet {
	return &changeSet{db: d, writable: writable}
}

func (d *Database) get(key *database.Key) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.entries[key.Hash()]
	if !ok {
		return nil, errors.NotFound.WithFormat("%v not found", key)
	}
	return v, nil
}

func (d *Database) put(entries map[[32]byte]entry) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for h, e := range entries {
		if e.delete {
			delete(d.entries, h)
		} else {
			d.entries[h] = e.value
		}
	}
	return nil
}

type entry struct {
	value  []byte
	delete bool
}

type changeSet struct {
	db       *Database
	writable bool
	pending  map[[32]byte]entry
}

var _ keyvalue.ChangeSet = (*changeSet)(nil)

func (c *changeSet) Get(key *database.Key) ([]byte, error) {
	if e, ok := c.pending[key.Hash()]; ok {
		if e.delete {
			return nil, errors.NotFound.WithFormat("%v not found", key)
		}
		return e.value, nil
	}
	return c.db.get(key)
}

func (c *changeSet) Put(key *database.Key, value []byte) error {
	if !c.writable {
		return errors.NotAllowed.With("change set is not writable")
	}
	if c.pending == nil {
		c.pending = map[[32]byte]entry{}
	}
	// Copy the value so the caller can reuse its buffer
	v := make([]byte, len(value))
	copy(v, value)
	c.pending[key.Hash()] = entry{value: v}
	return nil
}

func (c *changeSet) Delete(key *database.Key) error {
	if !c.writable {
		return errors.NotAllowed.With("change set is not writable")
	}
	if c.pending == nil {
		c.pending = map[[32]byte]entry{}
	}
	c.pending[key.Hash()] = entry{delete: true}
	return nil
}

func (c *changeSet) Commit() error {
	pending := c.pending
	c.pending = nil
	if len(pending) == 0 {
		return nil
	}
	return c.db.put(pending)
}

func (c *changeSet) Discard() {
	c.pending = nil
}
