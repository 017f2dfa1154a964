// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package badger

import (
	"os"
	"sync"
	"time"

	"github.com/dgraph-io/badger"
	"gitlab.com/tonomy/economy/pkg/database"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue"
	"gitlab.com/tonomy/economy/pkg/errors"
	"golang.org/x/exp/slog"
)

// Database is a Badger-backed key-value store.
type Database struct {
	badger *badger.DB
	ready  bool
	mu     sync.RWMutex
}

var _ keyvalue.Beginner = (*Database)(nil)

func New(filepath string) (*Database, error) {
	// Make sure all directories exist
	err := os.MkdirAll(filepath, 0700)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("open badger: create %q: %w", filepath, err)
	}

	opts := badger.DefaultOptions(filepath)
	opts = opts.WithLogger(slogger{})

	d := new(Database)
	d.badger, err = badger.Open(opts)
	if err != nil {
		return nil, err
	}
	d.ready = true

	// Run GC every hour
	go d.gc()

	return d, nil
}

func (d *Database) key(key *database.Key) []byte {
	h := key.Hash()
	return h[:]
}

// Begin begins a change set. Writes are buffered and flushed as a single
// Badger write batch on commit.
func (d *Database) Begin(writable bool) keyvalue.ChangeSet {
	rd := d.badger.NewTransaction(false)
	return &changeSet{db: d, rd: rd, writable: writable}
}

type entry struct {
	key    *database.Key
	value  []byte
	delete bool
}

type changeSet struct {
	db       *Database
	rd       *badger.Txn
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

	item, err := c.rd.Get(c.db.key(key))
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, errors.NotFound.WithFormat("%v not found", key)
	default:
		return nil, errors.UnknownError.WithFormat("get %v: %w", key, err)
	}

	v, err := item.ValueCopy(nil)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("get %v: %w", key, err)
	}
	return v, nil
}

func (c *changeSet) Put(key *database.Key, value []byte) error {
	if !c.writable {
		return errors.NotAllowed.With("change set is not writable")
	}
	if c.pending == nil {
		c.pending = map[[32]byte]entry{}
	}
	v := make([]byte, len(value))
	copy(v, value)
	c.pending[key.Hash()] = entry{key: key, value: v}
	return nil
}

func (c *changeSet) Delete(key *database.Key) error {
	if !c.writable {
		return errors.NotAllowed.With("change set is not writable")
	}
	if c.pending == nil {
		c.pending = map[[32]byte]entry{}
	}
	c.pending[key.Hash()] = entry{key: key, delete: true}
	return nil
}

func (c *changeSet) Commit() error {
	defer c.Discard()
	pending := c.pending
	c.pending = nil
	if len(pending) == 0 {
		return nil
	}

	l, err := c.db.lock(false)
	if err != nil {
		return err
	}
	defer l.Unlock()

	// Use a write batch to work around Badger's transaction size limits
	wr := c.db.badger.NewWriteBatch()
	for _, e := range pending {
		if e.delete {
			err = wr.Delete(c.db.key(e.key))
		} else {
			err = wr.Set(c.db.key(e.key), e.value)
		}
		if err != nil {
			return err
		}
	}
	return wr.Flush()
}

func (c *changeSet) Discard() {
	c.pending = nil
	c.rd.Discard()
}

// Close closes the underlying database.
func (d *Database) Close() error {
	l, err := d.lock(true)
	if err != nil {
		return err
	}
	defer l.Unlock()

	d.ready = false
	return d.badger.Close()
}

func (d *Database) gc() {
	for {
		time.Sleep(time.Hour)

		// Still open?
		l, err := d.lock(false)
		if err != nil {
			return
		}

		// Run GC if 50% space could be reclaimed
		err = d.badger.RunValueLogGC(0.5)
		if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
			slog.Error("Badger GC failed", "error", err, "module", "badger")
		}

		l.Unlock()
	}
}

// lock acquires the ready mutex and checks for readiness. This prevents race
// conditions between Get/Put and Close, which can cause panics.
func (d *Database) lock(exclusive bool) (sync.Locker, error) {
	var l sync.Locker = &d.mu
	if !exclusive {
		l = d.mu.RLocker()
	}

	l.Lock()
	if !d.ready {
		l.Unlock()
		return nil, errors.NotReady.With("badger: database not open")
	}
	return l, nil
}
