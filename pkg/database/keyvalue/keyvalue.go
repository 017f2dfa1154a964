// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keyvalue

import "gitlab.com/tonomy/economy/pkg/database"

// Store reads and writes key-value entries.
type Store interface {
	// Get loads a value. Get returns errors.NotFound if the key has no value.
	Get(key *database.Key) ([]byte, error)

	// Put stores a value.
	Put(key *database.Key, value []byte) error

	// Delete removes a value.
	Delete(key *database.Key) error
}

// ChangeSet is a key-value change set. Writes are buffered until Commit and
// lost on Discard, giving every state transition all-or-nothing semantics.
type ChangeSet interface {
	Store

	// Commit commits pending changes.
	Commit() error

	// Discard discards pending changes.
	Discard()
}

// A Beginner can begin key-value change sets.
type Beginner interface {
	// Begin begins a change set. A read-only change set rejects writes.
	Begin(writable bool) ChangeSet
}
