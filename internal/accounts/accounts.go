// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package accounts tracks registered account types and per-account resource
// limits. The resource market consults it to decide who may hold RAM.
package accounts

import (
	records "gitlab.com/tonomy/economy/internal/database"
	"gitlab.com/tonomy/economy/pkg/database"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

// Registry is stateless; all state lives in the store passed to each call.
type Registry struct{}

func New() *Registry { return &Registry{} }

type record struct {
	Type protocol.AccountType `json:"type"`
}

func typeKey(name protocol.Name) *database.Key {
	return database.NewKey("Account", "Type", string(name))
}

func limitsKey(name protocol.Name) *database.Key {
	return database.NewKey("Account", "Limits", string(name))
}

// Register records an account's type. Re-registering with a different type is
// a conflict.
func (r *Registry) Register(kv keyvalue.Store, name protocol.Name, typ protocol.AccountType) error {
	if err := protocol.CheckName(name); err != nil {
		return err
	}
	existing, err := records.GetJSON[record](kv, typeKey(name))
	switch {
	case err == nil:
		if existing.Type != typ {
			return errors.Conflict.WithFormat("%s is already registered as %v", name, existing.Type)
		}
		return nil
	case !errors.Is(err, errors.NotFound):
		return err
	}
	return records.PutJSON(kv, typeKey(name), &record{Type: typ})
}

// AccountType returns the registered type of an account.
func (r *Registry) AccountType(kv keyvalue.Store, name protocol.Name) (protocol.AccountType, error) {
	rec, err := records.GetJSON[record](kv, typeKey(name))
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return 0, errors.NotFound.WithFormat("account %s is not registered", name)
		}
		return 0, err
	}
	return rec.Type, nil
}

// GetLimits returns an account's resource limits, zero if none were ever set.
func (r *Registry) GetLimits(kv keyvalue.Store, name protocol.Name) (protocol.ResourceLimit, error) {
	lim, err := records.GetJSON[protocol.ResourceLimit](kv, limitsKey(name))
	switch {
	case err == nil:
		return *lim, nil
	case errors.Is(err, errors.NotFound):
		return protocol.ResourceLimit{}, nil
	default:
		return protocol.ResourceLimit{}, err
	}
}

// SetLimits replaces an account's resource limits.
func (r *Registry) SetLimits(kv keyvalue.Store, name protocol.Name, lim protocol.ResourceLimit) error {
	if lim.RAM < 0 || lim.CPU < 0 || lim.NET < 0 {
		return errors.BadRequest.With("resource limits cannot be negative")
	}
	return records.PutJSON(kv, limitsKey(name), lim)
}
