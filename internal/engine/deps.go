// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package engine

import (
	"gitlab.com/tonomy/economy/pkg/database/keyvalue"
	"gitlab.com/tonomy/economy/protocol"
)

// TokenLedger moves value. Every method takes the engine's change set so
// ledger writes commit or roll back with the action that caused them.
type TokenLedger interface {
	Transfer(kv keyvalue.Store, from, to protocol.Name, quantity protocol.Asset, memo string) error
	BalanceOf(kv keyvalue.Store, owner protocol.Name, symbol protocol.Symbol) (protocol.Asset, error)
	MigrateStats(kv keyvalue.Store) error
	MigrateAccount(kv keyvalue.Store, owner protocol.Name) error
}

// Registry resolves account types. The resource market only grants RAM to
// app accounts.
type Registry interface {
	Register(kv keyvalue.Store, name protocol.Name, typ protocol.AccountType) error
	AccountType(kv keyvalue.Store, name protocol.Name) (protocol.AccountType, error)
}

// ResourceLimits tracks per-account resource allotments.
type ResourceLimits interface {
	GetLimits(kv keyvalue.Store, name protocol.Name) (protocol.ResourceLimit, error)
	SetLimits(kv keyvalue.Store, name protocol.Name, lim protocol.ResourceLimit) error
}
