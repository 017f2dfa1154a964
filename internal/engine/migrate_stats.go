// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package engine

import (
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

// MigrateStats copies the pre-rebrand currency's supply record to the system
// currency.
type MigrateStats struct{}

func (MigrateStats) Type() protocol.ActionType { return protocol.ActionTypeMigrateStats }

func (MigrateStats) Validate(st *StateManager, body protocol.ActionBody) error {
	if _, ok := body.(*protocol.MigrateStats); !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", &protocol.MigrateStats{}, body)
	}
	return st.RequireGovernance()
}

func (MigrateStats) Execute(st *StateManager, body protocol.ActionBody) error {
	return st.Ledger.MigrateStats(st.Store())
}
