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

// MigrateAccount copies one account's pre-rebrand balance row to the system
// currency.
type MigrateAccount struct{}

func (MigrateAccount) Type() protocol.ActionType { return protocol.ActionTypeMigrateAccount }

func (MigrateAccount) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.MigrateAccount)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	if err := st.RequireGovernance(); err != nil {
		return err
	}
	return protocol.CheckName(b.Owner)
}

func (MigrateAccount) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.MigrateAccount)
	return st.Ledger.MigrateAccount(st.Store(), b.Owner)
}
