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

// NewAccount registers an account's type with the registry.
type NewAccount struct{}

func (NewAccount) Type() protocol.ActionType { return protocol.ActionTypeNewAccount }

func (NewAccount) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.NewAccount)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	if err := st.RequireGovernance(); err != nil {
		return err
	}
	if err := protocol.CheckName(b.Account); err != nil {
		return err
	}
	if b.AccountType > protocol.AccountTypeService {
		return errors.BadRequest.WithFormat("unknown account type %d", b.AccountType)
	}
	return nil
}

func (NewAccount) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.NewAccount)
	return st.Registry.Register(st.Store(), b.Account, b.AccountType)
}
