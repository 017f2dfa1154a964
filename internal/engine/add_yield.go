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

// AddYield funds the staking yield pool.
type AddYield struct{}

func (AddYield) Type() protocol.ActionType { return protocol.ActionTypeAddYield }

func (AddYield) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.AddYield)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	if err := st.RequireAuthority(b.Sender); err != nil {
		return err
	}
	return protocol.CheckQuantity(b.Quantity, protocol.TONO)
}

func (AddYield) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.AddYield)

	settings, err := st.stakingSettings()
	if err != nil {
		return err
	}
	settings.CurrentYieldPool = settings.CurrentYieldPool.MustAdd(b.Quantity)
	if err := st.PutStakingSettings(settings); err != nil {
		return err
	}

	st.Transfer(b.Sender, protocol.StakingContract, b.Quantity, "add yield")
	return nil
}
