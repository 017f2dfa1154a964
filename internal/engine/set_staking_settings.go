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

// SetStakingSettings sets the yearly stake pool the APY is derived from.
type SetStakingSettings struct{}

func (SetStakingSettings) Type() protocol.ActionType { return protocol.ActionTypeSetStakingSettings }

func (SetStakingSettings) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.SetStakingSettings)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	if err := st.RequireGovernance(); err != nil {
		return err
	}
	return protocol.CheckQuantity(b.YearlyStakePool, protocol.TONO)
}

func (SetStakingSettings) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.SetStakingSettings)

	settings, err := st.stakingSettings()
	if err != nil {
		return err
	}
	settings.YearlyStakePool = b.YearlyStakePool
	return st.PutStakingSettings(settings)
}
