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

// StakeTokens opens a new staking allocation and moves the stake into
// custody.
type StakeTokens struct{}

func (StakeTokens) Type() protocol.ActionType { return protocol.ActionTypeStakeTokens }

func (StakeTokens) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.StakeTokens)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	if err := st.RequireAuthority(b.Staker); err != nil {
		return err
	}
	if err := protocol.CheckQuantity(b.Quantity, protocol.TONO); err != nil {
		return err
	}
	if b.Quantity.Amount < st.Params.MinimumStake {
		return errors.BadRequest.WithFormat("stake below minimum of %v", protocol.NewAsset(st.Params.MinimumStake, protocol.TONO))
	}
	return nil
}

func (StakeTokens) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.StakeTokens)

	set, err := st.StakingAllocations(b.Staker)
	if err != nil {
		return err
	}
	if len(set.Allocations) >= st.Params.StakingMaxAllocations {
		return errors.BadRequest.WithFormat("%s already has %d open allocations", b.Staker, len(set.Allocations))
	}

	set.Allocations = append(set.Allocations, &protocol.StakingAllocation{
		ID:           set.NextID,
		Staker:       b.Staker,
		InitialStake: b.Quantity,
		TokensStaked: b.Quantity,
		StakeTime:    st.Now,
	})
	set.NextID++
	if err := st.PutStakingAllocations(b.Staker, set); err != nil {
		return err
	}

	// Lazily create the per-staker aggregate on first stake
	_, err = st.StakingAccount(b.Staker)
	switch {
	case errors.Is(err, errors.NotFound):
		err = st.PutStakingAccount(&protocol.StakingAccount{
			Staker:     b.Staker,
			TotalYield: protocol.Zero(protocol.TONO),
			LastPayout: st.Now,
		})
		if err != nil {
			return err
		}
	case err != nil:
		return err
	}

	index, err := st.StakerIndex()
	if err != nil {
		return err
	}
	index.Insert(b.Staker)
	if err := st.PutStakerIndex(index); err != nil {
		return err
	}

	settings, err := st.stakingSettings()
	if err != nil {
		return err
	}
	settings.TotalStaked = settings.TotalStaked.MustAdd(b.Quantity)
	if err := st.PutStakingSettings(settings); err != nil {
		return err
	}

	st.Transfer(b.Staker, protocol.StakingContract, b.Quantity, "stake tokens")
	return nil
}
