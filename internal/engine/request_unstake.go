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

// RequestUnstake starts the release period for an allocation. Yield accrual
// on the allocation stops immediately.
type RequestUnstake struct{}

func (RequestUnstake) Type() protocol.ActionType { return protocol.ActionTypeRequestUnstake }

func (RequestUnstake) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.RequestUnstake)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	return st.RequireAuthority(b.Staker)
}

func (RequestUnstake) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.RequestUnstake)

	set, err := st.StakingAllocations(b.Staker)
	if err != nil {
		return err
	}
	alloc := set.Find(b.AllocationID)
	if alloc == nil {
		return errors.NotFound.WithFormat("allocation %d not found for %s", b.AllocationID, b.Staker)
	}
	if alloc.UnstakeRequested {
		return errors.Conflict.With("unstake already requested")
	}
	if unlock := alloc.StakeTime.Add(st.Params.LockupPeriod); st.Now.Before(unlock) {
		return errors.NotReady.WithFormat("tokens are still locked up until %v", unlock.UTC())
	}

	alloc.UnstakeRequested = true
	alloc.UnstakeTime = st.Now
	if err := st.PutStakingAllocations(b.Staker, set); err != nil {
		return err
	}

	settings, err := st.stakingSettings()
	if err != nil {
		return err
	}
	settings.TotalStaked = settings.TotalStaked.MustSub(alloc.TokensStaked)
	settings.TotalReleasing = settings.TotalReleasing.MustAdd(alloc.TokensStaked)
	return st.PutStakingSettings(settings)
}
