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

// ReleaseToken finalizes an unstake after the release period, deleting the
// allocation and returning its tokens.
type ReleaseToken struct{}

func (ReleaseToken) Type() protocol.ActionType { return protocol.ActionTypeReleaseToken }

func (ReleaseToken) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.ReleaseToken)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	return st.RequireAuthority(b.Staker)
}

func (ReleaseToken) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.ReleaseToken)

	set, err := st.StakingAllocations(b.Staker)
	if err != nil {
		return err
	}
	alloc := set.Find(b.AllocationID)
	if alloc == nil {
		return errors.NotFound.WithFormat("allocation %d not found for %s", b.AllocationID, b.Staker)
	}
	if !alloc.UnstakeRequested {
		return errors.NotReady.With("unstake has not been requested")
	}
	if release := alloc.UnstakeTime.Add(st.Params.ReleasePeriod); st.Now.Before(release) {
		return errors.NotReady.WithFormat("tokens are in the release period until %v", release.UTC())
	}

	set.Remove(alloc.ID)
	if err := st.PutStakingAllocations(b.Staker, set); err != nil {
		return err
	}

	settings, err := st.stakingSettings()
	if err != nil {
		return err
	}
	settings.TotalReleasing = settings.TotalReleasing.MustSub(alloc.TokensStaked)
	if err := st.PutStakingSettings(settings); err != nil {
		return err
	}

	st.Transfer(protocol.StakingContract, b.Staker, alloc.TokensStaked, "unstake tokens")
	return nil
}
