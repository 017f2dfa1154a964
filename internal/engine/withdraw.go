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

// Withdraw claims everything the holder is currently entitled to across all
// allocations, as one aggregate transfer. Fully claimed allocations are
// erased.
type Withdraw struct{}

func (Withdraw) Type() protocol.ActionType { return protocol.ActionTypeWithdraw }

func (Withdraw) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.Withdraw)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	return st.RequireAuthority(b.Holder)
}

func (Withdraw) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.Withdraw)

	settings, err := st.VestingSettings()
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return errors.NotReady.With("vesting settings have not been set")
		}
		return err
	}
	if st.Now.Before(settings.LaunchDate) {
		return errors.NotReady.WithFormat("withdrawals open at launch, %v", settings.LaunchDate.UTC())
	}

	set, err := st.VestingAllocations(b.Holder)
	if err != nil {
		return err
	}

	total := int64(0)
	var done []uint64
	for _, alloc := range set.Allocations {
		claimable := alloc.Claimable(settings.LaunchDate, st.Now)
		delta := claimable - alloc.TokensClaimed.Amount
		if delta <= 0 {
			continue
		}
		alloc.TokensClaimed.Amount += delta
		total += delta
		if alloc.TokensClaimed.Amount == alloc.TokensAllocated.Amount {
			done = append(done, alloc.ID)
		}
	}
	for _, id := range done {
		set.Remove(id)
	}

	if err := st.PutVestingAllocations(b.Holder, set); err != nil {
		return err
	}

	if total > 0 {
		st.Transfer(protocol.VestingContract, b.Holder, protocol.NewAsset(total, protocol.TONO), "withdraw vested tokens")
	}
	return nil
}
