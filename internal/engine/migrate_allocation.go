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

// MigrateAllocation re-points a vesting allocation to a new amount and
// category, transferring the difference. The supplied old values must match
// the stored row exactly, guarding against stale migration calls.
type MigrateAllocation struct{}

func (MigrateAllocation) Type() protocol.ActionType { return protocol.ActionTypeMigrateAllocation }

func (MigrateAllocation) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.MigrateAllocation)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	if err := st.RequireGovernance(); err != nil {
		return err
	}
	if err := protocol.CheckName(b.Sender); err != nil {
		return err
	}
	if err := protocol.CheckQuantity(b.NewAmount, protocol.TONO); err != nil {
		return err
	}
	if _, ok := protocol.VestingCategories[b.NewCategory]; !ok {
		return errors.BadRequest.WithFormat("unknown vesting category %d", b.NewCategory)
	}
	if protocol.DeprecatedCategories[b.NewCategory] {
		return errors.BadRequest.WithFormat("vesting category %d is deprecated", b.NewCategory)
	}
	return nil
}

func (MigrateAllocation) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.MigrateAllocation)

	set, err := st.VestingAllocations(b.Holder)
	if err != nil {
		return err
	}
	alloc := set.Find(b.AllocationID)
	if alloc == nil {
		return errors.NotFound.WithFormat("allocation %d not found for %s", b.AllocationID, b.Holder)
	}
	if alloc.TokensAllocated.Amount != b.OldAmount.Amount || !alloc.TokensAllocated.Symbol.Equal(b.OldAmount.Symbol) {
		return errors.Conflict.WithFormat("stored amount %v does not match claimed old amount %v", alloc.TokensAllocated, b.OldAmount)
	}
	if alloc.Category != b.OldCategory {
		return errors.Conflict.WithFormat("stored category %d does not match claimed old category %d", alloc.Category, b.OldCategory)
	}
	if b.NewAmount.Amount < alloc.TokensClaimed.Amount {
		return errors.BadRequest.WithFormat("new amount %v is below the %v already claimed", b.NewAmount, alloc.TokensClaimed)
	}

	delta := b.NewAmount.Amount - alloc.TokensAllocated.Amount
	alloc.TokensAllocated = b.NewAmount
	alloc.Category = b.NewCategory
	if err := st.PutVestingAllocations(b.Holder, set); err != nil {
		return err
	}

	switch {
	case delta > 0:
		st.Transfer(b.Sender, protocol.VestingContract, protocol.NewAsset(delta, protocol.TONO), "migrate allocation top-up")
	case delta < 0:
		st.Transfer(protocol.VestingContract, b.Sender, protocol.NewAsset(-delta, protocol.TONO), "migrate allocation refund")
	}
	return nil
}
