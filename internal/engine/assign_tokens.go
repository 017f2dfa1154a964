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

// AssignTokens creates a vesting allocation and moves the tokens into
// custody.
type AssignTokens struct{}

func (AssignTokens) Type() protocol.ActionType { return protocol.ActionTypeAssignTokens }

func (AssignTokens) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.AssignTokens)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	if err := st.RequireGovernance(); err != nil {
		return err
	}
	if err := protocol.CheckName(b.Sender); err != nil {
		return err
	}
	if err := protocol.CheckName(b.Holder); err != nil {
		return err
	}
	if err := protocol.CheckQuantity(b.Amount, protocol.TONO); err != nil {
		return err
	}
	if _, ok := protocol.VestingCategories[b.Category]; !ok {
		return errors.BadRequest.WithFormat("unknown vesting category %d", b.Category)
	}
	if _, deprecated := protocol.DeprecatedCategories[b.Category]; deprecated {
		return errors.BadRequest.WithFormat("vesting category %d is deprecated", b.Category)
	}
	return nil
}

func (AssignTokens) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.AssignTokens)

	settings, err := st.VestingSettings()
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return errors.NotReady.With("vesting settings have not been set")
		}
		return err
	}
	if st.Now.Before(settings.SalesStartDate) {
		return errors.NotReady.WithFormat("sale has not started, starts %v", settings.SalesStartDate.UTC())
	}

	set, err := st.VestingAllocations(b.Holder)
	if err != nil {
		return err
	}
	if len(set.Allocations) >= st.Params.VestingMaxAllocations {
		return errors.BadRequest.WithFormat("%s already has %d allocations", b.Holder, len(set.Allocations))
	}

	set.Allocations = append(set.Allocations, &protocol.VestedAllocation{
		ID:                 set.NextID,
		Holder:             b.Holder,
		TokensAllocated:    b.Amount,
		TokensClaimed:      protocol.Zero(b.Amount.Symbol),
		TimeSinceSaleStart: st.Now.Sub(settings.SalesStartDate),
		Category:           b.Category,
	})
	set.NextID++
	if err := st.PutVestingAllocations(b.Holder, set); err != nil {
		return err
	}

	st.Transfer(b.Sender, protocol.VestingContract, b.Amount, "assign vested tokens")
	return nil
}
