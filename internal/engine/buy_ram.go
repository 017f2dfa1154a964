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

// BuyRam converts a token payment into a RAM allotment for an app account.
type BuyRam struct{}

func (BuyRam) Type() protocol.ActionType { return protocol.ActionTypeBuyRam }

func (BuyRam) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.BuyRam)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	if err := st.RequireAuthority(b.Buyer); err != nil {
		return err
	}
	if err := protocol.CheckName(b.Payer); err != nil {
		return err
	}
	return protocol.CheckQuantity(b.Quantity, protocol.TONO)
}

func (BuyRam) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.BuyRam)

	typ, err := st.Registry.AccountType(st.Store(), b.Buyer)
	if err != nil {
		return err
	}
	if typ != protocol.AccountTypeApp {
		return errors.Unauthorized.WithFormat("only app accounts can buy RAM, %s is %v", b.Buyer, typ)
	}

	cfg, err := st.ResourceConfig()
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return errors.NotReady.With("resource market is not configured")
		}
		return err
	}

	bytes := protocol.MulFloor(b.Quantity.Amount, cfg.RamPrice/(1+cfg.RamFee))
	if bytes <= 0 {
		return errors.BadRequest.With("payment too small to buy any RAM")
	}
	if cfg.TotalRamUsed+uint64(bytes) > cfg.TotalRamAvailable {
		return errors.InsufficientFunds.WithFormat("not enough RAM available: want %d bytes, have %d", bytes, cfg.TotalRamAvailable-cfg.TotalRamUsed)
	}
	cfg.TotalRamUsed += uint64(bytes)
	if err := st.PutResourceConfig(cfg); err != nil {
		return err
	}

	lim, err := st.Limits.GetLimits(st.Store(), b.Buyer)
	if err != nil {
		return err
	}
	lim.RAM += bytes
	if err := st.Limits.SetLimits(st.Store(), b.Buyer, lim); err != nil {
		return err
	}

	st.Transfer(b.Payer, protocol.GovernanceAccount, b.Quantity, "buy ram")
	return nil
}
