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

// SellRam releases RAM back to the market. Quantity is the token amount
// refunded; the bytes released carry the fee in the opposite direction of
// the purchase.
type SellRam struct{}

func (SellRam) Type() protocol.ActionType { return protocol.ActionTypeSellRam }

func (SellRam) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.SellRam)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	if err := st.RequireAuthority(b.Seller); err != nil {
		return err
	}
	if err := protocol.CheckName(b.Payer); err != nil {
		return err
	}
	return protocol.CheckQuantity(b.Quantity, protocol.TONO)
}

func (SellRam) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.SellRam)

	typ, err := st.Registry.AccountType(st.Store(), b.Seller)
	if err != nil {
		return err
	}
	if typ != protocol.AccountTypeApp {
		return errors.Unauthorized.WithFormat("only app accounts can sell RAM, %s is %v", b.Seller, typ)
	}

	cfg, err := st.ResourceConfig()
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return errors.NotReady.With("resource market is not configured")
		}
		return err
	}

	bytes := protocol.MulFloor(b.Quantity.Amount, cfg.RamPrice*(1+cfg.RamFee))
	if bytes <= 0 {
		return errors.BadRequest.With("refund too small to release any RAM")
	}
	if uint64(bytes) > cfg.TotalRamUsed {
		return errors.InsufficientFunds.WithFormat("cannot release %d bytes, only %d in use", bytes, cfg.TotalRamUsed)
	}

	lim, err := st.Limits.GetLimits(st.Store(), b.Seller)
	if err != nil {
		return err
	}
	if lim.RAM < bytes {
		return errors.InsufficientFunds.WithFormat("%s holds %d bytes of RAM, cannot sell %d", b.Seller, lim.RAM, bytes)
	}
	lim.RAM -= bytes
	if err := st.Limits.SetLimits(st.Store(), b.Seller, lim); err != nil {
		return err
	}

	cfg.TotalRamUsed -= uint64(bytes)
	if err := st.PutResourceConfig(cfg); err != nil {
		return err
	}

	st.Transfer(protocol.GovernanceAccount, b.Payer, b.Quantity, "sell ram")
	return nil
}
