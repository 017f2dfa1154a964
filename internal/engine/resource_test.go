// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

func (e *env) resourceConfig() *protocol.ResourceConfig {
	e.t.Helper()
	batch := e.db.Begin(false)
	defer batch.Discard()
	cfg, err := batch.ResourceConfig()
	require.NoError(e.t, err)
	return cfg
}

func (e *env) ramOf(name protocol.Name) int64 {
	e.t.Helper()
	batch := e.db.Begin(false)
	defer batch.Discard()
	lim, err := e.registry.GetLimits(batch.Store(), name)
	require.NoError(e.t, err)
	return lim.RAM
}

func TestSetResourceParams(t *testing.T) {
	e := newEnv(t)

	// Governance only
	err := e.exec(alice, &protocol.SetResourceParams{RamPrice: 2, TotalRamAvailable: 1000})
	require.True(t, errors.Is(err, errors.Unauthorized))

	err = e.exec(protocol.GovernanceAccount, &protocol.SetResourceParams{RamPrice: -1})
	require.True(t, errors.Is(err, errors.BadRequest))

	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.SetResourceParams{
		RamPrice: 2, RamFee: 0, TotalRamAvailable: 1000,
	}))
	cfg := e.resourceConfig()
	require.Equal(t, 2.0, cfg.RamPrice)
	require.Equal(t, uint64(1000), cfg.TotalRamAvailable)
	require.Zero(t, cfg.TotalRamUsed)
}

func TestBuyRamArithmetic(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.SetResourceParams{
		RamPrice: 2, RamFee: 0, TotalRamAvailable: 1000,
	}))

	govBefore := e.balance(protocol.GovernanceAccount)

	// price=2.0, fee=0: 100 units buy exactly 200 bytes
	require.NoError(t, e.exec(app, &protocol.BuyRam{
		Payer: app, Buyer: app, Quantity: protocol.NewAsset(100, protocol.TONO),
	}))
	require.Equal(t, int64(200), e.ramOf(app))
	require.Equal(t, uint64(200), e.resourceConfig().TotalRamUsed)
	require.Equal(t, govBefore+100, e.balance(protocol.GovernanceAccount))

	// A purchase that would exceed capacity is rejected with no state change
	err := e.exec(app, &protocol.BuyRam{
		Payer: app, Buyer: app, Quantity: protocol.NewAsset(500, protocol.TONO),
	})
	require.True(t, errors.Is(err, errors.InsufficientFunds))
	require.Equal(t, int64(200), e.ramOf(app))
	require.Equal(t, uint64(200), e.resourceConfig().TotalRamUsed)
	require.Equal(t, govBefore+100, e.balance(protocol.GovernanceAccount))
}

func TestBuyRamFee(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.SetResourceParams{
		RamPrice: 2, RamFee: 0.01, TotalRamAvailable: 100000,
	}))

	// 1000 units at price 2 with a 1% fee: floor(2/1.01*1000) = 1980 bytes
	require.NoError(t, e.exec(app, &protocol.BuyRam{
		Payer: app, Buyer: app, Quantity: protocol.NewAsset(1000, protocol.TONO),
	}))
	require.Equal(t, int64(1980), e.ramOf(app))
}

func TestBuyRamRequiresAppAccount(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.SetResourceParams{
		RamPrice: 2, TotalRamAvailable: 1000,
	}))

	err := e.exec(alice, &protocol.BuyRam{
		Payer: alice, Buyer: alice, Quantity: protocol.NewAsset(100, protocol.TONO),
	})
	require.True(t, errors.Is(err, errors.Unauthorized))

	// Unregistered account
	err = e.exec(bob, &protocol.BuyRam{
		Payer: bob, Buyer: bob, Quantity: protocol.NewAsset(100, protocol.TONO),
	})
	require.True(t, errors.Is(err, errors.NotFound))
}

func TestSellRam(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.SetResourceParams{
		RamPrice: 2, RamFee: 0, TotalRamAvailable: 1000,
	}))
	require.NoError(t, e.exec(app, &protocol.BuyRam{
		Payer: app, Buyer: app, Quantity: protocol.NewAsset(100, protocol.TONO),
	}))

	appBefore := e.balance(app)

	// Refunding 50 units releases floor(2*1*50) = 100 bytes
	require.NoError(t, e.exec(app, &protocol.SellRam{
		Payer: app, Seller: app, Quantity: protocol.NewAsset(50, protocol.TONO),
	}))
	require.Equal(t, int64(100), e.ramOf(app))
	require.Equal(t, uint64(100), e.resourceConfig().TotalRamUsed)
	require.Equal(t, appBefore+50, e.balance(app))

	// Selling more than the account holds fails
	err := e.exec(app, &protocol.SellRam{
		Payer: app, Seller: app, Quantity: protocol.NewAsset(5000, protocol.TONO),
	})
	require.True(t, errors.Is(err, errors.InsufficientFunds))
}
