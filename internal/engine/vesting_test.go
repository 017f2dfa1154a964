// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

func (e *env) setVestingDates(sales, launch time.Time) {
	e.t.Helper()
	require.NoError(e.t, e.exec(protocol.GovernanceAccount, &protocol.SetVestingSettings{
		SalesStartDate: sales,
		LaunchDate:     launch,
	}))
}

func TestAssignTokensValidation(t *testing.T) {
	e := newEnv(t)
	now := e.clock.Now()

	// Settings must exist first
	err := e.exec(protocol.GovernanceAccount, &protocol.AssignTokens{
		Sender: protocol.GovernanceAccount, Holder: alice,
		Amount: protocol.NewAsset(1000, protocol.TONO), Category: 998,
	})
	require.True(t, errors.Is(err, errors.NotReady))

	e.setVestingDates(now.Add(time.Hour), now.Add(2*time.Hour))

	// Sale has not started
	err = e.exec(protocol.GovernanceAccount, &protocol.AssignTokens{
		Sender: protocol.GovernanceAccount, Holder: alice,
		Amount: protocol.NewAsset(1000, protocol.TONO), Category: 998,
	})
	require.True(t, errors.Is(err, errors.NotReady))

	e.setVestingDates(now, now)

	// Deprecated and unknown categories
	for _, category := range []int{1, 2, 3, 997} {
		err = e.exec(protocol.GovernanceAccount, &protocol.AssignTokens{
			Sender: protocol.GovernanceAccount, Holder: alice,
			Amount: protocol.NewAsset(1000, protocol.TONO), Category: category,
		})
		require.True(t, errors.Is(err, errors.BadRequest), "category %d", category)
	}

	// Governance only
	err = e.exec(alice, &protocol.AssignTokens{
		Sender: alice, Holder: alice,
		Amount: protocol.NewAsset(1000, protocol.TONO), Category: 998,
	})
	require.True(t, errors.Is(err, errors.Unauthorized))
}

// TestWithdrawSchedule walks category 998 (10s start delay, 20s vesting,
// 50% TGE unlock) through TGE, mid-vesting, and completion.
func TestWithdrawSchedule(t *testing.T) {
	e := newEnv(t)
	now := e.clock.Now()
	e.setVestingDates(now, now)

	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.AssignTokens{
		Sender: protocol.GovernanceAccount, Holder: alice,
		Amount: protocol.NewAsset(1000, protocol.TONO), Category: 998,
	}))
	require.Equal(t, int64(1000), e.balance(protocol.VestingContract))
	balanceAtStart := e.balance(alice)

	// Before vesting start, a withdraw succeeds but claims nothing
	require.NoError(t, e.exec(alice, &protocol.Withdraw{Holder: alice}))
	require.Equal(t, balanceAtStart, e.balance(alice))

	// At vesting start the TGE half unlocks
	e.clock.Advance(10 * time.Second)
	require.NoError(t, e.exec(alice, &protocol.Withdraw{Holder: alice}))
	require.Equal(t, balanceAtStart+500, e.balance(alice))

	// A quarter through: claimable 625, minus the 500 already taken
	e.clock.Advance(5 * time.Second)
	require.NoError(t, e.exec(alice, &protocol.Withdraw{Holder: alice}))
	require.Equal(t, balanceAtStart+625, e.balance(alice))

	// Nothing new accrued yet, withdrawing again moves nothing
	require.NoError(t, e.exec(alice, &protocol.Withdraw{Holder: alice}))
	require.Equal(t, balanceAtStart+625, e.balance(alice))

	// Fully vested: the rest arrives and the allocation is erased
	e.clock.Advance(15 * time.Second)
	require.NoError(t, e.exec(alice, &protocol.Withdraw{Holder: alice}))
	require.Equal(t, balanceAtStart+1000, e.balance(alice))
	require.Empty(t, e.vestingAllocations(alice).Allocations)
	require.Zero(t, e.balance(protocol.VestingContract))
}

func TestWithdrawBeforeLaunch(t *testing.T) {
	e := newEnv(t)
	now := e.clock.Now()
	e.setVestingDates(now, now.Add(time.Hour))

	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.AssignTokens{
		Sender: protocol.GovernanceAccount, Holder: alice,
		Amount: protocol.NewAsset(1000, protocol.TONO), Category: 998,
	}))

	err := e.exec(alice, &protocol.Withdraw{Holder: alice})
	require.True(t, errors.Is(err, errors.NotReady))
}

func TestWithdrawCliff(t *testing.T) {
	// Category 999: 10s delay, 10s cliff, 20s vesting
	e := newEnv(t)
	now := e.clock.Now()
	e.setVestingDates(now, now)

	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.AssignTokens{
		Sender: protocol.GovernanceAccount, Holder: alice,
		Amount: protocol.NewAsset(1000, protocol.TONO), Category: 999,
	}))
	before := e.balance(alice)

	// Inside the cliff nothing is claimable
	e.clock.Advance(15 * time.Second)
	require.NoError(t, e.exec(alice, &protocol.Withdraw{Holder: alice}))
	require.Equal(t, before, e.balance(alice))

	// Cliff end: linear progress counts from vesting start
	e.clock.Advance(5 * time.Second)
	require.NoError(t, e.exec(alice, &protocol.Withdraw{Holder: alice}))
	require.Equal(t, before+500, e.balance(alice))
}

func TestWithdrawAggregatesAllocations(t *testing.T) {
	e := newEnv(t)
	now := e.clock.Now()
	e.setVestingDates(now, now)

	for i := 0; i < 3; i++ {
		require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.AssignTokens{
			Sender: protocol.GovernanceAccount, Holder: alice,
			Amount: protocol.NewAsset(1000, protocol.TONO), Category: 998,
		}))
	}
	before := e.balance(alice)

	// One transfer covers all three TGE unlocks
	e.clock.Advance(10 * time.Second)
	require.NoError(t, e.exec(alice, &protocol.Withdraw{Holder: alice}))
	require.Equal(t, before+1500, e.balance(alice))
}

func TestMigrateAllocation(t *testing.T) {
	e := newEnv(t)
	now := e.clock.Now()
	e.setVestingDates(now, now)

	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.AssignTokens{
		Sender: protocol.GovernanceAccount, Holder: alice,
		Amount: protocol.NewAsset(1000, protocol.TONO), Category: 998,
	}))

	// Stale old values are rejected
	err := e.exec(protocol.GovernanceAccount, &protocol.MigrateAllocation{
		Sender: protocol.GovernanceAccount, Holder: alice, AllocationID: 0,
		OldAmount: protocol.NewAsset(999, protocol.TONO), NewAmount: protocol.NewAsset(1500, protocol.TONO),
		OldCategory: 998, NewCategory: 999,
	})
	require.True(t, errors.Is(err, errors.Conflict))

	err = e.exec(protocol.GovernanceAccount, &protocol.MigrateAllocation{
		Sender: protocol.GovernanceAccount, Holder: alice, AllocationID: 0,
		OldAmount: protocol.NewAsset(1000, protocol.TONO), NewAmount: protocol.NewAsset(1500, protocol.TONO),
		OldCategory: 997, NewCategory: 999,
	})
	require.True(t, errors.Is(err, errors.Conflict))

	custodyBefore := e.balance(protocol.VestingContract)

	// Top-up: the delta moves into custody
	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.MigrateAllocation{
		Sender: protocol.GovernanceAccount, Holder: alice, AllocationID: 0,
		OldAmount: protocol.NewAsset(1000, protocol.TONO), NewAmount: protocol.NewAsset(1500, protocol.TONO),
		OldCategory: 998, NewCategory: 999,
	}))
	require.Equal(t, custodyBefore+500, e.balance(protocol.VestingContract))

	set := e.vestingAllocations(alice)
	require.Equal(t, int64(1500), set.Allocations[0].TokensAllocated.Amount)
	require.Equal(t, 999, set.Allocations[0].Category)

	// Refund: shrinking the allocation returns the delta
	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.MigrateAllocation{
		Sender: protocol.GovernanceAccount, Holder: alice, AllocationID: 0,
		OldAmount: protocol.NewAsset(1500, protocol.TONO), NewAmount: protocol.NewAsset(1200, protocol.TONO),
		OldCategory: 999, NewCategory: 999,
	}))
	require.Equal(t, custodyBefore+200, e.balance(protocol.VestingContract))
}
