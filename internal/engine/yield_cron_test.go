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

// runCronCycle invokes the cron once per period for the given number of
// full staking cycles, the way the host scheduler would. It returns every
// error the passes produced.
func runCronCycle(e *env, cycles int) []error {
	p := protocol.TestParams()
	ticks := cycles * p.CronIntervals()
	var errs []error
	for i := 0; i < ticks; i++ {
		e.clock.Advance(p.CronPeriod)
		if err := e.exec(protocol.GovernanceAccount, &protocol.YieldCron{}); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func TestYieldAccrual(t *testing.T) {
	e := newEnv(t)
	stake := protocol.NewAsset(1000_000000, protocol.TONO)

	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.SetStakingSettings{
		YearlyStakePool: protocol.NewAsset(10_000_000000, protocol.TONO),
	}))
	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.AddYield{
		Sender:   protocol.GovernanceAccount,
		Quantity: protocol.NewAsset(100_000000, protocol.TONO),
	}))
	require.NoError(t, e.exec(alice, &protocol.StakeTokens{Staker: alice, Quantity: stake}))

	poolBefore := e.stakingSettings().CurrentYieldPool.Amount

	// Two full cycles so every shard is visited at least twice and the
	// reentrancy guard has expired by the time alice's shard comes around
	require.Empty(t, runCronCycle(e, 2))

	set := e.stakingAllocations(alice)
	require.Len(t, set.Allocations, 1)
	alloc := set.Allocations[0]
	require.Greater(t, alloc.TokensStaked.Amount, alloc.InitialStake.Amount, "active allocation must accrue yield")

	minted := alloc.TokensStaked.Amount - alloc.InitialStake.Amount
	s := e.stakingSettings()
	require.Equal(t, poolBefore-minted, s.CurrentYieldPool.Amount, "pool decreases exactly by the minted yield")
	require.Equal(t, stake.Amount+minted, s.TotalStaked.Amount)

	batch := e.db.Begin(false)
	defer batch.Discard()
	account, err := batch.StakingAccount(alice)
	require.NoError(t, err)
	require.Equal(t, minted, account.TotalYield.Amount)
	require.NotZero(t, account.Payments)

	e.requireConservation(alice)
}

func TestYieldCronIdempotent(t *testing.T) {
	e := newEnv(t)

	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.SetStakingSettings{
		YearlyStakePool: protocol.NewAsset(10_000_000000, protocol.TONO),
	}))
	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.AddYield{
		Sender:   protocol.GovernanceAccount,
		Quantity: protocol.NewAsset(100_000000, protocol.TONO),
	}))
	require.NoError(t, e.exec(alice, &protocol.StakeTokens{Staker: alice, Quantity: protocol.NewAsset(1000_000000, protocol.TONO)}))
	require.Empty(t, runCronCycle(e, 2))

	// Re-running every shard at the same instant must change nothing
	before := e.stakingSettings()
	staked := e.stakingAllocations(alice).Allocations[0].TokensStaked.Amount
	for i := 0; i < protocol.TestParams().CronIntervals(); i++ {
		require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.YieldCron{}))
	}
	require.Equal(t, before, e.stakingSettings())
	require.Equal(t, staked, e.stakingAllocations(alice).Allocations[0].TokensStaked.Amount)
}

func TestYieldCronFrozenAfterUnstakeRequest(t *testing.T) {
	e := newEnv(t)
	p := protocol.TestParams()

	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.SetStakingSettings{
		YearlyStakePool: protocol.NewAsset(10_000_000000, protocol.TONO),
	}))
	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.AddYield{
		Sender:   protocol.GovernanceAccount,
		Quantity: protocol.NewAsset(100_000000, protocol.TONO),
	}))
	require.NoError(t, e.exec(alice, &protocol.StakeTokens{Staker: alice, Quantity: protocol.NewAsset(1000_000000, protocol.TONO)}))

	e.clock.Advance(p.LockupPeriod + time.Second)
	require.NoError(t, e.exec(alice, &protocol.RequestUnstake{Staker: alice, AllocationID: 0}))
	frozen := e.stakingAllocations(alice).Allocations[0].TokensStaked.Amount

	// The cron must not accrue into the frozen allocation; it finalizes the
	// release instead once the release period has elapsed
	balanceBefore := e.balance(alice)
	require.Empty(t, runCronCycle(e, 2))

	require.Empty(t, e.stakingAllocations(alice).Allocations, "cron finalizes a due release")
	require.Equal(t, balanceBefore+frozen, e.balance(alice))
	require.Zero(t, e.stakingSettings().TotalReleasing.Amount)
	e.requireConservation(alice)
}

func TestYieldCronInsufficientPool(t *testing.T) {
	e := newEnv(t)

	// Yearly pool set, but nothing funds the yield pool
	require.NoError(t, e.exec(protocol.GovernanceAccount, &protocol.SetStakingSettings{
		YearlyStakePool: protocol.NewAsset(10_000_000000, protocol.TONO),
	}))
	require.NoError(t, e.exec(alice, &protocol.StakeTokens{Staker: alice, Quantity: protocol.NewAsset(1000_000000, protocol.TONO)}))

	errs := runCronCycle(e, 2)
	require.NotEmpty(t, errs, "a pass that cannot cover its yield must fail")
	for _, err := range errs {
		require.True(t, errors.Is(err, errors.InsufficientFunds))
	}

	// The failed pass left no partial writes
	set := e.stakingAllocations(alice)
	require.Equal(t, set.Allocations[0].InitialStake.Amount, set.Allocations[0].TokensStaked.Amount)
	require.Zero(t, e.stakingSettings().CurrentYieldPool.Amount)
}

func TestYieldCronAuthority(t *testing.T) {
	e := newEnv(t)
	err := e.exec(alice, &protocol.YieldCron{})
	require.True(t, errors.Is(err, errors.Unauthorized))
}
