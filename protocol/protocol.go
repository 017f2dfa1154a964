// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import "time"

// Well known accounts
const (
	// GovernanceAccount owns the market and ledgers and may change settings.
	GovernanceAccount = Name("gov.tmy")

	// StakingContract is the custody account for staked tokens.
	StakingContract = Name("staking.tmy")

	// VestingContract is the custody account for vested tokens.
	VestingContract = Name("vesting.tmy")

	// TokenContract is the fungible token ledger.
	TokenContract = Name("eosio.token")

	// SystemContract owns the resource market.
	SystemContract = Name("eosio")
)

// TONO is the system resource currency.
var TONO = Symbol{Code: "TONO", Precision: 6}

// LEOS is the pre-rebrand currency, kept only for balance migration.
var LEOS = Symbol{Code: "LEOS", Precision: 6}

// MaxAPY caps the staking yield at 200% APY.
const MaxAPY = 2.0

// Year is the reference year for APY compounding.
const Year = time.Duration(365.25 * 24 * float64(time.Hour))

// Person account names bound the keyspace walked by the yield cron.
const (
	LowestPersonName  = Name("p1111111111")
	HighestPersonName = Name("pzzzzzzzzzz")
)

// Params holds the time and size parameters of the economy engine. The
// original contracts compile these in; a single struct keeps the production
// and test profiles in one place.
type Params struct {
	// LockupPeriod is how long a stake is locked before it can be unstaked.
	LockupPeriod time.Duration

	// ReleasePeriod is how long unstaking takes before tokens are released.
	ReleasePeriod time.Duration

	// CronPeriod is how often the yield cron runs. One cron invocation
	// processes one shard of the staker keyspace.
	CronPeriod time.Duration

	// StakingCycle is how often each staking account receives yield. Must be
	// an exact multiple of CronPeriod.
	StakingCycle time.Duration

	// StakingMaxAllocations bounds open stakes per account.
	StakingMaxAllocations int

	// VestingMaxAllocations bounds vesting allocations per holder.
	VestingMaxAllocations int

	// MinimumStake rejects dust stakes.
	MinimumStake int64
}

// DefaultParams returns the production parameters.
func DefaultParams() Params {
	return Params{
		LockupPeriod:          30 * 24 * time.Hour,
		ReleasePeriod:         5 * 24 * time.Hour,
		CronPeriod:            time.Hour,
		StakingCycle:          24 * time.Hour,
		StakingMaxAllocations: 20,
		VestingMaxAllocations: 150,
		MinimumStake:          1_000000, // 1.000000 TONO
	}
}

// TestParams returns short periods for tests, mirroring the original test
// build: 10s lock-up, 5s release, 10s cron period, 60s staking cycle.
func TestParams() Params {
	p := DefaultParams()
	p.LockupPeriod = 10 * time.Second
	p.ReleasePeriod = 5 * time.Second
	p.CronPeriod = 10 * time.Second
	p.StakingCycle = 60 * time.Second
	return p
}

// CronIntervals is the number of keyspace shards per staking cycle.
func (p Params) CronIntervals() int {
	return int(p.StakingCycle / p.CronPeriod)
}
