// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package engine

import (
	"math"
	"time"

	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

// YieldCron processes one shard of the staker keyspace: compounds yield into
// active allocations and finalizes any unstake whose release period has
// elapsed. Shard selection is keyed purely on wall-clock time, so no cursor
// is persisted; the host re-invokes the action once per cron period.
type YieldCron struct{}

func (YieldCron) Type() protocol.ActionType { return protocol.ActionTypeYieldCron }

func (YieldCron) Validate(st *StateManager, body protocol.ActionBody) error {
	if _, ok := body.(*protocol.YieldCron); !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", &protocol.YieldCron{}, body)
	}
	if st.Signer != protocol.GovernanceAccount && st.Signer != protocol.StakingContract {
		return errors.Unauthorized.WithFormat("missing authority of %s", protocol.StakingContract)
	}
	return nil
}

func (YieldCron) Execute(st *StateManager, body protocol.ActionBody) error {
	settings, err := st.stakingSettings()
	if err != nil {
		return err
	}

	lo, hi := shardBounds(st.Now, st.Params)
	index, err := st.StakerIndex()
	if err != nil {
		return err
	}

	apy := 0.0
	if settings.TotalStaked.Amount > 0 {
		apy = float64(settings.YearlyStakePool.Amount) / float64(settings.TotalStaked.Amount)
		if apy > protocol.MaxAPY {
			apy = protocol.MaxAPY
		}
	}

	guard := time.Duration(1.01 * float64(st.Params.CronPeriod))
	minted := int64(0)
	processed := 0

	for _, staker := range index.Range(lo, hi) {
		account, err := st.StakingAccount(staker)
		if err != nil {
			return err
		}
		if account.LastPayout.Add(guard).After(st.Now) {
			// This shard was already processed in the current cycle
			break
		}

		set, err := st.StakingAllocations(staker)
		if err != nil {
			return err
		}

		elapsed := st.Now.Sub(account.LastPayout)
		factor := math.Pow(1+apy, float64(elapsed)/float64(protocol.Year)) - 1

		changed := false
		for _, alloc := range set.Allocations {
			if alloc.UnstakeRequested {
				continue
			}
			yield := protocol.MulFloor(alloc.TokensStaked.Amount, factor)
			if yield <= 0 {
				continue
			}
			alloc.TokensStaked.Amount += yield
			account.TotalYield.Amount += yield
			minted += yield
			changed = true
		}

		// Finalize any unstake whose release period has elapsed
		for _, alloc := range releasable(set, st.Now, st.Params.ReleasePeriod) {
			set.Remove(alloc.ID)
			settings.TotalReleasing = settings.TotalReleasing.MustSub(alloc.TokensStaked)
			st.Transfer(protocol.StakingContract, staker, alloc.TokensStaked, "unstake tokens")
			changed = true
		}

		if changed {
			if err := st.PutStakingAllocations(staker, set); err != nil {
				return err
			}
		}

		account.LastPayout = st.Now
		account.Payments++
		account.Version++
		if err := st.PutStakingAccount(account); err != nil {
			return err
		}
		processed++
	}

	if minted > settings.CurrentYieldPool.Amount {
		return errors.InsufficientFunds.WithFormat("yield pool holds %v, pass needs %v",
			settings.CurrentYieldPool, protocol.NewAsset(minted, protocol.TONO))
	}
	settings.CurrentYieldPool.Amount -= minted
	settings.TotalStaked.Amount += minted
	if err := st.PutStakingSettings(settings); err != nil {
		return err
	}

	mYieldMinted.Add(float64(minted))
	mCronAccounts.Add(float64(processed))
	return nil
}

// shardBounds returns the name-value range of the shard selected by the
// current time: the person keyspace is cut into cycle/period equal slices
// and the slice index is (now mod cycle)/period.
func shardBounds(now time.Time, p protocol.Params) (lo, hi uint64) {
	n := uint64(p.CronIntervals())
	interval := uint64(now.Unix()%int64(p.StakingCycle/time.Second)) / uint64(p.CronPeriod/time.Second)

	first := protocol.LowestPersonName.Value()
	last := protocol.HighestPersonName.Value()
	width := (last - first) / n

	lo = first + interval*width
	if interval == n-1 {
		return lo, last
	}
	return lo, lo + width - 1
}

func releasable(set *protocol.StakingAllocationSet, now time.Time, release time.Duration) []*protocol.StakingAllocation {
	var out []*protocol.StakingAllocation
	for _, alloc := range set.Allocations {
		if alloc.UnstakeRequested && !now.Before(alloc.UnstakeTime.Add(release)) {
			out = append(out, alloc)
		}
	}
	return out
}
