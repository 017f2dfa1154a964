// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import "time"

// VestingCategory defines a vesting schedule. Relative to the launch-date
// anchor, an allocation's schedule is:
//
//	vesting start = launch + time since sale start + StartDelay
//	cliff end     = vesting start + CliffPeriod
//	vesting end   = vesting start + VestingPeriod
//
// TGEUnlock is the fraction claimable immediately at vesting start.
type VestingCategory struct {
	CliffPeriod   time.Duration
	StartDelay    time.Duration
	VestingPeriod time.Duration
	TGEUnlock     float64
}

const vestingDay = 24 * time.Hour

// VestingCategories is static reference data. Category ids are stable and
// must never be reused.
var VestingCategories = map[int]VestingCategory{
	// Deprecated:
	1: {CliffPeriod: 180 * vestingDay, StartDelay: 0, VestingPeriod: 730 * vestingDay, TGEUnlock: 0},    // Seed Private Sale
	2: {CliffPeriod: 180 * vestingDay, StartDelay: 180 * vestingDay, VestingPeriod: 730 * vestingDay, TGEUnlock: 0}, // Strategic Partnerships Private Sale
	3: {CliffPeriod: 0, StartDelay: 0, VestingPeriod: 0, TGEUnlock: 0},                                  // Public Sale
	// Unchanged:
	4: {CliffPeriod: 0, StartDelay: 365 * vestingDay, VestingPeriod: 5 * 365 * vestingDay, TGEUnlock: 0}, // Team
	5: {CliffPeriod: 0, StartDelay: 0, VestingPeriod: 365 * vestingDay, TGEUnlock: 0},                    // Legal and Compliance
	6: {CliffPeriod: 0, StartDelay: 0, VestingPeriod: 730 * vestingDay, TGEUnlock: 0},                    // Reserves, Partnerships
	7: {CliffPeriod: 0, StartDelay: 0, VestingPeriod: 5 * 365 * vestingDay, TGEUnlock: 0},                // Community & Marketing, Platform Dev, Infra Rewards, Ecosystem
	// Replacements for the deprecated sales:
	8:  {CliffPeriod: 0, StartDelay: 180 * vestingDay, VestingPeriod: 360 * vestingDay, TGEUnlock: 0.05},  // Seed
	9:  {CliffPeriod: 0, StartDelay: 120 * vestingDay, VestingPeriod: 360 * vestingDay, TGEUnlock: 0.075}, // Pre-sale
	10: {CliffPeriod: 0, StartDelay: 30 * vestingDay, VestingPeriod: 90 * vestingDay, TGEUnlock: 0.25},    // Public (TGE)
	// New:
	11: {CliffPeriod: 0, StartDelay: 90 * vestingDay, VestingPeriod: 270 * vestingDay, TGEUnlock: 0.125}, // Private
	12: {CliffPeriod: 0, StartDelay: 30 * vestingDay, VestingPeriod: 90 * vestingDay, TGEUnlock: 0.25},   // KOL
	13: {CliffPeriod: 0, StartDelay: 0, VestingPeriod: 180 * vestingDay, TGEUnlock: 0.7},                 // Incubator
	14: {CliffPeriod: 0, StartDelay: 0, VestingPeriod: 180 * vestingDay, TGEUnlock: 0.25},                // Liquidity

	// Seconds-scale schedules for tests
	998: {CliffPeriod: 0, StartDelay: 10 * time.Second, VestingPeriod: 20 * time.Second, TGEUnlock: 0.5},
	999: {CliffPeriod: 10 * time.Second, StartDelay: 10 * time.Second, VestingPeriod: 20 * time.Second, TGEUnlock: 0},
}

// DeprecatedCategories are rejected for new allocations but may still back
// existing ones.
var DeprecatedCategories = map[int]bool{1: true, 2: true, 3: true}

// VestingStart returns the allocation's vesting start for the given launch
// date.
func (a *VestedAllocation) VestingStart(launch time.Time) time.Time {
	cat := VestingCategories[a.Category]
	return launch.Add(a.TimeSinceSaleStart).Add(cat.StartDelay)
}

// Claimable returns the amount claimable at now, before subtracting what has
// already been claimed. Zero before the cliff ends; the full allocation at or
// after vesting end; otherwise TGE unlock plus linear progress, floored.
func (a *VestedAllocation) Claimable(launch time.Time, now time.Time) int64 {
	cat, ok := VestingCategories[a.Category]
	if !ok {
		return 0
	}

	start := a.VestingStart(launch)
	cliffEnd := start.Add(cat.CliffPeriod)
	end := start.Add(cat.VestingPeriod)

	if now.Before(cliffEnd) {
		return 0
	}
	if !now.Before(end) {
		return a.TokensAllocated.Amount
	}

	progress := float64(now.Sub(start)) / float64(cat.VestingPeriod)
	claimable := MulFloor(a.TokensAllocated.Amount, (1-cat.TGEUnlock)*progress+cat.TGEUnlock)
	if claimable > a.TokensAllocated.Amount {
		claimable = a.TokensAllocated.Amount
	}
	return claimable
}
