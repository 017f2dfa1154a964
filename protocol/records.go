// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import "time"

// ResourceConfig is the resource market singleton.
type ResourceConfig struct {
	RamPrice                float64 `json:"ramPrice"` // tokens per byte
	RamFee                  float64 `json:"ramFee"`   // fee fraction, 0.01 = 1%
	TotalRamAvailable       uint64  `json:"totalRamAvailable"`
	TotalRamUsed            uint64  `json:"totalRamUsed"`
	TotalCpuWeightAllocated uint64  `json:"totalCpuWeightAllocated"`
	TotalNetWeightAllocated uint64  `json:"totalNetWeightAllocated"`
}

// StakingAllocation is a single stake with its own lifecycle timers.
type StakingAllocation struct {
	ID               uint64    `json:"id"`
	Staker           Name      `json:"staker"`
	InitialStake     Asset     `json:"initialStake"`
	TokensStaked     Asset     `json:"tokensStaked"` // grows with yield
	StakeTime        time.Time `json:"stakeTime"`
	UnstakeTime      time.Time `json:"unstakeTime"` // meaningful only if UnstakeRequested
	UnstakeRequested bool      `json:"unstakeRequested"`
}

// StakingAllocationSet is the per-staker allocation table. Storing the set as
// one record keeps each staker's allocations and id counter in a single
// read-modify-write.
type StakingAllocationSet struct {
	NextID      uint64               `json:"nextId"`
	Allocations []*StakingAllocation `json:"allocations"`
}

// Find returns the allocation with the given id, or nil.
func (s *StakingAllocationSet) Find(id uint64) *StakingAllocation {
	for _, a := range s.Allocations {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Remove deletes the allocation with the given id. It reports whether the
// allocation existed.
func (s *StakingAllocationSet) Remove(id uint64) bool {
	for i, a := range s.Allocations {
		if a.ID == id {
			s.Allocations = append(s.Allocations[:i], s.Allocations[i+1:]...)
			return true
		}
	}
	return false
}

// StakingAccount is the per-staker aggregate, updated only by the yield cron
// (and created on first stake).
type StakingAccount struct {
	Staker     Name      `json:"staker"`
	TotalYield Asset     `json:"totalYield"`
	LastPayout time.Time `json:"lastPayout"`
	Payments   uint64    `json:"payments"`
	Version    int       `json:"version"`
}

// StakingSettings is the staking ledger singleton.
type StakingSettings struct {
	CurrentYieldPool Asset `json:"currentYieldPool"`
	YearlyStakePool  Asset `json:"yearlyStakePool"`
	TotalStaked      Asset `json:"totalStaked"`
	TotalReleasing   Asset `json:"totalReleasing"`
}

// NewStakingSettings returns settings with zeroed pools of the system
// currency.
func NewStakingSettings() *StakingSettings {
	return &StakingSettings{
		CurrentYieldPool: Zero(TONO),
		YearlyStakePool:  Zero(TONO),
		TotalStaked:      Zero(TONO),
		TotalReleasing:   Zero(TONO),
	}
}

// VestedAllocation is a single vesting grant.
type VestedAllocation struct {
	ID                 uint64        `json:"id"`
	Holder             Name          `json:"holder"`
	TokensAllocated    Asset         `json:"tokensAllocated"`
	TokensClaimed      Asset         `json:"tokensClaimed"`
	TimeSinceSaleStart time.Duration `json:"timeSinceSaleStart"`
	Category           int           `json:"category"`
}

// VestedAllocationSet is the per-holder allocation table.
type VestedAllocationSet struct {
	NextID      uint64              `json:"nextId"`
	Allocations []*VestedAllocation `json:"allocations"`
}

// Find returns the allocation with the given id, or nil.
func (s *VestedAllocationSet) Find(id uint64) *VestedAllocation {
	for _, a := range s.Allocations {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Remove deletes the allocation with the given id. It reports whether the
// allocation existed.
func (s *VestedAllocationSet) Remove(id uint64) bool {
	for i, a := range s.Allocations {
		if a.ID == id {
			s.Allocations = append(s.Allocations[:i], s.Allocations[i+1:]...)
			return true
		}
	}
	return false
}

// VestingSettings is the vesting ledger singleton. It must be set before any
// allocation can be created; LaunchDate gates withdrawal.
type VestingSettings struct {
	SalesStartDate time.Time `json:"salesStartDate"`
	LaunchDate     time.Time `json:"launchDate"`
}

// StakerIndex lists every account that has ever staked, ordered by name
// value. The yield cron uses it to walk a shard of the keyspace without
// range scans.
type StakerIndex struct {
	Stakers []Name `json:"stakers"`
}

// Insert adds a staker, keeping the index sorted by name value. Inserting an
// existing staker is a no-op.
func (x *StakerIndex) Insert(staker Name) {
	v := staker.Value()
	for i, s := range x.Stakers {
		sv := s.Value()
		if sv == v {
			return
		}
		if sv > v {
			x.Stakers = append(x.Stakers, "")
			copy(x.Stakers[i+1:], x.Stakers[i:])
			x.Stakers[i] = staker
			return
		}
	}
	x.Stakers = append(x.Stakers, staker)
}

// Range returns the stakers whose name value lies in [lo, hi].
func (x *StakerIndex) Range(lo, hi uint64) []Name {
	var out []Name
	for _, s := range x.Stakers {
		if v := s.Value(); v >= lo && v <= hi {
			out = append(out, s)
		}
	}
	return out
}
