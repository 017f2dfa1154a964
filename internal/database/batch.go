// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package database

import (
	"gitlab.com/tonomy/economy/pkg/database"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

// Key layout. One record per entity; allocation sets are scoped per account
// like the original contracts' scoped tables.
func resourceConfigKey() *database.Key  { return database.NewKey("Resource", "Config") }
func stakingSettingsKey() *database.Key { return database.NewKey("Staking", "Settings") }
func stakerIndexKey() *database.Key     { return database.NewKey("Staking", "Index") }
func vestingSettingsKey() *database.Key { return database.NewKey("Vesting", "Settings") }

func stakingAccountKey(staker protocol.Name) *database.Key {
	return database.NewKey("Staking", "Account", string(staker))
}

func stakingAllocationsKey(staker protocol.Name) *database.Key {
	return database.NewKey("Staking", "Allocations", string(staker))
}

func vestingAllocationsKey(holder protocol.Name) *database.Key {
	return database.NewKey("Vesting", "Allocations", string(holder))
}

// ResourceConfig loads the resource market singleton. Returns NotFound if the
// market has never been configured.
func (b *Batch) ResourceConfig() (*protocol.ResourceConfig, error) {
	return GetJSON[protocol.ResourceConfig](b.kv, resourceConfigKey())
}

func (b *Batch) PutResourceConfig(c *protocol.ResourceConfig) error {
	return PutJSON(b.kv, resourceConfigKey(), c)
}

// StakingSettings loads the staking singleton. Returns NotFound if staking
// has never been configured.
func (b *Batch) StakingSettings() (*protocol.StakingSettings, error) {
	return GetJSON[protocol.StakingSettings](b.kv, stakingSettingsKey())
}

func (b *Batch) PutStakingSettings(s *protocol.StakingSettings) error {
	return PutJSON(b.kv, stakingSettingsKey(), s)
}

// StakingAccount loads a staker's aggregate record.
func (b *Batch) StakingAccount(staker protocol.Name) (*protocol.StakingAccount, error) {
	return GetJSON[protocol.StakingAccount](b.kv, stakingAccountKey(staker))
}

func (b *Batch) PutStakingAccount(a *protocol.StakingAccount) error {
	return PutJSON(b.kv, stakingAccountKey(a.Staker), a)
}

// StakingAllocations loads a staker's allocation set. A staker with no
// history gets an empty set.
func (b *Batch) StakingAllocations(staker protocol.Name) (*protocol.StakingAllocationSet, error) {
	set, err := GetJSON[protocol.StakingAllocationSet](b.kv, stakingAllocationsKey(staker))
	switch {
	case err == nil:
		return set, nil
	case errors.Is(err, errors.NotFound):
		return new(protocol.StakingAllocationSet), nil
	default:
		return nil, err
	}
}

func (b *Batch) PutStakingAllocations(staker protocol.Name, set *protocol.StakingAllocationSet) error {
	return PutJSON(b.kv, stakingAllocationsKey(staker), set)
}

// StakerIndex loads the ordered list of every account that has staked.
func (b *Batch) StakerIndex() (*protocol.StakerIndex, error) {
	x, err := GetJSON[protocol.StakerIndex](b.kv, stakerIndexKey())
	switch {
	case err == nil:
		return x, nil
	case errors.Is(err, errors.NotFound):
		return new(protocol.StakerIndex), nil
	default:
		return nil, err
	}
}

func (b *Batch) PutStakerIndex(x *protocol.StakerIndex) error {
	return PutJSON(b.kv, stakerIndexKey(), x)
}

// VestingSettings loads the vesting singleton. Returns NotFound until the
// sales and launch dates have been set.
func (b *Batch) VestingSettings() (*protocol.VestingSettings, error) {
	return GetJSON[protocol.VestingSettings](b.kv, vestingSettingsKey())
}

func (b *Batch) PutVestingSettings(s *protocol.VestingSettings) error {
	return PutJSON(b.kv, vestingSettingsKey(), s)
}

// VestingAllocations loads a holder's allocation set. A holder with no
// history gets an empty set.
func (b *Batch) VestingAllocations(holder protocol.Name) (*protocol.VestedAllocationSet, error) {
	set, err := GetJSON[protocol.VestedAllocationSet](b.kv, vestingAllocationsKey(holder))
	switch {
	case err == nil:
		return set, nil
	case errors.Is(err, errors.NotFound):
		return new(protocol.VestedAllocationSet), nil
	default:
		return nil, err
	}
}

func (b *Batch) PutVestingAllocations(holder protocol.Name, set *protocol.VestedAllocationSet) error {
	return PutJSON(b.kv, vestingAllocationsKey(holder), set)
}
