// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"time"

	"gitlab.com/tonomy/economy/pkg/errors"
)

// ActionType identifies an engine action. Values match the original
// contracts' action names.
type ActionType string

const (
	ActionTypeSetResourceParams  ActionType = "setresparams"
	ActionTypeBuyRam             ActionType = "buyram"
	ActionTypeSellRam            ActionType = "sellram"
	ActionTypeStakeTokens        ActionType = "staketokens"
	ActionTypeRequestUnstake     ActionType = "requnstake"
	ActionTypeReleaseToken       ActionType = "releasetoken"
	ActionTypeAddYield           ActionType = "addyield"
	ActionTypeSetStakingSettings ActionType = "setstksettings"
	ActionTypeYieldCron          ActionType = "yieldcron"
	ActionTypeSetVestingSettings ActionType = "setvstsettings"
	ActionTypeAssignTokens       ActionType = "assigntokens"
	ActionTypeWithdraw           ActionType = "withdraw"
	ActionTypeMigrateAllocation  ActionType = "migratealloc"
	ActionTypeNewAccount         ActionType = "newaccount"
	ActionTypeMigrateStats       ActionType = "migratestats"
	ActionTypeMigrateAccount     ActionType = "migrateacc"
)

// ActionBody is the payload of an action.
type ActionBody interface {
	Type() ActionType
}

// SetResourceParams sets the RAM price, fee, and total availability.
// Governance only.
type SetResourceParams struct {
	RamPrice          float64 `json:"ramPrice"`
	TotalRamAvailable uint64  `json:"totalRamAvailable"`
	RamFee            float64 `json:"ramFee"`
}

func (*SetResourceParams) Type() ActionType { return ActionTypeSetResourceParams }

// BuyRam converts a token payment into a RAM limit grant for an app account.
type BuyRam struct {
	Payer    Name  `json:"payer"`
	Buyer    Name  `json:"buyer"`
	Quantity Asset `json:"quantity"`
}

func (*BuyRam) Type() ActionType { return ActionTypeBuyRam }

// SellRam releases RAM back to the market for a token refund.
type SellRam struct {
	Payer    Name  `json:"payer"`
	Seller   Name  `json:"seller"`
	Quantity Asset `json:"quantity"`
}

func (*SellRam) Type() ActionType { return ActionTypeSellRam }

// StakeTokens opens a new staking allocation.
type StakeTokens struct {
	Staker   Name  `json:"staker"`
	Quantity Asset `json:"quantity"`
}

func (*StakeTokens) Type() ActionType { return ActionTypeStakeTokens }

// RequestUnstake starts the release period for an allocation and freezes its
// yield.
type RequestUnstake struct {
	Staker       Name   `json:"staker"`
	AllocationID uint64 `json:"allocationId"`
}

func (*RequestUnstake) Type() ActionType { return ActionTypeRequestUnstake }

// ReleaseToken finalizes an unstake after the release period and returns the
// tokens.
type ReleaseToken struct {
	Staker       Name   `json:"staker"`
	AllocationID uint64 `json:"allocationId"`
}

func (*ReleaseToken) Type() ActionType { return ActionTypeReleaseToken }

// AddYield funds the staking yield pool.
type AddYield struct {
	Sender   Name  `json:"sender"`
	Quantity Asset `json:"quantity"`
}

func (*AddYield) Type() ActionType { return ActionTypeAddYield }

// SetStakingSettings sets the yearly stake pool used to derive the APY.
// Governance only.
type SetStakingSettings struct {
	YearlyStakePool Asset `json:"yearlyStakePool"`
}

func (*SetStakingSettings) Type() ActionType { return ActionTypeSetStakingSettings }

// YieldCron processes one shard of the staker keyspace, compounding yield
// into active allocations.
type YieldCron struct{}

func (*YieldCron) Type() ActionType { return ActionTypeYieldCron }

// SetVestingSettings anchors the sales start and launch dates. Governance
// only; must precede any allocation.
type SetVestingSettings struct {
	SalesStartDate time.Time `json:"salesStartDate"`
	LaunchDate     time.Time `json:"launchDate"`
}

func (*SetVestingSettings) Type() ActionType { return ActionTypeSetVestingSettings }

// AssignTokens creates a vesting allocation for a holder.
type AssignTokens struct {
	Sender   Name  `json:"sender"`
	Holder   Name  `json:"holder"`
	Amount   Asset `json:"amount"`
	Category int   `json:"category"`
}

func (*AssignTokens) Type() ActionType { return ActionTypeAssignTokens }

// Withdraw claims every vested amount the holder is entitled to, as one
// aggregate transfer.
type Withdraw struct {
	Holder Name `json:"holder"`
}

func (*Withdraw) Type() ActionType { return ActionTypeWithdraw }

// MigrateAllocation re-points a vesting allocation to a new amount and
// category. The old values must match the stored row exactly, guarding
// against stale migration calls.
type MigrateAllocation struct {
	Sender       Name   `json:"sender"`
	Holder       Name   `json:"holder"`
	AllocationID uint64 `json:"allocationId"`
	OldAmount    Asset  `json:"oldAmount"`
	NewAmount    Asset  `json:"newAmount"`
	OldCategory  int    `json:"oldCategory"`
	NewCategory  int    `json:"newCategory"`
}

func (*MigrateAllocation) Type() ActionType { return ActionTypeMigrateAllocation }

// NewAccount registers an account's type with the registry. Governance only.
type NewAccount struct {
	Account     Name        `json:"account"`
	AccountType AccountType `json:"accountType"`
}

func (*NewAccount) Type() ActionType { return ActionTypeNewAccount }

// MigrateStats copies the pre-rebrand currency's supply record to the system
// currency. Governance only.
type MigrateStats struct{}

func (*MigrateStats) Type() ActionType { return ActionTypeMigrateStats }

// MigrateAccount copies one account's pre-rebrand balance row to the system
// currency. Governance only.
type MigrateAccount struct {
	Owner Name `json:"owner"`
}

func (*MigrateAccount) Type() ActionType { return ActionTypeMigrateAccount }

// NewActionBody returns a zero-value body for the given type, for decoding
// submitted actions.
func NewActionBody(typ ActionType) (ActionBody, error) {
	switch typ {
	case ActionTypeSetResourceParams:
		return new(SetResourceParams), nil
	case ActionTypeBuyRam:
		return new(BuyRam), nil
	case ActionTypeSellRam:
		return new(SellRam), nil
	case ActionTypeStakeTokens:
		return new(StakeTokens), nil
	case ActionTypeRequestUnstake:
		return new(RequestUnstake), nil
	case ActionTypeReleaseToken:
		return new(ReleaseToken), nil
	case ActionTypeAddYield:
		return new(AddYield), nil
	case ActionTypeSetStakingSettings:
		return new(SetStakingSettings), nil
	case ActionTypeYieldCron:
		return new(YieldCron), nil
	case ActionTypeSetVestingSettings:
		return new(SetVestingSettings), nil
	case ActionTypeAssignTokens:
		return new(AssignTokens), nil
	case ActionTypeWithdraw:
		return new(Withdraw), nil
	case ActionTypeMigrateAllocation:
		return new(MigrateAllocation), nil
	case ActionTypeNewAccount:
		return new(NewAccount), nil
	case ActionTypeMigrateStats:
		return new(MigrateStats), nil
	case ActionTypeMigrateAccount:
		return new(MigrateAccount), nil
	default:
		return nil, errors.BadRequest.WithFormat("unknown action type %q", typ)
	}
}
