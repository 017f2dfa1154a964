// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package api

import (
	"encoding/json"

	"gitlab.com/tonomy/economy/protocol"
)

// SubmitRequest submits one action. Body is the JSON encoding of the action
// body for the given type.
type SubmitRequest struct {
	Signer protocol.Name       `json:"signer" validate:"required"`
	Type   protocol.ActionType `json:"type" validate:"required"`
	Body   json.RawMessage     `json:"body"`
}

type SubmitResponse struct {
	Type protocol.ActionType `json:"type"`
}

type QueryBalanceRequest struct {
	Account protocol.Name `json:"account" validate:"required"`
	Symbol  string        `json:"symbol"`
}

type QueryBalanceResponse struct {
	Account protocol.Name  `json:"account"`
	Balance protocol.Asset `json:"balance"`
}

type QueryStakingRequest struct {
	Staker protocol.Name `json:"staker" validate:"required"`
}

type QueryStakingResponse struct {
	Settings    *protocol.StakingSettings     `json:"settings"`
	Account     *protocol.StakingAccount      `json:"account,omitempty"`
	Allocations []*protocol.StakingAllocation `json:"allocations"`
}

type QueryVestingRequest struct {
	Holder protocol.Name `json:"holder" validate:"required"`
}

type QueryVestingResponse struct {
	Settings    *protocol.VestingSettings    `json:"settings,omitempty"`
	Allocations []*protocol.VestedAllocation `json:"allocations"`
}

type QueryResourcesRequest struct {
	Account protocol.Name `json:"account"`
}

type QueryResourcesResponse struct {
	Config *protocol.ResourceConfig `json:"config"`
	Limits *protocol.ResourceLimit  `json:"limits,omitempty"`
}

type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}
