// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package api

import (
	"context"
	"encoding/json"

	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

// Version reports the daemon version.
func (m *JrpcMethods) Version(_ context.Context, _ json.RawMessage) interface{} {
	return VersionResponse{Version: Version, Commit: Commit}
}

// Submit decodes and executes one action.
func (m *JrpcMethods) Submit(ctx context.Context, params json.RawMessage) interface{} {
	req := SubmitRequest{}
	if err := json.Unmarshal(params, &req); err != nil {
		return validatorError(err)
	}
	if err := m.validate.Struct(&req); err != nil {
		return validatorError(err)
	}

	body, err := protocol.NewActionBody(req.Type)
	if err != nil {
		return engineError(err)
	}
	if len(req.Body) > 0 {
		if err := json.Unmarshal(req.Body, body); err != nil {
			return validatorError(err)
		}
	}

	if err := m.Engine.Execute(ctx, req.Signer, body); err != nil {
		return engineError(err)
	}
	return SubmitResponse{Type: req.Type}
}

// QueryBalance returns an account's token balance.
func (m *JrpcMethods) QueryBalance(_ context.Context, params json.RawMessage) interface{} {
	req := QueryBalanceRequest{}
	if err := json.Unmarshal(params, &req); err != nil {
		return validatorError(err)
	}
	if err := m.validate.Struct(&req); err != nil {
		return validatorError(err)
	}

	symbol := protocol.TONO
	if req.Symbol != "" && req.Symbol != protocol.TONO.Code {
		if req.Symbol != protocol.LEOS.Code {
			return engineError(errors.BadRequest.WithFormat("unknown symbol %q", req.Symbol))
		}
		symbol = protocol.LEOS
	}

	batch := m.Database.Begin(false)
	defer batch.Discard()
	balance, err := m.Ledger.BalanceOf(batch.Store(), req.Account, symbol)
	if err != nil {
		return engineError(err)
	}
	return QueryBalanceResponse{Account: req.Account, Balance: balance}
}

// QueryStaking returns the staking settings plus a staker's account and
// allocations.
func (m *JrpcMethods) QueryStaking(_ context.Context, params json.RawMessage) interface{} {
	req := QueryStakingRequest{}
	if err := json.Unmarshal(params, &req); err != nil {
		return validatorError(err)
	}
	if err := m.validate.Struct(&req); err != nil {
		return validatorError(err)
	}

	batch := m.Database.Begin(false)
	defer batch.Discard()

	resp := QueryStakingResponse{}
	settings, err := batch.StakingSettings()
	switch {
	case err == nil:
		resp.Settings = settings
	case errors.Is(err, errors.NotFound):
		resp.Settings = protocol.NewStakingSettings()
	default:
		return engineError(err)
	}

	account, err := batch.StakingAccount(req.Staker)
	switch {
	case err == nil:
		resp.Account = account
	case !errors.Is(err, errors.NotFound):
		return engineError(err)
	}

	set, err := batch.StakingAllocations(req.Staker)
	if err != nil {
		return engineError(err)
	}
	resp.Allocations = set.Allocations
	return resp
}

// QueryVesting returns the vesting settings and a holder's allocations.
func (m *JrpcMethods) QueryVesting(_ context.Context, params json.RawMessage) interface{} {
	req := QueryVestingRequest{}
	if err := json.Unmarshal(params, &req); err != nil {
		return validatorError(err)
	}
	if err := m.validate.Struct(&req); err != nil {
		return validatorError(err)
	}

	batch := m.Database.Begin(false)
	defer batch.Discard()

	resp := QueryVestingResponse{}
	settings, err := batch.VestingSettings()
	switch {
	case err == nil:
		resp.Settings = settings
	case !errors.Is(err, errors.NotFound):
		return engineError(err)
	}

	set, err := batch.VestingAllocations(req.Holder)
	if err != nil {
		return engineError(err)
	}
	resp.Allocations = set.Allocations
	return resp
}

// QueryResources returns the resource market config and, if an account is
// given, its limits.
func (m *JrpcMethods) QueryResources(_ context.Context, params json.RawMessage) interface{} {
	req := QueryResourcesRequest{}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return validatorError(err)
		}
	}

	batch := m.Database.Begin(false)
	defer batch.Discard()

	resp := QueryResourcesResponse{}
	cfg, err := batch.ResourceConfig()
	switch {
	case err == nil:
		resp.Config = cfg
	case errors.Is(err, errors.NotFound):
		resp.Config = new(protocol.ResourceConfig)
	default:
		return engineError(err)
	}

	if req.Account != "" {
		lim, err := m.Limits.GetLimits(batch.Store(), req.Account)
		if err != nil {
			return engineError(err)
		}
		resp.Limits = &lim
	}
	return resp
}
