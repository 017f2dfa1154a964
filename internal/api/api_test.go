// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package api_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/AccumulateNetwork/jsonrpc2/v15"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gitlab.com/tonomy/economy/internal/accounts"
	"gitlab.com/tonomy/economy/internal/api"
	"gitlab.com/tonomy/economy/internal/database"
	"gitlab.com/tonomy/economy/internal/engine"
	"gitlab.com/tonomy/economy/internal/ledger"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue/memory"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

func newJrpc(t *testing.T) *api.JrpcMethods {
	t.Helper()

	db := database.New(memory.New())
	l := ledger.New()
	reg := accounts.New()
	x, err := engine.New(engine.Options{
		Database: db,
		Ledger:   l,
		Registry: reg,
		Limits:   reg,
		Params:   protocol.TestParams(),
		Logger:   zerolog.Nop(),
	})
	require.NoError(t, err)

	batch := db.Begin(true)
	defer batch.Discard()
	kv := batch.Store()
	require.NoError(t, l.Create(kv, protocol.GovernanceAccount, protocol.NewAsset(1_000_000_000000, protocol.TONO)))
	require.NoError(t, l.Issue(kv, protocol.NewAsset(100_000_000000, protocol.TONO)))
	require.NoError(t, l.Transfer(kv, protocol.GovernanceAccount, "palice11111", protocol.NewAsset(10_000_000000, protocol.TONO), "genesis"))
	require.NoError(t, batch.Commit())

	m, err := api.NewJrpc(api.Options{
		Logger:   zerolog.Nop(),
		Engine:   x,
		Database: db,
		Ledger:   l,
		Limits:   reg,
	})
	require.NoError(t, err)
	return m
}

func params(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestSubmitAndQuery(t *testing.T) {
	m := newJrpc(t)
	ctx := context.Background()

	body := params(t, &protocol.StakeTokens{
		Staker:   "palice11111",
		Quantity: protocol.NewAsset(1000_000000, protocol.TONO),
	})
	r := m.Submit(ctx, params(t, &api.SubmitRequest{
		Signer: "palice11111",
		Type:   protocol.ActionTypeStakeTokens,
		Body:   body,
	}))
	resp, ok := r.(api.SubmitResponse)
	require.True(t, ok, "submit failed: %v", r)
	require.Equal(t, protocol.ActionTypeStakeTokens, resp.Type)

	r = m.QueryStaking(ctx, params(t, &api.QueryStakingRequest{Staker: "palice11111"}))
	staking, ok := r.(api.QueryStakingResponse)
	require.True(t, ok, "query failed: %v", r)
	require.Len(t, staking.Allocations, 1)
	require.Equal(t, int64(1000_000000), staking.Settings.TotalStaked.Amount)

	r = m.QueryBalance(ctx, params(t, &api.QueryBalanceRequest{Account: "palice11111"}))
	balance, ok := r.(api.QueryBalanceResponse)
	require.True(t, ok, "query failed: %v", r)
	require.Equal(t, int64(9_000_000000), balance.Balance.Amount)
}

func TestSubmitErrorsCarryStatus(t *testing.T) {
	m := newJrpc(t)
	ctx := context.Background()

	// Unauthorized signer
	r := m.Submit(ctx, params(t, &api.SubmitRequest{
		Signer: "pbob1111111",
		Type:   protocol.ActionTypeStakeTokens,
		Body: params(t, &protocol.StakeTokens{
			Staker:   "palice11111",
			Quantity: protocol.NewAsset(1000_000000, protocol.TONO),
		}),
	}))
	jerr, ok := r.(jsonrpc2.Error)
	require.True(t, ok, "expected an error, got %T", r)
	require.Equal(t, api.ErrCodeBase-jsonrpc2.ErrorCode(errors.Unauthorized), jerr.Code)

	// Missing required fields
	r = m.Submit(ctx, params(t, &api.SubmitRequest{Type: protocol.ActionTypeYieldCron}))
	jerr, ok = r.(jsonrpc2.Error)
	require.True(t, ok)
	require.Equal(t, api.ErrCodeBase-jsonrpc2.ErrorCode(errors.BadRequest), jerr.Code)
}

func TestQueryResources(t *testing.T) {
	m := newJrpc(t)
	ctx := context.Background()

	r := m.QueryResources(ctx, nil)
	resources, ok := r.(api.QueryResourcesResponse)
	require.True(t, ok, "query failed: %v", r)
	require.NotNil(t, resources.Config)
	require.Nil(t, resources.Limits)
}
