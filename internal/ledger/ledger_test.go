// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/tonomy/economy/internal/ledger"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue/memory"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

func open(t *testing.T) keyvalue.ChangeSet {
	t.Helper()
	cs := memory.New().Begin(true)
	t.Cleanup(cs.Discard)
	return cs
}

func TestCreateIssueTransfer(t *testing.T) {
	kv := open(t)
	l := ledger.New()

	max := protocol.NewAsset(50_000_000_000_000000, protocol.TONO)
	require.NoError(t, l.Create(kv, protocol.GovernanceAccount, max))

	// duplicate create
	err := l.Create(kv, protocol.GovernanceAccount, max)
	require.True(t, errors.Is(err, errors.Conflict))

	require.NoError(t, l.Issue(kv, protocol.NewAsset(1000_000000, protocol.TONO)))

	b, err := l.BalanceOf(kv, protocol.GovernanceAccount, protocol.TONO)
	require.NoError(t, err)
	require.Equal(t, int64(1000_000000), b.Amount)

	require.NoError(t, l.Transfer(kv, protocol.GovernanceAccount, "palice11111", protocol.NewAsset(400_000000, protocol.TONO), "hello"))

	b, err = l.BalanceOf(kv, "palice11111", protocol.TONO)
	require.NoError(t, err)
	require.Equal(t, int64(400_000000), b.Amount)

	// overdrawn
	err = l.Transfer(kv, "palice11111", "pbob1111111", protocol.NewAsset(500_000000, protocol.TONO), "")
	require.True(t, errors.Is(err, errors.InsufficientFunds))

	// self transfer
	err = l.Transfer(kv, "palice11111", "palice11111", protocol.NewAsset(1, protocol.TONO), "")
	require.True(t, errors.Is(err, errors.BadRequest))
}

func TestIssueBeyondMaxSupply(t *testing.T) {
	kv := open(t)
	l := ledger.New()

	require.NoError(t, l.Create(kv, protocol.GovernanceAccount, protocol.NewAsset(100, protocol.TONO)))
	require.NoError(t, l.Issue(kv, protocol.NewAsset(100, protocol.TONO)))

	err := l.Issue(kv, protocol.NewAsset(1, protocol.TONO))
	require.True(t, errors.Is(err, errors.InsufficientFunds))
}

func TestRetire(t *testing.T) {
	kv := open(t)
	l := ledger.New()

	require.NoError(t, l.Create(kv, protocol.GovernanceAccount, protocol.NewAsset(100, protocol.TONO)))
	require.NoError(t, l.Issue(kv, protocol.NewAsset(100, protocol.TONO)))
	require.NoError(t, l.Retire(kv, protocol.NewAsset(40, protocol.TONO)))

	b, err := l.BalanceOf(kv, protocol.GovernanceAccount, protocol.TONO)
	require.NoError(t, err)
	require.Equal(t, int64(60), b.Amount)
}

func TestOpenClose(t *testing.T) {
	kv := open(t)
	l := ledger.New()

	require.NoError(t, l.Create(kv, protocol.GovernanceAccount, protocol.NewAsset(100, protocol.TONO)))
	require.NoError(t, l.Open(kv, "palice11111", protocol.TONO))
	require.NoError(t, l.Open(kv, "palice11111", protocol.TONO)) // idempotent

	err := l.Open(kv, "palice11111", protocol.Symbol{Code: "TONO", Precision: 4})
	require.True(t, errors.Is(err, errors.BadRequest))

	require.NoError(t, l.Close(kv, "palice11111", protocol.TONO))

	err = l.Close(kv, "palice11111", protocol.TONO)
	require.True(t, errors.Is(err, errors.NotFound))
}

func TestCloseNonZero(t *testing.T) {
	kv := open(t)
	l := ledger.New()

	require.NoError(t, l.Create(kv, protocol.GovernanceAccount, protocol.NewAsset(100, protocol.TONO)))
	require.NoError(t, l.Issue(kv, protocol.NewAsset(10, protocol.TONO)))

	err := l.Close(kv, protocol.GovernanceAccount, protocol.TONO)
	require.True(t, errors.Is(err, errors.Conflict))
}

func TestBootstrap(t *testing.T) {
	kv := open(t)
	l := ledger.New()

	max := protocol.NewAsset(1000, protocol.TONO)
	initial := protocol.NewAsset(600, protocol.TONO)

	created, err := l.Bootstrap(kv, protocol.GovernanceAccount, max, initial)
	require.NoError(t, err)
	require.True(t, created)

	b, err := l.BalanceOf(kv, protocol.GovernanceAccount, protocol.TONO)
	require.NoError(t, err)
	require.Equal(t, int64(600), b.Amount)

	// a restart leaves the supply alone
	created, err = l.Bootstrap(kv, protocol.GovernanceAccount, max, initial)
	require.NoError(t, err)
	require.False(t, created)

	b, err = l.BalanceOf(kv, protocol.GovernanceAccount, protocol.TONO)
	require.NoError(t, err)
	require.Equal(t, int64(600), b.Amount)

	// mismatched supply symbols
	_, err = l.Bootstrap(kv, protocol.GovernanceAccount, max, protocol.NewAsset(600, protocol.LEOS))
	require.True(t, errors.Is(err, errors.BadRequest))
}

func TestBootstrapBeyondMaxSupply(t *testing.T) {
	kv := open(t)
	l := ledger.New()

	_, err := l.Bootstrap(kv, protocol.GovernanceAccount, protocol.NewAsset(100, protocol.TONO), protocol.NewAsset(200, protocol.TONO))
	require.True(t, errors.Is(err, errors.InsufficientFunds))
}

func TestMigration(t *testing.T) {
	kv := open(t)
	l := ledger.New()

	require.NoError(t, l.Create(kv, protocol.GovernanceAccount, protocol.NewAsset(1000, protocol.LEOS)))
	require.NoError(t, l.Issue(kv, protocol.NewAsset(500, protocol.LEOS)))
	require.NoError(t, l.Transfer(kv, protocol.GovernanceAccount, "palice11111", protocol.NewAsset(200, protocol.LEOS), ""))

	require.NoError(t, l.MigrateStats(kv))
	err := l.MigrateStats(kv)
	require.True(t, errors.Is(err, errors.Conflict))

	require.NoError(t, l.MigrateAccount(kv, "palice11111"))
	err = l.MigrateAccount(kv, "palice11111")
	require.True(t, errors.Is(err, errors.Conflict))

	err = l.MigrateAccount(kv, "pbob1111111")
	require.True(t, errors.Is(err, errors.NotFound))

	b, err := l.BalanceOf(kv, "palice11111", protocol.TONO)
	require.NoError(t, err)
	require.Equal(t, int64(200), b.Amount)

	// old row survives for auditing
	b, err = l.BalanceOf(kv, "palice11111", protocol.LEOS)
	require.NoError(t, err)
	require.Equal(t, int64(200), b.Amount)
}
