// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package accounts_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/tonomy/economy/internal/accounts"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue/memory"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

func TestRegister(t *testing.T) {
	kv := memory.New().Begin(true)
	defer kv.Discard()
	r := accounts.New()

	require.NoError(t, r.Register(kv, "demo.app", protocol.AccountTypeApp))
	require.NoError(t, r.Register(kv, "demo.app", protocol.AccountTypeApp)) // idempotent

	err := r.Register(kv, "demo.app", protocol.AccountTypePerson)
	require.True(t, errors.Is(err, errors.Conflict))

	err = r.Register(kv, "Invalid Name", protocol.AccountTypeApp)
	require.True(t, errors.Is(err, errors.BadRequest))

	typ, err := r.AccountType(kv, "demo.app")
	require.NoError(t, err)
	require.Equal(t, protocol.AccountTypeApp, typ)

	_, err = r.AccountType(kv, "nobody")
	require.True(t, errors.Is(err, errors.NotFound))
}

func TestLimits(t *testing.T) {
	kv := memory.New().Begin(true)
	defer kv.Discard()
	r := accounts.New()

	lim, err := r.GetLimits(kv, "demo.app")
	require.NoError(t, err)
	require.Zero(t, lim.RAM)

	require.NoError(t, r.SetLimits(kv, "demo.app", protocol.ResourceLimit{RAM: 4096}))
	lim, err = r.GetLimits(kv, "demo.app")
	require.NoError(t, err)
	require.Equal(t, int64(4096), lim.RAM)

	err = r.SetLimits(kv, "demo.app", protocol.ResourceLimit{RAM: -1})
	require.True(t, errors.Is(err, errors.BadRequest))
}
