// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/tonomy/economy/config"
	"gitlab.com/tonomy/economy/protocol"
)

func TestStoreLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	c := config.Default(dir)
	c.Storage.Type = config.StorageMemory
	c.Cron.Schedule = "@every 10s"
	require.NoError(t, config.Store(c))

	loaded, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, config.StorageMemory, loaded.Storage.Type)
	require.Equal(t, "@every 10s", loaded.Cron.Schedule)
	require.Equal(t, dir, loaded.RootDir)
	require.Equal(t, c.Genesis, loaded.Genesis)
}

// TestGenesisDefaults pins the default genesis supplies to parseable system
// currency amounts, so a freshly initialized node can seed its ledger.
func TestGenesisDefaults(t *testing.T) {
	c := config.Default(t.TempDir())

	maxSupply, err := protocol.ParseAsset(c.Genesis.MaxSupply)
	require.NoError(t, err)
	require.Equal(t, protocol.TONO, maxSupply.Symbol)

	initialSupply, err := protocol.ParseAsset(c.Genesis.InitialSupply)
	require.NoError(t, err)
	require.Equal(t, protocol.TONO, initialSupply.Symbol)
	require.Less(t, initialSupply.Amount, maxSupply.Amount)

	require.NoError(t, protocol.CheckName(protocol.Name(c.Genesis.Issuer)))
}

func TestValidate(t *testing.T) {
	c := config.Default(t.TempDir())
	require.NoError(t, c.Validate())

	c.Storage.Type = "postgres"
	require.Error(t, c.Validate())

	c = config.Default(t.TempDir())
	c.API.ListenAddress = ""
	require.Error(t, c.Validate())

	c = config.Default(t.TempDir())
	c.Genesis.Issuer = ""
	require.Error(t, c.Validate())
}

func TestLoadMissing(t *testing.T) {
	_, err := config.Load(t.TempDir())
	require.Error(t, err)
}
