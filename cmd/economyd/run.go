// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tonomy/economy/config"
	"gitlab.com/tonomy/economy/internal/accounts"
	"gitlab.com/tonomy/economy/internal/api"
	"gitlab.com/tonomy/economy/internal/database"
	"gitlab.com/tonomy/economy/internal/engine"
	"gitlab.com/tonomy/economy/internal/ledger"
	"gitlab.com/tonomy/economy/internal/logging"
	"gitlab.com/tonomy/economy/internal/scheduler"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue/badger"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue/memory"
	"gitlab.com/tonomy/economy/protocol"
)

var cmdRun = &cobra.Command{
	Use:   "run",
	Short: "Run the economy daemon",
	Args:  cobra.NoArgs,
	Run:   runNode,
}

func init() {
	cmdMain.AddCommand(cmdRun)
}

func runNode(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagMain.WorkDir)
	checkf(err, "load config")

	logger, err := logging.NewConsole(cfg.Logging.Level)
	checkf(err, "configure logging")

	var store keyvalue.Beginner
	switch cfg.Storage.Type {
	case config.StorageMemory:
		store = memory.New()
	case config.StorageBadger:
		bdb, err := badger.New(cfg.StoragePath())
		checkf(err, "open database")
		defer func() { _ = bdb.Close() }()
		store = bdb
	default:
		fatalf("unknown storage type %q", cfg.Storage.Type)
	}

	params := protocol.DefaultParams()
	if cfg.TestMode {
		params = protocol.TestParams()
	}

	db := database.New(store)
	l := ledger.New()
	registry := accounts.New()
	bootstrap(db, l, registry, cfg, logger)

	x, err := engine.New(engine.Options{
		Database: db,
		Ledger:   l,
		Registry: registry,
		Limits:   registry,
		Params:   params,
		Logger:   logger,
	})
	checkf(err, "create engine")

	jrpc, err := api.NewJrpc(api.Options{
		Logger:   logger,
		Engine:   x,
		Database: db,
		Ledger:   l,
		Limits:   registry,
	})
	checkf(err, "create api")

	cronDriver, err := scheduler.New(x, cfg.Cron.Schedule, logger)
	checkf(err, "create scheduler")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              cfg.API.ListenAddress,
		Handler:           jrpc.NewMux(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info().Str("address", cfg.API.ListenAddress).Msg("Listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("API server stopped")
			stop()
		}
	}()

	go func() {
		if err := cronDriver.Run(ctx); err != nil {
			logger.Error().Err(err).Msg("Scheduler stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	check(server.Shutdown(shutdownCtx))
}

// bootstrap seeds the currency and the well-known accounts on first start. A
// store that already carries the currency is left untouched.
func bootstrap(db *database.Database, l *ledger.Ledger, registry *accounts.Registry, cfg *config.Config, logger zerolog.Logger) {
	issuer := protocol.Name(cfg.Genesis.Issuer)
	maxSupply, err := protocol.ParseAsset(cfg.Genesis.MaxSupply)
	checkf(err, "parse genesis max-supply")
	initialSupply, err := protocol.ParseAsset(cfg.Genesis.InitialSupply)
	checkf(err, "parse genesis initial-supply")

	batch := db.Begin(true)
	defer batch.Discard()
	kv := batch.Store()

	created, err := l.Bootstrap(kv, issuer, maxSupply, initialSupply)
	checkf(err, "bootstrap ledger")
	if !created {
		return
	}

	checkf(registry.Register(kv, issuer, protocol.AccountTypeGov), "register issuer")
	for _, name := range []protocol.Name{protocol.StakingContract, protocol.VestingContract} {
		checkf(registry.Register(kv, name, protocol.AccountTypeService), "register %s", name)
	}
	checkf(batch.Commit(), "commit genesis")
	logger.Info().Stringer("supply", initialSupply).Str("issuer", string(issuer)).Msg("Created currency")
}
