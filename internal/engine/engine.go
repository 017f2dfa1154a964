// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package engine executes economy actions. Each action type has an executor;
// an action either fully commits or leaves no trace.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tonomy/economy/internal/database"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

// ActionExecutor validates and executes one action type against a
// StateManager.
type ActionExecutor interface {
	Type() protocol.ActionType

	// Validate checks authority and payload shape without touching state.
	Validate(st *StateManager, body protocol.ActionBody) error

	// Execute applies the action to the open batch.
	Execute(st *StateManager, body protocol.ActionBody) error
}

// Options configures an Engine.
type Options struct {
	Database *database.Database
	Ledger   TokenLedger
	Registry Registry
	Limits   ResourceLimits
	Params   protocol.Params
	Logger   zerolog.Logger

	// Now overrides the engine clock. Nil means time.Now.
	Now func() time.Time
}

// Engine is the deterministic state-transition core. Execute serializes all
// writes; callers may invoke it from multiple goroutines.
type Engine struct {
	mu        sync.Mutex
	db        *database.Database
	ledger    TokenLedger
	registry  Registry
	limits    ResourceLimits
	params    protocol.Params
	logger    zerolog.Logger
	now       func() time.Time
	executors map[protocol.ActionType]ActionExecutor
}

func New(opts Options) (*Engine, error) {
	if opts.Database == nil {
		return nil, errors.BadRequest.With("missing database")
	}
	if opts.Ledger == nil {
		return nil, errors.BadRequest.With("missing token ledger")
	}
	if opts.Registry == nil {
		return nil, errors.BadRequest.With("missing account registry")
	}
	if opts.Limits == nil {
		return nil, errors.BadRequest.With("missing resource limits")
	}
	// Shard selection divides the staking cycle into whole cron periods
	if opts.Params.CronPeriod <= 0 || opts.Params.StakingCycle <= 0 ||
		opts.Params.StakingCycle%opts.Params.CronPeriod != 0 {
		return nil, errors.BadRequest.WithFormat("staking cycle %v is not a multiple of cron period %v",
			opts.Params.StakingCycle, opts.Params.CronPeriod)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	x := &Engine{
		db:        opts.Database,
		ledger:    opts.Ledger,
		registry:  opts.Registry,
		limits:    opts.Limits,
		params:    opts.Params,
		logger:    opts.Logger.With().Str("module", "engine").Logger(),
		now:       now,
		executors: map[protocol.ActionType]ActionExecutor{},
	}

	for _, exec := range []ActionExecutor{
		SetResourceParams{},
		BuyRam{},
		SellRam{},
		StakeTokens{},
		RequestUnstake{},
		ReleaseToken{},
		AddYield{},
		SetStakingSettings{},
		YieldCron{},
		SetVestingSettings{},
		AssignTokens{},
		Withdraw{},
		MigrateAllocation{},
		NewAccount{},
		MigrateStats{},
		MigrateAccount{},
	} {
		if _, ok := x.executors[exec.Type()]; ok {
			return nil, errors.Conflict.WithFormat("duplicate executor for %v", exec.Type())
		}
		x.executors[exec.Type()] = exec
	}
	return x, nil
}

// Execute runs one action as an atomic state transition. The signer is the
// account whose authority backs the action.
func (x *Engine) Execute(ctx context.Context, signer protocol.Name, body protocol.ActionBody) error {
	if err := ctx.Err(); err != nil {
		return errors.UnknownError.Wrap(err)
	}
	start := time.Now()
	err := x.execute(signer, body)
	mActionDuration.Observe(time.Since(start).Seconds())

	typ := string(body.Type())
	if err != nil {
		mActionsFailed.WithLabelValues(typ).Inc()
		x.logger.Debug().Str("action", typ).Str("signer", string(signer)).Err(err).Msg("Action rejected")
		return err
	}
	mActionsExecuted.WithLabelValues(typ).Inc()
	x.logger.Debug().Str("action", typ).Str("signer", string(signer)).Msg("Action executed")
	return nil
}

func (x *Engine) execute(signer protocol.Name, body protocol.ActionBody) error {
	exec, ok := x.executors[body.Type()]
	if !ok {
		return errors.BadRequest.WithFormat("no executor for action type %v", body.Type())
	}
	if err := protocol.CheckName(signer); err != nil {
		return err
	}

	// Actions are serialized; there is no intra-action concurrency.
	x.mu.Lock()
	defer x.mu.Unlock()

	batch := x.db.Begin(true)
	defer batch.Discard()

	st := &StateManager{
		Batch:    batch,
		Now:      x.now(),
		Signer:   signer,
		Params:   x.params,
		Ledger:   x.ledger,
		Registry: x.registry,
		Limits:   x.limits,
	}

	if err := exec.Validate(st, body); err != nil {
		return err
	}
	if err := exec.Execute(st, body); err != nil {
		return err
	}
	if err := st.applyTransfers(); err != nil {
		return err
	}
	return batch.Commit()
}
