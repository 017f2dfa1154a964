// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package scheduler drives the yield cron on a fixed wall-clock cadence.
// Shard selection lives in the engine; the scheduler only re-invokes the
// action on time.
package scheduler

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gitlab.com/tonomy/economy/internal/engine"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

var (
	mPasses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "economy",
		Subsystem: "scheduler",
		Name:      "cron_passes_total",
		Help:      "Yield cron passes triggered by the scheduler.",
	})
	mPassErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "economy",
		Subsystem: "scheduler",
		Name:      "cron_pass_errors_total",
		Help:      "Yield cron passes that were rejected.",
	})
)

// Parser accepts standard cron expressions with a seconds field, plus
// descriptors such as "@every 1h".
var Parser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Scheduler invokes the yield cron according to a cron schedule.
type Scheduler struct {
	engine   *engine.Engine
	schedule cron.Schedule
	logger   zerolog.Logger
}

// New parses the schedule spec and returns a scheduler. The spec should fire
// once per cron period.
func New(x *engine.Engine, spec string, logger zerolog.Logger) (*Scheduler, error) {
	schedule, err := Parser.Parse(spec)
	if err != nil {
		return nil, errors.BadRequest.WithFormat("parse cron schedule %q: %w", spec, err)
	}
	return &Scheduler{
		engine:   x,
		schedule: schedule,
		logger:   logger.With().Str("module", "scheduler").Logger(),
	}, nil
}

// Run fires the yield cron until the context is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		next := s.schedule.Next(time.Now())
		timer.Reset(time.Until(next))

		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		mPasses.Inc()
		err := s.engine.Execute(ctx, protocol.GovernanceAccount, &protocol.YieldCron{})
		if err != nil {
			mPassErrors.Inc()
			s.logger.Warn().Err(err).Msg("Yield cron pass rejected")
			continue
		}
		s.logger.Debug().Time("next", s.schedule.Next(time.Now())).Msg("Yield cron pass complete")
	}
}
