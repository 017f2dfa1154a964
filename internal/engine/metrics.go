// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mActionsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "economy",
		Subsystem: "engine",
		Name:      "actions_executed_total",
		Help:      "Actions executed and committed, by type.",
	}, []string{"type"})

	mActionsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "economy",
		Subsystem: "engine",
		Name:      "actions_failed_total",
		Help:      "Actions rejected or aborted, by type.",
	}, []string{"type"})

	mActionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "economy",
		Subsystem: "engine",
		Name:      "action_duration_seconds",
		Help:      "Wall time spent executing one action.",
		Buckets:   prometheus.ExponentialBuckets(1e-5, 10, 6),
	})

	mYieldMinted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "economy",
		Subsystem: "staking",
		Name:      "yield_minted_units_total",
		Help:      "Yield minted by cron passes, in smallest currency units.",
	})

	mCronAccounts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "economy",
		Subsystem: "staking",
		Name:      "cron_accounts_processed_total",
		Help:      "Staking accounts processed by cron passes.",
	})
)
