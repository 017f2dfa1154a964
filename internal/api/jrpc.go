// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package api exposes the economy engine over JSON-RPC 2.0.
package api

import (
	stdlog "log"
	"net/http"
	"os"

	"github.com/AccumulateNetwork/jsonrpc2/v15"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gitlab.com/tonomy/economy/internal/database"
	"gitlab.com/tonomy/economy/internal/engine"
	"gitlab.com/tonomy/economy/internal/ledger"
	"gitlab.com/tonomy/economy/pkg/errors"
)

// ErrCodeBase anchors the mapping of engine status codes into JSON-RPC error
// codes: code = ErrCodeBase - status.
const ErrCodeBase jsonrpc2.ErrorCode = -33000

// Options configures the RPC surface.
type Options struct {
	Logger   zerolog.Logger
	Engine   *engine.Engine
	Database *database.Database
	Ledger   *ledger.Ledger
	Limits   engine.ResourceLimits
}

// JrpcMethods is the JSON-RPC method table.
type JrpcMethods struct {
	Options
	methods  jsonrpc2.MethodMap
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewJrpc(opts Options) (*JrpcMethods, error) {
	if opts.Engine == nil || opts.Database == nil || opts.Ledger == nil || opts.Limits == nil {
		return nil, errors.BadRequest.With("missing engine, database, ledger, or limits")
	}

	m := new(JrpcMethods)
	m.Options = opts
	m.logger = opts.Logger.With().Str("module", "jrpc").Logger()
	m.validate = validator.New()
	m.methods = jsonrpc2.MethodMap{
		"version":         m.Version,
		"submit":          m.Submit,
		"query-balance":   m.QueryBalance,
		"query-staking":   m.QueryStaking,
		"query-vesting":   m.QueryVesting,
		"query-resources": m.QueryResources,
	}
	return m, nil
}

// NewMux routes the RPC endpoint and Prometheus metrics.
func (m *JrpcMethods) NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/v1", jsonrpc2.HTTPRequestHandler(m.methods, stdlog.New(os.Stdout, "", 0)))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func validatorError(err error) jsonrpc2.Error {
	return jsonrpc2.NewError(ErrCodeBase-jsonrpc2.ErrorCode(errors.BadRequest), "Validation Error", err.Error())
}

// engineError converts a status-coded engine error into a JSON-RPC error
// whose code preserves the status.
func engineError(err error) jsonrpc2.Error {
	return jsonrpc2.NewError(ErrCodeBase-jsonrpc2.ErrorCode(errors.Code(err)), "Economy Error", err.Error())
}
