// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package engine

import (
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

// SetResourceParams creates or overwrites the resource market singleton.
type SetResourceParams struct{}

func (SetResourceParams) Type() protocol.ActionType { return protocol.ActionTypeSetResourceParams }

func (SetResourceParams) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.SetResourceParams)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	if err := st.RequireGovernance(); err != nil {
		return err
	}
	if b.RamPrice < 0 {
		return errors.BadRequest.With("RAM price must be non-negative")
	}
	if b.RamFee < 0 {
		return errors.BadRequest.With("RAM fee must be non-negative")
	}
	return nil
}

func (SetResourceParams) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.SetResourceParams)

	cfg, err := st.ResourceConfig()
	switch {
	case err == nil:
		// ok
	case errors.Is(err, errors.NotFound):
		cfg = new(protocol.ResourceConfig)
	default:
		return err
	}

	if b.TotalRamAvailable < cfg.TotalRamUsed {
		return errors.BadRequest.WithFormat("total RAM available (%d) cannot drop below RAM in use (%d)", b.TotalRamAvailable, cfg.TotalRamUsed)
	}

	cfg.RamPrice = b.RamPrice
	cfg.RamFee = b.RamFee
	cfg.TotalRamAvailable = b.TotalRamAvailable
	return st.PutResourceConfig(cfg)
}
