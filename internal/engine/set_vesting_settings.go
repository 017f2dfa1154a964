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

// SetVestingSettings anchors the sales start and launch dates. Every vesting
// schedule is computed relative to these.
type SetVestingSettings struct{}

func (SetVestingSettings) Type() protocol.ActionType { return protocol.ActionTypeSetVestingSettings }

func (SetVestingSettings) Validate(st *StateManager, body protocol.ActionBody) error {
	b, ok := body.(*protocol.SetVestingSettings)
	if !ok {
		return errors.BadRequest.WithFormat("invalid payload: want %T, got %T", b, body)
	}
	if err := st.RequireGovernance(); err != nil {
		return err
	}
	if b.SalesStartDate.IsZero() || b.LaunchDate.IsZero() {
		return errors.BadRequest.With("sales start and launch dates must be set")
	}
	if b.LaunchDate.Before(b.SalesStartDate) {
		return errors.BadRequest.With("launch date cannot precede the sales start date")
	}
	return nil
}

func (SetVestingSettings) Execute(st *StateManager, body protocol.ActionBody) error {
	b := body.(*protocol.SetVestingSettings)
	return st.PutVestingSettings(&protocol.VestingSettings{
		SalesStartDate: b.SalesStartDate,
		LaunchDate:     b.LaunchDate,
	})
}
