// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package engine

import (
	"time"

	"gitlab.com/tonomy/economy/internal/database"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

// StateManager carries everything one action execution may touch: the open
// batch, the clock, the signer, and the queue of outbound transfers.
type StateManager struct {
	*database.Batch

	Now      time.Time
	Signer   protocol.Name
	Params   protocol.Params
	Ledger   TokenLedger
	Registry Registry
	Limits   ResourceLimits

	transfers []pendingTransfer
}

type pendingTransfer struct {
	From, To protocol.Name
	Quantity protocol.Asset
	Memo     string
}

// RequireAuthority rejects the action unless it was signed by the named
// account.
func (st *StateManager) RequireAuthority(name protocol.Name) error {
	if st.Signer != name {
		return errors.Unauthorized.WithFormat("missing authority of %s", name)
	}
	return nil
}

// RequireGovernance rejects the action unless it was signed by the
// governance account.
func (st *StateManager) RequireGovernance() error {
	return st.RequireAuthority(protocol.GovernanceAccount)
}

// Transfer queues a token movement. Queued transfers are applied through the
// ledger only after the executor succeeds, inside the same commit.
func (st *StateManager) Transfer(from, to protocol.Name, quantity protocol.Asset, memo string) {
	st.transfers = append(st.transfers, pendingTransfer{From: from, To: to, Quantity: quantity, Memo: memo})
}

func (st *StateManager) applyTransfers() error {
	for _, t := range st.transfers {
		if err := st.Ledger.Transfer(st.Store(), t.From, t.To, t.Quantity, t.Memo); err != nil {
			return errors.UnknownError.WithFormat("transfer %v from %s to %s: %w", t.Quantity, t.From, t.To, err)
		}
	}
	return nil
}

// stakingSettings loads the staking singleton, creating zeroed settings on
// first use.
func (st *StateManager) stakingSettings() (*protocol.StakingSettings, error) {
	s, err := st.StakingSettings()
	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, errors.NotFound):
		return protocol.NewStakingSettings(), nil
	default:
		return nil, err
	}
}
