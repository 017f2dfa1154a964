// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package ledger

import (
	records "gitlab.com/tonomy/economy/internal/database"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

// MigrateStats copies the pre-rebrand currency's supply record to the system
// currency. The old record is left in place so migration can be audited.
func (l *Ledger) MigrateStats(kv keyvalue.Store) error {
	old, err := getStats(kv, protocol.LEOS.Code)
	if err != nil {
		return errors.UnknownError.WithFormat("migrate stats: %w", err)
	}
	_, err = getStats(kv, protocol.TONO.Code)
	switch {
	case err == nil:
		return errors.Conflict.With("stats already migrated")
	case !errors.Is(err, errors.NotFound):
		return err
	}
	return putStats(kv, &Stats{
		Supply:    protocol.NewAsset(old.Supply.Amount, protocol.TONO),
		MaxSupply: protocol.NewAsset(old.MaxSupply.Amount, protocol.TONO),
		Issuer:    old.Issuer,
	})
}

// MigrateAccount copies one account's pre-rebrand balance row to the system
// currency. Safe to retry: an already-migrated account is a Conflict, not a
// double credit.
func (l *Ledger) MigrateAccount(kv keyvalue.Store, owner protocol.Name) error {
	old, err := records.GetJSON[protocol.Asset](kv, balanceKey(owner, protocol.LEOS.Code))
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return errors.NotFound.WithFormat("no balance to migrate for %s", owner)
		}
		return err
	}
	_, err = records.GetJSON[protocol.Asset](kv, balanceKey(owner, protocol.TONO.Code))
	switch {
	case err == nil:
		return errors.Conflict.WithFormat("%s already migrated", owner)
	case !errors.Is(err, errors.NotFound):
		return err
	}
	return records.PutJSON(kv, balanceKey(owner, protocol.TONO.Code), protocol.NewAsset(old.Amount, protocol.TONO))
}
