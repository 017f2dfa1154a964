// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package ledger

import (
	"gitlab.com/tonomy/economy/pkg/database/keyvalue"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

// Bootstrap creates the currency and mints the initial supply to the issuer.
// A currency that already exists is left untouched, so the daemon can call
// this on every start. It reports whether the currency was created.
func (l *Ledger) Bootstrap(kv keyvalue.Store, issuer protocol.Name, maxSupply, initialSupply protocol.Asset) (bool, error) {
	if err := protocol.CheckName(issuer); err != nil {
		return false, err
	}
	if err := protocol.CheckQuantity(initialSupply, maxSupply.Symbol); err != nil {
		return false, err
	}

	_, err := getStats(kv, maxSupply.Symbol.Code)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, errors.NotFound):
		return false, err
	}

	if err := l.Create(kv, issuer, maxSupply); err != nil {
		return false, err
	}
	if err := l.Issue(kv, initialSupply); err != nil {
		return false, err
	}
	return true, nil
}
