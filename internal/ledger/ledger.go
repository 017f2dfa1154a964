// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package ledger is the fungible-token ledger the economy engine moves value
// through. Methods take the caller's key-value store so ledger writes land in
// the same atomic commit as the action that caused them.
package ledger

import (
	records "gitlab.com/tonomy/economy/internal/database"
	"gitlab.com/tonomy/economy/pkg/database"
	"gitlab.com/tonomy/economy/pkg/database/keyvalue"
	"gitlab.com/tonomy/economy/pkg/errors"
	"gitlab.com/tonomy/economy/protocol"
)

// Stats tracks a currency's supply.
type Stats struct {
	Supply    protocol.Asset `json:"supply"`
	MaxSupply protocol.Asset `json:"maxSupply"`
	Issuer    protocol.Name  `json:"issuer"`
}

// Ledger is stateless; all state lives in the store passed to each call.
type Ledger struct{}

func New() *Ledger { return &Ledger{} }

func statsKey(code string) *database.Key {
	return database.NewKey("Token", "Stats", code)
}

func balanceKey(owner protocol.Name, code string) *database.Key {
	return database.NewKey("Token", "Balance", string(owner), code)
}

// Create registers a currency with a maximum supply.
func (l *Ledger) Create(kv keyvalue.Store, issuer protocol.Name, maxSupply protocol.Asset) error {
	if !maxSupply.IsPositive() {
		return errors.BadRequest.With("max-supply must be positive")
	}
	_, err := getStats(kv, maxSupply.Symbol.Code)
	switch {
	case err == nil:
		return errors.Conflict.WithFormat("token with symbol %s already exists", maxSupply.Symbol.Code)
	case !errors.Is(err, errors.NotFound):
		return err
	}
	return putStats(kv, &Stats{
		Supply:    protocol.Zero(maxSupply.Symbol),
		MaxSupply: maxSupply,
		Issuer:    issuer,
	})
}

// Issue mints tokens to the issuer, bounded by the maximum supply.
func (l *Ledger) Issue(kv keyvalue.Store, quantity protocol.Asset) error {
	st, err := getStats(kv, quantity.Symbol.Code)
	if err != nil {
		return errors.UnknownError.WithFormat("issue: %w", err)
	}
	if err := protocol.CheckQuantity(quantity, st.Supply.Symbol); err != nil {
		return err
	}
	if quantity.Amount > st.MaxSupply.Amount-st.Supply.Amount {
		return errors.InsufficientFunds.With("quantity exceeds available supply")
	}
	st.Supply = st.Supply.MustAdd(quantity)
	if err := putStats(kv, st); err != nil {
		return err
	}
	return l.addBalance(kv, st.Issuer, quantity)
}

// Retire burns tokens from the issuer's balance.
func (l *Ledger) Retire(kv keyvalue.Store, quantity protocol.Asset) error {
	st, err := getStats(kv, quantity.Symbol.Code)
	if err != nil {
		return errors.UnknownError.WithFormat("retire: %w", err)
	}
	if err := protocol.CheckQuantity(quantity, st.Supply.Symbol); err != nil {
		return err
	}
	st.Supply = st.Supply.MustSub(quantity)
	if err := putStats(kv, st); err != nil {
		return err
	}
	return l.subBalance(kv, st.Issuer, quantity)
}

// Transfer moves tokens between accounts. The engine has already verified the
// sender's authority.
func (l *Ledger) Transfer(kv keyvalue.Store, from, to protocol.Name, quantity protocol.Asset, memo string) error {
	if from == to {
		return errors.BadRequest.With("cannot transfer to self")
	}
	if len(memo) > 256 {
		return errors.BadRequest.With("memo has more than 256 bytes")
	}
	st, err := getStats(kv, quantity.Symbol.Code)
	if err != nil {
		return errors.UnknownError.WithFormat("transfer: %w", err)
	}
	if err := protocol.CheckQuantity(quantity, st.Supply.Symbol); err != nil {
		return err
	}
	if err := l.subBalance(kv, from, quantity); err != nil {
		return err
	}
	return l.addBalance(kv, to, quantity)
}

// BalanceOf returns an account's balance, zero if the account has no row.
func (l *Ledger) BalanceOf(kv keyvalue.Store, owner protocol.Name, symbol protocol.Symbol) (protocol.Asset, error) {
	b, err := records.GetJSON[protocol.Asset](kv, balanceKey(owner, symbol.Code))
	switch {
	case err == nil:
		return *b, nil
	case errors.Is(err, errors.NotFound):
		return protocol.Zero(symbol), nil
	default:
		return protocol.Asset{}, err
	}
}

func (l *Ledger) subBalance(kv keyvalue.Store, owner protocol.Name, value protocol.Asset) error {
	b, err := records.GetJSON[protocol.Asset](kv, balanceKey(owner, value.Symbol.Code))
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return errors.NotFound.WithFormat("no balance object found for %s", owner)
		}
		return err
	}
	if b.Amount < value.Amount {
		return errors.InsufficientFunds.WithFormat("overdrawn balance: %s has %v, needs %v", owner, b, value)
	}
	nb := b.MustSub(value)
	return records.PutJSON(kv, balanceKey(owner, value.Symbol.Code), nb)
}

func (l *Ledger) addBalance(kv keyvalue.Store, owner protocol.Name, value protocol.Asset) error {
	b, err := l.BalanceOf(kv, owner, value.Symbol)
	if err != nil {
		return err
	}
	nb := b.MustAdd(value)
	return records.PutJSON(kv, balanceKey(owner, value.Symbol.Code), nb)
}

// Open creates a zero balance row so an account can receive the currency
// without the sender paying for the row.
func (l *Ledger) Open(kv keyvalue.Store, owner protocol.Name, symbol protocol.Symbol) error {
	st, err := getStats(kv, symbol.Code)
	if err != nil {
		return errors.UnknownError.WithFormat("open: %w", err)
	}
	if !st.Supply.Symbol.Equal(symbol) {
		return errors.BadRequest.With("symbol precision mismatch")
	}
	_, err = records.GetJSON[protocol.Asset](kv, balanceKey(owner, symbol.Code))
	switch {
	case err == nil:
		return nil // already open
	case !errors.Is(err, errors.NotFound):
		return err
	}
	return records.PutJSON(kv, balanceKey(owner, symbol.Code), protocol.Zero(symbol))
}

// Close removes a zero balance row.
func (l *Ledger) Close(kv keyvalue.Store, owner protocol.Name, symbol protocol.Symbol) error {
	b, err := records.GetJSON[protocol.Asset](kv, balanceKey(owner, symbol.Code))
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return errors.NotFound.With("balance row already deleted or never existed")
		}
		return err
	}
	if !b.IsZero() {
		return errors.Conflict.With("cannot close because the balance is not zero")
	}
	return kv.Delete(balanceKey(owner, symbol.Code))
}

func getStats(kv keyvalue.Store, code string) (*Stats, error) {
	return records.GetJSON[Stats](kv, statsKey(code))
}

func putStats(kv keyvalue.Store, st *Stats) error {
	return records.PutJSON(kv, statsKey(st.Supply.Symbol.Code), st)
}
