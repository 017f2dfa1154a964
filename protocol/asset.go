// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/tonomy/economy/pkg/errors"
)

// Symbol identifies a currency: an upper-case code and a fixed decimal
// precision.
type Symbol struct {
	Code      string `json:"code"`
	Precision uint8  `json:"precision"`
}

func (s Symbol) Equal(t Symbol) bool { return s.Code == t.Code && s.Precision == t.Precision }

func (s Symbol) String() string { return fmt.Sprintf("%d,%s", s.Precision, s.Code) }

// Unit returns the smallest representable amount as a power of ten.
func (s Symbol) Unit() int64 {
	u := int64(1)
	for i := uint8(0); i < s.Precision; i++ {
		u *= 10
	}
	return u
}

// Asset is a fixed-point quantity of a currency. Amount is denominated in the
// symbol's smallest unit: 1.000000 TONO has Amount 1000000.
type Asset struct {
	Amount int64  `json:"amount"`
	Symbol Symbol `json:"symbol"`
}

func NewAsset(amount int64, symbol Symbol) Asset {
	return Asset{Amount: amount, Symbol: symbol}
}

// Zero returns a zero quantity of the symbol.
func Zero(symbol Symbol) Asset { return Asset{Symbol: symbol} }

func (a Asset) IsZero() bool     { return a.Amount == 0 }
func (a Asset) IsPositive() bool { return a.Amount > 0 }

func (a Asset) String() string {
	unit := a.Symbol.Unit()
	whole, frac := a.Amount/unit, a.Amount%unit
	sign := ""
	if a.Amount < 0 {
		sign, whole, frac = "-", -whole, -frac
	}
	if a.Symbol.Precision == 0 {
		return fmt.Sprintf("%s%d %s", sign, whole, a.Symbol.Code)
	}
	return fmt.Sprintf("%s%d.%0*d %s", sign, whole, a.Symbol.Precision, frac, a.Symbol.Code)
}

// ParseAsset parses a quantity such as "1000.000000 TONO". The number of
// decimal places fixes the precision; no implicit truncation occurs.
func ParseAsset(s string) (Asset, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Asset{}, errors.BadRequest.WithFormat("invalid asset %q", s)
	}
	num, code := fields[0], fields[1]

	whole, frac, _ := strings.Cut(num, ".")
	precision := uint8(len(frac))
	digits := whole + frac
	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Asset{}, errors.BadRequest.WithFormat("invalid asset %q: %w", s, err)
	}
	return Asset{Amount: amount, Symbol: Symbol{Code: code, Precision: precision}}, nil
}

// Add returns a+b, or an error if the symbols differ.
func (a Asset) Add(b Asset) (Asset, error) {
	if !a.Symbol.Equal(b.Symbol) {
		return Asset{}, errors.BadRequest.WithFormat("cannot add %v to %v: symbol mismatch", b.Symbol, a.Symbol)
	}
	return Asset{Amount: a.Amount + b.Amount, Symbol: a.Symbol}, nil
}

// Sub returns a-b, or an error if the symbols differ.
func (a Asset) Sub(b Asset) (Asset, error) {
	if !a.Symbol.Equal(b.Symbol) {
		return Asset{}, errors.BadRequest.WithFormat("cannot subtract %v from %v: symbol mismatch", b.Symbol, a.Symbol)
	}
	return Asset{Amount: a.Amount - b.Amount, Symbol: a.Symbol}, nil
}

// MustAdd adds quantities that are known to share a symbol, such as two
// amounts read from the same table. It panics on a mismatch, which indicates
// corrupted state rather than bad input.
func (a Asset) MustAdd(b Asset) Asset {
	c, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	return c
}

// MustSub is the subtracting counterpart of MustAdd.
func (a Asset) MustSub(b Asset) Asset {
	c, err := a.Sub(b)
	if err != nil {
		panic(err)
	}
	return c
}

// MulFloor multiplies an integer amount by a float ratio, rounding toward
// zero. This is the engine's single rounding policy for every place a float
// ratio meets a token or byte amount.
func MulFloor(amount int64, ratio float64) int64 {
	return int64(float64(amount) * ratio)
}

// CheckQuantity validates a payment or stake quantity against the expected
// currency: matching code, matching precision, positive amount.
func CheckQuantity(quantity Asset, expect Symbol) error {
	if quantity.Symbol.Code != expect.Code {
		return errors.BadRequest.WithFormat("symbol does not match system resource currency: got %s, want %s", quantity.Symbol.Code, expect.Code)
	}
	if quantity.Symbol.Precision != expect.Precision {
		return errors.BadRequest.WithFormat("symbol precision does not match: got %d, want %d", quantity.Symbol.Precision, expect.Precision)
	}
	if quantity.Amount <= 0 {
		return errors.BadRequest.With("amount must be greater than 0")
	}
	return nil
}
