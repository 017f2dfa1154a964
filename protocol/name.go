// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"gitlab.com/tonomy/economy/pkg/errors"
)

// Name is an account name: up to 12 characters from [a-z1-5.], with no
// leading or trailing dot. Names map to uint64 values that preserve
// lexicographic order, which the yield cron uses to shard the staker
// keyspace.
type Name string

func (n Name) String() string { return string(n) }

func charToSymbol(c byte) (uint64, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 6, true
	case c >= '1' && c <= '5':
		return uint64(c-'1') + 1, true
	case c == '.':
		return 0, true
	default:
		return 0, false
	}
}

// Valid reports whether the name is well formed.
func (n Name) Valid() bool {
	if len(n) == 0 || len(n) > 12 {
		return false
	}
	if n[0] == '.' || n[len(n)-1] == '.' {
		return false
	}
	for i := 0; i < len(n); i++ {
		if _, ok := charToSymbol(n[i]); !ok {
			return false
		}
	}
	return true
}

// Value encodes the name as a uint64, five bits per character, matching the
// ordering of the original chain's name type.
func (n Name) Value() uint64 {
	var value uint64
	for i := 0; i < 12; i++ {
		var c uint64
		if i < len(n) {
			c, _ = charToSymbol(n[i])
		}
		value |= (c & 0x1f) << uint(64-5*(i+1))
	}
	return value
}

// CheckName returns a validation error if the name is not well formed.
func CheckName(n Name) error {
	if !n.Valid() {
		return errors.BadRequest.WithFormat("invalid account name %q", n)
	}
	return nil
}
