// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package database

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
)

// A Key is the structured key of a record. Keys are composed of string and
// uint64 parts and are hashed into a fixed-width identifier for storage.
type Key struct {
	values []interface{}
}

func NewKey(v ...interface{}) *Key {
	for _, v := range v {
		checkKeyPart(v)
	}
	return &Key{values: v}
}

func checkKeyPart(v interface{}) {
	switch v.(type) {
	case string, uint64:
	default:
		panic(fmt.Sprintf("invalid key part type %T", v))
	}
}

func (k *Key) Len() int {
	if k == nil {
		return 0
	}
	return len(k.values)
}

// Append creates a child key of this key.
func (k *Key) Append(v ...interface{}) *Key {
	for _, v := range v {
		checkKeyPart(v)
	}
	if k.Len() == 0 {
		return &Key{values: v}
	}
	l := make([]interface{}, len(k.values)+len(v))
	n := copy(l, k.values)
	copy(l[n:], v)
	return &Key{values: l}
}

// Hash returns a stable hash of the key, suitable as a storage key.
func (k *Key) Hash() [32]byte {
	h := sha256.New()
	var b [8]byte
	for _, v := range k.values {
		switch v := v.(type) {
		case string:
			binary.BigEndian.PutUint64(b[:], uint64(len(v)))
			h.Write(b[:])
			h.Write([]byte(v))
		case uint64:
			binary.BigEndian.PutUint64(b[:], v)
			h.Write(b[:])
		}
	}
	var kh [32]byte
	copy(kh[:], h.Sum(nil))
	return kh
}

func (k *Key) String() string {
	if k.Len() == 0 {
		return "(empty)"
	}
	s := make([]string, len(k.values))
	for i, v := range k.values {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, ".")
}
