// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package state implements the in-memory world-state: accounts keyed
// by address, each with a balance, nonce, immutable code and a
// word-keyed storage map, plus the journal that buffers a sub-frame's
// mutations until the frame commits or reverts.
package state

import (
	"github.com/ethgo/evmcore/common"
	"github.com/ethgo/evmcore/word"
)

// Storage is a contract's word-keyed persistent storage. An absent key
// reads as the zero word, so Storage.Get never needs an "ok" return.
type Storage map[word.Word]word.Word

// Clone returns an independent copy of s.
func (s Storage) Clone() Storage {
	cp := make(Storage, len(s))
	for k, v := range s {
		cp[k] = v
	}
	return cp
}

// Get returns s[key], or the zero word if key is absent.
func (s Storage) Get(key word.Word) word.Word {
	if v, ok := s[key]; ok {
		return v
	}
	return word.Zero
}

// Set stores value at key, deleting the entry instead of storing an
// explicit zero (keeps Equal and iteration cheap).
func (s Storage) Set(key, value word.Word) {
	if value.IsZero() {
		delete(s, key)
		return
	}
	s[key] = value
}

// Equal reports whether s and other represent the same mapping,
// treating an absent key as equivalent to an explicit zero.
func (s Storage) Equal(other Storage) bool {
	for k, v := range s {
		if !other.Get(k).Eq(v) {
			return false
		}
	}
	for k, v := range other {
		if !s.Get(k).Eq(v) {
			return false
		}
	}
	return true
}

// Account is one entry of the world-state: balance, nonce, immutable
// code and storage. The address is the map key in WorldState, not part
// of the account body, matching spec.md §3.
type Account struct {
	Balance word.Word
	Nonce   uint64
	Code    []byte
	Storage Storage
}

// NewAccount returns a fresh, all-zero account with an initialized
// storage map.
func NewAccount() *Account {
	return &Account{Storage: make(Storage)}
}

// Clone returns a deep copy of a, safe to mutate independently.
func (a *Account) Clone() *Account {
	cp := &Account{
		Balance: a.Balance,
		Nonce:   a.Nonce,
		Storage: a.Storage.Clone(),
	}
	if a.Code != nil {
		cp.Code = make([]byte, len(a.Code))
		copy(cp.Code, a.Code)
	}
	return cp
}

// Equal reports whether a and other have identical balance, nonce,
// code and storage (spec.md §3: "Two accounts compare equal iff all
// four fields are equal").
func (a *Account) Equal(other *Account) bool {
	if other == nil {
		return false
	}
	if !a.Balance.Eq(other.Balance) || a.Nonce != other.Nonce {
		return false
	}
	if len(a.Code) != len(other.Code) {
		return false
	}
	for i := range a.Code {
		if a.Code[i] != other.Code[i] {
			return false
		}
	}
	return a.Storage.Equal(other.Storage)
}

// IsEmpty reports whether a has zero balance, zero nonce and no code,
// go-ethereum's definition of an account eligible for implicit
// removal.
func (a *Account) IsEmpty() bool {
	return a.Balance.IsZero() && a.Nonce == 0 && len(a.Code) == 0
}

// DumpAccount is the fixture-facing JSON-neutral shape spec.md §6
// describes: hex strings throughout, every field optional, decode then
// re-encode round-tripping the fields that were present.
type DumpAccount struct {
	Address *string           `json:"address,omitempty"`
	Balance *string           `json:"balance,omitempty"`
	Nonce   *string           `json:"nonce,omitempty"`
	Code    *string           `json:"code,omitempty"`
	Storage map[string]string `json:"storage,omitempty"`
}

// Dump renders a into its fixture shape. addr is nil when the caller
// doesn't want the address field echoed back (e.g. it's already the
// map key elsewhere).
func Dump(addr *common.Address, a *Account) DumpAccount {
	d := DumpAccount{}
	if addr != nil {
		s := addr.Hex()
		d.Address = &s
	}
	bal := a.Balance.Hex()
	d.Balance = &bal
	nonce := common.ToHexString(encodeUint64(a.Nonce))
	d.Nonce = &nonce
	code := common.ToHexString(a.Code)
	d.Code = &code
	if len(a.Storage) > 0 {
		d.Storage = make(map[string]string, len(a.Storage))
		for k, v := range a.Storage {
			d.Storage[k.Hex()] = v.Hex()
		}
	}
	return d
}

// Load parses a fixture-shaped record back into an Account, defaulting
// absent fields to zero/empty.
func Load(d DumpAccount) (*Account, error) {
	a := NewAccount()
	if d.Balance != nil {
		w, err := word.FromHex(*d.Balance)
		if err != nil {
			return nil, err
		}
		a.Balance = w
	}
	if d.Nonce != nil {
		w, err := word.FromHex(*d.Nonce)
		if err != nil {
			return nil, err
		}
		a.Nonce = w.Uint64()
	}
	if d.Code != nil {
		b, err := common.ToBytes(*d.Code)
		if err != nil {
			return nil, err
		}
		a.Code = b
	}
	for k, v := range d.Storage {
		kw, err := word.FromHex(k)
		if err != nil {
			return nil, err
		}
		vw, err := word.FromHex(v)
		if err != nil {
			return nil, err
		}
		a.Storage.Set(kw, vw)
	}
	return a, nil
}

func encodeUint64(v uint64) []byte {
	if v == 0 {
		return []byte{}
	}
	var buf [8]byte
	i := 8
	for v > 0 {
		i--
		buf[i] = byte(v)
		v >>= 8
	}
	return buf[i:]
}
