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

// Package crypto wraps the exact Keccak-256 variant (legacy padding,
// not NIST SHA-3) that Ethereum uses for hashing, plus the address
// derivation helpers built on top of it.
package crypto

import (
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/ethgo/evmcore/common"
	"github.com/ethgo/evmcore/rlp"
)

// KeccakState mirrors go-ethereum's crypto.KeccakState: a hash.Hash
// that can also Read its sum without finalizing. Keccak256 and
// Keccak256Hash build a fresh one per call.
type KeccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

// NewKeccakState returns a new Keccak-256 hasher satisfying KeccakState.
func NewKeccakState() KeccakState {
	return sha3.NewLegacyKeccak256().(KeccakState)
}

// Keccak256 returns the Keccak-256 digest of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	b := make([]byte, 32)
	d := NewKeccakState()
	for _, b := range data {
		d.Write(b)
	}
	d.Read(b)
	return b
}

// Keccak256Hash returns the Keccak-256 digest of data as a common.Hash.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	d := NewKeccakState()
	for _, b := range data {
		d.Write(b)
	}
	d.Read(h[:])
	return h
}

// Keccak256SkipN returns the Keccak-256 digest of data with the first
// n bytes of data skipped before hashing. It is the offset-skip variant
// spec.md §2/§8 calls for, useful for hashing a buffer that carries a
// fixed-size prefix the caller doesn't want included (e.g. a length
// header) without first copying the remainder into a new slice.
func Keccak256SkipN(n int, data []byte) []byte {
	if n > len(data) {
		n = len(data)
	}
	return Keccak256(data[n:])
}

// CreateAddress derives the address of a contract created via CREATE:
// the low 20 bytes of keccak256(rlp([sender, nonce])).
func CreateAddress(sender common.Address, nonce uint64) common.Address {
	data := rlp.EncodeAddressNonce(sender, nonce)
	return common.BytesToAddress(Keccak256(data)[12:])
}

// CreateAddress2 derives the address of a contract created via
// CREATE2: the low 20 bytes of
// keccak256(0xff || sender || salt || keccak256(init_code)).
func CreateAddress2(sender common.Address, salt [32]byte, initCodeHash []byte) common.Address {
	return common.BytesToAddress(Keccak256([]byte{0xff}, sender.Bytes(), salt[:], initCodeHash)[12:])
}
