// Copyright 2015 The go-ethereum Authors
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

// Package common holds the address/hash value types shared across the
// engine, plus the hex codec and EIP-55 checksum address helpers.
package common

import (
	"encoding/hex"
	"reflect"

	"golang.org/x/crypto/sha3"
)

const (
	// AddressLength is the expected length of the address, in bytes.
	AddressLength = 20
	// HashLength is the expected length of the hash, in bytes.
	HashLength = 32
)

// Address represents the 20 byte address of an Ethereum account.
type Address [AddressLength]byte

// BytesToAddress returns Address with value b.
// If b is larger than len(h), b will be cropped from the left.
func BytesToAddress(b []byte) (a Address) {
	a.SetBytes(b)
	return a
}

// HexToAddress returns Address with byte values of s.
func HexToAddress(s string) Address { return BytesToAddress(FromHex(s)) }

// SetBytes sets the address to the value of b. If b is larger than
// len(a), b will be cropped from the left.
func (a *Address) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

// Bytes returns the raw byte representation of the address.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the EIP-55 checksum hex encoding of the address.
func (a Address) Hex() string { return ToChecksumAddress(a) }

// String implements fmt.Stringer.
func (a Address) String() string { return a.Hex() }

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool { return a == Address{} }

// ToChecksumAddress renders a per EIP-55: the lowercase hex digest of
// the address is hashed, and each hex digit of the address is
// uppercased wherever the corresponding nibble of the hash digest is
// >= 8. Hashing is done with a direct sha3 call rather than the crypto
// package, since crypto imports common and a back-import would cycle.
func ToChecksumAddress(a Address) string {
	lower := hex.EncodeToString(a[:])
	d := sha3.NewLegacyKeccak256()
	d.Write([]byte(lower))
	hash := d.Sum(nil)

	buf := make([]byte, len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' {
			// nibble i of hash, high nibble first
			var nibble byte
			if i%2 == 0 {
				nibble = hash[i/2] >> 4
			} else {
				nibble = hash[i/2] & 0x0f
			}
			if nibble >= 8 {
				c -= 'a' - 'A'
			}
		}
		buf[i] = c
	}
	return "0x" + string(buf)
}

// IsChecksumAddress reports whether s is a validly EIP-55 checksummed
// address string (case-sensitive match against ToChecksumAddress).
func IsChecksumAddress(s string) bool {
	if len(stripPrefix(s)) != AddressLength*2 {
		return false
	}
	return ToChecksumAddress(HexToAddress(s)) == s
}

// Hash represents a 32 byte Keccak256 hash, or a raw 256-bit word used
// as a storage key/value.
type Hash [HashLength]byte

// BytesToHash sets b to hash. If b is larger than len(h), b will be
// cropped from the left.
func BytesToHash(b []byte) (h Hash) {
	h.SetBytes(b)
	return h
}

// HexToHash returns Hash with byte values of s.
func HexToHash(s string) Hash { return BytesToHash(FromHex(s)) }

// SetBytes sets the hash to the value of b, cropping from the left if
// b is longer than the hash.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// Bytes returns the raw byte representation of the hash.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns a lowercase 0x-prefixed hex encoding.
func (h Hash) Hex() string { return ToHexString(h[:]) }

// String implements fmt.Stringer.
func (h Hash) String() string { return h.Hex() }

// IsZero reports whether h is the zero hash.
func (h Hash) IsZero() bool { return h == Hash{} }

// ToBytes decodes a hex string into bytes. Both "" and "0x" decode to
// an empty slice. The leading "0x"/"0X" prefix is optional. An odd
// number of hex digits is tolerated: the leading lone nibble is taken
// as the high nibble of byte 0 (so "0xabc" -> [0x0a, 0xbc]).
func ToBytes(s string) ([]byte, error) {
	s = stripPrefix(s)
	if len(s) == 0 {
		return []byte{}, nil
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// FromHex is the panic-free, best-effort counterpart of ToBytes used in
// tests and by the HexTo* constructors: malformed input decodes to nil
// rather than erroring, mirroring the teacher's common.FromHex.
func FromHex(s string) []byte {
	b, err := ToBytes(s)
	if err != nil {
		return nil
	}
	return b
}

// ToHexString renders bytes as lowercase "0x"-prefixed hex.
func ToHexString(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func stripPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// IsZeroValue reports whether v is the zero value of its type.
func IsZeroValue(v interface{}) bool {
	return reflect.ValueOf(v).IsZero()
}
