// Copyright 2019 The go-ethereum Authors
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

// Package rlp implements the slice of the recursive-length-prefix
// encoding that the engine needs: encoding a two-element
// [address, nonce] list for contract-address derivation. It follows
// the same length-prefix rules as go-ethereum's general-purpose
// reflection-based encoder, just without the reflection machinery.
package rlp

import "github.com/ethgo/evmcore/common"

// EncodeUint encodes an unsigned integer per RLP's rules for scalars:
// serialized as the shortest big-endian byte string with no leading
// zero bytes; zero encodes as the empty string (header 0x80).
func EncodeUint(v uint64) []byte {
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

// EncodeString encodes an arbitrary byte string.
func EncodeString(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return []byte{b[0]}
	}
	return append(encodeHeader(0x80, len(b)), b...)
}

// EncodeList encodes a pre-encoded sequence of items as an RLP list.
func EncodeList(items ...[]byte) []byte {
	var payload []byte
	for _, item := range items {
		payload = append(payload, item...)
	}
	return append(encodeHeader(0xc0, len(payload)), payload...)
}

// encodeHeader builds the length-prefix header for a string (base
// 0x80) or list (base 0xc0) payload of the given size, following
// go-ethereum's convention: sizes under 56 bytes get a single header
// byte, larger ones get a big-endian length-of-length header.
func encodeHeader(base byte, size int) []byte {
	if size < 56 {
		return []byte{base + byte(size)}
	}
	lenBytes := EncodeUint(uint64(size))
	return append([]byte{base + 55 + byte(len(lenBytes))}, lenBytes...)
}

// EncodeAddressNonce encodes the [sender, nonce] pair spec.md §3 uses
// to derive a CREATE contract address: nonce 0 encodes as the empty
// string (header 0x80), matching the RLP scalar-encoding rule.
func EncodeAddressNonce(sender common.Address, nonce uint64) []byte {
	return EncodeList(EncodeString(sender.Bytes()), EncodeString(EncodeUint(nonce)))
}
