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

package rlp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethgo/evmcore/common"
)

func TestEncodeUintZeroIsEmptyString(t *testing.T) {
	require.Equal(t, []byte{}, EncodeUint(0))
}

func TestEncodeUintShortestBigEndian(t *testing.T) {
	require.Equal(t, []byte{0x01}, EncodeUint(1))
	require.Equal(t, []byte{0x82}, EncodeUint(0x82))
}

func TestEncodeUintNoLeadingZeroBytes(t *testing.T) {
	require.Equal(t, []byte{0x01, 0x00}, EncodeUint(256))
	require.Equal(t, []byte{0xff}, EncodeUint(255))
}

func TestEncodeStringSingleByteBelow0x80(t *testing.T) {
	require.Equal(t, []byte{0x00}, EncodeString([]byte{0x00}))
	require.Equal(t, []byte{0x7f}, EncodeString([]byte{0x7f}))
}

func TestEncodeStringSingleByteAtOrAbove0x80GetsHeader(t *testing.T) {
	require.Equal(t, []byte{0x81, 0x80}, EncodeString([]byte{0x80}))
}

func TestEncodeStringShortHeader(t *testing.T) {
	// "dog" -> 0x83 'd' 'o' 'g'
	require.Equal(t, []byte{0x83, 'd', 'o', 'g'}, EncodeString([]byte("dog")))
}

func TestEncodeStringEmpty(t *testing.T) {
	require.Equal(t, []byte{0x80}, EncodeString([]byte{}))
}

func TestEncodeStringLongHeader(t *testing.T) {
	data := make([]byte, 56)
	got := EncodeString(data)
	require.Equal(t, byte(0xb8), got[0]) // 0x80 + 55 + 1 length-of-length byte
	require.Equal(t, byte(56), got[1])
	require.Len(t, got, 2+56)
}

func TestEncodeListEmpty(t *testing.T) {
	require.Equal(t, []byte{0xc0}, EncodeList())
}

func TestEncodeListShortHeader(t *testing.T) {
	// [ "dog" ] -> 0xc4 0x83 'd' 'o' 'g'
	got := EncodeList(EncodeString([]byte("dog")))
	require.Equal(t, []byte{0xc4, 0x83, 'd', 'o', 'g'}, got)
}

func TestEncodeAddressNonceZeroNonce(t *testing.T) {
	sender := common.HexToAddress("0x0000000000000000000000000000000000000000")
	got := EncodeAddressNonce(sender, 0)
	// list payload = 21-byte address string (header + 20 zero bytes) + empty nonce (0x80)
	require.Equal(t, byte(0xc0+22), got[0])
	require.Equal(t, byte(0x80+20), got[1])
	require.Equal(t, byte(0x80), got[len(got)-1])
	require.Len(t, got, 1+1+20+1)
}

func TestEncodeAddressNonceNonZero(t *testing.T) {
	sender := common.HexToAddress("0x1111111111111111111111111111111111111111")
	got := EncodeAddressNonce(sender, 1)
	require.Equal(t, EncodeString(sender.Bytes()), got[1:1+21])
	require.Equal(t, []byte{0x01}, got[len(got)-1:])
}
