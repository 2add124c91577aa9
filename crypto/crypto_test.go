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

package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethgo/evmcore/common"
)

func TestKeccak256EmptyInput(t *testing.T) {
	got := hex.EncodeToString(Keccak256())
	require.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", got)
}

func TestKeccak256HelloWorld(t *testing.T) {
	got := hex.EncodeToString(Keccak256([]byte("Hello world")))
	require.Equal(t, "ed6c11b0b5b808960df26f5bfc471d04c1995b0ffd2055925ad1be28d6baadfd", got)
}

func TestKeccak256HashMatchesKeccak256(t *testing.T) {
	data := []byte("the quick brown fox")
	h := Keccak256Hash(data)
	require.Equal(t, Keccak256(data), h.Bytes())
}

func TestKeccak256SkipN(t *testing.T) {
	full := []byte("prefixHello world")
	require.Equal(t, Keccak256([]byte("Hello world")), Keccak256SkipN(6, full))
}

func TestKeccak256SkipNBeyondLength(t *testing.T) {
	data := []byte("short")
	require.Equal(t, Keccak256([]byte{}), Keccak256SkipN(100, data))
}

func TestKeccak256MultipleArgsConcatenate(t *testing.T) {
	require.Equal(t, Keccak256([]byte("foobar")), Keccak256([]byte("foo"), []byte("bar")))
}

func TestCreateAddressDeterministic(t *testing.T) {
	sender := common.HexToAddress("0x990ccf8a0cde606e3423b9c8e0e9e3c1b1a8c5d9")
	a0 := CreateAddress(sender, 0)
	a1 := CreateAddress(sender, 1)
	require.NotEqual(t, a0, a1)

	again := CreateAddress(sender, 0)
	require.Equal(t, a0, again)
}

func TestCreateAddress2Deterministic(t *testing.T) {
	sender := common.HexToAddress("0x00000000000000000000000000000000000001")
	var salt [32]byte
	salt[31] = 0x2a
	initCodeHash := Keccak256([]byte{0x60, 0x00})

	a := CreateAddress2(sender, salt, initCodeHash)
	again := CreateAddress2(sender, salt, initCodeHash)
	require.Equal(t, a, again)

	var otherSalt [32]byte
	otherSalt[31] = 0x2b
	b := CreateAddress2(sender, otherSalt, initCodeHash)
	require.NotEqual(t, a, b)
}

func TestCreateAddressKnownVectors(t *testing.T) {
	sender := common.HexToAddress("0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0")
	vectors := []struct {
		nonce uint64
		want  string
	}{
		{0, "0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d"},
		{1, "0x343c43a37d37dff08ae8c4a11544c718abb4fcf8"},
		{2, "0xf778b86fa74e846c4f0a1fbd1335fe81c00a0c91"},
		{3, "0xfffd933a0bc612844eaf0c6fe3e5b8e9b6c1d19c"},
	}
	for _, v := range vectors {
		got := CreateAddress(sender, v.nonce)
		require.Equal(t, common.HexToAddress(v.want), got, "nonce %d", v.nonce)
	}
}

func TestNewKeccakStateReadWrite(t *testing.T) {
	d := NewKeccakState()
	d.Write([]byte("Hello world"))
	sum := make([]byte, 32)
	n, err := d.Read(sum)
	require.NoError(t, err)
	require.Equal(t, 32, n)
	require.Equal(t, Keccak256([]byte("Hello world")), sum)
}
