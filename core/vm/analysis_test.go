// Copyright 2017 The go-ethereum Authors
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

package vm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethgo/evmcore/common"
)

func TestJumpDestAnalysis(t *testing.T) {
	tests := []struct {
		code  []byte
		exp   byte
		which int
	}{
		{[]byte{byte(PUSH1), 0x01, 0x01, 0x01}, 0x40, 0},
		{[]byte{byte(PUSH1), byte(PUSH1), byte(PUSH1), byte(PUSH1)}, 0x50, 0},
		{[]byte{byte(PUSH8), byte(PUSH8), byte(PUSH8), byte(PUSH8), byte(PUSH8), byte(PUSH8), byte(PUSH8), byte(PUSH8), 0x01, 0x01, 0x01}, 0x7F, 0},
		{[]byte{byte(PUSH8), 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01}, 0x80, 1},
		{[]byte{0x01, 0x01, 0x01, 0x01, 0x01, byte(PUSH2), byte(PUSH2), byte(PUSH2), 0x01, 0x01, 0x01}, 0x03, 0},
		{[]byte{0x01, 0x01, 0x01, 0x01, 0x01, byte(PUSH2), 0x01, 0x01, 0x01, 0x01, 0x01}, 0x00, 1},
		{[]byte{byte(PUSH3), 0x01, 0x01, 0x01, byte(PUSH1), 0x01, 0x01, 0x01, 0x01, 0x01, 0x01}, 0x74, 0},
		{[]byte{0x01, byte(PUSH8), 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01}, 0x3F, 0},
		{[]byte{byte(PUSH16), 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01}, 0x7F, 0},
		{[]byte{byte(PUSH32)}, 0x7F, 0},
	}
	for i, test := range tests {
		ret := codeBitmap(test.code)
		require.Equalf(t, test.exp, ret[test.which], "test %d", i)
	}
}

func TestValidJumpdest(t *testing.T) {
	code := []byte{byte(PUSH1), 0x05, byte(JUMP), byte(JUMPDEST), byte(STOP)}
	bits := codeBitmap(code)
	require.False(t, bits.validJumpdest(code, 1), "PUSH1's immediate byte must not be a valid jumpdest")
	require.True(t, bits.validJumpdest(code, 3), "the actual JUMPDEST byte must validate")
	require.False(t, bits.validJumpdest(code, 4), "STOP is not a JUMPDEST")
	require.False(t, bits.validJumpdest(code, 99), "out-of-bounds destinations never validate")
}

func TestCodeBitmapWithSubroutines(t *testing.T) {
	code := make([]byte, 96)
	code[0] = byte(BEGINSUB)
	code[32] = byte(BEGINSUB)
	_, subs := codeBitmapWithSubroutines(code)
	require.True(t, subs.isSet(0))
	require.True(t, subs.isSet(1))
	require.False(t, subs.isSet(2))
}

func TestCodeBitmapCachedReturnsSameShapeAsUncached(t *testing.T) {
	code := []byte{byte(PUSH2), 0x01, 0x01, byte(JUMPDEST), byte(STOP)}
	hash := common.HexToHash("0xaa")

	want := codeBitmap(code)
	got := codeBitmapCached(hash, code)
	require.Equal(t, want, got)

	// a second call under the same hash must hit the cache rather than
	// recompute; feeding it different code proves it came from the cache.
	other := []byte{byte(STOP)}
	fromCache := codeBitmapCached(hash, other)
	require.Equal(t, want, fromCache)
}

func TestCodeBitmapCachedZeroHashSkipsCache(t *testing.T) {
	code := []byte{byte(PUSH1), 0x01, byte(JUMPDEST)}
	got := codeBitmapCached(common.Hash{}, code)
	require.Equal(t, codeBitmap(code), got)
}

func codeFill(size int, op OpCode) []byte {
	code := make([]byte, size)
	for i := range code {
		code[i] = byte(op)
	}
	return code
}

func BenchmarkJumpdestAnalysis_49152(b *testing.B) {
	code := codeFill(49152, PUSH1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		codeBitmap(code)
	}
}
