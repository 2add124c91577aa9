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

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethgo/evmcore/common"
	"github.com/ethgo/evmcore/word"
)

var addr1 = common.HexToAddress("0x1111111111111111111111111111111111111111")
var addr2 = common.HexToAddress("0x2222222222222222222222222222222222222222")

func TestWorldStateGetMaterializesEmptyAccount(t *testing.T) {
	w := New()
	require.False(t, w.Exists(addr1))
	a := w.Get(addr1)
	require.NotNil(t, a)
	require.True(t, a.IsEmpty())
	require.True(t, w.Exists(addr1))
}

func TestWorldStateCreateOverwrites(t *testing.T) {
	w := New()
	a := w.Get(addr1)
	a.Balance = word.FromUint64(100)

	fresh := w.Create(addr1)
	require.True(t, fresh.IsEmpty())
	require.Same(t, fresh, w.Get(addr1))
}

func TestWorldStateRemove(t *testing.T) {
	w := New()
	w.Get(addr1)
	require.True(t, w.Exists(addr1))
	w.Remove(addr1)
	require.False(t, w.Exists(addr1))
}

func TestWorldStateSnapshotRestore(t *testing.T) {
	w := New()
	a := w.Get(addr1)
	a.Balance = word.FromUint64(10)

	snap := w.Snapshot()

	a.Balance = word.FromUint64(999)
	w.Get(addr2).Balance = word.FromUint64(5)

	w.Restore(snap)

	require.Equal(t, word.FromUint64(10), w.Get(addr1).Balance)
	require.False(t, w.Exists(addr2))
}

func TestWorldStateSnapshotIsDeepCopy(t *testing.T) {
	w := New()
	a := w.Get(addr1)
	a.Balance = word.FromUint64(1)

	snap := w.Snapshot()
	a.Balance = word.FromUint64(2)

	require.Equal(t, word.FromUint64(1), snap[addr1].Balance)
}
