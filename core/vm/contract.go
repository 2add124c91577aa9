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

package vm

import (
	"github.com/ethgo/evmcore/common"
	"github.com/ethgo/evmcore/crypto"
	"github.com/ethgo/evmcore/state"
	"github.com/ethgo/evmcore/word"
)

// Contract is the callee side of one activation record: its address,
// the storage-owning account, its code, and the gas/value/input the
// caller handed it. It corresponds to spec.md §3's "Context (frame)",
// minus the parts (stack, memory, PC) that live on Frame instead so
// the interpreter's inner loop can hold them by value.
type Contract struct {
	CallerAddress common.Address
	Address       common.Address
	Account       *state.Account

	Code     []byte
	CodeHash common.Hash
	Input    []byte

	Value word.Word
	Gas   uint64

	// jumpdests caches the analyzed valid-JUMPDEST bitmap for Code,
	// computed lazily on first JUMP/JUMPI.
	jumpdests bitvec
}

// NewContract builds a Contract for a call/create sub-frame.
func NewContract(caller, addr common.Address, account *state.Account, code, input []byte, value word.Word, gas uint64) *Contract {
	return &Contract{
		CallerAddress: caller,
		Address:       addr,
		Account:       account,
		Code:          code,
		Input:         input,
		Value:         value,
		Gas:           gas,
	}
}

// validJumpdest reports whether dest is both in-bounds and the PC of a
// JUMPDEST byte not embedded in a PUSH immediate (spec.md §4.1).
func (c *Contract) validJumpdest(dest uint64) bool {
	if c.jumpdests == nil {
		if c.CodeHash.IsZero() && len(c.Code) > 0 {
			c.CodeHash = crypto.Keccak256Hash(c.Code)
		}
		c.jumpdests = codeBitmapCached(c.CodeHash, c.Code)
	}
	return c.jumpdests.validJumpdest(c.Code, dest)
}

// GetOp returns the opcode at n, or STOP past the end of code (falling
// off the end is treated as STOP per spec.md §4.1).
func (c *Contract) GetOp(n uint64) OpCode {
	if n < uint64(len(c.Code)) {
		return OpCode(c.Code[n])
	}
	return STOP
}
