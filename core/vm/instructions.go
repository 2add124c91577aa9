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

// This file implements the semantics of each opcode family spec.md
// §4.1 describes: arithmetic/bitwise/compare, Keccak, environment,
// stack/memory/storage, control flow, duplication/swap, logs and the
// halting instructions. CALL/CREATE live in calls.go. Stack bounds are
// validated by the jump table before execute runs, so handlers below
// pop/push without re-checking depth.
package vm

import (
	"math"

	"github.com/ethgo/evmcore/common"
	"github.com/ethgo/evmcore/crypto"
	"github.com/ethgo/evmcore/state"
	"github.com/ethgo/evmcore/word"
)

func (f *Frame) push(w word.Word) { f.stack.push(w) }
func (f *Frame) pop() word.Word   { w, _ := f.stack.pop(); return w }

// --- arithmetic -------------------------------------------------------

func opAdd(f *Frame) ([]byte, error) { a, b := f.pop(), f.pop(); f.push(a.Add(b)); return nil, nil }
func opSub(f *Frame) ([]byte, error) { a, b := f.pop(), f.pop(); f.push(a.Sub(b)); return nil, nil }
func opMul(f *Frame) ([]byte, error) { a, b := f.pop(), f.pop(); f.push(a.Mul(b)); return nil, nil }
func opDiv(f *Frame) ([]byte, error) { a, b := f.pop(), f.pop(); f.push(a.Div(b)); return nil, nil }
func opMod(f *Frame) ([]byte, error) { a, b := f.pop(), f.pop(); f.push(a.Mod(b)); return nil, nil }
func opSdiv(f *Frame) ([]byte, error) {
	a, b := f.pop(), f.pop()
	f.push(a.SDiv(b))
	return nil, nil
}
func opSmod(f *Frame) ([]byte, error) {
	a, b := f.pop(), f.pop()
	f.push(a.SMod(b))
	return nil, nil
}
func opAddmod(f *Frame) ([]byte, error) {
	a, b, m := f.pop(), f.pop(), f.pop()
	f.push(a.AddMod(b, m))
	return nil, nil
}
func opMulmod(f *Frame) ([]byte, error) {
	a, b, m := f.pop(), f.pop(), f.pop()
	f.push(a.MulMod(b, m))
	return nil, nil
}
func opExp(f *Frame) ([]byte, error) {
	base, exponent := f.pop(), f.pop()
	f.push(base.Exp(exponent))
	return nil, nil
}
func opSignExtend(f *Frame) ([]byte, error) {
	back, val := f.pop(), f.pop()
	f.push(back.SignExtend(val))
	return nil, nil
}

// --- comparison / bitwise ----------------------------------------------

func opLt(f *Frame) ([]byte, error) {
	a, b := f.pop(), f.pop()
	f.push(boolWord(a.Lt(b)))
	return nil, nil
}
func opGt(f *Frame) ([]byte, error) {
	a, b := f.pop(), f.pop()
	f.push(boolWord(a.Gt(b)))
	return nil, nil
}
func opSlt(f *Frame) ([]byte, error) {
	a, b := f.pop(), f.pop()
	f.push(boolWord(a.Slt(b)))
	return nil, nil
}
func opSgt(f *Frame) ([]byte, error) {
	a, b := f.pop(), f.pop()
	f.push(boolWord(a.Sgt(b)))
	return nil, nil
}
func opEq(f *Frame) ([]byte, error) {
	a, b := f.pop(), f.pop()
	f.push(boolWord(a.Eq(b)))
	return nil, nil
}
func opIszero(f *Frame) ([]byte, error) {
	a := f.pop()
	f.push(boolWord(a.IsZero()))
	return nil, nil
}
func opAnd(f *Frame) ([]byte, error) { a, b := f.pop(), f.pop(); f.push(a.And(b)); return nil, nil }
func opOr(f *Frame) ([]byte, error)  { a, b := f.pop(), f.pop(); f.push(a.Or(b)); return nil, nil }
func opXor(f *Frame) ([]byte, error) { a, b := f.pop(), f.pop(); f.push(a.Xor(b)); return nil, nil }
func opNot(f *Frame) ([]byte, error) { a := f.pop(); f.push(a.Not()); return nil, nil }
func opByte(f *Frame) ([]byte, error) {
	i, x := f.pop(), f.pop()
	f.push(word.Byte(i, x))
	return nil, nil
}
func opShl(f *Frame) ([]byte, error) {
	shift, value := f.pop(), f.pop()
	f.push(value.Lsh(shift))
	return nil, nil
}
func opShr(f *Frame) ([]byte, error) {
	shift, value := f.pop(), f.pop()
	f.push(value.Rsh(shift))
	return nil, nil
}
func opSar(f *Frame) ([]byte, error) {
	shift, value := f.pop(), f.pop()
	f.push(value.Sar(shift))
	return nil, nil
}

func boolWord(b bool) word.Word {
	if b {
		return word.One
	}
	return word.Zero
}

// --- keccak -------------------------------------------------------------

func opSha3(f *Frame) ([]byte, error) {
	offset, size := f.pop(), f.pop()
	off, sz, err := memoryRange(offset, size)
	if err != nil {
		return nil, err
	}
	f.memory.Resize(off + sz)
	data := f.memory.GetPtr(int64(off), int64(sz))
	f.push(word.FromBytes(crypto.Keccak256(data)))
	return nil, nil
}

// --- environment ----------------------------------------------------------

func opAddress(f *Frame) ([]byte, error) {
	f.push(word.FromAddress(f.contract.Address))
	return nil, nil
}
func opBalance(f *Frame) ([]byte, error) {
	addr := f.pop().Address()
	acc := f.in.World.Get(addr)
	f.push(acc.Balance)
	return nil, nil
}
func opOrigin(f *Frame) ([]byte, error) {
	f.push(word.FromAddress(f.in.Tx.Origin))
	return nil, nil
}
func opCaller(f *Frame) ([]byte, error) {
	f.push(word.FromAddress(f.contract.CallerAddress))
	return nil, nil
}
func opCallvalue(f *Frame) ([]byte, error) {
	f.push(f.contract.Value)
	return nil, nil
}
func opCalldataload(f *Frame) ([]byte, error) {
	off := f.pop()
	f.push(word.FromBytes(getDataSlice(f.contract.Input, off.Uint64(), 32)))
	return nil, nil
}
func opCalldatasize(f *Frame) ([]byte, error) {
	f.push(word.FromUint64(uint64(len(f.contract.Input))))
	return nil, nil
}
func opCalldatacopy(f *Frame) ([]byte, error) {
	destOff, dataOff, length := f.pop(), f.pop(), f.pop()
	do, l, err := memoryRange(destOff, length)
	if err != nil {
		return nil, err
	}
	lo := saturatingOffset(dataOff)
	f.memory.Resize(do + l)
	f.memory.Set(do, l, getDataSlice(f.contract.Input, lo, l))
	return nil, nil
}
func opCodesize(f *Frame) ([]byte, error) {
	f.push(word.FromUint64(uint64(len(f.contract.Code))))
	return nil, nil
}
func opCodecopy(f *Frame) ([]byte, error) {
	destOff, dataOff, length := f.pop(), f.pop(), f.pop()
	do, l, err := memoryRange(destOff, length)
	if err != nil {
		return nil, err
	}
	lo := saturatingOffset(dataOff)
	f.memory.Resize(do + l)
	f.memory.Set(do, l, getDataSlice(f.contract.Code, lo, l))
	return nil, nil
}
func opGasprice(f *Frame) ([]byte, error) {
	f.push(f.in.Tx.GasPrice)
	return nil, nil
}
func opExtcodesize(f *Frame) ([]byte, error) {
	addr := f.pop().Address()
	acc := f.in.World.Get(addr)
	f.push(word.FromUint64(uint64(len(acc.Code))))
	return nil, nil
}
func opExtcodehash(f *Frame) ([]byte, error) {
	addr := f.pop().Address()
	if !f.in.World.Exists(addr) {
		f.push(word.Zero)
		return nil, nil
	}
	acc := f.in.World.Get(addr)
	if len(acc.Code) == 0 {
		f.push(word.Zero)
		return nil, nil
	}
	f.push(word.FromBytes(crypto.Keccak256(acc.Code)))
	return nil, nil
}
func opExtcodecopy(f *Frame) ([]byte, error) {
	addrWord, destOff, dataOff, length := f.pop(), f.pop(), f.pop(), f.pop()
	acc := f.in.World.Get(addrWord.Address())
	do, l, err := memoryRange(destOff, length)
	if err != nil {
		return nil, err
	}
	lo := saturatingOffset(dataOff)
	f.memory.Resize(do + l)
	f.memory.Set(do, l, getDataSlice(acc.Code, lo, l))
	return nil, nil
}
func opReturndatasize(f *Frame) ([]byte, error) {
	f.push(word.FromUint64(uint64(len(f.in.returnData))))
	return nil, nil
}
func opReturndatacopy(f *Frame) ([]byte, error) {
	destOff, dataOff, length := f.pop(), f.pop(), f.pop()
	do, l, err := memoryRange(destOff, length)
	if err != nil {
		return nil, err
	}
	if !dataOff.IsUint64() {
		return nil, ErrIllegalInstruction
	}
	lo := dataOff.Uint64()
	if lo+l > uint64(len(f.in.returnData)) || lo+l < lo {
		return nil, ErrIllegalInstruction
	}
	f.memory.Resize(do + l)
	f.memory.Set(do, l, f.in.returnData[lo:lo+l])
	return nil, nil
}
func opBlockhash(f *Frame) ([]byte, error) {
	n := f.pop()
	if f.in.Block.GetHash == nil {
		f.push(word.Zero)
		return nil, nil
	}
	f.push(word.FromHash(f.in.Block.GetHash(n.Uint64())))
	return nil, nil
}
func opCoinbase(f *Frame) ([]byte, error) {
	f.push(word.FromAddress(f.in.Block.Coinbase))
	return nil, nil
}
func opTimestamp(f *Frame) ([]byte, error)  { f.push(f.in.Block.Time); return nil, nil }
func opNumber(f *Frame) ([]byte, error)     { f.push(f.in.Block.BlockNumber); return nil, nil }
func opDifficulty(f *Frame) ([]byte, error) { f.push(f.in.Block.Difficulty); return nil, nil }
func opGaslimit(f *Frame) ([]byte, error) {
	f.push(word.FromUint64(f.in.Block.GasLimit))
	return nil, nil
}
func opChainID(f *Frame) ([]byte, error) { f.push(f.in.Block.ChainID); return nil, nil }
func opSelfBalance(f *Frame) ([]byte, error) {
	f.push(f.contract.Account.Balance)
	return nil, nil
}

// saturatingOffset returns w's low 64 bits, or math.MaxUint64 if w
// doesn't fit in one — used for a *COPY source offset, which only ever
// feeds getDataSlice's own bounds clamp and never indexes memory
// directly. Truncating instead of saturating would silently read from
// a small, wrong-but-in-bounds offset; saturating instead lands past
// the end of data every time, which getDataSlice already zero-pads.
func saturatingOffset(w word.Word) uint64 {
	if !w.IsUint64() {
		return math.MaxUint64
	}
	return w.Uint64()
}

// getDataSlice returns data[offset:offset+size], zero-padded if the
// range extends past len(data) — used by every *COPY/*LOAD handler
// that reads from a caller-controlled byte range (spec.md §4.1:
// "CALLDATALOAD ... zero-padded beyond input").
func getDataSlice(data []byte, offset, size uint64) []byte {
	length := uint64(len(data))
	if offset > length {
		offset = length
	}
	end := offset + size
	if end > length {
		end = length
	}
	cp := make([]byte, size)
	copy(cp, data[offset:end])
	return cp
}

// --- stack / memory / storage --------------------------------------------

func opPop(f *Frame) ([]byte, error) { f.pop(); return nil, nil }

func opMload(f *Frame) ([]byte, error) {
	off, sz, err := memoryRange(f.pop(), word.FromUint64(32))
	if err != nil {
		return nil, err
	}
	f.memory.Resize(off + sz)
	var buf [32]byte
	copy(buf[:], f.memory.GetPtr(int64(off), int64(sz)))
	f.push(word.FromBytes(buf[:]))
	return nil, nil
}
func opMstore(f *Frame) ([]byte, error) {
	offset, val := f.pop(), f.pop()
	off, _, err := memoryRange(offset, word.FromUint64(32))
	if err != nil {
		return nil, err
	}
	f.memory.Set32(off, val.Bytes32())
	return nil, nil
}
func opMstore8(f *Frame) ([]byte, error) {
	offset, val := f.pop(), f.pop()
	off, sz, err := memoryRange(offset, word.One)
	if err != nil {
		return nil, err
	}
	f.memory.Resize(off + sz)
	f.memory.store[off] = byte(val.Uint64())
	return nil, nil
}
func opMsize(f *Frame) ([]byte, error) {
	f.push(word.FromUint64(uint64(f.memory.Len())))
	return nil, nil
}
func opSload(f *Frame) ([]byte, error) {
	key := f.pop()
	f.push(f.contract.Account.Storage.Get(key))
	return nil, nil
}
func opSstore(f *Frame) ([]byte, error) {
	key, val := f.pop(), f.pop()
	f.contract.Account.Storage.Set(key, val)
	f.journal.Touch(f.contract.Address)
	return nil, nil
}
func opJump(f *Frame) ([]byte, error) {
	dest := f.pop()
	if !f.contract.validJumpdest(dest.Uint64()) {
		return nil, ErrBadJump
	}
	f.pc = dest.Uint64()
	return nil, nil
}
func opJumpi(f *Frame) ([]byte, error) {
	dest, cond := f.pop(), f.pop()
	if cond.IsZero() {
		f.pc++
		return nil, nil
	}
	if !f.contract.validJumpdest(dest.Uint64()) {
		return nil, ErrBadJump
	}
	f.pc = dest.Uint64()
	return nil, nil
}
func opPc(f *Frame) ([]byte, error) {
	f.push(word.FromUint64(f.pc))
	return nil, nil
}
func opGas(f *Frame) ([]byte, error) {
	f.push(word.FromUint64(f.contract.Gas))
	return nil, nil
}
func opJumpdest(f *Frame) ([]byte, error) { return nil, nil }

// --- push / dup / swap ----------------------------------------------------

// makePush builds the handler for PUSH1..PUSH32: it reads size
// immediate bytes starting right after the opcode (padding with zero
// past the end of code, per spec.md §4.1's Decode rule) and advances
// pc past them; it owns its own pc advance since it isn't a plain
// pop-push operation.
func makePush(size int) executionFunc {
	return func(f *Frame) ([]byte, error) {
		buf := getDataSlice(f.contract.Code, f.pc+1, uint64(size))
		f.push(word.FromBytes(buf))
		f.pc += uint64(size) + 1
		return nil, nil
	}
}

func makeDup(n int) executionFunc {
	return func(f *Frame) ([]byte, error) { f.stack.dup(n); return nil, nil }
}

func makeSwap(n int) executionFunc {
	return func(f *Frame) ([]byte, error) { f.stack.swap(n); return nil, nil }
}

// --- logs -------------------------------------------------------------

// makeLog builds the handler for LOG0..LOG4.
func makeLog(n int) executionFunc {
	return func(f *Frame) ([]byte, error) {
		offset, size := f.pop(), f.pop()
		topics := make([]common.Hash, n)
		for i := 0; i < n; i++ {
			topics[i] = f.pop().Hash()
		}
		off, sz, err := memoryRange(offset, size)
		if err != nil {
			return nil, err
		}
		f.memory.Resize(off + sz)
		data := f.memory.GetCopy(int64(off), int64(sz))

		if f.in.Log != nil {
			f.in.Log.OnLog(f.contract.Address, topics, data)
		}
		f.journal.AppendLog(state.LogEntry{Address: f.contract.Address, Topics: topics, Data: data})
		return nil, nil
	}
}

// --- halting instructions ---------------------------------------------

func opStop(f *Frame) ([]byte, error) { return nil, newError(Halted) }

func opReturn(f *Frame) ([]byte, error) {
	offset, size := f.pop(), f.pop()
	off, sz, err := memoryRange(offset, size)
	if err != nil {
		return nil, err
	}
	f.memory.Resize(off + sz)
	return f.memory.GetCopy(int64(off), int64(sz)), newError(Returned)
}

func opRevert(f *Frame) ([]byte, error) {
	offset, size := f.pop(), f.pop()
	off, sz, err := memoryRange(offset, size)
	if err != nil {
		return nil, err
	}
	f.memory.Resize(off + sz)
	return f.memory.GetCopy(int64(off), int64(sz)), newError(Reverted)
}
