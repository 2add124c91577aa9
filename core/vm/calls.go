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

// This file implements the CALL family (CALL, CALLCODE, DELEGATECALL,
// STATICCALL), CREATE/CREATE2, and SELFDESTRUCT — spec.md §4.2's
// sub-call and create machinery.
package vm

import (
	"github.com/ethgo/evmcore/common"
	"github.com/ethgo/evmcore/crypto"
	"github.com/ethgo/evmcore/log"
	"github.com/ethgo/evmcore/params"
	"github.com/ethgo/evmcore/state"
	"github.com/ethgo/evmcore/word"
)

// callKind distinguishes the four CALL-family variants' caller/callee/
// value/storage wiring (spec.md §4.2).
type callKind int

const (
	callNormal callKind = iota
	callCode
	callDelegate
	callStatic
)

func doCall(f *Frame, kind callKind) ([]byte, error) {
	gas := f.pop()
	toWord := f.pop()
	var value word.Word
	if kind == callNormal || kind == callCode {
		value = f.pop()
	}
	inOff, inLen := f.pop(), f.pop()
	outOff, outLen := f.pop(), f.pop()

	to := toWord.Address()
	in := f.in

	if kind == callNormal && f.readOnly && !value.IsZero() {
		return nil, ErrStaticViolation
	}

	if in.depth >= params.CallCreateDepth {
		f.push(word.Zero)
		return nil, nil
	}

	ii, il, err := memoryRange(inOff, inLen)
	if err != nil {
		return nil, err
	}
	f.memory.Resize(ii + il)
	input := f.memory.GetCopy(int64(ii), int64(il))

	toAccount := in.World.Get(to)

	var (
		callerAddr common.Address
		calleeAddr common.Address
		code       []byte
		storageAcc *state.Account
		callValue  word.Word
		static     bool
	)

	switch kind {
	case callNormal:
		callerAddr = f.contract.Address
		calleeAddr = to
		code = toAccount.Code
		storageAcc = toAccount
		callValue = value
		if !value.IsZero() {
			if f.contract.Account.Balance.Lt(value) {
				f.push(word.Zero)
				return nil, nil
			}
			f.contract.Account.Balance = f.contract.Account.Balance.Sub(value)
			toAccount.Balance = toAccount.Balance.Add(value)
		}
	case callCode:
		callerAddr = f.contract.Address
		calleeAddr = f.contract.Address
		code = toAccount.Code
		storageAcc = f.contract.Account
		callValue = value
		if !value.IsZero() && f.contract.Account.Balance.Lt(value) {
			f.push(word.Zero)
			return nil, nil
		}
	case callDelegate:
		callerAddr = f.contract.CallerAddress
		calleeAddr = f.contract.Address
		code = toAccount.Code
		storageAcc = f.contract.Account
		callValue = f.contract.Value
	case callStatic:
		callerAddr = f.contract.Address
		calleeAddr = to
		code = toAccount.Code
		storageAcc = toAccount
		static = true
	}

	sub := NewContract(callerAddr, calleeAddr, storageAcc, code, input, callValue, gas.Uint64())
	journal := state.Open(in.World)
	parentJournal := in.journal
	in.journal = journal

	ret, exit := in.Run(sub, input, f.readOnly || static)

	in.journal = parentJournal
	succeeded := exit == Returned || exit == Halted
	if succeeded {
		journal.Commit(parentJournal)
	} else {
		journal.Discard()
	}

	in.returnData = ret
	oo, ol, err := memoryRange(outOff, outLen)
	if err != nil {
		return nil, err
	}
	if ol > uint64(len(ret)) {
		ol = uint64(len(ret))
	}
	f.memory.Resize(oo + ol)
	f.memory.Set(oo, ol, ret[:ol])

	if succeeded {
		f.push(word.One)
	} else {
		f.push(word.Zero)
	}
	return nil, nil
}

func opCall(f *Frame) ([]byte, error)         { return doCall(f, callNormal) }
func opCallCode(f *Frame) ([]byte, error)     { return doCall(f, callCode) }
func opDelegateCall(f *Frame) ([]byte, error) { return doCall(f, callDelegate) }
func opStaticCall(f *Frame) ([]byte, error)   { return doCall(f, callStatic) }

func doCreate(f *Frame, isCreate2 bool) ([]byte, error) {
	in := f.in

	value, memOff, memLen := f.pop(), f.pop(), f.pop()
	var salt word.Word
	if isCreate2 {
		salt = f.pop()
	}

	mo, ml, err := memoryRange(memOff, memLen)
	if err != nil {
		return nil, err
	}
	f.memory.Resize(mo + ml)
	initCode := f.memory.GetCopy(int64(mo), int64(ml))

	if in.depth >= params.CallCreateDepth {
		f.push(word.Zero)
		return nil, nil
	}

	sender := f.contract.Account
	senderAddr := f.contract.Address
	nonce := sender.Nonce
	sender.Nonce++

	var addr = deriveCreateAddress(senderAddr, nonce, salt, initCode, isCreate2)

	if in.World.Exists(addr) {
		existing := in.World.Get(addr)
		if existing.Nonce != 0 || len(existing.Code) != 0 {
			log.Warn("CREATE address collision", "address", addr, "nonce", existing.Nonce)
			f.push(word.Zero)
			return nil, nil
		}
	}

	newAccount := in.World.Create(addr)
	if !value.IsZero() {
		if sender.Balance.Lt(value) {
			f.push(word.Zero)
			return nil, nil
		}
		sender.Balance = sender.Balance.Sub(value)
		newAccount.Balance = value
	}

	sub := NewContract(senderAddr, addr, newAccount, initCode, nil, value, f.contract.Gas)
	journal := state.Open(in.World)
	parentJournal := in.journal
	in.journal = journal

	ret, exit := in.Run(sub, nil, f.readOnly)

	in.journal = parentJournal
	if exit == Returned && len(ret) <= params.MaxCodeSize {
		newAccount.Code = ret
		journal.Commit(parentJournal)
		f.push(word.FromAddress(addr))
	} else {
		journal.Discard()
		f.push(word.Zero)
	}
	in.returnData = ret
	return nil, nil
}

func opCreate(f *Frame) ([]byte, error)  { return doCreate(f, false) }
func opCreate2(f *Frame) ([]byte, error) { return doCreate(f, true) }

func deriveCreateAddress(sender common.Address, nonce uint64, salt word.Word, initCode []byte, isCreate2 bool) common.Address {
	if isCreate2 {
		return crypto.CreateAddress2(sender, salt.Bytes32(), crypto.Keccak256(initCode))
	}
	return crypto.CreateAddress(sender, nonce)
}

func opSelfDestruct(f *Frame) ([]byte, error) {
	beneficiary := f.pop().Address()
	in := f.in
	acc := f.contract.Account
	ben := in.World.Get(beneficiary)
	ben.Balance = ben.Balance.Add(acc.Balance)
	acc.Balance = word.Zero
	f.journal.ScheduleSelfDestruct(f.contract.Address)
	return nil, newError(Halted)
}
