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
	lru "github.com/hashicorp/golang-lru"

	"github.com/ethgo/evmcore/common"
)

// bitmapCache memoizes codeBitmap results across Contract instances,
// keyed by code hash. Without it, a contract that gets CALLed
// repeatedly (a loop invoking the same callee, or a proxy forwarding
// to the same implementation) re-walks and re-allocates its PUSH-data
// bitmap on every single call.
var bitmapCache, _ = lru.New(4096)

// codeBitmapCached returns codeBitmap(code), consulting and populating
// bitmapCache under codeHash. Callers with a zero codeHash skip the
// cache and compute directly; Contract.validJumpdest hashes any
// non-empty code first, so from there only empty code takes that path.
func codeBitmapCached(codeHash common.Hash, code []byte) bitvec {
	if codeHash.IsZero() {
		return codeBitmap(code)
	}
	if cached, ok := bitmapCache.Get(codeHash); ok {
		return cached.(bitvec)
	}
	bits := codeBitmap(code)
	bitmapCache.Add(codeHash, bits)
	return bits
}

// bitvec is a bit vector which maps bytes in a program. An unset bit
// means the byte is an opcode, a set bit means it's data (an argument
// of a PUSHxx).
type bitvec []byte

func (bits *bitvec) set(pos uint64) {
	(*bits)[pos/8] |= 0x80 >> (pos % 8)
}
func (bits *bitvec) set8(pos uint64) {
	(*bits)[pos/8] |= 0xFF >> (pos % 8)
	(*bits)[pos/8+1] |= ^(0xFF >> (pos % 8))
}

// codeSegment reports whether pos is an opcode byte, as opposed to a
// PUSH data byte.
func (bits *bitvec) codeSegment(pos uint64) bool {
	return ((*bits)[pos/8] & (0x80 >> (pos % 8))) == 0
}

func (bits *bitvec) isSet(pos uint64) bool {
	return ((*bits)[pos/8]&(0x80>>(pos%8))) != 0
}

// codeBitmap collects PUSH-data locations in code so validJumpdest
// (spec.md §4.1) can reject a JUMP into the middle of a PUSH
// immediate.
func codeBitmap(code []byte) bitvec {
	// The bitmap is 4 bytes longer than necessary, in case the code
	// ends with a PUSH32: the algorithm pushes zeroes onto the bitvector
	// outside the bounds of the actual code.
	codeDataBitmap := make(bitvec, len(code)/8+1+4)
	for pc := uint64(0); pc < uint64(len(code)); {
		op := OpCode(code[pc])

		if op >= PUSH1 && op <= PUSH32 {
			numbits := op - PUSH1 + 1
			pc++
			for ; numbits >= 8; numbits -= 8 {
				codeDataBitmap.set8(pc)
				pc += 8
			}
			for ; numbits > 0; numbits-- {
				codeDataBitmap.set(pc)
				pc++
			}
		} else {
			pc++
		}
	}
	return codeDataBitmap
}

// codeBitmapWithSubroutines is the EIP-2315 variant of codeBitmap: it
// additionally records, per 32-byte code page, whether a BEGINSUB
// marker starts that page. Neither the dispatcher nor any opcode
// handler consults subroutineBitmap today (spec.md doesn't define
// JUMPSUB/RETURNSUB semantics) — this exists so a caller wiring EIP-2315
// support later has the segmentation ready, and is exercised directly
// by a test rather than left unreachable.
func codeBitmapWithSubroutines(code []byte) (codeDataBitmap bitvec, subroutineBitmap bitvec) {
	codeDataBitmap = make(bitvec, len(code)/8+1+4)
	subroutineBitmap = make(bitvec, len(code)/32+1)
	for pc := uint64(0); pc < uint64(len(code)); {
		op := OpCode(code[pc])

		if op >= PUSH1 && op <= PUSH32 {
			numbits := op - PUSH1 + 1
			pc++
			for ; numbits >= 8; numbits -= 8 {
				codeDataBitmap.set8(pc)
				pc += 8
			}
			for ; numbits > 0; numbits-- {
				codeDataBitmap.set(pc)
				pc++
			}
		} else {
			if pc%32 == 0 && op == BEGINSUB {
				subroutineBitmap.set(pc / 32)
			}
			pc++
		}
	}
	return codeDataBitmap, subroutineBitmap
}

// validJumpdest reports whether dest names a JUMPDEST opcode byte
// rather than PUSH data, given the bitmap produced for the same code.
func (bits *bitvec) validJumpdest(code []byte, dest uint64) bool {
	if dest >= uint64(len(code)) {
		return false
	}
	if OpCode(code[dest]) != JUMPDEST {
		return false
	}
	return bits.codeSegment(dest)
}
