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

package vm

import "github.com/ethgo/evmcore/params"

// executionFunc is an opcode handler. A non-nil error either carries a
// terminal Kind (Halted/Returned/Reverted, handled specially by the
// interpreter loop) or an execution-error Kind (StackUnderflow,
// BadJump, ...), in which case the frame stops immediately with no
// output.
type executionFunc func(f *Frame) ([]byte, error)

// operation is one jump-table entry: how to run the opcode, how many
// stack items it needs, whether it mutates state, and (when metering
// is on) what it costs.
type operation struct {
	execute     executionFunc
	validate    stackValidationFunc
	constantGas uint64

	// jumps is set for opcodes that manage their own pc (JUMP, JUMPI,
	// PUSH1..32); every other opcode auto-advances by one after
	// execute returns.
	jumps bool
	// writes marks a state-mutating opcode, forbidden in a STATICCALL
	// sub-frame (spec.md §4.2).
	writes bool
	valid  bool
}

func (op *operation) validateStack(stack *Stack) *ExecutionError { return op.validate(stack) }

// useGas charges op's constant cost against contract.Gas, returning
// false (and leaving Gas untouched) if that would underflow.
func (op *operation) useGas(contract *Contract) bool {
	if contract.Gas < op.constantGas {
		return false
	}
	contract.Gas -= op.constantGas
	return true
}

// JumpTable is the flat, byte-keyed dispatch table spec.md §9 calls
// "the canonical shape" for 256 densely packed opcodes.
type JumpTable [256]operation

var (
	istanbulInstructionSet  = newIstanbulInstructionSet()
	frontierInstructionSet  = newFrontierInstructionSet()
)

// instructionSetFor picks the table matching the resolved fork rules.
// Only the two fork points SPEC_FULL.md's expanded open-question
// decision cares about are modeled; intermediate forks would slot in
// here the same way upstream go-ethereum chains
// frontier->homestead->...->istanbul.
func instructionSetFor(r params.Rules) *JumpTable {
	if r.IsIstanbul {
		return &istanbulInstructionSet
	}
	return &frontierInstructionSet
}

func newFrontierInstructionSet() JumpTable {
	var tbl JumpTable
	tbl[STOP] = operation{execute: opStop, validate: makeStackFunc(0, 0), valid: true}
	tbl[ADD] = operation{execute: opAdd, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[MUL] = operation{execute: opMul, validate: makeStackFunc(2, 1), constantGas: params.GasFastStep, valid: true}
	tbl[SUB] = operation{execute: opSub, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[DIV] = operation{execute: opDiv, validate: makeStackFunc(2, 1), constantGas: params.GasFastStep, valid: true}
	tbl[SDIV] = operation{execute: opSdiv, validate: makeStackFunc(2, 1), constantGas: params.GasFastStep, valid: true}
	tbl[MOD] = operation{execute: opMod, validate: makeStackFunc(2, 1), constantGas: params.GasFastStep, valid: true}
	tbl[SMOD] = operation{execute: opSmod, validate: makeStackFunc(2, 1), constantGas: params.GasFastStep, valid: true}
	tbl[ADDMOD] = operation{execute: opAddmod, validate: makeStackFunc(3, 1), constantGas: params.GasMidStep, valid: true}
	tbl[MULMOD] = operation{execute: opMulmod, validate: makeStackFunc(3, 1), constantGas: params.GasMidStep, valid: true}
	tbl[EXP] = operation{execute: opExp, validate: makeStackFunc(2, 1), constantGas: params.GasSlowStep, valid: true}
	tbl[SIGNEXTEND] = operation{execute: opSignExtend, validate: makeStackFunc(2, 1), constantGas: params.GasFastStep, valid: true}

	tbl[LT] = operation{execute: opLt, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[GT] = operation{execute: opGt, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[SLT] = operation{execute: opSlt, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[SGT] = operation{execute: opSgt, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[EQ] = operation{execute: opEq, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[ISZERO] = operation{execute: opIszero, validate: makeStackFunc(1, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[AND] = operation{execute: opAnd, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[OR] = operation{execute: opOr, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[XOR] = operation{execute: opXor, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[NOT] = operation{execute: opNot, validate: makeStackFunc(1, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[BYTE] = operation{execute: opByte, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}

	tbl[SHA3] = operation{execute: opSha3, validate: makeStackFunc(2, 1), constantGas: params.GasSha3, valid: true}

	tbl[ADDRESS] = operation{execute: opAddress, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[BALANCE] = operation{execute: opBalance, validate: makeStackFunc(1, 1), constantGas: params.GasExtStep, valid: true}
	tbl[ORIGIN] = operation{execute: opOrigin, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[CALLER] = operation{execute: opCaller, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[CALLVALUE] = operation{execute: opCallvalue, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[CALLDATALOAD] = operation{execute: opCalldataload, validate: makeStackFunc(1, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[CALLDATASIZE] = operation{execute: opCalldatasize, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[CALLDATACOPY] = operation{execute: opCalldatacopy, validate: makeStackFunc(3, 0), constantGas: params.GasFastestStep, writes: false, valid: true}
	tbl[CODESIZE] = operation{execute: opCodesize, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[CODECOPY] = operation{execute: opCodecopy, validate: makeStackFunc(3, 0), constantGas: params.GasFastestStep, valid: true}
	tbl[GASPRICE] = operation{execute: opGasprice, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[EXTCODESIZE] = operation{execute: opExtcodesize, validate: makeStackFunc(1, 1), constantGas: params.GasExtStep, valid: true}
	tbl[EXTCODECOPY] = operation{execute: opExtcodecopy, validate: makeStackFunc(4, 0), constantGas: params.GasExtStep, valid: true}

	tbl[BLOCKHASH] = operation{execute: opBlockhash, validate: makeStackFunc(1, 1), constantGas: params.GasExtStep, valid: true}
	tbl[COINBASE] = operation{execute: opCoinbase, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[TIMESTAMP] = operation{execute: opTimestamp, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[NUMBER] = operation{execute: opNumber, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[DIFFICULTY] = operation{execute: opDifficulty, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[GASLIMIT] = operation{execute: opGaslimit, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}

	tbl[POP] = operation{execute: opPop, validate: makeStackFunc(1, 0), constantGas: params.GasQuickStep, valid: true}
	tbl[MLOAD] = operation{execute: opMload, validate: makeStackFunc(1, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[MSTORE] = operation{execute: opMstore, validate: makeStackFunc(2, 0), constantGas: params.GasFastestStep, valid: true}
	tbl[MSTORE8] = operation{execute: opMstore8, validate: makeStackFunc(2, 0), constantGas: params.GasFastestStep, valid: true}
	tbl[SLOAD] = operation{execute: opSload, validate: makeStackFunc(1, 1), constantGas: params.GasExtStep, valid: true}
	tbl[SSTORE] = operation{execute: opSstore, validate: makeStackFunc(2, 0), constantGas: params.SstoreSetGas, writes: true, valid: true}
	tbl[JUMP] = operation{execute: opJump, validate: makeStackFunc(1, 0), constantGas: params.GasMidStep, jumps: true, valid: true}
	tbl[JUMPI] = operation{execute: opJumpi, validate: makeStackFunc(2, 0), constantGas: params.GasSlowStep, jumps: true, valid: true}
	tbl[PC] = operation{execute: opPc, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[MSIZE] = operation{execute: opMsize, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[GAS] = operation{execute: opGas, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[JUMPDEST] = operation{execute: opJumpdest, validate: makeStackFunc(0, 0), constantGas: params.JumpdestGas, valid: true}

	for i := 0; i < 32; i++ {
		tbl[PUSH1+OpCode(i)] = operation{
			execute:     makePush(i + 1),
			validate:    makeStackFunc(0, 1),
			constantGas: params.GasFastestStep,
			jumps:       true,
			valid:       true,
		}
	}
	for i := 0; i < 16; i++ {
		tbl[DUP1+OpCode(i)] = operation{
			execute:     makeDup(i + 1),
			validate:    makeDupStackFunc(i + 1),
			constantGas: params.GasFastestStep,
			valid:       true,
		}
		tbl[SWAP1+OpCode(i)] = operation{
			execute:     makeSwap(i + 1),
			validate:    makeSwapStackFunc(i + 1),
			constantGas: params.GasFastestStep,
			valid:       true,
		}
	}
	for i := 0; i < 5; i++ {
		tbl[LOG0+OpCode(i)] = operation{
			execute:     makeLog(i),
			validate:    makeStackFunc(2+i, 0),
			constantGas: params.GasLog + uint64(i)*params.GasLogTopic,
			writes:      true,
			valid:       true,
		}
	}

	tbl[CREATE] = operation{execute: opCreate, validate: makeStackFunc(3, 1), constantGas: params.GasCreate, writes: true, valid: true}
	tbl[CALL] = operation{execute: opCall, validate: makeStackFunc(7, 1), constantGas: params.GasCallBase, valid: true}
	tbl[CALLCODE] = operation{execute: opCallCode, validate: makeStackFunc(7, 1), constantGas: params.GasCallBase, valid: true}
	tbl[RETURN] = operation{execute: opReturn, validate: makeStackFunc(2, 0), valid: true}
	tbl[SELFDESTRUCT] = operation{execute: opSelfDestruct, validate: makeStackFunc(1, 0), constantGas: params.GasSelfdestruct, writes: true, valid: true}

	return tbl
}

func newIstanbulInstructionSet() JumpTable {
	tbl := newFrontierInstructionSet()

	// Byzantium
	tbl[RETURNDATASIZE] = operation{execute: opReturndatasize, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}
	tbl[RETURNDATACOPY] = operation{execute: opReturndatacopy, validate: makeStackFunc(3, 0), constantGas: params.GasFastestStep, valid: true}
	tbl[STATICCALL] = operation{execute: opStaticCall, validate: makeStackFunc(6, 1), constantGas: params.GasCallBase, valid: true}
	tbl[REVERT] = operation{execute: opRevert, validate: makeStackFunc(2, 0), valid: true}

	// Constantinople
	tbl[SHL] = operation{execute: opShl, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[SHR] = operation{execute: opShr, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[SAR] = operation{execute: opSar, validate: makeStackFunc(2, 1), constantGas: params.GasFastestStep, valid: true}
	tbl[EXTCODEHASH] = operation{execute: opExtcodehash, validate: makeStackFunc(1, 1), constantGas: params.GasExtStep, valid: true}
	tbl[CREATE2] = operation{execute: opCreate2, validate: makeStackFunc(4, 1), constantGas: params.GasCreate, writes: true, valid: true}
	tbl[DELEGATECALL] = operation{execute: opDelegateCall, validate: makeStackFunc(6, 1), constantGas: params.GasCallBase, valid: true}

	// Istanbul (EIP-1884 et al., see eips.go's Enable1884)
	Enable1884(&tbl)
	tbl[CHAINID] = operation{execute: opChainID, validate: makeStackFunc(0, 1), constantGas: params.GasQuickStep, valid: true}

	return tbl
}
