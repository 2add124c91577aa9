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
	"github.com/ethgo/evmcore/params"
	"github.com/ethgo/evmcore/state"
	"github.com/ethgo/evmcore/word"
)

// BlockContext carries the block-level values the environment opcodes
// read (spec.md §4.1's BLOCKHASH/COINBASE/TIMESTAMP/NUMBER/DIFFICULTY/
// GASLIMIT/CHAINID). It is supplied once per Processor.Run and never
// mutated by the engine.
type BlockContext struct {
	Coinbase    common.Address
	GasLimit    uint64
	BlockNumber word.Word
	Time        word.Word
	Difficulty  word.Word
	ChainID     word.Word

	// GetHash resolves BLOCKHASH(n); a nil func makes BLOCKHASH always
	// push zero, which is what a host with no block history should do.
	GetHash func(n uint64) common.Hash
}

// TxContext carries the transaction-level values ORIGIN and GASPRICE
// read.
type TxContext struct {
	Origin   common.Address
	GasPrice word.Word
}

// StepEvent is one Trace record: spec.md §4.4 requires at minimum the
// opcode; this also carries the PC and a snapshot of the stack, which
// implementations MAY include.
type StepEvent struct {
	PC    uint64
	Op    OpCode
	Depth int
	Stack []word.Word
}

// TraceSink receives one StepEvent per executed instruction, in
// execution order (spec.md §4.4). A nil sink means tracing is off.
type TraceSink interface {
	OnStep(event StepEvent)
}

// LogSink receives LOG0..LOG4 events as they're emitted. A nil sink
// silently drops them.
type LogSink interface {
	OnLog(address common.Address, topics []common.Hash, data []byte)
}

// EVMInterpreter drives the fetch-decode-dispatch loop and owns the
// pieces shared across every frame of one Processor.run call: the
// world state, the fork-gated jump table, the block/tx context and the
// call-depth counter. One EVMInterpreter is created per top-level
// Processor.Run; sub-calls recurse through its Run method.
type EVMInterpreter struct {
	World   *state.WorldState
	Config  *params.ChainConfig
	Block   BlockContext
	Tx      TxContext
	table   *JumpTable

	Trace TraceSink
	Log   LogSink

	depth  int
	static bool

	journal *state.Journal
	// returnData is the last sub-call's full output, exposed to the
	// caller frame via RETURNDATASIZE/RETURNDATACOPY.
	returnData []byte
}

// NewEVMInterpreter builds an interpreter bound to world, using cfg's
// Rules to select the instruction set.
func NewEVMInterpreter(world *state.WorldState, cfg *params.ChainConfig, block BlockContext, tx TxContext) *EVMInterpreter {
	if cfg == nil {
		cfg = params.DefaultChainConfig()
	}
	return &EVMInterpreter{
		World:   world,
		Config:  cfg,
		Block:   block,
		Tx:      tx,
		table:   instructionSetFor(cfg.Rules),
		journal: state.Open(world),
	}
}

// Frame is one activation record's dynamic state: the interpreter it
// runs under, the callee Contract, its private stack and memory, and
// the program counter. Corresponds to spec.md §3's "Context (frame)".
type Frame struct {
	in       *EVMInterpreter
	contract *Contract
	memory   *Memory
	stack    *Stack
	pc       uint64
	readOnly bool

	journal *state.Journal
}

// Run executes contract's code to completion (or failure), returning
// the output buffer (populated for Returned/Reverted) and the
// terminating Kind. readOnly propagates and sticks: once set by an
// ancestor STATICCALL, no descendant frame can clear it (spec.md
// §4.2).
func (in *EVMInterpreter) Run(contract *Contract, input []byte, readOnly bool) ([]byte, Kind) {
	in.depth++
	defer func() { in.depth-- }()

	if readOnly && !in.static {
		in.static = true
		defer func() { in.static = false }()
	}

	in.returnData = nil
	contract.Input = input

	if len(contract.Code) == 0 {
		return nil, Halted
	}

	f := &Frame{
		in:       in,
		contract: contract,
		memory:   NewMemory(),
		stack:    newstack(),
		readOnly: in.static,
		journal:  in.journal,
	}

	for {
		op := contract.GetOp(f.pc)
		operation := in.table[op]
		if !operation.valid {
			return nil, IllegalInstruction
		}
		if err := operation.validateStack(f.stack); err != nil {
			return nil, err.Kind
		}
		if operation.writes && f.readOnly {
			return nil, StaticViolation
		}
		if in.Config.MeterGas {
			if !operation.useGas(contract) {
				return nil, OutOfGas
			}
		}
		if in.Trace != nil {
			in.Trace.OnStep(StepEvent{PC: f.pc, Op: op, Depth: in.depth, Stack: append([]word.Word(nil), f.stack.data...)})
		}

		ret, err := operation.execute(f)
		if err != nil {
			ee, ok := err.(*ExecutionError)
			if !ok {
				return nil, IllegalInstruction
			}
			switch ee.Kind {
			case Returned, Reverted:
				return ret, ee.Kind
			default:
				return nil, ee.Kind
			}
		}

		if !operation.jumps {
			f.pc++
		}
	}
}
