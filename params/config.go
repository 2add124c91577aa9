// Copyright 2016 The go-ethereum Authors
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

// Package params collects the constants and fork-gated feature flags
// the interpreter needs: stack/call-depth limits and the (optional)
// per-opcode gas schedule. spec.md §9 leaves the exact fork level an
// open question and suggests targeting Istanbul/Berlin; that decision
// is recorded here as the two Rules the package ships (see DESIGN.md).
package params

const (
	// StackLimit is the maximum number of items on the operand stack
	// (spec.md §3's "Stack depth ≤ 1024 at all times").
	StackLimit = 1024

	// CallCreateDepth is the maximum call/create nesting depth
	// (spec.md §4.3: "Maximum call depth is 1024").
	CallCreateDepth = 1024

	// CallStipend is the gas stipend added to a value-bearing CALL so
	// the callee always has a minimum amount of gas to run its
	// fallback logic, matching go-ethereum's constant of the same
	// name.
	CallStipend uint64 = 2300

	// MaxCodeSize is the maximum length of a contract's deployed code,
	// enforced after a CREATE's init code returns.
	MaxCodeSize = 24576
)

// Rules is the resolved set of fork flags for a single execution.
// Fields are named after the forks they stand for, following
// go-ethereum's params.Rules convention. Only IsIstanbul changes which
// opcodes are legal: when set, the Byzantium, Constantinople and
// Istanbul opcodes noted below are all enabled together; when clear,
// none of them are. The other flags are carried but change neither
// the instruction set nor gas costs.
type Rules struct {
	IsHomestead bool
	IsEIP150    bool // gas-repricing fork
	IsByzantium bool // REVERT, STATICCALL, RETURNDATA*
	IsConstantinople bool // SHL/SHR/SAR, CREATE2, EXTCODEHASH, DELEGATECALL here
	IsIstanbul  bool // SELFBALANCE, CHAINID (EIP-1884/1344)
}

// Frontier is the empty rule set: none of the later opcode families
// are available. Mostly useful for testing the dispatcher's
// illegal_instruction path against opcodes that don't exist yet.
var Frontier = Rules{}

// IstanbulBerlin is the default rule set the engine ships: every
// opcode family spec.md §4.1 lists is enabled, matching §9's
// recommendation to target Istanbul/Berlin semantics.
var IstanbulBerlin = Rules{
	IsHomestead:      true,
	IsEIP150:         true,
	IsByzantium:      true,
	IsConstantinople: true,
	IsIstanbul:       true,
}

// ChainConfig carries the block/tx-independent parameters of the chain
// the engine is executing against. It is intentionally tiny compared
// to go-ethereum's: no fork *block numbers* are modeled since the core
// never sees a chain of blocks, only a single call context (spec.md
// §1: "the core never produces nor verifies [block headers]").
type ChainConfig struct {
	ChainID uint64
	Rules   Rules
	// MeterGas turns on constant-gas accounting in the dispatcher. Off
	// by default: spec.md §4.1 explicitly allows an unmetered engine,
	// and the §8 scenarios do not depend on gas.
	MeterGas bool
}

// DefaultChainConfig is what runtime.Run/Call use when the caller
// doesn't supply one.
func DefaultChainConfig() *ChainConfig {
	return &ChainConfig{
		ChainID: 1,
		Rules:   IstanbulBerlin,
	}
}
