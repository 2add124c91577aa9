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

// Package runtime is the top-level driver spec.md §4.3 calls the
// Processor: it binds a WorldState, a block/tx context and a fork rule
// set, then runs one call's code to completion and reports its
// Outcome. Execute/Call are convenience wrappers in the same shape as
// go-ethereum's runtime package, for callers that just want to run a
// snippet of code without managing a Processor themselves.
package runtime

import (
	"fmt"

	"github.com/ethgo/evmcore/common"
	"github.com/ethgo/evmcore/core/vm"
	"github.com/ethgo/evmcore/crypto"
	"github.com/ethgo/evmcore/log"
	"github.com/ethgo/evmcore/params"
	"github.com/ethgo/evmcore/state"
	"github.com/ethgo/evmcore/word"
)

// Outcome is the Processor's result: the terminating Kind plus
// whatever output bytes accompany it (populated for Returned and
// Reverted, nil otherwise).
type Outcome struct {
	ExitReason vm.Kind
	Output     []byte
}

// Transaction carries the per-call values that aren't part of the
// block context: the sender, its gas price, and where emitted logs
// should go.
type Transaction struct {
	From     common.Address
	GasPrice word.Word
	LogSink  vm.LogSink
}

// Processor binds an engine to a mutable world-state view (spec.md
// §4.3: "Processor(world_state&)").
type Processor struct {
	World  *state.WorldState
	Config *params.ChainConfig
	Block  vm.BlockContext
}

// NewProcessor builds a Processor bound to world, using cfg's Rules
// and block's environment values for every Run call.
func NewProcessor(world *state.WorldState, cfg *params.ChainConfig, block vm.BlockContext) *Processor {
	if cfg == nil {
		cfg = params.DefaultChainConfig()
	}
	return &Processor{World: world, Config: cfg, Block: block}
}

// Run constructs the root Context (sender is tx.From, callee code/
// storage come from the account at to), enters the Dispatcher, and
// propagates the result as an Outcome (spec.md §4.3).
func (p *Processor) Run(tx Transaction, to common.Address, input []byte, value word.Word, trace vm.TraceSink) Outcome {
	interp := vm.NewEVMInterpreter(p.World, p.Config, p.Block, vm.TxContext{Origin: tx.From, GasPrice: tx.GasPrice})
	interp.Trace = trace
	interp.Log = tx.LogSink

	account := p.World.Get(to)
	contract := vm.NewContract(tx.From, to, account, account.Code, input, value, p.Block.GasLimit)

	output, kind := interp.Run(contract, input, false)
	return Outcome{ExitReason: kind, Output: output}
}

// Config configures Execute/Call, mirroring go-ethereum's
// runtime.Config. Zero-valued fields are filled in by setDefaults.
type Config struct {
	ChainConfig *params.ChainConfig
	Origin      common.Address
	State       *state.WorldState
	GasLimit    uint64
	Difficulty  word.Word
	Time        word.Word
	Coinbase    common.Address
	BlockNumber word.Word
	ChainID     word.Word
	GasPrice    word.Word
	Value       word.Word
	GetHashFn   func(n uint64) common.Hash
	Trace       vm.TraceSink
	Log         vm.LogSink
}

// setDefaults fills the fields Execute/Call need a sane value for,
// leaving any field the caller already set untouched. Unlike the
// teacher's *big.Int-pointer fields, word.Word has no nil state to test
// against, so BlockNumber is treated as unset when it is zero rather
// than guarded by a "== nil" check.
func setDefaults(cfg *Config) {
	if cfg.ChainConfig == nil {
		cfg.ChainConfig = params.DefaultChainConfig()
	}
	if cfg.GasLimit == 0 {
		cfg.GasLimit = 1 << 62
	}
	if cfg.BlockNumber.IsZero() {
		cfg.BlockNumber = word.FromUint64(1)
	}
	if cfg.State == nil {
		cfg.State = state.New()
	}
	if cfg.GetHashFn == nil {
		cfg.GetHashFn = func(n uint64) common.Hash { return common.Hash{} }
	}
}

func (cfg *Config) blockContext() vm.BlockContext {
	return vm.BlockContext{
		Coinbase:    cfg.Coinbase,
		GasLimit:    cfg.GasLimit,
		BlockNumber: cfg.BlockNumber,
		Time:        cfg.Time,
		Difficulty:  cfg.Difficulty,
		ChainID:     cfg.ChainID,
		GetHash:     cfg.GetHashFn,
	}
}

// executeAddress is the synthetic address Execute deploys the given
// code to, so a bare snippet can be run without the caller having to
// make up an address of its own.
var executeAddress = common.HexToAddress("0xffffffffffffffffffffffffffffffffffffff")

// Execute runs code with input against a fresh (or cfg.State-supplied)
// world, returning the output and the resulting world for inspection.
func Execute(code, input []byte, cfg *Config) ([]byte, *state.WorldState, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	setDefaults(cfg)

	account := cfg.State.Create(executeAddress)
	account.Code = code

	p := NewProcessor(cfg.State, cfg.ChainConfig, cfg.blockContext())
	outcome := p.Run(Transaction{From: cfg.Origin, GasPrice: cfg.GasPrice, LogSink: cfg.Log}, executeAddress, input, cfg.Value, cfg.Trace)
	if outcome.ExitReason.IsError() {
		return outcome.Output, cfg.State, fmt.Errorf("vm: %s", outcome.ExitReason)
	}
	return outcome.Output, cfg.State, nil
}

// Call runs the code already deployed at address against cfg.State,
// returning its output.
func Call(address common.Address, input []byte, cfg *Config) ([]byte, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	setDefaults(cfg)

	p := NewProcessor(cfg.State, cfg.ChainConfig, cfg.blockContext())
	outcome := p.Run(Transaction{From: cfg.Origin, GasPrice: cfg.GasPrice, LogSink: cfg.Log}, address, input, cfg.Value, cfg.Trace)
	if outcome.ExitReason.IsError() {
		log.Debug("call failed", "address", address, "reason", outcome.ExitReason)
		return outcome.Output, fmt.Errorf("vm: %s", outcome.ExitReason)
	}
	return outcome.Output, nil
}

// Create runs input as init code for a new contract at the CREATE
// address derived from cfg.Origin and its nonce. It returns the init
// code's output (stored as the deployed code when it ends in RETURN),
// the new address, and an error for any other exit.
func Create(input []byte, cfg *Config) ([]byte, common.Address, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	setDefaults(cfg)

	senderAccount := cfg.State.Get(cfg.Origin)
	nonce := senderAccount.Nonce
	senderAccount.Nonce++
	addr := crypto.CreateAddress(cfg.Origin, nonce)

	newAccount := cfg.State.Create(addr)

	p := NewProcessor(cfg.State, cfg.ChainConfig, cfg.blockContext())
	interp := vm.NewEVMInterpreter(cfg.State, cfg.ChainConfig, p.Block, vm.TxContext{Origin: cfg.Origin, GasPrice: cfg.GasPrice})
	interp.Trace = cfg.Trace
	interp.Log = cfg.Log

	contract := vm.NewContract(cfg.Origin, addr, newAccount, input, nil, cfg.Value, cfg.GasLimit)
	output, kind := interp.Run(contract, nil, false)
	if kind != vm.Returned {
		return output, addr, fmt.Errorf("vm: %s", kind)
	}
	newAccount.Code = output
	return output, addr, nil
}
