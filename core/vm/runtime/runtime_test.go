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

package runtime

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/stretchr/testify/require"

	"github.com/ethgo/evmcore/common"
	"github.com/ethgo/evmcore/core/vm"
	"github.com/ethgo/evmcore/state"
	"github.com/ethgo/evmcore/word"
)

func TestDefaults(t *testing.T) {
	cfg := new(Config)
	setDefaults(cfg)

	require.NotNil(t, cfg.ChainConfig)
	require.NotZero(t, cfg.GasLimit)
	require.False(t, cfg.BlockNumber.IsZero())
	require.NotNil(t, cfg.State)
	require.NotNil(t, cfg.GetHashFn)
}

func TestEVM(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("crashed with: %v", r)
		}
	}()

	Execute([]byte{
		byte(vm.DIFFICULTY),
		byte(vm.TIMESTAMP),
		byte(vm.GASLIMIT),
		byte(vm.PUSH1), 0,
		byte(vm.ORIGIN),
		byte(vm.BLOCKHASH),
		byte(vm.COINBASE),
	}, nil, nil)
}

func TestExecute(t *testing.T) {
	ret, _, err := Execute([]byte{
		byte(vm.PUSH1), 10,
		byte(vm.PUSH1), 0,
		byte(vm.MSTORE),
		byte(vm.PUSH1), 32,
		byte(vm.PUSH1), 0,
		byte(vm.RETURN),
	}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, word.FromUint64(10), word.FromBytes(ret))
}

func TestCall(t *testing.T) {
	cfg := new(Config)
	setDefaults(cfg)

	address := common.HexToAddress("0x0a")
	account := cfg.State.Create(address)
	account.Code = []byte{
		byte(vm.PUSH1), 10,
		byte(vm.PUSH1), 0,
		byte(vm.MSTORE),
		byte(vm.PUSH1), 32,
		byte(vm.PUSH1), 0,
		byte(vm.RETURN),
	}

	ret, err := Call(address, nil, cfg)
	require.NoError(t, err)
	require.Equal(t, word.FromUint64(10), word.FromBytes(ret))
}

func TestCreate(t *testing.T) {
	cfg := new(Config)
	setDefaults(cfg)
	cfg.Origin = common.HexToAddress("0x1")
	cfg.State.Create(cfg.Origin)

	// init code: returns the single byte 0x2a as the deployed code.
	initCode := []byte{
		byte(vm.PUSH1), 0x2a,
		byte(vm.PUSH1), 0,
		byte(vm.MSTORE8),
		byte(vm.PUSH1), 1,
		byte(vm.PUSH1), 0,
		byte(vm.RETURN),
	}

	_, addr, err := Create(initCode, cfg)
	require.NoError(t, err)

	deployed := cfg.State.Get(addr)
	require.Equal(t, []byte{0x2a}, deployed.Code)
}

func TestProcessorEmptyCodeHalts(t *testing.T) {
	world := state.New()
	p := NewProcessor(world, nil, vm.BlockContext{})

	to := common.HexToAddress("0x20")
	rec := &recordingTraceSink{}
	outcome := p.Run(Transaction{From: common.HexToAddress("0x01")}, to, nil, word.Zero, rec)

	require.Equal(t, vm.Halted, outcome.ExitReason)
	require.Empty(t, outcome.Output)
	require.Empty(t, rec.events)
}

func TestProcessorAddProgram(t *testing.T) {
	world := state.New()
	to := common.HexToAddress("0x21")
	code := []byte{
		byte(vm.PUSH1), 0xed,
		byte(vm.PUSH1), 0xfe,
		byte(vm.ADD),
		byte(vm.PUSH1), 0x00,
		byte(vm.MSTORE),
		byte(vm.PUSH1), 0x20,
		byte(vm.PUSH1), 0x00,
		byte(vm.RETURN),
	}
	world.Create(to).Code = code

	p := NewProcessor(world, nil, vm.BlockContext{})
	rec := &recordingTraceSink{}
	outcome := p.Run(Transaction{From: common.HexToAddress("0x01")}, to, nil, word.Zero, rec)

	require.Equal(t, vm.Returned, outcome.ExitReason)
	require.Equal(t, word.FromUint64(0xed+0xfe), word.FromBytes(outcome.Output))

	require.GreaterOrEqual(t, len(rec.events), 9)
	requireOpcodeSubsequence(t, code, rec.events)
}

type recordingTraceSink struct {
	events []vm.StepEvent
}

func (r *recordingTraceSink) OnStep(event vm.StepEvent) { r.events = append(r.events, event) }

// requireOpcodeSubsequence asserts that the trace's recorded opcodes,
// read off at their own PCs, form a subsequence of code respecting PC
// order: PCs strictly increase and each event's opcode is the code
// byte at its PC.
func requireOpcodeSubsequence(t *testing.T, code []byte, events []vm.StepEvent) {
	t.Helper()
	lastPC := int64(-1)
	for _, e := range events {
		require.Greater(t, int64(e.PC), lastPC, "trace PCs must strictly increase")
		lastPC = int64(e.PC)
		require.Equal(t, vm.OpCode(code[e.PC]), e.Op)
	}
}

var errUnexpectedExit = errors.New("processor exited without returning")

// TestProcessorRunsConcurrentlyAcrossIndependentWorlds fans out several
// Processor.Run calls, each against its own WorldState, through an
// errgroup to confirm nothing in the dispatcher package relies on
// hidden shared mutable state between unrelated executions.
func TestProcessorRunsConcurrentlyAcrossIndependentWorlds(t *testing.T) {
	addend := []uint64{1, 2, 3, 4, 5, 6, 7, 8}

	g, _ := errgroup.WithContext(context.Background())
	results := make([]word.Word, len(addend))
	for i, n := range addend {
		i, n := i, n
		g.Go(func() error {
			world := state.New()
			to := common.HexToAddress("0x30")
			code := []byte{
				byte(vm.PUSH1), byte(n),
				byte(vm.PUSH1), 0x64,
				byte(vm.ADD),
				byte(vm.PUSH1), 0x00,
				byte(vm.MSTORE),
				byte(vm.PUSH1), 0x20,
				byte(vm.PUSH1), 0x00,
				byte(vm.RETURN),
			}
			world.Create(to).Code = code

			p := NewProcessor(world, nil, vm.BlockContext{})
			outcome := p.Run(Transaction{From: common.HexToAddress("0x01")}, to, nil, word.Zero, nil)
			if outcome.ExitReason != vm.Returned {
				return errUnexpectedExit
			}
			results[i] = word.FromBytes(outcome.Output)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, n := range addend {
		require.Equal(t, word.FromUint64(0x64+n), results[i])
	}
}

func TestSelfDestructForwardsBalance(t *testing.T) {
	cfg := new(Config)
	setDefaults(cfg)

	receiver := common.HexToAddress("0x10")
	beneficiary := common.HexToAddress("0xdead")

	account := cfg.State.Create(receiver)
	account.Balance = word.FromUint64(100)
	account.Code = append([]byte{byte(vm.PUSH20)}, beneficiary.Bytes()...)
	account.Code = append(account.Code, byte(vm.SELFDESTRUCT))

	_, err := Call(receiver, nil, cfg)
	require.NoError(t, err)

	require.True(t, cfg.State.Get(receiver).Balance.IsZero())
	require.Equal(t, word.FromUint64(100), cfg.State.Get(beneficiary).Balance)
}
