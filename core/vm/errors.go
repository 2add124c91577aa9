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

// Kind classifies how a frame stopped running. Halted, Returned and
// Reverted are normal terminations; of these only Returned and Reverted
// carry an output buffer. Execution errors carry no output.
type Kind int

const (
	Halted Kind = iota
	Returned
	Reverted
	OutOfGas
	StackUnderflow
	StackOverflow
	BadJump
	IllegalInstruction
	StaticViolation
	AddressCollision
	DepthExceeded
)

func (k Kind) String() string {
	switch k {
	case Halted:
		return "halted"
	case Returned:
		return "returned"
	case Reverted:
		return "reverted"
	case OutOfGas:
		return "out_of_gas"
	case StackUnderflow:
		return "stack_underflow"
	case StackOverflow:
		return "stack_overflow"
	case BadJump:
		return "bad_jump"
	case IllegalInstruction:
		return "illegal_instruction"
	case StaticViolation:
		return "static_violation"
	case AddressCollision:
		return "address_collision"
	case DepthExceeded:
		return "depth_exceeded"
	default:
		return "unknown"
	}
}

// IsError reports whether k denotes an execution error rather than a
// normal termination (Halted/Returned/Reverted).
func (k Kind) IsError() bool { return k > Reverted }

// ExecutionError is what every instruction handler and the dispatch
// loop itself return in place of a halt/return/revert. Kind carries
// the exit_reason the processor ultimately surfaces; Err, when set, is
// the lower-level cause (e.g. a gas-accounting uint64 overflow) kept
// for logging, not for equality checks.
type ExecutionError struct {
	Kind Kind
	Err  error
}

func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String()
}

func newError(kind Kind) *ExecutionError { return &ExecutionError{Kind: kind} }

func wrapError(kind Kind, err error) *ExecutionError { return &ExecutionError{Kind: kind, Err: err} }

var (
	ErrStackUnderflow      = newError(StackUnderflow)
	ErrStackOverflow       = newError(StackOverflow)
	ErrBadJump             = newError(BadJump)
	ErrIllegalInstruction  = newError(IllegalInstruction)
	ErrStaticViolation     = newError(StaticViolation)
	ErrAddressCollision    = newError(AddressCollision)
	ErrDepthExceeded       = newError(DepthExceeded)
	ErrOutOfGas            = newError(OutOfGas)
	ErrGasUintOverflow     = wrapError(OutOfGas, errGasUintOverflow{})
)

type errGasUintOverflow struct{}

func (errGasUintOverflow) Error() string { return "gas uint64 overflow" }
