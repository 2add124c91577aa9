// Copyright 2017 The go-ethereum Authors
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

// stackValidationFunc reports whether the stack's current depth
// satisfies an operation's minStack/maxStack bounds before execute
// runs.
type stackValidationFunc func(stack *Stack) *ExecutionError

// makeStackFunc builds the validator for an operation that pops pop
// items and pushes push items.
func makeStackFunc(pop, push int) stackValidationFunc {
	return func(stack *Stack) *ExecutionError {
		if stack.len() < pop {
			return ErrStackUnderflow
		}
		if stack.len()-pop+push > params.StackLimit {
			return ErrStackOverflow
		}
		return nil
	}
}

func makeDupStackFunc(n int) stackValidationFunc  { return makeStackFunc(n, n+1) }
func makeSwapStackFunc(n int) stackValidationFunc { return makeStackFunc(n, n) }
