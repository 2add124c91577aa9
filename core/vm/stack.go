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
	"github.com/ethgo/evmcore/params"
	"github.com/ethgo/evmcore/word"
)

// Stack is the per-frame operand stack of 256-bit words. It never
// holds more than params.StackLimit items; push enforces the bound
// instead of growing past it.
type Stack struct {
	data []word.Word
}

func newstack() *Stack {
	return &Stack{data: make([]word.Word, 0, 16)}
}

func (st *Stack) push(d word.Word) error {
	if len(st.data) >= params.StackLimit {
		return ErrStackOverflow
	}
	st.data = append(st.data, d)
	return nil
}

func (st *Stack) pop() (word.Word, error) {
	if len(st.data) == 0 {
		return word.Word{}, ErrStackUnderflow
	}
	n := len(st.data) - 1
	d := st.data[n]
	st.data = st.data[:n]
	return d, nil
}

func (st *Stack) len() int { return len(st.data) }

// peek returns the top item without popping it.
func (st *Stack) peek() word.Word { return st.data[len(st.data)-1] }

// back returns the n-th item from the top, 0-indexed.
func (st *Stack) back(n int) word.Word { return st.data[len(st.data)-n-1] }

// swap exchanges the top item with the (n+1)-th item, per SWAPn.
func (st *Stack) swap(n int) {
	top := len(st.data) - 1
	st.data[top], st.data[top-n] = st.data[top-n], st.data[top]
}

// dup pushes a copy of the n-th item from the top (1-indexed), per
// DUPn.
func (st *Stack) dup(n int) error {
	return st.push(st.data[len(st.data)-n])
}
