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

import "github.com/ethgo/evmcore/word"

// maxMemorySize bounds how far a single access may grow memory. spec.md
// §4.1 declares no explicit trap for a large offset, but this engine
// runs unmetered, so nothing else stops an offset+size that merely
// looks large from panicking on the backing []byte, or from wrapping a
// raw uint64 addition into a small in-bounds index. The cutoff matches
// go-ethereum's own memoryGasCost bound, the highest value its
// word-count squaring can't overflow.
const maxMemorySize = 0x1FFFFFFFE0

// memoryRange validates a (offset, size) operand pair pulled off the
// stack before any Memory access. Both must fit in a uint64 and their
// sum must stay under maxMemorySize; violating either returns
// ErrGasUintOverflow instead of letting the caller compute a wrapped
// offset. A zero size never touches memory, so it always validates
// regardless of offset (e.g. RETURN with size 0 from any offset).
func memoryRange(offset, size word.Word) (off, sz uint64, err error) {
	if size.IsZero() {
		return 0, 0, nil
	}
	if !offset.IsUint64() || !size.IsUint64() {
		return 0, 0, ErrGasUintOverflow
	}
	off, sz = offset.Uint64(), size.Uint64()
	if off > maxMemorySize || sz > maxMemorySize || off+sz > maxMemorySize {
		return 0, 0, ErrGasUintOverflow
	}
	return off, sz, nil
}

// Memory is a frame's byte-addressable, logically infinite, zero-
// initialized buffer. It only grows; callers request a size via
// Resize before reading/writing past the current length.
type Memory struct {
	store       []byte
	lastGasCost uint64
}

func NewMemory() *Memory { return &Memory{} }

// Len returns the current high-water size in bytes.
func (m *Memory) Len() int { return len(m.store) }

// Resize grows the backing buffer to size bytes if it's currently
// smaller, zero-filling the new region. It never shrinks.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) < size {
		m.store = append(m.store, make([]byte, size-uint64(len(m.store)))...)
	}
}

// Set writes value into the memory starting at offset, growing first
// if necessary.
func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	m.Resize(offset + size)
	copy(m.store[offset:offset+size], value)
}

// Set32 writes val's 32-byte big-endian encoding at offset.
func (m *Memory) Set32(offset uint64, val [32]byte) {
	m.Resize(offset + 32)
	copy(m.store[offset:offset+32], val[:])
}

// GetCopy returns an independent copy of the size bytes starting at
// offset (zero-padded if the range extends past Len, since reads never
// fail, only Resize does).
func (m *Memory) GetCopy(offset, size int64) []byte {
	if size == 0 {
		return nil
	}
	cp := make([]byte, size)
	if offset < int64(len(m.store)) {
		end := offset + size
		if end > int64(len(m.store)) {
			end = int64(len(m.store))
		}
		copy(cp, m.store[offset:end])
	}
	return cp
}

// GetPtr returns a slice into the backing buffer without copying; the
// caller must not retain it past the next mutating call.
func (m *Memory) GetPtr(offset, size int64) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

// Data returns the entire backing buffer.
func (m *Memory) Data() []byte { return m.store }
