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

// Package logger provides concrete vm.TraceSink/vm.LogSink
// implementations: a StructLogger that records one StructLog per step
// (go-ethereum's core/vm/logger.go shape) and can optionally stream
// them to an io.Writer as it goes.
package logger

import (
	"fmt"
	"io"

	"github.com/ethgo/evmcore/common"
	"github.com/ethgo/evmcore/core/vm"
)

// StructLog is a renderable snapshot of one executed instruction.
type StructLog struct {
	Pc    uint64
	Op    vm.OpCode
	Depth int
	Stack []string
}

// StructLogger implements vm.TraceSink, accumulating a StructLog per
// step and optionally streaming a one-line rendering of each to an
// io.Writer as it's recorded.
type StructLogger struct {
	logs   []StructLog
	writer io.Writer
}

// NewStructLogger builds a StructLogger. A nil writer disables
// streaming; logs are still accumulated and available via Logs.
func NewStructLogger(w io.Writer) *StructLogger {
	return &StructLogger{writer: w}
}

// OnStep implements vm.TraceSink.
func (l *StructLogger) OnStep(event vm.StepEvent) {
	entry := StructLog{Pc: event.PC, Op: event.Op, Depth: event.Depth}
	for _, w := range event.Stack {
		entry.Stack = append(entry.Stack, w.Hex())
	}
	l.logs = append(l.logs, entry)
	if l.writer != nil {
		fmt.Fprintf(l.writer, "pc=%04x op=%-14s depth=%-3d stack=%v\n", entry.Pc, entry.Op, entry.Depth, entry.Stack)
	}
}

// Logs returns every StructLog recorded so far, in execution order.
func (l *StructLogger) Logs() []StructLog { return l.logs }

// EventLogger implements vm.LogSink, streaming each LOGn emission to
// an io.Writer.
type EventLogger struct {
	writer io.Writer
}

// NewEventLogger builds an EventLogger that writes to w.
func NewEventLogger(w io.Writer) *EventLogger {
	return &EventLogger{writer: w}
}

// OnLog implements vm.LogSink.
func (l *EventLogger) OnLog(address common.Address, topics []common.Hash, data []byte) {
	fmt.Fprintf(l.writer, "log address=%x topics=%d data=%x\n", address, len(topics), data)
}
