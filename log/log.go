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

// Package log is a thin structured-logging shim over the shape of
// go-ethereum's log15-based package: leveled Trace/Debug/Info/Warn/
// Error/Crit calls taking a message plus alternating key/value
// context pairs, with the caller's file:line captured automatically.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-stack/stack"
)

// Lvl is a logging severity, ordered least to most severe in output
// volume (Crit is always printed, Trace only when enabled).
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

func (l Lvl) String() string {
	switch l {
	case LvlCrit:
		return "CRIT"
	case LvlError:
		return "ERROR"
	case LvlWarn:
		return "WARN"
	case LvlInfo:
		return "INFO"
	case LvlDebug:
		return "DEBUG"
	case LvlTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Logger is the interface satisfied by both the package-level root
// logger and any New()-derived child with its own context.
type Logger interface {
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

type logger struct {
	mu  sync.Mutex
	out io.Writer
	lvl Lvl
	ctx []interface{}
}

var root = &logger{out: os.Stderr, lvl: LvlInfo}

// SetOutput redirects the root logger's output.
func SetOutput(w io.Writer) {
	root.mu.Lock()
	defer root.mu.Unlock()
	root.out = w
}

// SetLevel sets the root logger's minimum printed level.
func SetLevel(lvl Lvl) {
	root.mu.Lock()
	defer root.mu.Unlock()
	root.lvl = lvl
}

// New returns a child logger that prepends ctx to every call's
// context, the same way log15's log.New(ctx...) does.
func New(ctx ...interface{}) Logger {
	return &logger{out: root.out, lvl: root.lvl, ctx: append([]interface{}{}, ctx...)}
}

func (l *logger) write(lvl Lvl, msg string, callCtx []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lvl > l.lvl {
		return
	}
	caller := stack.Caller(2)
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%-5s] %+v %s", time.Now().Format("01-02|15:04:05.000"), lvl, caller, msg)
	all := append(append([]interface{}{}, l.ctx...), callCtx...)
	for i := 0; i+1 < len(all); i += 2 {
		fmt.Fprintf(&b, " %v=%v", all[i], all[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(LvlTrace, msg, ctx) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(LvlDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(LvlInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(LvlWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(LvlError, msg, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(LvlCrit, msg, ctx)
	os.Exit(1)
}

// Package-level convenience wrappers over the root logger, the way
// callers throughout go-ethereum use log.Warn(...) without ever
// constructing a Logger themselves.
func Trace(msg string, ctx ...interface{}) { root.write(LvlTrace, msg, ctx) }
func Debug(msg string, ctx ...interface{}) { root.write(LvlDebug, msg, ctx) }
func Info(msg string, ctx ...interface{})  { root.write(LvlInfo, msg, ctx) }
func Warn(msg string, ctx ...interface{})  { root.write(LvlWarn, msg, ctx) }
func Error(msg string, ctx ...interface{}) { root.write(LvlError, msg, ctx) }
func Crit(msg string, ctx ...interface{}) {
	root.write(LvlCrit, msg, ctx)
	os.Exit(1)
}
