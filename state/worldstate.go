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

package state

import "github.com/ethgo/evmcore/common"

// Database is the interface a persistent backend must satisfy to sit
// underneath WorldState instead of the in-memory map. The in-memory
// implementation (below) is the reference; spec.md §1 treats any
// alternative backend as an external collaborator.
type Database interface {
	Get(addr common.Address) (*Account, bool)
	Set(addr common.Address, a *Account)
	Delete(addr common.Address)
	Exists(addr common.Address) bool
}

// memoryDatabase is the reference Database: a plain Go map guarded by
// nothing, since the engine is single-threaded (spec.md §5).
type memoryDatabase struct {
	accounts map[common.Address]*Account
}

func newMemoryDatabase() *memoryDatabase {
	return &memoryDatabase{accounts: make(map[common.Address]*Account)}
}

func (m *memoryDatabase) Get(addr common.Address) (*Account, bool) {
	a, ok := m.accounts[addr]
	return a, ok
}
func (m *memoryDatabase) Set(addr common.Address, a *Account) { m.accounts[addr] = a }
func (m *memoryDatabase) Delete(addr common.Address)          { delete(m.accounts, addr) }
func (m *memoryDatabase) Exists(addr common.Address) bool {
	_, ok := m.accounts[addr]
	return ok
}

// WorldState is the mapping from address to Account that every frame
// reads and writes through. Sub-frames mutate it directly; a Journal
// opened before the sub-frame (see Open) snapshots it so Discard can
// roll those mutations back.
type WorldState struct {
	db Database
}

// New returns an empty in-memory WorldState.
func New() *WorldState {
	return &WorldState{db: newMemoryDatabase()}
}

// NewWithDatabase binds a WorldState to a caller-supplied backend.
func NewWithDatabase(db Database) *WorldState {
	return &WorldState{db: db}
}

// Create installs a fresh, empty account at addr, overwriting any
// existing one, and returns it.
func (w *WorldState) Create(addr common.Address) *Account {
	a := NewAccount()
	w.db.Set(addr, a)
	return a
}

// Get returns the account at addr, creating an empty one on first
// access so callers never see a nil Account (an absent account and a
// freshly-created empty one are observationally identical until
// mutated).
func (w *WorldState) Get(addr common.Address) *Account {
	if a, ok := w.db.Get(addr); ok {
		return a
	}
	a := NewAccount()
	w.db.Set(addr, a)
	return a
}

// Exists reports whether addr has an account entry at all (distinct
// from Get, which materializes one).
func (w *WorldState) Exists(addr common.Address) bool {
	return w.db.Exists(addr)
}

// Remove deletes the account at addr. The engine itself never calls
// it: accounts scheduled by SELFDESTRUCT stay in the WorldState.
func (w *WorldState) Remove(addr common.Address) {
	w.db.Delete(addr)
}

// Snapshot returns a deep copy of every account currently in the
// database. Used by the journal to capture the pre-sub-frame state for
// atomic rollback, and by tests asserting "the parent world-state
// equals the state immediately prior to the sub-call" (spec.md §8).
func (w *WorldState) Snapshot() map[common.Address]*Account {
	md, ok := w.db.(*memoryDatabase)
	if !ok {
		panic("state: Snapshot requires the in-memory Database")
	}
	cp := make(map[common.Address]*Account, len(md.accounts))
	for addr, a := range md.accounts {
		cp[addr] = a.Clone()
	}
	return cp
}

// Restore replaces the database contents with snap, undoing every
// mutation since the Snapshot that produced it.
func (w *WorldState) Restore(snap map[common.Address]*Account) {
	md, ok := w.db.(*memoryDatabase)
	if !ok {
		panic("state: Restore requires the in-memory Database")
	}
	md.accounts = make(map[common.Address]*Account, len(snap))
	for addr, a := range snap {
		md.accounts[addr] = a
	}
}
