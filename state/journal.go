// Copyright 2018 The go-ethereum Authors
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

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/ethgo/evmcore/common"
)

// LogEntry is a single emitted event: an address, up to four topics,
// and an opaque data payload, matching LOGn's operand shape.
type LogEntry struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

// Journal buffers one sub-frame's world-state mutations atop its
// parent so they can be discarded wholesale on revert or error, or
// merged into the parent on success (spec.md §4.2's "State isolation";
// §9's design note on modeling a sub-frame as a delta layered atop the
// parent rather than cyclic shared ownership).
//
// The delta itself is a snapshot/restore pair on the underlying
// WorldState (see WorldState.Snapshot); Journal additionally tracks,
// per frame, which addresses were touched, which were scheduled for
// self-destruction, and which logs were emitted, so a discard can undo
// all three in one step.
type Journal struct {
	world *WorldState

	snapshot map[common.Address]*Account
	dirty    mapset.Set
	suicides mapset.Set
	logs     []LogEntry
}

// Open begins a new journal layer over world, capturing its current
// contents so Discard can restore them exactly.
func Open(world *WorldState) *Journal {
	return &Journal{
		world:    world,
		snapshot: world.Snapshot(),
		dirty:    mapset.NewSet(),
		suicides: mapset.NewSet(),
	}
}

// Touch records that addr was read or written during this frame.
func (j *Journal) Touch(addr common.Address) { j.dirty.Add(addr) }

// Dirty reports whether addr was touched.
func (j *Journal) Dirty(addr common.Address) bool { return j.dirty.Contains(addr) }

// ScheduleSelfDestruct records addr as self-destructed in this journal.
// It only records: nothing in the engine removes a recorded account
// from the WorldState at the end of the transaction.
func (j *Journal) ScheduleSelfDestruct(addr common.Address) { j.suicides.Add(addr) }

// SelfDestructed reports whether addr was recorded in this frame or in
// a child journal committed into it.
func (j *Journal) SelfDestructed(addr common.Address) bool { return j.suicides.Contains(addr) }

// AppendLog records a log emitted during this frame.
func (j *Journal) AppendLog(l LogEntry) { j.logs = append(j.logs, l) }

// Logs returns every log recorded in this frame, in emission order.
func (j *Journal) Logs() []LogEntry { return j.logs }

// Commit merges this journal's tracked state into parent: the
// underlying WorldState mutations are already visible (Journal doesn't
// buffer account edits separately from the shared WorldState), so
// Commit only needs to fold forward the touched/suicide sets and logs.
func (j *Journal) Commit(parent *Journal) {
	if parent == nil {
		return
	}
	parent.dirty = parent.dirty.Union(j.dirty)
	parent.suicides = parent.suicides.Union(j.suicides)
	parent.logs = append(parent.logs, j.logs...)
}

// Discard rolls the underlying WorldState back to the state captured
// at Open, undoing every account mutation this frame (or any nested
// frame merged into it) made. Touched/suicide/log tracking is dropped
// along with it: none of it is visible to the parent.
func (j *Journal) Discard() {
	j.world.Restore(j.snapshot)
}
