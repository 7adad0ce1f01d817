// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides an undo / redo history of reversible
// editing operations.
package undo

import (
	"log/slog"
	"sync"
)

// Operation is one reversible edit. Do applies the edit, and Undo
// reverses it. Both replay recorded state, so they can be called any
// number of times in alternation.
type Operation interface {
	// Name is a short description of the operation, for the user to see.
	Name() string

	// Do applies the operation.
	Do()

	// Undo reverses the operation.
	Undo()
}

// Mgr is the undo manager, managing the undo / redo process.
// The zero value is an empty history ready to use.
type Mgr struct {

	// Index is the number of operations currently applied:
	// Ops[Index-1] is the one that will be undone if user hits undo,
	// and Ops[Index] is the one that will be redone.
	Index int

	// Ops is the list of recorded operations.
	Ops []Operation

	// Mu protects updates. Operations are applied under the lock,
	// so they must not call back into the manager.
	Mu sync.Mutex
}

// Add records a new operation as the next one to be undone, and applies
// it. Any operations that had been undone are discarded, so they can no
// longer be redone.
func (um *Mgr) Add(op Operation) {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Index < len(um.Ops) {
		clear(um.Ops[um.Index:])
		um.Ops = um.Ops[:um.Index]
	}
	um.Ops = append(um.Ops, op)
	um.Index = len(um.Ops)
	slog.Debug("undo: add", "op", op.Name(), "index", um.Index)
	op.Do()
}

// IsUndoAvailable returns true if there is at least one operation to undo.
func (um *Mgr) IsUndoAvailable() bool {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	return um.Index > 0
}

// IsRedoAvailable returns true if there is at least one operation to redo.
func (um *Mgr) IsRedoAvailable() bool {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	return um.Index < len(um.Ops)
}

// Undo reverses the operation at the current index and moves
// the index back, returning the operation, or nil if there is
// nothing to undo.
func (um *Mgr) Undo() Operation {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Index <= 0 {
		return nil
	}
	um.Index--
	op := um.Ops[um.Index]
	slog.Debug("undo: undo", "op", op.Name(), "index", um.Index)
	op.Undo()
	return op
}

// Redo applies the next undone operation and moves the index
// forward, returning the operation, or nil if there is nothing
// to redo.
func (um *Mgr) Redo() Operation {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Index >= len(um.Ops) {
		return nil
	}
	op := um.Ops[um.Index]
	um.Index++
	slog.Debug("undo: redo", "op", op.Name(), "index", um.Index)
	op.Do()
	return op
}

// Len returns the total number of recorded operations,
// including those that have been undone.
func (um *Mgr) Len() int {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	return len(um.Ops)
}

// Names returns the names of all recorded operations in order.
func (um *Mgr) Names() []string {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	nms := make([]string, len(um.Ops))
	for i, op := range um.Ops {
		nms[i] = op.Name()
	}
	return nms
}

// Reset discards the whole history without applying or reversing anything.
func (um *Mgr) Reset() {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	um.Ops = nil
	um.Index = 0
}
