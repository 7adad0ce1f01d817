// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// setOp sets an int from old to new.
type setOp struct {
	v        *int
	old, new int
}

func (op *setOp) Name() string { return "set" }
func (op *setOp) Do()          { *op.v = op.new }
func (op *setOp) Undo()        { *op.v = op.old }

func TestAddAppliesOperation(t *testing.T) {
	var um Mgr
	v := 0
	um.Add(&setOp{&v, 0, 1})
	assert.Equal(t, 1, v)
	assert.True(t, um.IsUndoAvailable())
	assert.False(t, um.IsRedoAvailable())
	assert.Equal(t, 1, um.Len())
}

func TestUndoRedo(t *testing.T) {
	var um Mgr
	assert.Nil(t, um.Undo())
	assert.Nil(t, um.Redo())

	v := 0
	um.Add(&setOp{&v, 0, 1})
	um.Add(&setOp{&v, 1, 2})
	assert.Equal(t, 2, v)

	assert.NotNil(t, um.Undo())
	assert.Equal(t, 1, v)
	assert.NotNil(t, um.Undo())
	assert.Equal(t, 0, v)
	assert.Nil(t, um.Undo())
	assert.Equal(t, 0, um.Index)

	assert.NotNil(t, um.Redo())
	assert.Equal(t, 1, v)
	assert.NotNil(t, um.Redo())
	assert.Equal(t, 2, v)
	assert.Nil(t, um.Redo())
}

func TestAddDiscardsRedo(t *testing.T) {
	var um Mgr
	v := 0
	um.Add(&setOp{&v, 0, 1})
	um.Add(&setOp{&v, 1, 2})
	um.Undo()
	assert.True(t, um.IsRedoAvailable())

	um.Add(&setOp{&v, 1, 5})
	assert.Equal(t, 5, v)
	assert.False(t, um.IsRedoAvailable())
	assert.Equal(t, 2, um.Len())
	assert.Equal(t, []string{"set", "set"}, um.Names())

	um.Reset()
	assert.Equal(t, 0, um.Len())
	assert.False(t, um.IsUndoAvailable())
}
