// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"cogentcore.org/xform/math32"
	"cogentcore.org/xform/xyz"
)

// PendingEdit is the before and after transform of one object's pivot
// during a gesture.
type PendingEdit struct {
	Object *xyz.Object
	Old    xyz.Transform
	New    xyz.Transform
}

// Changed returns whether New differs from Old in any component.
func (pe *PendingEdit) Changed() bool {
	return !pe.Old.Equal(pe.New)
}

// TransformOp is the undoable result of one gesture: the transforms of
// every object that the gesture changed.
type TransformOp struct {
	Edits []PendingEdit

	scene Invalidator
}

// NewTransformOp returns a new operation over the given edits, which
// it invalidates the scene for when applied.
func NewTransformOp(edits []PendingEdit, scene Invalidator) *TransformOp {
	return &TransformOp{Edits: edits, scene: scene}
}

func (op *TransformOp) Name() string { return "transform" }

// Do sets every object to its New transform.
func (op *TransformOp) Do() {
	for i := range op.Edits {
		pe := &op.Edits[i]
		pe.Object.Pivot.SetTransform(pe.New)
		pe.Object.SetWorldBoundsDirty()
	}
	op.invalidate()
}

// Undo sets every object back to its Old transform.
func (op *TransformOp) Undo() {
	for i := range op.Edits {
		pe := &op.Edits[i]
		pe.Object.Pivot.SetTransform(pe.Old)
		pe.Object.SetWorldBoundsDirty()
	}
	op.invalidate()
}

func (op *TransformOp) invalidate() {
	if op.scene == nil {
		return
	}
	op.scene.SetNeedsUpdate()
	op.scene.SetNeedsRender()
}

// SetPivotOp is the undoable relocation of one object's pivot.
type SetPivotOp struct {
	Object   *xyz.Object
	OldPivot math32.Vector3
	NewPivot math32.Vector3

	scene Invalidator
}

// NewSetPivotOp returns a new pivot relocation of ob from oldPivot to newPivot.
func NewSetPivotOp(ob *xyz.Object, oldPivot, newPivot math32.Vector3, scene Invalidator) *SetPivotOp {
	return &SetPivotOp{Object: ob, OldPivot: oldPivot, NewPivot: newPivot, scene: scene}
}

func (op *SetPivotOp) Name() string { return "setPivot" }

func (op *SetPivotOp) Do() {
	op.Object.SetPivot(op.NewPivot)
	op.invalidate()
}

func (op *SetPivotOp) Undo() {
	op.Object.SetPivot(op.OldPivot)
	op.invalidate()
}

func (op *SetPivotOp) invalidate() {
	if op.scene == nil {
		return
	}
	op.scene.SetNeedsUpdate()
	op.scene.SetNeedsRender()
}
