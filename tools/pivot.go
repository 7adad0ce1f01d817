// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"log/slog"

	"cogentcore.org/xform/events"
	"cogentcore.org/xform/math32"
	"cogentcore.org/xform/xyz"
)

// Activity reports whether the tool owning a controller is active.
type Activity interface {
	IsActive() bool
}

// PivotTool relocates an object's pivot when a focal point is picked
// on it while its owning tool is active. Every pick is one undoable
// [SetPivotOp], even one that does not move the pivot, since a pick
// is an explicit action and not a drag that may settle back.
type PivotTool struct {
	// Owner is the tool whose activity gates picks.
	Owner Activity

	// Ledger receives one operation per pick.
	Ledger Ledger

	// Scene is invalidated when a pivot moves.
	Scene Invalidator

	// Metrics, if non-nil, counts operations.
	Metrics *Metrics
}

// NewPivotTool returns a new pivot tool listening for FocalPointPicked
// events from the given scene.
func NewPivotTool(owner Activity, ledger Ledger, scene Scene) *PivotTool {
	pt := &PivotTool{Owner: owner, Ledger: ledger, Scene: scene}
	scene.On(events.FocalPointPicked, func(e events.Event) {
		fp, ok := e.(*events.Base).Data.(xyz.FocalPoint)
		if !ok || fp.Object == nil {
			return
		}
		pt.OnFocalPointPicked(fp.Object, fp.Position)
	})
	return pt
}

// OnFocalPointPicked adds a [SetPivotOp] moving the pivot of ob from
// where it is now to pos, if the owning tool is active.
func (pt *PivotTool) OnFocalPointPicked(ob *xyz.Object, pos math32.Vector3) {
	if !pt.Owner.IsActive() {
		return
	}
	op := NewSetPivotOp(ob, ob.PivotPos(), pos, pt.Scene)
	pt.Ledger.Add(op)
	slog.Debug("pivot tool: pivot set", "object", ob.Name, "old", op.OldPivot, "new", op.NewPivot)
	pt.Metrics.op(op.Name())
}
