// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"cogentcore.org/xform/events"
	"cogentcore.org/xform/math32"
	"cogentcore.org/xform/settings"
	"cogentcore.org/xform/xyz"
)

// StartDrag begins a drag on the attached pivots and sends
// TransformStart. It returns false, and does nothing, if the handle
// is not attached or a drag is already in progress.
func (gz *Gizmo) StartDrag() bool {
	if gz.dragging || !gz.IsAttached() {
		return false
	}
	gz.dragging = true
	gz.dragStart = gz.dragStart[:0]
	for _, ps := range gz.pivots {
		gz.dragStart = append(gz.dragStart, ps.Transform())
	}
	gz.Listeners.Send(events.TransformStart, nil)
	return true
}

// Translate moves the attached pivots by delta, along the parent axes
// in World space or the pivot axes in Local space.
func (gz *Gizmo) Translate(delta math32.Vector3) {
	gz.move(func(ps *xyz.Pose) {
		if gz.CoordSpace == settings.Local {
			ps.Pos.SetAdd(delta.MulQuat(ps.Quat))
			return
		}
		ps.Pos.SetAdd(delta)
	})
}

// Rotate rotates the attached pivots about axis by the given angle in
// degrees, taking the axis in the parent frame in World space or the
// pivot frame in Local space.
func (gz *Gizmo) Rotate(axis math32.Vector3, angle float32) {
	gz.move(func(ps *xyz.Pose) {
		if gz.CoordSpace == settings.Local {
			ps.RotateOnAxis(axis.X, axis.Y, axis.Z, angle)
			return
		}
		ps.RotateOnAxisAbs(axis.X, axis.Y, axis.Z, angle)
	})
}

// ScaleBy multiplies the local scale of the attached pivots by factor.
// Scaling is always along the pivot axes.
func (gz *Gizmo) ScaleBy(factor math32.Vector3) {
	gz.move(func(ps *xyz.Pose) {
		ps.ScaleBy(factor)
	})
}

// move applies fun to each attached pivot and sends TransformMove.
// It does nothing outside of a drag.
func (gz *Gizmo) move(fun func(ps *xyz.Pose)) {
	if !gz.dragging {
		return
	}
	for _, ps := range gz.pivots {
		fun(ps)
	}
	gz.Listeners.Send(events.TransformMove, nil)
	gz.renderUpdate()
}

// EndDrag completes the current drag and sends TransformEnd.
func (gz *Gizmo) EndDrag() {
	if !gz.dragging {
		return
	}
	gz.dragging = false
	gz.Listeners.Send(events.TransformEnd, nil)
}

// CancelDrag aborts the current drag, restoring the pivots to where
// they were at StartDrag, and sends TransformCancel.
func (gz *Gizmo) CancelDrag() {
	if !gz.dragging {
		return
	}
	gz.dragging = false
	for i, ps := range gz.pivots {
		if i < len(gz.dragStart) {
			ps.SetTransform(gz.dragStart[i])
		}
	}
	gz.Listeners.Send(events.TransformCancel, nil)
	gz.renderUpdate()
}
