// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tools provides the editor tools that move scene objects:
// the transform tool, which turns manipulation handle drags into
// undoable operations, the pivot tool, which relocates an object's
// pivot on a pick, and the viewport scaler, which keeps the handle a
// constant size on screen.
//
// All tool handlers run to completion on the goroutine that
// dispatches events; nothing here blocks or starts goroutines.
package tools

import (
	"cogentcore.org/xform/events"
	"cogentcore.org/xform/settings"
	"cogentcore.org/xform/undo"
	"cogentcore.org/xform/xyz"
)

// Handle is the manipulation handle that the transform tool attaches
// to the selected object's pivot. [gizmo.Gizmo] implements it.
type Handle interface {
	Attach(pivots []*xyz.Pose)
	Detach()
	SetCoordSpace(cs settings.CoordSpaces)

	// On registers for RenderUpdate, TransformStart, TransformMove,
	// TransformEnd and TransformCancel.
	On(typ events.Types, fun func(events.Event))
}

// Selector provides the current selection. [selection.Selection]
// implements it.
type Selector interface {
	Selected() *xyz.Object

	// On registers for SelectionChanged.
	On(typ events.Types, fun func(events.Event))
}

// Ledger records undoable operations; adding an operation applies it.
// [undo.Mgr] implements it.
type Ledger interface {
	Add(op undo.Operation)
}

// Invalidator receives requests for downstream recompute passes.
type Invalidator interface {
	// SetNeedsRender requests a render on the next frame even if
	// nothing else changed.
	SetNeedsRender()

	// SetNeedsUpdate requests a recompute of the scene bounds.
	SetNeedsUpdate()
}

// Notifier is a source of events.
type Notifier interface {
	On(typ events.Types, fun func(events.Event))
}

// Scene is the scene context the tools invalidate and listen to for
// Resize, BoundsChanged, ObjectMoved and FocalPointPicked.
// [xyz.Scene] implements it.
type Scene interface {
	Invalidator
	Notifier
}

// Config is the shared tool configuration. [settings.Store] implements it.
type Config interface {
	CoordSpace() settings.CoordSpaces

	// On registers for CoordSpaceChanged.
	On(typ events.Types, fun func(events.Event))
}
