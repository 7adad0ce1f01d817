// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"log/slog"

	"cogentcore.org/xform/events"
	"cogentcore.org/xform/settings"
	"cogentcore.org/xform/xyz"
)

// SessionStates are the states of a transform gesture.
type SessionStates int32

const (
	// Idle means no gesture is in progress.
	Idle SessionStates = iota

	// Capturing means a gesture started and the handle is
	// mutating the captured objects.
	Capturing

	// Committing means the gesture ended and its edits are being
	// reconciled into the history.
	Committing
)

func (ss SessionStates) String() string {
	switch ss {
	case Idle:
		return "Idle"
	case Capturing:
		return "Capturing"
	case Committing:
		return "Committing"
	}
	return "SessionStates(?)"
}

// TransformTool attaches the manipulation handle to the selected
// object while the tool is active, and turns each handle gesture into
// at most one undoable [TransformOp].
//
// The handle guarantees that gestures do not overlap: start, then
// any number of moves, then end or cancel. The tool relies on that
// and does not check it.
type TransformTool struct {
	// Handle is the manipulation handle driven by this tool.
	Handle Handle

	// Selection provides the object to attach to.
	Selection Selector

	// Ledger receives the operation of each gesture that changed something.
	Ledger Ledger

	// Scene is invalidated as objects move.
	Scene Scene

	// Config provides the coordinate space.
	Config Config

	// Metrics, if non-nil, counts gestures and operations.
	Metrics *Metrics

	// whether the tool participates in attachment at all
	active bool

	// objects currently attached to the handle: empty or one
	objects []*xyz.Object

	// edits of the gesture in progress
	edits []PendingEdit

	state SessionStates
}

// NewTransformTool returns a new inactive transform tool, connected to
// the events of the given collaborators. The handle's coordinate space
// is set from the config, and follows it from then on.
func NewTransformTool(handle Handle, sel Selector, ledger Ledger, scene Scene, config Config) *TransformTool {
	tt := &TransformTool{Handle: handle, Selection: sel, Ledger: ledger, Scene: scene, Config: config}
	handle.SetCoordSpace(config.CoordSpace())

	handle.On(events.RenderUpdate, func(e events.Event) {
		scene.SetNeedsRender()
	})
	handle.On(events.TransformStart, func(e events.Event) {
		tt.OnGestureStart()
	})
	handle.On(events.TransformMove, func(e events.Event) {
		tt.OnGestureMove()
	})
	handle.On(events.TransformEnd, func(e events.Event) {
		tt.OnGestureEnd()
	})
	handle.On(events.TransformCancel, func(e events.Event) {
		tt.OnGestureCancel()
	})
	scene.On(events.BoundsChanged, func(e events.Event) {
		tt.OnBoundsChanged()
	})
	scene.On(events.ObjectMoved, func(e events.Event) {
		tt.Update()
	})
	sel.On(events.SelectionChanged, func(e events.Event) {
		tt.Update()
	})
	config.On(events.CoordSpaceChanged, func(e events.Event) {
		cs, ok := e.(*events.Base).Data.(settings.CoordSpaces)
		if !ok {
			cs = config.CoordSpace()
		}
		tt.Handle.SetCoordSpace(cs)
		tt.Scene.SetNeedsRender()
	})
	return tt
}

// IsActive returns whether the tool is active.
func (tt *TransformTool) IsActive() bool {
	return tt.active
}

// Activate activates the tool, attaching the handle to the selection.
func (tt *TransformTool) Activate() {
	tt.active = true
	tt.Update()
}

// Deactivate deactivates the tool, detaching the handle.
func (tt *TransformTool) Deactivate() {
	tt.active = false
	tt.Update()
}

// State returns the state of the current gesture.
func (tt *TransformTool) State() SessionStates {
	return tt.state
}

// Objects returns the objects currently attached to the handle.
func (tt *TransformTool) Objects() []*xyz.Object {
	return append([]*xyz.Object(nil), tt.objects...)
}

// Pending returns a copy of the edits of the gesture in progress.
func (tt *TransformTool) Pending() []PendingEdit {
	return append([]PendingEdit(nil), tt.edits...)
}

// Update recomputes from scratch which objects are attached to the
// handle: none if the tool is inactive or nothing is selected,
// otherwise the selected object.
func (tt *TransformTool) Update() {
	if !tt.active {
		tt.detach()
		return
	}
	sel := tt.Selection.Selected()
	if sel == nil {
		tt.detach()
		return
	}
	tt.objects = []*xyz.Object{sel}
	tt.Handle.Attach(tt.pivots())
}

func (tt *TransformTool) detach() {
	tt.Handle.Detach()
	tt.objects = nil
}

func (tt *TransformTool) pivots() []*xyz.Pose {
	ps := make([]*xyz.Pose, len(tt.objects))
	for i, ob := range tt.objects {
		ps[i] = &ob.Pivot
	}
	return ps
}

// OnBoundsChanged re-attaches the handle to the current objects, so
// it is placed against the new bounds.
func (tt *TransformTool) OnBoundsChanged() {
	if len(tt.objects) == 0 {
		return
	}
	tt.Handle.Attach(tt.pivots())
}

// OnGestureStart captures the current transform of every attached
// object as both the old and the new transform of a pending edit,
// discarding any stale edits.
func (tt *TransformTool) OnGestureStart() {
	tt.edits = tt.edits[:0]
	for _, ob := range tt.objects {
		tr := ob.Pivot.Transform()
		tt.edits = append(tt.edits, PendingEdit{Object: ob, Old: tr, New: tr})
	}
	tt.state = Capturing
	slog.Debug("transform tool: gesture start", "objects", len(tt.edits))
}

// OnGestureMove marks the bounds of every object being edited, and of
// the scene, as dirty. It runs on every move, as the recompute is lazy.
func (tt *TransformTool) OnGestureMove() {
	for _, pe := range tt.edits {
		pe.Object.SetWorldBoundsDirty()
	}
	tt.Scene.SetNeedsUpdate()
}

// OnGestureEnd captures the new transform of every object being
// edited, drops the edits that did not change anything (exact
// equality), and adds the rest to the ledger as one [TransformOp].
// A gesture that changed nothing adds nothing.
func (tt *TransformTool) OnGestureEnd() {
	tt.state = Committing
	changed := make([]PendingEdit, 0, len(tt.edits))
	for _, pe := range tt.edits {
		pe.New = pe.Object.Pivot.Transform()
		if pe.Changed() {
			changed = append(changed, pe)
		}
	}
	tt.edits = tt.edits[:0]
	if len(changed) == 0 {
		slog.Debug("transform tool: gesture changed nothing")
		tt.Metrics.gesture(OutcomeNoOp)
		tt.state = Idle
		return
	}
	op := NewTransformOp(changed, tt.Scene)
	tt.Ledger.Add(op)
	slog.Debug("transform tool: gesture committed", "objects", len(changed))
	tt.Metrics.gesture(OutcomeCommit)
	tt.Metrics.op(op.Name())
	tt.state = Idle
}

// OnGestureCancel ends an aborted gesture with no net change: every
// object being edited is put back to its old transform and nothing is
// added to the ledger.
func (tt *TransformTool) OnGestureCancel() {
	for _, pe := range tt.edits {
		pe.Object.Pivot.SetTransform(pe.Old)
		pe.Object.SetWorldBoundsDirty()
	}
	if len(tt.edits) > 0 {
		tt.Scene.SetNeedsUpdate()
		tt.Scene.SetNeedsRender()
	}
	tt.edits = tt.edits[:0]
	slog.Debug("transform tool: gesture canceled")
	tt.Metrics.gesture(OutcomeCancel)
	tt.state = Idle
}
