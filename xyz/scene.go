// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz provides the scene context for the transform tool:
// objects with a pivot pose and lazily computed bounds, and a scene
// that collects invalidation requests and broadcasts notifications.
package xyz

import (
	"fmt"
	"image"

	"cogentcore.org/xform/events"
	"cogentcore.org/xform/math32"
)

// ScFlags has critical state information signaling when rendering
// or updating needs to be done.
type ScFlags int64

const (
	// ScNeedsUpdate means that an object Pose has changed and an update
	// pass is required to update bounding boxes.
	ScNeedsUpdate ScFlags = 1 << iota

	// ScNeedsRender means that something has been updated and a new
	// Render is required, even if nothing else changed this frame.
	ScNeedsRender
)

// Scene is the overall collection of objects being edited, with the
// flags and notification streams that the editing tools drive.
// All methods must be called from the single event loop goroutine.
type Scene struct {
	// Name of the scene, for messages.
	Name string

	// Objects in the scene, in insertion order.
	Objects []*Object

	// Flags signal pending update and render passes.
	Flags ScFlags

	// Listeners receive Resize, BoundsChanged, ObjectMoved and
	// FocalPointPicked events.
	Listeners events.Listeners

	// device (render target) size in pixels
	deviceSize image.Point

	// viewport (client area) size, zero if there is no viewport yet
	viewSize image.Point

	// last computed bounds of all objects
	bounds math32.Box3
}

// NewScene creates a new empty Scene.
func NewScene(name string) *Scene {
	sc := &Scene{Name: name}
	sc.bounds = math32.B3Empty()
	sc.Flags = ScNeedsUpdate | ScNeedsRender
	return sc
}

// Add adds the given objects to the scene.
func (sc *Scene) Add(obs ...*Object) {
	sc.Objects = append(sc.Objects, obs...)
	sc.SetNeedsUpdate()
}

// ObjectByName returns the object with given name, or an error.
func (sc *Scene) ObjectByName(name string) (*Object, error) {
	for _, ob := range sc.Objects {
		if ob.Name == name {
			return ob, nil
		}
	}
	return nil, fmt.Errorf("xyz.Scene: %v object of name: %v not found", sc.Name, name)
}

// On adds an event listener function for the given event type.
func (sc *Scene) On(typ events.Types, fun func(events.Event)) {
	sc.Listeners.Add(typ, fun)
}

// HasFlag returns whether the given flag is set.
func (sc *Scene) HasFlag(f ScFlags) bool {
	return sc.Flags&f != 0
}

// ClearFlag clears the given flag.
func (sc *Scene) ClearFlag(f ScFlags) {
	sc.Flags &^= f
}

// SetNeedsRender requests a new render on the next frame.
func (sc *Scene) SetNeedsRender() {
	sc.Flags |= ScNeedsRender
}

// SetNeedsUpdate requests a recompute of the scene bounds.
func (sc *Scene) SetNeedsUpdate() {
	sc.Flags |= ScNeedsUpdate
}

// Bounds returns the union of the world bounds of all objects,
// recomputing it if an update is pending. A recompute that produces
// a different box sends a BoundsChanged event.
func (sc *Scene) Bounds() math32.Box3 {
	if !sc.HasFlag(ScNeedsUpdate) {
		return sc.bounds
	}
	sc.ClearFlag(ScNeedsUpdate)
	bb := math32.B3Empty()
	for _, ob := range sc.Objects {
		wb := ob.WorldBBox()
		if !wb.IsEmpty() {
			bb.ExpandByBox(wb)
		}
	}
	if bb != sc.bounds {
		sc.bounds = bb
		sc.Listeners.Send(events.BoundsChanged, bb)
	}
	return sc.bounds
}

// SetDeviceSize sets the size of the render target in pixels.
func (sc *Scene) SetDeviceSize(sz image.Point) {
	sc.deviceSize = sz
}

// DeviceSize returns the size of the render target in pixels.
func (sc *Scene) DeviceSize() image.Point {
	return sc.deviceSize
}

// ViewSize returns the size of the viewport, and false if
// there is no viewport to measure.
func (sc *Scene) ViewSize() (image.Point, bool) {
	if sc.viewSize.X <= 0 || sc.viewSize.Y <= 0 {
		return image.Point{}, false
	}
	return sc.viewSize, true
}

// Resize sets the viewport size and sends a Resize event.
func (sc *Scene) Resize(sz image.Point) {
	sc.viewSize = sz
	sc.SetNeedsRender()
	sc.Listeners.Send(events.Resize, sz)
}

// PickFocalPoint sends a FocalPointPicked event for the given object
// and position.
func (sc *Scene) PickFocalPoint(ob *Object, pos math32.Vector3) {
	sc.Listeners.Send(events.FocalPointPicked, FocalPoint{Object: ob, Position: pos})
}

// NotifyMoved marks the bounds of an object that was moved outside
// of a gesture as dirty, and sends an ObjectMoved event.
func (sc *Scene) NotifyMoved(ob *Object) {
	ob.SetWorldBoundsDirty()
	sc.SetNeedsUpdate()
	sc.SetNeedsRender()
	sc.Listeners.Send(events.ObjectMoved, ob)
}
