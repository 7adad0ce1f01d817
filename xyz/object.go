// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/xform/math32"
)

// Object is a selectable scene object that can be transformed.
// Its geometry hangs off a Pivot pose, at Offset within pivot space,
// so the pivot can be relocated without moving the geometry.
type Object struct {
	// Name identifies the object in the scene.
	Name string

	// Pivot is the transform node about which manipulation occurs.
	Pivot Pose

	// Offset is the geometry origin in pivot space.
	Offset math32.Vector3

	// LocalBBox is the bounding box of the geometry relative to its origin.
	LocalBBox math32.Box3

	// cached world bounding box, valid unless worldBoundsDirty
	worldBBox math32.Box3

	worldBoundsDirty bool
}

// NewObject returns a new object with an identity pivot and the given
// geometry bounds.
func NewObject(name string, bbox math32.Box3) *Object {
	ob := &Object{Name: name, LocalBBox: bbox}
	ob.Pivot.Defaults()
	ob.worldBoundsDirty = true
	return ob
}

// PivotPos returns the local position of the pivot.
func (ob *Object) PivotPos() math32.Vector3 {
	return ob.Pivot.Pos
}

// SetPivot moves the pivot to the given local position, shifting the
// Offset so that the geometry stays where it is in the world.
// Along an axis the pivot scales to zero the Offset is left unchanged,
// so the geometry moves with the pivot on that axis.
func (ob *Object) SetPivot(pos math32.Vector3) {
	delta := ob.Pivot.Pos.Sub(pos)
	ob.Offset.SetAdd(ob.Pivot.InverseTransformDir(delta))
	ob.Pivot.Pos = pos
	ob.worldBoundsDirty = true
}

// WorldOrigin returns the position of the geometry origin in the world.
func (ob *Object) WorldOrigin() math32.Vector3 {
	return ob.Pivot.TransformPoint(ob.Offset)
}

// SetWorldBoundsDirty marks the world bounding box as needing recompute.
func (ob *Object) SetWorldBoundsDirty() {
	ob.worldBoundsDirty = true
}

// WorldBoundsDirty returns whether the world bounding box needs recompute.
func (ob *Object) WorldBoundsDirty() bool {
	return ob.worldBoundsDirty
}

// WorldBBox returns the world bounding box of the geometry,
// recomputing it first if it has been marked dirty.
func (ob *Object) WorldBBox() math32.Box3 {
	if !ob.worldBoundsDirty {
		return ob.worldBBox
	}
	bb := math32.B3Empty()
	if !ob.LocalBBox.IsEmpty() {
		for _, c := range ob.LocalBBox.Corners() {
			bb.ExpandByPoint(ob.Pivot.TransformPoint(c.Add(ob.Offset)))
		}
	}
	ob.worldBBox = bb
	ob.worldBoundsDirty = false
	return bb
}

// FocalPoint is the payload of a focal point pick: the object that
// was picked and the picked position, in the object's pivot parent space.
type FocalPoint struct {
	Object   *Object
	Position math32.Vector3
}
