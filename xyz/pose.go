// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/xform/math32"
)

// Transform is a value snapshot of the local position, rotation and
// scale of a [Pose]. Being a plain value, a copy never aliases the
// pose it was taken from.
type Transform struct {
	Pos   math32.Vector3
	Quat  math32.Quat
	Scale math32.Vector3
}

// Equal returns true if all components are exactly equal, with no
// tolerance.
func (tr Transform) Equal(other Transform) bool {
	return tr == other
}

func (tr Transform) String() string {
	return fmt.Sprintf("pos: %v quat: %v scale: %v", tr.Pos, tr.Quat, tr.Scale)
}

// Pose contains the full specification of position and orientation,
// always relevant to the parent element.
type Pose struct {
	// position of center of element (relative to parent)
	Pos math32.Vector3

	// scale (relative to parent)
	Scale math32.Vector3

	// Node rotation specified as a Quat (relative to parent)
	Quat math32.Quat
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale.IsNil() {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// Transform returns a snapshot of the current local transform.
func (ps *Pose) Transform() Transform {
	return Transform{Pos: ps.Pos, Quat: ps.Quat, Scale: ps.Scale}
}

// SetTransform sets the local transform from the given snapshot.
func (ps *Pose) SetTransform(tr Transform) {
	ps.Pos = tr.Pos
	ps.Quat = tr.Quat
	ps.Scale = tr.Scale
}

// TransformPoint maps a point in this pose's local space into
// the parent space: scale, then rotate, then translate.
func (ps *Pose) TransformPoint(v math32.Vector3) math32.Vector3 {
	return v.Mul(ps.Scale).MulQuat(ps.Quat).Add(ps.Pos)
}

// InverseTransformDir maps a direction in the parent space into this
// pose's local space, ignoring translation.
func (ps *Pose) InverseTransformDir(v math32.Vector3) math32.Vector3 {
	return v.MulQuat(ps.Quat.Conjugate()).Div(ps.Scale)
}

///////////////////////////////////////////////////////
// 		Rotating

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// RotateOnAxis rotates around the specified local axis the specified angle in degrees.
func (ps *Pose) RotateOnAxis(x, y, z, angle float32) {
	ps.Quat.SetMul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle)))
}

// RotateOnAxisAbs rotates around the specified axis of the parent
// space the specified angle in degrees.
func (ps *Pose) RotateOnAxisAbs(x, y, z, angle float32) {
	ps.Quat.SetPremul(math32.NewQuatAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle)))
}

///////////////////////////////////////////////////////
// 		Scaling

// ScaleBy multiplies the current local scale by the given factors.
func (ps *Pose) ScaleBy(factor math32.Vector3) {
	ps.Scale.SetMul(factor)
}
