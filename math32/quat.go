// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuatIdentity returns the identity quaternion.
func NewQuatIdentity() Quat {
	return Quat{W: 1}
}

// NewQuatAxisAngle returns a new quaternion from given axis and angle rotation (radians).
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	nq := Quat{}
	nq.SetFromAxisAngle(axis, angle)
	return nq
}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}

// SetIdentity sets this quanternion to the identity quaternion.
func (q *Quat) SetIdentity() {
	q.X = 0
	q.Y = 0
	q.Z = 0
	q.W = 1
}

// IsIdentity returns if this is an identity quaternion.
func (q *Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// IsNil returns true if all values are 0 (uninitialized).
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// SetFromAxisAngle sets this quaternion with the rotation
// specified by the given axis and angle (radians).
// The axis is normalized.
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	axis = axis.Normal()
	halfAngle := angle / 2
	s := Sin(halfAngle)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = Cos(halfAngle)
}

// Conjugate returns the conjugate of this quaternion,
// which is its inverse for a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Length returns the length of this quaternion
func (q *Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize normalizes this quaternion.
func (q *Quat) Normalize() {
	l := q.Length()
	if l == 0 {
		q.SetIdentity()
		return
	}
	l = 1 / l
	q.X *= l
	q.Y *= l
	q.Z *= l
	q.W *= l
}

// Mul returns the product of this quaternion with other,
// which applies other first and then this rotation.
func (q Quat) Mul(other Quat) Quat {
	qax := q.X
	qay := q.Y
	qaz := q.Z
	qaw := q.W
	qbx := other.X
	qby := other.Y
	qbz := other.Z
	qbw := other.W
	return Quat{
		X: qax*qbw + qaw*qbx + qay*qbz - qaz*qby,
		Y: qay*qbw + qaw*qby + qaz*qbx - qax*qbz,
		Z: qaz*qbw + qaw*qbz + qax*qby - qay*qbx,
		W: qaw*qbw - qax*qbx - qay*qby - qaz*qbz,
	}
}

// SetMul sets this quaternion to the multiplication of itself by other.
func (q *Quat) SetMul(other Quat) {
	*q = q.Mul(other)
}

// SetPremul sets this quaternion to the multiplication of other by itself,
// so the other rotation is applied after this one.
func (q *Quat) SetPremul(other Quat) {
	*q = other.Mul(*q)
}
