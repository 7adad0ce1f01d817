// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-5)

func tolAssertEqualVector(t *testing.T, vt, va Vector3) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, float64(standardTol))
	assert.InDelta(t, vt.Y, va.Y, float64(standardTol))
	assert.InDelta(t, vt.Z, va.Z, float64(standardTol))
}

func TestMulQuat(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	tolAssertEqualVector(t, Vec3(0, 1, 0), Vec3(1, 0, 0).MulQuat(q))
	tolAssertEqualVector(t, Vec3(-1, 0, 0), Vec3(0, 1, 0).MulQuat(q))

	assert.Equal(t, Vec3(1, 2, 3), Vec3(1, 2, 3).MulQuat(NewQuatIdentity()))
}

func TestQuatConjugate(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(1, 1, 0), DegToRad(37))
	v := Vec3(0.5, -2, 3)
	tolAssertEqualVector(t, v, v.MulQuat(q).MulQuat(q.Conjugate()))
}

func TestQuatMulOrder(t *testing.T) {
	rz := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	rx := NewQuatAxisAngle(Vec3(1, 0, 0), DegToRad(90))

	// rz.Mul(rx) applies rx first
	v := Vec3(0, 1, 0)
	tolAssertEqualVector(t, v.MulQuat(rx).MulQuat(rz), v.MulQuat(rz.Mul(rx)))

	q := rz
	q.SetPremul(rx)
	tolAssertEqualVector(t, v.MulQuat(rz).MulQuat(rx), v.MulQuat(q))
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{W: 2}
	q.Normalize()
	assert.True(t, q.IsIdentity())

	var z Quat
	assert.True(t, z.IsNil())
	z.Normalize()
	assert.True(t, z.IsIdentity())
}

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec3(1, 2, 3))
	b.ExpandByPoint(Vec3(-1, 0, 5))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B3(-1, 0, 3, 1, 2, 5), b)

	b.ExpandByBox(B3(0, 0, 0, 1, 1, 1))
	assert.Equal(t, B3(-1, 0, 0, 1, 2, 5), b)

	cs := B3(-1, -2, -3, 1, 2, 3).Corners()
	assert.Contains(t, cs, Vec3(-1, -2, -3))
	assert.Contains(t, cs, Vec3(1, 2, 3))
	assert.Contains(t, cs, Vec3(1, -2, 3))

	b.SetEmpty()
	assert.True(t, b.IsEmpty())
}

func TestVector3(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 5, 6)
	assert.Equal(t, Vec3(5, 7, 9), a.Add(b))
	assert.Equal(t, Vec3(3, 3, 3), b.Sub(a))
	assert.Equal(t, Vec3(4, 10, 18), a.Mul(b))
	assert.Equal(t, Vector3{}, a.DivScalar(0))
	assert.InDelta(t, 1, Vec3(3, 4, 0).Normal().Length(), 1e-6)
	assert.Equal(t, Vec3(2, 0, 1), Vec3(4, 5, 3).Div(Vec3(2, 0, 3)))
	assert.Equal(t, "(1, 2, 3)", a.String())
}
