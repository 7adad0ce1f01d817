// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gizmo

import (
	"image"

	"cogentcore.org/xform/math32"
)

// The handle scales itself by the ratio of the current device size to
// the device size it was created with. Editors that size the handle
// from the viewport themselves need to cancel that, which they do by
// resetting the baseline on every resize. This file is the whole of
// that compatibility shim: delete it, and the baseline field, once
// the handle no longer auto scales.

// AutoScaleBaseline returns the device size the handle auto scales against.
func (gz *Gizmo) AutoScaleBaseline() float32 {
	return gz.deviceStartSize
}

// SetAutoScaleBaseline sets the device size the handle auto scales against.
func (gz *Gizmo) SetAutoScaleBaseline(sz float32) {
	gz.deviceStartSize = sz
}

// DisplayScale returns the scale at which the handle is drawn on a
// device of the given size: Size times the auto scaling ratio.
func (gz *Gizmo) DisplayScale(device image.Point) float32 {
	if gz.deviceStartSize <= 0 {
		return gz.Size
	}
	dmin := math32.Min(float32(device.X), float32(device.Y))
	return gz.Size * dmin / gz.deviceStartSize
}
