// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"image"

	"cogentcore.org/xform/events"
	"cogentcore.org/xform/math32"
)

// DefaultReferenceSize is the default handle size constant: the
// handle size is this divided by the larger viewport dimension.
const DefaultReferenceSize = 1200

// Sizer is the part of the manipulation handle that the viewport
// scaler sets. [gizmo.Gizmo] implements it.
type Sizer interface {
	SetSize(sz float32)

	// SetAutoScaleBaseline is a compatibility shim for the handle's
	// own auto scaling, which the scaler cancels.
	SetAutoScaleBaseline(sz float32)
}

// Surface provides the sizes of the viewport and the render target.
// [xyz.Scene] implements it.
type Surface interface {
	// ViewSize returns the viewport size, and false if there is no
	// viewport to measure.
	ViewSize() (image.Point, bool)

	// DeviceSize returns the render target size in pixels.
	DeviceSize() image.Point
}

// ViewportScaler keeps the manipulation handle the same size on screen
// whatever the viewport size.
type ViewportScaler struct {
	Handle  Sizer
	Surface Surface

	// ReferenceSize is divided by the larger viewport dimension
	// to get the handle size.
	ReferenceSize float32
}

// NewViewportScaler returns a new scaler, which has already sized the
// handle once and resizes it on every Resize event from notifier.
func NewViewportScaler(handle Sizer, surface Surface, notifier Notifier, refSize float32) *ViewportScaler {
	vs := &ViewportScaler{Handle: handle, Surface: surface, ReferenceSize: refSize}
	if vs.ReferenceSize <= 0 {
		vs.ReferenceSize = DefaultReferenceSize
	}
	notifier.On(events.Resize, func(e events.Event) {
		vs.Update()
	})
	vs.Update()
	return vs
}

// Update sets the handle size from the viewport size, and resets the
// handle's auto scaling baseline to the smaller render target
// dimension. Without a viewport it does nothing.
func (vs *ViewportScaler) Update() {
	sz, ok := vs.Surface.ViewSize()
	if !ok {
		return
	}
	vs.Handle.SetSize(vs.ReferenceSize / float32(max(sz.X, sz.Y)))
	dev := vs.Surface.DeviceSize()
	vs.Handle.SetAutoScaleBaseline(math32.Min(float32(dev.X), float32(dev.Y)))
}
