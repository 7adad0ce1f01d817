// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gizmo provides a headless manipulation handle: the draggable
// translate / rotate / scale control that is attached to object pivots.
// It keeps the state the renderer needs (attached pivots, coordinate
// space, size and colors) and sends the gesture lifecycle events.
package gizmo

import (
	"image/color"

	"cogentcore.org/xform/events"
	"cogentcore.org/xform/math32"
	"cogentcore.org/xform/settings"
	"cogentcore.org/xform/xyz"
)

// AxisColors are the colors of the handle parts.
type AxisColors struct {
	X, Y, Z color.RGBA

	// XYZ is the uniform (all axes) control.
	XYZ color.RGBA

	// Face is the plane controls.
	Face color.RGBA

	// Disabled is used for parts that cannot be dragged in the
	// current coordinate space.
	Disabled color.RGBA
}

// Defaults sets the default colors.
func (ac *AxisColors) Defaults() {
	ac.X = color.RGBA{255, 77, 77, 255}
	ac.Y = color.RGBA{77, 255, 77, 255}
	ac.Z = color.RGBA{77, 77, 255, 255}
	ac.XYZ = color.RGBA{204, 204, 204, 255}
	ac.Face = color.RGBA{255, 255, 77, 255}
	ac.Disabled = color.RGBA{128, 128, 128, 255}
}

// SetOpacity sets the alpha of all colors to the given opacity in [0, 1].
func (ac *AxisColors) SetOpacity(op float32) {
	a := uint8(math32.Max(0, math32.Min(1, op))*255 + 0.5)
	for _, c := range []*color.RGBA{&ac.X, &ac.Y, &ac.Z, &ac.XYZ, &ac.Face, &ac.Disabled} {
		c.A = a
	}
}

// Gizmo is a manipulation handle that can be attached to zero or more
// pivots. Drags are driven by StartDrag, then any number of
// Translate, Rotate and ScaleBy calls, then EndDrag or CancelDrag.
// Only one drag can be in progress at a time.
type Gizmo struct {
	// Listeners receive RenderUpdate, TransformStart, TransformMove,
	// TransformEnd and TransformCancel events.
	Listeners events.Listeners

	// CoordSpace is the frame in which axes are shown and drags applied.
	CoordSpace settings.CoordSpaces

	// Size is the display size of the handle.
	Size float32

	// Colors of the handle parts.
	Colors AxisColors

	// attached pivots
	pivots []*xyz.Pose

	// transforms of the attached pivots at the start of the current drag
	dragStart []xyz.Transform

	dragging bool

	// baseline for the handle's own auto scaling; see autoscale.go
	deviceStartSize float32
}

// New returns a new detached handle, with the given device size as
// its auto scaling baseline.
func New(deviceStartSize float32) *Gizmo {
	gz := &Gizmo{}
	gz.Defaults()
	gz.deviceStartSize = deviceStartSize
	return gz
}

// Defaults sets the default coordinate space, size and colors.
func (gz *Gizmo) Defaults() {
	gz.CoordSpace = settings.World
	gz.Size = 1
	gz.Colors.Defaults()
}

// On adds an event listener function for the given event type.
func (gz *Gizmo) On(typ events.Types, fun func(events.Event)) {
	gz.Listeners.Add(typ, fun)
}

// Attach attaches the handle to the given pivots, replacing any
// previously attached ones.
func (gz *Gizmo) Attach(pivots []*xyz.Pose) {
	gz.pivots = append([]*xyz.Pose(nil), pivots...)
	gz.renderUpdate()
}

// Detach detaches the handle from all pivots.
func (gz *Gizmo) Detach() {
	gz.pivots = nil
	gz.renderUpdate()
}

// Attached returns the currently attached pivots.
func (gz *Gizmo) Attached() []*xyz.Pose {
	return gz.pivots
}

// IsAttached returns whether the handle is attached to any pivot,
// which is when it is drawn.
func (gz *Gizmo) IsAttached() bool {
	return len(gz.pivots) > 0
}

// SetCoordSpace sets the coordinate space.
func (gz *Gizmo) SetCoordSpace(cs settings.CoordSpaces) {
	gz.CoordSpace = cs
	gz.renderUpdate()
}

// SetSize sets the display size.
func (gz *Gizmo) SetSize(sz float32) {
	gz.Size = sz
}

// SetOpacity sets the alpha of the handle colors.
func (gz *Gizmo) SetOpacity(op float32) {
	gz.Colors.SetOpacity(op)
	gz.renderUpdate()
}

// IsDragging returns whether a drag is in progress.
func (gz *Gizmo) IsDragging() bool {
	return gz.dragging
}

func (gz *Gizmo) renderUpdate() {
	gz.Listeners.Send(events.RenderUpdate, nil)
}
