// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of an editor notification, and also the
// level at which one can select which notifications to listen to.
// Notifications carry no payload beyond their type, except where
// noted, in which case the payload is in [Base.Data].
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// RenderUpdate is sent by a manipulation handle whenever its own
	// visual state changed and the scene must be drawn again.
	RenderUpdate

	// TransformStart is sent by a manipulation handle when a drag gesture
	// begins. It is always followed by zero or more TransformMove events
	// and exactly one TransformEnd or TransformCancel.
	TransformStart

	// TransformMove is sent by a manipulation handle on every drag tick,
	// after the attached pivots have been mutated.
	TransformMove

	// TransformEnd is sent by a manipulation handle when a drag gesture
	// completes.
	TransformEnd

	// TransformCancel is sent by a manipulation handle when a drag
	// gesture is aborted, after the attached pivots have been restored.
	TransformCancel

	// SelectionChanged is sent by a selection provider when its current
	// selection changed. Listeners must query the provider again.
	SelectionChanged

	// CoordSpaceChanged is sent by the shared tool settings when the
	// coordinate space changed. Data is the new settings.CoordSpaces.
	CoordSpaceChanged

	// Resize is sent by a scene when its viewport changed size.
	// Data is the new image.Point size.
	Resize

	// BoundsChanged is sent by a scene when a recompute of its
	// overall bounds produced a different box.
	BoundsChanged

	// ObjectMoved is sent by a scene when an object was moved outside
	// of a gesture. Data is the *xyz.Object.
	ObjectMoved

	// FocalPointPicked is sent by a scene when the user picked a point
	// on an object. Data is an xyz.FocalPoint.
	FocalPointPicked

	// TypesN is the number of event types.
	TypesN
)

var typesNames = [...]string{
	"UnknownType",
	"RenderUpdate",
	"TransformStart",
	"TransformMove",
	"TransformEnd",
	"TransformCancel",
	"SelectionChanged",
	"CoordSpaceChanged",
	"Resize",
	"BoundsChanged",
	"ObjectMoved",
	"FocalPointPicked",
}

// String returns the name of the event type.
func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "Types(" + strconv.Itoa(int(tp)) + ")"
	}
	return typesNames[tp]
}
