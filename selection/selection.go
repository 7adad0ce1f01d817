// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection tracks the currently selected scene object.
package selection

import (
	"cogentcore.org/xform/events"
	"cogentcore.org/xform/xyz"
)

// Selection holds zero or one selected object and sends a
// SelectionChanged event whenever that changes. The event carries
// no payload: listeners call [Selection.Selected] again.
type Selection struct {
	// Listeners receive SelectionChanged events.
	Listeners events.Listeners

	current *xyz.Object
}

// Selected returns the currently selected object, or nil.
func (sl *Selection) Selected() *xyz.Object {
	return sl.current
}

// On adds an event listener function for the given event type.
func (sl *Selection) On(typ events.Types, fun func(events.Event)) {
	sl.Listeners.Add(typ, fun)
}

// SetSelected selects the given object; nil resets the selection.
// Selecting the current object again does nothing.
func (sl *Selection) SetSelected(ob *xyz.Object) {
	if sl.current == ob {
		return
	}
	sl.current = ob
	sl.Listeners.Send(events.SelectionChanged, nil)
}

// Clear resets the selection.
func (sl *Selection) Clear() {
	sl.SetSelected(nil)
}
