// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"time"
)

// Event is the interface for all editor notifications.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was created.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed, which stops
	// any remaining listeners from being called.
	SetHandled()
}

// Base is the basic event, which has all the elements of Event
// and an optional Data payload.
type Base struct {
	// Typ is the type of event.
	Typ Types

	// GenTime is the time at which the event was created.
	GenTime time.Time

	// Data is the optional payload, documented on each event type.
	Data any

	handled bool
}

// NewBase returns a new [Base] event of the given type with the given payload.
func NewBase(typ Types, data any) *Base {
	return &Base{Typ: typ, GenTime: time.Now(), Data: data}
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) IsHandled() bool {
	return ev.handled
}

func (ev *Base) SetHandled() {
	ev.handled = true
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Data: %v, Time: %v}", ev.Typ, ev.Data, ev.GenTime.Format("04:05.000"))
}
