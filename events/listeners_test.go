// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenersOrder(t *testing.T) {
	var ls Listeners
	var got []int
	ls.Add(TransformMove, func(ev Event) { got = append(got, 1) })
	ls.Add(TransformMove, func(ev Event) { got = append(got, 2) })
	ls.Add(TransformEnd, func(ev Event) { got = append(got, 3) })

	ls.Send(TransformMove, nil)
	assert.Equal(t, []int{2, 1}, got)
	assert.Equal(t, 2, ls.Len(TransformMove))
	assert.Equal(t, 0, ls.Len(Resize))
}

func TestListenersHandled(t *testing.T) {
	var ls Listeners
	called := 0
	ls.Add(SelectionChanged, func(ev Event) { called++ })
	ls.Add(SelectionChanged, func(ev Event) {
		called++
		ev.SetHandled()
	})
	ev := ls.Send(SelectionChanged, nil)
	assert.True(t, ev.IsHandled())
	assert.Equal(t, 1, called)

	ls.Call(ev)
	assert.Equal(t, 1, called)
}

func TestSendData(t *testing.T) {
	var ls Listeners
	var data any
	ls.Add(CoordSpaceChanged, func(ev Event) {
		data = ev.(*Base).Data
	})
	ls.Send(CoordSpaceChanged, "local")
	assert.Equal(t, "local", data)
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "TransformStart", TransformStart.String())
	assert.Equal(t, "FocalPointPicked", FocalPointPicked.String())
	assert.Equal(t, "Types(99)", Types(99).String())
}
