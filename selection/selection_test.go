// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"testing"

	"cogentcore.org/xform/events"
	"cogentcore.org/xform/math32"
	"cogentcore.org/xform/xyz"
	"github.com/stretchr/testify/assert"
)

func TestSetSelected(t *testing.T) {
	var sl Selection
	changes := 0
	sl.On(events.SelectionChanged, func(ev events.Event) { changes++ })
	assert.Nil(t, sl.Selected())

	a := xyz.NewObject("a", math32.B3(0, 0, 0, 1, 1, 1))
	b := xyz.NewObject("b", math32.B3(0, 0, 0, 1, 1, 1))
	sl.SetSelected(a)
	assert.Same(t, a, sl.Selected())
	assert.Equal(t, 1, changes)

	sl.SetSelected(a)
	assert.Equal(t, 1, changes)

	sl.SetSelected(b)
	assert.Same(t, b, sl.Selected())
	assert.Equal(t, 2, changes)

	sl.Clear()
	assert.Nil(t, sl.Selected())
	assert.Equal(t, 3, changes)
	sl.Clear()
	assert.Equal(t, 3, changes)
}
