// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"bytes"
	"context"
	"testing"

	"cogentcore.org/xform/events"
	"cogentcore.org/xform/math32"
	"cogentcore.org/xform/settings"
	"cogentcore.org/xform/xyz"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	sc, err := Load("testdata/move.yaml")
	require.NoError(t, err)
	assert.Equal(t, settings.World, sc.Settings.CoordSpace)
	assert.Equal(t, float32(0.8), sc.Settings.GizmoOpacity)
	require.Len(t, sc.Objects, 2)
	assert.Equal(t, "crate", sc.Objects[1].Name)
	require.Len(t, sc.Steps, 9)
	assert.Equal(t, Step{Op: "drag", Translate: []float32{1, 2, 3}}, sc.Steps[3])
	assert.Equal(t, Step{Op: "drag", Axis: []float32{0, 0, 1}, Angle: 90}, sc.Steps[7])
	assert.Equal(t, "select cube", sc.Steps[1].String())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)

	_, err = Parse([]byte("steps:\n  - op: drag\n    translat: [1, 0, 0]\n"))
	assert.ErrorContains(t, err, "translat")

	_, err = Parse([]byte("steps:\n  - object: cube\n"))
	assert.ErrorIs(t, err, ErrBadStep)

	_, err = Parse([]byte("settings:\n  coord_space: sideways\n"))
	assert.Error(t, err)
}

func TestRunScript(t *testing.T) {
	sc, err := Load("testdata/move.yaml")
	require.NoError(t, err)
	reg := prometheus.NewRegistry()
	ss, err := Run(context.Background(), sc, reg)
	require.NoError(t, err)

	// the no-op drag adds nothing and the last rotation is undone
	assert.Equal(t, []string{"transform", "setPivot", "transform"}, ss.History.Names())
	assert.Equal(t, 2, ss.History.Index)
	assert.True(t, ss.History.IsRedoAvailable())

	cube, err := ss.Scene.ObjectByName("cube")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(2, 2, 3), cube.PivotPos())
	assert.True(t, cube.Pivot.Quat.IsIdentity())
	assert.Equal(t, math32.Vec3(1, 2, 3), cube.WorldOrigin())

	assert.Equal(t, settings.Local, ss.Gizmo.CoordSpace)
	assert.Equal(t, float32(0.75), ss.Gizmo.Size)
	assert.Equal(t, float32(1200), ss.Gizmo.AutoScaleBaseline())

	assert.Equal(t, float64(2), testutil.ToFloat64(ss.Metrics.Gestures.WithLabelValues("commit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ss.Metrics.Gestures.WithLabelValues("noop")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ss.Metrics.Ops.WithLabelValues("setPivot")))

	var out bytes.Buffer
	ss.Report(&out)
	assert.Contains(t, out.String(), "history (2 of 3 done)")
	assert.Contains(t, out.String(), "* 1 setPivot")
	assert.Contains(t, out.String(), "  2 transform")
	assert.Contains(t, out.String(), "cube pos: (2, 2, 3)")
}

func TestStepErrors(t *testing.T) {
	var st settings.Settings
	st.Defaults()
	ss := NewSession(st, nil)
	require.NoError(t, ss.AddObjects(ObjectSpec{Name: "cube"}))

	assert.ErrorIs(t, ss.Step(Step{Op: "select", Object: "sphere"}), ErrUnknownObject)
	assert.ErrorIs(t, ss.Step(Step{Op: "jump"}), ErrUnknownStep)
	assert.ErrorIs(t, ss.Step(Step{Op: "pick", Object: "cube", Position: []float32{1, 2}}), ErrBadStep)
	assert.ErrorIs(t, ss.Step(Step{Op: "coordspace", Space: "sideways"}), ErrBadStep)
	assert.ErrorIs(t, ss.Step(Step{Op: "resize", Size: []int{100}}), ErrBadStep)
	assert.ErrorIs(t, ss.Step(Step{Op: "translate"}), ErrBadStep)
	assert.ErrorIs(t, ss.AddObjects(ObjectSpec{Name: "bad", Bounds: []float32{1}}), ErrBadStep)

	err := ss.Run(context.Background(), []Step{{Op: "activate"}, {Op: "jump"}})
	assert.ErrorIs(t, err, ErrUnknownStep)
	assert.ErrorContains(t, err, "step 1 (jump)")
	assert.True(t, ss.Transform.IsActive())
}

func TestGestureSteps(t *testing.T) {
	var st settings.Settings
	st.Defaults()
	ss := NewSession(st, nil)
	require.NoError(t, ss.AddObjects(ObjectSpec{Name: "cube", Position: []float32{1, 0, 0}}))

	// without an attached handle a gesture is ignored
	require.NoError(t, ss.Step(Step{Op: "drag", Translate: []float32{1, 0, 0}}))
	assert.Equal(t, 0, ss.History.Len())

	steps := []Step{
		{Op: "select", Object: "cube"},
		{Op: "activate"},
		{Op: "start"},
		{Op: "translate", Translate: []float32{0, 1, 0}},
		{Op: "scale", Scale: []float32{2, 2, 2}},
		{Op: "cancel"},
		{Op: "start"},
		{Op: "translate", Translate: []float32{0, 1, 0}},
		{Op: "end"},
		{Op: "undo", Count: 3},
		{Op: "redo"},
		{Op: "deselect"},
	}
	require.NoError(t, ss.Run(context.Background(), steps))
	cube := ss.Scene.Objects[0]
	assert.Equal(t, math32.Vec3(1, 1, 0), cube.PivotPos())
	assert.Equal(t, math32.Vec3(1, 1, 1), cube.Pivot.Scale)
	assert.Equal(t, 1, ss.History.Len())
	assert.False(t, ss.Gizmo.IsAttached())
}

func TestRunCanceled(t *testing.T) {
	var st settings.Settings
	st.Defaults()
	ss := NewSession(st, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ss.Run(ctx, []Step{{Op: "activate"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ss.Transform.IsActive())
}

func TestBoundsChangeReattachesHandle(t *testing.T) {
	var st settings.Settings
	st.Defaults()
	ss := NewSession(st, nil)
	require.NoError(t, ss.AddObjects(ObjectSpec{Name: "cube"}))

	bounds := 0
	ss.Scene.On(events.BoundsChanged, func(e events.Event) { bounds++ })
	require.NoError(t, ss.Run(context.Background(), []Step{
		{Op: "select", Object: "cube"},
		{Op: "activate"},
		{Op: "drag", Translate: []float32{3, 0, 0}},
	}))
	assert.Equal(t, 2, bounds, "initial bounds and the drag")
	cube := ss.Scene.Objects[0]
	assert.Equal(t, math32.B3(2.5, -0.5, -0.5, 3.5, 0.5, 0.5), ss.Scene.Bounds())

	// undo moves the cube without a gesture: only the bounds pass
	// re-attaches the handle
	attaches := 0
	ss.Gizmo.On(events.RenderUpdate, func(e events.Event) { attaches++ })
	require.NoError(t, ss.Step(Step{Op: "undo"}))
	assert.Equal(t, 3, bounds)
	assert.Equal(t, 1, attaches)
	require.Len(t, ss.Gizmo.Attached(), 1)
	assert.Same(t, &cube.Pivot, ss.Gizmo.Attached()[0])
	assert.False(t, ss.Scene.HasFlag(xyz.ScNeedsUpdate))
	assert.Equal(t, math32.B3(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5), ss.Scene.Bounds())

	// nothing pending: no pass and no notification
	require.NoError(t, ss.Step(Step{Op: "coordspace", Space: "world"}))
	assert.Equal(t, 3, bounds)
}

func TestPickAfterCollapsingScale(t *testing.T) {
	var st settings.Settings
	st.Defaults()
	ss := NewSession(st, nil)
	require.NoError(t, ss.AddObjects(ObjectSpec{Name: "cube"}))
	require.NoError(t, ss.Run(context.Background(), []Step{
		{Op: "select", Object: "cube"},
		{Op: "activate"},
		{Op: "drag", Scale: []float32{0, 1, 1}},
		{Op: "pick", Object: "cube", Position: []float32{1, 2, 3}},
	}))
	cube := ss.Scene.Objects[0]
	assert.Equal(t, math32.Vec3(0, -2, -3), cube.Offset)
	assert.Equal(t, math32.B3(1, -0.5, -0.5, 1, 0.5, 0.5), ss.Scene.Bounds())
	assert.Equal(t, []string{"transform", "setPivot"}, ss.History.Names())
}
