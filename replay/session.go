// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replay drives the transform tools from a script, the way a
// user would drive them through the viewport.
package replay

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"

	"cogentcore.org/xform/gizmo"
	"cogentcore.org/xform/selection"
	"cogentcore.org/xform/settings"
	"cogentcore.org/xform/tools"
	"cogentcore.org/xform/undo"
	"cogentcore.org/xform/xyz"
	"github.com/prometheus/client_golang/prometheus"
)

// Session is a scene with the transform tools wired to it.
type Session struct {
	Scene     *xyz.Scene
	Selection *selection.Selection
	Gizmo     *gizmo.Gizmo
	History   *undo.Mgr
	Settings  *settings.Store
	Metrics   *tools.Metrics

	Transform *tools.TransformTool
	Pivot     *tools.PivotTool
	Viewport  *tools.ViewportScaler
}

// NewSession returns a new session with an empty scene and the given
// settings. Metrics are registered with reg if it is non-nil.
func NewSession(st settings.Settings, reg prometheus.Registerer) *Session {
	ss := &Session{
		Scene:     xyz.NewScene("replay"),
		Selection: &selection.Selection{},
		Gizmo:     gizmo.New(0),
		History:   &undo.Mgr{},
		Settings:  settings.NewStore(),
		Metrics:   tools.NewMetrics(reg),
	}
	ss.Settings.Apply(st)
	ss.Gizmo.SetOpacity(st.GizmoOpacity)
	ss.Transform = tools.NewTransformTool(ss.Gizmo, ss.Selection, ss.History, ss.Scene, ss.Settings)
	ss.Transform.Metrics = ss.Metrics
	ss.Pivot = tools.NewPivotTool(ss.Transform, ss.History, ss.Scene)
	ss.Pivot.Metrics = ss.Metrics
	ss.Viewport = tools.NewViewportScaler(ss.Gizmo, ss.Scene, ss.Scene, st.GizmoReferenceSize)
	return ss
}

// AddObjects adds objects to the scene.
func (ss *Session) AddObjects(specs ...ObjectSpec) error {
	for _, spec := range specs {
		bb, err := spec.bounds()
		if err != nil {
			return err
		}
		ob := xyz.NewObject(spec.Name, bb)
		if spec.Position != nil {
			pos, err := vec3("position", spec.Position)
			if err != nil {
				return err
			}
			ob.Pivot.Pos = pos
		}
		ss.Scene.Add(ob)
	}
	return nil
}

// Run runs the script on a new session with the script's settings,
// stopping at the first error or when ctx is done.
func Run(ctx context.Context, sc *Script, reg prometheus.Registerer) (*Session, error) {
	ss := NewSession(sc.Settings, reg)
	if err := ss.AddObjects(sc.Objects...); err != nil {
		return ss, err
	}
	return ss, ss.Run(ctx, sc.Steps)
}

// Run runs the steps in order, stopping at the first error or when
// ctx is done.
func (ss *Session) Run(ctx context.Context, steps []Step) error {
	for i, st := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		slog.Info("replay: step", "index", i, "step", st)
		if err := ss.Step(st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st, err)
		}
	}
	return nil
}

// Step runs one step, then the scene update pass.
func (ss *Session) Step(st Step) error {
	err := ss.step(st)
	ss.Update()
	return err
}

// Update runs the scene update pass that follows every step when an
// update is pending: it recomputes the scene bounds, which notifies
// the tools if they changed.
func (ss *Session) Update() {
	if !ss.Scene.HasFlag(xyz.ScNeedsUpdate) {
		return
	}
	bb := ss.Scene.Bounds()
	slog.Debug("replay: scene updated", "bounds", bb)
}

func (ss *Session) step(st Step) error {
	switch st.Op {
	case "select":
		ob, err := ss.object(st.Object)
		if err != nil {
			return err
		}
		ss.Selection.SetSelected(ob)
	case "deselect":
		ss.Selection.Clear()
	case "activate":
		ss.Transform.Activate()
	case "deactivate":
		ss.Transform.Deactivate()
	case "start":
		ss.start()
	case "translate", "rotate", "scale":
		return ss.move(st)
	case "end":
		ss.Gizmo.EndDrag()
	case "cancel":
		ss.Gizmo.CancelDrag()
	case "drag":
		if !ss.start() {
			return nil
		}
		if err := ss.move(st); err != nil {
			ss.Gizmo.CancelDrag()
			return err
		}
		ss.Gizmo.EndDrag()
	case "pick":
		ob, err := ss.object(st.Object)
		if err != nil {
			return err
		}
		pos, err := vec3("position", st.Position)
		if err != nil {
			return err
		}
		ss.Scene.PickFocalPoint(ob, pos)
	case "undo":
		for n := max(st.Count, 1); n > 0; n-- {
			if ss.History.Undo() == nil {
				break
			}
		}
	case "redo":
		for n := max(st.Count, 1); n > 0; n-- {
			if ss.History.Redo() == nil {
				break
			}
		}
	case "coordspace":
		var cs settings.CoordSpaces
		if err := cs.SetString(st.Space); err != nil {
			return fmt.Errorf("%w: %w", ErrBadStep, err)
		}
		ss.Settings.SetCoordSpace(cs)
	case "resize":
		return ss.resize(st)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStep, st.Op)
	}
	return nil
}

func (ss *Session) object(name string) (*xyz.Object, error) {
	ob, err := ss.Scene.ObjectByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObject, name)
	}
	return ob, nil
}

func (ss *Session) start() bool {
	if !ss.Gizmo.StartDrag() {
		slog.Warn("replay: handle not attached or already dragging, gesture ignored")
		return false
	}
	return true
}

// move applies every transform argument the step has. A translate,
// rotate or scale step must have its own argument.
func (ss *Session) move(st Step) error {
	switch {
	case st.Op == "translate" && st.Translate == nil,
		st.Op == "rotate" && st.Axis == nil,
		st.Op == "scale" && st.Scale == nil:
		return fmt.Errorf("%w: %s needs its argument", ErrBadStep, st.Op)
	}
	if st.Translate != nil {
		d, err := vec3("translate", st.Translate)
		if err != nil {
			return err
		}
		ss.Gizmo.Translate(d)
	}
	if st.Axis != nil {
		ax, err := vec3("axis", st.Axis)
		if err != nil {
			return err
		}
		ss.Gizmo.Rotate(ax, st.Angle)
	}
	if st.Scale != nil {
		f, err := vec3("scale", st.Scale)
		if err != nil {
			return err
		}
		ss.Gizmo.ScaleBy(f)
	}
	return nil
}

func (ss *Session) resize(st Step) error {
	if len(st.Size) != 2 {
		return fmt.Errorf("%w: size needs 2 values, got %d", ErrBadStep, len(st.Size))
	}
	sz := image.Pt(st.Size[0], st.Size[1])
	dev := sz
	if st.Device != nil {
		if len(st.Device) != 2 {
			return fmt.Errorf("%w: device needs 2 values, got %d", ErrBadStep, len(st.Device))
		}
		dev = image.Pt(st.Device[0], st.Device[1])
	}
	ss.Scene.SetDeviceSize(dev)
	ss.Scene.Resize(sz)
	return nil
}

// Report writes the history and the pivot transform of every object.
func (ss *Session) Report(w io.Writer) {
	fmt.Fprintf(w, "history (%d of %d done):\n", ss.History.Index, ss.History.Len())
	for i, nm := range ss.History.Names() {
		mark := " "
		if i < ss.History.Index {
			mark = "*"
		}
		fmt.Fprintf(w, "  %s %d %s\n", mark, i, nm)
	}
	fmt.Fprintln(w, "objects:")
	for _, ob := range ss.Scene.Objects {
		fmt.Fprintf(w, "  %s %s origin %s\n", ob.Name, ob.Pivot.Transform(), ob.WorldOrigin())
	}
	fmt.Fprintf(w, "handle: space %s size %g\n", ss.Gizmo.CoordSpace, ss.Gizmo.Size)
}

