// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/xform/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordSpacesText(t *testing.T) {
	var cs CoordSpaces
	require.NoError(t, cs.UnmarshalText([]byte("local")))
	assert.Equal(t, Local, cs)
	b, err := cs.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "local", string(b))
	assert.Error(t, cs.SetString("sideways"))
	assert.Equal(t, "CoordSpaces(7)", CoordSpaces(7).String())
}

func TestLoadSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	var st Settings
	st.Defaults()
	st.CoordSpace = Local
	st.GizmoReferenceSize = 900
	require.NoError(t, st.Save(fn))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(b), "coord_space")
	assert.Contains(t, string(b), "local")

	ld, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, st, ld)
}

func TestLoadPartial(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(fn, []byte("coord_space = \"local\"\n"), 0666))
	st, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, Local, st.CoordSpace)
	assert.Equal(t, float32(1200), st.GizmoReferenceSize)
	assert.Equal(t, float32(0.8), st.GizmoOpacity)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("coord_space = \"sideways\"\n"), 0666))
	_, err = Load(fn)
	assert.Error(t, err)
}

func TestStoreBroadcast(t *testing.T) {
	sto := NewStore()
	assert.Equal(t, World, sto.CoordSpace())

	var got []CoordSpaces
	sto.On(events.CoordSpaceChanged, func(ev events.Event) {
		got = append(got, ev.(*events.Base).Data.(CoordSpaces))
	})
	sto.SetCoordSpace(Local)
	sto.SetCoordSpace(Local)
	assert.Equal(t, []CoordSpaces{Local}, got)

	st := sto.Settings()
	st.GizmoReferenceSize = 600
	sto.Apply(st)
	assert.Equal(t, []CoordSpaces{Local}, got)
	assert.Equal(t, float32(600), sto.Settings().GizmoReferenceSize)

	st.CoordSpace = World
	sto.Apply(st)
	assert.Equal(t, []CoordSpaces{Local, World}, got)

	fn := filepath.Join(t.TempDir(), "settings.toml")
	st.CoordSpace = Local
	require.NoError(t, st.Save(fn))
	require.NoError(t, sto.Open(fn))
	assert.Equal(t, Local, sto.CoordSpace())
	assert.Equal(t, []CoordSpaces{Local, World, Local}, got)
	assert.Error(t, sto.Open(filepath.Join(t.TempDir(), "missing.toml")))
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	var st Settings
	st.Defaults()
	require.NoError(t, st.Save(fn))

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := Watch(ctx, fn)
	require.NoError(t, err)

	st.CoordSpace = Local
	require.NoError(t, st.Save(fn))

	timeout := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case got := <-ch:
			// a truncating write can be seen before the content lands
			done = got.CoordSpace == Local
		case <-timeout:
			t.Fatal("no reload seen")
		}
	}

	cancel()
	for range ch {
	}
}
