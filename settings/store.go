// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"log/slog"

	"cogentcore.org/xform/events"
)

// Store is the shared tool configuration that every tool reads, and
// that broadcasts a CoordSpaceChanged event when the coordinate space
// changes. All methods must be called from the event loop goroutine.
type Store struct {
	// Listeners receive CoordSpaceChanged events, with the new
	// [CoordSpaces] as Data.
	Listeners events.Listeners

	settings Settings
}

// NewStore returns a new store holding default settings.
func NewStore() *Store {
	sto := &Store{}
	sto.settings.Defaults()
	return sto
}

// On adds an event listener function for the given event type.
func (sto *Store) On(typ events.Types, fun func(events.Event)) {
	sto.Listeners.Add(typ, fun)
}

// Settings returns a copy of the current settings.
func (sto *Store) Settings() Settings {
	return sto.settings
}

// CoordSpace returns the current coordinate space.
func (sto *Store) CoordSpace() CoordSpaces {
	return sto.settings.CoordSpace
}

// SetCoordSpace sets the coordinate space, sending a CoordSpaceChanged
// event if it is different from the current one.
func (sto *Store) SetCoordSpace(cs CoordSpaces) {
	if sto.settings.CoordSpace == cs {
		return
	}
	sto.settings.CoordSpace = cs
	slog.Debug("settings: coordinate space changed", "coordSpace", cs)
	sto.Listeners.Send(events.CoordSpaceChanged, cs)
}

// Apply replaces all settings, broadcasting a coordinate space change
// if there is one.
func (sto *Store) Apply(st Settings) {
	cs := st.CoordSpace
	st.CoordSpace = sto.settings.CoordSpace
	sto.settings = st
	sto.SetCoordSpace(cs)
}

// Open loads settings from the given TOML file and applies them.
func (sto *Store) Open(filename string) error {
	st, err := Load(filename)
	if err != nil {
		return err
	}
	sto.Apply(st)
	return nil
}

// Save writes the current settings to the given TOML file.
func (sto *Store) Save(filename string) error {
	return sto.settings.Save(filename)
}
