// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the shared configuration of the editing
// tools, stored in TOML files.
package settings

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// CoordSpaces are the frames in which the manipulation handle displays
// its axes and interprets drags.
type CoordSpaces int32

const (
	// World aligns the handle with the axes of the parent space.
	World CoordSpaces = iota

	// Local aligns the handle with the rotated axes of the object.
	Local

	// CoordSpacesN is the number of coordinate spaces.
	CoordSpacesN
)

var coordSpacesNames = [...]string{"world", "local"}

func (cs CoordSpaces) String() string {
	if cs < 0 || cs >= CoordSpacesN {
		return fmt.Sprintf("CoordSpaces(%d)", int32(cs))
	}
	return coordSpacesNames[cs]
}

// SetString sets the coordinate space from its name.
func (cs *CoordSpaces) SetString(s string) error {
	for i, nm := range coordSpacesNames {
		if nm == s {
			*cs = CoordSpaces(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type CoordSpaces", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (cs CoordSpaces) MarshalText() ([]byte, error) {
	return []byte(cs.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (cs *CoordSpaces) UnmarshalText(text []byte) error {
	return cs.SetString(string(text))
}

// Settings are the shared tool settings.
type Settings struct {

	// CoordSpace is the frame the manipulation handle works in.
	CoordSpace CoordSpaces `toml:"coord_space" yaml:"coord_space"`

	// GizmoReferenceSize is divided by the larger viewport dimension
	// to get the on-screen size of the manipulation handle.
	GizmoReferenceSize float32 `toml:"gizmo_reference_size" yaml:"gizmo_reference_size"`

	// GizmoOpacity is the alpha of the handle's axis colors.
	GizmoOpacity float32 `toml:"gizmo_opacity" yaml:"gizmo_opacity"`
}

// Defaults sets the default settings.
func (st *Settings) Defaults() {
	st.CoordSpace = World
	st.GizmoReferenceSize = 1200
	st.GizmoOpacity = 0.8
}

// Load reads settings from the given TOML file. Fields missing from
// the file keep their default values.
func Load(filename string) (Settings, error) {
	var st Settings
	st.Defaults()
	b, err := os.ReadFile(filename)
	if err != nil {
		return st, fmt.Errorf("settings: open %s: %w", filename, err)
	}
	if err := toml.Unmarshal(b, &st); err != nil {
		return st, fmt.Errorf("settings: parse %s: %w", filename, err)
	}
	return st, nil
}

// Save writes the settings to the given TOML file.
func (st *Settings) Save(filename string) error {
	b, err := toml.Marshal(st)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := os.WriteFile(filename, b, 0666); err != nil {
		return fmt.Errorf("settings: save %s: %w", filename, err)
	}
	return nil
}
