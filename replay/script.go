// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"errors"
	"fmt"
	"os"

	"cogentcore.org/xform/math32"
	"cogentcore.org/xform/settings"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownObject is returned for a step naming an object that
	// is not in the scene.
	ErrUnknownObject = errors.New("replay: unknown object")

	// ErrUnknownStep is returned for a step with an unknown op.
	ErrUnknownStep = errors.New("replay: unknown step")

	// ErrBadStep is returned for a step missing a required argument.
	ErrBadStep = errors.New("replay: bad step")
)

// Script is a scene setup followed by a sequence of steps that drive
// the tools as a user would.
type Script struct {
	// Settings are applied before the first step. Fields not given
	// keep their defaults.
	Settings settings.Settings `yaml:"settings"`

	// Objects are added to the scene before the first step.
	Objects []ObjectSpec `yaml:"objects"`

	// Steps are run in order.
	Steps []Step `yaml:"-"`

	// RawSteps are the undecoded steps, as read from YAML.
	RawSteps []map[string]any `yaml:"steps"`
}

// ObjectSpec describes an object in the scene.
type ObjectSpec struct {
	Name string `yaml:"name"`

	// Position is the initial pivot position.
	Position []float32 `yaml:"position"`

	// Bounds are the local bounds as min x, y, z then max x, y, z.
	// Defaults to the unit cube around the pivot.
	Bounds []float32 `yaml:"bounds"`
}

// Step is one action of a [Script]. Op selects the action and the
// other fields are its arguments:
//
//	select      object
//	deselect
//	activate, deactivate
//	start, end, cancel
//	translate   translate
//	rotate      axis, angle (degrees)
//	scale       scale
//	drag        any of translate, axis+angle, scale, in one gesture
//	pick        object, position
//	undo, redo  count (default 1)
//	coordspace  space (world or local)
//	resize      size, device
type Step struct {
	Op        string    `mapstructure:"op"`
	Object    string    `mapstructure:"object"`
	Translate []float32 `mapstructure:"translate"`
	Axis      []float32 `mapstructure:"axis"`
	Angle     float32   `mapstructure:"angle"`
	Scale     []float32 `mapstructure:"scale"`
	Position  []float32 `mapstructure:"position"`
	Count     int       `mapstructure:"count"`
	Space     string    `mapstructure:"space"`
	Size      []int     `mapstructure:"size"`
	Device    []int     `mapstructure:"device"`
}

func (st Step) String() string {
	if st.Object != "" {
		return st.Op + " " + st.Object
	}
	return st.Op
}

// Load reads a script from the given YAML file.
func Load(filename string) (*Script, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("replay: %s: %w", filename, err)
	}
	return sc, nil
}

// Parse parses a script from YAML.
func Parse(b []byte) (*Script, error) {
	sc := &Script{}
	sc.Settings.Defaults()
	if err := yaml.Unmarshal(b, sc); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	sc.Steps = make([]Step, len(sc.RawSteps))
	for i, raw := range sc.RawSteps {
		if err := DecodeStep(raw, &sc.Steps[i]); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return sc, nil
}

// DecodeStep decodes a step from its generic map form, rejecting
// unknown arguments.
func DecodeStep(raw map[string]any, st *Step) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           st,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode step: %w", err)
	}
	if st.Op == "" {
		return fmt.Errorf("%w: missing op", ErrBadStep)
	}
	return nil
}

// vec3 returns the vector in v, which must have three elements.
func vec3(name string, v []float32) (math32.Vector3, error) {
	if len(v) != 3 {
		return math32.Vector3{}, fmt.Errorf("%w: %s needs 3 values, got %d", ErrBadStep, name, len(v))
	}
	var r math32.Vector3
	r.FromSlice(v)
	return r, nil
}

// bounds returns the local bounds of the object.
func (obs ObjectSpec) bounds() (math32.Box3, error) {
	switch len(obs.Bounds) {
	case 0:
		return math32.B3(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5), nil
	case 6:
		b := obs.Bounds
		return math32.B3(b[0], b[1], b[2], b[3], b[4], b[5]), nil
	}
	return math32.Box3{}, fmt.Errorf("%w: object %q bounds need 6 values, got %d", ErrBadStep, obs.Name, len(obs.Bounds))
}
