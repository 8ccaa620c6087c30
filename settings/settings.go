/*
Package settings holds the user-adjustable parameters of a measurement
session. Settings are read from YAML, overlaying the defaults:

	trigger_character: f
	measure_against_components: true
	measure_against_sidebearings: true
	remove_overlap: false
	anchoring: false
	self_hit_epsilon: 2.5
	flatten_steps: 64

Unknown keys are rejected.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package settings

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'stemplow.settings'
func tracer() tracing.Trace {
	return tracing.Select("stemplow.settings")
}

// ErrInvalid is returned for settings out of range.
var ErrInvalid = errors.New("invalid settings")

// Settings configure a measurement session.
type Settings struct {
	TriggerCharacter           string  `yaml:"trigger_character"`            // key which activates the ruler
	MeasureAgainstComponents   bool    `yaml:"measure_against_components"`   // include decomposed components
	MeasureAgainstSidebearings bool    `yaml:"measure_against_sidebearings"` // include x = 0 and x = width
	RemoveOverlap              bool    `yaml:"remove_overlap"`               // merge components before measuring
	Anchoring                  bool    `yaml:"anchoring"`                    // follow the anchor, not the cursor
	SelfHitEpsilon             float64 `yaml:"self_hit_epsilon"`             // hits this close to the anchor are skipped
	FlattenSteps               int     `yaml:"flatten_steps"`                // curve flattening for intersections
}

// Default returns the settings a fresh session starts with.
func Default() Settings {
	return Settings{
		TriggerCharacter:           "f",
		MeasureAgainstComponents:   true,
		MeasureAgainstSidebearings: true,
		SelfHitEpsilon:             2.5,
		FlattenSteps:               64,
	}
}

// Load reads settings from YAML. Keys missing from the input keep their
// default value. An empty input yields the defaults.
func Load(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		tracer().Errorf("cannot decode settings: %v", err)
		return Default(), fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), err
	}
	tracer().Debugf("settings loaded: %+v", s)
	return s, nil
}

// Validate checks s for values a session cannot work with.
func (s Settings) Validate() error {
	if utf8.RuneCountInString(s.TriggerCharacter) != 1 {
		return fmt.Errorf("%w: trigger character %q is not a single character", ErrInvalid, s.TriggerCharacter)
	}
	if s.SelfHitEpsilon < 0 {
		return fmt.Errorf("%w: negative self-hit epsilon %g", ErrInvalid, s.SelfHitEpsilon)
	}
	if s.FlattenSteps < 1 {
		return fmt.Errorf("%w: flatten steps must be positive, is %d", ErrInvalid, s.FlattenSteps)
	}
	return nil
}

// Dump writes s as YAML.
func (s Settings) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
