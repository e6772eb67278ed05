// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the file configuration of a palette:
// its base colors, scale steps and generation settings, stored as
// TOML or YAML. Field defaults are given by `default:` struct tags.
package config

import (
	"fmt"
	"strconv"

	"github.com/tonescale/tonescale/colorimetry"
	"github.com/tonescale/tonescale/curve"
	"github.com/tonescale/tonescale/palette"
	"github.com/tonescale/tonescale/session"
)

// Config is the main config struct that contains
// everything needed to generate a palette.
type Config struct {

	// Version is the format version of the file; see [FormatVersion].
	Version string `toml:"version,omitempty" yaml:"version,omitempty"`

	// Space is the color space that shades are generated in.
	Space colorimetry.Space `toml:"space" yaml:"space" default:"lch"`

	// Easing distributes the step targets over Range
	// when ApplyEasing is set.
	Easing curve.Easings `toml:"easing" yaml:"easing" default:"linear"`

	// ApplyEasing overwrites the target contrasts of the
	// steps with values distributed over Range by Easing.
	ApplyEasing bool `toml:"apply_easing" yaml:"apply_easing"`

	// Range is the contrast range used by ApplyEasing.
	Range Range `toml:"range" yaml:"range"`

	// Chroma is the OKLCH chroma curve across the steps.
	Chroma Channel `toml:"chroma" yaml:"chroma"`

	// Hue is the OKLCH hue shift curve across the steps, in degrees.
	Hue Channel `toml:"hue" yaml:"hue"`

	// Colors are the base colors, one palette column each.
	Colors []Color `toml:"colors" yaml:"colors"`

	// Steps are the scale steps, one palette row each.
	// The default scale is used if there are none.
	Steps []Step `toml:"steps,omitempty" yaml:"steps,omitempty"`
}

// Range is a contrast range.
type Range struct {
	Min float64 `toml:"min" yaml:"min" default:"1.1"`
	Max float64 `toml:"max" yaml:"max" default:"15"`
}

// Channel is the configuration of one OKLCH channel curve.
type Channel struct {
	Min       float64          `toml:"min" yaml:"min"`
	Max       float64          `toml:"max" yaml:"max"`
	Shape     curve.Shapes     `toml:"shape" yaml:"shape"`
	Direction curve.Directions `toml:"direction" yaml:"direction"`
}

// Curve returns the channel as a [curve.Channel].
func (c Channel) Curve() curve.Channel {
	return curve.Channel{Range: curve.Range{Min: c.Min, Max: c.Max}, Shape: c.Shape, Direction: c.Direction}
}

// Color is one base color.
type Color struct {
	Name string `toml:"name" yaml:"name"`

	// Hex is the color in one of the #rgb, #rrggbb or #rrggbbaa forms.
	Hex string `toml:"hex" yaml:"hex"`

	// Opacity generates the shades of the color by varying
	// its opacity instead of its lightness.
	Opacity bool `toml:"opacity" yaml:"opacity"`

	Locked bool `toml:"locked,omitempty" yaml:"locked,omitempty"`
}

// Step is one scale step.
type Step struct {

	// ID defaults to Name, and then to the index of the step.
	ID   string `toml:"id,omitempty" yaml:"id,omitempty"`
	Name string `toml:"name" yaml:"name"`

	// Contrast is the target contrast against white;
	// zero leaves the step untargeted.
	Contrast float64 `toml:"contrast,omitempty" yaml:"contrast,omitempty"`
}

// New returns a new config with all of its fields
// set to their default values.
func New() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	cs := palette.DefaultChannelSettings()
	cfg.Chroma = channelFrom(cs.Chroma)
	cfg.Hue = channelFrom(cs.Hue)
	return cfg
}

func channelFrom(c curve.Channel) Channel {
	return Channel{Min: c.Range.Min, Max: c.Range.Max, Shape: c.Shape, Direction: c.Direction}
}

// BaseColors returns the base colors of the config. Their ids are
// left empty for the session to fill in.
func (cfg *Config) BaseColors() ([]palette.BaseColor, error) {
	bases := make([]palette.BaseColor, len(cfg.Colors))
	for i, c := range cfg.Colors {
		clr, err := colorimetry.ParseHex(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("config: color %d (%q): %w", i, c.Name, err)
		}
		bases[i] = palette.BaseColor{Name: c.Name, Color: clr, Locked: c.Locked, UseOpacity: c.Opacity}
	}
	return bases, nil
}

// ScaleSteps returns the scale steps of the config,
// or [palette.DefaultScales] if it has none.
func (cfg *Config) ScaleSteps() ([]palette.ScaleStep, error) {
	if len(cfg.Steps) == 0 {
		return palette.DefaultScales(), nil
	}
	steps := make([]palette.ScaleStep, len(cfg.Steps))
	for i, s := range cfg.Steps {
		id := s.ID
		if id == "" {
			id = s.Name
		}
		if id == "" {
			id = strconv.Itoa(i)
		}
		steps[i] = palette.ScaleStep{ID: id, Name: s.Name}
		if s.Contrast != 0 {
			steps[i].TargetContrast = palette.Contrast(s.Contrast)
		}
	}
	if err := palette.Validate(nil, steps); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return steps, nil
}

// Channels returns the OKLCH channel curves of the config.
func (cfg *Config) Channels() palette.ChannelSettings {
	return palette.ChannelSettings{Chroma: cfg.Chroma.Curve(), Hue: cfg.Hue.Curve()}
}

// Session returns a new session holding the palette described by
// the config. The given options are applied after those of the config.
func (cfg *Config) Session(opts ...session.Option) (*session.Session, error) {
	bases, err := cfg.BaseColors()
	if err != nil {
		return nil, err
	}
	steps, err := cfg.ScaleSteps()
	if err != nil {
		return nil, err
	}
	all := []session.Option{
		session.WithBaseColors(bases...),
		session.WithScaleSteps(steps...),
		session.WithSpace(cfg.Space),
		session.WithEasing(cfg.Easing, curve.Range{Min: cfg.Range.Min, Max: cfg.Range.Max}),
		session.WithChannels(cfg.Channels()),
	}
	s := session.New(append(all, opts...)...)
	if cfg.ApplyEasing {
		s.ApplyContrastCurve()
	}
	return s, nil
}

// FromState returns the config that describes the given session state,
// for saving it. The generated palette itself is not stored.
func FromState(st session.State) *Config {
	cfg := &Config{
		Space:  st.Space,
		Easing: st.Easing,
		Range:  Range{Min: st.ContrastRange.Min, Max: st.ContrastRange.Max},
		Chroma: channelFrom(st.Channels.Chroma),
		Hue:    channelFrom(st.Channels.Hue),
	}
	for _, b := range st.BaseColors {
		cfg.Colors = append(cfg.Colors, Color{Name: b.Name, Hex: b.Color.Hex(), Opacity: b.UseOpacity, Locked: b.Locked})
	}
	for _, s := range st.ScaleSteps {
		step := Step{ID: s.ID, Name: s.Name}
		if step.ID == step.Name {
			step.ID = ""
		}
		if t, ok := s.Target(); ok {
			step.Contrast = t
		}
		cfg.Steps = append(cfg.Steps, step)
	}
	return cfg
}
