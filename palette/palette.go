// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates contrast-targeted palettes: for each base
// color, one shade per scale step, each solved to meet the step's target
// contrast ratio against white while keeping the hue of the base color.
//
// Generation is a pure function of its inputs. Every result is
// re-measured from the color that is actually produced, at the 8-bit
// precision it is displayed and exported at.
package palette

import (
	"github.com/tonescale/tonescale/colorimetry"
	"github.com/tonescale/tonescale/curve"
)

// BaseColor is a user supplied color from which a
// column of the palette is generated.
type BaseColor struct {

	// ID uniquely identifies the base color.
	ID string

	// Name is the human readable name, used in exports.
	Name string

	// Color is the base color. Its opacity is carried
	// over to the generated shades.
	Color colorimetry.Color

	// Locked base colors can not be edited or removed.
	Locked bool

	// UseOpacity generates the shades by varying the opacity
	// of the base color instead of its lightness.
	UseOpacity bool
}

// ScaleStep is one row of the palette.
type ScaleStep struct {

	// ID uniquely identifies the step, for example "100".
	ID string

	// Name is the human readable name, used in exports.
	Name string

	// TargetContrast is the target WCAG contrast ratio against white.
	// A nil or zero target derives the shade from the position of the
	// step in the scale instead.
	TargetContrast *float64
}

// Target returns the target contrast of the step and whether it is set.
func (s ScaleStep) Target() (float64, bool) {
	if s.TargetContrast == nil || *s.TargetContrast == 0 {
		return 0, false
	}
	return *s.TargetContrast, true
}

// Contrast returns a pointer to the given contrast ratio,
// for use as a [ScaleStep.TargetContrast].
func Contrast(ratio float64) *float64 {
	return &ratio
}

// ChannelSettings are the chroma and hue curves applied
// across the steps in OKLCH mode.
type ChannelSettings struct {

	// Chroma is the absolute OKLCH chroma of each step.
	Chroma curve.Channel

	// Hue is the hue shift in degrees added to the base hue.
	Hue curve.Channel
}

// IsZero returns whether the settings are the zero value.
func (cs ChannelSettings) IsZero() bool {
	return cs == ChannelSettings{}
}

// StepResult is a generated shade.
type StepResult struct {

	// StepID is the [ScaleStep.ID] of the step.
	StepID string

	// Color is the generated color at 8-bit precision.
	Color colorimetry.Color

	// Hex is the color as "#rrggbb", or "#rrggbbaa" if translucent.
	Hex string

	// LCh is the measured CIE L*C*h° of the color, ignoring opacity.
	LCh [3]float64

	// ContrastWhite is the measured contrast against white,
	// with the color composited over white if translucent.
	ContrastWhite float64

	// ContrastBlack is the measured contrast against black,
	// with the color composited over black if translucent.
	ContrastBlack float64

	// Closest is whether this is the shade perceptually
	// closest to the base color.
	Closest bool
}

// TextColor returns the color to draw labels on top of the shade in:
// white if the shade has more than 4.5 contrast against white, and
// black otherwise.
func (s StepResult) TextColor() colorimetry.Color {
	if s.ContrastWhite > 4.5 {
		return colorimetry.White
	}
	return colorimetry.Black
}

// Result is a generated column of the palette.
type Result struct {
	BaseColorID string
	Steps       []StepResult
}

// Closest returns the step marked as closest to the base color.
func (r Result) Closest() (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Closest {
			return s, true
		}
	}
	return StepResult{}, false
}

// Step returns the result for the step with the given id.
func (r Result) Step(id string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.StepID == id {
			return s, true
		}
	}
	return StepResult{}, false
}
