// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver finds colors that meet a target WCAG contrast ratio
// against a background while keeping a fixed hue and, as far as the
// sRGB gamut allows, a fixed chroma.
//
// Solid CIE LCh colors are solved analytically from the target
// luminance. OKLCH colors and translucent colors are solved by
// bisecting lightness, measuring each candidate composited over the
// background. Targets that cannot be reached resolve to the highest
// contrast extreme (black on light backgrounds, white on dark ones)
// instead of failing.
package solver

import (
	"github.com/tonescale/tonescale/colorimetry"
)

// Strategies are the ways a target contrast can be solved.
type Strategies int32 //enums:enum -transform lower

const (
	// Analytic derives the lightness directly from the
	// target luminance. It only applies to solid CIE LCh colors,
	// where luminance depends on lightness alone.
	Analytic Strategies = iota

	// Bisect searches the lightness axis for the closest
	// contrast, reducing chroma at each candidate until it is in gamut.
	Bisect
)

// OpaqueThreshold is the opacity at or above which a color is
// treated as solid when selecting a strategy.
const OpaqueThreshold = 0.999

// Select returns the strategy used for the given space and opacity.
func Select(space colorimetry.Space, alpha float64) Strategies {
	if space == colorimetry.LCh && alpha >= OpaqueThreshold {
		return Analytic
	}
	return Bisect
}

// Options are the numerical bounds of the solver.
type Options struct {

	// Iterations is the number of lightness bisection steps.
	Iterations int

	// ChromaIterations is the number of chroma bisection steps used to
	// bring an analytic solution back into gamut.
	ChromaIterations int

	// Shrink is the factor that chroma is multiplied by at each
	// gamut fitting step of the lightness bisection.
	Shrink float64

	// ChromaFloor is the chroma below which gamut fitting stops shrinking.
	ChromaFloor float64

	// MaxShrinkSteps bounds the number of gamut fitting steps
	// for a single candidate.
	MaxShrinkSteps int
}

// DefaultOptions returns the default [Options].
func DefaultOptions() Options {
	return Options{
		Iterations:       20,
		ChromaIterations: 10,
		Shrink:           0.9,
		ChromaFloor:      0.001,
		MaxShrinkSteps:   128,
	}
}

// Solver solves target contrasts with a given set of [Options].
// The zero value is not usable; use [New] or [Default].
type Solver struct {
	Options
}

// New returns a new [Solver] with the given options. Non-positive
// fields are replaced with their default values.
func New(opts Options) *Solver {
	def := DefaultOptions()
	if opts.Iterations <= 0 {
		opts.Iterations = def.Iterations
	}
	if opts.ChromaIterations <= 0 {
		opts.ChromaIterations = def.ChromaIterations
	}
	if opts.Shrink <= 0 || opts.Shrink >= 1 {
		opts.Shrink = def.Shrink
	}
	if opts.ChromaFloor <= 0 {
		opts.ChromaFloor = def.ChromaFloor
	}
	if opts.MaxShrinkSteps <= 0 {
		opts.MaxShrinkSteps = def.MaxShrinkSteps
	}
	return &Solver{Options: opts}
}

// Default is the solver used by the package level functions.
var Default = New(DefaultOptions())

// ForContrast returns a color with the given hue and chroma in the given
// space whose contrast against bg is as close as possible to target.
// See [Solver.ForContrast].
func ForContrast(bg colorimetry.Color, target, hue, chroma float64, space colorimetry.Space, alpha float64) colorimetry.Color {
	return Default.ForContrast(bg, target, hue, chroma, space, alpha)
}

// ForContrast returns a color with the given hue and chroma in the given
// space whose contrast against the opaque background bg is as close as
// possible to target, which is clamped to 1-21. The returned color is
// always inside the sRGB gamut and carries the given alpha. If alpha is
// below 1, the contrast is that of the color composited over bg.
// Chroma is reduced as needed to stay in gamut, and targets that can not
// be reached resolve to the extreme (black on a light background, white
// on a dark one).
//
// Contrast is not monotonic in lightness around the luminance of bg
// itself, so on a mid-tone background the bisection only approximates
// targets close to 1, landing up to about 0.1 above them.
func (s *Solver) ForContrast(bg colorimetry.Color, target, hue, chroma float64, space colorimetry.Space, alpha float64) colorimetry.Color {
	bg = bg.Clamped().WithAlpha(1)
	target = clampTarget(target)
	alpha = min(max(alpha, 0), 1)
	chroma = max(chroma, 0)
	hue = colorimetry.NormalizeHue(hue)
	light := colorimetry.IsLight(bg)

	if Select(space, alpha) == Analytic {
		return s.analytic(bg, target, hue, chroma, light)
	}
	return s.bisect(bg, target, hue, chroma, space, alpha, light)
}

// Reachable returns whether target can be reached at all against bg,
// that is, whether the extreme color on the other side of bg has
// at least that much contrast.
func Reachable(bg colorimetry.Color, target float64) bool {
	bg = bg.Clamped().WithAlpha(1)
	return colorimetry.Contrast(extreme(colorimetry.IsLight(bg)), bg) >= clampTarget(target)
}

// extreme returns the color with the most contrast
// against a light or dark background.
func extreme(light bool) colorimetry.Color {
	if light {
		return colorimetry.Black
	}
	return colorimetry.White
}

func clampTarget(target float64) float64 {
	return min(max(target, 1), colorimetry.MaxContrast)
}
