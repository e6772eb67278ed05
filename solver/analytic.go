// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/tonescale/tonescale/colorimetry"
)

// luminanceEpsilon absorbs rounding in the target luminance, so that
// a ratio of 1 against white is still reachable.
const luminanceEpsilon = 1e-9

// TargetLuminance returns the relative luminance a color needs for the
// given contrast ratio against a background of luminance bgY, on the
// darker side of a light background or the lighter side of a dark one.
// The result is outside 0-1 when the ratio can not be reached.
func TargetLuminance(bgY, ratio float64, light bool) float64 {
	if light {
		return (bgY+0.05)/ratio - 0.05
	}
	return ratio*(bgY+0.05) - 0.05
}

// analytic solves a solid CIE LCh color. In CIELAB, luminance depends
// on lightness alone, so the target lightness follows directly from the
// target luminance, and reducing chroma to fit the gamut leaves the
// contrast unchanged.
func (s *Solver) analytic(bg colorimetry.Color, target, hue, chroma float64, light bool) colorimetry.Color {
	y := TargetLuminance(colorimetry.Luminance(bg), target, light)
	if y < -luminanceEpsilon || y > 1+luminanceEpsilon {
		return extreme(light)
	}
	l := colorimetry.YToL(min(max(y, 0), 1))
	c := colorimetry.FromLCh(l, chroma, hue)
	if colorimetry.InGamut(c) {
		return c.Clamped()
	}

	lo, hi, best := 0.0, chroma, 0.0
	for range s.ChromaIterations {
		mid := (lo + hi) / 2
		if colorimetry.InGamut(colorimetry.FromLCh(l, mid, hue)) {
			best = mid
			lo = mid
		} else {
			hi = mid
		}
	}
	return colorimetry.FromLCh(l, best, hue).Clamped()
}
