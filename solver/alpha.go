// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/tonescale/tonescale/colorimetry"
)

// ForAlpha returns the opacity at which base, painted over white,
// has the given contrast ratio against white. See [ForAlphaOver].
func ForAlpha(base colorimetry.Color, target float64) float64 {
	return ForAlphaOver(base, colorimetry.White, target)
}

// ForAlphaOver returns the opacity at which base, painted over the
// opaque background bg, has the given contrast ratio against bg.
// Lowering opacity can only lower contrast, so if the solid base does
// not reach target, it returns 1. The mixed luminance is approximated
// as linear in opacity, and the result is clamped to 0-1.
func ForAlphaOver(base, bg colorimetry.Color, target float64) float64 {
	base = base.WithAlpha(1)
	bg = bg.Clamped().WithAlpha(1)
	target = clampTarget(target)
	if colorimetry.Contrast(base, bg) < target {
		return 1
	}
	yBase := colorimetry.Luminance(base)
	yBg := colorimetry.Luminance(bg)
	if yBase == yBg {
		return 1
	}
	yMix := TargetLuminance(yBg, target, yBase < yBg)
	alpha := (yMix - yBg) / (yBase - yBg)
	return min(max(alpha, 0), 1)
}
