// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/tonescale/tonescale/colorimetry"
)

// bisect searches lightness over the whole axis of the space for the
// candidate whose composited contrast is closest to target. The best
// candidate starts as the extreme, so an unreachable target resolves
// to it.
func (s *Solver) bisect(bg colorimetry.Color, target, hue, chroma float64, space colorimetry.Space, alpha float64, light bool) colorimetry.Color {
	best := extreme(light)
	bestCR := measure(best, bg, alpha)
	if bestCR < target {
		return best.WithAlpha(alpha)
	}
	bestErr := bestCR - target

	lo, hi := 0.0, space.MaxLightness()
	for range s.Iterations {
		mid := (lo + hi) / 2
		cand := s.fit(space, mid, chroma, hue)
		cr := measure(cand, bg, alpha)
		if err := math.Abs(cr - target); err < bestErr {
			best, bestErr = cand, err
		}
		// on a light background, too little contrast means too light
		if (cr < target) == light {
			hi = mid
		} else {
			lo = mid
		}
	}
	return best.WithAlpha(alpha)
}

// fit returns the opaque color at the given lightness and hue, with
// chroma shrunk geometrically until it is inside the sRGB gamut.
func (s *Solver) fit(space colorimetry.Space, l, chroma, hue float64) colorimetry.Color {
	c := space.FromLCh(l, chroma, hue)
	for n := 0; !colorimetry.InGamut(c) && chroma > s.ChromaFloor && n < s.MaxShrinkSteps; n++ {
		chroma *= s.Shrink
		c = space.FromLCh(l, chroma, hue)
	}
	return c.Clamped()
}

// measure returns the contrast of c painted with alpha over bg.
func measure(c, bg colorimetry.Color, alpha float64) float64 {
	return colorimetry.Contrast(colorimetry.CompositeOver(c, bg, alpha), bg)
}
