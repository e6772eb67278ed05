// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorimetry

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ToLCh returns the CIE L*C*h° coordinates of the given color under
// the D65 white point: lightness is 0-100, chroma is 0 to about 150,
// and hue is in degrees 0-360. Alpha is ignored.
func ToLCh(c Color) (l, ch, h float64) {
	hh, cc, ll := c.colorful().Hcl()
	return ll * 100, cc * 100, hh
}

// FromLCh returns the opaque color for the given CIE L*C*h°
// coordinates (see [ToLCh] for the ranges). The result is not
// gamut mapped, so it may fail [InGamut].
func FromLCh(l, c, h float64) Color {
	return fromColorful(colorful.Hcl(h, c/100, l/100), 1)
}

// ToOKLCh returns the OKLCH coordinates of the given color:
// lightness is 0-1, chroma is 0 to about 0.37, and hue is
// in degrees 0-360. Alpha is ignored.
func ToOKLCh(c Color) (l, ch, h float64) {
	return c.colorful().OkLch()
}

// FromOKLCh returns the opaque color for the given OKLCH
// coordinates (see [ToOKLCh] for the ranges). The result is not
// gamut mapped, so it may fail [InGamut].
func FromOKLCh(l, c, h float64) Color {
	return fromColorful(colorful.OkLch(l, c, h), 1)
}

// InGamut returns whether the color is representable in sRGB,
// that is, whether all of its RGB components are within 0-1.
func InGamut(c Color) bool {
	in := func(v float64) bool {
		return v >= -gamutEpsilon && v <= 1+gamutEpsilon
	}
	return in(c.R) && in(c.G) && in(c.B)
}

// Distance returns the CIE76 perceptual distance (ΔE*ab) between the
// two colors, on the usual scale where 1 is a just noticeable difference.
func Distance(a, b Color) float64 {
	return a.colorful().DistanceCIE76(b.colorful()) * 100
}

// DistanceLCh returns the CIE76 distance between two colors given
// directly as CIE L*C*h° triples, as returned by [ToLCh].
func DistanceLCh(a, b [3]float64) float64 {
	al, aa, ab := colorful.HclToLab(a[2], a[1], a[0])
	bl, ba, bb := colorful.HclToLab(b[2], b[1], b[0])
	return math.Sqrt(sq(al-bl) + sq(aa-ba) + sq(ab-bb))
}

// NormalizeHue wraps the given hue in degrees into 0-360.
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func sq(v float64) float64 {
	return v * v
}
