// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorimetry

// Space is a cylindrical (lightness, chroma, hue) color space
// in which palette steps are constructed.
type Space int32 //enums:enum -transform lower

const (
	// LCh is the CIE L*C*h° space (cylindrical CIELAB), with
	// lightness 0-100 and chroma up to about 150.
	LCh Space = iota

	// OKLCh is the cylindrical form of the perceptually uniform
	// OKLab space, with lightness 0-1 and chroma up to about 0.37.
	OKLCh
)

// MaxLightness returns the upper bound of the lightness
// axis in this space.
func (s Space) MaxLightness() float64 {
	if s == OKLCh {
		return 1
	}
	return 100
}

// ToLCh returns the lightness, chroma and hue of
// the given color in this space.
func (s Space) ToLCh(c Color) (l, ch, h float64) {
	if s == OKLCh {
		return ToOKLCh(c)
	}
	return ToLCh(c)
}

// FromLCh returns the opaque color with the given lightness, chroma
// and hue in this space. The result is not gamut mapped.
func (s Space) FromLCh(l, c, h float64) Color {
	if s == OKLCh {
		return FromOKLCh(l, c, h)
	}
	return FromLCh(l, c, h)
}
