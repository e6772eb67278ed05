// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorimetry

import "math"

// MaxContrast is the highest possible WCAG contrast ratio,
// between black and white.
const MaxContrast = 21

// Luminance returns the WCAG relative luminance of the given color,
// from 0 for black to 1 for white. Alpha is ignored; use [Flatten]
// first to measure a translucent color over a background.
func Luminance(c Color) float64 {
	r, g, b := c.Clamped().colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio between the two colors,
// which is between 1 and 21.
func Contrast(a, b Color) float64 {
	return ContrastOfLuminances(Luminance(a), Luminance(b))
}

// ContrastOfLuminances returns the WCAG contrast ratio of two
// relative luminance values.
func ContrastOfLuminances(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 0.05) / (darker + 0.05)
}

// IsLight returns whether the color is light, meaning it has a
// CIE L* greater than 50.
func IsLight(c Color) bool {
	l, _, _ := ToLCh(c)
	return l > 50
}

// CompositeOver returns the opaque color that results from painting
// fg with the given opacity over the opaque bg, blending the
// gamma-encoded sRGB components the way browsers do.
func CompositeOver(fg, bg Color, alpha float64) Color {
	alpha = clamp01(alpha)
	return fromColorful(bg.colorful().BlendRgb(fg.colorful(), alpha), 1)
}

// Flatten returns c composited over bg using its own alpha.
// Opaque colors are returned unchanged.
func Flatten(c, bg Color) Color {
	if c.Opaque() {
		return c
	}
	return CompositeOver(c, bg, c.A)
}

// YToL returns the CIE L* (0-100) for the given relative
// luminance Y (0-1), using the linear segment below 0.008856.
func YToL(y float64) float64 {
	if y <= 0.008856 {
		return y * 903.3
	}
	return math.Cbrt(y)*116 - 16
}

// LToY returns the relative luminance Y (0-1) for the given
// CIE L* (0-100). It is the inverse of [YToL].
func LToY(l float64) float64 {
	if l <= 8 {
		return l / 903.3
	}
	f := (l + 16) / 116
	return f * f * f
}
