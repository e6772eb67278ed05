// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorimetry provides the color primitives used to build
// contrast-targeted palettes: conversion between sRGB and the CIE LCh
// and OKLCH cylindrical spaces, WCAG relative luminance and contrast,
// perceptual distance, gamut testing and alpha compositing.
// The conversions themselves are delegated to go-colorful.
package colorimetry

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a gamma-encoded sRGB color with 0-1 normalized components.
// Critically, R, G, and B are not premultiplied by alpha, and
// may lie outside of 0-1 if the color was constructed from
// coordinates outside of the sRGB gamut (see [InGamut]).
type Color struct {
	R, G, B float64

	// A is the opacity of the color, from 0 (transparent) to 1 (solid).
	A float64
}

var (
	// White is opaque sRGB white.
	White = Color{1, 1, 1, 1}

	// Black is opaque sRGB black.
	Black = Color{0, 0, 0, 1}
)

// gamutEpsilon absorbs the slight mismatch between the D65 white
// point and the sRGB matrices, so that CIE white (L* 100, C* 0)
// is reported as in gamut. It is far below 8-bit precision.
const gamutEpsilon = 1e-4

// RGB returns a new opaque color from the given sRGB components.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// FromColor converts a standard [color.Color] into a [Color],
// undoing the alpha premultiplication.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	fa := float64(a) / 65535
	return Color{
		R: float64(r) / 65535 / fa,
		G: float64(g) / 65535 / fa,
		B: float64(b) / 65535 / fa,
		A: fa,
	}
}

// RGBA implements the [color.Color] interface.
// Performs the premultiplication of the RGB components by alpha at this point.
func (c Color) RGBA() (r, g, b, a uint32) {
	cc := c.Clamped()
	r = uint32(cc.R*cc.A*65535 + 0.5)
	g = uint32(cc.G*cc.A*65535 + 0.5)
	b = uint32(cc.B*cc.A*65535 + 0.5)
	a = uint32(cc.A*65535 + 0.5)
	return
}

// AsRGBA returns a standard [color.RGBA] type.
func (c Color) AsRGBA() color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// WithAlpha returns the color with its opacity set to the given value.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Opaque returns whether the color is fully solid.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// Clamped returns the color with all of its components
// clamped to 0-1.
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// Quantized returns the color rounded to 8 bits per component,
// which is the precision at which it is displayed and exported.
func (c Color) Quantized() Color {
	cc := c.Clamped()
	q := func(v float64) float64 {
		return math.Round(v*255) / 255
	}
	return Color{q(cc.R), q(cc.G), q(cc.B), q(cc.A)}
}

// Hex returns the color as a "#rrggbb" string, or as "#rrggbbaa"
// if the color is not fully opaque once rounded to 8 bits.
func (c Color) Hex() string {
	cc := c.Clamped()
	h := func(v float64) uint8 {
		return uint8(math.Round(v * 255))
	}
	if a := h(cc.A); a < 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", h(cc.R), h(cc.G), h(cc.B), a)
	}
	return fmt.Sprintf("#%02x%02x%02x", h(cc.R), h(cc.G), h(cc.B))
}

func (c Color) String() string {
	return c.Hex()
}

// colorful returns the go-colorful representation of the color,
// which does not carry alpha.
func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(cf colorful.Color, a float64) Color {
	return Color{cf.R, cf.G, cf.B, a}
}

// ParseHex parses a color in one of the "#rgb", "#rrggbb" or
// "#rrggbbaa" forms; the leading '#' is optional.
func ParseHex(s string) (Color, error) {
	hs := strings.TrimPrefix(strings.TrimSpace(s), "#")
	a := 1.0
	if len(hs) == 8 {
		av, err := strconv.ParseUint(hs[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("colorimetry: invalid alpha in hex color %q: %w", s, err)
		}
		a = float64(av) / 255
		hs = hs[:6]
	}
	cf, err := colorful.Hex("#" + hs)
	if err != nil {
		return Color{}, fmt.Errorf("colorimetry: %w", err)
	}
	return fromColorful(cf, a), nil
}

// MustParseHex is like [ParseHex] but panics on an invalid color.
// It is intended for package level variables and tests.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements [encoding.TextMarshaler] using [Color.Hex].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseHex].
func (c *Color) UnmarshalText(text []byte) error {
	cc, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = cc
	return nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}
