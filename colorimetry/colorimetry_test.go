// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorimetry

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonescale/tonescale/base/tolassert"
)

func TestContrast(t *testing.T) {
	type data struct {
		a    Color
		b    Color
		want float64
	}
	tests := []data{
		{White, Black, 21},
		{Black, White, 21},
		{RGB(0.4, 0.4, 0.4), RGB(0.4, 0.4, 0.4), 1},
		{FromColor(color.RGBA{0, 0, 255, 255}), White, 8.59},
		{MustParseHex("#767676"), White, 4.54},
	}
	for i, test := range tests {
		res := Contrast(test.a, test.b)
		tolassert.EqualTol(t, test.want, res, 0.01, i)
	}
}

func TestLuminance(t *testing.T) {
	tolassert.Equal(t, 1, Luminance(White))
	tolassert.Equal(t, 0, Luminance(Black))
	tolassert.Equal(t, 0.2126, Luminance(RGB(1, 0, 0)))
	// out of gamut components are clamped before measuring
	tolassert.Equal(t, 1, Luminance(RGB(1.2, 1.5, 1.01)))
}

func TestLAndY(t *testing.T) {
	tolassert.EqualTol(t, 0.023023, LToY(17), 1e-6)
	tolassert.EqualTol(t, 21.5795, YToL(0.034), 1e-4)
	tolassert.Equal(t, 100, YToL(1))
	tolassert.Equal(t, 0, YToL(0))
	for _, l := range []float64{0, 4, 8, 8.1, 25, 50, 75, 100} {
		tolassert.EqualTol(t, l, YToL(LToY(l)), 0.01, l)
	}
}

func TestHex(t *testing.T) {
	type data struct {
		in   string
		want string
	}
	tests := []data{
		{"#e63946", "#e63946"},
		{"e63946", "#e63946"},
		{"#abc", "#aabbcc"},
		{"#3366ff80", "#3366ff80"},
		{"#3366ffff", "#3366ff"},
		{" #FFFFFF ", "#ffffff"},
	}
	for _, test := range tests {
		c, err := ParseHex(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, c.Hex(), test.in)
	}

	for _, bad := range []string{"", "#12", "#ggg", "#12345", "#3366ffzz"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}

	c := MustParseHex("#3366ff80")
	tolassert.EqualTol(t, 128.0/255, c.A, 1e-9)
	assert.Panics(t, func() { MustParseHex("nope") })
}

func TestText(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#102030")))
	b, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#102030", string(b))
	assert.Equal(t, "#102030", c.String())
	assert.Error(t, c.UnmarshalText([]byte("blue")))
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.RGBA{64, 0, 0, 128})
	tolassert.EqualTol(t, 128.0/255, c.R, 0.01)
	tolassert.EqualTol(t, 128.0/255, c.A, 0.01)
	assert.Equal(t, Color{}, FromColor(color.Transparent))

	assert.Equal(t, color.RGBA{255, 0, 0, 255}, RGB(1, 0, 0).AsRGBA())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, RGB(1.3, 2, 1).AsRGBA())
}

func TestQuantized(t *testing.T) {
	q := RGB(0.5011, 0.2, 0.9999).WithAlpha(0.5).Quantized()
	tolassert.Equal(t, 128.0/255, q.R)
	tolassert.Equal(t, 51.0/255, q.G)
	tolassert.Equal(t, 1, q.B)
	tolassert.Equal(t, 128.0/255, q.A)
	assert.Equal(t, q.Hex(), RGB(0.5011, 0.2, 0.9999).WithAlpha(0.5).Hex())
}

func TestLChRoundTrip(t *testing.T) {
	for _, hex := range []string{"#e63946", "#1d3557", "#a8dadc", "#ffffff", "#000000", "#7f7f7f"} {
		c := MustParseHex(hex)
		l, ch, h := ToLCh(c)
		assert.Equal(t, hex, FromLCh(l, ch, h).Hex(), "lch "+hex)
		l, ch, h = ToOKLCh(c)
		assert.Equal(t, hex, FromOKLCh(l, ch, h).Hex(), "oklch "+hex)
		for _, s := range LCh.Values() {
			l, ch, h = s.ToLCh(c)
			assert.Equal(t, hex, s.FromLCh(l, ch, h).Hex(), s.String()+" "+hex)
		}
	}

	l, ch, _ := ToLCh(White)
	tolassert.EqualTol(t, 100, l, 1e-3)
	tolassert.EqualTol(t, 0, ch, 0.05)
	l, _, _ = ToOKLCh(White)
	tolassert.EqualTol(t, 1, l, 1e-3)
}

func TestInGamut(t *testing.T) {
	assert.True(t, InGamut(White))
	assert.True(t, InGamut(Black))
	assert.True(t, InGamut(FromLCh(100, 0, 0)))
	assert.True(t, InGamut(FromLCh(50, 10, 30)))
	assert.False(t, InGamut(FromLCh(50, 150, 30)))
	assert.False(t, InGamut(FromOKLCh(0.9, 0.35, 260)))
	assert.True(t, InGamut(FromOKLCh(0.5, 0.05, 260)))
	assert.False(t, InGamut(RGB(-0.01, 0, 0)))
}

func TestIsLight(t *testing.T) {
	assert.True(t, IsLight(White))
	assert.False(t, IsLight(Black))
	assert.True(t, IsLight(MustParseHex("#a8dadc")))
	assert.False(t, IsLight(MustParseHex("#1d3557")))
}

func TestComposite(t *testing.T) {
	assert.Equal(t, "#808080", CompositeOver(Black, White, 0.5).Hex())
	assert.Equal(t, "#000000", CompositeOver(Black, White, 1).Hex())
	assert.Equal(t, "#ffffff", CompositeOver(Black, White, 0).Hex())
	assert.Equal(t, "#ffffff", CompositeOver(Black, White, -3).Hex())
	assert.Equal(t, "#808080", Flatten(Black.WithAlpha(0.5), White).Hex())
	assert.Equal(t, "#e63946", Flatten(MustParseHex("#e63946"), Black).Hex())
	assert.True(t, CompositeOver(Black, White, 0.3).Opaque())
}

func TestDistance(t *testing.T) {
	tolassert.EqualTol(t, 100, Distance(White, Black), 0.01)
	tolassert.Equal(t, 0, Distance(White, White))
	tolassert.Equal(t, 10, DistanceLCh([3]float64{50, 0, 0}, [3]float64{60, 0, 0}))
	tolassert.Equal(t, 20, DistanceLCh([3]float64{50, 10, 0}, [3]float64{50, 10, 180}))

	c := MustParseHex("#e63946")
	l, ch, h := ToLCh(c)
	tolassert.EqualTol(t, 0, DistanceLCh([3]float64{l, ch, h}, [3]float64{l, ch, h + 360}), 1e-9)
}

func TestNormalizeHue(t *testing.T) {
	type data struct {
		in, want float64
	}
	tests := []data{{0, 0}, {360, 0}, {370, 10}, {-10, 350}, {725, 5}}
	for i, test := range tests {
		tolassert.Equal(t, test.want, NormalizeHue(test.in), i)
	}
}

func TestSpace(t *testing.T) {
	var s Space
	require.NoError(t, s.SetString("OKLCH"))
	assert.Equal(t, OKLCh, s)
	assert.Equal(t, "oklch", s.String())
	assert.Equal(t, 1.0, s.MaxLightness())
	assert.Equal(t, 100.0, LCh.MaxLightness())
	assert.Error(t, s.SetString("hsl"))
	assert.False(t, Space(7).IsValid())
	assert.Equal(t, "7", Space(7).String())
	assert.NotEmpty(t, LCh.Desc())

	b, err := OKLCh.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "oklch", string(b))
	require.NoError(t, s.UnmarshalText([]byte("lch")))
	assert.Equal(t, LCh, s)
}

func ExampleContrast() {
	fmt.Printf("%.2f\n", Contrast(MustParseHex("#767676"), White))
	fmt.Printf("%.2f\n", Contrast(White, Black))
	// Output:
	// 4.54
	// 21.00
}
