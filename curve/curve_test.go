// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonescale/tonescale/base/tolassert"
)

func TestShapes(t *testing.T) {
	type data struct {
		shape Shapes
		t     float64
		want  float64
	}
	tests := []data{
		{ShapeLinear, 0.3, 0.3},
		{ShapeQuadratic, 0.5, 0.25},
		{ShapeCubic, 0.5, 0.125},
		{ShapeSine, 0.5, 0.2928932},
		{ShapeSine, 1, 1},
		{ShapeExponential, 0, 0},
		{ShapeExponential, 1e-9, 0.0009765625},
		{ShapeExponential, 0.5, 0.03125},
		{ShapeExponential, 1, 1},
		{Shapes(42), 0.7, 0.7},
	}
	for i, test := range tests {
		tolassert.Equal(t, test.want, test.shape.Func()(test.t), i)
	}
}

func TestEase(t *testing.T) {
	type data struct {
		shape     Shapes
		direction Directions
		t         float64
		want      float64
	}
	tests := []data{
		{ShapeQuadratic, EaseIn, 0.5, 0.25},
		{ShapeQuadratic, EaseOut, 0.5, 0.75},
		{ShapeQuadratic, EaseInOut, 0.25, 0.125},
		{ShapeQuadratic, EaseInOut, 0.5, 0.5},
		{ShapeQuadratic, EaseInOut, 0.75, 0.875},
		{ShapeCubic, EaseOut, 0, 0},
		{ShapeCubic, EaseOut, 1, 1},
		{ShapeExponential, EaseOut, 0, 0},
		{ShapeExponential, EaseOut, 1, 1},
		{ShapeExponential, EaseInOut, 0, 0},
		{ShapeExponential, EaseInOut, 1, 1},
		{ShapeLinear, Directions(9), 0.4, 0.4},
	}
	for i, test := range tests {
		tolassert.Equal(t, test.want, Ease(test.shape, test.direction, test.t), i)
	}

	// every shape in every direction is pinned at both ends
	for _, s := range ShapeLinear.Values() {
		for _, d := range EaseIn.Values() {
			tolassert.Equal(t, 0, Ease(s, d, 0), s.String()+" "+d.String())
			tolassert.Equal(t, 1, Ease(s, d, 1), s.String()+" "+d.String())
		}
	}
}

func TestInterpolate(t *testing.T) {
	chroma := Channel{Range{0.01, 0.2}, ShapeExponential, EaseOut}
	tolassert.Equal(t, 0.01, Interpolate(0, chroma))
	tolassert.Equal(t, 0.2, Interpolate(1, chroma))
	tolassert.Equal(t, 0.1940625, Interpolate(0.5, chroma))

	hue := Channel{Range{0, 0}, ShapeLinear, EaseInOut}
	for _, v := range []float64{0, 0.3, 1} {
		tolassert.Equal(t, 0, Interpolate(v, hue))
	}

	down := Channel{Range{10, -10}, ShapeLinear, EaseIn}
	tolassert.Equal(t, 0, Interpolate(0.5, down))
	tolassert.Equal(t, -10, Interpolate(1, down))
}

func TestPosition(t *testing.T) {
	assert.Equal(t, 0.0, Position(0, 0))
	assert.Equal(t, 0.0, Position(0, 1))
	assert.Equal(t, 0.0, Position(0, 5))
	assert.Equal(t, 0.5, Position(2, 5))
	assert.Equal(t, 1.0, Position(4, 5))
}

func TestDistribute(t *testing.T) {
	type data struct {
		n      int
		r      Range
		easing Easings
		want   []float64
	}
	tests := []data{
		{5, Range{1, 9}, EasingLinear, []float64{1, 3, 5, 7, 9}},
		{5, Range{1, 9}, EasingIn, []float64{1, 1.5, 3, 5.5, 9}},
		{5, Range{1.1, 15}, EasingOut, []float64{1.1, 7.18, 11.53, 14.13, 15}},
		{3, Range{1, 3}, EasingInOut, []float64{1, 2, 3}},
		{1, Range{2.5, 9}, EasingOut, []float64{2.5}},
		{0, Range{1, 9}, EasingLinear, []float64{}},
		{-3, Range{1, 9}, EasingLinear, []float64{}},
	}
	for i, test := range tests {
		res := Distribute(test.n, test.r, test.easing)
		require.Len(t, res, len(test.want), i)
		for j := range res {
			tolassert.Equal(t, test.want[j], res[j], fmt.Sprintf("%d: %d", i, j))
		}
	}

	res := Distribute(16, Range{1.1, 15}, EasingInOut)
	assert.Equal(t, 1.1, res[0])
	assert.Equal(t, 15.0, res[15])
	for i := 1; i < len(res); i++ {
		assert.GreaterOrEqual(t, res[i], res[i-1])
	}
}

func TestPoints(t *testing.T) {
	ps := Points(Channel{Range{5, 7}, ShapeQuadratic, EaseIn}, 4)
	require.Len(t, ps, 5)
	assert.Equal(t, Point{0, 0}, ps[0])
	assert.Equal(t, Point{0.5, 0.25}, ps[2])
	assert.Equal(t, Point{1, 1}, ps[4])

	eps := EasingPoints(EasingOut, 20)
	require.Len(t, eps, 21)
	tolassert.Equal(t, 0.75, eps[10].Y)

	assert.Len(t, EasingPoints(EasingLinear, 0), 1)
}

func TestEnums(t *testing.T) {
	var s Shapes
	require.NoError(t, s.SetString("Exponential"))
	assert.Equal(t, ShapeExponential, s)
	assert.Equal(t, "Exponential", s.Label())
	assert.Error(t, s.SetString("bounce"))

	var d Directions
	require.NoError(t, d.UnmarshalText([]byte("ease-in-out")))
	assert.Equal(t, EaseInOut, d)
	assert.Equal(t, "Ease In-Out", d.Label())
	b, err := EaseOut.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ease-out", string(b))

	var e Easings
	require.NoError(t, e.SetString("ease-in"))
	assert.Equal(t, EasingIn, e)
	assert.Equal(t, "Ease In", e.Label())
	assert.Equal(t, "linear", EasingLinear.String())
	assert.Len(t, e.Values(), 4)
	assert.False(t, Easings(-1).IsValid())
	assert.Equal(t, "-1", Easings(-1).Label())
}

func ExampleDistribute() {
	fmt.Println(Distribute(5, Range{Min: 1, Max: 9}, EasingLinear))
	fmt.Println(Distribute(4, Range{Min: 1.1, Max: 15}, EasingIn))
	// Output:
	// [1 3 5 7 9]
	// [1.1 2.64 7.28 15]
}

func ExampleInterpolate() {
	chroma := Channel{Range: Range{Min: 0.05, Max: 0.15}, Shape: ShapeLinear, Direction: EaseOut}
	fmt.Printf("%.3f\n", Interpolate(0.5, chroma))
	// Output:
	// 0.100
}
