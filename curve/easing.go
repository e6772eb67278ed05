// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "math"

// Easings are the curves used to distribute target contrast
// ratios across the steps of a scale.
type Easings int32 //enums:enum

const (
	// EasingLinear spaces the contrasts evenly: t.
	EasingLinear Easings = iota

	// EasingIn bunches the contrasts toward the low end: t².
	EasingIn

	// EasingOut bunches the contrasts toward the high end: 1-(1-t)².
	EasingOut

	// EasingInOut bunches the contrasts toward both ends.
	EasingInOut
)

// EasingFuncs are the functions for each of the [Easings].
var EasingFuncs = map[Easings]Func{
	EasingLinear: func(t float64) float64 { return t },
	EasingIn:     func(t float64) float64 { return t * t },
	EasingOut:    func(t float64) float64 { return 1 - (1-t)*(1-t) },
	EasingInOut: func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		v := -2*t + 2
		return 1 - v*v/2
	},
}

// Func returns the function for the easing. Unknown
// easings return the identity.
func (e Easings) Func() Func {
	if f, ok := EasingFuncs[e]; ok {
		return f
	}
	return EasingFuncs[EasingLinear]
}

// Distribute returns n contrast ratios spread over the given range
// according to the easing, each rounded to two decimal places.
// It returns an empty slice for n <= 0 and [r.Min] for n == 1.
func Distribute(n int, r Range, easing Easings) []float64 {
	if n <= 0 {
		return []float64{}
	}
	f := easing.Func()
	res := make([]float64, n)
	for i := range res {
		v := r.Map(f(Position(i, n)))
		res[i] = math.Round(v*100) / 100
	}
	return res
}

// EasingPoints returns count+1 evenly spaced points of the
// easing over 0-1, for previewing its shape.
func EasingPoints(e Easings, count int) []Point {
	return points(e.Func(), count)
}
