// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve provides the easing curves that shape how values
// change across the steps of a palette: channel curves ([Shapes] with
// a [Directions]) for chroma and hue in OKLCH mode, and contrast
// [Easings] for distributing target contrast ratios over a range.
// All functions are pure and map a normalized position t in 0-1.
package curve

import "math"

// Func is an easing function that maps a normalized
// position in 0-1 to an eased value, normally also in 0-1.
type Func func(t float64) float64

// Shapes are the base curve shapes for channel curves.
type Shapes int32 //enums:enum -trim-prefix Shape -transform lower

const (
	// ShapeLinear is the identity, t.
	ShapeLinear Shapes = iota

	// ShapeQuadratic is t².
	ShapeQuadratic

	// ShapeCubic is t³.
	ShapeCubic

	// ShapeSine is 1-cos(tπ/2).
	ShapeSine

	// ShapeExponential is 2^(10(t-1)), and exactly 0 at t = 0.
	ShapeExponential
)

// ShapeFuncs are the base functions for each of the [Shapes].
var ShapeFuncs = map[Shapes]Func{
	ShapeLinear:    func(t float64) float64 { return t },
	ShapeQuadratic: func(t float64) float64 { return t * t },
	ShapeCubic:     func(t float64) float64 { return t * t * t },
	ShapeSine:      func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) },
	ShapeExponential: func(t float64) float64 {
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*(t-1))
	},
}

// Func returns the base function for the shape. Unknown
// shapes return the identity.
func (s Shapes) Func() Func {
	if f, ok := ShapeFuncs[s]; ok {
		return f
	}
	return ShapeFuncs[ShapeLinear]
}

// Directions are the ways a base shape is applied over 0-1.
type Directions int32 //enums:enum -transform kebab

const (
	// EaseIn applies the shape as is: f(t).
	EaseIn Directions = iota

	// EaseOut mirrors the shape: 1-f(1-t).
	EaseOut

	// EaseInOut applies the shape on the first half and its
	// mirror on the second half.
	EaseInOut
)

// Apply returns the given base function as applied in this direction.
// Unknown directions return f unchanged.
func (d Directions) Apply(f Func) Func {
	switch d {
	case EaseOut:
		return func(t float64) float64 { return 1 - f(1-t) }
	case EaseInOut:
		return func(t float64) float64 {
			if t < 0.5 {
				return f(t*2) / 2
			}
			return 1 - f((1-t)*2)/2
		}
	default:
		return f
	}
}

// Ease returns the eased value of t for the given shape and direction.
func Ease(shape Shapes, direction Directions, t float64) float64 {
	return direction.Apply(shape.Func())(t)
}

// Range is a closed range of values that an eased
// value in 0-1 is mapped onto. Min may be greater than Max,
// in which case the mapping is decreasing.
type Range struct {
	Min float64 `toml:"min" yaml:"min" json:"min"`
	Max float64 `toml:"max" yaml:"max" json:"max"`
}

// Map maps the given eased value in 0-1 onto the range.
func (r Range) Map(eased float64) float64 {
	return r.Min + (r.Max-r.Min)*eased
}

// Channel is the curve that a single color channel
// (chroma or hue shift) follows across the steps.
type Channel struct {
	Range     Range      `toml:"range" yaml:"range" json:"range"`
	Shape     Shapes     `toml:"shape" yaml:"shape" json:"shape"`
	Direction Directions `toml:"direction" yaml:"direction" json:"direction"`
}

// Func returns the eased function of the channel, without range mapping.
func (c Channel) Func() Func {
	return c.Direction.Apply(c.Shape.Func())
}

// Interpolate returns the value of the channel at the
// normalized position t: its eased t mapped onto its range.
func Interpolate(t float64, c Channel) float64 {
	return c.Range.Map(c.Func()(t))
}

// Position returns the normalized position of step i out of n steps,
// i/(n-1), which is 0 when there are fewer than two steps.
func Position(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Point is a point on a curve preview, in unit coordinates.
type Point struct {
	X, Y float64
}

// Points returns count+1 evenly spaced points of the eased
// function of the channel over 0-1, for previewing its shape.
// The range is not applied.
func Points(c Channel, count int) []Point {
	return points(c.Func(), count)
}

func points(f Func, count int) []Point {
	if count <= 0 {
		return []Point{{0, f(0)}}
	}
	ps := make([]Point, count+1)
	for i := range ps {
		t := float64(i) / float64(count)
		ps[i] = Point{t, f(t)}
	}
	return ps
}
