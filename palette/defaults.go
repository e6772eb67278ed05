// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"strconv"

	"github.com/tonescale/tonescale/curve"
)

// defaultTargets are the target contrasts of [DefaultScales],
// from the lightest step to the darkest.
var defaultTargets = []float64{1.08, 1.24, 1.48, 1.76, 2.12, 2.56, 3.08, 3.80, 4.72, 5.72, 6.92, 8.36, 10.16, 12.08, 14.44, 16.44}

// DefaultScales returns the default 16 steps, named 160 down to 10.
// A new slice is returned on each call.
func DefaultScales() []ScaleStep {
	steps := make([]ScaleStep, len(defaultTargets))
	for i, target := range defaultTargets {
		id := strconv.Itoa((len(defaultTargets) - i) * 10)
		steps[i] = ScaleStep{ID: id, Name: id, TargetContrast: Contrast(target)}
	}
	return steps
}

// DefaultChannelSettings returns the default OKLCH curves: chroma
// rising exponentially from 0.01 to 0.2, and no hue shift.
func DefaultChannelSettings() ChannelSettings {
	return ChannelSettings{
		Chroma: curve.Channel{Range: curve.Range{Min: 0.01, Max: 0.2}, Shape: curve.ShapeExponential, Direction: curve.EaseOut},
		Hue:    curve.Channel{Range: curve.Range{Min: 0, Max: 0}, Shape: curve.ShapeLinear, Direction: curve.EaseInOut},
	}
}

// FallbackChannelSettings returns the OKLCH curves used when
// zero settings are passed to [Generate]: chroma rising linearly
// from 0.05 to 0.15, and no hue shift.
func FallbackChannelSettings() ChannelSettings {
	return ChannelSettings{
		Chroma: curve.Channel{Range: curve.Range{Min: 0.05, Max: 0.15}, Shape: curve.ShapeLinear, Direction: curve.EaseOut},
		Hue:    curve.Channel{Range: curve.Range{Min: 0, Max: 0}, Shape: curve.ShapeLinear, Direction: curve.EaseInOut},
	}
}
